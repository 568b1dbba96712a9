package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
)

// Timeout returns middleware that bounds each request by d. The handler runs
// with a deadline-carrying context in its own goroutine and writes into a
// buffer; whichever of completion or deadline comes first decides the
// response. On deadline the client gets a problem+json 504 and later writes
// from the handler fail with http.ErrHandlerTimeout. A non-positive d
// disables the middleware.
//
// Local store work finishes well inside any sane deadline; the bound exists
// for calls that wait on the sync backend.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.copyTo(w)
			case <-ctx.Done():
				bw.mu.Lock()
				bw.timedOut = true
				bw.mu.Unlock()
				dto.WriteErrorResponse(w, r, fmt.Errorf("request exceeded %s: %w", d, ctx.Err()))
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides whether
// it is delivered.
type bufferedWriter struct {
	mu       sync.Mutex
	header   http.Header
	body     []byte
	status   int
	timedOut bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 && !bw.timedOut {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

// copyTo flushes the buffered response to w. Caller holds bw.mu.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), bw.header)
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	w.WriteHeader(bw.status)
	if len(bw.body) > 0 {
		_, _ = w.Write(bw.body)
	}
}
