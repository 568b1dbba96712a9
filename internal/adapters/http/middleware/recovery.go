package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/kanban-board/internal/adapters/http/dto"
)

var errPanic = errors.New("internal server error")

// Recovery returns middleware that turns a handler panic into a problem+json
// 500 and logs the panic value with its stack. If the handler had already
// started the response only the log entry is written. http.ErrAbortHandler
// is re-raised so net/http can abort the connection quietly. Recovery runs
// outermost, so the request id is read back from the response header.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", sr.Header().Get(headerRequestID)),
				)

				if !sr.written {
					dto.WriteErrorResponse(sr, r, errPanic)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
