package middleware

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/kanban-board/internal/domain"
)

// ActorHeader names the request header that identifies the acting user.
const ActorHeader = "X-User-ID"

// Actor returns middleware that stores the acting user id from the
// X-User-ID header in the request context, where the board service picks it
// up as the issuer of every mutation. Requests without the header act as the
// service's current user.
func Actor() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(ActorHeader))
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(domain.WithActor(r.Context(), id)))
		})
	}
}
