package middleware

import (
	"net/http"

	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/handler/http/response"
	"github.com/brightserv/ops-backend-go/internal/pkg/authctx"
)

// RequireAdmin requires admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := authctx.FromContext(r.Context())
		if !ok || actor.Role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires manager or admin role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := authctx.FromContext(r.Context())
		if !ok || (actor.Role != user.RoleManager && actor.Role != user.RoleAdmin) {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
