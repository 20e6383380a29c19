package middleware

import (
	"net/http"

	"github.com/brightserv/ops-backend-go/internal/domain/auth"
	"github.com/brightserv/ops-backend-go/internal/domain/user"
	"github.com/brightserv/ops-backend-go/internal/handler/http/response"
	"github.com/brightserv/ops-backend-go/internal/pkg/authctx"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a valid access token and stores the
// authenticated actor in the request context for the service layer.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			actor := authctx.Actor{}
			if v, ok := claims["user_id"].(string); ok {
				actor.UserID = v
			}
			if v, ok := claims["email"].(string); ok {
				actor.Email = v
			}
			if v, ok := claims["role"].(string); ok {
				actor.Role = user.Role(v)
			}
			if v, ok := claims["employee_id"].(string); ok && v != "" {
				actor.EmployeeID = &v
			}

			ctx := authctx.WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}
