package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/auth"
	"github.com/leavehq/leave-backend-go/internal/handler/http/response"
)

// AuthRequired verifies the access token and checks that its session is
// still live. A login from elsewhere deletes the session row, so older
// tokens fail here even before they expire.
func AuthRequired(ja *jwtauth.JWTAuth, sessions auth.SessionRepository) func(http.Handler) http.Handler {
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

			sessionID, ok := claims["sid"].(string)
			if !ok || sessionID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			alive, err := sessions.Exists(r.Context(), sessionID)
			if err != nil {
				response.InternalServerError(w, "Failed to check session")
				return
			}
			if !alive {
				response.HandleError(w, auth.ErrSessionRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
