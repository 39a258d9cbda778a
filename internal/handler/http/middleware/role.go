package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/handler/http/response"
)

// RequireApprover requires the hr or admin role
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Approver access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Approver access required")
			return
		}

		if !employee.Role(roleStr).CanApprove() {
			response.Forbidden(w, "Approver access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Admin access required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Admin access required")
			return
		}

		if !employee.Role(roleStr).CanDelete() {
			response.Forbidden(w, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
