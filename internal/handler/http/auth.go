package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/auth"
	"github.com/leavehq/leave-backend-go/internal/domain/employee"
	"github.com/leavehq/leave-backend-go/internal/handler/http/response"
	authService "github.com/leavehq/leave-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	CurrentUser(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authService.AuthService
}

func NewAuthHandler(service *authService.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: service}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	loginResponse, err := a.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", loginResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, "Failed to extract claims from context")
		return
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := a.authService.Logout(r.Context(), sessionID); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// CurrentUser implements AuthHandler.
func (a *AuthHandlerImpl) CurrentUser(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromContext(r)
	if !ok {
		response.Unauthorized(w, "employee_id claim is missing or invalid")
		return
	}

	emp, err := a.authService.CurrentUser(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(emp))
}

func employeeIDFromContext(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	employeeID, ok := claims["employee_id"].(string)
	return employeeID, ok && employeeID != ""
}

func roleFromContext(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	role := employee.Role(roleStr)
	return role, role.IsValid()
}
