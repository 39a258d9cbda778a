package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/leavehq/leave-backend-go/internal/domain/auth"
	"github.com/leavehq/leave-backend-go/internal/handler/http/middleware"
	"github.com/leavehq/leave-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	sessionRepository auth.SessionRepository,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	reportHandler ReportHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth(), sessionRepository))

			r.Post("/logout", authHandler.Logout)
			r.Get("/user", authHandler.CurrentUser)
			r.Get("/dashboard", dashboardHandler.Get)
			r.Get("/departments", employeeHandler.Departments)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/leave-types", func(r chi.Router) {
				r.Get("/", leaveHandler.ListTypes)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", leaveHandler.CreateType)
					r.Put("/{id}", leaveHandler.UpdateType)
					r.Delete("/{id}", leaveHandler.DeleteType)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.ListRequests)
				r.Post("/", leaveHandler.SubmitRequest)
				r.Post("/{id}/cancel", leaveHandler.CancelRequest)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/{id}/review", leaveHandler.ReviewRequest)
				})
			})

			r.Get("/balances", leaveHandler.ListBalances)

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireApprover)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireApprover)
				r.Get("/employees", reportHandler.EmployeeReport)
				r.Get("/departments", reportHandler.DepartmentReport)
				r.Get("/monthly", reportHandler.MonthlyReport)
			})
		})
	})

	return r
}
