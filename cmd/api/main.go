package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/leavehq/leave-backend-go/internal/config"
	appHTTP "github.com/leavehq/leave-backend-go/internal/handler/http"
	"github.com/leavehq/leave-backend-go/internal/pkg/database"
	"github.com/leavehq/leave-backend-go/internal/pkg/jwt"
	"github.com/leavehq/leave-backend-go/internal/repository/postgresql"
	authService "github.com/leavehq/leave-backend-go/internal/service/auth"
	dashboardService "github.com/leavehq/leave-backend-go/internal/service/dashboard"
	employeeService "github.com/leavehq/leave-backend-go/internal/service/employee"
	holidayService "github.com/leavehq/leave-backend-go/internal/service/holiday"
	"github.com/leavehq/leave-backend-go/internal/service/leave"
	reportService "github.com/leavehq/leave-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	balanceSvc := leave.NewBalanceService(leaveTypeRepo, leaveBalanceRepo)
	typeSvc := leave.NewTypeService(db, leaveTypeRepo, leaveBalanceRepo, leaveRequestRepo, employeeRepo)
	requestSvc := leave.NewRequestService(db, leaveTypeRepo, leaveBalanceRepo, leaveRequestRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, balanceSvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	reportSvc := reportService.NewReportService(reportRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, leaveBalanceRepo, leaveRequestRepo, holidayRepo)
	authSvc, err := authService.NewAuthService(db, employeeRepo, sessionRepo, jwtService, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Fatal("Error initializing auth service: ", err)
	}

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(typeSvc, requestSvc, balanceSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		jwtService,
		sessionRepo,
		authHandler,
		employeeHandler,
		leaveHandler,
		holidayHandler,
		reportHandler,
		dashboardHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
