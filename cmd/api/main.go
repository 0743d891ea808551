package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/staffdesk/attendance-backend-go/internal/config"
	appHTTP "github.com/staffdesk/attendance-backend-go/internal/handler/http"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/cron"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/database"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/email"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk/attendance-backend-go/internal/service/attendance"
	authService "github.com/staffdesk/attendance-backend-go/internal/service/auth"
	employeeService "github.com/staffdesk/attendance-backend-go/internal/service/employee"
	leaveService "github.com/staffdesk/attendance-backend-go/internal/service/leave"
	projectService "github.com/staffdesk/attendance-backend-go/internal/service/project"
	reportService "github.com/staffdesk/attendance-backend-go/internal/service/report"
	salaryService "github.com/staffdesk/attendance-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()

	if err := database.Migrate(context.Background(), dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	emailService, err := email.NewService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	attendanceSvc := attendanceService.NewService(attendanceRepo)
	leaveSvc := leaveService.NewService(leaveRepo, employeeRepo, attendanceSvc, emailService)
	employeeSvc := employeeService.NewService(employeeRepo, attendanceRepo, emailService)
	projectSvc := projectService.NewService(projectRepo)
	salarySvc := salaryService.NewService(employeeRepo, attendanceRepo, leaveRepo)
	reportSvc := reportService.NewService(reportRepo, attendanceRepo, employeeRepo)
	authSvc := authService.NewService(employeeRepo, jwtService, emailService, cfg.App)

	scheduler := cron.NewScheduler()
	cron.NewLeaveJobs(leaveSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
