package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdesk/attendance-backend-go/internal/config"
	"github.com/staffdesk/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/attendance-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Employee   EmployeeHandler
	Project    ProjectHandler
	Salary     SalaryHandler
	Report     ReportHandler
}

func NewRouter(appConfig config.AppConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
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

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/forgot-password", h.Auth.ForgotPassword)
			r.Post("/reset-password/{token}", h.Auth.ResetPassword)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/verify", h.Auth.Verify)
				r.Post("/change-password", h.Auth.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Employee self-service
			r.Route("/employee", func(r chi.Router) {
				r.Route("/attendance", func(r chi.Router) {
					r.Post("/punch-in", h.Attendance.PunchIn)
					r.Post("/lunch-start", h.Attendance.LunchStart)
					r.Post("/lunch-end", h.Attendance.LunchEnd)
					r.Post("/punch-out", h.Attendance.PunchOut)
					r.Get("/today", h.Attendance.Today)
					r.Get("/history", h.Attendance.History)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Post("/", h.Leave.Submit)
					r.Get("/", h.Leave.MyRequests)
					r.Get("/balance", h.Leave.MyBalance)
				})

				r.Get("/profile", h.Employee.Profile)
				r.Put("/profile", h.Employee.UpdateProfile)
				r.Get("/stats", h.Employee.MyMonthlyStats)
				r.Get("/salary", h.Salary.MySalary)
				r.Get("/projects", h.Project.MyProjects)
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", h.Employee.Create)
					r.Get("/", h.Employee.List)
					r.Get("/{id}", h.Employee.Get)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Get("/{id}/stats", h.Employee.MonthlyStats)
					r.Get("/{id}/salary", h.Salary.ForEmployee)
				})

				r.Route("/leaves", func(r chi.Router) {
					r.Get("/pending", h.Leave.Pending)
					r.Put("/{id}/respond", h.Leave.Respond)
					r.Post("/reset", h.Leave.MonthlyReset)
				})

				r.Route("/projects", func(r chi.Router) {
					r.Post("/", h.Project.Create)
					r.Get("/", h.Project.List)
					r.Get("/{id}", h.Project.Get)
					r.Put("/{id}", h.Project.Update)
					r.Delete("/{id}", h.Project.Delete)
					r.Put("/{id}/assignees", h.Project.Assign)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/daily-summary", h.Report.DailySummary)
					r.Get("/trends", h.Report.Trends)
					r.Get("/range", h.Report.RangeReport)
					r.Get("/range/export", h.Report.ExportRangeCSV)
					r.Get("/present-today", h.Report.PresentToday)
					r.Get("/on-leave-today", h.Report.OnLeaveToday)
				})

				r.Get("/salaries", h.Salary.ForAll)
			})
		})
	})
	return r
}
