package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-attendance-go/internal/config"
	"github.com/cmlabs-hris/hris-attendance-go/internal/domain/access"
	"github.com/cmlabs-hris/hris-attendance-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	JWTService jwt.Service,
	policy access.Policy,
	authHandler AuthHandler,
	dashboardHandler DashboardHandler,
	leaveHandler LeaveHandler,
	departmentHandler DepartmentHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       cfg.SlogLevel(),
	})).With(
		slog.String("app", "hris-attendance"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Location"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(middleware.Metrics)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Post("/accounts/login/", authHandler.Login)

	// Requires authentication
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.AuthRequired(JWTService))

		r.Post("/accounts/logout/", authHandler.Logout)

		r.Get("/", dashboardHandler.GetDashboard)

		r.Get("/leave-request/", leaveHandler.GetForm)
		r.Post("/leave-request/", leaveHandler.Submit)
		r.Get("/manage-leaves/", leaveHandler.ManageLeaves)
		r.Get("/leave-action/{leaveID}/{action}/", leaveHandler.UpdateStatus)

		// Admin or HR only
		r.Route("/api/v1", func(r chi.Router) {
			r.Use(middleware.RequireRoles(policy, access.LeaveManagers...))
			r.Use(chiMiddleware.AllowContentType("application/json"))

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.List)
				r.Post("/", departmentHandler.Create)
				r.Put("/{id}", departmentHandler.Rename)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Get("/{id}", employeeHandler.Get)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListByDate)
				r.Post("/", attendanceHandler.Record)
			})
		})
	})
	return r
}
