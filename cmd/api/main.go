package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-attendance-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-attendance-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/cache"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance-go/internal/repository/postgresql"
	accessService "github.com/cmlabs-hris/hris-attendance-go/internal/service/access"
	attendanceService "github.com/cmlabs-hris/hris-attendance-go/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/hris-attendance-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-attendance-go/internal/service/dashboard"
	departmentService "github.com/cmlabs-hris/hris-attendance-go/internal/service/department"
	employeeService "github.com/cmlabs-hris/hris-attendance-go/internal/service/employee"
	"github.com/cmlabs-hris/hris-attendance-go/internal/service/leave"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	trendCache := cache.NewNoop()
	if cfg.Redis.Addr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		trendCache = cache.NewRedisCache(client, "hris-attendance")
		slog.Info("dashboard cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.CacheTTL)
	}

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	transactor := postgresql.NewTransactor(db)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		return fmt.Errorf("init jwt: %w", err)
	}
	policy := accessService.NewGroupPolicy()

	authService := serviceAuth.NewAuthService(transactor, userRepo, JWTService, policy)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, trendCache, cfg.Redis.CacheTTL)
	leaveService := leave.NewLeaveService(transactor, policy, leaveRequestRepo, employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	dashboardSvc := dashboardService.NewDashboardService(policy, attendanceSvc, leaveService, employeeRepo, departmentRepo)

	authHandler := appHTTP.NewAuthHandler(authService, cfg.App.Env == "production")
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveService)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		policy,
		authHandler,
		dashboardHandler,
		leaveHandler,
		departmentHandler,
		employeeHandler,
		attendanceHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
