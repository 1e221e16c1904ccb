package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/leave-approval-go/internal/config"
	"github.com/cmlabs-hris/leave-approval-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/leave-approval-go/internal/handler/http"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/credential"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/cron"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/leave-approval-go/internal/pkg/sse"
	"github.com/cmlabs-hris/leave-approval-go/internal/repository/memory"
	serviceAuth "github.com/cmlabs-hris/leave-approval-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/leave-approval-go/internal/service/dashboard"
	notificationService "github.com/cmlabs-hris/leave-approval-go/internal/service/notification"
	requestService "github.com/cmlabs-hris/leave-approval-go/internal/service/request"
	userService "github.com/cmlabs-hris/leave-approval-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	hasher, err := credential.New(cfg.Auth.PasswordMode)
	if err != nil {
		slog.Error("Failed to initialize password hasher", "error", err)
		os.Exit(1)
	}

	db := memory.NewDB()
	defer db.Close()

	if cfg.App.SeedDemo {
		if err := fixtures.Seed(context.Background(), db, hasher); err != nil {
			slog.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
		slog.Info("Demo data seeded", "password_mode", cfg.Auth.PasswordMode)
	}

	userRepo := memory.NewUserRepository(db)
	requestRepo := memory.NewRequestRepository(db)
	notificationRepo := memory.NewNotificationRepository(db)
	sessionRepo := memory.NewSessionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	notificationSvc := notificationService.NewNotificationService(notificationRepo, sse.NewHub())
	requestSvc := requestService.NewRequestService(db, requestRepo, userRepo, notificationSvc)
	userSvc := userService.NewUserService(db, userRepo, hasher)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, sessionRepo, hasher)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, requestRepo, requestSvc, notificationSvc)

	router := appHTTP.NewRouter(cfg, JWTService, sessionRepo, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Request:      appHTTP.NewRequestHandler(requestSvc),
		User:         appHTTP.NewUserHandler(userSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, JWTService, cfg.CORS.AllowedOrigins),
	})

	scheduler := cron.NewScheduler(logger)
	cron.NewSessionJobs(sessionRepo, cfg.Cron.TokenPurgeInterval).RegisterJobs(scheduler)
	scheduler.Start()

	// live notification streams watch this context
	baseCtx, stopStreams := context.WithCancel(context.Background())
	defer stopStreams()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}

	go func() {
		slog.Info("Server running", "addr", fmt.Sprintf("http://localhost%s", cfg.Addr()), "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	slog.Info("Shutting down")
	stopStreams()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	scheduler.Stop()
}
