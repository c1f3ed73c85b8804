package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	memberUsecases "gymdesk/internal/application/member/usecases"
	"gymdesk/internal/infrastructure/config"
	"gymdesk/internal/infrastructure/database"
	"gymdesk/internal/infrastructure/email"
	"gymdesk/internal/infrastructure/migration"
	"gymdesk/internal/infrastructure/persistence/repository"
	"gymdesk/internal/infrastructure/scheduler"
	httpRouter "gymdesk/internal/interfaces/http"
	"gymdesk/internal/shared/biztime"
	"gymdesk/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the gymdesk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run schema migration on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Membership.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := migration.Run(database.Get()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("schema migration complete")
	}

	log := logger.NewLogger()
	db := database.Get()

	// Daily maintenance: deactivate lapsed assignments.
	assignmentRepo := repository.NewAssignmentRepository(db, log)
	assignmentScheduler := scheduler.NewAssignmentScheduler(
		memberUsecases.NewExpireAssignmentsUseCase(assignmentRepo, log),
		log,
	)
	assignmentScheduler.Start(cmd.Context())
	defer assignmentScheduler.Stop()

	// Expiry reminder mail, only when SMTP is configured.
	if cfg.Email.Enabled() {
		reminderScheduler := scheduler.NewReminderScheduler(
			memberUsecases.NewSendRemindersUseCase(
				repository.NewMemberRepository(db, log),
				assignmentRepo,
				repository.NewPlanRepository(db, log),
				email.NewSMTPReminderSender(&cfg.Email),
				cfg.Membership.ExpiringThresholdDays,
				log,
			),
			cfg.Membership.ReminderHourUTC,
			log,
		)
		reminderScheduler.Start(cmd.Context())
		defer reminderScheduler.Stop()
	} else {
		logger.Info("smtp not configured, expiry reminder mail disabled")
	}

	router := httpRouter.NewRouter(db, cfg, log)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
