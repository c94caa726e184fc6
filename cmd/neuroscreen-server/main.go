package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/neurohealth/neuroscreen/internal/config"
	"github.com/neurohealth/neuroscreen/internal/domain/analysis"
	"github.com/neurohealth/neuroscreen/internal/domain/doctor"
	"github.com/neurohealth/neuroscreen/internal/domain/media"
	"github.com/neurohealth/neuroscreen/internal/domain/patient"
	"github.com/neurohealth/neuroscreen/internal/domain/report"
	"github.com/neurohealth/neuroscreen/internal/flow"
	"github.com/neurohealth/neuroscreen/internal/platform/auth"
	"github.com/neurohealth/neuroscreen/internal/platform/db"
	"github.com/neurohealth/neuroscreen/internal/platform/middleware"
	"github.com/neurohealth/neuroscreen/pkg/prompts"
)

// analysisDelay simulates the processing latency of the mock analyzer.
const analysisDelay = 2 * time.Second

func main() {
	rootCmd := &cobra.Command{
		Use:   "neuroscreen-server",
		Short: "NeuroHealth screening API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(initDBCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the screening API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func initDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create the patient record table in Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.UsePostgres() {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := patient.InitSchema(ctx, pool); err != nil {
				return fmt.Errorf("initializing schema: %w", err)
			}
			fmt.Println("Patient record table ready.")
			return nil
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Patient store: JSON file by default, Postgres when DATABASE_URL is set.
	ctx := context.Background()
	var store patient.Store
	if cfg.UsePostgres() {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer pool.Close()
		if err := patient.InitSchema(ctx, pool); err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize schema")
		}
		store = patient.NewPGStore(pool)
		logger.Info().Msg("using postgres patient store")
	} else {
		store = patient.NewFileStore(cfg.DataFile, logger)
		logger.Info().Str("path", cfg.DataFile).Msg("using json file patient store")
	}

	// Services
	patients := patient.NewService(store)
	doctors := doctor.NewService()
	analyzer := analysis.NewService(
		analysis.NewRandomSource(taskTitles(prompts.VideoTasks), time.Now().UnixNano()),
		analysis.NewRandomSource(taskTitles(prompts.AudioFeatures), time.Now().UnixNano()+1),
		analysisDelay,
	)
	captures := media.NewDiskStore(cfg.MediaDir, logger)

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "dev-secret"
		logger.Warn().Msg("JWT_SECRET not set, using development secret")
	}
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	issuer := auth.NewTokenIssuer(jwtSecret, sessionTTL)

	machine := flow.NewMachine(patients, doctors, analyzer, captures, logger)
	sessions := flow.NewSessionManager(sessionTTL)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Routes
	apiV1 := e.Group("/api/v1")
	patient.NewHandler(patients, issuer).RegisterRoutes(apiV1)
	doctor.NewHandler(doctors, issuer).RegisterRoutes(apiV1)
	media.NewHandler(captures).RegisterRoutes(apiV1)
	report.NewHandler(patients).RegisterRoutes(apiV1)
	flow.NewHandler(machine, sessions).RegisterRoutes(apiV1)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func taskTitles(tasks []prompts.Task) []string {
	titles := make([]string, len(tasks))
	for i, t := range tasks {
		titles[i] = t.Title
	}
	return titles
}
