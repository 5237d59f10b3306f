package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hospital/gateway/internal/config"
	authdomain "github.com/hospital/gateway/internal/domain/auth"
	"github.com/hospital/gateway/internal/domain/patient"
	"github.com/hospital/gateway/internal/domain/schedule"
	"github.com/hospital/gateway/internal/domain/staff"
	"github.com/hospital/gateway/internal/domain/workload"
	"github.com/hospital/gateway/internal/platform/auth"
	"github.com/hospital/gateway/internal/platform/middleware"
	"github.com/hospital/gateway/internal/platform/session"
	"github.com/hospital/gateway/internal/platform/upstream"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gateway",
		Short: "Hospital administration gateway",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the gateway server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Outbound client for the hospital API
	api := upstream.NewClient(cfg.UpstreamBaseURL, time.Duration(cfg.UpstreamTimeout)*time.Second)
	sessions := session.NewManager(cfg.SecureCookies())

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// Role-based route guard
	e.Use(auth.Guard(sessions, logger))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// -- Register Domain Handlers --
	apiGroup := e.Group("/api")

	authdomain.NewHandler(api, sessions, logger).RegisterRoutes(apiGroup)
	staff.NewHandler(api, logger).RegisterRoutes(apiGroup)
	patient.NewHandler(api, logger).RegisterRoutes(apiGroup)
	schedule.NewHandler(api, logger).RegisterRoutes(apiGroup)
	workload.NewHandler(api, logger).RegisterRoutes(apiGroup)

	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("upstream", cfg.UpstreamBaseURL).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
