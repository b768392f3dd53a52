// Package main is the entry point for the voice search query parsing service.
//
//	@title						Voice Search API
//	@version					1.0.0
//	@description				A natural-language search service that parses free-text ferry travel queries into structured search parameters.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/ferry-search/voice-search-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
//
//	@externalDocs.description	Technical Documentation
//	@externalDocs.url			https://github.com/ferry-search/voice-search-service/blob/main/DESIGN.md
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ferry-search/voice-search-service/internal/config"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/ferry-search/voice-search-service/docs"

	// Application layers
	searchhttp "github.com/ferry-search/voice-search-service/internal/adapter/http"
	"github.com/ferry-search/voice-search-service/internal/adapter/http/middleware"
	"github.com/ferry-search/voice-search-service/internal/infrastructure/logger"
	"github.com/ferry-search/voice-search-service/internal/infrastructure/timeutil"
	"github.com/ferry-search/voice-search-service/internal/parser"
)

const (
	serviceName     = "voice-search"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	appLogger := setupLogger(cfg)

	logger.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("default_locale", cfg.Parser.DefaultLocale).
		Str("timezone", cfg.Parser.Timezone).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, appLogger.Logger)

	// Setup routes
	setupRoutes(e, cfg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger builds the application logger from config and installs it as
// the process-wide default.
func setupLogger(cfg *config.Config) *logger.Logger {
	l := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: serviceName,
	})
	logger.SetGlobal(l)
	return l
}

// setupRoutes wires the parsing pipeline and configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	// Clock and location are shared between parser and handler so the
	// reported reference date matches the one dates were anchored to.
	clock := timeutil.NewRealClock()
	location := timeutil.MustGetLocation(cfg.Parser.Timezone)

	queryParser := parser.New(clock, parser.Config{
		DefaultLocale: cfg.Parser.DefaultLocale,
		Location:      location,
	})

	handler := searchhttp.NewQueryHandler(queryParser, clock, location, cfg.Parser.MaxTextChars)
	searchhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Error during server shutdown")
	}

	logger.Info().Msg("Server stopped")
}
