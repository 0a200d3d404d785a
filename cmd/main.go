package main

//
//  @title           ptaxfolio API
//  @version         1.0
//  @description     Brokerage statement processing & PTAX conversion service for tax declarations.
//  @termsOfService  https://github.com/guttosm/ptaxfolio
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/ptaxfolio
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        statements
//  @tag.description Endpoints for processing brokerage statements
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/ptaxfolio/config"
	_ "github.com/guttosm/ptaxfolio/docs" // swagger docs
	"github.com/guttosm/ptaxfolio/internal/app"
	"github.com/guttosm/ptaxfolio/internal/batch"
	"github.com/guttosm/ptaxfolio/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server when an OS
// interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
func gracefulShutdown(ctx context.Context, server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the ptaxfolio application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API and the statement upload page.
//   - report: Processes every .csv statement in --dir and logs a summary
//     per file.
//
// Flags:
//   - --mode: Execution mode ("api" or "report"). Default: "api".
//   - --dir:  Directory with .csv statement files (report mode). Default: "./statements".
//   - --parallel: How many statements to process concurrently (0=auto).
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "api", "Mode: api or report")
	dir := flag.String("dir", "./statements", "Directory with .csv statement files")
	parallel := flag.Int("parallel", 0, "How many statements to process concurrently (0=auto)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server)

	case "report":
		logger.L().Info().Msg("running batch report")

		svc := app.NewHoldingsService(config.AppConfig)
		if err := batch.ProcessDirectory(ctx, *dir, svc, *parallel); err != nil {
			logger.L().Fatal().Err(err).Msg("batch report failed")
		}
		logger.L().Info().Msg("batch report completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
