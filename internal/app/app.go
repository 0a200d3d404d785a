package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/ptaxfolio/config"
	"github.com/guttosm/ptaxfolio/internal/api"
	"github.com/guttosm/ptaxfolio/internal/ptax"
	"github.com/guttosm/ptaxfolio/internal/service"
)

// NewRateClient builds the PTAX client from configuration.
//
// Declared as a variable so tests can swap in a client pointed at a local
// fixture server.
var NewRateClient = func(cfg config.Config) *ptax.Client {
	return ptax.NewClient(
		cfg.PTAX.BaseURL,
		cfg.PTAX.Series,
		time.Duration(cfg.PTAX.TimeoutSeconds)*time.Second,
	)
}

// NewHoldingsService wires the rate client and resolver into the holdings
// service. Used by both the API and the batch report mode.
func NewHoldingsService(cfg config.Config) service.HoldingsService {
	client := NewRateClient(cfg)
	resolver := ptax.NewResolver(client, cfg.PTAX.LookbackDays)
	return service.NewHoldingsService(resolver)
}

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router.
//
// Responsibilities:
//   - Builds the PTAX rate client and resolver from configuration.
//   - Initializes the service layer (statement-processing business logic).
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes.
//
// The service holds no connections or persistent state, so there is nothing
// to clean up on shutdown.
func InitializeApp() (*gin.Engine, error) {
	cfg := config.AppConfig

	client := NewRateClient(cfg)
	resolver := ptax.NewResolver(client, cfg.PTAX.LookbackDays)

	svc := service.NewHoldingsService(resolver)

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return client.Ping(ctx)
	})
	healthHandler.Register(router)

	return router, nil
}
