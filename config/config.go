package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	PTAX_BASE_URL=https://api.bcb.gov.br
//	PTAX_SERIES=1
//	PTAX_LOOKBACK_DAYS=10
//	HTTP_TIMEOUT_SECONDS=30
type Config struct {
	Server ServerConfig // HTTP server configuration
	PTAX   PTAXConfig   // PTAX rate source settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PTAXConfig defines how the PTAX rate source is reached and queried.
//
// Fields:
//   - BaseURL: base URL of the central bank open-data API.
//   - Series: SGS series code of the daily rate (1 = USD sell rate).
//   - LookbackDays: how many days the resolver searches backward for a
//     published rate before failing a date.
//   - TimeoutSeconds: HTTP timeout for rate fetches.
type PTAXConfig struct {
	BaseURL        string
	Series         int
	LookbackDays   int
	TimeoutSeconds int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of reloading environment variables in each package.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables end up empty, validateConfig() terminates the
//     app with a descriptive log message.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("PTAX_BASE_URL", "https://api.bcb.gov.br")
	viper.SetDefault("PTAX_SERIES", 1)
	viper.SetDefault("PTAX_LOOKBACK_DAYS", 10)
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 30)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		PTAX: PTAXConfig{
			BaseURL:        viper.GetString("PTAX_BASE_URL"),
			Series:         viper.GetInt("PTAX_SERIES"),
			LookbackDays:   viper.GetInt("PTAX_LOOKBACK_DAYS"),
			TimeoutSeconds: viper.GetInt("HTTP_TIMEOUT_SECONDS"),
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing, avoiding surprise failures at first use.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.PTAX.BaseURL == "" {
		missing = append(missing, "PTAX_BASE_URL")
	}
	if AppConfig.PTAX.Series == 0 {
		missing = append(missing, "PTAX_SERIES")
	}
	if AppConfig.PTAX.LookbackDays == 0 {
		missing = append(missing, "PTAX_LOOKBACK_DAYS")
	}
	if AppConfig.PTAX.TimeoutSeconds == 0 {
		missing = append(missing, "HTTP_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
