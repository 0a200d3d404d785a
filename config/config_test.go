package config

import (
	"os"
	"os/exec"
	"testing"
)

// TestLoadConfig_Defaults verifies that defaults are loaded when no env vars
// are set.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("PTAX_BASE_URL")
	_ = os.Unsetenv("PTAX_SERIES")
	_ = os.Unsetenv("PTAX_LOOKBACK_DAYS")
	_ = os.Unsetenv("HTTP_TIMEOUT_SECONDS")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.PTAX.BaseURL != "https://api.bcb.gov.br" {
		t.Fatalf("unexpected default base url: %q", AppConfig.PTAX.BaseURL)
	}
	if AppConfig.PTAX.Series != 1 || AppConfig.PTAX.LookbackDays != 10 || AppConfig.PTAX.TimeoutSeconds != 30 {
		t.Fatalf("unexpected defaults: %+v", AppConfig.PTAX)
	}
}

// TestLoadConfig_EnvOverride verifies that environment variables win over
// defaults.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PTAX_LOOKBACK_DAYS", "15")

	LoadConfig()

	if AppConfig.Server.Port != "9090" {
		t.Fatalf("expected SERVER_PORT override, got %q", AppConfig.Server.Port)
	}
	if AppConfig.PTAX.LookbackDays != 15 {
		t.Fatalf("expected lookback override, got %d", AppConfig.PTAX.LookbackDays)
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
