package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/ptaxfolio/config"
	"github.com/guttosm/ptaxfolio/internal/ptax"
)

func testConfig(baseURL string) config.Config {
	return config.Config{
		Server: config.ServerConfig{Port: "8080"},
		PTAX: config.PTAXConfig{
			BaseURL:        baseURL,
			Series:         1,
			LookbackDays:   10,
			TimeoutSeconds: 2,
		},
	}
}

func TestNewHoldingsService(t *testing.T) {
	svc := NewHoldingsService(testConfig("http://127.0.0.1:1"))
	if svc == nil {
		t.Fatalf("expected service instance")
	}
}

func TestInitializeApp_HappyPath(t *testing.T) {
	// Fixture rate source that answers every series request with an empty
	// series, enough for the readiness ping.
	fixture := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(fixture.Close)

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = testConfig(fixture.URL)

	oldClient := NewRateClient
	NewRateClient = func(cfg config.Config) *ptax.Client {
		return ptax.NewClient(fixture.URL, cfg.PTAX.Series, 2*time.Second)
	}
	t.Cleanup(func() { NewRateClient = oldClient })

	router, err := InitializeApp()
	if err != nil || router == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}

	// Hit health endpoints
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("readyz status=%d", w2.Code)
	}
}

func TestInitializeApp_RateSourceDown(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	// Nothing listens on this port; the readiness ping must fail.
	config.AppConfig = testConfig("http://127.0.0.1:1")

	router, err := InitializeApp()
	if err != nil || router == nil {
		t.Fatalf("InitializeApp failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz must stay up regardless of upstream: %d", w.Code)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w2, req2)
	if w2.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz with dead rate source: want 503, got %d", w2.Code)
	}
}
