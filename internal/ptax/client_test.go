package ptax

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestClient_FetchRange(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"formato":     r.URL.Query().Get("formato"),
			"dataInicial": r.URL.Query().Get("dataInicial"),
			"dataFinal":   r.URL.Query().Get("dataFinal"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"data":"05/01/2024","valor":"4.8899"},{"data":"08/01/2024","valor":"4.9123"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 1, 5*time.Second)
	rates, err := c.FetchRange(context.Background(), day(2024, 1, 1), day(2024, 1, 8))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if gotPath != "/dados/serie/bcdata.sgs.1/dados" {
		t.Fatalf("path: got %q", gotPath)
	}
	if gotQuery["formato"] != "json" || gotQuery["dataInicial"] != "01/01/2024" || gotQuery["dataFinal"] != "08/01/2024" {
		t.Fatalf("query: got %v", gotQuery)
	}

	if len(rates) != 2 {
		t.Fatalf("rates: want 2, got %d", len(rates))
	}
	if !rates[day(2024, 1, 5)].Equal(decimal.RequireFromString("4.8899")) {
		t.Fatalf("rate for 05/01: got %s", rates[day(2024, 1, 5)])
	}
	if !rates[day(2024, 1, 8)].Equal(decimal.RequireFromString("4.9123")) {
		t.Fatalf("rate for 08/01: got %s", rates[day(2024, 1, 8)])
	}
}

func TestClient_FetchRange_Errors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "upstream 500", status: http.StatusInternalServerError, body: "", wantErr: true},
		{name: "invalid date", status: http.StatusOK, body: `[{"data":"garbage","valor":"4.88"}]`, wantErr: true},
		{name: "invalid rate", status: http.StatusOK, body: `[{"data":"05/01/2024","valor":"not-a-number"}]`, wantErr: true},
		{name: "empty series ok", status: http.StatusOK, body: `[]`, wantErr: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, 1, 5*time.Second)
			rates, err := c.FetchRange(context.Background(), day(2024, 1, 1), day(2024, 1, 8))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(rates) != 0 {
				t.Fatalf("rates: want empty, got %d", len(rates))
			}
		})
	}
}

func TestClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 1, 5*time.Second)
	if err := c.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestNewClient_SeriesDefault(t *testing.T) {
	c := NewClient(DefaultBaseURL, 0, time.Second)
	if c.series != DefaultSeriesCode {
		t.Fatalf("series: want %d, got %d", DefaultSeriesCode, c.series)
	}
}
