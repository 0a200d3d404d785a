package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/ptaxfolio/internal/domain/models"
)

func sampleReport() *models.Report {
	trade := models.Trade{
		Symbol:        "VWRA",
		TradeDate:     time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Quantity:      decimal.RequireFromString("2"),
		PriceUSD:      decimal.RequireFromString("115.94"),
		CommissionUSD: decimal.RequireFromString("1.91"),
	}
	return &models.Report{
		Year:        2024,
		TotalTrades: 1,
		Holdings: []models.Holding{
			{
				Symbol:      "VWRA",
				Description: "VANG FTSE AW USDA",
				Trades: []models.RateEnrichedTrade{
					{Trade: trade, PTAXRate: decimal.RequireFromString("4.8899")},
				},
			},
		},
	}
}

func TestNewReportResponse(t *testing.T) {
	resp := NewReportResponse(sampleReport())

	if resp.Year != 2024 || resp.TotalTrades != 1 || len(resp.Holdings) != 1 {
		t.Fatalf("unexpected response shape: %+v", resp)
	}

	h := resp.Holdings[0]
	if h.Symbol != "VWRA" || h.Description != "VANG FTSE AW USDA" {
		t.Fatalf("unexpected holding identity: %+v", h)
	}
	// 2 * 115.94 + 1.91 = 233.79, exactly.
	if !h.TotalUSD.Equal(decimal.RequireFromString("233.79")) {
		t.Fatalf("holding total usd: want 233.79, got %s", h.TotalUSD)
	}
	// 233.79 * 4.8899 = 1143.210321, no rounding.
	if !h.TotalBRL.Equal(decimal.RequireFromString("1143.210321")) {
		t.Fatalf("holding total brl: want 1143.210321, got %s", h.TotalBRL)
	}
	if h.TotalUSDFormatted != "$233.79" {
		t.Fatalf("formatted usd: got %q", h.TotalUSDFormatted)
	}
	if h.TotalBRLFormatted != "R$1.143,21" {
		t.Fatalf("formatted brl: got %q", h.TotalBRLFormatted)
	}

	tr := h.Trades[0]
	if tr.TradeDate != "2024-01-05" {
		t.Fatalf("trade date: got %q", tr.TradeDate)
	}
	if !tr.PTAXRate.Equal(decimal.RequireFromString("4.8899")) {
		t.Fatalf("ptax rate: got %s", tr.PTAXRate)
	}
}

func TestReportResponse_JSONCarriesExactDecimals(t *testing.T) {
	raw, err := json.Marshal(NewReportResponse(sampleReport()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	body := string(raw)
	// Monetary fields serialize as exact decimal strings, never floats.
	for _, want := range []string{`"total_usd":"233.79"`, `"total_brl":"1143.210321"`, `"ptax_rate":"4.8899"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("response json missing %s:\n%s", want, body)
		}
	}
}
