package dto

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/ptaxfolio/internal/domain/models"
)

// ReportResponse is the JSON structure returned by POST /api/v1/statements.
//
// All monetary values are serialized as exact decimal strings; the
// *Formatted fields carry locale-style display strings for direct rendering.
//
// swagger:model ReportResponse
type ReportResponse struct {
	Year              int               `json:"year" example:"2024"`
	TotalTrades       int               `json:"total_trades" example:"12"`
	Holdings          []HoldingResponse `json:"holdings"`
	TotalUSD          decimal.Decimal   `json:"total_usd" example:"1083.62" swaggertype:"string"`
	TotalBRL          decimal.Decimal   `json:"total_brl" example:"5337.82" swaggertype:"string"`
	TotalUSDFormatted string            `json:"total_usd_formatted" example:"$1,083.62"`
	TotalBRLFormatted string            `json:"total_brl_formatted" example:"R$5.337,82"`
}

// HoldingResponse is one aggregated instrument position within a report.
type HoldingResponse struct {
	Symbol            string          `json:"symbol" example:"VWRA"`
	Description       string          `json:"description" example:"VANG FTSE AW USDA"`
	Trades            []TradeResponse `json:"trades"`
	TotalQuantity     decimal.Decimal `json:"total_quantity" example:"5" swaggertype:"string"`
	TotalUSD          decimal.Decimal `json:"total_usd" example:"595.70" swaggertype:"string"`
	TotalBRL          decimal.Decimal `json:"total_brl" example:"2931.47" swaggertype:"string"`
	AveragePriceUSD   decimal.Decimal `json:"average_price_usd" example:"119.14" swaggertype:"string"`
	AveragePriceBRL   decimal.Decimal `json:"average_price_brl" example:"586.29" swaggertype:"string"`
	TotalUSDFormatted string          `json:"total_usd_formatted" example:"$595.70"`
	TotalBRLFormatted string          `json:"total_brl_formatted" example:"R$2.931,47"`
}

// TradeResponse is one rate-enriched trade within a holding.
type TradeResponse struct {
	TradeDate     string          `json:"trade_date" example:"2024-01-05"`
	Quantity      decimal.Decimal `json:"quantity" example:"2" swaggertype:"string"`
	PriceUSD      decimal.Decimal `json:"price_usd" example:"115.94" swaggertype:"string"`
	CommissionUSD decimal.Decimal `json:"commission_usd" example:"1.91" swaggertype:"string"`
	PTAXRate      decimal.Decimal `json:"ptax_rate" example:"4.8899" swaggertype:"string"`
	TotalUSD      decimal.Decimal `json:"total_usd" example:"233.79" swaggertype:"string"`
	TotalBRL      decimal.Decimal `json:"total_brl" example:"1143.21" swaggertype:"string"`
}

// NewReportResponse maps a domain report onto the API contract.
func NewReportResponse(report *models.Report) ReportResponse {
	holdings := make([]HoldingResponse, 0, len(report.Holdings))
	for _, h := range report.Holdings {
		holdings = append(holdings, newHoldingResponse(h))
	}

	totalUSD := report.TotalUSD()
	totalBRL := report.TotalBRL()

	return ReportResponse{
		Year:              report.Year,
		TotalTrades:       report.TotalTrades,
		Holdings:          holdings,
		TotalUSD:          totalUSD,
		TotalBRL:          totalBRL,
		TotalUSDFormatted: FormatUSD(totalUSD),
		TotalBRLFormatted: FormatBRL(totalBRL),
	}
}

func newHoldingResponse(h models.Holding) HoldingResponse {
	trades := make([]TradeResponse, 0, len(h.Trades))
	for _, t := range h.Trades {
		trades = append(trades, TradeResponse{
			TradeDate:     t.Trade.TradeDate.Format("2006-01-02"),
			Quantity:      t.Trade.Quantity,
			PriceUSD:      t.Trade.PriceUSD,
			CommissionUSD: t.Trade.CommissionUSD,
			PTAXRate:      t.PTAXRate,
			TotalUSD:      t.Trade.TotalUSD(),
			TotalBRL:      t.TotalBRL(),
		})
	}

	totalUSD := h.TotalAcquisitionUSD()
	totalBRL := h.TotalAcquisitionBRL()

	return HoldingResponse{
		Symbol:            h.Symbol,
		Description:       h.Description,
		Trades:            trades,
		TotalQuantity:     h.TotalQuantity(),
		TotalUSD:          totalUSD,
		TotalBRL:          totalBRL,
		AveragePriceUSD:   h.AveragePriceUSD(),
		AveragePriceBRL:   h.AveragePriceBRL(),
		TotalUSDFormatted: FormatUSD(totalUSD),
		TotalBRLFormatted: FormatBRL(totalBRL),
	}
}
