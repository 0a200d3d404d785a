package models

import "github.com/shopspring/decimal"

// Holding is the aggregate position in one instrument, built from all buy
// trades for that symbol in the processed statement.
//
// Fields:
//   - Symbol: instrument ticker shared by every trade in the holding.
//   - Description: human-readable instrument name; falls back to the symbol
//     when the statement carried no description for it.
//   - Trades: rate-enriched trades in statement order (never re-sorted).
//
// A Holding is assembled once by the holdings service and never mutated.
type Holding struct {
	Symbol      string
	Description string
	Trades      []RateEnrichedTrade
}

// TotalQuantity returns the sum of share quantities across all trades.
func (h Holding) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, t := range h.Trades {
		total = total.Add(t.Trade.Quantity)
	}
	return total
}

// TotalAcquisitionUSD returns the summed acquisition cost in USD.
func (h Holding) TotalAcquisitionUSD() decimal.Decimal {
	total := decimal.Zero
	for _, t := range h.Trades {
		total = total.Add(t.Trade.TotalUSD())
	}
	return total
}

// TotalAcquisitionBRL returns the summed acquisition cost in BRL.
func (h Holding) TotalAcquisitionBRL() decimal.Decimal {
	total := decimal.Zero
	for _, t := range h.Trades {
		total = total.Add(t.TotalBRL())
	}
	return total
}

// AveragePriceUSD returns the average per-share acquisition price in USD.
// A holding with zero total quantity yields exactly zero, never a division
// fault.
func (h Holding) AveragePriceUSD() decimal.Decimal {
	qty := h.TotalQuantity()
	if qty.IsZero() {
		return decimal.Zero
	}
	return h.TotalAcquisitionUSD().Div(qty)
}

// AveragePriceBRL returns the average per-share acquisition price in BRL,
// with the same zero-quantity guarantee as AveragePriceUSD.
func (h Holding) AveragePriceBRL() decimal.Decimal {
	qty := h.TotalQuantity()
	if qty.IsZero() {
		return decimal.Zero
	}
	return h.TotalAcquisitionBRL().Div(qty)
}
