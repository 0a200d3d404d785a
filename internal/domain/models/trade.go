package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade represents a single executed buy order extracted from a brokerage
// activity statement. All monetary fields use exact decimals; the trade date
// carries no time-of-day component.
//
// Fields:
//   - Symbol: instrument ticker (e.g., "VWRA").
//   - TradeDate: calendar date of execution, normalized to midnight UTC.
//   - Quantity: signed share quantity; positive for buys, never zero.
//   - PriceUSD: per-share execution price in USD (non-negative).
//   - CommissionUSD: commission magnitude in USD (non-negative; the statement
//     encodes fees with a negative sign, the parser stores the absolute value).
//
// A Trade is created once by the statement parser and never mutated.
type Trade struct {
	Symbol        string
	TradeDate     time.Time
	Quantity      decimal.Decimal
	PriceUSD      decimal.Decimal
	CommissionUSD decimal.Decimal
}

// TotalUSD returns the full acquisition cost of the trade in USD:
// quantity * price + commission.
func (t Trade) TotalUSD() decimal.Decimal {
	return t.Quantity.Mul(t.PriceUSD).Add(t.CommissionUSD)
}

// IsBuy reports whether the trade is an acquisition (positive quantity).
func (t Trade) IsBuy() bool {
	return t.Quantity.IsPositive()
}

// RateEnrichedTrade pairs a Trade with the PTAX sell rate resolved for its
// trade date (BRL per USD). The rate is always the one the resolver produced
// for that exact date under the backward-fill policy.
type RateEnrichedTrade struct {
	Trade    Trade
	PTAXRate decimal.Decimal
}

// TotalBRL returns the acquisition cost converted to BRL at the trade's rate.
func (t RateEnrichedTrade) TotalBRL() decimal.Decimal {
	return t.Trade.TotalUSD().Mul(t.PTAXRate)
}
