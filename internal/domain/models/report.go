package models

import "github.com/shopspring/decimal"

// Report is the full result of processing one statement: the declaration
// year, the per-instrument holdings, and statement-wide totals. It is handed
// to the presentation layer for one response and owns no behavior beyond
// summing its holdings.
type Report struct {
	Year        int
	TotalTrades int
	Holdings    []Holding
}

// TotalUSD returns the summed USD acquisition cost across all holdings.
func (r Report) TotalUSD() decimal.Decimal {
	total := decimal.Zero
	for _, h := range r.Holdings {
		total = total.Add(h.TotalAcquisitionUSD())
	}
	return total
}

// TotalBRL returns the summed BRL acquisition cost across all holdings.
func (r Report) TotalBRL() decimal.Decimal {
	total := decimal.Zero
	for _, h := range r.Holdings {
		total = total.Add(h.TotalAcquisitionBRL())
	}
	return total
}
