package statement

import (
	"time"

	"github.com/guttosm/ptaxfolio/internal/domain/models"
)

// FilterByYear retains only trades whose trade date falls in the given
// calendar year.
func FilterByYear(trades []models.Trade, year int) []models.Trade {
	var out []models.Trade
	for _, t := range trades {
		if t.TradeDate.Year() == year {
			out = append(out, t)
		}
	}
	return out
}

// FilterUntil retains only trades executed on or before the cutoff date
// (inclusive).
func FilterUntil(trades []models.Trade, cutoff time.Time) []models.Trade {
	var out []models.Trade
	for _, t := range trades {
		if !t.TradeDate.After(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// DeclarationYear returns the calendar year of the latest trade date in the
// sequence. The second return value is false when there are no trades.
func DeclarationYear(trades []models.Trade) (int, bool) {
	if len(trades) == 0 {
		return 0, false
	}
	latest := trades[0].TradeDate
	for _, t := range trades[1:] {
		if t.TradeDate.After(latest) {
			latest = t.TradeDate
		}
	}
	return latest.Year(), true
}
