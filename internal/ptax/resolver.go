// Package ptax resolves official daily USD→BRL reference rates (PTAX sell
// rate) for arbitrary calendar dates.
//
// Rates are only published on business days, so the resolver applies a
// backward-fill policy: a date with no published rate takes the rate of the
// most recent earlier date that has one, searching up to a fixed number of
// days back. The upstream series is fetched once per resolution batch.
package ptax

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLookbackDays is how far back the resolver searches for a published
// rate before giving up on a date. Ten days covers weekends plus the usual
// holiday clusters.
const DefaultLookbackDays = 10

// RateSource fetches the published rate series for a date range.
//
// The returned map is keyed by publication date (midnight UTC); a date absent
// from the map means no rate was published that day. Implementations must not
// backward-fill themselves; that is the resolver's job.
type RateSource interface {
	FetchRange(ctx context.Context, start, end time.Time) (map[time.Time]decimal.Decimal, error)
}

// NoRateError reports that a requested date had no published rate anywhere in
// the backward-search window.
type NoRateError struct {
	Date time.Time
}

func (e *NoRateError) Error() string {
	return fmt.Sprintf("no ptax rate found for %s", e.Date.Format("2006-01-02"))
}

// Resolver maps trade dates to applicable PTAX rates using a single upstream
// range fetch per call. It holds no state between calls; every Resolve
// invocation fetches fresh data for its own range.
type Resolver struct {
	source   RateSource
	lookback int
}

// NewResolver builds a Resolver over the given source. lookbackDays bounds
// the backward search per date; values < 1 fall back to DefaultLookbackDays.
func NewResolver(source RateSource, lookbackDays int) *Resolver {
	if lookbackDays < 1 {
		lookbackDays = DefaultLookbackDays
	}
	return &Resolver{source: source, lookback: lookbackDays}
}

// Resolve returns the applicable rate for every requested date.
//
// It issues one range fetch spanning lookback days before the earliest
// requested date through the latest requested date, then walks backward from
// each date until it hits a published rate. The walk never moves forward: a
// Saturday resolves to Friday's rate, never to Monday's.
//
// Errors:
//   - *NoRateError if any date exhausts the backward window; no partial
//     results are returned.
//   - Upstream fetch failures propagate unchanged.
//
// An empty date set resolves to an empty map without touching the source.
func (r *Resolver) Resolve(ctx context.Context, dates []time.Time) (map[time.Time]decimal.Decimal, error) {
	if len(dates) == 0 {
		return map[time.Time]decimal.Decimal{}, nil
	}

	earliest, latest := dateBounds(dates)

	series, err := r.source.FetchRange(ctx, earliest.AddDate(0, 0, -r.lookback), latest)
	if err != nil {
		return nil, err
	}

	resolved := make(map[time.Time]decimal.Decimal, len(dates))
	for _, d := range dates {
		day := truncateToDate(d)
		rate, ok := r.lookupBackward(series, day)
		if !ok {
			return nil, &NoRateError{Date: day}
		}
		resolved[day] = rate
	}

	return resolved, nil
}

// lookupBackward finds the rate for day or the nearest earlier day within the
// lookback window.
func (r *Resolver) lookupBackward(series map[time.Time]decimal.Decimal, day time.Time) (decimal.Decimal, bool) {
	for back := 0; back <= r.lookback; back++ {
		if rate, ok := series[day.AddDate(0, 0, -back)]; ok {
			return rate, true
		}
	}
	return decimal.Decimal{}, false
}

func dateBounds(dates []time.Time) (earliest, latest time.Time) {
	earliest = truncateToDate(dates[0])
	latest = earliest
	for _, d := range dates[1:] {
		day := truncateToDate(d)
		if day.Before(earliest) {
			earliest = day
		}
		if day.After(latest) {
			latest = day
		}
	}
	return earliest, latest
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
