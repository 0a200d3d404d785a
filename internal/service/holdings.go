package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/ptaxfolio/internal/domain/models"
	"github.com/guttosm/ptaxfolio/internal/statement"
)

// RateResolver resolves the applicable PTAX rate for each requested date.
// Satisfied by *ptax.Resolver; tests inject deterministic fakes.
type RateResolver interface {
	Resolve(ctx context.Context, dates []time.Time) (map[time.Time]decimal.Decimal, error)
}

// HoldingsService defines the statement-processing business logic.
type HoldingsService interface {
	// Aggregate groups buy trades by symbol, enriches each with the PTAX
	// rate of its trade date, and returns one Holding per symbol in
	// first-seen order. An empty trade slice yields an empty result without
	// any rate lookup. If rate resolution fails for any date, no holdings
	// are returned.
	Aggregate(ctx context.Context, trades []models.Trade, descriptions map[string]string) ([]models.Holding, error)

	// BuildReport runs the full pipeline for one parsed statement: derive
	// the declaration year from the latest trade, keep trades up to Dec 31
	// of that year, aggregate, and attach summary totals.
	BuildReport(ctx context.Context, trades []models.Trade, descriptions map[string]string) (*models.Report, error)
}

type holdingsService struct {
	resolver RateResolver
}

// NewHoldingsService constructs the service over the given rate resolver.
func NewHoldingsService(resolver RateResolver) HoldingsService {
	return &holdingsService{resolver: resolver}
}

func (s *holdingsService) Aggregate(ctx context.Context, trades []models.Trade, descriptions map[string]string) ([]models.Holding, error) {
	if len(trades) == 0 {
		return []models.Holding{}, nil
	}

	rates, err := s.resolver.Resolve(ctx, distinctDates(trades))
	if err != nil {
		return nil, err
	}

	symbols, grouped := statement.GroupTradesBySymbol(trades)

	holdings := make([]models.Holding, 0, len(symbols))
	for _, symbol := range symbols {
		symbolTrades := grouped[symbol]

		enriched := make([]models.RateEnrichedTrade, 0, len(symbolTrades))
		for _, t := range symbolTrades {
			enriched = append(enriched, models.RateEnrichedTrade{
				Trade:    t,
				PTAXRate: rates[t.TradeDate],
			})
		}

		description, ok := descriptions[symbol]
		if !ok || description == "" {
			description = symbol
		}

		holdings = append(holdings, models.Holding{
			Symbol:      symbol,
			Description: description,
			Trades:      enriched,
		})
	}

	return holdings, nil
}

func (s *holdingsService) BuildReport(ctx context.Context, trades []models.Trade, descriptions map[string]string) (*models.Report, error) {
	year, ok := statement.DeclarationYear(trades)
	if !ok {
		return &models.Report{Holdings: []models.Holding{}}, nil
	}

	endOfYear := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	filtered := statement.FilterUntil(trades, endOfYear)

	holdings, err := s.Aggregate(ctx, filtered, descriptions)
	if err != nil {
		return nil, err
	}

	return &models.Report{
		Year:        year,
		TotalTrades: len(filtered),
		Holdings:    holdings,
	}, nil
}

// distinctDates collects the unique trade dates across all trades.
func distinctDates(trades []models.Trade) []time.Time {
	seen := make(map[time.Time]struct{}, len(trades))
	var dates []time.Time
	for _, t := range trades {
		if _, ok := seen[t.TradeDate]; !ok {
			seen[t.TradeDate] = struct{}{}
			dates = append(dates, t.TradeDate)
		}
	}
	return dates
}
