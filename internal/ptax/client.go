package ptax

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the Banco Central do Brasil open-data API.
	DefaultBaseURL = "https://api.bcb.gov.br"

	// DefaultSeriesCode is SGS series 1: USD/BRL sell rate (PTAX venda).
	DefaultSeriesCode = 1

	// The SGS API exchanges dates as dd/MM/yyyy.
	sgsDateLayout = "02/01/2006"
)

// sgsObservation is one entry of an SGS series response. Values arrive as
// strings and are kept exact by parsing them into decimals.
type sgsObservation struct {
	Date  string `json:"data"`
	Value string `json:"valor"`
}

// Client fetches PTAX rate series from the BCB SGS API. It implements
// RateSource and is safe for concurrent use.
type Client struct {
	http   *resty.Client
	series int
}

// NewClient builds a Client against the given base URL (DefaultBaseURL for
// production) with the given SGS series code and request timeout.
func NewClient(baseURL string, series int, timeout time.Duration) *Client {
	if series <= 0 {
		series = DefaultSeriesCode
	}
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	return &Client{http: c, series: series}
}

// FetchRange retrieves all published rates in [start, end] keyed by
// publication date at midnight UTC. Dates the central bank did not publish
// (weekends, holidays) are simply absent from the result.
func (c *Client) FetchRange(ctx context.Context, start, end time.Time) (map[time.Time]decimal.Decimal, error) {
	var observations []sgsObservation

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"formato":     "json",
			"dataInicial": start.Format(sgsDateLayout),
			"dataFinal":   end.Format(sgsDateLayout),
		}).
		SetResult(&observations).
		Get(fmt.Sprintf("/dados/serie/bcdata.sgs.%d/dados", c.series))
	if err != nil {
		return nil, fmt.Errorf("fetch ptax series: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch ptax series: status %d", resp.StatusCode())
	}

	rates := make(map[time.Time]decimal.Decimal, len(observations))
	for _, obs := range observations {
		day, err := time.Parse(sgsDateLayout, obs.Date)
		if err != nil {
			return nil, fmt.Errorf("fetch ptax series: invalid date %q: %w", obs.Date, err)
		}
		rate, err := decimal.NewFromString(obs.Value)
		if err != nil {
			return nil, fmt.Errorf("fetch ptax series: invalid rate %q for %s: %w", obs.Value, obs.Date, err)
		}
		rates[time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)] = rate
	}

	return rates, nil
}

// Ping checks that the rate source is reachable by fetching the last few
// days of the series. Used by the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	now := time.Now().UTC()
	_, err := c.FetchRange(ctx, now.AddDate(0, 0, -5), now)
	return err
}
