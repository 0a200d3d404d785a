// Package statement parses brokerage activity statement CSV exports.
//
// Activity statements are multi-section files: every row starts with a
// section name (column 0) and a row type (column 1), and different sections
// have different column layouts. Only the "Trades" and "Financial Instrument
// Information" sections are of interest here; everything else is skipped.
package statement

import (
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/ptaxfolio/internal/domain/models"
)

const (
	sectionTrades      = "Trades"
	sectionInstruments = "Financial Instrument Information"

	rowTypeData = "Data"

	// Only rows flagged as individual orders are real trades; "SubTotal" and
	// "Total" rows are aggregation artifacts from the broker.
	discriminatorOrder = "Order"

	// Non-equity asset classes are out of scope.
	assetCategoryStocks = "Stocks"

	dateTimeLayout = "2006-01-02, 15:04:05"
)

// Trade row columns (0-indexed):
//
//	 0 Section            ("Trades")
//	 1 Row type           ("Data")
//	 2 DataDiscriminator  ("Order", "SubTotal", "Total")
//	 3 Asset Category
//	 4 Currency
//	 5 Symbol
//	 6 Date/Time          ("2025-01-03, 07:52:59")
//	 7 Quantity
//	 8 T. Price
//	 9 C. Price
//	10 Proceeds
//	11 Comm/Fee
//	12 Basis
//	13 Realized P/L
const (
	colDiscriminator = 2
	colAssetCategory = 3
	colSymbol        = 5
	colDateTime      = 6
	colQuantity      = 7
	colPrice         = 8
	colCommission    = 11

	minTradeColumns = 14
)

// Instrument rows use column 3 for the symbol and column 4 (when present)
// for the description.
const (
	colInstrumentSymbol      = 3
	colInstrumentDescription = 4
)

// Parse reads a full statement and returns the buy trades in input order plus
// a symbol → description map built from the instrument information section.
//
// Behavior:
//   - Tolerates a UTF-8 byte-order mark at the start of the content.
//   - Rows with a malformed or missing required field are skipped silently;
//     a bad row never aborts parsing of the rest of the file.
//   - Sell and short rows (non-positive quantity) are dropped.
func Parse(content string) ([]models.Trade, map[string]string) {
	content = strings.TrimPrefix(content, "\ufeff")

	var trades []models.Trade
	descriptions := make(map[string]string)

	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed line; the reader resumes on the next one.
			continue
		}
		if len(rec) < 2 {
			continue
		}

		section := rec[0]
		rowType := rec[1]

		if section == sectionTrades && rowType == rowTypeData && len(rec) >= minTradeColumns {
			if trade, ok := parseTradeRow(rec); ok && trade.IsBuy() {
				trades = append(trades, trade)
			}
		}

		if section == sectionInstruments && rowType == rowTypeData && len(rec) > colInstrumentSymbol {
			symbol := rec[colInstrumentSymbol]
			description := symbol
			if len(rec) > colInstrumentDescription {
				description = rec[colInstrumentDescription]
			}
			descriptions[symbol] = description
		}
	}

	return trades, descriptions
}

// parseTradeRow converts one candidate trade row into a Trade. It returns
// ok=false for rows that are not individual stock orders or that carry any
// unparseable required field.
func parseTradeRow(rec []string) (models.Trade, bool) {
	if rec[colDiscriminator] != discriminatorOrder {
		return models.Trade{}, false
	}
	if rec[colAssetCategory] != assetCategoryStocks {
		return models.Trade{}, false
	}

	symbol := rec[colSymbol]
	if symbol == "" {
		return models.Trade{}, false
	}

	ts, err := time.Parse(dateTimeLayout, rec[colDateTime])
	if err != nil {
		return models.Trade{}, false
	}
	// Only the date portion matters for rate matching and aggregation.
	tradeDate := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)

	quantity, err := decimal.NewFromString(rec[colQuantity])
	if err != nil {
		return models.Trade{}, false
	}
	if quantity.IsZero() {
		return models.Trade{}, false
	}

	price, err := decimal.NewFromString(rec[colPrice])
	if err != nil {
		return models.Trade{}, false
	}

	// The broker reports fees with a negative sign; the magnitude is what
	// counts toward acquisition cost.
	commission, err := decimal.NewFromString(rec[colCommission])
	if err != nil {
		return models.Trade{}, false
	}

	return models.Trade{
		Symbol:        symbol,
		TradeDate:     tradeDate,
		Quantity:      quantity,
		PriceUSD:      price,
		CommissionUSD: commission.Abs(),
	}, true
}

// GroupTradesBySymbol splits trades into per-symbol groups. Symbols appear in
// first-occurrence order and each group preserves the relative input order of
// its trades.
func GroupTradesBySymbol(trades []models.Trade) ([]string, map[string][]models.Trade) {
	var symbols []string
	grouped := make(map[string][]models.Trade)

	for _, t := range trades {
		if _, ok := grouped[t.Symbol]; !ok {
			symbols = append(symbols, t.Symbol)
		}
		grouped[t.Symbol] = append(grouped[t.Symbol], t)
	}

	return symbols, grouped
}
