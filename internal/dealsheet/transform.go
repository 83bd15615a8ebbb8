package dealsheet

import (
	"github.com/shopspring/decimal"
)

// columnIndexes holds the resolved positions of the required schema
// columns. offerCode is -1 when summaries are disabled.
type columnIndexes struct {
	partner   int
	sku       int
	price     int
	stock     int
	offerCode int
}

// transformRow maps one eligible input row to an output row: the offer
// price is discounted by the normalized factor and rounded to 2 decimals,
// zero or missing stock falls back to the configured level, and the deal
// code and business model are stamped. Rows whose offer price cannot be
// parsed report false and are dropped.
func transformRow(row []string, factor decimal.Decimal, deal Deal, cols columnIndexes, fallbackStock int) (OutputRow, bool) {
	price, ok := parseDecimal(row[cols.price])
	if !ok {
		return OutputRow{}, false
	}

	// Negative prices from factors above 1 pass through unclamped.
	dealPrice := price.Mul(one.Sub(factor)).Round(2)

	return OutputRow{
		DealCode:      deal.Code,
		PartnerID:     row[cols.partner],
		PartnerSKU:    row[cols.sku],
		DealPrice:     dealPrice,
		DealStock:     resolveStock(row[cols.stock], fallbackStock),
		BusinessModel: BusinessModel,
	}, true
}

// resolveStock applies the stock fallback rule: missing and unparseable
// values count as zero, and zero becomes the fallback level. Any other
// value, negative or fractional included, passes through unchanged.
func resolveStock(raw string, fallback int) float64 {
	v, ok := parseFloat(raw)
	if !ok {
		v = 0
	}
	if v == 0 {
		return float64(fallback)
	}
	return v
}
