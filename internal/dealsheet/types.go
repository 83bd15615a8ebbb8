package dealsheet

import (
	"math"

	"github.com/shopspring/decimal"
)

// Required input columns, matched against trimmed header text.
const (
	ColumnPartnerID  = "ID Partner"
	ColumnSKU        = "Psku"
	ColumnOfferPrice = "Offer Price"
	ColumnStock      = "Psku Live Express Stock"
	ColumnOfferCode  = "Offer Code"
)

// BusinessModel is stamped into every output row.
const BusinessModel = "noon"

// SummaryColumn is the single header of summary sheets.
const SummaryColumn = "Offer Code"

// OutputColumns is the fixed column order of every deal sheet.
var OutputColumns = []string{
	"deal_code",
	"id_partner",
	"partner_sku",
	"deal_price",
	"deal_stock",
	"business_model",
}

// Deal maps one input column holding discount values to a deal code.
type Deal struct {
	Column string
	Code   string
}

// Config holds the generator settings for one run.
type Config struct {
	// Deals lists the deal slots; only slots with a non-empty trimmed
	// code take part in generation.
	Deals []Deal
	// FallbackStock replaces live stock levels of zero. Must be >= 1.
	FallbackStock int
	// Summaries controls whether per-deal offer code summary sheets
	// are emitted.
	Summaries bool
}

// DefaultConfig returns a configuration with the standard fallback
// stock and summaries enabled. Deals must still be supplied.
func DefaultConfig() Config {
	return Config{
		FallbackStock: 10,
		Summaries:     true,
	}
}

// Sink receives finished sheets. Implementations collect them into an
// artifact that is finalized by the caller after a successful run.
type Sink interface {
	WriteSheet(name string, columns []string, rows [][]any) error
}

// ProgressFunc observes run progress as a fraction in (0, 1]. It is
// invoked after each partner partition completes. A nil ProgressFunc
// disables reporting.
type ProgressFunc func(fraction float64)

// OutputRow is one transformed record of a deal sheet.
type OutputRow struct {
	DealCode      string
	PartnerID     string
	PartnerSKU    string
	DealPrice     decimal.Decimal
	DealStock     float64
	BusinessModel string
}

// cells renders the row in OutputColumns order. Prices and stock are
// emitted as numeric cells; integral stock values become integers.
func (r OutputRow) cells() []any {
	return []any{
		r.DealCode,
		r.PartnerID,
		r.PartnerSKU,
		r.DealPrice.InexactFloat64(),
		numericCell(r.DealStock),
		r.BusinessModel,
	}
}

func numericCell(v float64) any {
	if v == math.Trunc(v) {
		return int64(v)
	}
	return v
}

// Result carries the diagnostics of one generation run.
type Result struct {
	// SheetsCreated counts partner deal sheets written to the sink.
	SheetsCreated int
	// SummarySheets counts summary sheets written to the sink.
	SummarySheets int
	// Partners is the number of partner partitions processed.
	Partners int
	// RowsWritten is the total number of data rows across deal sheets.
	RowsWritten int
	// RowsSkipped counts eligible rows dropped because their offer
	// price could not be parsed.
	RowsSkipped int
	// Warnings holds human-readable notes about non-fatal conditions.
	Warnings []string
}

// Empty reports whether the run produced no sheets at all.
func (r *Result) Empty() bool {
	return r.SheetsCreated == 0 && r.SummarySheets == 0
}
