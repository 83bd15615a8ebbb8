// Package dealsheet turns one table of seller offer data into partner
// deal upload sheets. It owns the whole transformation: discount
// normalization, price and stock rules, partitioning, sheet naming, and
// the per-deal offer code summaries.
//
// # Architecture
//
// The package is organized around a small set of components:
//
// 1. Discount normalization: coerces a deal column's raw values to
// numbers, filters to positive discounts, and infers percent vs
// fraction scale per partner subset
// 2. Row transformation: applies the discounted price, the zero-stock
// fallback, and the constant deal code / business model stamps
// 3. Generator: partitions rows by partner in first-seen order and
// drives sheets through a Sink, reporting progress per partner
// 4. Summary accumulation: collects the distinct offer codes behind
// each deal for the optional summary sheets
//
// # Usage
//
// Build a generator from validated configuration, then run it against a
// seller data table and a sink:
//
//	gen, err := dealsheet.NewGenerator(logger, dealsheet.Config{
//	    Deals:         []dealsheet.Deal{{Column: "Spotlight", Code: "SPOT-AUG"}},
//	    FallbackStock: 10,
//	    Summaries:     true,
//	})
//	if err != nil {
//	    return err
//	}
//
//	res, err := gen.Run(ctx, table, sink, func(fraction float64) {
//	    logger.Info("progress", slog.Float64("fraction", fraction))
//	})
//
// The sink accumulates sheets in memory; the caller finalizes the
// artifact only when Run succeeded and the Result is not empty.
//
// # Data Flow
//
// The flow through this package for each active deal:
//
//	Table → partition by partner → eligible rows → normalized factors → OutputRows → Sink
//
// # Error Handling
//
// Configuration problems (missing required columns, no active deals,
// duplicate deal codes) fail the run before anything is written. Row
// level problems never do: rows without a positive numeric discount are
// ineligible, and eligible rows with an unparseable price are dropped
// and counted in Result.RowsSkipped. A run that produces no sheets at
// all is not an error; it reports a warning in Result.Warnings instead.
package dealsheet
