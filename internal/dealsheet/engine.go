package dealsheet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "noondeals/internal/errors"
	"noondeals/internal/sellerdata"
)

// Generator turns one table of seller data into deal upload sheets.
// It holds no state between runs: Run output depends only on the table
// and the configuration the generator was built with.
type Generator struct {
	logger        *slog.Logger
	deals         []Deal
	fallbackStock int
	summaries     bool
}

// NewGenerator validates the configuration and builds a generator.
// All configuration problems surface here, before any input is read:
// a missing column on an active deal, duplicate active deal codes, no
// active deals at all, or a fallback stock below 1.
func NewGenerator(logger *slog.Logger, cfg Config) (*Generator, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.FallbackStock < 1 {
		return nil, apperrors.NewConfigError(
			fmt.Sprintf("fallback stock must be at least 1, got %d", cfg.FallbackStock), nil)
	}

	active := make([]Deal, 0, len(cfg.Deals))
	seen := make(map[string]struct{})
	for _, d := range cfg.Deals {
		code := strings.TrimSpace(d.Code)
		if code == "" {
			continue
		}
		column := strings.TrimSpace(d.Column)
		if column == "" {
			return nil, apperrors.NewConfigError(
				fmt.Sprintf("deal %q does not name a discount column", code), nil)
		}
		if _, dup := seen[code]; dup {
			return nil, apperrors.NewConfigError(
				fmt.Sprintf("duplicate active deal code %q", code), nil)
		}
		seen[code] = struct{}{}
		active = append(active, Deal{Column: column, Code: code})
	}

	if len(active) == 0 {
		return nil, apperrors.NewConfigError("no active deals configured", nil)
	}

	return &Generator{
		logger:        logger,
		deals:         active,
		fallbackStock: cfg.FallbackStock,
		summaries:     cfg.Summaries,
	}, nil
}

// Deals returns the active deals in configuration order.
func (g *Generator) Deals() []Deal {
	return g.deals
}

// Run partitions the table by partner and writes one sheet per
// (partner, deal) pair with eligible rows, followed by the summary
// sheets when enabled. Progress is reported after each partner. The
// sink is never finalized here; callers decide what to do with the
// artifact based on the returned Result.
func (g *Generator) Run(ctx context.Context, table *sellerdata.Table, sink Sink, progress ProgressFunc) (*Result, error) {
	if table == nil {
		return nil, apperrors.NewValidationError("no seller data provided")
	}
	if sink == nil {
		return nil, apperrors.NewValidationError("no export sink provided")
	}

	g.logger.InfoContext(ctx, "starting deal sheet generation",
		slog.Int("rows", table.RowCount()),
		slog.Int("active_deals", len(g.deals)),
		slog.Bool("summaries", g.summaries))

	cols, err := g.resolveColumns(table)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	dealColumns := g.resolveDealColumns(ctx, table, res)

	groups, _ := table.GroupBy(ColumnPartnerID)
	res.Partners = len(groups)

	acc := newSummaryAccumulator()
	namer := newSheetNamer()

	for i, group := range groups {
		for _, deal := range g.deals {
			discountIdx, ok := dealColumns[deal.Column]
			if !ok {
				continue
			}
			if err := g.writeDealSheet(ctx, group, deal, discountIdx, cols, sink, namer, acc, res); err != nil {
				return nil, err
			}
		}

		reportProgress(progress, i+1, len(groups))
		g.logger.DebugContext(ctx, "partner processed",
			slog.String("partner", group.Key),
			slog.Int("current", i+1),
			slog.Int("total", len(groups)))
	}

	if g.summaries {
		if err := g.writeSummaries(ctx, sink, namer, acc, res); err != nil {
			return nil, err
		}
	}

	if res.Empty() {
		res.Warnings = append(res.Warnings, "no deal sheets were generated: no rows carry a positive discount for any active deal")
		g.logger.WarnContext(ctx, "no deal sheets generated",
			slog.Int("partners", res.Partners),
			slog.Int("rows", table.RowCount()))
		return res, nil
	}

	g.logger.InfoContext(ctx, "deal sheet generation complete",
		slog.Int("sheets_created", res.SheetsCreated),
		slog.Int("summary_sheets", res.SummarySheets),
		slog.Int("partners", res.Partners),
		slog.Int("rows_written", res.RowsWritten),
		slog.Int("rows_skipped", res.RowsSkipped))

	return res, nil
}

// resolveColumns checks the required schema and returns the resolved
// positions. When summaries are enabled the offer code column becomes
// part of the required schema.
func (g *Generator) resolveColumns(table *sellerdata.Table) (columnIndexes, error) {
	required := []string{ColumnPartnerID, ColumnSKU, ColumnOfferPrice, ColumnStock}
	if g.summaries {
		required = append(required, ColumnOfferCode)
	}

	if missing := table.MissingColumns(required...); len(missing) > 0 {
		return columnIndexes{}, apperrors.NewConfigError(
			fmt.Sprintf("input is missing required columns: %s", strings.Join(missing, ", ")), nil,
		).WithContext("missing_columns", missing)
	}

	cols := columnIndexes{offerCode: -1}
	cols.partner, _ = table.ColumnIndex(ColumnPartnerID)
	cols.sku, _ = table.ColumnIndex(ColumnSKU)
	cols.price, _ = table.ColumnIndex(ColumnOfferPrice)
	cols.stock, _ = table.ColumnIndex(ColumnStock)
	if g.summaries {
		cols.offerCode, _ = table.ColumnIndex(ColumnOfferCode)
	}

	return cols, nil
}

// resolveDealColumns maps each active deal column to its position.
// A deal whose column is absent from the input is skipped with a
// warning rather than failing the run.
func (g *Generator) resolveDealColumns(ctx context.Context, table *sellerdata.Table, res *Result) map[string]int {
	dealColumns := make(map[string]int, len(g.deals))
	for _, deal := range g.deals {
		idx, ok := table.ColumnIndex(deal.Column)
		if !ok {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("deal %s skipped: column %q not found in input", deal.Code, deal.Column))
			g.logger.WarnContext(ctx, "deal column not found in input",
				slog.String("deal_code", deal.Code),
				slog.String("column", deal.Column))
			continue
		}
		dealColumns[deal.Column] = idx
	}
	return dealColumns
}

// writeDealSheet builds and writes one (partner, deal) sheet. Partitions
// with no eligible rows produce no sheet.
func (g *Generator) writeDealSheet(ctx context.Context, group sellerdata.Group, deal Deal, discountIdx int, cols columnIndexes, sink Sink, namer *sheetNamer, acc *summaryAccumulator, res *Result) error {
	rows, skipped := g.buildRows(group, deal, discountIdx, cols, acc)
	res.RowsSkipped += skipped
	if skipped > 0 {
		g.logger.DebugContext(ctx, "rows dropped for unparseable offer price",
			slog.String("partner", group.Key),
			slog.String("deal_code", deal.Code),
			slog.Int("rows", skipped))
	}
	if len(rows) == 0 {
		return nil
	}

	name := namer.unique(dealSheetName(group.Key, deal.Column))

	cells := make([][]any, len(rows))
	for i, row := range rows {
		cells[i] = row.cells()
	}

	if err := sink.WriteSheet(name, OutputColumns, cells); err != nil {
		return fmt.Errorf("write sheet %s: %w", name, err)
	}

	res.SheetsCreated++
	res.RowsWritten += len(rows)

	g.logger.DebugContext(ctx, "deal sheet written",
		slog.String("sheet", name),
		slog.String("partner", group.Key),
		slog.String("deal_code", deal.Code),
		slog.Int("rows", len(rows)))

	return nil
}

// buildRows selects the partner's rows eligible for a deal, normalizes
// their discounts and transforms them. The second return value counts
// eligible rows dropped for an unparseable offer price.
func (g *Generator) buildRows(group sellerdata.Group, deal Deal, discountIdx int, cols columnIndexes, acc *summaryAccumulator) ([]OutputRow, int) {
	var eligible [][]string
	var values []decimal.Decimal
	for _, row := range group.Rows {
		d, ok := parseDecimal(row[discountIdx])
		if !ok || !d.IsPositive() {
			continue
		}
		eligible = append(eligible, row)
		values = append(values, d)
	}
	if len(eligible) == 0 {
		return nil, 0
	}

	factors := normalizeDiscounts(values)

	rows := make([]OutputRow, 0, len(eligible))
	skipped := 0
	for i, row := range eligible {
		out, ok := transformRow(row, factors[i], deal, cols, g.fallbackStock)
		if !ok {
			skipped++
			continue
		}
		rows = append(rows, out)

		if g.summaries && cols.offerCode >= 0 {
			acc.add(deal.Code, row[cols.offerCode])
		}
	}

	return rows, skipped
}

// writeSummaries emits one sheet per deal with a non-empty accumulator,
// in deal configuration order.
func (g *Generator) writeSummaries(ctx context.Context, sink Sink, namer *sheetNamer, acc *summaryAccumulator, res *Result) error {
	for _, deal := range g.deals {
		codes := acc.offerCodes(deal.Code)
		if len(codes) == 0 {
			continue
		}

		name := namer.unique(summarySheetName(deal.Code))

		rows := make([][]any, len(codes))
		for i, code := range codes {
			rows[i] = []any{code}
		}

		if err := sink.WriteSheet(name, []string{SummaryColumn}, rows); err != nil {
			return fmt.Errorf("write summary sheet %s: %w", name, err)
		}

		res.SummarySheets++

		g.logger.DebugContext(ctx, "summary sheet written",
			slog.String("sheet", name),
			slog.String("deal_code", deal.Code),
			slog.Int("offer_codes", len(codes)))
	}

	return nil
}

// reportProgress invokes the callback with done/total, tolerating a nil
// callback and an empty run.
func reportProgress(fn ProgressFunc, done, total int) {
	if fn == nil || total == 0 {
		return
	}
	fn(float64(done) / float64(total))
}
