package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"noondeals/internal/config"
	"noondeals/internal/dealsheet"
	"noondeals/internal/exporter"
	"noondeals/internal/infrastructure"
	"noondeals/internal/sellerdata"
	"noondeals/internal/validation"
)

// dealFlags collects repeatable -deal Column=CODE definitions.
type dealFlags []config.DealConfig

func (d *dealFlags) String() string {
	parts := make([]string, len(*d))
	for i, deal := range *d {
		parts[i] = fmt.Sprintf("%s=%s", deal.Column, deal.Code)
	}
	return strings.Join(parts, ",")
}

func (d *dealFlags) Set(value string) error {
	column, code, found := strings.Cut(value, "=")
	if !found {
		return fmt.Errorf("expected Column=CODE, got %q", value)
	}
	*d = append(*d, config.DealConfig{
		Column: strings.TrimSpace(column),
		Code:   strings.TrimSpace(code),
	})
	return nil
}

func main() {
	var deals dealFlags
	in := flag.String("in", "", "input .xlsx seller data export (required)")
	out := flag.String("out", config.DefaultOutputFile, "output workbook path")
	configPath := flag.String("config", "", "optional YAML configuration file")
	flag.Var(&deals, "deal", "active deal as Column=CODE (repeatable, overrides config file deals)")
	fallbackStock := flag.Int("fallback-stock", config.DefaultFallbackStock, "stock level used when live stock is 0")
	summaries := flag.Bool("summaries", true, "emit per-deal summary sheets")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("%s %s\n", config.AppName, config.AppVersion)
		return
	}

	if *in == "" {
		fmt.Fprintln(os.Stderr, "dealgen: -in is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Flags beat file and environment values, but only when actually set.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fallback-stock":
			cfg.FallbackStock = *fallbackStock
		case "summaries":
			cfg.Summaries = *summaries
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})
	if len(deals) > 0 {
		cfg.Deals = deals
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	ctx := infrastructure.ContextWithRunID(context.Background())

	logger.InfoContext(ctx, "Starting deal sheet generation",
		slog.String("input", *in),
		slog.String("output", *out),
		slog.Int("configured_deals", len(cfg.Deals)),
		slog.Bool("summaries", cfg.Summaries))

	validator := validation.NewWorkbookValidator(logger)
	if err := validator.ValidateInputWorkbook(*in); err != nil {
		logger.ErrorContext(ctx, "Input validation failed",
			slog.String("path", *in),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := validator.ValidateOutputPath(*out); err != nil {
		logger.ErrorContext(ctx, "Output validation failed",
			slog.String("path", *out),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	table, err := sellerdata.ReadWorkbook(ctx, *in)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to read seller data",
			slog.String("path", *in),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	gen, err := dealsheet.NewGenerator(logger, generatorConfig(cfg))
	if err != nil {
		logger.ErrorContext(ctx, "Invalid deal configuration",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	wb := exporter.NewWorkbook(logger)
	defer wb.Close()

	res, err := gen.Run(ctx, table, wb, func(fraction float64) {
		logger.InfoContext(ctx, "Generation progress",
			slog.Int("percent", int(fraction*100)))
	})
	if err != nil {
		logger.ErrorContext(ctx, "Deal sheet generation failed",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, warning := range res.Warnings {
		logger.WarnContext(ctx, "Generation warning", slog.String("warning", warning))
	}

	// The zero-sheet outcome is a warning, not a failure: exit clean
	// without leaving an empty workbook behind.
	if res.Empty() {
		logger.WarnContext(ctx, "No deal sheets generated, no workbook written",
			slog.String("input", *in))
		return
	}

	if err := wb.SaveTo(*out); err != nil {
		logger.ErrorContext(ctx, "Failed to save workbook",
			slog.String("path", *out),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Deal sheets generated",
		slog.Int("sheets_created", res.SheetsCreated),
		slog.Int("summary_sheets", res.SummarySheets),
		slog.Int("partners", res.Partners),
		slog.Int("rows_written", res.RowsWritten),
		slog.Int("rows_skipped", res.RowsSkipped),
		slog.String("output_path", *out))
}

// generatorConfig maps the application configuration onto the engine's.
func generatorConfig(cfg *config.Config) dealsheet.Config {
	out := dealsheet.Config{
		Deals:         make([]dealsheet.Deal, 0, len(cfg.Deals)),
		FallbackStock: cfg.FallbackStock,
		Summaries:     cfg.Summaries,
	}
	for _, d := range cfg.Deals {
		out.Deals = append(out.Deals, dealsheet.Deal{Column: d.Column, Code: d.Code})
	}
	return out
}
