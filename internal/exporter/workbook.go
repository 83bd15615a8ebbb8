package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	apperrors "noondeals/internal/errors"
)

// maxSheetNameLength is the xlsx worksheet name limit enforced by Excel.
const maxSheetNameLength = 31

// reservedSheetNameChars are forbidden in xlsx worksheet names.
const reservedSheetNameChars = `:\/?*[]`

// Workbook accumulates sheets in memory and materializes the xlsx artifact
// only when a caller finalizes it with Bytes or SaveTo. A failed run
// therefore never leaves a partial file behind.
type Workbook struct {
	logger *slog.Logger
	file   *excelize.File
	sheets []string
	names  map[string]struct{}
}

// NewWorkbook creates an empty in-memory workbook.
func NewWorkbook(logger *slog.Logger) *Workbook {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workbook{
		logger: logger,
		file:   excelize.NewFile(),
		names:  make(map[string]struct{}),
	}
}

// WriteSheet appends one sheet holding a header row followed by the data
// rows. The first sheet takes over the workbook's default sheet, so the
// finished artifact contains exactly the sheets written here.
func (w *Workbook) WriteSheet(name string, columns []string, rows [][]any) error {
	if err := w.validateName(name); err != nil {
		return err
	}

	if len(w.sheets) == 0 {
		if err := w.file.SetSheetName(w.file.GetSheetName(0), name); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("rename default sheet to %q", name), err)
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("create sheet %q", name), err)
		}
	}

	header := make([]any, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := w.setRow(name, 1, header); err != nil {
		return err
	}

	for i, row := range rows {
		if err := w.setRow(name, i+2, row); err != nil {
			return err
		}
	}

	w.sheets = append(w.sheets, name)
	w.names[name] = struct{}{}

	w.logger.Debug("sheet written",
		slog.String("sheet", name),
		slog.Int("rows", len(rows)))

	return nil
}

// SheetCount reports how many sheets have been written.
func (w *Workbook) SheetCount() int {
	return len(w.sheets)
}

// SheetNames returns the written sheet names in write order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.sheets))
	copy(names, w.sheets)
	return names
}

// Bytes serializes the workbook into xlsx bytes.
func (w *Workbook) Bytes() ([]byte, error) {
	buf, err := w.file.WriteToBuffer()
	if err != nil {
		return nil, apperrors.NewStorageError("serialize workbook", err)
	}
	return buf.Bytes(), nil
}

// SaveTo writes the workbook to path, creating parent directories as
// needed. A workbook with no sheets is refused: it would still carry the
// excelize default sheet.
func (w *Workbook) SaveTo(path string) error {
	if len(w.sheets) == 0 {
		return apperrors.NewValidationError("workbook has no sheets to save")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("create directory %s", dir), err)
		}
	}

	if err := w.file.SaveAs(path); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("save workbook to %s", path), err)
	}

	w.logger.Info("workbook saved",
		slog.String("path", path),
		slog.Int("sheets", len(w.sheets)))

	return nil
}

// Close releases the underlying excelize resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}

func (w *Workbook) validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewValidationError("sheet name is empty")
	}
	if utf8.RuneCountInString(name) > maxSheetNameLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("sheet name %q exceeds %d characters", name, maxSheetNameLength))
	}
	if strings.ContainsAny(name, reservedSheetNameChars) {
		return apperrors.NewValidationError(
			fmt.Sprintf("sheet name %q contains reserved characters", name))
	}
	if _, dup := w.names[name]; dup {
		return apperrors.NewValidationError(fmt.Sprintf("sheet %q already written", name))
	}
	return nil
}

func (w *Workbook) setRow(sheet string, rowNum int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return apperrors.NewStorageError(
				fmt.Sprintf("address cell %d of row %d on sheet %q", i+1, rowNum, sheet), err)
		}
		if err := w.file.SetCellValue(sheet, cell, v); err != nil {
			return apperrors.NewStorageError(
				fmt.Sprintf("write cell %s on sheet %q", cell, sheet), err)
		}
	}
	return nil
}
