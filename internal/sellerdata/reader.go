package sellerdata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	apperrors "noondeals/internal/errors"
)

// ReadWorkbook reads the first worksheet of an xlsx file into a Table.
// The first row is taken as the header; everything under it is data.
func ReadWorkbook(ctx context.Context, path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.WarnContext(ctx, "failed to close workbook", slog.String("path", path), slog.String("error", cerr.Error()))
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("workbook has no sheets", nil)
	}

	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read sheet %s", sheetName), err)
	}
	if len(rows) == 0 {
		return nil, apperrors.NewParsingError(fmt.Sprintf("sheet %s is empty", sheetName), nil)
	}

	table := NewTable(rows[0], rows[1:])

	slog.InfoContext(ctx, "seller data loaded",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("rows", table.RowCount()),
		slog.Int("columns", len(table.Columns())))

	return table, nil
}
