package sellerdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "noondeals/internal/errors"
	"noondeals/internal/shared/testutil"
)

func writeGarbage(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("not a spreadsheet"), 0644))
}

func TestReadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sellers.xlsx")
	testutil.WriteWorkbook(t, path, "Export", [][]any{
		{" ID Partner ", "Psku", "Offer Price", "Psku Live Express Stock"},
		{"P1", "sku-1", 100.0, 5},
		{"P2", "sku-2", 49.99, 0},
	})

	table, err := ReadWorkbook(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ID Partner", "Psku", "Offer Price", "Psku Live Express Stock"}, table.Columns())
	require.Equal(t, 2, table.RowCount())
	assert.Equal(t, "P1", table.Rows()[0][0])
	assert.Equal(t, "49.99", table.Rows()[1][2])
}

func TestReadWorkbook_FirstSheetOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sellers.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName(f.GetSheetName(0), "First"))
	_, err := f.NewSheet("Second")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("First", "A1", "ID Partner"))
	require.NoError(t, f.SetCellValue("First", "A2", "P1"))
	require.NoError(t, f.SetCellValue("Second", "A1", "Other"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	table, err := ReadWorkbook(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ID Partner"}, table.Columns())
	assert.Equal(t, 1, table.RowCount())
}

func TestReadWorkbook_FileNotFound(t *testing.T) {
	_, err := ReadWorkbook(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"))

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestReadWorkbook_NotAWorkbook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.xlsx")
	writeGarbage(t, path)

	_, err := ReadWorkbook(context.Background(), path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
}

func TestReadWorkbook_EmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := ReadWorkbook(context.Background(), path)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))
	assert.Contains(t, err.Error(), "empty")
}

func TestReadWorkbook_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "headers.xlsx")
	testutil.WriteWorkbook(t, path, "Sheet1", [][]any{
		{"ID Partner", "Psku"},
	})

	table, err := ReadWorkbook(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, table.RowCount())
}
