package exporter

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "noondeals/internal/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWorkbook_RoundTrip(t *testing.T) {
	wb := NewWorkbook(testLogger())
	defer wb.Close()

	columns := []string{"deal_code", "id_partner", "partner_sku", "deal_price", "deal_stock", "business_model"}
	require.NoError(t, wb.WriteSheet("P1_Spotlight", columns, [][]any{
		{"SPOT-AUG", "P1", "sku-1", 75.5, int64(10), "noon"},
	}))
	require.NoError(t, wb.WriteSheet("Summary_SPOT-AUG", []string{"Offer Code"}, [][]any{
		{"OC-1"},
		{"OC-2"},
	}))

	assert.Equal(t, 2, wb.SheetCount())
	assert.Equal(t, []string{"P1_Spotlight", "Summary_SPOT-AUG"}, wb.SheetNames())

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, wb.SaveTo(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"P1_Spotlight", "Summary_SPOT-AUG"}, f.GetSheetList(),
		"the artifact contains exactly the written sheets")

	rows, err := f.GetRows("P1_Spotlight")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, []string{"SPOT-AUG", "P1", "sku-1", "75.5", "10", "noon"}, rows[1])

	summary, err := f.GetRows("Summary_SPOT-AUG")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Offer Code"}, {"OC-1"}, {"OC-2"}}, summary)
}

func TestWorkbook_ValidateName(t *testing.T) {
	tests := []struct {
		name      string
		sheetName string
		wantErr   bool
	}{
		{name: "plain name", sheetName: "P1_Spotlight", wantErr: false},
		{name: "31 runes accepted", sheetName: strings.Repeat("a", 31), wantErr: false},
		{name: "31 multibyte runes accepted", sheetName: strings.Repeat("é", 31), wantErr: false},
		{name: "32 runes rejected", sheetName: strings.Repeat("a", 32), wantErr: true},
		{name: "empty rejected", sheetName: "", wantErr: true},
		{name: "blank rejected", sheetName: "   ", wantErr: true},
		{name: "colon rejected", sheetName: "Bad:Name", wantErr: true},
		{name: "slash rejected", sheetName: "Bad/Name", wantErr: true},
		{name: "backslash rejected", sheetName: `Bad\Name`, wantErr: true},
		{name: "question mark rejected", sheetName: "Bad?Name", wantErr: true},
		{name: "asterisk rejected", sheetName: "Bad*Name", wantErr: true},
		{name: "brackets rejected", sheetName: "Bad[Name]", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wb := NewWorkbook(testLogger())
			defer wb.Close()

			err := wb.WriteSheet(tt.sheetName, []string{"col"}, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
				assert.Equal(t, 0, wb.SheetCount(), "rejected sheets are not recorded")
			} else {
				require.NoError(t, err)
				assert.Equal(t, 1, wb.SheetCount())
			}
		})
	}
}

func TestWorkbook_DuplicateName(t *testing.T) {
	wb := NewWorkbook(testLogger())
	defer wb.Close()

	require.NoError(t, wb.WriteSheet("P1_Spotlight", []string{"col"}, nil))

	err := wb.WriteSheet("P1_Spotlight", []string{"col"}, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	assert.Equal(t, 1, wb.SheetCount())
}

func TestWorkbook_SaveTo_NoSheets(t *testing.T) {
	wb := NewWorkbook(testLogger())
	defer wb.Close()

	err := wb.SaveTo(filepath.Join(t.TempDir(), "out.xlsx"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
}

func TestWorkbook_SaveTo_CreatesDirectories(t *testing.T) {
	wb := NewWorkbook(testLogger())
	defer wb.Close()

	require.NoError(t, wb.WriteSheet("P1_Spotlight", []string{"col"}, [][]any{{"v"}}))

	path := filepath.Join(t.TempDir(), "nested", "deep", "out.xlsx")
	require.NoError(t, wb.SaveTo(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"P1_Spotlight"}, f.GetSheetList())
}

func TestWorkbook_Bytes(t *testing.T) {
	wb := NewWorkbook(testLogger())
	defer wb.Close()

	require.NoError(t, wb.WriteSheet("P1_Spotlight", []string{"col"}, [][]any{{"v"}}))

	data, err := wb.Bytes()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"P1_Spotlight"}, f.GetSheetList())
}

func TestWorkbook_NilLogger(t *testing.T) {
	wb := NewWorkbook(nil)
	defer wb.Close()

	require.NoError(t, wb.WriteSheet("P1_Spotlight", []string{"col"}, nil))
}
