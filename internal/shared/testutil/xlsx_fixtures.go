package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// WriteWorkbook writes rows as the single sheet of a new xlsx file at
// path. Cell values keep their Go types, so numbers land as numeric
// cells the way real seller exports carry them.
func WriteWorkbook(t *testing.T, path, sheet string, rows [][]any) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != f.GetSheetName(0) {
		require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))
	}
	target := f.GetSheetName(0)

	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(target, cell, val))
		}
	}

	require.NoError(t, f.SaveAs(path))
}
