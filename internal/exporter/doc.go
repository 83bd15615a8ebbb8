// Package exporter materializes generated deal sheets as xlsx workbooks.
//
// Workbook implements the deal sheet engine's sink interface: sheets are
// accumulated in an in-memory excelize workbook and nothing touches disk
// until the caller finalizes with SaveTo or Bytes. Sheet names are
// validated against the xlsx format rules (31 character limit, reserved
// characters, uniqueness) before anything is written.
//
// Example usage:
//
//	wb := exporter.NewWorkbook(logger)
//	defer wb.Close()
//
//	err := wb.WriteSheet("P1_Spotlight", columns, rows)
//
//	// Finalize only after the whole run succeeded.
//	err = wb.SaveTo("noon_deal_sheets_generated.xlsx")
package exporter
