package report

import (
	"github.com/xuri/excelize/v2"
)

var reportColumns = []any{"User ID", "First Name", "Last Name", "Email", "Origin", "Okta Configuration Status"}

// exportRows writes the report workbook, replacing any previous run's file.
// One header row, one row per user, no index column.
func exportRows(rows []Row, path string) (err error) {
	var f = excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var sheet = f.GetSheetName(0)
	if err = f.SetSheetRow(sheet, "A1", &reportColumns); err != nil {
		return
	}
	for i, row := range rows {
		var cell string
		if cell, err = excelize.CoordinatesToCellName(1, i+2); err != nil {
			return
		}
		if err = f.SetSheetRow(sheet, cell, &[]any{
			row.UserId, row.FirstName, row.LastName, row.Email, row.Origin, row.ConfigurationStatus,
		}); err != nil {
			return
		}
	}
	err = f.SaveAs(path)
	return
}
