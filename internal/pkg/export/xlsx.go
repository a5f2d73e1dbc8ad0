package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/pkg/helpers"
)

const sheetName = "Progress"

// WriteXLSX writes the progress report as an Excel workbook with the same
// column order as the CSV export.
func WriteXLSX(w io.Writer, rows []dto.ProgressExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		required := "No"
		if row.IsRequired {
			required = "Yes"
		}

		values := []interface{}{
			row.EmployeeID,
			row.Name,
			row.Email,
			row.Department,
			row.ModuleTitle,
			row.DisplayOrder,
			required,
			string(row.Status),
			row.Percentage,
			helpers.FormatTimestamp(row.StartedAt),
			helpers.FormatTimestamp(row.CompletedAt),
			row.TimeSpent,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write data row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
