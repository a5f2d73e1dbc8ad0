package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ethos-training/ethos/internal/app/models/dto"
	"github.com/ethos-training/ethos/internal/pkg/helpers"
)

// Header is the fixed column order of the progress report.
var Header = []string{
	"Employee ID",
	"Name",
	"Email",
	"Department",
	"Module Title",
	"Order",
	"Required",
	"Status",
	"Progress %",
	"Started At",
	"Completed At",
	"Time Spent",
}

// WriteCSV writes the progress report as CSV with the fixed column order.
func WriteCSV(w io.Writer, rows []dto.ProgressExportRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		if err := writer.Write(recordFor(row)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// recordFor flattens one export row into CSV fields.
func recordFor(row dto.ProgressExportRow) []string {
	required := "No"
	if row.IsRequired {
		required = "Yes"
	}

	return []string{
		row.EmployeeID,
		row.Name,
		row.Email,
		row.Department,
		row.ModuleTitle,
		strconv.Itoa(row.DisplayOrder),
		required,
		string(row.Status),
		strconv.Itoa(row.Percentage),
		helpers.FormatTimestamp(row.StartedAt),
		helpers.FormatTimestamp(row.CompletedAt),
		formatTimeSpent(row.TimeSpent),
	}
}

// formatTimeSpent renders seconds as a whole number of seconds.
func formatTimeSpent(seconds int64) string {
	return strconv.FormatInt(seconds, 10)
}
