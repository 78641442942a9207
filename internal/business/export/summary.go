package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/tcphan/Medicare-Utilization-Dashboard/internal/business/report"
	"github.com/tcphan/Medicare-Utilization-Dashboard/pkg/model"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const summarySheet = "State Summary"

// ContentType returns the MIME type of an export format.
func ContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// SummaryHeader returns the column titles of the state summary export.
func SummaryHeader() []string {
	header := []string{"State", report.MetricTotalProviders}
	for _, svc := range model.Services {
		header = append(header, report.OfferingMetric(svc))
	}
	return append(header, report.MetricQualityOfCare, report.MetricSpending)
}

func summaryRecord(row model.SummaryRow) []string {
	record := []string{row.State, strconv.Itoa(row.Providers)}
	for _, svc := range model.Services {
		record = append(record, strconv.FormatFloat(row.OfferingPct[svc], 'f', 1, 64))
	}
	return append(record, optional(row.QualityOfCare), optional(row.SpendingPerEpisode))
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

// WriteSummary writes the state summary in the given format.
func WriteSummary(w io.Writer, format string, summary model.StateSummary) error {
	switch format {
	case FormatCSV, "":
		return WriteSummaryCSV(w, summary)
	case FormatXLSX:
		return WriteSummaryXLSX(w, summary)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// WriteSummaryCSV writes one header row and one row per state.
func WriteSummaryCSV(w io.Writer, summary model.StateSummary) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(SummaryHeader()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range summary.Rows {
		if err := writer.Write(summaryRecord(row)); err != nil {
			return fmt.Errorf("write row %s: %w", row.State, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSummaryXLSX writes the summary as a single-sheet workbook with numeric
// cells and a total row.
func WriteSummaryXLSX(w io.Writer, summary model.StateSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := SummaryHeader()
	for i, title := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(summarySheet, cell, title); err != nil {
			return fmt.Errorf("set header %s: %w", cell, err)
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		last, _ := excelize.CoordinatesToCellName(len(header), 1)
		_ = f.SetCellStyle(summarySheet, "A1", last, style)
	}

	for r, row := range summary.Rows {
		values := []interface{}{row.State, row.Providers}
		for _, svc := range model.Services {
			values = append(values, row.OfferingPct[svc])
		}
		values = append(values, cellValue(row.QualityOfCare), cellValue(row.SpendingPerEpisode))

		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(summarySheet, cell, &values); err != nil {
			return fmt.Errorf("write row %s: %w", row.State, err)
		}
	}

	totalRow := len(summary.Rows) + 2
	total := []interface{}{"Total", summary.TotalProviders}
	cell, _ := excelize.CoordinatesToCellName(1, totalRow)
	if err := f.SetSheetRow(summarySheet, cell, &total); err != nil {
		return fmt.Errorf("write total: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func cellValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
