package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/salon-booking/internal/dto"
)

const sheetName = "Schedule"

var headers = []string{"Start", "End", "Status", "Service", "Customer", "Phone", "Technician"}

// WriteDaySchedule renders one day's bookings as an XLSX workbook.
func WriteDaySchedule(w io.Writer, date string, items []dto.BookingListItem) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	lastCol, _ := excelize.ColumnNumberToName(len(headers))

	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("Bookings for %s", date))
	_ = f.MergeCell(sheetName, "A1", lastCol+"1")
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}
	_ = f.SetColWidth(sheetName, "A", "B", 10)
	_ = f.SetColWidth(sheetName, "C", lastCol, 20)

	cancelledStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#999999", Strike: true},
	})

	for i, it := range items {
		row := i + 3

		technician := ""
		if it.TechnicianName != nil {
			technician = *it.TechnicianName
		}

		values := []any{
			it.StartAt.Format("15:04"),
			it.EndAt.Format("15:04"),
			it.Status,
			it.ServiceName,
			it.CustomerName,
			it.CustomerPhone,
			technician,
		}
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheetName, start, &values); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}

		if it.Status == "cancelled" {
			end, _ := excelize.CoordinatesToCellName(len(headers), row)
			_ = f.SetCellStyle(sheetName, start, end, cancelledStyle)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
