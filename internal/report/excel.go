package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/pontopro/internal/payroll"
	"github.com/pontopro/internal/timesheet"
)

// WriteXLSX renders the month grid to a worksheet.
func WriteXLSX(w io.Writer, view *timesheet.MonthView, companyName, storeName string) error {
	f := excelize.NewFile()
	sheet := "Folha de Ponto"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", companyName)
	f.SetCellValue(sheet, "A2", "Folha de Ponto - "+storeName)
	f.SetCellValue(sheet, "A3", view.Employee.Name)
	f.SetCellValue(sheet, "B3", view.Employee.Role)
	f.SetCellValue(sheet, "A4", "Período")
	f.SetCellValue(sheet, "B4", view.Month)

	t := view.Totals
	f.SetCellValue(sheet, "D4", "Trabalhadas")
	f.SetCellValue(sheet, "E4", payroll.FormatClockMinutes(&t.WorkedMin))
	f.SetCellValue(sheet, "F4", "Excedente")
	f.SetCellValue(sheet, "G4", payroll.FormatClockMinutes(&t.OvertimeMin))
	f.SetCellValue(sheet, "H4", "Prévia")
	f.SetCellValue(sheet, "I4", payroll.FormatBRL(t.Pay))

	const headerRow = 6
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		f.SetCellValue(sheet, cell, col)
	}

	for rowIdx, row := range BuildRows(view) {
		values := []string{row.Day, row.Type, row.ClockIn, row.BreakStart, row.BreakEnd,
			row.ClockOut, row.Schedule, row.Worked, row.Bank, row.Notes}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, headerRow+1+rowIdx)
			if err != nil {
				return fmt.Errorf("data cell: %w", err)
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing xlsx: %w", err)
	}
	return nil
}
