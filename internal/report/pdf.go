package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/pontopro/internal/payroll"
	"github.com/pontopro/internal/timesheet"
)

var pdfColWidths = []float64{9, 18, 16, 16, 16, 16, 16, 16, 18, 49}

// WritePDF renders the printable monthly timesheet to w.
func WritePDF(w io.Writer, view *timesheet.MonthView, companyName, storeName string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(120, 8, tr(companyName), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(70, 8, tr("Período: "+view.Month), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(120, 5, tr("Folha de Ponto - "+storeName), "", 0, "L", false, 0, "")
	generated := time.Now().Format("02/01/2006 15:04")
	pdf.CellFormat(70, 5, tr("Gerado em: "+generated), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Employee and totals blocks
	emp := view.Employee
	cfg := emp.Config()
	t := view.Totals

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(95, 6, tr(emp.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(95, 6, tr("Trabalhadas: "+payroll.FormatClockMinutes(&t.WorkedMin)+
		"   Base mensal: "+payroll.FormatClockMinutes(&t.BaseMin)), "", 1, "L", false, 0, "")

	pdf.CellFormat(95, 5, tr(emp.Role), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 5, tr("Excedente: "+payroll.FormatClockMinutes(&t.OvertimeMin)+
		"   Valor exced.: "+payroll.FormatBRL(t.PayFromOvertime)), "", 1, "L", false, 0, "")

	sched := cfg.DailyScheduleMin
	pdf.CellFormat(95, 5, tr("Pagamento: "+payTypeLabel(cfg)+
		"   Jornada diária: "+payroll.FormatClockMinutes(&sched)), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(95, 5, tr("Prévia: "+payroll.FormatBRL(t.Pay)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Day table
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(235, 235, 235)
	for i, col := range columns {
		pdf.CellFormat(pdfColWidths[i], 6, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range BuildRows(view) {
		cells := []string{row.Day, row.Type, row.ClockIn, row.BreakStart, row.BreakEnd,
			row.ClockOut, row.Schedule, row.Worked, row.Bank, row.Notes}
		for i, cell := range cells {
			align := "C"
			if i == len(cells)-1 {
				align = "L"
			}
			pdf.CellFormat(pdfColWidths[i], 5, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	// Signature lines
	pdf.Ln(14)
	y := pdf.GetY()
	pdf.Line(15, y, 95, y)
	pdf.Line(110, y, 190, y)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(15, y+1)
	pdf.CellFormat(80, 5, tr("Assinatura do funcionário"), "", 0, "L", false, 0, "")
	pdf.SetXY(110, y+1)
	pdf.CellFormat(80, 5, tr("Assinatura do responsável"), "", 1, "L", false, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
