package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pontopro/internal/report"
	"github.com/pontopro/internal/timesheet"
)

var reportCmd = &cobra.Command{
	Use:     "report <employee> [YYYY-MM]",
	Aliases: []string{"folha"},
	Short:   "Generate the printable monthly timesheet (PDF)",
	Long: `Generate the monthly timesheet as a PDF ready for printing and
signatures, one row per calendar day plus the pay preview.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := monthViewFromArgs(args)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = fmt.Sprintf("pontopro_%s_%s.pdf", slug(view.Employee.Name), view.Month)
		}
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()

		store := cfg.StoreName(view.Employee.StoreID)
		if err := report.WritePDF(f, view, cfg.CompanyName, store); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", output)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <employee> [YYYY-MM]",
	Short: "Export a month's entries to csv, json, or xlsx",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, err := monthViewFromArgs(args)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = fmt.Sprintf("pontopro_%s_%s.%s", slug(view.Employee.Name), view.Month, format)
		}
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating %s: %w", output, err)
		}
		defer f.Close()

		switch format {
		case "csv":
			err = exportCSV(f, view)
		case "json":
			err = exportJSON(f, view)
		case "xlsx":
			err = report.WriteXLSX(f, view, cfg.CompanyName, cfg.StoreName(view.Employee.StoreID))
		default:
			return fmt.Errorf("unsupported format %q (csv, json, xlsx)", format)
		}
		if err != nil {
			return err
		}
		fmt.Printf("Exported to %s\n", output)
		return nil
	},
}

func monthViewFromArgs(args []string) (*timesheet.MonthView, error) {
	e, err := db.FindEmployee(args[0])
	if err != nil {
		return nil, err
	}
	ym, err := argMonth(args, 1)
	if err != nil {
		return nil, err
	}
	return sheets.MonthView(e, ym)
}

// exportCSV writes the month grid with a semicolon separator, the delimiter
// Brazilian Excel expects.
func exportCSV(f *os.File, view *timesheet.MonthView) error {
	w := csv.NewWriter(f)
	w.Comma = ';'

	header := []string{"Funcionario", "Mes", "Dia", "Tipo", "Entrada", "IntIni", "IntFim",
		"Saida", "SemIntervalo", "Jornada", "Trabalhadas", "Banco", "Obs"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, row := range report.BuildRows(view) {
		skip := ""
		if view.Days[i].Entry.SkipBreak {
			skip = "sim"
		}
		record := []string{view.Employee.Name, view.Month, row.Day, row.Type,
			row.ClockIn, row.BreakStart, row.BreakEnd, row.ClockOut, skip,
			row.Schedule, row.Worked, row.Bank, row.Notes}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

type exportEnvelope struct {
	ExportedAt string                   `json:"exported_at"`
	Employee   exportEmployee           `json:"employee"`
	Month      string                   `json:"month"`
	Totals     exportTotals             `json:"totals"`
	Entries    map[string]exportedEntry `json:"entries_by_day"`
}

type exportTotals struct {
	WorkedMin   int     `json:"worked_min"`
	BaseMin     int     `json:"base_min"`
	OvertimeMin int     `json:"overtime_min"`
	BankMin     int     `json:"bank_min"`
	Absences    int     `json:"absences"`
	Offs        int     `json:"offs"`
	Incomplete  int     `json:"incomplete"`
	Pay         float64 `json:"pay"`
}

type exportEmployee struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	StoreID string `json:"store_id"`
	PayType string `json:"pay_type"`
}

type exportedEntry struct {
	Type       string `json:"type"`
	ClockIn    string `json:"clock_in,omitempty"`
	BreakStart string `json:"break_start,omitempty"`
	BreakEnd   string `json:"break_end,omitempty"`
	ClockOut   string `json:"clock_out,omitempty"`
	SkipBreak  bool   `json:"skip_break,omitempty"`
	Schedule   int    `json:"schedule_min,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func exportJSON(f *os.File, view *timesheet.MonthView) error {
	env := exportEnvelope{
		ExportedAt: time.Now().Format(time.RFC3339),
		Employee: exportEmployee{
			ID:      view.Employee.ID,
			Name:    view.Employee.Name,
			Role:    view.Employee.Role,
			StoreID: view.Employee.StoreID,
			PayType: view.Employee.PayType,
		},
		Month: view.Month,
		Totals: exportTotals{
			WorkedMin:   view.Totals.WorkedMin,
			BaseMin:     view.Totals.BaseMin,
			OvertimeMin: view.Totals.OvertimeMin,
			BankMin:     view.Totals.BankMin,
			Absences:    view.Totals.Absences,
			Offs:        view.Totals.Offs,
			Incomplete:  view.Totals.Incomplete,
			Pay:         view.Totals.Pay,
		},
		Entries: make(map[string]exportedEntry),
	}

	for _, cell := range view.Days {
		if !cell.Stored {
			continue
		}
		env.Entries[cell.Date] = exportedEntry{
			Type:       cell.Row.DayType,
			ClockIn:    cell.Row.ClockIn,
			BreakStart: cell.Row.BreakStart,
			BreakEnd:   cell.Row.BreakEnd,
			ClockOut:   cell.Row.ClockOut,
			SkipBreak:  cell.Row.SkipBreak,
			Schedule:   cell.Row.ScheduleMin,
			Notes:      cell.Row.Notes,
		}
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(env)
}

// slug lowercases a name into a filename-safe token.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

func init() {
	reportCmd.Flags().StringP("output", "o", "", "output file (default pontopro_<name>_<month>.pdf)")

	exportCmd.Flags().StringP("format", "f", "csv", "export format: csv, json, or xlsx")
	exportCmd.Flags().StringP("output", "o", "", "output file (default derived from name and month)")
}
