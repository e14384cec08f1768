package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pontopro/internal/payroll"
	"github.com/pontopro/internal/storage"
	"github.com/pontopro/internal/timesheet"
)

var employeeCmd = &cobra.Command{
	Use:     "employee",
	Aliases: []string{"emp", "funcionario"},
	Short:   "Manage employees",
}

var employeeAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new employee",
	Long: `Register an employee with their pay configuration.
Money flags accept Brazilian formatting ("2.500,00"); the schedule flag is a
4-digit duration ("0800" = 8h).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := &storage.Employee{
			Name:             strings.Join(args, " "),
			DailyScheduleMin: cfg.DailyScheduleMin,
			MonthlyBaseMin:   cfg.MonthlyBaseMin,
			StoreID:          cfg.DefaultStore,
			PayType:          payroll.PaySalary.String(),
		}
		if err := applyEmployeeFlags(cmd, e); err != nil {
			return err
		}
		if err := db.CreateEmployee(e); err != nil {
			return err
		}
		fmt.Printf("Employee %s registered | id: %s | store: %s\n", e.Name, e.ID[:8], cfg.StoreName(e.StoreID))
		return nil
	},
}

var employeeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List active employees",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _ := cmd.Flags().GetString("store")
		employees, err := db.GetEmployees(store)
		if err != nil {
			return err
		}
		if len(employees) == 0 {
			fmt.Println("No employees registered")
			return nil
		}
		for _, e := range employees {
			sched := e.DailyScheduleMin
			pay := payroll.FormatBRL(e.MonthlySalary)
			if payroll.ParsePayType(e.PayType) == payroll.PayHourly {
				pay = payroll.FormatBRL(e.HourlyRate) + "/h"
			}
			fmt.Printf("%s  %-24s %-14s %-18s jornada %s  %s\n",
				e.ID[:8], e.Name, e.Role, cfg.StoreName(e.StoreID),
				payroll.FormatClockMinutes(&sched), pay)
		}
		return nil
	},
}

var employeeUpdateCmd = &cobra.Command{
	Use:   "update <employee>",
	Short: "Update an employee's configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := db.FindEmployee(args[0])
		if err != nil {
			return err
		}
		if name, _ := cmd.Flags().GetString("name"); cmd.Flags().Changed("name") {
			e.Name = name
		}
		if err := applyEmployeeFlags(cmd, e); err != nil {
			return err
		}
		if err := db.UpdateEmployee(e); err != nil {
			return err
		}
		fmt.Printf("Employee %s updated\n", e.Name)
		return nil
	},
}

var employeeRemoveCmd = &cobra.Command{
	Use:     "remove <employee>",
	Aliases: []string{"rm", "deactivate"},
	Short:   "Deactivate an employee",
	Long:    `Deactivate an employee. The record and its entries are kept, only hidden.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := db.FindEmployee(args[0])
		if err != nil {
			return err
		}
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Deactivate %s? Use --force to confirm.\n", e.Name)
			return nil
		}
		if err := db.DeactivateEmployee(e.ID); err != nil {
			return err
		}
		fmt.Printf("Employee %s deactivated\n", e.Name)
		return nil
	},
}

// applyEmployeeFlags copies the pay-configuration flags that were explicitly
// set onto e.
func applyEmployeeFlags(cmd *cobra.Command, e *storage.Employee) error {
	if role, _ := cmd.Flags().GetString("role"); cmd.Flags().Changed("role") {
		e.Role = role
	}
	if store, _ := cmd.Flags().GetString("store"); cmd.Flags().Changed("store") {
		if _, ok := cfg.Stores[store]; !ok {
			return fmt.Errorf("unknown store %q", store)
		}
		e.StoreID = store
	}
	if pay, _ := cmd.Flags().GetString("pay"); cmd.Flags().Changed("pay") {
		switch strings.ToLower(pay) {
		case "salary", "salario":
			e.PayType = payroll.PaySalary.String()
		case "hourly", "hora":
			e.PayType = payroll.PayHourly.String()
		default:
			return fmt.Errorf("invalid pay type %q (use salary or hourly)", pay)
		}
	}
	if salary, _ := cmd.Flags().GetString("salary"); cmd.Flags().Changed("salary") {
		e.MonthlySalary = payroll.ParseMoneyBR(salary)
	}
	if rate, _ := cmd.Flags().GetString("rate"); cmd.Flags().Changed("rate") {
		e.HourlyRate = payroll.ParseMoneyBR(rate)
	}
	if sched, _ := cmd.Flags().GetString("schedule"); cmd.Flags().Changed("schedule") {
		min, ok := payroll.ScheduleFromCompact(sched)
		if !ok {
			return fmt.Errorf("invalid schedule %q (use 4 digits, e.g. 0800)", sched)
		}
		e.DailyScheduleMin = min
	}
	if baseHours, _ := cmd.Flags().GetInt("base-hours"); cmd.Flags().Changed("base-hours") {
		if baseHours <= 0 {
			return fmt.Errorf("base hours must be positive")
		}
		e.MonthlyBaseMin = baseHours * 60
	}
	return nil
}

var logCmd = &cobra.Command{
	Use:     "log <employee> [date]",
	Aliases: []string{"l", "entry"},
	Short:   "Log or edit a day entry",
	Long: `Log the times of one day. Times are 4-digit clock values ("0700");
the date defaults to today. Flags not given keep their stored value.

Examples:
  pontopro log maria --in 0700 --break-start 1100 --break-end 1300 --out 1900
  pontopro log maria 2024-03-02 --type off
  pontopro log maria --out 1830 --note "inventário"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := db.FindEmployee(args[0])
		if err != nil {
			return err
		}
		date, err := argDate(args, 1)
		if err != nil {
			return err
		}

		if del, _ := cmd.Flags().GetBool("delete"); del {
			if err := sheets.RemoveEntry(e.ID, date); err != nil {
				return err
			}
			fmt.Printf("Entry %s removed for %s\n", date, e.Name)
			return nil
		}

		cell, err := sheets.DayView(e, date)
		if err != nil {
			return err
		}
		row := cell.Row
		row.EmployeeID = e.ID
		row.Date = date

		if err := applyEntryFlags(cmd, &row); err != nil {
			return err
		}
		if err := sheets.SaveEntry(row); err != nil {
			return err
		}

		cell, err = sheets.DayView(e, date)
		if err != nil {
			return err
		}
		badge, _ := payroll.StatusBadge(cell.Result.Status, cell.Entry.DayType)
		fmt.Printf("Saved %s %s | worked: %s | bank: %s | %s\n",
			e.Name, date,
			payroll.FormatClockMinutes(cell.Result.WorkedMin),
			payroll.FormatBank(cell.Result.BankMin),
			badge)
		return nil
	},
}

func applyEntryFlags(cmd *cobra.Command, row *storage.DayRow) error {
	if dt, _ := cmd.Flags().GetString("type"); cmd.Flags().Changed("type") {
		token, err := dayTypeToken(dt)
		if err != nil {
			return err
		}
		row.DayType = token
	}
	if row.DayType == "" {
		row.DayType = payroll.DayNormal.String()
	}

	clocks := []struct {
		flag   string
		target *string
	}{
		{"in", &row.ClockIn},
		{"break-start", &row.BreakStart},
		{"break-end", &row.BreakEnd},
		{"out", &row.ClockOut},
	}
	for _, c := range clocks {
		if !cmd.Flags().Changed(c.flag) {
			continue
		}
		v, _ := cmd.Flags().GetString(c.flag)
		v = strings.ReplaceAll(strings.TrimSpace(v), ":", "")
		if v == "" {
			*c.target = "" // explicit clear
			continue
		}
		if _, ok := payroll.ClockFromCompact(v); !ok {
			return fmt.Errorf("invalid --%s value %q (use 4 digits, e.g. 0730)", c.flag, v)
		}
		*c.target = v
	}

	if cmd.Flags().Changed("skip-break") {
		row.SkipBreak, _ = cmd.Flags().GetBool("skip-break")
	}
	if sched, _ := cmd.Flags().GetString("schedule"); cmd.Flags().Changed("schedule") {
		min, ok := payroll.ScheduleFromCompact(sched)
		if !ok {
			return fmt.Errorf("invalid schedule %q (use 4 digits, e.g. 0800)", sched)
		}
		row.ScheduleMin = min
	}
	if note, _ := cmd.Flags().GetString("note"); cmd.Flags().Changed("note") {
		row.Notes = note
	}
	return nil
}

func dayTypeToken(s string) (string, error) {
	switch strings.ToLower(s) {
	case "normal":
		return payroll.DayNormal.String(), nil
	case "off", "folga":
		return payroll.DayOff.String(), nil
	case "absent", "falta":
		return payroll.DayAbsent.String(), nil
	case "medical", "atestado":
		return payroll.DayMedicalLeave.String(), nil
	case "holiday", "feriado":
		return payroll.DayHoliday.String(), nil
	case "other", "outro":
		return payroll.DayOther.String(), nil
	}
	return "", fmt.Errorf("invalid day type %q (normal, off, absent, medical, holiday, other)", s)
}

var dayCmd = &cobra.Command{
	Use:     "day <employee> [date]",
	Aliases: []string{"d"},
	Short:   "Show one day's calculation",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := db.FindEmployee(args[0])
		if err != nil {
			return err
		}
		date, err := argDate(args, 1)
		if err != nil {
			return err
		}
		cell, err := sheets.DayView(e, date)
		if err != nil {
			return err
		}

		badge, _ := payroll.StatusBadge(cell.Result.Status, cell.Entry.DayType)
		sched := payroll.EffectiveSchedule(cell.Entry, e.Config())
		fmt.Printf("%s | %s | %s\n", e.Name, date, cell.Entry.DayType.Label())
		fmt.Printf("  In: %s  Break: %s - %s  Out: %s  Schedule: %s\n",
			payroll.FormatClockMinutes(cell.Entry.ClockIn),
			payroll.FormatClockMinutes(cell.Entry.BreakStart),
			payroll.FormatClockMinutes(cell.Entry.BreakEnd),
			payroll.FormatClockMinutes(cell.Entry.ClockOut),
			payroll.FormatClockMinutes(&sched))
		fmt.Printf("  Worked: %s  Extra: %s  Bank: %s  Paid: %d min  Status: %s\n",
			payroll.FormatClockMinutes(cell.Result.WorkedMin),
			payroll.FormatClockMinutes(cell.Result.ExtraMin),
			payroll.FormatBank(cell.Result.BankMin),
			cell.Result.PaidMin, badge)
		if cell.Entry.Notes != "" {
			fmt.Printf("  Notes: %s\n", cell.Entry.Notes)
		}
		return nil
	},
}

var weekCmd = &cobra.Command{
	Use:     "week <employee> [last|date]",
	Aliases: []string{"w", "semana"},
	Short:   "Show the Monday-to-Sunday summary",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := db.FindEmployee(args[0])
		if err != nil {
			return err
		}

		ref := time.Now()
		if len(args) > 1 {
			if args[1] == "last" {
				ref = ref.AddDate(0, 0, -7)
			} else {
				t, err := time.Parse(payroll.DateFormat, args[1])
				if err != nil {
					return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", args[1])
				}
				ref = t
			}
		}

		view, err := sheets.WeekView(e, payroll.WeekStartOf(ref))
		if err != nil {
			return err
		}

		t := view.Totals
		fmt.Printf("Week %s to %s | %s\n",
			t.WeekStart.Format(payroll.DateFormat), t.WeekEnd.Format(payroll.DateFormat), e.Name)
		summary := fmt.Sprintf("Worked: %s | Bank: %s | Absences: %d | Medical: %d | Incomplete: %d",
			payroll.FormatClockMinutes(&t.WorkedMin), payroll.FormatBank(&t.BankMin),
			t.Absences, t.MedicalLeaves, t.Incomplete)
		if payroll.ParsePayType(e.PayType) == payroll.PayHourly {
			summary += " | Week pay: " + payroll.FormatBRL(t.Pay)
		}
		fmt.Println(summary)

		for _, cell := range view.Days {
			printDayLine(cell)
		}
		return nil
	},
}

var monthCmd = &cobra.Command{
	Use:     "month <employee> [YYYY-MM]",
	Aliases: []string{"m", "mes"},
	Short:   "Show the monthly summary and pay preview",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := db.FindEmployee(args[0])
		if err != nil {
			return err
		}
		ym, err := argMonth(args, 1)
		if err != nil {
			return err
		}

		view, err := sheets.MonthView(e, ym)
		if err != nil {
			return err
		}

		t := view.Totals
		fmt.Printf("Month %s | %s | %s\n", ym, e.Name, cfg.StoreName(e.StoreID))
		fmt.Printf("Worked: %s / base %s | Overtime: %s (%s) | Bank: %s\n",
			payroll.FormatClockMinutes(&t.WorkedMin),
			payroll.FormatClockMinutes(&t.BaseMin),
			payroll.FormatClockMinutes(&t.OvertimeMin),
			payroll.FormatBRL(t.PayFromOvertime),
			payroll.FormatBank(&t.BankMin))
		fmt.Printf("Offs: %d | Absences: %d | Medical: %d | Incomplete: %d\n",
			t.Offs, t.Absences, t.MedicalLeaves, t.Incomplete)
		fmt.Printf("Pay preview: %s\n", payroll.FormatBRL(t.Pay))

		all, _ := cmd.Flags().GetBool("all")
		for _, cell := range view.Days {
			if !all && !cell.Stored {
				continue
			}
			printDayLine(cell)
		}
		return nil
	},
}

func printDayLine(cell timesheet.DayCell) {
	badge, _ := payroll.StatusBadge(cell.Result.Status, cell.Entry.DayType)
	fmt.Printf("  %s  %-8s in %-6s out %-6s worked %-7s bank %-7s %s\n",
		cell.Date, cell.Entry.DayType.Label(),
		payroll.FormatClockMinutes(cell.Entry.ClockIn),
		payroll.FormatClockMinutes(cell.Entry.ClockOut),
		payroll.FormatClockMinutes(cell.Result.WorkedMin),
		payroll.FormatBank(cell.Result.BankMin),
		badge)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Config: DB=%s | Company=%s\n", cfg.DatabasePath, cfg.CompanyName)
		sched := cfg.DailyScheduleMin
		base := cfg.MonthlyBaseMin
		fmt.Printf("Defaults: daily schedule %s | monthly base %s\n",
			payroll.FormatClockMinutes(&sched), payroll.FormatClockMinutes(&base))
		for id, name := range cfg.Stores {
			marker := ""
			if id == cfg.DefaultStore {
				marker = " (default)"
			}
			fmt.Printf("Store %s: %s%s\n", id, name, marker)
		}
		return nil
	},
}

var completionCmd = &cobra.Command{
	Use:                   "completion [bash|zsh|fish|powershell]",
	Short:                 "Generate shell completion script",
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletion(os.Stdout)
		}
		return nil
	},
}

// argDate reads an optional ISO date argument, defaulting to today.
func argDate(args []string, idx int) (string, error) {
	if len(args) <= idx {
		return time.Now().Format(payroll.DateFormat), nil
	}
	t, err := time.Parse(payroll.DateFormat, args[idx])
	if err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", args[idx])
	}
	return t.Format(payroll.DateFormat), nil
}

// argMonth reads an optional "YYYY-MM" argument, defaulting to this month.
func argMonth(args []string, idx int) (string, error) {
	if len(args) <= idx {
		return time.Now().Format("2006-01"), nil
	}
	t, err := time.Parse("2006-01", args[idx])
	if err != nil {
		return "", fmt.Errorf("invalid month %q (use YYYY-MM)", args[idx])
	}
	return t.Format("2006-01"), nil
}

func init() {
	employeeCmd.AddCommand(employeeAddCmd)
	employeeCmd.AddCommand(employeeListCmd)
	employeeCmd.AddCommand(employeeUpdateCmd)
	employeeCmd.AddCommand(employeeRemoveCmd)

	for _, c := range []*cobra.Command{employeeAddCmd, employeeUpdateCmd} {
		c.Flags().String("role", "", "job title")
		c.Flags().String("store", "", "store id")
		c.Flags().String("pay", "", "pay type: salary or hourly")
		c.Flags().String("salary", "", "monthly salary, Brazilian format (2.500,00)")
		c.Flags().String("rate", "", "hourly rate, Brazilian format (20,00)")
		c.Flags().String("schedule", "", "daily schedule, 4 digits (0800)")
		c.Flags().Int("base-hours", 0, "monthly base in hours (220)")
	}
	employeeUpdateCmd.Flags().String("name", "", "employee name")
	employeeListCmd.Flags().String("store", "", "filter by store id")
	employeeRemoveCmd.Flags().Bool("force", false, "confirm deactivation")

	logCmd.Flags().String("type", "", "day type: normal, off, absent, medical, holiday, other")
	logCmd.Flags().String("in", "", "clock-in, 4 digits (0700)")
	logCmd.Flags().String("break-start", "", "break start, 4 digits (1100)")
	logCmd.Flags().String("break-end", "", "break end, 4 digits (1300)")
	logCmd.Flags().String("out", "", "clock-out, 4 digits (1900)")
	logCmd.Flags().Bool("skip-break", false, "no break this day")
	logCmd.Flags().String("schedule", "", "schedule override, 4 digits (0800)")
	logCmd.Flags().String("note", "", "free-text note")
	logCmd.Flags().Bool("delete", false, "remove the entry instead of saving")

	monthCmd.Flags().Bool("all", false, "print all 31 days, not only logged ones")
}
