package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pontopro/internal/config"
	"github.com/pontopro/internal/logger"
	"github.com/pontopro/internal/storage"
	"github.com/pontopro/internal/timesheet"
)

var (
	cfg     *config.Config
	db      *storage.Database
	sheets  *timesheet.Service
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pontopro",
	Short: "Timesheet and payroll preview for the stores",
	Long: `PontoPro tracks daily clock-in/out and break times per employee and
computes worked hours, overtime, the hour bank, and a monthly pay preview.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
			return err
		}
		db, err = storage.New(cfg.DatabasePath)
		if err != nil {
			return err
		}
		sheets = timesheet.New(db)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable diagnostic logging")

	rootCmd.AddCommand(employeeCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
