package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pontopro/internal/payroll"
)

type Config struct {
	DatabasePath string `yaml:"DatabasePath"`

	// CompanyName heads printable reports.
	CompanyName string `yaml:"CompanyName"`

	// Stores maps a store id to its display name. Employees reference
	// stores by id; reports print the display name.
	Stores       map[string]string `yaml:"Stores"`
	DefaultStore string            `yaml:"DefaultStore"`

	// Defaults applied to new employees.
	DailyScheduleMin int `yaml:"DailyScheduleMin"`
	MonthlyBaseMin   int `yaml:"MonthlyBaseMin"`
}

func Load() (*Config, error) {
	configPath := getConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaultDatabasePath()
	}
	if cfg.CompanyName == "" {
		cfg.CompanyName = "Casa de Carnes Bom Jesus"
	}
	if len(cfg.Stores) == 0 {
		cfg.Stores = defaultStores()
	}
	if cfg.DefaultStore == "" {
		cfg.DefaultStore = "LOJA1_TAMBAU"
	}
	if cfg.DailyScheduleMin == 0 {
		cfg.DailyScheduleMin = payroll.DefaultDailyScheduleMin
	}
	if cfg.MonthlyBaseMin == 0 {
		cfg.MonthlyBaseMin = payroll.DefaultMonthlyBaseMin
	}

	// Expand ~ in database path
	if strings.HasPrefix(cfg.DatabasePath, "~/") {
		home, _ := os.UserHomeDir()
		cfg.DatabasePath = filepath.Join(home, cfg.DatabasePath[2:])
	}

	return &cfg, nil
}

func Save(cfg *Config) error {
	configPath := getConfigPath()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

func getConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pontopro.yaml")
}

func defaultDatabasePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pontopro", "data.db")
}

func defaultStores() map[string]string {
	return map[string]string{
		"LOJA1_TAMBAU": "Loja 1 - Tambaú",
		"LOJA2_CENTRO": "Loja 2 - Centro",
	}
}

func getDefaultConfig() *Config {
	return &Config{
		DatabasePath:     defaultDatabasePath(),
		CompanyName:      "Casa de Carnes Bom Jesus",
		Stores:           defaultStores(),
		DefaultStore:     "LOJA1_TAMBAU",
		DailyScheduleMin: payroll.DefaultDailyScheduleMin,
		MonthlyBaseMin:   payroll.DefaultMonthlyBaseMin,
	}
}

// StoreName resolves a store id to its display name, falling back to the id
// itself for stores not in the registry.
func (c *Config) StoreName(id string) string {
	if name, ok := c.Stores[id]; ok {
		return name
	}
	return id
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s - %s", e.Field, e.Message)
}

// Validate checks the configuration for common issues
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return &ValidationError{Field: "DatabasePath", Message: "database path is required"}
	}
	if c.DailyScheduleMin <= 0 {
		return &ValidationError{Field: "DailyScheduleMin", Message: "daily schedule must be positive"}
	}
	if c.MonthlyBaseMin <= 0 {
		return &ValidationError{Field: "MonthlyBaseMin", Message: "monthly base must be positive"}
	}
	if c.DefaultStore != "" {
		if _, ok := c.Stores[c.DefaultStore]; !ok {
			return &ValidationError{Field: "DefaultStore", Message: "default store is not in the store registry"}
		}
	}
	return nil
}
