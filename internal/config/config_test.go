package config

import (
	"testing"

	"github.com/pontopro/internal/payroll"
)

func TestDefaultConfig(t *testing.T) {
	cfg := getDefaultConfig()

	if cfg.DatabasePath == "" {
		t.Error("default config should set a database path")
	}
	if cfg.DailyScheduleMin != payroll.DefaultDailyScheduleMin {
		t.Errorf("DailyScheduleMin = %d, want %d", cfg.DailyScheduleMin, payroll.DefaultDailyScheduleMin)
	}
	if cfg.MonthlyBaseMin != payroll.DefaultMonthlyBaseMin {
		t.Errorf("MonthlyBaseMin = %d, want %d", cfg.MonthlyBaseMin, payroll.DefaultMonthlyBaseMin)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestStoreName(t *testing.T) {
	cfg := getDefaultConfig()

	tests := []struct {
		id       string
		expected string
	}{
		{"LOJA1_TAMBAU", "Loja 1 - Tambaú"},
		{"LOJA2_CENTRO", "Loja 2 - Centro"},
		{"UNKNOWN_STORE", "UNKNOWN_STORE"}, // falls back to the id
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			result := cfg.StoreName(tt.id)
			if result != tt.expected {
				t.Errorf("StoreName(%q) = %q, want %q", tt.id, result, tt.expected)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing db path", func(c *Config) { c.DatabasePath = "" }, "DatabasePath"},
		{"zero schedule", func(c *Config) { c.DailyScheduleMin = 0 }, "DailyScheduleMin"},
		{"negative base", func(c *Config) { c.MonthlyBaseMin = -1 }, "MonthlyBaseMin"},
		{"unregistered default store", func(c *Config) { c.DefaultStore = "NOPE" }, "DefaultStore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := getDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			ve, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantErr {
				t.Errorf("ValidationError.Field = %q, want %q", ve.Field, tt.wantErr)
			}
		})
	}
}
