package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	naturalunits "github.com/mtmoschella/natural-units"
	"github.com/mtmoschella/natural-units/quantity"
)

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"unsupported dimension", fmt.Errorf("run: %w", naturalunits.ErrUnsupportedDimension), ExitUnsupportedDimension},
		{"incompatible unit", naturalunits.ErrIncompatibleUnit, ExitIncompatibleUnit},
		{"invalid input", naturalunits.ErrInvalidInput, ExitInvalidArgs},
		{"invalid output unit", naturalunits.ErrInvalidOutputUnit, ExitInvalidArgs},
		{"unknown unit", fmt.Errorf("%w: %q", quantity.ErrUnknownUnit, "furlong"), ExitInvalidArgs},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFromError(tt.err); got != tt.want {
				t.Errorf("exitCodeFromError() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	// Keep a real user config out of the way.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	t.Run("defaults", func(t *testing.T) {
		v, err := loadConfig(nil)
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if got := v.GetString("energy_unit"); got != "eV" {
			t.Errorf("energy_unit = %q, want eV", got)
		}
		if got := v.GetInt("digits"); got != naturalunits.DefaultDigits {
			t.Errorf("digits = %d, want %d", got, naturalunits.DefaultDigits)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("NATUNITS_ENERGY_UNIT", "GeV")
		t.Setenv("NATUNITS_DIGITS", "4")

		v, err := loadConfig([]string{"to", "1", "kg"})
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if got := v.GetString("energy_unit"); got != "GeV" {
			t.Errorf("energy_unit = %q, want GeV", got)
		}
		if got := v.GetInt("digits"); got != 4 {
			t.Errorf("digits = %d, want 4", got)
		}
	})

	t.Run("config file flag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "natunits.yaml")
		if err := os.WriteFile(path, []byte("energy_unit: MeV\ndigits: 8\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		v, err := loadConfig([]string{"--json", "--config", path, "to", "1", "kg"})
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if got := v.GetString("energy_unit"); got != "MeV" {
			t.Errorf("energy_unit = %q, want MeV", got)
		}
		if got := v.GetInt("digits"); got != 8 {
			t.Errorf("digits = %d, want 8", got)
		}
	})

	t.Run("config file from environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "natunits.json")
		if err := os.WriteFile(path, []byte(`{"energy_unit": "TeV"}`), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("NATUNITS_CONFIG", path)

		v, err := loadConfig(nil)
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if got := v.GetString("energy_unit"); got != "TeV" {
			t.Errorf("energy_unit = %q, want TeV", got)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := loadConfig([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml")})
		if err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
