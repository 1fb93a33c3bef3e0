// Command natunits is a CLI harness for the naturalunits package.
// It demonstrates the CLI integration and provides a working example.
//
// Configuration is loaded with viper from environment variables and an
// optional config file:
//   - NATUNITS_ENERGY_UNIT: Energy unit natural values are shown in (default "eV")
//   - NATUNITS_DIGITS: Significant digits in printed values (default 6)
//   - NATUNITS_CONFIG or --config: Path to a YAML, TOML or JSON config file
//     with energy_unit and digits keys
//
// Without an explicit path, a file named config.{yaml,toml,json} in the
// platform config directory is read if present:
//   - Linux: $XDG_CONFIG_HOME/natunits/ or ~/.config/natunits/
//   - macOS: ~/Library/Application Support/natunits/
//   - Windows: %APPDATA%\natunits\
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	naturalunits "github.com/mtmoschella/natural-units"
	"github.com/mtmoschella/natural-units/quantity"
)

const appName = "natunits"

// CLI exit codes for standardized error reporting.
const (
	// ExitSuccess indicates the operation completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidArgs indicates invalid command line arguments or configuration.
	ExitInvalidArgs = 2

	// ExitUnsupportedDimension indicates a unit outside mass, length, time and current.
	ExitUnsupportedDimension = 3

	// ExitIncompatibleUnit indicates the output unit needs a different power of energy.
	ExitIncompatibleUnit = 4
)

func main() {
	v, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitInvalidArgs)
	}

	cfg := naturalunits.Config{
		EnergyUnit: v.GetString("energy_unit"),
		Digits:     v.GetInt("digits"),
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cmd := naturalunits.NewCommand(cfg, naturalunits.WithLogger(logger))
	cmd.Use = appName
	cmd.PersistentFlags().AddFlagSet(configFlags())

	if err := cmd.Execute(); err != nil {
		os.Exit(exitCodeFromError(err))
	}
}

// configFlags returns the flags read before the command tree runs.
func configFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.String("config", "", "Path to a config file")
	return fs
}

// loadConfig reads defaults, NATUNITS_* environment variables and the
// config file named by --config or NATUNITS_CONFIG, falling back to the
// default config directory.
func loadConfig(args []string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("energy_unit", quantity.ElectronVolt.Name())
	v.SetDefault("digits", naturalunits.DefaultDigits)
	v.SetEnvPrefix("NATUNITS")
	v.AutomaticEnv()

	fs := configFlags()
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil && !errors.Is(err, pflag.ErrHelp) {
		return nil, err
	}
	if err := v.BindPFlag("config", fs.Lookup("config")); err != nil {
		return nil, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		return v, nil
	}

	dir, err := defaultConfigDir()
	if err != nil {
		// No home directory: run on defaults and environment only.
		return v, nil
	}
	v.SetConfigName("config")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config in %s: %w", dir, err)
		}
	}
	return v, nil
}

// exitCodeFromError maps error types to exit codes.
func exitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, naturalunits.ErrUnsupportedDimension):
		return ExitUnsupportedDimension
	case errors.Is(err, naturalunits.ErrIncompatibleUnit):
		return ExitIncompatibleUnit
	case errors.Is(err, naturalunits.ErrInvalidInput),
		errors.Is(err, naturalunits.ErrInvalidOutputUnit),
		errors.Is(err, quantity.ErrUnknownUnit):
		return ExitInvalidArgs
	default:
		return ExitGeneralError
	}
}
