package naturalunits

import (
	"log/slog"

	"github.com/mtmoschella/natural-units/quantity"
)

// Option configures a conversion.
type Option func(*convertConfig)

// convertConfig holds configuration for a single conversion.
type convertConfig struct {
	// energyUnit is the unit of energy natural values are expressed in.
	energyUnit quantity.Unit

	// verbose enables diagnostic notices about input promotion.
	verbose bool

	// logger receives notices. When nil and verbose is set, slog.Default() is used.
	logger Logger
}

// newConvertConfig returns a convertConfig with default values.
func newConvertConfig(opts ...Option) *convertConfig {
	cfg := &convertConfig{
		energyUnit: quantity.ElectronVolt,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithEnergyUnit sets the unit of energy ToNaturalUnits expresses results in.
// Default is quantity.ElectronVolt. FromNaturalUnits ignores it.
func WithEnergyUnit(u quantity.Unit) Option {
	return func(c *convertConfig) {
		c.energyUnit = u
	}
}

// WithVerbose enables diagnostic notices, e.g. when a bare unit is promoted
// to a quantity of value 1.
func WithVerbose() Option {
	return func(c *convertConfig) {
		c.verbose = true
	}
}

// WithLogger sets the logger verbose notices are written to.
// If not set, notices go to slog.Default().
func WithLogger(logger Logger) Option {
	return func(c *convertConfig) {
		c.logger = logger
	}
}

// notice logs msg at warning level when verbose mode is on.
func (c *convertConfig) notice(msg string, keysAndValues ...any) {
	if !c.verbose {
		return
	}
	var logger Logger = slog.Default()
	if c.logger != nil {
		logger = c.logger
	}
	logger.Warn(msg, keysAndValues...)
}

// Logger is the interface for diagnostic logging.
// Compatible with slog, zap, logrus, and other structured loggers.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, keysAndValues ...any)
}
