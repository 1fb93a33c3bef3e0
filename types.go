package naturalunits

import (
	"fmt"

	"github.com/mtmoschella/natural-units/quantity"
)

// DefaultDigits is the number of significant digits printed by NewCommand.
const DefaultDigits = 6

// Config configures the command tree returned by NewCommand.
type Config struct {
	// EnergyUnit is the symbol of the energy unit natural values are shown in.
	// Example: "GeV". If empty, "eV" is used.
	EnergyUnit string

	// Digits is the number of significant digits in printed values.
	// If zero or negative, DefaultDigits is used.
	Digits int
}

// energyUnit resolves EnergyUnit against the unit table.
// Returns ErrInvalidOutputUnit if the symbol does not name a unit of energy.
func (c Config) energyUnit() (quantity.Unit, error) {
	symbol := c.EnergyUnit
	if symbol == "" {
		symbol = quantity.ElectronVolt.Name()
	}
	u, err := quantity.Lookup(symbol)
	if err != nil {
		return quantity.Unit{}, err
	}
	if u.PhysicalType() != "energy" {
		return quantity.Unit{}, fmt.Errorf("%w: %s is a unit of %s", ErrInvalidOutputUnit, symbol, u.PhysicalType())
	}
	return u, nil
}

// digits returns Digits, or DefaultDigits if unset.
func (c Config) digits() int {
	if c.Digits <= 0 {
		return DefaultDigits
	}
	return c.Digits
}
