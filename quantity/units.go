package quantity

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/unit/constant"
)

// Named units. Scales are relative to the coherent SI unit.
var (
	Dimensionless = NewUnit("", 1, nil)

	Kilogram = NewUnit("kg", 1, dims(1, 0, 0, 0))
	Gram     = NewUnit("g", 1e-3, dims(1, 0, 0, 0))

	Metre      = NewUnit("m", 1, dims(0, 1, 0, 0))
	Centimetre = NewUnit("cm", 1e-2, dims(0, 1, 0, 0))
	Kilometre  = NewUnit("km", 1e3, dims(0, 1, 0, 0))
	Femtometre = NewUnit("fm", 1e-15, dims(0, 1, 0, 0))
	Parsec     = NewUnit("pc", 3.0856775814913673e16, dims(0, 1, 0, 0))

	Second     = NewUnit("s", 1, dims(0, 0, 1, 0))
	Nanosecond = NewUnit("ns", 1e-9, dims(0, 0, 1, 0))
	Year       = NewUnit("yr", 365.25*86400, dims(0, 0, 1, 0))
	Hertz      = NewUnit("Hz", 1, dims(0, 0, -1, 0))

	Ampere  = NewUnit("A", 1, dims(0, 0, 0, 1))
	Coulomb = NewUnit("C", 1, dims(0, 0, 1, 1))
	Volt    = NewUnit("V", 1, dims(1, 2, -3, -1))
	Tesla   = NewUnit("T", 1, dims(1, 0, -2, -1))

	Newton = NewUnit("N", 1, dims(1, 1, -2, 0))
	Watt   = NewUnit("W", 1, dims(1, 2, -3, 0))
	Joule  = NewUnit("J", 1, dims(1, 2, -2, 0))
	Erg    = NewUnit("erg", 1e-7, dims(1, 2, -2, 0))

	ElectronVolt     = NewUnit("eV", float64(constant.ElementaryCharge), dims(1, 2, -2, 0))
	KiloElectronVolt = NewUnit("keV", 1e3*float64(constant.ElementaryCharge), dims(1, 2, -2, 0))
	MegaElectronVolt = NewUnit("MeV", 1e6*float64(constant.ElementaryCharge), dims(1, 2, -2, 0))
	GigaElectronVolt = NewUnit("GeV", 1e9*float64(constant.ElementaryCharge), dims(1, 2, -2, 0))
	TeraElectronVolt = NewUnit("TeV", 1e12*float64(constant.ElementaryCharge), dims(1, 2, -2, 0))

	Kelvin  = NewUnit("K", 1, map[Base]Power{Temperature: Int(1)})
	Mole    = NewUnit("mol", 1, map[Base]Power{Amount: Int(1)})
	Candela = NewUnit("cd", 1, map[Base]Power{LuminousIntensity: Int(1)})
	Radian  = NewUnit("rad", 1, map[Base]Power{Angle: Int(1)})
)

var table = map[string]Unit{}

func init() {
	for _, u := range []Unit{
		Kilogram, Gram,
		Metre, Centimetre, Kilometre, Femtometre, Parsec,
		Second, Nanosecond, Year, Hertz,
		Ampere, Coulomb, Volt, Tesla,
		Newton, Watt, Joule, Erg,
		ElectronVolt, KiloElectronVolt, MegaElectronVolt, GigaElectronVolt, TeraElectronVolt,
		Kelvin, Mole, Candela, Radian,
	} {
		table[u.Name()] = u
	}
	table["dimensionless"] = Dimensionless
}

// Lookup returns the named unit with the given symbol, e.g. "GeV".
// Only whole symbols from the table are recognised; no unit algebra is parsed.
// Returns ErrUnknownUnit if the symbol is not in the table.
func Lookup(symbol string) (Unit, error) {
	u, ok := table[symbol]
	if !ok {
		return Unit{}, fmt.Errorf("%w: %q", ErrUnknownUnit, symbol)
	}
	return u, nil
}

// Symbols returns every symbol accepted by Lookup, sorted.
func Symbols() []string {
	symbols := make([]string, 0, len(table))
	for s := range table {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)
	return symbols
}
