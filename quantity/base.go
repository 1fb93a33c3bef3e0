package quantity

// Base is an SI base dimension.
type Base int

// Base dimensions, in the order they are reported by Unit.Decompose.
const (
	Mass Base = iota
	Length
	Time
	Current
	Temperature
	Amount
	LuminousIntensity
	Angle
)

// Bases lists every base dimension in canonical order.
var Bases = []Base{Mass, Length, Time, Current, Temperature, Amount, LuminousIntensity, Angle}

// Symbol returns the SI base unit symbol for b, e.g. "kg" for Mass.
func (b Base) Symbol() string {
	switch b {
	case Mass:
		return "kg"
	case Length:
		return "m"
	case Time:
		return "s"
	case Current:
		return "A"
	case Temperature:
		return "K"
	case Amount:
		return "mol"
	case LuminousIntensity:
		return "cd"
	case Angle:
		return "rad"
	default:
		return "?"
	}
}

// String returns the dimension name, e.g. "mass".
func (b Base) String() string {
	switch b {
	case Mass:
		return "mass"
	case Length:
		return "length"
	case Time:
		return "time"
	case Current:
		return "current"
	case Temperature:
		return "temperature"
	case Amount:
		return "amount of substance"
	case LuminousIntensity:
		return "luminous intensity"
	case Angle:
		return "angle"
	default:
		return "unknown"
	}
}
