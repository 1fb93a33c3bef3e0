package quantity

import "math/big"

// Power is an exact rational exponent of a base dimension.
// The zero value is 0. Power values are immutable; every operation
// returns a new Power.
type Power struct {
	r *big.Rat
}

// NewPower returns num/den. It panics if den is zero.
func NewPower(num, den int64) Power {
	return Power{r: big.NewRat(num, den)}
}

// Int returns the integer power n.
func Int(n int64) Power {
	return NewPower(n, 1)
}

func (p Power) rat() *big.Rat {
	if p.r == nil {
		return new(big.Rat)
	}
	return p.r
}

// Add returns p + q.
func (p Power) Add(q Power) Power {
	return Power{r: new(big.Rat).Add(p.rat(), q.rat())}
}

// Sub returns p - q.
func (p Power) Sub(q Power) Power {
	return Power{r: new(big.Rat).Sub(p.rat(), q.rat())}
}

// Mul returns p * q.
func (p Power) Mul(q Power) Power {
	return Power{r: new(big.Rat).Mul(p.rat(), q.rat())}
}

// Neg returns -p.
func (p Power) Neg() Power {
	return Power{r: new(big.Rat).Neg(p.rat())}
}

// Equal reports whether p and q are the same rational number.
func (p Power) Equal(q Power) bool {
	return p.rat().Cmp(q.rat()) == 0
}

// IsZero reports whether p is 0.
func (p Power) IsZero() bool {
	return p.rat().Sign() == 0
}

// Float64 returns the nearest float64 to p.
func (p Power) Float64() float64 {
	f, _ := p.rat().Float64()
	return f
}

// Rat returns a copy of p as a *big.Rat.
func (p Power) Rat() *big.Rat {
	return new(big.Rat).Set(p.rat())
}

// String returns "n" for integers and "n/d" otherwise.
func (p Power) String() string {
	return p.rat().RatString()
}
