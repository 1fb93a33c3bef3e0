package quantity

import "testing"

func TestPowerArithmetic(t *testing.T) {
	half := NewPower(1, 2)
	third := NewPower(1, 3)

	tests := []struct {
		name string
		got  Power
		want string
	}{
		{"zero value", Power{}, "0"},
		{"int", Int(-3), "-3"},
		{"normalised", NewPower(2, 4), "1/2"},
		{"add", half.Add(third), "5/6"},
		{"sub", half.Sub(third), "1/6"},
		{"mul", half.Mul(Int(-2)), "-1"},
		{"neg", third.Neg(), "-1/3"},
		{"zero plus half", Power{}.Add(half), "1/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPowerEqual(t *testing.T) {
	if !NewPower(3, 6).Equal(NewPower(1, 2)) {
		t.Error("3/6 should equal 1/2")
	}
	if NewPower(1, 2).Equal(NewPower(1, 3)) {
		t.Error("1/2 should not equal 1/3")
	}
	if !(Power{}).Equal(Int(0)) {
		t.Error("zero value should equal 0")
	}
	if !(Power{}).IsZero() {
		t.Error("zero value should be zero")
	}
	if Int(1).IsZero() {
		t.Error("1 should not be zero")
	}
}

func TestPowerImmutable(t *testing.T) {
	p := NewPower(1, 2)
	_ = p.Add(Int(1))
	_ = p.Mul(Int(4))
	r := p.Rat()
	r.SetInt64(7)

	if p.String() != "1/2" {
		t.Errorf("p mutated to %s", p)
	}
}

func TestPowerFloat64(t *testing.T) {
	if got := NewPower(-1, 2).Float64(); got != -0.5 {
		t.Errorf("Float64() = %v, want -0.5", got)
	}
	if got := (Power{}).Float64(); got != 0 {
		t.Errorf("Float64() = %v, want 0", got)
	}
}
