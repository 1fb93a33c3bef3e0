package naturalunits

import (
	"errors"
	"testing"

	"github.com/mtmoschella/natural-units/quantity"
	"gonum.org/v1/gonum/unit"
)

func TestInputKind(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  InputKind
		str   string
	}{
		{"zero", Input{}, InputNone, "none"},
		{"quantity", FromQuantity(quantity.New(quantity.Metre, 1)), InputQuantity, "quantity"},
		{"unit", FromUnit(quantity.Metre), InputUnit, "unit"},
		{"scalar", FromScalar(1, 2), InputScalar, "scalar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
			if got := tt.input.Kind().String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
		})
	}
}

func TestInputResolve(t *testing.T) {
	cfg := newConvertConfig()

	t.Run("unit becomes one", func(t *testing.T) {
		q, err := FromUnit(quantity.Kilogram).resolve(cfg, false)
		if err != nil {
			t.Fatalf("resolve() error = %v", err)
		}
		if q.Value() != 1 || q.Unit().Name() != "kg" {
			t.Errorf("resolve() = %v, want 1 kg", q)
		}
	})

	t.Run("scalar becomes dimensionless", func(t *testing.T) {
		q, err := FromScalar(2, 3).resolve(cfg, true)
		if err != nil {
			t.Fatalf("resolve() error = %v", err)
		}
		if !q.Unit().IsDimensionless() || q.Len() != 2 {
			t.Errorf("resolve() = %v, want [2 3]", q)
		}
	})

	t.Run("scalar rejected", func(t *testing.T) {
		if _, err := FromScalar(2).resolve(cfg, false); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("resolve() error = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("zero input rejected", func(t *testing.T) {
		if _, err := (Input{}).resolve(cfg, true); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("resolve() error = %v, want ErrInvalidInput", err)
		}
	})
}

func TestFromScalarCopies(t *testing.T) {
	values := []float64{1, 2}
	in := FromScalar(values...)
	values[0] = 99

	q, err := in.resolve(newConvertConfig(), true)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if q.Values()[0] != 1 {
		t.Errorf("FromScalar kept a reference to the caller's slice")
	}
}

var widgetDim = unit.NewDimension("widget")

func TestFromUniterUnknownDimension(t *testing.T) {
	_, err := FromUniter(unit.New(1, unit.Dimensions{widgetDim: 1}))
	if !errors.Is(err, quantity.ErrUnknownDimension) {
		t.Errorf("FromUniter() error = %v, want ErrUnknownDimension", err)
	}
}
