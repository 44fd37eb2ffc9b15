package transition

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the electromagnetic character of a multipole.
type Kind int

const (
	Electric Kind = iota
	Magnetic
)

// String returns the single-letter prefix used in multipole tokens.
func (k Kind) String() string {
	if k == Magnetic {
		return "M"
	}
	return "E"
}

// Name returns the lowercase adjective for reports.
func (k Kind) Name() string {
	if k == Magnetic {
		return "magnetic"
	}
	return "electric"
}

// Opposite returns the other multipole kind.
func (k Kind) Opposite() Kind {
	if k == Magnetic {
		return Electric
	}
	return Magnetic
}

// MarshalText encodes the kind as "E" or "M".
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Multipole is a parsed multipole such as E2 or M1.
// It is produced once by ParseMultipole and never re-parsed downstream.
type Multipole struct {
	Kind  Kind `json:"kind"`
	Order int  `json:"order"`
}

// ParseMultipole parses a token of the form [EM][integer].
// Electric orders may be 0..MaxOrder, magnetic orders 1..MaxOrder.
// E0 parses (its unit label is e^2) but Validate rejects it with
// CodeNoGammaRate, since RateFactor divides by L.
func ParseMultipole(token string) (Multipole, error) {
	if len(token) < 2 {
		return Multipole{}, fmt.Errorf("invalid multipole %q: expected a letter E or M followed by an order", token)
	}

	var m Multipole
	switch token[0] {
	case 'E':
		m.Kind = Electric
	case 'M':
		m.Kind = Magnetic
	default:
		return Multipole{}, fmt.Errorf("invalid multipole %q: type must be E or M", token)
	}

	digits := token[1:]
	if strings.TrimLeft(digits, "0123456789") != "" {
		return Multipole{}, fmt.Errorf("invalid multipole %q: order must be an integer", token)
	}
	order, err := strconv.Atoi(digits)
	if err != nil {
		return Multipole{}, fmt.Errorf("invalid multipole %q: %w", token, err)
	}
	if order < MinOrder || order > MaxOrder {
		return Multipole{}, fmt.Errorf("invalid multipole %q: order must be between %d and %d", token, MinOrder, MaxOrder)
	}
	m.Order = order

	if m.Kind == Magnetic && m.Order == 0 {
		return Multipole{}, fmt.Errorf("invalid multipole %q: magnetic monopole transitions are not allowed", token)
	}
	return m, nil
}

// String formats the multipole back into its token form.
func (m Multipole) String() string {
	return fmt.Sprintf("%s%d", m.Kind, m.Order)
}

// Paired returns the L+1 multipole of opposite kind that mixes with m.
func (m Multipole) Paired() Multipole {
	return Multipole{Kind: m.Kind.Opposite(), Order: m.Order + 1}
}

// LengthPower is the power n of fm^n carried by B for this multipole.
// Electric: 2L. Magnetic: 2L-2.
func (m Multipole) LengthPower() int {
	if m.Kind == Magnetic {
		return 2*m.Order - 2
	}
	return 2 * m.Order
}

// OrderName returns the conventional name of the multipole order.
func (m Multipole) OrderName() string {
	switch m.Order {
	case 0:
		return "monopole"
	case 1:
		return "dipole"
	case 2:
		return "quadrupole"
	case 3:
		return "octupole"
	case 4:
		return "hexadecapole"
	default:
		return fmt.Sprintf("L = %d", m.Order)
	}
}
