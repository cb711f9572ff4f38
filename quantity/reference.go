package quantity

import (
	"fmt"

	"github.com/c360studio/measure/unit"
)

// Reference pairs a quantity specification with a measurement unit. It
// is the full description of what a numeric value means: "length in
// kilometres", "speed in m/s".
type Reference struct {
	spec *Spec
	unit *unit.Unit
}

// NewReference validates that the unit measures the spec's dimension.
func NewReference(s *Spec, u *unit.Unit) (Reference, error) {
	if s == nil {
		return Reference{}, fmt.Errorf("%w: nil spec", ErrBadDeclaration)
	}
	if !s.Dimension().Equal(u.Dimension()) {
		return Reference{}, fmt.Errorf("%w: unit %s does not measure %s", ErrIncompatible, unit.Symbol(u), s.Name())
	}
	return Reference{spec: s, unit: u}, nil
}

// MustReference is like NewReference but panics on a mismatch. Intended
// for static catalogs.
func MustReference(s *Spec, u *unit.Unit) Reference {
	r, err := NewReference(s, u)
	if err != nil {
		panic(err)
	}
	return r
}

// Spec returns the quantity specification.
func (r Reference) Spec() *Spec { return r.spec }

// Unit returns the measurement unit.
func (r Reference) Unit() *unit.Unit { return r.unit }

// String renders "spec[symbol]".
func (r Reference) String() string {
	if r.spec == nil {
		return ""
	}
	return r.spec.Name() + "[" + unit.Symbol(r.unit) + "]"
}
