package quantity

import (
	"fmt"
	"math"
	"strconv"

	"github.com/c360studio/measure/magnitude"
	"github.com/c360studio/measure/unit"
)

// Rep is the set of numeric representations a quantity can carry.
// Integer quantities convert exactly or not at all; float quantities
// accept rounding.
type Rep interface {
	int64 | float64
}

// Quantity is a numeric value bound to a reference. The zero value is a
// dimensionless zero in unit one.
type Quantity[R Rep] struct {
	value R
	spec  *Spec
	unit  *unit.Unit
}

// New binds a value to a validated reference.
func New[R Rep](value R, ref Reference) Quantity[R] {
	return Quantity[R]{value: value, spec: ref.spec, unit: ref.unit}
}

// Of builds a quantity directly from a spec and unit, validating the
// dimension match.
func Of[R Rep](value R, s *Spec, u *unit.Unit) (Quantity[R], error) {
	ref, err := NewReference(s, u)
	if err != nil {
		return Quantity[R]{}, err
	}
	return New(value, ref), nil
}

// MustOf is like Of but panics on a mismatch.
func MustOf[R Rep](value R, s *Spec, u *unit.Unit) Quantity[R] {
	q, err := Of(value, s, u)
	if err != nil {
		panic(err)
	}
	return q
}

// Value returns the numeric value in the quantity's own unit.
func (q Quantity[R]) Value() R { return q.value }

// Unit returns the measurement unit.
func (q Quantity[R]) Unit() *unit.Unit {
	if q.unit == nil {
		return unit.One
	}
	return q.unit
}

// Spec returns the quantity specification.
func (q Quantity[R]) Spec() *Spec {
	if q.spec == nil {
		return Dimensionless
	}
	return q.spec
}

// Ref returns the quantity's reference.
func (q Quantity[R]) Ref() Reference {
	return Reference{spec: q.Spec(), unit: q.Unit()}
}

// In converts the quantity to another unit of the same dimension. For
// integer representations the scaled value must land on a whole number;
// anything else fails with ErrPrecisionLoss (use a float quantity or
// ValueCast first).
func (q Quantity[R]) In(u *unit.Unit) (Quantity[R], error) {
	f, err := unit.ConversionFactor(q.Unit(), u)
	if err != nil {
		return Quantity[R]{}, err
	}
	v, err := scaleValue(q.value, f)
	if err != nil {
		return Quantity[R]{}, err
	}
	return Quantity[R]{value: v, spec: q.Spec(), unit: u}, nil
}

// MustIn is like In but panics on error.
func (q Quantity[R]) MustIn(u *unit.Unit) Quantity[R] {
	out, err := q.In(u)
	if err != nil {
		panic(err)
	}
	return out
}

// As converts the quantity to another specification of the same
// dimension. Only implicit conversions succeed: a radius is a length,
// but turning a length into a radius needs SpecCast.
func (q Quantity[R]) As(to *Spec) (Quantity[R], error) {
	switch convertibleTo(q.Spec(), to) {
	case convYes:
		return Quantity[R]{value: q.value, spec: to, unit: q.Unit()}, nil
	case convExplicit, convCast:
		return Quantity[R]{}, fmt.Errorf("%w: %s to %s", ErrExplicitCastRequired, q.Spec().Name(), to.Name())
	}
	return Quantity[R]{}, fmt.Errorf("%w: %s to %s", ErrIncompatible, q.Spec().Name(), to.Name())
}

// SpecCast forces a conversion between related specifications,
// including sibling kinds and ancestor-to-child refinements.
func (q Quantity[R]) SpecCast(to *Spec) (Quantity[R], error) {
	if !Castable(q.Spec(), to) {
		return Quantity[R]{}, fmt.Errorf("%w: %s to %s", ErrIncompatible, q.Spec().Name(), to.Name())
	}
	return Quantity[R]{value: q.value, spec: to, unit: q.Unit()}, nil
}

// Add returns q + o. The operands' specs must share a common kind and
// their units a common unit; the result carries both.
func (q Quantity[R]) Add(o Quantity[R]) (Quantity[R], error) {
	return q.combine(o, func(a, b R) R { return a + b })
}

// Sub returns q - o under the same rules as Add.
func (q Quantity[R]) Sub(o Quantity[R]) (Quantity[R], error) {
	return q.combine(o, func(a, b R) R { return a - b })
}

func (q Quantity[R]) combine(o Quantity[R], op func(a, b R) R) (Quantity[R], error) {
	if q.Spec().Character() != o.Spec().Character() {
		return Quantity[R]{}, fmt.Errorf("%w: %s is %s, %s is %s", ErrIncompatible,
			q.Spec().Name(), q.Spec().Character(), o.Spec().Name(), o.Spec().Character())
	}
	spec, err := Common(q.Spec(), o.Spec())
	if err != nil {
		return Quantity[R]{}, err
	}
	u, err := unit.Common(q.Unit(), o.Unit())
	if err != nil {
		return Quantity[R]{}, fmt.Errorf("%w: %v", ErrIncompatible, err)
	}
	a, err := q.In(u)
	if err != nil {
		return Quantity[R]{}, err
	}
	b, err := o.In(u)
	if err != nil {
		return Quantity[R]{}, err
	}
	return Quantity[R]{value: op(a.value, b.value), spec: spec, unit: u}, nil
}

// Mul returns q · o. Specs and units compose independently; no common
// dimension is required.
func (q Quantity[R]) Mul(o Quantity[R]) Quantity[R] {
	return Quantity[R]{
		value: q.value * o.value,
		spec:  Mul(q.Spec(), o.Spec()),
		unit:  unit.Mul(q.Unit(), o.Unit()),
	}
}

// Div returns q / o. Integer division truncates, as with plain Go
// integers.
func (q Quantity[R]) Div(o Quantity[R]) Quantity[R] {
	return Quantity[R]{
		value: q.value / o.value,
		spec:  Div(q.Spec(), o.Spec()),
		unit:  unit.Div(q.Unit(), o.Unit()),
	}
}

// Times scales the quantity by a plain number.
func (q Quantity[R]) Times(k R) Quantity[R] {
	return Quantity[R]{value: q.value * k, spec: q.Spec(), unit: q.Unit()}
}

// Neg returns -q.
func (q Quantity[R]) Neg() Quantity[R] {
	return Quantity[R]{value: -q.value, spec: q.Spec(), unit: q.Unit()}
}

// Cmp compares two convertible quantities, returning -1, 0 or 1. Both
// operands are brought to their common unit first, so integer
// comparisons stay exact.
func (q Quantity[R]) Cmp(o Quantity[R]) (int, error) {
	u, err := unit.Common(q.Unit(), o.Unit())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrIncompatible, err)
	}
	a, err := q.In(u)
	if err != nil {
		return 0, err
	}
	b, err := o.In(u)
	if err != nil {
		return 0, err
	}
	switch {
	case a.value < b.value:
		return -1, nil
	case a.value > b.value:
		return 1, nil
	}
	return 0, nil
}

// Equal reports whether two quantities denote the same amount,
// regardless of unit.
func (q Quantity[R]) Equal(o Quantity[R]) (bool, error) {
	c, err := q.Cmp(o)
	return c == 0, err
}

// String renders "value symbol", e.g. "42 km".
func (q Quantity[R]) String() string {
	v := ""
	switch x := any(q.value).(type) {
	case int64:
		v = strconv.FormatInt(x, 10)
	case float64:
		v = strconv.FormatFloat(x, 'g', -1, 64)
	}
	sym := unit.Symbol(q.Unit())
	if sym == "" {
		return v
	}
	return v + " " + sym
}

// ValueCast converts the representation, acknowledging any narrowing.
// Float-to-int truncates toward zero.
func ValueCast[To, From Rep](q Quantity[From]) Quantity[To] {
	var to To
	switch any(to).(type) {
	case int64:
		to = any(int64(q.value)).(To)
	case float64:
		to = any(float64(q.value)).(To)
	}
	return Quantity[To]{value: to, spec: q.Spec(), unit: q.Unit()}
}

// scaleValue multiplies a representation by an exact magnitude. Integer
// values accept any rational factor whose scaled result is whole, so a
// fractional factor like 1/1000 still converts 3000 exactly; float
// values evaluate the magnitude numerically.
func scaleValue[R Rep](v R, f magnitude.Magnitude) (R, error) {
	switch x := any(v).(type) {
	case int64:
		num, den, err := f.Rat()
		if err != nil {
			return v, fmt.Errorf("%w: factor %s is not rational", ErrPrecisionLoss, f)
		}
		if x > math.MaxInt64/num || x < math.MinInt64/num {
			return v, fmt.Errorf("%w: %d * %d overflows", ErrPrecisionLoss, x, num)
		}
		scaled := x * num
		if scaled%den != 0 {
			return v, fmt.Errorf("%w: %d * %s is not a whole number", ErrPrecisionLoss, x, f)
		}
		return any(scaled / den).(R), nil
	case float64:
		return any(x * f.Float64()).(R), nil
	}
	return v, nil
}
