package quantity

import (
	"fmt"
	"math"

	"github.com/c360studio/measure/unit"
)

// Origin anchors quantity points. An absolute origin is an arbitrary
// fixed anchor (absolute zero temperature); a relative origin sits at a
// known offset from another origin (0 °C = 273.15 K above absolute
// zero). Two points interoperate only when their origins trace back to
// the same absolute origin, compared by identity.
type Origin struct {
	name   string
	spec   *Spec
	base   *Origin
	offset Quantity[float64]
}

// NewOrigin declares an absolute origin for the given spec.
func NewOrigin(name string, s *Spec) (*Origin, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty origin name", ErrBadDeclaration)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: origin %q has no spec", ErrBadDeclaration, name)
	}
	return &Origin{name: name, spec: s}, nil
}

// MustOrigin is like NewOrigin but panics on a malformed declaration.
func MustOrigin(name string, s *Spec) *Origin {
	o, err := NewOrigin(name, s)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRelativeOrigin declares an origin at a fixed offset from base.
func NewRelativeOrigin(name string, base *Origin, offset Quantity[float64]) (*Origin, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty origin name", ErrBadDeclaration)
	}
	if base == nil {
		return nil, fmt.Errorf("%w: origin %q has no base", ErrBadDeclaration, name)
	}
	if _, err := Common(offset.Spec(), base.spec); err != nil {
		return nil, fmt.Errorf("%w: origin %q offset spec %s does not match %s",
			ErrBadDeclaration, name, offset.Spec().Name(), base.spec.Name())
	}
	return &Origin{name: name, spec: base.spec, base: base, offset: offset}, nil
}

// MustRelativeOrigin is like NewRelativeOrigin but panics on error.
func MustRelativeOrigin(name string, base *Origin, offset Quantity[float64]) *Origin {
	o, err := NewRelativeOrigin(name, base, offset)
	if err != nil {
		panic(err)
	}
	return o
}

// Name returns the declared origin name.
func (o *Origin) Name() string { return o.name }

// Spec returns the spec the origin anchors.
func (o *Origin) Spec() *Spec { return o.spec }

// root walks to the absolute origin at the bottom of the chain.
func (o *Origin) root() *Origin {
	cur := o
	for cur.base != nil {
		cur = cur.base
	}
	return cur
}

// offsetFromRoot accumulates the offsets down to the absolute origin.
// Absolute origins report no offset.
func (o *Origin) offsetFromRoot() (Quantity[float64], bool, error) {
	var sum Quantity[float64]
	have := false
	for cur := o; cur.base != nil; cur = cur.base {
		if !have {
			sum = cur.offset
			have = true
			continue
		}
		var err error
		sum, err = sum.Add(cur.offset)
		if err != nil {
			return Quantity[float64]{}, false, err
		}
	}
	return sum, have, nil
}

// Point is a location on the axis anchored by an origin: a displacement
// quantity plus the origin it is measured from. Points add
// displacements and subtract into displacements, but never add to each
// other.
type Point[R Rep] struct {
	q      Quantity[R]
	origin *Origin
}

// NewPoint anchors a displacement at an origin. The displacement spec
// must be interchangeable with the origin's spec.
func NewPoint[R Rep](q Quantity[R], o *Origin) (Point[R], error) {
	if o == nil {
		return Point[R]{}, fmt.Errorf("%w: nil origin", ErrBadDeclaration)
	}
	if _, err := Common(q.Spec(), o.spec); err != nil {
		return Point[R]{}, err
	}
	return Point[R]{q: q, origin: o}, nil
}

// MustPoint is like NewPoint but panics on error.
func MustPoint[R Rep](q Quantity[R], o *Origin) Point[R] {
	p, err := NewPoint(q, o)
	if err != nil {
		panic(err)
	}
	return p
}

// Quantity returns the displacement from the point's origin.
func (p Point[R]) Quantity() Quantity[R] { return p.q }

// Origin returns the origin the point is anchored to.
func (p Point[R]) Origin() *Origin { return p.origin }

// In converts the point's displacement to another unit.
func (p Point[R]) In(u *unit.Unit) (Point[R], error) {
	q, err := p.q.In(u)
	if err != nil {
		return Point[R]{}, err
	}
	return Point[R]{q: q, origin: p.origin}, nil
}

// Add shifts the point by a displacement. The origin is unchanged.
func (p Point[R]) Add(d Quantity[R]) (Point[R], error) {
	q, err := p.q.Add(d)
	if err != nil {
		return Point[R]{}, err
	}
	return Point[R]{q: q, origin: p.origin}, nil
}

// Sub shifts the point backwards by a displacement.
func (p Point[R]) Sub(d Quantity[R]) (Point[R], error) {
	q, err := p.q.Sub(d)
	if err != nil {
		return Point[R]{}, err
	}
	return Point[R]{q: q, origin: p.origin}, nil
}

// Diff returns the displacement p - o. Points anchored at different
// origins are reconciled through their shared absolute origin; origins
// with different roots fail with ErrUnrelatedOrigins.
func (p Point[R]) Diff(o Point[R]) (Quantity[R], error) {
	if p.origin == o.origin {
		return p.q.Sub(o.q)
	}
	if p.origin.root() != o.origin.root() {
		return Quantity[R]{}, fmt.Errorf("%w: %s and %s", ErrUnrelatedOrigins, p.origin.name, o.origin.name)
	}
	d, err := p.q.Sub(o.q)
	if err != nil {
		return Quantity[R]{}, err
	}
	shift, err := originDelta(p.origin, o.origin)
	if err != nil {
		return Quantity[R]{}, err
	}
	return addFloat(d, shift)
}

// RebaseTo re-expresses the point relative to another origin with the
// same absolute root.
func (p Point[R]) RebaseTo(o *Origin) (Point[R], error) {
	if p.origin == o {
		return p, nil
	}
	if o == nil || p.origin.root() != o.root() {
		return Point[R]{}, fmt.Errorf("%w: %s and %s", ErrUnrelatedOrigins, p.origin.name, o.Name())
	}
	shift, err := originDelta(p.origin, o)
	if err != nil {
		return Point[R]{}, err
	}
	q, err := addFloat(p.q, shift)
	if err != nil {
		return Point[R]{}, err
	}
	return Point[R]{q: q, origin: o}, nil
}

// originDelta is a's offset minus b's offset, both measured from their
// shared root. Callers guarantee a != b, so at least one side carries
// an offset.
func originDelta(a, b *Origin) (Quantity[float64], error) {
	oa, aok, err := a.offsetFromRoot()
	if err != nil {
		return Quantity[float64]{}, err
	}
	ob, bok, err := b.offsetFromRoot()
	if err != nil {
		return Quantity[float64]{}, err
	}
	switch {
	case aok && bok:
		return oa.Sub(ob)
	case aok:
		return oa, nil
	default:
		return ob.Neg(), nil
	}
}

// addFloat adds a float displacement to a quantity of representation R.
// Integer quantities require the shift to land on a whole value in
// their unit.
func addFloat[R Rep](q Quantity[R], shift Quantity[float64]) (Quantity[R], error) {
	s, err := shift.In(q.Unit())
	if err != nil {
		return Quantity[R]{}, err
	}
	switch x := any(q.Value()).(type) {
	case int64:
		if math.Trunc(s.Value()) != s.Value() {
			return Quantity[R]{}, fmt.Errorf("%w: origin shift %s is not whole in %s",
				ErrPrecisionLoss, shift, unit.Symbol(q.Unit()))
		}
		return Quantity[R]{value: any(x + int64(s.Value())).(R), spec: q.Spec(), unit: q.Unit()}, nil
	case float64:
		return Quantity[R]{value: any(x + s.Value()).(R), spec: q.Spec(), unit: q.Unit()}, nil
	}
	return q, nil
}
