package unit

import (
	"fmt"

	"github.com/c360studio/measure/magnitude"
	"github.com/c360studio/measure/symtext"
)

// Prefix scales a prefixable named unit by a fixed magnitude and
// prepends its symbol (kilo, mebi, ...).
type Prefix struct {
	name string
	sym  symtext.Text
	mag  magnitude.Magnitude
}

// NewPrefix declares a prefix and registers it in the default registry.
func NewPrefix(name string, sym symtext.Text, mag magnitude.Magnitude) (*Prefix, error) {
	p, err := NewUnregisteredPrefix(name, sym, mag)
	if err != nil {
		return nil, err
	}
	if err := Default().RegisterPrefix(p); err != nil {
		return nil, err
	}
	return p, nil
}

// NewUnregisteredPrefix declares a prefix without touching any
// registry.
func NewUnregisteredPrefix(name string, sym symtext.Text, mag magnitude.Magnitude) (*Prefix, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty prefix name", ErrBadDeclaration)
	}
	if sym.Empty() {
		return nil, fmt.Errorf("%w: prefix %q has an empty symbol", ErrBadDeclaration, name)
	}
	if mag.IsOne() {
		return nil, fmt.Errorf("%w: prefix %q scales by one", ErrBadDeclaration, name)
	}
	return &Prefix{name: name, sym: sym, mag: mag}, nil
}

// MustPrefix is like NewPrefix but panics on a malformed declaration.
func MustPrefix(name string, sym symtext.Text, mag magnitude.Magnitude) *Prefix {
	p, err := NewPrefix(name, sym, mag)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the declared prefix name.
func (p *Prefix) Name() string { return p.name }

// Symbol returns the prefix symbol.
func (p *Prefix) Symbol() symtext.Text { return p.sym }

// Magnitude returns the prefix scale factor.
func (p *Prefix) Magnitude() magnitude.Magnitude { return p.mag }

// apply builds the prefixed named unit without registering it.
func (p *Prefix) apply(u *Unit) *Unit {
	return &Unit{
		kind: kindNamed,
		name: p.name + u.name,
		sym:  p.sym.Append(u.sym),
		def:  Scale(p.mag, u),
		// a prefixed unit cannot take another prefix
		prefixable: false,
	}
}

// Apply derives a prefixed unit (kilo + metre → kilometre) and
// registers it in the default registry. The target must be a
// prefixable named unit.
func (p *Prefix) Apply(u *Unit) (*Unit, error) {
	if !u.Prefixable() {
		return nil, fmt.Errorf("%w: unit %q cannot take prefix %q", ErrBadDeclaration, u.name, p.name)
	}
	pu := p.apply(u)
	if err := Default().Register(pu); err != nil {
		return nil, err
	}
	return pu, nil
}

// MustApply is like Apply but panics on error. Intended for static
// catalogs.
func (p *Prefix) MustApply(u *Unit) *Unit {
	pu, err := p.Apply(u)
	if err != nil {
		panic(err)
	}
	return pu
}
