// Package magnitude implements exact symbolic scale factors.
//
// A Magnitude is a positive real number represented as a product of
// base^exponent terms, where each base is either a prime integer or a
// named irrational constant (π being the built-in one) and each
// exponent is an exact rational. Multiplication, division, powers and
// comparison are performed symbolically on this basis, so composing
// magnitudes never introduces floating-point rounding. The only lossy
// operation is the explicit Float64 evaluation.
package magnitude

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/c360studio/measure/ratio"
	"github.com/c360studio/measure/symtext"
)

// ErrNotIntegral is returned when an exact integer value is requested
// from a magnitude that is not a whole number.
var ErrNotIntegral = errors.New("magnitude is not integral")

// ErrNotRational is returned when an exact ratio is requested from a
// magnitude with an irrational component or a fractional prime power.
var ErrNotRational = errors.New("magnitude is not rational")

// ErrUnsupported is returned when a value cannot be factorized over the
// supported prime basis.
var ErrUnsupported = errors.New("magnitude outside supported factorization range")

// Irrational is a named irrational base usable in magnitudes.
type Irrational struct {
	name  string
	sym   symtext.Text
	value float64
}

// NewIrrational declares an irrational base. The name must be non-empty
// and the value positive.
func NewIrrational(name string, sym symtext.Text, value float64) (*Irrational, error) {
	if name == "" {
		return nil, fmt.Errorf("irrational base: empty name")
	}
	if !(value > 0) {
		return nil, fmt.Errorf("irrational base %q: non-positive value %v", name, value)
	}
	return &Irrational{name: name, sym: sym, value: value}, nil
}

// Pi is the built-in irrational base π.
var Pi = &Irrational{name: "pi", sym: symtext.New("π", "pi"), value: math.Pi}

// Name returns the declared base name.
func (i *Irrational) Name() string { return i.name }

// Symbol returns the display symbol of the base.
func (i *Irrational) Symbol() symtext.Text { return i.sym }

// term is one base^exponent component. Exactly one of prime and irr is
// set. The exponent is never zero.
type term struct {
	prime int64
	irr   *Irrational
	exp   ratio.Ratio
}

// Primes order before irrationals; primes by value, irrationals by
// name. The key only fixes a deterministic canonical order.
func (t term) key() string {
	if t.irr != nil {
		return "~" + t.irr.name
	}
	return fmt.Sprintf("%019d", t.prime)
}

// Magnitude is an exact positive scale factor. The zero value is the
// identity (the number one).
type Magnitude struct {
	terms []term
}

// One returns the identity magnitude.
func One() Magnitude {
	return Magnitude{}
}

// FromInt returns the magnitude of a positive integer.
func FromInt(n int64) (Magnitude, error) {
	return FromRatio(n, 1)
}

// FromRatio returns the magnitude num/den. Both components must be
// positive and factorizable over the supported prime range.
func FromRatio(num, den int64) (Magnitude, error) {
	if num <= 0 || den <= 0 {
		return Magnitude{}, fmt.Errorf("magnitude %d/%d: components must be positive", num, den)
	}
	n, err := factorize(num, ratio.One)
	if err != nil {
		return Magnitude{}, err
	}
	d, err := factorize(den, ratio.FromInt(-1))
	if err != nil {
		return Magnitude{}, err
	}
	return normalize(append(n, d...)), nil
}

// MustRatio is like FromRatio but panics on error. Intended for static
// declarations.
func MustRatio(num, den int64) Magnitude {
	m, err := FromRatio(num, den)
	if err != nil {
		panic(err)
	}
	return m
}

// FromIrrational returns the magnitude of an irrational base raised to
// the first power.
func FromIrrational(irr *Irrational) Magnitude {
	return Magnitude{terms: []term{{irr: irr, exp: ratio.One}}}
}

// PowerOfTen returns 10^k.
func PowerOfTen(k int64) Magnitude {
	e := ratio.FromInt(k)
	if k == 0 {
		return Magnitude{}
	}
	return normalize([]term{{prime: 2, exp: e}, {prime: 5, exp: e}})
}

func normalize(terms []term) Magnitude {
	merged := map[string]*term{}
	keys := make([]string, 0, len(terms))
	for _, t := range terms {
		k := t.key()
		if ent, ok := merged[k]; ok {
			ent.exp = ent.exp.Add(t.exp)
			continue
		}
		cp := t
		merged[k] = &cp
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var m Magnitude
	for _, k := range keys {
		if ent := merged[k]; !ent.exp.IsZero() {
			m.terms = append(m.terms, *ent)
		}
	}
	return m
}

// Mul returns m * o.
func (m Magnitude) Mul(o Magnitude) Magnitude {
	return normalize(append(append([]term{}, m.terms...), o.terms...))
}

// Div returns m / o.
func (m Magnitude) Div(o Magnitude) Magnitude {
	return m.Mul(o.Inverse())
}

// Inverse returns 1/m.
func (m Magnitude) Inverse() Magnitude {
	inv := make([]term, len(m.terms))
	for i, t := range m.terms {
		t.exp = t.exp.Neg()
		inv[i] = t
	}
	return Magnitude{terms: inv}
}

// Pow raises the magnitude to a rational power.
func (m Magnitude) Pow(r ratio.Ratio) Magnitude {
	if r.IsZero() {
		return Magnitude{}
	}
	out := make([]term, len(m.terms))
	for i, t := range m.terms {
		t.exp = t.exp.Mul(r)
		out[i] = t
	}
	return Magnitude{terms: out}
}

// IsOne reports whether m is the identity.
func (m Magnitude) IsOne() bool {
	return len(m.terms) == 0
}

// Equal reports whether two magnitudes denote the same number. The
// comparison is structural over the normalized basis-power list; no
// numeric approximation is involved.
func (m Magnitude) Equal(o Magnitude) bool {
	if len(m.terms) != len(o.terms) {
		return false
	}
	for i := range m.terms {
		a, b := m.terms[i], o.terms[i]
		if a.key() != b.key() || !a.exp.Equal(b.exp) {
			return false
		}
	}
	return true
}

// IsRational reports whether m is an exact ratio of integers: no
// irrational bases and all prime exponents whole.
func (m Magnitude) IsRational() bool {
	for _, t := range m.terms {
		if t.irr != nil || !t.exp.IsInt() {
			return false
		}
	}
	return true
}

// IsIntegral reports whether m is a whole number.
func (m Magnitude) IsIntegral() bool {
	if !m.IsRational() {
		return false
	}
	for _, t := range m.terms {
		if t.exp.Sign() < 0 {
			return false
		}
	}
	return true
}

// Rat returns the exact num/den representation. It fails with
// ErrNotRational when the magnitude has an irrational component or a
// fractional prime power.
func (m Magnitude) Rat() (num, den int64, err error) {
	num, den = 1, 1
	for _, t := range m.terms {
		if t.irr != nil || !t.exp.IsInt() {
			return 0, 0, ErrNotRational
		}
		p, perr := ipow(t.prime, t.exp.Abs().Num())
		if perr != nil {
			return 0, 0, perr
		}
		if t.exp.Sign() > 0 {
			if num > math.MaxInt64/p {
				return 0, 0, ErrUnsupported
			}
			num *= p
		} else {
			if den > math.MaxInt64/p {
				return 0, 0, ErrUnsupported
			}
			den *= p
		}
	}
	return num, den, nil
}

// Int64 returns the exact integer value. It fails with ErrNotIntegral
// for non-integral magnitudes instead of truncating.
func (m Magnitude) Int64() (int64, error) {
	num, den, err := m.Rat()
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrNotIntegral, m)
	}
	if den != 1 {
		return 0, fmt.Errorf("%w: %s", ErrNotIntegral, m)
	}
	return num, nil
}

func ipow(base, exp int64) (int64, error) {
	out := int64(1)
	for i := int64(0); i < exp; i++ {
		if out > math.MaxInt64/base {
			return 0, ErrUnsupported
		}
		out *= base
	}
	return out, nil
}

// Float64 returns a best-effort floating-point approximation. This is
// the only operation in the package that loses exactness.
func (m Magnitude) Float64() float64 {
	out := 1.0
	for _, t := range m.terms {
		base := float64(t.prime)
		if t.irr != nil {
			base = t.irr.value
		}
		out *= math.Pow(base, t.exp.Float64())
	}
	return out
}

// exponentOf returns the exponent of a prime base, or zero.
func (m Magnitude) exponentOf(prime int64) ratio.Ratio {
	for _, t := range m.terms {
		if t.irr == nil && t.prime == prime {
			return t.exp
		}
	}
	return ratio.Zero
}

// Pow10 factors out the largest 10^k and returns k together with the
// remaining magnitude. Used for human-readable display only.
func (m Magnitude) Pow10() (k int64, rest Magnitude) {
	e2 := m.exponentOf(2)
	e5 := m.exponentOf(5)
	switch {
	case e2.Sign() > 0 && e5.Sign() > 0:
		k = minInt(floorRatio(e2), floorRatio(e5))
	case e2.Sign() < 0 && e5.Sign() < 0:
		k = maxInt(ceilRatio(e2), ceilRatio(e5))
	}
	if k == 0 {
		return 0, m
	}
	return k, m.Div(PowerOfTen(k))
}

func floorRatio(r ratio.Ratio) int64 {
	n, d := r.Num(), r.Den()
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}

func ceilRatio(r ratio.Ratio) int64 {
	return -floorRatio(r.Neg())
}

func minInt(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Common returns the greatest magnitude that divides both operands: the
// per-base minimum exponent over the union of their bases. It is the
// scale used when synthesizing a common unit for two units whose ratio
// is not an integer.
func Common(a, b Magnitude) Magnitude {
	type pair struct {
		t      term
		ea, eb ratio.Ratio
	}
	seen := map[string]*pair{}
	keys := []string{}
	for _, t := range a.terms {
		k := t.key()
		seen[k] = &pair{t: t, ea: t.exp}
		keys = append(keys, k)
	}
	for _, t := range b.terms {
		k := t.key()
		if p, ok := seen[k]; ok {
			p.eb = t.exp
			continue
		}
		seen[k] = &pair{t: t, eb: t.exp}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var out []term
	for _, k := range keys {
		p := seen[k]
		exp := p.ea
		if p.eb.Cmp(p.ea) < 0 {
			exp = p.eb
		}
		if exp.IsZero() {
			continue
		}
		t := p.t
		t.exp = exp
		out = append(out, t)
	}
	return Magnitude{terms: out}
}

// Format renders the magnitude with power-of-10 extraction, e.g.
// "1000", "3/50", "10⁻³" or "π/180".
func (m Magnitude) Format(enc symtext.Encoding) string {
	if m.IsOne() {
		return "1"
	}
	if num, den, err := m.Rat(); err == nil {
		// prefer 10^k for pure powers of ten beyond 10^±3
		if k, rest := m.Pow10(); rest.IsOne() && (k >= 4 || k <= -4) {
			return "10" + symtext.Superscript(k, enc)
		}
		if den == 1 {
			return strconv.FormatInt(num, 10)
		}
		return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
	}

	out := ""
	for _, t := range m.terms {
		s := ""
		if t.irr != nil {
			s = t.irr.sym.Enc(enc)
		} else {
			s = strconv.FormatInt(t.prime, 10)
		}
		if !t.exp.Equal(ratio.One) {
			if t.exp.IsInt() {
				s += symtext.Superscript(t.exp.Num(), enc)
			} else {
				s += "^(" + t.exp.String() + ")"
			}
		}
		if out != "" {
			out += " "
		}
		out += s
	}
	return out
}

// String renders the magnitude with unicode encoding.
func (m Magnitude) String() string {
	return m.Format(symtext.Unicode)
}

// factorLimit bounds trial division. Any value whose second-largest
// prime factor exceeds the limit is reported as unsupported.
const factorLimit = 1_000_003

func factorize(n int64, sign ratio.Ratio) ([]term, error) {
	var out []term
	add := func(p int64, count int64) {
		out = append(out, term{prime: p, exp: ratio.FromInt(count).Mul(sign)})
	}
	for _, p := range []int64{2, 3, 5} {
		var c int64
		for n%p == 0 {
			n /= p
			c++
		}
		if c > 0 {
			add(p, c)
		}
	}
	for f := int64(7); f <= factorLimit && f*f <= n; f += 2 {
		var c int64
		for n%f == 0 {
			n /= f
			c++
		}
		if c > 0 {
			add(f, c)
		}
	}
	if n > 1 {
		if n > factorLimit*int64(factorLimit) {
			return nil, fmt.Errorf("%w: residual factor %d", ErrUnsupported, n)
		}
		// trial division passed sqrt(n), so the residue is prime
		add(n, 1)
	}
	return out, nil
}
