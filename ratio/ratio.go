// Package ratio provides exact rational numbers.
//
// Ratios are used as exponents in unit and dimension expressions and as
// components of magnitudes. They are always kept normalized: the
// denominator is positive, the sign lives in the numerator, and the two
// are coprime. The zero value is 0/1.
package ratio

import (
	"fmt"
	"strconv"
)

// Ratio is an exact rational number with int64 components.
type Ratio struct {
	num int64
	den int64
}

// Zero is the ratio 0/1.
var Zero = Ratio{0, 1}

// One is the ratio 1/1.
var One = Ratio{1, 1}

// New creates a normalized ratio. A zero denominator is rejected.
func New(num, den int64) (Ratio, error) {
	if den == 0 {
		return Ratio{}, fmt.Errorf("ratio %d/0: zero denominator", num)
	}
	return normalize(num, den), nil
}

// MustNew is like New but panics on a zero denominator. Intended for
// static declarations.
func MustNew(num, den int64) Ratio {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt creates the ratio n/1.
func FromInt(n int64) Ratio {
	return Ratio{n, 1}
}

func normalize(num, den int64) Ratio {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Ratio{0, 1}
	}
	g := gcd(abs(num), den)
	return Ratio{num / g, den / g}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Num returns the numerator.
func (r Ratio) Num() int64 {
	return r.num
}

// Den returns the denominator. It is always positive; the zero value
// reports 1.
func (r Ratio) Den() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// Add returns r + o.
func (r Ratio) Add(o Ratio) Ratio {
	return normalize(r.num*o.Den()+o.num*r.Den(), r.Den()*o.Den())
}

// Sub returns r - o.
func (r Ratio) Sub(o Ratio) Ratio {
	return r.Add(o.Neg())
}

// Mul returns r * o.
func (r Ratio) Mul(o Ratio) Ratio {
	return normalize(r.num*o.num, r.Den()*o.Den())
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	return Ratio{-r.num, r.Den()}
}

// Inverse returns 1/r. Inverting zero is rejected.
func (r Ratio) Inverse() (Ratio, error) {
	if r.num == 0 {
		return Ratio{}, fmt.Errorf("ratio: cannot invert zero")
	}
	return normalize(r.Den(), r.num), nil
}

// IsZero reports whether r == 0.
func (r Ratio) IsZero() bool {
	return r.num == 0
}

// IsInt reports whether r is a whole number.
func (r Ratio) IsInt() bool {
	return r.Den() == 1
}

// Sign returns -1, 0 or 1.
func (r Ratio) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	}
	return 0
}

// Cmp compares r and o, returning -1, 0 or 1.
func (r Ratio) Cmp(o Ratio) int {
	d := r.num*o.Den() - o.num*r.Den()
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// Equal reports whether r and o denote the same rational number.
func (r Ratio) Equal(o Ratio) bool {
	return r.num == o.num && r.Den() == o.Den()
}

// Abs returns |r|.
func (r Ratio) Abs() Ratio {
	return Ratio{abs(r.num), r.Den()}
}

// Float64 returns the nearest floating-point approximation.
func (r Ratio) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// String renders the ratio as "n" or "n/d".
func (r Ratio) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}
