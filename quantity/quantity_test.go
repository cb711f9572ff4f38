package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/measure/magnitude"
	"github.com/c360studio/measure/unit"
)

type unitFixture struct {
	specFixture
	metre      *unit.Unit
	kilometre  *unit.Unit
	millimetre *unit.Unit
	second     *unit.Unit
	hour       *unit.Unit
}

func newUnitFixture(t *testing.T) unitFixture {
	t.Helper()
	f := newSpecFixture(t)

	metre, err := unit.NewUnregistered("metre", unit.WithSymbol("m"), unit.WithBase(f.length.Dimension()))
	require.NoError(t, err)
	second, err := unit.NewUnregistered("second", unit.WithSymbol("s"), unit.WithBase(f.time.Dimension()))
	require.NoError(t, err)

	return unitFixture{
		specFixture: f,
		metre:       metre,
		kilometre:   unit.Scale(magnitude.MustRatio(1000, 1), metre),
		millimetre:  unit.Scale(magnitude.MustRatio(1, 1000), metre),
		second:      second,
		hour:        unit.Scale(magnitude.MustRatio(3600, 1), second),
	}
}

func TestOf_Validation(t *testing.T) {
	f := newUnitFixture(t)

	_, err := Of(1.0, f.length, f.second)
	assert.ErrorIs(t, err, ErrIncompatible)

	q, err := Of(int64(42), f.length, f.metre)
	require.NoError(t, err)
	assert.Equal(t, int64(42), q.Value())
	assert.Same(t, f.metre, q.Unit())
	assert.Same(t, f.length, q.Spec())
}

func TestIn_RoundTrip(t *testing.T) {
	f := newUnitFixture(t)

	km := MustOf(int64(1), f.length, f.kilometre)
	m, err := km.In(f.metre)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), m.Value())

	// integral values round-trip exactly
	back, err := m.In(f.kilometre)
	require.NoError(t, err)
	assert.Equal(t, int64(1), back.Value())

	// a fractional factor still converts exactly when the result is whole
	three, err := MustOf(int64(3000), f.length, f.metre).In(f.kilometre)
	require.NoError(t, err)
	assert.Equal(t, int64(3), three.Value())
}

func TestIn_IntegerPrecisionLoss(t *testing.T) {
	f := newUnitFixture(t)

	m := MustOf(int64(1), f.length, f.metre)
	_, err := m.In(f.kilometre)
	assert.ErrorIs(t, err, ErrPrecisionLoss)

	// the float path accepts the same conversion
	mf := MustOf(1.0, f.length, f.metre)
	kmf, err := mf.In(f.kilometre)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, kmf.Value(), 1e-15)

	// ValueCast is the sanctioned way through
	kmi, err := ValueCast[float64](m).In(f.kilometre)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, kmi.Value(), 1e-15)
}

func TestIn_Incompatible(t *testing.T) {
	f := newUnitFixture(t)

	m := MustOf(int64(1), f.length, f.metre)
	_, err := m.In(f.second)
	assert.ErrorIs(t, err, unit.ErrNotConvertible)
}

func TestAdd(t *testing.T) {
	f := newUnitFixture(t)

	t.Run("same unit", func(t *testing.T) {
		a := MustOf(int64(2), f.length, f.metre)
		b := MustOf(int64(3), f.length, f.metre)
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, int64(5), sum.Value())
		assert.Same(t, f.metre, sum.Unit())
	})

	t.Run("mixed units use the finer unit", func(t *testing.T) {
		km := MustOf(int64(1), f.length, f.kilometre)
		mm := MustOf(int64(5), f.length, f.millimetre)
		sum, err := km.Add(mm)
		require.NoError(t, err)
		assert.Equal(t, int64(1_000_005), sum.Value())
		assert.True(t, unit.Equal(sum.Unit(), f.millimetre))
	})

	t.Run("sibling kinds are rejected without a cast", func(t *testing.T) {
		r := MustOf(int64(1), f.radius, f.metre)
		h := MustOf(int64(2), f.height, f.metre)
		_, err := r.Add(h)
		assert.ErrorIs(t, err, ErrExplicitCastRequired)

		// casting either operand to the shared ancestor makes the sum legal
		l, err := r.As(f.length)
		require.NoError(t, err)
		sum, err := l.Add(h)
		require.NoError(t, err)
		assert.Same(t, f.length, sum.Spec())
		assert.Equal(t, int64(3), sum.Value())
	})

	t.Run("child plus ancestor meets at the ancestor", func(t *testing.T) {
		r := MustOf(int64(1), f.radius, f.metre)
		l := MustOf(int64(4), f.length, f.metre)
		sum, err := r.Add(l)
		require.NoError(t, err)
		assert.Same(t, f.length, sum.Spec())
		assert.Equal(t, int64(5), sum.Value())
	})

	t.Run("mismatched characters are rejected", func(t *testing.T) {
		displacement := MustKind("displacement", f.length, WithCharacter(Vector))
		d := MustOf(int64(1), displacement, f.metre)
		l := MustOf(int64(1), f.length, f.metre)
		_, err := d.Add(l)
		assert.ErrorIs(t, err, ErrIncompatible)
	})

	t.Run("length plus time is rejected", func(t *testing.T) {
		m := MustOf(int64(1), f.length, f.metre)
		s := MustOf(int64(1), f.time, f.second)
		_, err := m.Add(s)
		assert.ErrorIs(t, err, ErrIncompatible)
	})
}

func TestSub(t *testing.T) {
	f := newUnitFixture(t)

	a := MustOf(int64(1), f.length, f.kilometre)
	b := MustOf(int64(250), f.length, f.metre)
	d, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, int64(750), d.Value())
	assert.True(t, unit.Equal(d.Unit(), f.metre))
}

func TestMulDiv(t *testing.T) {
	f := newUnitFixture(t)

	dist := MustOf(100.0, f.length, f.metre)
	dur := MustOf(8.0, f.time, f.second)

	speed := dist.Div(dur)
	assert.InDelta(t, 12.5, speed.Value(), 1e-12)
	assert.True(t, unit.Equal(speed.Unit(), unit.Div(f.metre, f.second)))
	assert.True(t, speed.Spec().Dimension().Equal(f.length.Dimension().Div(f.time.Dimension())))

	area := dist.Mul(dist)
	assert.InDelta(t, 10_000.0, area.Value(), 1e-9)
	assert.True(t, unit.Equal(area.Unit(), unit.Square(f.metre)))
}

func TestAs(t *testing.T) {
	f := newUnitFixture(t)

	r := MustOf(int64(5), f.radius, f.metre)

	t.Run("child to ancestor is implicit", func(t *testing.T) {
		l, err := r.As(f.length)
		require.NoError(t, err)
		assert.Same(t, f.length, l.Spec())
		assert.Equal(t, int64(5), l.Value())
	})

	t.Run("ancestor to child needs a cast", func(t *testing.T) {
		l := MustOf(int64(5), f.length, f.metre)
		_, err := l.As(f.radius)
		assert.ErrorIs(t, err, ErrExplicitCastRequired)

		rc, err := l.SpecCast(f.radius)
		require.NoError(t, err)
		assert.Same(t, f.radius, rc.Spec())
	})

	t.Run("siblings need a cast", func(t *testing.T) {
		_, err := r.As(f.height)
		assert.ErrorIs(t, err, ErrExplicitCastRequired)

		h, err := r.SpecCast(f.height)
		require.NoError(t, err)
		assert.Same(t, f.height, h.Spec())
	})

	t.Run("different dimensions never cast", func(t *testing.T) {
		_, err := r.SpecCast(f.time)
		assert.ErrorIs(t, err, ErrIncompatible)
	})
}

func TestCmp(t *testing.T) {
	f := newUnitFixture(t)

	km := MustOf(int64(1), f.length, f.kilometre)
	m := MustOf(int64(999), f.length, f.metre)

	c, err := km.Cmp(m)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	eq, err := km.Equal(MustOf(int64(1000), f.length, f.metre))
	require.NoError(t, err)
	assert.True(t, eq)

	_, err = km.Cmp(MustOf(int64(1), f.time, f.second))
	assert.ErrorIs(t, err, ErrIncompatible)
}

func TestTimesNeg(t *testing.T) {
	f := newUnitFixture(t)

	q := MustOf(int64(3), f.length, f.metre)
	assert.Equal(t, int64(6), q.Times(2).Value())
	assert.Equal(t, int64(-3), q.Neg().Value())
}

func TestValueCast(t *testing.T) {
	f := newUnitFixture(t)

	q := MustOf(2.9, f.length, f.metre)
	i := ValueCast[int64](q)
	assert.Equal(t, int64(2), i.Value())
	assert.Same(t, f.metre, i.Unit())
	assert.Same(t, f.length, i.Spec())
}

func TestString(t *testing.T) {
	f := newUnitFixture(t)

	assert.Equal(t, "42 m", MustOf(int64(42), f.length, f.metre).String())
	assert.Equal(t, "2.5 m", MustOf(2.5, f.length, f.metre).String())

	one := MustOf(int64(7), Dimensionless, unit.One)
	assert.Equal(t, "7", one.String())
}

func TestZeroValue(t *testing.T) {
	var q Quantity[int64]
	assert.Same(t, Dimensionless, q.Spec())
	assert.Same(t, unit.One, q.Unit())
	assert.Equal(t, int64(0), q.Value())
}
