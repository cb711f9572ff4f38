package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/measure/dimension"
	"github.com/c360studio/measure/symtext"
	"github.com/c360studio/measure/unit"
)

type pointFixture struct {
	temp         *Spec
	kelvin       *unit.Unit
	absoluteZero *Origin
	zeroCelsius  *Origin
}

func newPointFixture(t *testing.T) pointFixture {
	t.Helper()
	dim := dimension.MustBase("thermodynamic temperature", symtext.New("Θ", "O"))
	temp := MustBase("thermodynamic temperature", dim)
	kelvin, err := unit.NewUnregistered("kelvin", unit.WithSymbol("K"), unit.WithBase(dim))
	require.NoError(t, err)

	absZero := MustOrigin("absolute zero", temp)
	zeroC := MustRelativeOrigin("zeroth degree Celsius", absZero,
		New(273.15, MustReference(temp, kelvin)))

	return pointFixture{temp: temp, kelvin: kelvin, absoluteZero: absZero, zeroCelsius: zeroC}
}

func TestOriginDeclaration_Validation(t *testing.T) {
	f := newPointFixture(t)

	_, err := NewOrigin("", f.temp)
	assert.ErrorIs(t, err, ErrBadDeclaration)

	_, err = NewOrigin("x", nil)
	assert.ErrorIs(t, err, ErrBadDeclaration)

	_, err = NewRelativeOrigin("x", nil, New(1.0, MustReference(f.temp, f.kelvin)))
	assert.ErrorIs(t, err, ErrBadDeclaration)
}

func TestPoint_AddSub(t *testing.T) {
	f := newPointFixture(t)

	p := MustPoint(New(300.0, MustReference(f.temp, f.kelvin)), f.absoluteZero)

	warmer, err := p.Add(New(10.0, MustReference(f.temp, f.kelvin)))
	require.NoError(t, err)
	assert.InDelta(t, 310.0, warmer.Quantity().Value(), 1e-12)
	assert.Same(t, f.absoluteZero, warmer.Origin())

	cooler, err := p.Sub(New(50.0, MustReference(f.temp, f.kelvin)))
	require.NoError(t, err)
	assert.InDelta(t, 250.0, cooler.Quantity().Value(), 1e-12)
}

func TestPoint_Diff_SameOrigin(t *testing.T) {
	f := newPointFixture(t)
	ref := MustReference(f.temp, f.kelvin)

	a := MustPoint(New(300.0, ref), f.absoluteZero)
	b := MustPoint(New(280.0, ref), f.absoluteZero)

	d, err := a.Diff(b)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, d.Value(), 1e-12)
}

func TestPoint_Diff_AcrossOrigins(t *testing.T) {
	f := newPointFixture(t)
	ref := MustReference(f.temp, f.kelvin)

	// 20 above 0 °C vs 280 above absolute zero: 293.15 - 280 = 13.15
	celsius := MustPoint(New(20.0, ref), f.zeroCelsius)
	kelvin := MustPoint(New(280.0, ref), f.absoluteZero)

	d, err := celsius.Diff(kelvin)
	require.NoError(t, err)
	assert.InDelta(t, 13.15, d.Value(), 1e-9)

	back, err := kelvin.Diff(celsius)
	require.NoError(t, err)
	assert.InDelta(t, -13.15, back.Value(), 1e-9)
}

func TestPoint_Diff_UnrelatedOrigins(t *testing.T) {
	f := newPointFixture(t)
	ref := MustReference(f.temp, f.kelvin)

	other := MustOrigin("other scale zero", f.temp)
	a := MustPoint(New(1.0, ref), f.absoluteZero)
	b := MustPoint(New(1.0, ref), other)

	_, err := a.Diff(b)
	assert.ErrorIs(t, err, ErrUnrelatedOrigins)
}

func TestPoint_Rebase(t *testing.T) {
	f := newPointFixture(t)
	ref := MustReference(f.temp, f.kelvin)

	boiling := MustPoint(New(100.0, ref), f.zeroCelsius)

	abs, err := boiling.RebaseTo(f.absoluteZero)
	require.NoError(t, err)
	assert.InDelta(t, 373.15, abs.Quantity().Value(), 1e-9)
	assert.Same(t, f.absoluteZero, abs.Origin())

	round, err := abs.RebaseTo(f.zeroCelsius)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, round.Quantity().Value(), 1e-9)
}

func TestPoint_IntegerRebase(t *testing.T) {
	f := newPointFixture(t)
	ref := MustReference(f.temp, f.kelvin)

	// a fractional origin shift cannot land on an integer value
	p := MustPoint(New(int64(20), ref), f.zeroCelsius)
	_, err := p.RebaseTo(f.absoluteZero)
	assert.ErrorIs(t, err, ErrPrecisionLoss)

	// a whole shift converts fine
	shifted := MustRelativeOrigin("plus one hundred", f.absoluteZero,
		New(100.0, ref))
	q := MustPoint(New(int64(20), ref), shifted)
	abs, err := q.RebaseTo(f.absoluteZero)
	require.NoError(t, err)
	assert.Equal(t, int64(120), abs.Quantity().Value())
}

func TestPoint_NoPointAddition(t *testing.T) {
	// points deliberately have no Add(Point) method; displacement
	// arithmetic goes through Diff and Add(Quantity)
	f := newPointFixture(t)
	ref := MustReference(f.temp, f.kelvin)

	p := MustPoint(New(10.0, ref), f.absoluteZero)
	d, err := p.Diff(p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d.Value())
}

func TestNewPoint_SpecMismatch(t *testing.T) {
	f := newPointFixture(t)
	dimL := dimension.MustBase("length", symtext.Sym("L"))
	length := MustBase("length", dimL)
	metre, err := unit.NewUnregistered("metre", unit.WithSymbol("m"), unit.WithBase(dimL))
	require.NoError(t, err)

	_, err = NewPoint(New(1.0, MustReference(length, metre)), f.absoluteZero)
	assert.ErrorIs(t, err, ErrIncompatible)
}
