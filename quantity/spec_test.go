package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/measure/dimension"
	"github.com/c360studio/measure/symtext"
)

type specFixture struct {
	length *Spec
	time   *Spec
	width  *Spec
	radius *Spec
	height *Spec
	speed  *Spec
}

func newSpecFixture(t *testing.T) specFixture {
	t.Helper()
	dimL := dimension.MustBase("length", symtext.Sym("L"))
	dimT := dimension.MustBase("time", symtext.Sym("T"))

	length := MustBase("length", dimL)
	time := MustBase("time", dimT)
	width := MustKind("width", length)
	return specFixture{
		length: length,
		time:   time,
		width:  width,
		radius: MustKind("radius", width),
		height: MustKind("height", length),
		speed:  MustNamed("speed", Div(length, time)),
	}
}

func TestSpecDeclaration_Validation(t *testing.T) {
	dimL := dimension.MustBase("length", symtext.Sym("L"))
	length := MustBase("length", dimL)

	_, err := NewBase("", dimL)
	assert.ErrorIs(t, err, ErrBadDeclaration)

	_, err = NewKind("radius", nil)
	assert.ErrorIs(t, err, ErrBadDeclaration)

	_, err = NewNamed("speed", nil)
	assert.ErrorIs(t, err, ErrBadDeclaration)

	r, err := NewKind("radius", length)
	require.NoError(t, err)
	assert.True(t, r.Dimension().Equal(length.Dimension()))
}

func TestKindHierarchy(t *testing.T) {
	f := newSpecFixture(t)

	assert.Same(t, f.length, f.radius.Kind())
	assert.Same(t, f.length, f.length.Kind())
	assert.True(t, f.radius.IsKindOf(f.width))
	assert.True(t, f.radius.IsKindOf(f.length))
	assert.False(t, f.width.IsKindOf(f.radius))
	assert.False(t, f.radius.IsKindOf(f.height))
}

func TestConvertibility(t *testing.T) {
	f := newSpecFixture(t)

	tests := []struct {
		name     string
		from, to *Spec
		implicit bool
		explicit bool
		castable bool
	}{
		{"identity", f.length, f.length, true, true, true},
		{"child to ancestor", f.radius, f.length, true, true, true},
		{"ancestor to child", f.length, f.radius, false, true, true},
		{"siblings", f.radius, f.height, false, false, true},
		{"different dimensions", f.length, f.time, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.implicit, ImplicitlyConvertible(tt.from, tt.to))
			assert.Equal(t, tt.explicit, ExplicitlyConvertible(tt.from, tt.to))
			assert.Equal(t, tt.castable, Castable(tt.from, tt.to))
		})
	}
}

func TestConvertibility_DerivedSpecs(t *testing.T) {
	f := newSpecFixture(t)

	// the named spec and its anonymous defining expression interconvert
	lengthPerTime := Div(f.length, f.time)
	assert.True(t, ImplicitlyConvertible(lengthPerTime, f.speed))
	assert.True(t, ImplicitlyConvertible(f.speed, lengthPerTime))

	// derived specs over specialized operands still match by dimension
	widthPerTime := Div(f.width, f.time)
	assert.True(t, ImplicitlyConvertible(widthPerTime, f.speed))
}

func TestKindOf(t *testing.T) {
	f := newSpecFixture(t)

	anyLength := KindOf(f.radius)
	assert.Same(t, f.length, anyLength.Kind())
	assert.True(t, ImplicitlyConvertible(f.height, anyLength))
	assert.True(t, ImplicitlyConvertible(f.radius, anyLength))
	assert.False(t, ImplicitlyConvertible(f.time, anyLength))
}

func TestSpecAlgebra(t *testing.T) {
	f := newSpecFixture(t)

	// structural equality by memoized pointer
	assert.Same(t, Div(f.length, f.time), Div(f.length, f.time))

	area := Mul(f.length, f.length)
	assert.Same(t, f.length, Div(area, f.length))

	assert.Same(t, Dimensionless, Div(f.length, f.length))

	inv := Inverse(f.time)
	assert.True(t, inv.Dimension().Equal(f.time.Dimension().Inverse()))

	cube, err := Pow(f.length, 3, 1)
	require.NoError(t, err)
	assert.True(t, cube.Dimension().Equal(area.Dimension().Mul(f.length.Dimension())))

	_, err = Pow(f.length, 1, 0)
	assert.ErrorIs(t, err, ErrBadDeclaration)
}

func TestSpecAlgebra_DistinctDeclarations(t *testing.T) {
	dimL := dimension.MustBase("length", symtext.Sym("L"))
	a := MustBase("length", dimL)
	b := MustBase("length", dimL)

	// two declarations with the same name stay separate atoms
	assert.NotSame(t, Mul(a, a), Mul(b, b))
	assert.Same(t, a, Div(Mul(a, a), a))
	assert.Same(t, b, Div(Mul(b, b), b))
}

func TestCharacterPropagation(t *testing.T) {
	f := newSpecFixture(t)

	velocity := MustKind("velocity", f.speed, WithCharacter(Vector))
	assert.Equal(t, Vector, velocity.Character())
	assert.Equal(t, Scalar, f.speed.Character())

	// derived specs take the strongest operand character
	momentumish := Mul(velocity, f.time)
	assert.Equal(t, Vector, momentumish.Character())
}

func TestCommonSpec(t *testing.T) {
	f := newSpecFixture(t)

	t.Run("identical", func(t *testing.T) {
		s, err := Common(f.radius, f.radius)
		require.NoError(t, err)
		assert.Same(t, f.radius, s)
	})

	t.Run("child and ancestor meet at the ancestor", func(t *testing.T) {
		s, err := Common(f.radius, f.length)
		require.NoError(t, err)
		assert.Same(t, f.length, s)
	})

	t.Run("siblings are rejected without a cast", func(t *testing.T) {
		_, err := Common(f.radius, f.height)
		assert.ErrorIs(t, err, ErrExplicitCastRequired)
	})

	t.Run("different dimensions are incompatible", func(t *testing.T) {
		_, err := Common(f.length, f.time)
		assert.ErrorIs(t, err, ErrIncompatible)
	})
}
