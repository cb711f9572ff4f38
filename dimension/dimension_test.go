package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/measure/ratio"
	"github.com/c360studio/measure/symtext"
)

func TestNewBase_Validation(t *testing.T) {
	_, err := NewBase("", symtext.Sym("L"))
	assert.Error(t, err)

	_, err = NewBase("length", symtext.Text{})
	assert.Error(t, err)

	d, err := NewBase("length", symtext.Sym("L"))
	require.NoError(t, err)
	assert.False(t, d.IsOne())
}

func TestAlgebra(t *testing.T) {
	length := MustBase("length", symtext.Sym("L"))
	time := MustBase("time", symtext.Sym("T"))

	speed := length.Div(time)
	accel := speed.Div(time)

	// composing in any order yields the same dimension
	assert.True(t, accel.Equal(length.Div(time.Pow(ratio.FromInt(2)))))
	assert.True(t, length.Mul(time).Equal(time.Mul(length)))

	// inverse law
	assert.True(t, speed.Mul(speed.Inverse()).IsOne())
	assert.True(t, length.Div(length).IsOne())
}

func TestIdentityElement(t *testing.T) {
	length := MustBase("length", symtext.Sym("L"))

	assert.True(t, One.IsOne())
	assert.True(t, length.Mul(One).Equal(length))
	assert.True(t, One.Mul(length).Equal(length))
}

func TestBaseIdentity(t *testing.T) {
	// two declarations with the same name and symbol are distinct atoms
	a := MustBase("length", symtext.Sym("L"))
	b := MustBase("length", symtext.Sym("L"))

	// same order key makes them compare equal structurally
	assert.True(t, a.Equal(b))
}

func TestFormat(t *testing.T) {
	length := MustBase("length", symtext.Sym("L"))
	time := MustBase("time", symtext.Sym("T"))

	tests := []struct {
		name string
		dim  Dimension
		enc  symtext.Encoding
		want string
	}{
		{"dimensionless", One, symtext.Unicode, "1"},
		{"base", length, symtext.Unicode, "L"},
		{"acceleration unicode", length.Div(time.Pow(ratio.FromInt(2))), symtext.Unicode, "LT⁻²"},
		{"acceleration ascii", length.Div(time.Pow(ratio.FromInt(2))), symtext.ASCII, "LT^-2"},
		{"square", length.Pow(ratio.FromInt(2)), symtext.Unicode, "L²"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.dim.Format(tt.enc))
		})
	}
}
