package si

import (
	"github.com/c360studio/measure/quantity"
	"github.com/c360studio/measure/systems/isq"
)

// Point origins for temperature. Celsius points relate to kelvin points
// through the shared absolute zero.
var (
	AbsoluteZero        = quantity.MustOrigin("absolute zero", isq.Temperature)
	ZerothDegreeCelsius = quantity.MustRelativeOrigin("zeroth degree Celsius", AbsoluteZero,
		quantity.New(273.15, quantity.MustReference(isq.Temperature, Kelvin)))
)

// Metres builds a length quantity in metres.
func Metres[R quantity.Rep](v R) quantity.Quantity[R] {
	return quantity.New(v, quantity.MustReference(isq.Length, Metre))
}

// Kilometres builds a length quantity in kilometres.
func Kilometres[R quantity.Rep](v R) quantity.Quantity[R] {
	return quantity.New(v, quantity.MustReference(isq.Length, Kilometre))
}

// Millimetres builds a length quantity in millimetres.
func Millimetres[R quantity.Rep](v R) quantity.Quantity[R] {
	return quantity.New(v, quantity.MustReference(isq.Length, Millimetre))
}

// Seconds builds a time quantity in seconds.
func Seconds[R quantity.Rep](v R) quantity.Quantity[R] {
	return quantity.New(v, quantity.MustReference(isq.Time, Second))
}

// Hours builds a time quantity in hours.
func Hours[R quantity.Rep](v R) quantity.Quantity[R] {
	return quantity.New(v, quantity.MustReference(isq.Time, Hour))
}

// Kilograms builds a mass quantity in kilograms.
func Kilograms[R quantity.Rep](v R) quantity.Quantity[R] {
	return quantity.New(v, quantity.MustReference(isq.Mass, Kilogram))
}

// Kelvins builds a temperature quantity in kelvins.
func Kelvins[R quantity.Rep](v R) quantity.Quantity[R] {
	return quantity.New(v, quantity.MustReference(isq.Temperature, Kelvin))
}

// DegreesCelsius builds a temperature point anchored at 0 °C.
func DegreesCelsius[R quantity.Rep](v R) quantity.Point[R] {
	q := quantity.New(v, quantity.MustReference(isq.Temperature, DegreeCelsius))
	return quantity.MustPoint(q, ZerothDegreeCelsius)
}
