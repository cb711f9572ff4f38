// Package isq declares the International System of Quantities: the
// seven base dimensions, their base quantity specifications and the
// common derived and specialized quantities built on them.
package isq

import (
	"github.com/c360studio/measure/dimension"
	"github.com/c360studio/measure/quantity"
	"github.com/c360studio/measure/symtext"
)

// Base dimensions.
var (
	DimLength            = dimension.MustBase("length", symtext.Sym("L"))
	DimMass              = dimension.MustBase("mass", symtext.Sym("M"))
	DimTime              = dimension.MustBase("time", symtext.Sym("T"))
	DimElectricCurrent   = dimension.MustBase("electric current", symtext.Sym("I"))
	DimTemperature       = dimension.MustBase("thermodynamic temperature", symtext.New("Θ", "O"))
	DimAmountOfSubstance = dimension.MustBase("amount of substance", symtext.Sym("N"))
	DimLuminousIntensity = dimension.MustBase("luminous intensity", symtext.Sym("J"))
)

// Base quantity specifications, one kind hierarchy per base dimension.
var (
	Length            = quantity.MustBase("length", DimLength)
	Mass              = quantity.MustBase("mass", DimMass)
	Time              = quantity.MustBase("time", DimTime)
	ElectricCurrent   = quantity.MustBase("electric current", DimElectricCurrent)
	Temperature       = quantity.MustBase("thermodynamic temperature", DimTemperature)
	AmountOfSubstance = quantity.MustBase("amount of substance", DimAmountOfSubstance)
	LuminousIntensity = quantity.MustBase("luminous intensity", DimLuminousIntensity)
)

// Specializations of length. All measure the same dimension, but only
// the parent-child relations convert implicitly.
var (
	Width      = quantity.MustKind("width", Length)
	Height     = quantity.MustKind("height", Length)
	Thickness  = quantity.MustKind("thickness", Width)
	Diameter   = quantity.MustKind("diameter", Width)
	Radius     = quantity.MustKind("radius", Width)
	Distance   = quantity.MustKind("distance", Length)
	PathLength = quantity.MustKind("path length", Length)
	Wavelength = quantity.MustKind("wavelength", Length)
	Altitude   = quantity.MustKind("altitude", Height)
)

// Specializations of time.
var (
	Duration = quantity.MustKind("duration", Time)
	Period   = quantity.MustKind("period duration", Duration)
)

// Named derived quantity specifications.
var (
	Area         = quantity.MustNamed("area", mustPow(Length, 2))
	Volume       = quantity.MustNamed("volume", mustPow(Length, 3))
	Speed        = quantity.MustNamed("speed", quantity.Div(Length, Time))
	Velocity     = quantity.MustKind("velocity", Speed, quantity.WithCharacter(quantity.Vector))
	Acceleration = quantity.MustNamed("acceleration", quantity.Div(Speed, Time))
	Frequency    = quantity.MustNamed("frequency", quantity.Inverse(Period))
	Force        = quantity.MustNamed("force", quantity.Mul(Mass, Acceleration))
	Energy       = quantity.MustNamed("energy", quantity.Mul(Force, Length))
	Power        = quantity.MustNamed("power", quantity.Div(Energy, Time))
	Pressure     = quantity.MustNamed("pressure", quantity.Div(Force, Area))
	Momentum     = quantity.MustNamed("momentum", quantity.Mul(Mass, Speed), quantity.WithCharacter(quantity.Vector))

	ElectricCharge = quantity.MustNamed("electric charge", quantity.Mul(ElectricCurrent, Time))
	Voltage        = quantity.MustNamed("voltage", quantity.Div(Power, ElectricCurrent))
	Resistance     = quantity.MustNamed("electric resistance", quantity.Div(Voltage, ElectricCurrent))
	Capacitance    = quantity.MustNamed("capacitance", quantity.Div(ElectricCharge, Voltage))
)

// Dimensionless quantities.
var (
	AngularMeasure = quantity.MustNamed("angular measure", quantity.Dimensionless)
	SolidAngular   = quantity.MustNamed("solid angular measure", quantity.Dimensionless)
)

func mustPow(s *quantity.Spec, n int64) *quantity.Spec {
	p, err := quantity.Pow(s, n, 1)
	if err != nil {
		panic(err)
	}
	return p
}
