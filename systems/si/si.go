// Package si declares the SI unit system: the seven base units, the
// named derived units, the decimal prefixes and the non-SI units
// accepted for use with the SI.
package si

import (
	"github.com/c360studio/measure/magnitude"
	"github.com/c360studio/measure/symtext"
	"github.com/c360studio/measure/systems/isq"
	"github.com/c360studio/measure/unit"
)

// Base units. The gram carries the mass dimension; the kilogram is the
// prefixed coherent unit, as in the SI brochure.
var (
	Metre   = unit.MustNew("metre", unit.WithSymbol("m"), unit.WithBase(isq.DimLength))
	Second  = unit.MustNew("second", unit.WithSymbol("s"), unit.WithBase(isq.DimTime))
	Gram    = unit.MustNew("gram", unit.WithSymbol("g"), unit.WithBase(isq.DimMass))
	Ampere  = unit.MustNew("ampere", unit.WithSymbol("A"), unit.WithBase(isq.DimElectricCurrent))
	Kelvin  = unit.MustNew("kelvin", unit.WithSymbol("K"), unit.WithBase(isq.DimTemperature))
	Mole    = unit.MustNew("mole", unit.WithSymbol("mol"), unit.WithBase(isq.DimAmountOfSubstance))
	Candela = unit.MustNew("candela", unit.WithSymbol("cd"), unit.WithBase(isq.DimLuminousIntensity))
)

// Decimal prefixes.
var (
	Quecto = unit.MustPrefix("quecto", symtext.Sym("q"), magnitude.PowerOfTen(-30))
	Ronto  = unit.MustPrefix("ronto", symtext.Sym("r"), magnitude.PowerOfTen(-27))
	Yocto  = unit.MustPrefix("yocto", symtext.Sym("y"), magnitude.PowerOfTen(-24))
	Zepto  = unit.MustPrefix("zepto", symtext.Sym("z"), magnitude.PowerOfTen(-21))
	Atto   = unit.MustPrefix("atto", symtext.Sym("a"), magnitude.PowerOfTen(-18))
	Femto  = unit.MustPrefix("femto", symtext.Sym("f"), magnitude.PowerOfTen(-15))
	Pico   = unit.MustPrefix("pico", symtext.Sym("p"), magnitude.PowerOfTen(-12))
	Nano   = unit.MustPrefix("nano", symtext.Sym("n"), magnitude.PowerOfTen(-9))
	Micro  = unit.MustPrefix("micro", symtext.New("µ", "u"), magnitude.PowerOfTen(-6))
	Milli  = unit.MustPrefix("milli", symtext.Sym("m"), magnitude.PowerOfTen(-3))
	Centi  = unit.MustPrefix("centi", symtext.Sym("c"), magnitude.PowerOfTen(-2))
	Deci   = unit.MustPrefix("deci", symtext.Sym("d"), magnitude.PowerOfTen(-1))
	Deca   = unit.MustPrefix("deca", symtext.Sym("da"), magnitude.PowerOfTen(1))
	Hecto  = unit.MustPrefix("hecto", symtext.Sym("h"), magnitude.PowerOfTen(2))
	Kilo   = unit.MustPrefix("kilo", symtext.Sym("k"), magnitude.PowerOfTen(3))
	Mega   = unit.MustPrefix("mega", symtext.Sym("M"), magnitude.PowerOfTen(6))
	Giga   = unit.MustPrefix("giga", symtext.Sym("G"), magnitude.PowerOfTen(9))
	Tera   = unit.MustPrefix("tera", symtext.Sym("T"), magnitude.PowerOfTen(12))
	Peta   = unit.MustPrefix("peta", symtext.Sym("P"), magnitude.PowerOfTen(15))
	Exa    = unit.MustPrefix("exa", symtext.Sym("E"), magnitude.PowerOfTen(18))
	Zetta  = unit.MustPrefix("zetta", symtext.Sym("Z"), magnitude.PowerOfTen(21))
	Yotta  = unit.MustPrefix("yotta", symtext.Sym("Y"), magnitude.PowerOfTen(24))
	Ronna  = unit.MustPrefix("ronna", symtext.Sym("R"), magnitude.PowerOfTen(27))
	Quetta = unit.MustPrefix("quetta", symtext.Sym("Q"), magnitude.PowerOfTen(30))
)

// Named derived units.
var (
	Radian    = unit.MustNew("radian", unit.WithSymbol("rad"), unit.WithDefinition(unit.Div(Metre, Metre)))
	Steradian = unit.MustNew("steradian", unit.WithSymbol("sr"), unit.WithDefinition(unit.Div(unit.Square(Metre), unit.Square(Metre))))
	Hertz     = unit.MustNew("hertz", unit.WithSymbol("Hz"), unit.WithDefinition(unit.Inverse(Second)))
	Newton    = unit.MustNew("newton", unit.WithSymbol("N"), unit.WithDefinition(unit.Div(unit.Mul(Kilogram, Metre), unit.Square(Second))))
	Pascal    = unit.MustNew("pascal", unit.WithSymbol("Pa"), unit.WithDefinition(unit.Div(Newton, unit.Square(Metre))))
	Joule     = unit.MustNew("joule", unit.WithSymbol("J"), unit.WithDefinition(unit.Mul(Newton, Metre)))
	Watt      = unit.MustNew("watt", unit.WithSymbol("W"), unit.WithDefinition(unit.Div(Joule, Second)))
	Coulomb   = unit.MustNew("coulomb", unit.WithSymbol("C"), unit.WithDefinition(unit.Mul(Ampere, Second)))
	Volt      = unit.MustNew("volt", unit.WithSymbol("V"), unit.WithDefinition(unit.Div(Watt, Ampere)))
	Farad     = unit.MustNew("farad", unit.WithSymbol("F"), unit.WithDefinition(unit.Div(Coulomb, Volt)))
	Ohm       = unit.MustNew("ohm", unit.WithSymbolText(symtext.New("Ω", "ohm")), unit.WithDefinition(unit.Div(Volt, Ampere)))

	// The degree Celsius measures kelvins; only its point origin
	// differs.
	DegreeCelsius = unit.MustNew("degree Celsius",
		unit.WithSymbolText(symtext.New("°C", "`C")),
		unit.WithDefinition(Kelvin),
		unit.NotPrefixable())
)

// Common prefixed units, pre-applied for convenience.
var (
	Kilogram    = Kilo.MustApply(Gram)
	Milligram   = Milli.MustApply(Gram)
	Kilometre   = Kilo.MustApply(Metre)
	Centimetre  = Centi.MustApply(Metre)
	Millimetre  = Milli.MustApply(Metre)
	Micrometre  = Micro.MustApply(Metre)
	Nanometre   = Nano.MustApply(Metre)
	Millisecond = Milli.MustApply(Second)
	Microsecond = Micro.MustApply(Second)
	Nanosecond  = Nano.MustApply(Second)
	Kilohertz   = Kilo.MustApply(Hertz)
	Megahertz   = Mega.MustApply(Hertz)
	Kilojoule   = Kilo.MustApply(Joule)
	Kilowatt    = Kilo.MustApply(Watt)
	Millivolt   = Milli.MustApply(Volt)
)

// Non-SI units accepted for use with the SI.
var (
	Minute = unit.MustNew("minute", unit.WithSymbol("min"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(60, 1), Second)),
		unit.NotPrefixable())
	Hour = unit.MustNew("hour", unit.WithSymbol("h"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(60, 1), Minute)),
		unit.NotPrefixable())
	Day = unit.MustNew("day", unit.WithSymbol("d"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(24, 1), Hour)),
		unit.NotPrefixable())
	Degree = unit.MustNew("degree", unit.WithSymbolText(symtext.New("°", "deg")),
		unit.WithDefinition(unit.Scale(magnitude.FromIrrational(magnitude.Pi).Mul(magnitude.MustRatio(1, 180)), Radian)),
		unit.NotPrefixable())
	Litre = unit.MustNew("litre", unit.WithSymbol("l"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(1, 1000), unit.Cubic(Metre))))
	Tonne = unit.MustNew("tonne", unit.WithSymbol("t"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(1000, 1), Kilogram)))
	AstronomicalUnit = unit.MustNew("astronomical unit", unit.WithSymbol("au"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(149_597_870_700, 1), Metre)),
		unit.NotPrefixable())
)
