// Package cgs declares the centimetre-gram-second system. It reuses the
// SI atoms, so CGS and SI quantities convert exactly.
package cgs

import (
	"github.com/c360studio/measure/systems/si"
	"github.com/c360studio/measure/unit"
)

var (
	Centimetre = si.Centimetre
	Gram       = si.Gram
	Second     = si.Second

	// gal: the CGS unit of acceleration, cm/s².
	Gal = unit.MustNew("gal", unit.WithSymbol("Gal"),
		unit.WithDefinition(unit.Div(Centimetre, unit.Square(Second))))

	// dyne: g·cm/s² = 10⁻⁵ N.
	Dyne = unit.MustNew("dyne", unit.WithSymbol("dyn"),
		unit.WithDefinition(unit.Mul(Gram, Gal)))

	// erg: dyn·cm = 10⁻⁷ J.
	Erg = unit.MustNew("erg", unit.WithSymbol("erg"),
		unit.WithDefinition(unit.Mul(Dyne, Centimetre)))

	// barye: the CGS unit of pressure, dyn/cm².
	Barye = unit.MustNew("barye", unit.WithSymbol("Ba"),
		unit.WithDefinition(unit.Div(Dyne, unit.Square(Centimetre))))

	// poise: the CGS unit of dynamic viscosity, g/(cm·s).
	Poise = unit.MustNew("poise", unit.WithSymbol("P"),
		unit.WithDefinition(unit.Div(Gram, unit.Mul(Centimetre, Second))))
)
