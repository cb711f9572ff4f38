// Package imperial declares imperial and US customary units, defined
// exactly in terms of SI.
package imperial

import (
	"github.com/c360studio/measure/magnitude"
	"github.com/c360studio/measure/systems/si"
	"github.com/c360studio/measure/unit"
)

// Length. The international yard is exactly 0.9144 m.
var (
	Inch = unit.MustNew("inch", unit.WithSymbol("in"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(254, 10_000), si.Metre)),
		unit.NotPrefixable())
	Foot = unit.MustNew("foot", unit.WithSymbol("ft"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(12, 1), Inch)),
		unit.NotPrefixable())
	Yard = unit.MustNew("yard", unit.WithSymbol("yd"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(3, 1), Foot)),
		unit.NotPrefixable())
	Mile = unit.MustNew("mile", unit.WithSymbol("mi"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(1760, 1), Yard)),
		unit.NotPrefixable())
	NauticalMile = unit.MustNew("nautical mile", unit.WithSymbol("nmi"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(1852, 1), si.Metre)),
		unit.NotPrefixable())
)

// Mass. The international pound is exactly 453.59237 g.
var (
	Pound = unit.MustNew("pound", unit.WithSymbol("lb"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(45_359_237, 100_000), si.Gram)),
		unit.NotPrefixable())
	Ounce = unit.MustNew("ounce", unit.WithSymbol("oz"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(1, 16), Pound)),
		unit.NotPrefixable())
	Stone = unit.MustNew("stone", unit.WithSymbol("st"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(14, 1), Pound)),
		unit.NotPrefixable())
)

// Speed.
var (
	MilePerHour = unit.Div(Mile, si.Hour)
	Knot        = unit.Div(NauticalMile, si.Hour)
)
