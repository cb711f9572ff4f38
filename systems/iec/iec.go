// Package iec declares data units and binary prefixes per IEC 80000-13.
// Data carries its own base dimension so byte counts never mix with
// plain numbers.
package iec

import (
	"github.com/c360studio/measure/dimension"
	"github.com/c360studio/measure/magnitude"
	"github.com/c360studio/measure/quantity"
	"github.com/c360studio/measure/ratio"
	"github.com/c360studio/measure/symtext"
	"github.com/c360studio/measure/systems/isq"
	"github.com/c360studio/measure/unit"
)

var DimData = dimension.MustBase("data", symtext.Sym("D"))

var (
	StorageCapacity = quantity.MustBase("storage capacity", DimData)
	TransferRate    = quantity.MustNamed("transfer rate", quantity.Div(StorageCapacity, isq.Time))
)

var (
	Bit  = unit.MustNew("bit", unit.WithSymbol("bit"), unit.WithBase(DimData))
	Byte = unit.MustNew("byte", unit.WithSymbol("B"),
		unit.WithDefinition(unit.Scale(magnitude.MustRatio(8, 1), Bit)))
)

// Binary prefixes, powers of 1024.
var (
	Kibi = unit.MustPrefix("kibi", symtext.Sym("Ki"), pow2(10))
	Mebi = unit.MustPrefix("mebi", symtext.Sym("Mi"), pow2(20))
	Gibi = unit.MustPrefix("gibi", symtext.Sym("Gi"), pow2(30))
	Tebi = unit.MustPrefix("tebi", symtext.Sym("Ti"), pow2(40))
	Pebi = unit.MustPrefix("pebi", symtext.Sym("Pi"), pow2(50))
	Exbi = unit.MustPrefix("exbi", symtext.Sym("Ei"), pow2(60))
)

// Common prefixed units.
var (
	Kibibyte = Kibi.MustApply(Byte)
	Mebibyte = Mebi.MustApply(Byte)
	Gibibyte = Gibi.MustApply(Byte)
)

func pow2(k int64) magnitude.Magnitude {
	return magnitude.MustRatio(2, 1).Pow(ratio.FromInt(k))
}
