// Package scale renders raw magnitudes with a best-fit SI prefix. The
// table is general purpose: time (µs, ms), rates (MFLOP/s), sizes (kB),
// anything with a power-of-ten representation.
package scale

import (
	"fmt"
	"math"
)

// Scale pairs an SI prefix with its power-of-ten divisor.
type Scale struct {
	Suffix  string
	Divisor float64
}

// Indexes into Table, smallest to largest magnitude.
const (
	Nano = iota
	Micro
	Milli
	Unit
	Kilo
	Mega
	Giga
	Tera

	count
)

// Table spans nano (1e-9) through tera (1e12) in steps of 1000. Read only.
var Table = [count]Scale{
	{"n", 1e-9},
	{"µ", 1e-6},
	{"m", 1e-3},
	{"", 1},
	{"k", 1e3},
	{"M", 1e6},
	{"G", 1e9},
	{"T", 1e12},
}

// ForValue picks the largest scale whose divisor keeps |v| at or above 1.
// Zero and sub-nano magnitudes fall back to the nano scale.
func ForValue(v float64) Scale {
	if v == 0 {
		return Table[Nano]
	}
	for i := count - 1; i >= 0; i-- {
		if math.Abs(v/Table[i].Divisor) >= 1.0 {
			return Table[i]
		}
	}
	return Table[Nano]
}

// Format renders v scaled to its best-fit prefix, three decimals in a
// seven-wide field, followed by the prefixed unit (e.g. "  1.500 s",
// " 21.871 GFLOP/s").
func Format(v float64, unit string) string {
	s := ForValue(v)
	return fmt.Sprintf("%7.3f %s%s", v/s.Divisor, s.Suffix, unit)
}
