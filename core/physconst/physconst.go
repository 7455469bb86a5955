// Package physconst holds the length-unit constants and conversion table the
// serializer needs. CODATA 2014 values.
package physconst

import (
	"strings"

	"qcmol-core/molrec"
)

// Bohr2Angstroms is the Bohr radius expressed in Angstrom.
const Bohr2Angstroms = 0.52917721067

// toMeters maps lowercase length-unit names to their size in meters.
var toMeters = map[string]float64{
	"bohr":     Bohr2Angstroms * 1e-10,
	"angstrom": 1e-10,
	"nm":       1e-9,
	"pm":       1e-12,
	"um":       1e-6,
	"m":        1.0,
}

// ConversionFactor returns the multiplier taking lengths in `from` units to
// `to` units. Unit names are case-insensitive.
func ConversionFactor(from, to string) (float64, error) {
	f, ok := toMeters[strings.ToLower(from)]
	if !ok {
		return 0, molrec.Validationf("unknown length unit: %q", from)
	}
	t, ok := toMeters[strings.ToLower(to)]
	if !ok {
		return 0, molrec.Validationf("unknown length unit: %q", to)
	}
	return f / t, nil
}

// KnownUnit reports whether name is a recognized length unit.
func KnownUnit(name string) bool {
	_, ok := toMeters[strings.ToLower(name)]
	return ok
}
