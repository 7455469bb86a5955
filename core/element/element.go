// Package element is a minimal periodic table: symbol <-> atomic number and
// standard atomic masses, used to default builder fields when a schema
// supplies only element symbols.
package element

import "strings"

// symbols is indexed by atomic number; index 0 is unused.
var symbols = [...]string{
	"", "H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// masses holds standard atomic weights (u), indexed by atomic number.
// Elements without a standard weight carry the mass of their most stable
// isotope.
var masses = [...]float64{
	0, 1.008, 4.002602, 6.94, 9.0121831, 10.81, 12.011, 14.007, 15.999, 18.998403163, 20.1797,
	22.98976928, 24.305, 26.9815385, 28.085, 30.973761998, 32.06, 35.45, 39.948, 39.0983, 40.078,
	44.955908, 47.867, 50.9415, 51.9961, 54.938044, 55.845, 58.933194, 58.6934, 63.546, 65.38,
	69.723, 72.630, 74.921595, 78.971, 79.904, 83.798, 85.4678, 87.62, 88.90584, 91.224,
	92.90637, 95.95, 97.90721, 101.07, 102.90550, 106.42, 107.8682, 112.414, 114.818, 118.710,
	121.760, 127.60, 126.90447, 131.293, 132.90545196, 137.327, 138.90547, 140.116, 140.90766, 144.242,
	144.91276, 150.36, 151.964, 157.25, 158.92535, 162.500, 164.93033, 167.259, 168.93422, 173.045,
	174.9668, 178.49, 180.94788, 183.84, 186.207, 190.23, 192.217, 195.084, 196.966569, 200.592,
	204.38, 207.2, 208.98040, 208.98243, 209.98715, 222.01758, 223.01974, 226.02541, 227.02775, 232.0377,
	231.03588, 238.02891, 237.04817, 244.06421, 243.06138, 247.07035, 247.07031, 251.07959, 252.08298, 257.09511,
	258.09843, 259.10100, 262.10961, 267.12179, 268.12567, 271.13393, 272.13826, 270.13429, 276.15159, 281.16451,
	280.16514, 285.17712, 284.17873, 289.19042, 288.19274, 293.20449, 292.20746, 294.21392,
}

var zFromSymbol = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols {
		if z > 0 {
			m[s] = z
		}
	}
	return m
}()

// Normalize returns sym with canonical capitalization ("cl" -> "Cl").
func Normalize(sym string) string {
	if sym == "" {
		return sym
	}
	return strings.ToUpper(sym[:1]) + strings.ToLower(sym[1:])
}

// ZFromSymbol maps an element symbol (any capitalization) to its atomic
// number.
func ZFromSymbol(sym string) (int, bool) {
	z, ok := zFromSymbol[Normalize(sym)]
	return z, ok
}

// SymbolOf returns the symbol for atomic number z, or "" when out of range.
func SymbolOf(z int) string {
	if z < 1 || z >= len(symbols) {
		return ""
	}
	return symbols[z]
}

// MassOf returns the standard atomic mass for atomic number z, or 0 when out
// of range.
func MassOf(z int) float64 {
	if z < 1 || z >= len(masses) {
		return 0
	}
	return masses[z]
}
