// pkg/api/molrec_v1.go
package api

// MolrecV1 is the stable JSON schema for a normalized molecule record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MolrecV1 struct {
	Elea []int     `json:"elea"` // -1 = isotope unspecified
	Elez []int     `json:"elez"`
	Elem []string  `json:"elem"`
	Mass []float64 `json:"mass"`
	Elbl []string  `json:"elbl"`
	Real []bool    `json:"real"`

	Geom []float64 `json:"geom"`

	Units          string   `json:"units"` // "Angstrom" | "Bohr"
	InputUnitsToAu *float64 `json:"input_units_to_au,omitempty"`

	FragmentSeparators     []int     `json:"fragment_separators"`
	FragmentCharges        []float64 `json:"fragment_charges"`
	FragmentMultiplicities []int     `json:"fragment_multiplicities"`
	MolecularCharge        float64   `json:"molecular_charge"`
	MolecularMultiplicity  int       `json:"molecular_multiplicity"`

	FixCom         bool   `json:"fix_com"`
	FixOrientation bool   `json:"fix_orientation"`
	FixSymmetry    string `json:"fix_symmetry,omitempty"`

	Name string `json:"name,omitempty"`
}
