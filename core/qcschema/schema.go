// Package qcschema ingests QCSchema-style molecule documents and normalizes
// them into the canonical record, contiguizing fragment membership on the
// way in.
package qcschema

// Schema is the top-level wire document. Only schema names starting with
// "qc_schema" at version 1 are recognized.
type Schema struct {
	SchemaName    string   `json:"schema_name"    yaml:"schema_name"`
	SchemaVersion *int     `json:"schema_version" yaml:"schema_version"`
	Molecule      Molecule `json:"molecule"       yaml:"molecule" validate:"required"`
}

// Molecule is the nested molecule mapping: per-atom arrays plus optional
// molecule-level scalars. Optional scalars are pointers so absence survives
// unmarshaling.
type Molecule struct {
	Symbols  []string  `json:"symbols"  yaml:"symbols"  validate:"required,min=1"`
	Geometry []float64 `json:"geometry" yaml:"geometry" validate:"required"`

	Fragments [][]int   `json:"fragments,omitempty" yaml:"fragments,omitempty"`
	Masses    []float64 `json:"masses,omitempty"    yaml:"masses,omitempty"`
	Real      []bool    `json:"real,omitempty"      yaml:"real,omitempty"`

	Name           *string `json:"name,omitempty"            yaml:"name,omitempty"`
	FixCom         *bool   `json:"fix_com,omitempty"         yaml:"fix_com,omitempty"`
	FixOrientation *bool   `json:"fix_orientation,omitempty" yaml:"fix_orientation,omitempty"`

	FragmentCharges        []float64 `json:"fragment_charges,omitempty"        yaml:"fragment_charges,omitempty"`
	FragmentMultiplicities []int     `json:"fragment_multiplicities,omitempty" yaml:"fragment_multiplicities,omitempty"`
	MolecularCharge        *float64  `json:"molecular_charge,omitempty"        yaml:"molecular_charge,omitempty"`
	MolecularMultiplicity  *int      `json:"molecular_multiplicity,omitempty"  yaml:"molecular_multiplicity,omitempty"`
}
