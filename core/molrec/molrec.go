// Package molrec defines the canonical in-memory molecule record shared by
// the schema importer and the text serializers, plus the error kinds every
// domain-rule violation surfaces through.
package molrec

// Units values stored on a record. The record representation only ever holds
// Angstrom or Bohr; other length units appear on the serialization side.
const (
	UnitsAngstrom = "Angstrom"
	UnitsBohr     = "Bohr"
)

// EleaUnspecified is the isotope sentinel meaning "no isotope given". It is a
// declared domain convention, rendered as an empty field.
const EleaUnspecified = -1

// Molrec is the canonical molecule record. The per-atom slices are parallel:
// index i in every slice refers to the same physical atom, ordered by the
// canonical (fragment-contiguous) atom sequence. Serializers treat a Molrec
// as immutable; unit conversion produces a derived geometry copy.
type Molrec struct {
	// Per-atom parallel arrays.
	Elea []int     // isotope mass number, EleaUnspecified when not given
	Elez []int     // atomic number
	Elem []string  // element symbol
	Mass []float64 // atomic mass (u)
	Elbl []string  // user label appended to the symbol, often empty
	Real []bool    // false marks a ghost atom

	// Geom holds 3*nat Cartesians (x,y,z per atom) in Units.
	Geom []float64

	Units          string
	InputUnitsToAu *float64 // conversion used when the input was parsed, if known

	// FragmentSeparators lists the nfr-1 atom indices where one fragment
	// ends and the next begins.
	FragmentSeparators     []int
	FragmentCharges        []float64
	FragmentMultiplicities []int
	MolecularCharge        float64
	MolecularMultiplicity  int

	FixCom         bool
	FixOrientation bool
	FixSymmetry    string // point group to freeze, empty = unset

	Name string // display name, empty = derive from formula
}

// Nat returns the atom count.
func (m *Molrec) Nat() int { return len(m.Elem) }

// Nfr returns the fragment count.
func (m *Molrec) Nfr() int { return len(m.FragmentSeparators) + 1 }
