// core/molrec/builder.go
package molrec

import (
	"strings"

	"qcmol-core/element"
)

// Arrays enumerates the builder inputs. Per-atom slices left nil are
// defaulted; molecule-level optionals use pointers so "absent" stays
// distinguishable from a zero value.
type Arrays struct {
	Geom []float64 // required, 3*nat
	Elem []string  // required, nat element symbols

	Elea []int     // isotope mass numbers, nil = all unspecified
	Elez []int     // atomic numbers, nil = derive from Elem
	Mass []float64 // masses, nil = standard atomic weight by Z
	Real []bool    // nil = all real
	Elbl []string  // nil = all empty

	Name           *string
	Units          *string // Angstrom (default) or Bohr
	InputUnitsToAu *float64
	FixCom         *bool
	FixOrientation *bool
	FixSymmetry    *string

	FragmentSeparators     []int
	FragmentCharges        []float64 // nil = all 0, else one per fragment
	FragmentMultiplicities []int     // nil = all 1, else one per fragment

	MolecularCharge       *float64
	MolecularMultiplicity *int

	Domain string // "qm" when empty
}

// FromArrays normalizes Arrays into a canonical record. It defaults omitted
// fields and checks cross-array consistency; physical sanity checks
// (interatomic distances, charge/multiplicity electron counts) are left to
// downstream consumers.
func FromArrays(in Arrays) (*Molrec, error) {
	if in.Domain != "" && in.Domain != "qm" {
		return nil, Validationf("unsupported molecule domain: %q", in.Domain)
	}
	nat := len(in.Elem)
	if len(in.Geom) != 3*nat {
		return nil, Validationf("from arrays: geom length %d != 3*nat = %d", len(in.Geom), 3*nat)
	}

	m := &Molrec{
		Geom:  append([]float64(nil), in.Geom...),
		Elem:  make([]string, nat),
		Elea:  make([]int, nat),
		Elez:  make([]int, nat),
		Mass:  make([]float64, nat),
		Elbl:  make([]string, nat),
		Real:  make([]bool, nat),
		Units: UnitsAngstrom,
	}

	for i, sym := range in.Elem {
		z, ok := element.ZFromSymbol(sym)
		if !ok {
			return nil, Validationf("from arrays: unknown element symbol %q at atom %d", sym, i)
		}
		m.Elem[i] = element.Normalize(sym)
		m.Elez[i] = z
		m.Elea[i] = EleaUnspecified
		m.Mass[i] = element.MassOf(z)
		m.Real[i] = true
	}

	copyAtomInts := func(name string, dst, src []int) error {
		if src == nil {
			return nil
		}
		if len(src) != nat {
			return Validationf("from arrays: %s length %d != nat = %d", name, len(src), nat)
		}
		copy(dst, src)
		return nil
	}
	if err := copyAtomInts("elea", m.Elea, in.Elea); err != nil {
		return nil, err
	}
	if err := copyAtomInts("elez", m.Elez, in.Elez); err != nil {
		return nil, err
	}
	if in.Mass != nil {
		if len(in.Mass) != nat {
			return nil, Validationf("from arrays: mass length %d != nat = %d", len(in.Mass), nat)
		}
		copy(m.Mass, in.Mass)
	}
	if in.Real != nil {
		if len(in.Real) != nat {
			return nil, Validationf("from arrays: real length %d != nat = %d", len(in.Real), nat)
		}
		copy(m.Real, in.Real)
	}
	if in.Elbl != nil {
		if len(in.Elbl) != nat {
			return nil, Validationf("from arrays: elbl length %d != nat = %d", len(in.Elbl), nat)
		}
		copy(m.Elbl, in.Elbl)
	}

	if in.Units != nil {
		switch {
		case strings.EqualFold(*in.Units, UnitsAngstrom):
			m.Units = UnitsAngstrom
		case strings.EqualFold(*in.Units, UnitsBohr):
			m.Units = UnitsBohr
		default:
			return nil, Validationf("from arrays: record units must be Angstrom or Bohr, got %q", *in.Units)
		}
	}
	m.InputUnitsToAu = in.InputUnitsToAu

	prev := 0
	for _, sep := range in.FragmentSeparators {
		if sep <= prev || sep >= nat {
			return nil, Validationf("from arrays: fragment separators %v not strictly ascending within (0, %d)", in.FragmentSeparators, nat)
		}
		prev = sep
	}
	m.FragmentSeparators = append([]int(nil), in.FragmentSeparators...)

	nfr := m.Nfr()
	m.FragmentCharges = make([]float64, nfr)
	m.FragmentMultiplicities = make([]int, nfr)
	for i := range m.FragmentMultiplicities {
		m.FragmentMultiplicities[i] = 1
	}
	if in.FragmentCharges != nil {
		if len(in.FragmentCharges) != nfr {
			return nil, Validationf("from arrays: fragment charges length %d != nfr = %d", len(in.FragmentCharges), nfr)
		}
		copy(m.FragmentCharges, in.FragmentCharges)
	}
	if in.FragmentMultiplicities != nil {
		if len(in.FragmentMultiplicities) != nfr {
			return nil, Validationf("from arrays: fragment multiplicities length %d != nfr = %d", len(in.FragmentMultiplicities), nfr)
		}
		copy(m.FragmentMultiplicities, in.FragmentMultiplicities)
	}

	m.MolecularMultiplicity = 1
	if in.MolecularCharge != nil {
		m.MolecularCharge = *in.MolecularCharge
	}
	if in.MolecularMultiplicity != nil {
		if *in.MolecularMultiplicity < 1 {
			return nil, Validationf("from arrays: molecular multiplicity %d < 1", *in.MolecularMultiplicity)
		}
		m.MolecularMultiplicity = *in.MolecularMultiplicity
	}

	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.FixCom != nil {
		m.FixCom = *in.FixCom
	}
	if in.FixOrientation != nil {
		m.FixOrientation = *in.FixOrientation
	}
	if in.FixSymmetry != nil {
		m.FixSymmetry = *in.FixSymmetry
	}
	return m, nil
}
