// Package contig reconciles fragment membership with physical atom ordering.
// A fragment pattern partitions atom indices into ordered groups; Contiguize
// validates the pattern and plans the permutation that lays atoms out
// group-contiguously, and the plan is then applied identically to the
// geometry and to every other per-atom array so cross-array correspondence
// is preserved.
package contig

import (
	"sort"

	"github.com/charmbracelet/log"

	"qcmol-core/molrec"
)

// Plan is the validated outcome of a fragment pattern: the fragment
// separators plus the gather order shared by every array of the record.
type Plan struct {
	pattern    [][]int
	nat        int
	separators []int
	reorder    bool // atoms are not laid out group-contiguously
}

// Contiguize validates pattern and computes the reordering plan.
//
// The concatenation of all groups must be a permutation of 0..nat-1;
// duplicates, gaps, and out-of-range indices are ValidationErrors. When the
// unsorted concatenation differs from the identity range the fragments are
// non-contiguous in the current layout: a warning is logged and the plan
// gathers atoms into pattern order, unless throwReorder demands failure
// instead.
func Contiguize(pattern [][]int, throwReorder bool) (*Plan, error) {
	p := &Plan{pattern: pattern}

	flat := make([]int, 0)
	cum := make([]int, 0, len(pattern))
	for _, fr := range pattern {
		flat = append(flat, fr...)
		cum = append(cum, len(flat))
	}
	p.nat = len(flat)
	if len(cum) > 0 {
		p.separators = cum[:len(cum)-1]
	}

	sorted := append([]int(nil), flat...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i {
			return nil, molrec.Validationf("fragmentation pattern skips atoms: %v", pattern)
		}
	}

	for i, v := range flat {
		if v != i {
			p.reorder = true
			break
		}
	}
	if p.reorder {
		if throwReorder {
			return nil, molrec.Validationf("would need to reorder atoms to accommodate non-contiguous fragments: %v", pattern)
		}
		log.Warn("reordering atoms to accommodate non-contiguous fragments")
	}
	return p, nil
}

// Nat returns the total atom count implied by the pattern.
func (p *Plan) Nat() int { return p.nat }

// Reordered reports whether applying the plan permutes atoms.
func (p *Plan) Reordered() bool { return p.reorder }

// FragmentSeparators returns the nfr-1 cumulative fragment boundaries.
func (p *Plan) FragmentSeparators() []int {
	return append([]int(nil), p.separators...)
}

// Geom gathers the nat x,y,z rows of geom into fragment order and returns
// them flattened. A nil geom passes through untouched.
func (p *Plan) Geom(geom []float64) ([]float64, error) {
	if geom == nil {
		return nil, nil
	}
	if len(geom)%3 != 0 || len(geom)/3 != p.nat {
		return nil, molrec.Validationf("dropped atoms! nat = %d != %d", p.nat, len(geom)/3)
	}
	out := make([]float64, 0, len(geom))
	for _, fr := range p.pattern {
		for _, iat := range fr {
			out = append(out, geom[3*iat:3*iat+3]...)
		}
	}
	return out, nil
}

// Gather applies the plan's permutation to one named per-atom array. A nil
// array passes through untouched; a length mismatch is a ValidationError
// naming the array.
func Gather[T any](p *Plan, name string, arr []T) ([]T, error) {
	if arr == nil {
		return nil, nil
	}
	if len(arr) != p.nat {
		return nil, molrec.Validationf("wrong number of atoms in %s array: nat = %d != %d", name, p.nat, len(arr))
	}
	out := make([]T, 0, len(arr))
	for _, fr := range p.pattern {
		for _, iat := range fr {
			out = append(out, arr[iat])
		}
	}
	return out, nil
}
