// core/qcschema/from_schema.go
package qcschema

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"

	"qcmol-core/contig"
	"qcmol-core/molrec"
)

const (
	// recognizedPrefix gates schema_name.
	recognizedPrefix = "qc_schema"
	// supportedVersion is the only schema_version accepted.
	supportedVersion = 1
)

var validate = validator.New()

// FromSchema validates a schema document and normalizes it into a canonical
// record. Fragments must already be contiguous or listed in an explicit
// order; the importer asks the contiguizer to fail rather than silently
// permute atoms.
func FromSchema(s Schema, verbose int) (*molrec.Molrec, error) {
	if !strings.HasPrefix(s.SchemaName, recognizedPrefix) || s.SchemaVersion == nil || *s.SchemaVersion != supportedVersion {
		return nil, molrec.Validationf("schema not recognized, schema_name/schema_version: %s/%s",
			orNone(s.SchemaName), versionOrNone(s.SchemaVersion))
	}
	if err := validate.Struct(s); err != nil {
		return nil, molrec.Validationf("schema molecule invalid: %v", err)
	}
	ms := s.Molecule

	fragPattern := ms.Fragments
	if fragPattern == nil {
		all := make([]int, len(ms.Symbols))
		for i := range all {
			all[i] = i
		}
		fragPattern = [][]int{all}
	}

	plan, err := contig.Contiguize(fragPattern, true)
	if err != nil {
		return nil, err
	}
	geom, err := plan.Geom(ms.Geometry)
	if err != nil {
		return nil, err
	}
	elem, err := contig.Gather(plan, "elem", ms.Symbols)
	if err != nil {
		return nil, err
	}
	mass, err := contig.Gather(plan, "mass", ms.Masses)
	if err != nil {
		return nil, err
	}
	realArr, err := contig.Gather(plan, "real", ms.Real)
	if err != nil {
		return nil, err
	}

	units := molrec.UnitsBohr // QCSchema geometries are atomic units
	m, err := molrec.FromArrays(molrec.Arrays{
		Geom:                   geom,
		Elem:                   elem,
		Mass:                   mass,
		Real:                   realArr,
		Name:                   ms.Name,
		Units:                  &units,
		FixCom:                 ms.FixCom,
		FixOrientation:         ms.FixOrientation,
		FragmentSeparators:     plan.FragmentSeparators(),
		FragmentCharges:        ms.FragmentCharges,
		FragmentMultiplicities: ms.FragmentMultiplicities,
		MolecularCharge:        ms.MolecularCharge,
		MolecularMultiplicity:  ms.MolecularMultiplicity,
		Domain:                 "qm",
	})
	if err != nil {
		return nil, err
	}
	if verbose >= 2 {
		log.Info("schema imported", "name", s.SchemaName, "nat", m.Nat(), "nfr", m.Nfr())
	}
	return m, nil
}

// FromJSON unmarshals a JSON schema document and imports it.
func FromJSON(data []byte, verbose int) (*molrec.Molrec, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, molrec.Validationf("schema unmarshal: %v", err)
	}
	return FromSchema(s, verbose)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func versionOrNone(v *int) string {
	if v == nil {
		return "(none)"
	}
	return strconv.Itoa(*v)
}
