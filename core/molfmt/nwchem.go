// core/molfmt/nwchem.go
package molfmt

import (
	"fmt"
	"strings"

	"qcmol-core/molrec"
)

func init() { register("nwchem", renderNwchem) }

// nwchemUnits maps unit names onto NWChem's geometry-directive spellings.
var nwchemUnits = map[string]string{
	"bohr":     "bohr",
	"angstrom": "angstroms",
	"nm":       "nanometers",
	"pm":       "picometers",
}

// renderNwchem writes an NWChem geometry block. Templates are forced (GH for
// ghosts); a symmetry directive is emitted only when the record fixes a
// point group.
func renderNwchem(rc *renderContext) ([]string, error) {
	mapped, ok := nwchemUnits[strings.ToLower(rc.units)]
	if !ok {
		return nil, molrec.Validationf("nwchem cannot express units %q", rc.units)
	}

	atoms := atomLines(rc.m, rc.geom, "{elem}", "GH", rc.opts.Width, rc.opts.Prec)
	lines := append([]string{fmt.Sprintf("geometry units %s", mapped)}, atoms...)
	if rc.m.FixSymmetry != "" {
		lines = append(lines, fmt.Sprintf("symmetry %s", rc.m.FixSymmetry))
	}
	return append(lines, "end"), nil
}
