// core/molfmt/terachem.go
package molfmt

import (
	"fmt"
	"strings"

	"qcmol-core/molrec"
)

func init() { register("terachem", renderTerachem) }

// renderTerachem writes TeraChem's xyz-like block. Templates are fixed
// regardless of caller options; ghosts become X-prefixed symbols. Units are
// validated against the tags the program accepts but never printed.
func renderTerachem(rc *renderContext) ([]string, error) {
	if _, ok := map[string]struct{}{"bohr": {}, "angstrom": {}}[strings.ToLower(rc.units)]; !ok {
		return nil, molrec.Validationf("terachem cannot express units %q", rc.units)
	}

	atoms := atomLines(rc.m, rc.geom, "{elem}", "X{elem}", rc.opts.Width, rc.opts.Prec)
	first := strings.TrimRight(fmt.Sprintf("%d ", len(atoms)), " ")
	lines := append([]string{first, rc.name}, atoms...)
	return lines, nil
}
