// core/molfmt/xyz.go
package molfmt

import (
	"fmt"
	"strings"
)

func init() { register("xyz", renderXYZ) }

// renderXYZ writes the classic two-header-line xyz block. The first line
// carries the emitted atom count and a unit label: blank for Angstrom, "au"
// for Bohr, the literal lowercase unit name otherwise (such files only
// round-trip as the annotated xyz variant).
func renderXYZ(rc *renderContext) ([]string, error) {
	atomFormat := "{elem}"
	if rc.opts.AtomFormat != nil {
		atomFormat = *rc.opts.AtomFormat
	}
	ghostFormat := "@{elem}"
	if rc.opts.GhostFormat != nil {
		ghostFormat = *rc.opts.GhostFormat
	}

	label, ok := map[string]string{"bohr": "au", "angstrom": ""}[strings.ToLower(rc.units)]
	if !ok {
		label = strings.ToLower(rc.units)
	}

	atoms := atomLines(rc.m, rc.geom, atomFormat, ghostFormat, rc.opts.Width, rc.opts.Prec)
	first := strings.TrimRight(fmt.Sprintf("%d %s", len(atoms), label), " ")
	lines := append([]string{first, rc.name}, atoms...)
	return lines, nil
}
