// core/molfmt/gamess.go
package molfmt

import (
	"qcmol-core/molrec"
	"qcmol-core/physconst"
)

func init() { register("gamess", renderGamess) }

// renderGamess writes a GAMESS $data group. Templates are forced: label plus
// atomic number for real atoms, BQ with negated atomic number for ghosts.
// Units are validated but the group has no slot to emit them.
func renderGamess(rc *renderContext) ([]string, error) {
	if !physconst.KnownUnit(rc.units) {
		return nil, molrec.Validationf("unknown length unit: %q", rc.units)
	}

	atoms := atomLines(rc.m, rc.geom, " {elem}{elbl} {elez}", " BQ -{elez}", rc.opts.Width, rc.opts.Prec)
	lines := []string{" $data", " " + rc.tagline, " C1"}
	lines = append(lines, atoms...)
	return append(lines, " $end"), nil
}
