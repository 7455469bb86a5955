// core/molfmt/cfour.go
package molfmt

func init() { register("cfour", renderCfour) }

// renderCfour writes a CFOUR ZMAT Cartesian block. Templates are forced:
// nucleus label for real atoms, literal GH for ghosts (ghost identity is
// recovered later in basis formatting). The format has no slot for units, so
// none are encoded. No leading spaces on the comment line.
func renderCfour(rc *renderContext) ([]string, error) {
	atoms := atomLines(rc.m, rc.geom, "{elem}", "GH", rc.opts.Width, rc.opts.Prec)
	return append([]string{rc.tagline}, atoms...), nil
}
