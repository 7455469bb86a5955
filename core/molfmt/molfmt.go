// Package molfmt serializes a canonical molecule record into
// program-specific plain-text geometry blocks. Supported dtypes: xyz, cfour,
// nwchem, gamess, terachem; each registers its renderer from its own file.
package molfmt

import (
	"fmt"
	"strconv"
	"strings"

	"qcmol-core/formula"
	"qcmol-core/molrec"
	"qcmol-core/physconst"
)

const (
	defaultWidth = 17
	defaultPrec  = 12
	fieldSep     = 2 // spaces between atom-line fields
)

// Options tunes serialization. Zero values mean Angstrom target units, width
// 17, precision 12. Nil templates select the per-dtype defaults; the dtypes
// that force their templates ignore overrides. A GhostFormat pointing at the
// empty string suppresses ghost atoms entirely.
type Options struct {
	Units       string
	AtomFormat  *string
	GhostFormat *string
	Width       int
	Prec        int
}

// renderContext hands a renderer the derived, unit-converted view of a
// record. The record itself is never mutated.
type renderContext struct {
	m       *molrec.Molrec
	geom    []float64 // 3*nat, converted to opts.Units
	units   string
	name    string
	tagline string
	opts    Options
}

// ToString formats m as a dtype geometry block, newline-terminated. An
// unrecognized dtype is a FormatError; bad units or templates surface as
// ValidationErrors.
func ToString(m *molrec.Molrec, dtype string, opts Options) (string, error) {
	if opts.Units == "" {
		opts.Units = molrec.UnitsAngstrom
	}
	if opts.Width == 0 {
		opts.Width = defaultWidth
	}
	if opts.Prec == 0 {
		opts.Prec = defaultPrec
	}

	render, ok := renderers[dtype]
	if !ok {
		return "", &molrec.FormatError{Dtype: dtype}
	}

	factor, err := unitFactor(m, opts.Units)
	if err != nil {
		return "", err
	}
	geom := make([]float64, len(m.Geom))
	for i, x := range m.Geom {
		geom[i] = x * factor
	}

	name := m.Name
	if name == "" {
		name = formula.Generate(m.Elem)
	}

	rc := &renderContext{
		m:       m,
		geom:    geom,
		units:   opts.Units,
		name:    name,
		tagline: fmt.Sprintf("auto-generated by qcmol from molecule %s", name),
		opts:    opts,
	}
	lines, err := render(rc)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// unitFactor maps the record's stored units onto the requested output units.
func unitFactor(m *molrec.Molrec, units string) (float64, error) {
	ang := func(u string) bool { return strings.EqualFold(u, molrec.UnitsAngstrom) }
	bohr := func(u string) bool { return strings.EqualFold(u, molrec.UnitsBohr) }
	switch {
	case ang(m.Units) && ang(units), bohr(m.Units) && bohr(units):
		return 1, nil
	case ang(m.Units) && bohr(units):
		if m.InputUnitsToAu != nil {
			return *m.InputUnitsToAu, nil
		}
		return 1 / physconst.Bohr2Angstroms, nil
	case bohr(m.Units) && ang(units):
		return physconst.Bohr2Angstroms, nil
	default:
		return physconst.ConversionFactor(m.Units, units)
	}
}

// atomLines renders one line per atom: the filled label left-justified to
// width, then the three coordinates right-justified at width.prec, joined by
// the fixed separator. Ghost atoms take ghostFormat; an empty ghostFormat
// drops them from the output altogether.
func atomLines(m *molrec.Molrec, geom []float64, atomFormat, ghostFormat string, width, prec int) []string {
	sep := strings.Repeat(" ", fieldSep)
	lines := make([]string, 0, m.Nat())
	for iat := 0; iat < m.Nat(); iat++ {
		tmpl := atomFormat
		if !m.Real[iat] {
			if ghostFormat == "" {
				continue
			}
			tmpl = ghostFormat
		}
		fields := []string{fmt.Sprintf("%-*s", width, fillTemplate(tmpl, m, iat))}
		for k := 0; k < 3; k++ {
			fields = append(fields, fmt.Sprintf("%*.*f", width, prec, geom[3*iat+k]))
		}
		lines = append(lines, strings.Join(fields, sep))
	}
	return lines
}

// fillTemplate resolves the restricted atom-field substitutions
// {elea} {elez} {elem} {mass} {elbl} against atom iat. Unknown braces pass
// through verbatim; this is not a general template engine.
func fillTemplate(tmpl string, m *molrec.Molrec, iat int) string {
	elea := ""
	if m.Elea[iat] != molrec.EleaUnspecified {
		elea = strconv.Itoa(m.Elea[iat])
	}
	r := strings.NewReplacer(
		"{elea}", elea,
		"{elez}", strconv.Itoa(m.Elez[iat]),
		"{elem}", m.Elem[iat],
		"{mass}", strconv.FormatFloat(m.Mass[iat], 'g', -1, 64),
		"{elbl}", m.Elbl[iat],
	)
	return r.Replace(tmpl)
}
