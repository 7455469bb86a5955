// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	flag "github.com/spf13/pflag"

	"qcmol-core/molfmt"
	"qcmol-core/molrec"
	"qcmol-core/qcschema"

	"qcmol/internal/convcli"
	"qcmol/internal/schemaio"
	"qcmol/internal/version"
	"qcmol/pkg/api"
)

// RunIO drives one conversion: parse flags, read the schema document,
// normalize, serialize, write. Exit codes: 0 ok, 2 usage or validation
// error, 3 output I/O error.
func RunIO(stdin io.Reader, argv []string, stdout, stderr io.Writer) int {
	fs := convcli.NewFlagSet("qcmol")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := convcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "qcmol version %s\n", version.Version)
		return 0
	}

	s, err := schemaio.Read(opts.Input, opts.From, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	m, err := qcschema.FromSchema(s, opts.Verbose)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	var text string
	if opts.To != convcli.ToRecord {
		text, err = molfmt.ToString(m, opts.To, molfmt.Options{
			Units:       opts.Units,
			AtomFormat:  opts.AtomFormat,
			GhostFormat: opts.GhostFormat,
			Width:       opts.Width,
			Prec:        opts.Prec,
		})
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
	}

	out := stdout
	if opts.Output != "-" {
		f, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	outw := bufio.NewWriter(out)

	if opts.To == convcli.ToRecord {
		err = schemaio.EncodeJSON(outw, recordV1(m))
	} else {
		_, err = io.WriteString(outw, text)
	}
	if err == nil {
		err = outw.Flush()
	}
	if err != nil {
		// tolerate downstream consumers (like `head`) closing early
		if errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

// Run is the os-backed entry point.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunIO(os.Stdin, argv, stdout, stderr)
}

// recordV1 maps the canonical record onto its stable wire type.
func recordV1(m *molrec.Molrec) api.MolrecV1 {
	return api.MolrecV1{
		Elea:                   m.Elea,
		Elez:                   m.Elez,
		Elem:                   m.Elem,
		Mass:                   m.Mass,
		Elbl:                   m.Elbl,
		Real:                   m.Real,
		Geom:                   m.Geom,
		Units:                  m.Units,
		InputUnitsToAu:         m.InputUnitsToAu,
		FragmentSeparators:     m.FragmentSeparators,
		FragmentCharges:        m.FragmentCharges,
		FragmentMultiplicities: m.FragmentMultiplicities,
		MolecularCharge:        m.MolecularCharge,
		MolecularMultiplicity:  m.MolecularMultiplicity,
		FixCom:                 m.FixCom,
		FixOrientation:         m.FixOrientation,
		FixSymmetry:            m.FixSymmetry,
		Name:                   m.Name,
	}
}
