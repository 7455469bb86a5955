// internal/convcli/options.go
package convcli

import (
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"qcmol-core/molfmt"

	"qcmol/internal/version"
)

// Input document encodings.
const (
	FromAuto = "auto"
	FromJSON = "json"
	FromYAML = "yaml"
)

// ToRecord dumps the normalized canonical record as JSON instead of a
// geometry block.
const ToRecord = "record"

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input string // schema file, '-' for stdin
	From  string // auto | json | yaml

	// Conversion
	To          string // xyz | cfour | nwchem | gamess | terachem | record
	Units       string
	AtomFormat  *string // nil = format default
	GhostFormat *string // nil = format default; empty string drops ghosts
	Width       int
	Prec        int

	// Output
	Output string // file, '-' for stdout

	// Misc
	Verbose int
	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError and the standard
// usage banner.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: molecular geometry conversion

Reads a QCSchema molecule document and writes a program-specific
geometry block.

Version: %s

Usage of %s:
%s`, name, version.Version, name, fs.FlagUsages())
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVarP(&opt.Input, "input", "i", "", "schema file (JSON or YAML), '-' for stdin [*]")
	fs.StringVar(&opt.From, "from", FromAuto, "input encoding: auto | json | yaml [auto]")

	dtypes := strings.Join(append(molfmt.Dtypes(), ToRecord), " | ")
	fs.StringVarP(&opt.To, "to", "t", "xyz", "output dtype: "+dtypes+" [xyz]")
	fs.StringVarP(&opt.Units, "units", "u", "", "output length units (Angstrom, Bohr, ...) [Angstrom]")
	atomFormat := fs.String("atom-format", "", "atom-line template, fields {elea} {elez} {elem} {mass} {elbl}")
	ghostFormat := fs.String("ghost-format", "", "ghost-line template; empty string suppresses ghost atoms")
	fs.IntVar(&opt.Width, "width", 0, "coordinate field width [17]")
	fs.IntVar(&opt.Prec, "prec", 0, "coordinate decimal places [12]")

	fs.StringVarP(&opt.Output, "output", "o", "-", "output file, '-' for stdout [-]")

	fs.CountVarP(&opt.Verbose, "verbose", "v", "increase diagnostic logging (repeatable)")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVarP(&help, "help", "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if fs.Changed("atom-format") {
		opt.AtomFormat = atomFormat
	}
	if fs.Changed("ghost-format") {
		opt.GhostFormat = ghostFormat
	}

	// A bare positional is accepted as the input file.
	args := fs.Args()
	if opt.Input == "" && len(args) > 0 {
		opt.Input = args[0]
		args = args[1:]
	}

	// Validation
	if opt.Input == "" {
		return opt, errors.New("provide --input or a schema file argument")
	}
	if len(args) > 0 {
		return opt, fmt.Errorf("unexpected arguments: %v", args)
	}
	switch opt.From {
	case FromAuto, FromJSON, FromYAML:
	default:
		return opt, fmt.Errorf("--from must be auto, json, or yaml (got %q)", opt.From)
	}
	if opt.To != ToRecord {
		known := false
		for _, d := range molfmt.Dtypes() {
			if d == opt.To {
				known = true
				break
			}
		}
		if !known {
			return opt, fmt.Errorf("--to must be one of %s (got %q)", dtypes, opt.To)
		}
	}
	if opt.Width < 0 || opt.Prec < 0 {
		return opt, errors.New("--width and --prec must be >= 0")
	}
	return opt, nil
}
