package molfmt

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcmol-core/molrec"
	"qcmol-core/physconst"
)

func strp(s string) *string { return &s }

// water returns a plain Angstrom-unit record.
func water(t *testing.T) *molrec.Molrec {
	t.Helper()
	m, err := molrec.FromArrays(molrec.Arrays{
		Elem: []string{"O", "H", "H"},
		Geom: []float64{
			0, 0, 0,
			0, 0.757, 0.587,
			0, -0.757, 0.587,
		},
	})
	require.NoError(t, err)
	return m
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestToStringXYZDefaults(t *testing.T) {
	out, err := ToString(water(t), "xyz", Options{Width: 10, Prec: 4})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "\n"))

	got := lines(out)
	require.Len(t, got, 5)
	assert.Equal(t, "3", got[0]) // Angstrom label omitted
	assert.Equal(t, "H2O", got[1])
	assert.Equal(t, "O               0.0000      0.0000      0.0000", got[2])
	assert.Equal(t, "H               0.0000      0.7570      0.5870", got[3])
}

func TestToStringXYZBohr(t *testing.T) {
	m := water(t)
	out, err := ToString(m, "xyz", Options{Units: "Bohr", Width: 12, Prec: 6})
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "3 au", got[0])

	// 0.757 Angstrom in Bohr, third field of the first H line
	wantY := 0.757 / physconst.Bohr2Angstroms
	fields := strings.Fields(got[3])
	y, err := strconv.ParseFloat(fields[2], 64)
	require.NoError(t, err)
	assert.InDelta(t, wantY, y, 1e-6)

	// source record untouched
	assert.Equal(t, 0.757, m.Geom[4])
}

func TestToStringXYZStoredConversionFactorWins(t *testing.T) {
	m := water(t)
	iuta := 2.0
	m.InputUnitsToAu = &iuta
	out, err := ToString(m, "xyz", Options{Units: "Bohr", Width: 10, Prec: 4})
	require.NoError(t, err)
	fields := strings.Fields(lines(out)[3])
	y, err := strconv.ParseFloat(fields[2], 64)
	require.NoError(t, err)
	assert.InDelta(t, 2*0.757, y, 1e-12)
}

func TestToStringXYZGhosts(t *testing.T) {
	m := water(t)
	m.Real = []bool{true, false, true}

	out, err := ToString(m, "xyz", Options{Width: 10, Prec: 4})
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "3", got[0])
	assert.True(t, strings.HasPrefix(got[3], "@H"))

	// empty ghost template drops the atom and the count follows
	out, err = ToString(m, "xyz", Options{Width: 10, Prec: 4, GhostFormat: strp("")})
	require.NoError(t, err)
	got = lines(out)
	assert.Equal(t, "2", got[0])
	require.Len(t, got, 4)
	for _, l := range got[2:] {
		assert.False(t, strings.HasPrefix(l, "@"))
	}
}

func TestToStringXYZCustomAtomFormat(t *testing.T) {
	out, err := ToString(water(t), "xyz", Options{Width: 10, Prec: 4, AtomFormat: strp("{elez}@{mass}")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(lines(out)[2], "8@15.999"))
}

func TestToStringXYZUnmappedUnitLabel(t *testing.T) {
	out, err := ToString(water(t), "xyz", Options{Units: "nm", Width: 10, Prec: 6})
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "3 nm", got[0])
	// 0.757 Angstrom = 0.0757 nm
	fields := strings.Fields(got[3])
	y, err := strconv.ParseFloat(fields[2], 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.0757, y, 1e-9)
}

func TestToStringCfour(t *testing.T) {
	m := water(t)
	m.Real = []bool{true, true, false}
	// template overrides are ignored for cfour
	out, err := ToString(m, "cfour", Options{Width: 10, Prec: 4, AtomFormat: strp("{elez}"), GhostFormat: strp("")})
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 4)
	assert.Equal(t, "auto-generated by qcmol from molecule H2O", got[0])
	assert.True(t, strings.HasPrefix(got[1], "O"))
	assert.True(t, strings.HasPrefix(got[3], "GH"))
}

func TestToStringNwchem(t *testing.T) {
	out, err := ToString(water(t), "nwchem", Options{Width: 10, Prec: 4})
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "geometry units angstroms", got[0])
	assert.Equal(t, "end", got[len(got)-1])
	for _, l := range got {
		assert.NotEmpty(t, l)
	}
}

func TestToStringNwchemSymmetryLine(t *testing.T) {
	m := water(t)
	m.FixSymmetry = "c2v"
	out, err := ToString(m, "nwchem", Options{Units: "Bohr", Width: 10, Prec: 4})
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "geometry units bohr", got[0])
	assert.Equal(t, "symmetry c2v", got[len(got)-2])
	assert.Equal(t, "end", got[len(got)-1])
}

func TestToStringNwchemUnexpressableUnits(t *testing.T) {
	_, err := ToString(water(t), "nwchem", Options{Units: "um"})
	require.Error(t, err)
	assert.True(t, molrec.IsValidation(err))
}

func TestToStringGamess(t *testing.T) {
	m := water(t)
	m.Real = []bool{true, true, false}
	m.Elbl = []string{"1", "", ""}
	out, err := ToString(m, "gamess", Options{Width: 10, Prec: 4})
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 7)
	assert.Equal(t, " $data", got[0])
	assert.Equal(t, " auto-generated by qcmol from molecule H2O", got[1])
	assert.Equal(t, " C1", got[2])
	assert.True(t, strings.HasPrefix(got[3], " O1 8"))
	assert.True(t, strings.HasPrefix(got[5], " BQ -1"))
	assert.Equal(t, " $end", got[6])
}

func TestToStringTerachem(t *testing.T) {
	m := water(t)
	m.Real = []bool{true, false, true}
	// terachem templates are caller-independent
	out, err := ToString(m, "terachem", Options{Width: 10, Prec: 4, AtomFormat: strp("{elez}")})
	require.NoError(t, err)
	got := lines(out)
	assert.Equal(t, "3", got[0])
	assert.Equal(t, "H2O", got[1])
	assert.True(t, strings.HasPrefix(got[3], "XH"))

	_, err = ToString(m, "terachem", Options{Units: "nm"})
	require.Error(t, err)
	assert.True(t, molrec.IsValidation(err))
}

func TestToStringStoredNameWins(t *testing.T) {
	m := water(t)
	m.Name = "solvent"
	out, err := ToString(m, "xyz", Options{Width: 10, Prec: 4})
	require.NoError(t, err)
	assert.Equal(t, "solvent", lines(out)[1])
}

func TestToStringUnrecognizedDtype(t *testing.T) {
	_, err := ToString(water(t), "pdb", Options{})
	require.Error(t, err)
	assert.True(t, molrec.IsFormat(err))
	assert.False(t, molrec.IsValidation(err))
	assert.Contains(t, err.Error(), "pdb")
}

func TestDtypes(t *testing.T) {
	assert.Equal(t, []string{"cfour", "gamess", "nwchem", "terachem", "xyz"}, Dtypes())
}

// Round trip: the xyz block read back with a bare-bones reader reconstructs
// symbols, ghost flags, and coordinates.
func TestXYZRoundTrip(t *testing.T) {
	m := water(t)
	m.Real = []bool{true, false, true}
	out, err := ToString(m, "xyz", Options{})
	require.NoError(t, err)

	got := lines(out)
	n, err := strconv.Atoi(strings.Fields(got[0])[0])
	require.NoError(t, err)
	require.Equal(t, m.Nat(), n)

	for i, l := range got[2:] {
		fields := strings.Fields(l)
		require.Len(t, fields, 4)
		sym := fields[0]
		ghost := strings.HasPrefix(sym, "@")
		sym = strings.TrimPrefix(sym, "@")
		assert.Equal(t, m.Elem[i], sym)
		assert.Equal(t, !m.Real[i], ghost)
		for k := 0; k < 3; k++ {
			x, err := strconv.ParseFloat(fields[k+1], 64)
			require.NoError(t, err)
			assert.InDelta(t, m.Geom[3*i+k], x, 1e-9)
		}
	}
}
