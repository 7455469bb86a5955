// internal/app/app_test.go
package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qcmol/pkg/api"
)

const heNeDoc = `{
  "schema_name": "qc_schema_input",
  "schema_version": 1,
  "molecule": {
    "symbols": ["He", "Ne"],
    "geometry": [0, 0, 0, 0, 0, 2.0],
    "fragments": [[0], [1]]
  }
}`

func run(t *testing.T, stdin string, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := RunIO(strings.NewReader(stdin), argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func writeDoc(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mol.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunSchemaToXYZ(t *testing.T) {
	code, out, errOut := run(t, "", "-i", writeDoc(t, heNeDoc), "--to", "xyz", "--prec", "4", "--width", "10")
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "2", lines[0]) // default Angstrom target, label omitted
	assert.Equal(t, "HeNe", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "He"))
}

func TestRunReadsStdin(t *testing.T) {
	code, out, errOut := run(t, heNeDoc, "-i", "-", "--to", "cfour")
	require.Equal(t, 0, code, errOut)
	assert.True(t, strings.HasPrefix(out, "auto-generated by qcmol from molecule HeNe"))
}

func TestRunRecordDump(t *testing.T) {
	code, out, errOut := run(t, "", "-t", "record", writeDoc(t, heNeDoc))
	require.Equal(t, 0, code, errOut)

	var rec api.MolrecV1
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, []string{"He", "Ne"}, rec.Elem)
	assert.Equal(t, []int{1}, rec.FragmentSeparators)
	assert.Equal(t, "Bohr", rec.Units)
}

func TestRunWritesOutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.xyz")
	code, out, errOut := run(t, "", "-i", writeDoc(t, heNeDoc), "-o", dest)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, out)

	body, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(body), "\n"))
}

func TestRunUsageErrors(t *testing.T) {
	code, _, errOut := run(t, "", "--to", "pdb", "m.json")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "--to")
}

func TestRunValidationErrorFromSchema(t *testing.T) {
	doc := strings.Replace(heNeDoc, "qc_schema_input", "foo", 1)
	code, _, errOut := run(t, "", "-i", writeDoc(t, doc))
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "foo")
}

func TestRunHelpAndVersion(t *testing.T) {
	code, out, _ := run(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage of qcmol")

	code, out, _ = run(t, "", "--version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "qcmol version")

	code, out, _ = run(t, "")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Usage of qcmol")
}
