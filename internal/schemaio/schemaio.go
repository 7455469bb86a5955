// internal/schemaio/schemaio.go
package schemaio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"qcmol-core/qcschema"

	"qcmol/internal/convcli"
)

// Read loads a schema document from path ('-' = stdin, stdin defaults to
// JSON) and decodes it per encoding (auto sniffs by file extension).
func Read(path, encoding string, stdin io.Reader) (qcschema.Schema, error) {
	var s qcschema.Schema

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return s, err
	}

	if encoding == convcli.FromAuto {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			encoding = convcli.FromYAML
		default:
			encoding = convcli.FromJSON
		}
	}

	switch encoding {
	case convcli.FromYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("decode %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("decode %s: %w", path, err)
		}
	}
	return s, nil
}

// EncodeJSON writes v as indented JSON to w.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
