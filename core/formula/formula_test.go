package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name string
		elem []string
		want string
	}{
		{"mixed counts", []string{"C", "Ca", "O", "O", "Ag"}, "AgCCaO2"},
		{"water", []string{"O", "H", "H"}, "H2O"},
		{"single atom", []string{"Ne"}, "Ne"},
		{"empty", nil, ""},
		{"homonuclear", []string{"N", "N"}, "N2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Generate(tc.elem))
		})
	}
}
