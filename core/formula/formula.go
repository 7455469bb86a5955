// Package formula derives a canonical chemical-formula string from a
// per-atom element list. Used as the default display name when a record
// carries none.
package formula

import (
	"sort"
	"strconv"
	"strings"
)

// Generate counts each distinct symbol in elem and concatenates the symbols
// in lexicographic order, appending the count only when it exceeds one:
//
//	Generate([]string{"C", "Ca", "O", "O", "Ag"}) == "AgCCaO2"
func Generate(elem []string) string {
	counted := make(map[string]int, len(elem))
	for _, el := range elem {
		counted[el]++
	}
	keys := make([]string, 0, len(counted))
	for el := range counted {
		keys = append(keys, el)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, el := range keys {
		b.WriteString(el)
		if n := counted[el]; n > 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}
