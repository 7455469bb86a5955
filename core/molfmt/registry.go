// core/molfmt/registry.go
package molfmt

import "sort"

// renderers maps dtype -> renderer. Each dtype file registers itself in an
// init block; dispatch failures surface as FormatError from ToString.
var renderers = map[string]renderFunc{}

type renderFunc func(rc *renderContext) ([]string, error)

func register(dtype string, fn renderFunc) { renderers[dtype] = fn }

// Dtypes lists the registered format tags, for CLI help and validation.
func Dtypes() []string {
	out := make([]string, 0, len(renderers))
	for k := range renderers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
