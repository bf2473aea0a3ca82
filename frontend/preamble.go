package frontend

import (
	"regexp"
	"strings"
)

var preambleRE = regexp.MustCompile(`^\s*\|\s*([A-Za-z_][A-Za-z0-9_]*(?:\s*,\s*[A-Za-z_][A-Za-z0-9_]*)*)?\s*\|`)

// ExtractPreamble pulls a leading `|a, b, c|` parameter list off an
// inline code literal's source, as spec.md §4.2 describes for
// parameterized inline-code literals: it runs before the grammar-level
// parse, not as part of it, because the preamble is a property of how
// the literal was embedded rather than of the surface grammar itself.
//
// It returns the declared parameter names (nil if there was no
// preamble) and the remaining source with the preamble stripped.
func ExtractPreamble(source string) (params []string, rest string) {
	loc := preambleRE.FindStringSubmatchIndex(source)
	if loc == nil {
		return nil, source
	}

	rest = source[loc[1]:]

	if loc[2] == -1 {
		// Empty preamble, `||`.
		return []string{}, rest
	}

	names := strings.Split(source[loc[2]:loc[3]], ",")
	params = make([]string, 0, len(names))
	for _, n := range names {
		params = append(params, strings.TrimSpace(n))
	}
	return params, rest
}
