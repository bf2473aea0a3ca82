package emit

import (
	"strconv"
	"strings"
)

// FormatNumberBase renders value the way every target agrees on before
// its own suffix rule applies (spec.md §4.4): a literal that stayed
// integral (array indices, loop bounds at the times-idiom's synthetic
// 0, …) renders with no fractional part; one typed float gets a
// trailing ".0" when it would otherwise print as a bare integer, and
// otherwise keeps its existing point. The C target appends "f" on top
// of the float form; the others use it as-is.
func FormatNumberBase(value float64, isFloat bool) string {
	s := strconv.FormatFloat(value, 'f', -1, 64)
	if isFloat && !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
