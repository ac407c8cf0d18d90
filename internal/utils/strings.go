package utils

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts a string from CamelCase to snake_case.
//
// Runs of upper-case letters are kept together, so "AllToAll" becomes "all_to_all" and
// "FFT" becomes "fft".
func ToSnakeCase(s string) string {
	var res strings.Builder
	res.Grow(len(s) + 5)
	for i, r := range s {
		if !unicode.IsUpper(r) {
			res.WriteRune(r)
			continue
		}
		if i > 0 {
			prev := rune(s[i-1])
			var next rune
			if i < len(s)-1 {
				next = rune(s[i+1])
			}
			lowerBefore := !unicode.IsUpper(prev) && prev != '_'
			endOfAcronym := unicode.IsUpper(prev) && next != 0 && !unicode.IsUpper(next) && next != '_'
			if lowerBefore || endOfAcronym {
				res.WriteRune('_')
			}
		}
		res.WriteRune(unicode.ToLower(r))
	}
	return res.String()
}

// IsIdentifier returns whether name is a valid StableHLO identifier: non-empty, only letters, digits and
// underscores, and not starting with a digit.
func IsIdentifier(name string) bool {
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return false
	}
	for _, r := range name {
		if !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9') && r != '_' {
			return false
		}
	}
	return true
}
