package classnames

import "strings"

// Split breaks s into class tokens on runs of whitespace.
// Leading and trailing whitespace never produces empty tokens.
func Split(s string) []string {
	return strings.Fields(s)
}

// Join normalizes tokens into a single class attribute value.
// Every token is split on whitespace, empty tokens are dropped and
// the rest are joined by a single space. Duplicates are kept.
func Join(tokens ...string) string {
	var b strings.Builder
	for _, t := range tokens {
		for _, part := range strings.Fields(t) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(part)
		}
	}
	return b.String()
}
