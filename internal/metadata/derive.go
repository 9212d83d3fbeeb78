package metadata

import "strings"

// Token handling for context derivation
const (
	// TokenDelimiter splits the filename stem into candidate tokens
	TokenDelimiter = "_"

	// GroupMarkerToken is a camera export artifact dropped from hints
	GroupMarkerToken = "g"
)

// DeriveContext turns a filename into a short natural-language hint for the
// keywords API. The stem before the first dot is split on underscores;
// tokens that are purely digits (frame counters) or the literal group
// marker are dropped, the rest joined with single spaces. Token order is
// preserved. An empty hint is valid.
func DeriveContext(filename string) string {
	stem := filename
	if idx := strings.Index(stem, "."); idx >= 0 {
		stem = stem[:idx]
	}

	tokens := strings.Split(stem, TokenDelimiter)
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if token == GroupMarkerToken || isAllDigits(token) {
			continue
		}
		kept = append(kept, token)
	}

	return strings.Join(kept, " ")
}

// isAllDigits reports whether s is non-empty and consists only of ASCII
// digits.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
