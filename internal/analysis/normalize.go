package analysis

import "strings"

// Normalize produces the matching key used for deduplication and for
// accept/dismiss lookups: case-folded, inner whitespace collapsed to
// single spaces, outer whitespace trimmed. Two suggestions whose
// primary texts normalize equal are the same suggestion.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
