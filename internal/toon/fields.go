package toon

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

// Field decoders. Every decoder is total: no input can make one
// fail. Malformed values degrade to the type's empty value so one bad
// field never voids a whole section.

// decodeString trims surrounding whitespace. An empty string is a
// valid value, distinct from an absent field.
func decodeString(s string) string {
	return strings.TrimSpace(s)
}

// listSeparators covers the ASCII comma, the comma glyph Bangla text
// from the model tends to carry, and newlines inside a single field.
var listSeparators = []string{"،", "\n"}

// decodeList splits a delimited field into trimmed, non-empty items.
// All-whitespace input yields an empty list, never []string{""}.
func decodeList(s string) []string {
	for _, sep := range listSeparators {
		s = strings.ReplaceAll(s, sep, ",")
	}
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

// Bengali digits map onto ASCII before parsing; the model mixes both.
var bengaliDigits = strings.NewReplacer(
	"০", "0", "১", "1", "২", "2", "৩", "3", "৪", "4",
	"৫", "5", "৬", "6", "৭", "7", "৮", "8", "৯", "9",
)

// decodePosition strips every non-digit character and parses what
// remains. Anything unparsable decodes to 0 — the sentinel used
// uniformly for "position unknown", which sorts such entries to the
// front of the document.
func decodePosition(s string) int {
	var digits strings.Builder
	for _, r := range bengaliDigits.Replace(s) {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}

// decodeBool accepts "true" in any casing plus the Bangla affirmative
// the model answers with when it ignores the format instruction.
func decodeBool(s string) bool {
	s = strings.TrimSpace(s)
	return strings.EqualFold(s, "true") || s == "হ্যাঁ"
}

// graphemeCount counts user-perceived characters. Bangla conjuncts
// span several runes, so rune counting would over-count.
func graphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
