/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package wordmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func notWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Normalize returns the canonical comparable form of text: lowercase, with
// accents folded away and everything that is not a letter or digit removed.
// Whitespace and hyphens vanish along with other punctuation, so "Air-Plane",
// "air plane" and "airplane" all normalize to "airplane".
//
// Normalize is total and idempotent. Input with no letters or digits
// normalizes to the empty string.
func Normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))

	// Combining marks are not letters, so dropping non-word runes after NFD
	// also strips accents. Recomposition happens last so that runes brought
	// together by the removal compose the same way on every pass. Chains are
	// stateful, so one is built per call.
	fold := transform.Chain(
		norm.NFD,
		runes.Remove(runes.Predicate(notWordRune)),
		runes.Map(unicode.ToLower),
		norm.NFC,
	)

	// None of these transformers report errors.
	out, _, _ := transform.String(fold, lowered)

	return out
}
