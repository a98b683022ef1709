/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package wordmatch

import (
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// DefaultPhoneticThreshold is the Jaro-Winkler similarity two words with the
// same phonetic key must also reach to count as sounding alike.
const DefaultPhoneticThreshold = 0.75

// PhoneticKey returns the primary Double Metaphone code for a normalized word.
// Words without any encodable sounds (digits, for instance) have an empty key.
func PhoneticKey(word string) string {
	if word == "" {
		return ""
	}

	primary, _ := matchr.DoubleMetaphone(word)

	return primary
}

// SamePhoneticKey reports whether a and b reduce to the same non-empty
// phonetic key.
func SamePhoneticKey(a, b string) bool {
	ka := PhoneticKey(a)
	if ka == "" {
		return false
	}

	return ka == PhoneticKey(b)
}

// Similarity returns the Jaro-Winkler similarity of a and b, from 0 to 1.
func Similarity(a, b string) float64 {
	return matchr.JaroWinkler(a, b, false)
}

// SoundsAlike reports whether a and b share a phonetic key and are spelled
// similarly enough, by Jaro-Winkler, to reach threshold. Keys drop vowels and
// merge voiced and unvoiced stops, so "door" and "tree" share one. Words
// longer than MaxFuzzyLength never sound alike.
func SoundsAlike(a, b string, threshold float64) bool {
	if utf8.RuneCountInString(a) > MaxFuzzyLength || utf8.RuneCountInString(b) > MaxFuzzyLength {
		return false
	}

	return SamePhoneticKey(a, b) && Similarity(a, b) >= threshold
}
