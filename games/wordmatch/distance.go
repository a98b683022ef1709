/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package wordmatch

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// MaxFuzzyLength is the longest word, in runes, that the edit distance and
// phonetic stages compare. Both cost time quadratic in word length.
const MaxFuzzyLength = 64

// charsPerEdit is how many characters of the longer word buy one tolerated edit.
const charsPerEdit = 4

// EditThreshold is the default policy mapping a word length (in runes) to the
// largest edit distance still accepted as a typo. It is monotonically
// non-decreasing and never below 1 for a non-empty word.
func EditThreshold(length int) int {
	if length <= 0 {
		return 0
	}

	return max(1, length/charsPerEdit)
}

// EditDistance returns the optimal string alignment distance between a and b:
// unit-cost rune insertions, deletions, substitutions and adjacent
// transpositions.
func EditDistance(a, b string) int {
	return edlib.OSADamerauLevenshteinDistance(a, b)
}

// WithinEditThreshold reports whether a and b are within the default
// EditThreshold of the longer word's length. Words longer than MaxFuzzyLength
// are never within it.
func WithinEditThreshold(a, b string) bool {
	return withinThreshold(a, b, EditThreshold)
}

func withinThreshold(a, b string, threshold func(int) int) bool {
	if a == "" || b == "" {
		return false
	}

	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la > MaxFuzzyLength || lb > MaxFuzzyLength {
		return false
	}

	limit := threshold(max(la, lb))
	if limit < 1 {
		return false
	}

	// The length gap alone is a lower bound on the distance.
	if diff := la - lb; diff > limit || -diff > limit {
		return false
	}

	return EditDistance(a, b) <= limit
}
