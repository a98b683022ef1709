/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package wordmatch decides whether a freeform guess counts as a target word.
//
// Both strings are normalized, then compared by a fixed sequence of stages,
// stopping at the first that reports a match:
//
//   - exact: identical normalized forms
//   - variant: members of the same curated variant group (colour/color)
//   - edit distance: a typo within a length-scaled threshold (airplan)
//   - phonetic: identical Double Metaphone keys on similarly spelled words (fone/phone)
//
// An Evaluator holds no mutable state and is safe for concurrent use.
package wordmatch

import (
	"fmt"
	"sync"
)

// Stage identifies which check produced a decision.
type Stage int

const (
	StageNone Stage = iota
	StageExact
	StageVariant
	StageEditDistance
	StagePhonetic
)

var stageNames = [...]string{
	StageNone:         "none",
	StageExact:        "exact",
	StageVariant:      "variant",
	StageEditDistance: "edit_distance",
	StagePhonetic:     "phonetic",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("Stage(%d)", int(s))
	}

	return stageNames[s]
}

func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Decision is the outcome of one evaluation. Guess and Target hold the
// normalized forms that were compared.
type Decision struct {
	Match  bool   `json:"match"`
	Stage  Stage  `json:"stage"`
	Guess  string `json:"guess"`
	Target string `json:"target"`
}

// Evaluator runs the matching pipeline against a fixed variant dictionary.
type Evaluator struct {
	variants  *VariantDictionary
	threshold func(int) int
	phonetic  float64
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithThreshold replaces EditThreshold as the edit distance policy.
func WithThreshold(threshold func(length int) int) Option {
	return func(e *Evaluator) {
		if threshold != nil {
			e.threshold = threshold
		}
	}
}

// WithPhoneticThreshold sets the Jaro-Winkler similarity the phonetic stage
// requires on top of a shared key. Values outside [0, 1] are ignored.
func WithPhoneticThreshold(threshold float64) Option {
	return func(e *Evaluator) {
		if threshold >= 0 && threshold <= 1 {
			e.phonetic = threshold
		}
	}
}

// New returns an Evaluator backed by variants. A nil dictionary disables the
// variant stage.
func New(variants *VariantDictionary, opts ...Option) *Evaluator {
	e := &Evaluator{
		variants:  variants,
		threshold: EditThreshold,
		phonetic:  DefaultPhoneticThreshold,
	}

	for _, o := range opts {
		o(e)
	}

	return e
}

// Evaluate compares guess against target. An empty normalized guess or
// target never matches, and words longer than MaxFuzzyLength runes only
// match exactly or through the variant dictionary.
func (e *Evaluator) Evaluate(guess, target string) Decision {
	d := Decision{
		Guess:  Normalize(guess),
		Target: Normalize(target),
	}

	if d.Guess == "" || d.Target == "" {
		return d
	}

	switch {
	case d.Guess == d.Target:
		d.Stage = StageExact
	case e.variants.SameGroup(d.Guess, d.Target):
		d.Stage = StageVariant
	case withinThreshold(d.Guess, d.Target, e.threshold):
		d.Stage = StageEditDistance
	case SoundsAlike(d.Guess, d.Target, e.phonetic):
		d.Stage = StagePhonetic
	}

	d.Match = d.Stage != StageNone

	return d
}

// IsMatchingGuess reports whether guess counts as target.
func (e *Evaluator) IsMatchingGuess(guess, target string) bool {
	return e.Evaluate(guess, target).Match
}

var defaultEvaluator = sync.OnceValue(func() *Evaluator {
	return New(DefaultVariants())
})

// Default returns the shared Evaluator over DefaultVariants.
func Default() *Evaluator {
	return defaultEvaluator()
}

// IsMatchingGuess reports whether guess counts as target using the default
// evaluator.
func IsMatchingGuess(guess, target string) bool {
	return defaultEvaluator().IsMatchingGuess(guess, target)
}
