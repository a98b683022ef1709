/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package wordmatch

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyGroupID    = errors.New("variant group has no id")
	ErrConflictingWord = errors.New("word belongs to more than one variant group")
)

//go:embed variants.yaml
var variantsYAML []byte

// VariantGroup is a named set of spellings treated as the same answer.
type VariantGroup struct {
	ID    string   `yaml:"id" json:"id"`
	Words []string `yaml:"words" json:"words"`
}

type variantFile struct {
	Groups []VariantGroup `yaml:"groups"`
}

// VariantDictionary indexes variant groups by member word. It is never
// modified after NewVariantDictionary returns, so a single instance can be
// shared by any number of goroutines.
type VariantDictionary struct {
	groups []VariantGroup
	index  map[string]string
}

// NewVariantDictionary builds a dictionary from groups. Every member word is
// normalized first; words that normalize to nothing are skipped. Groups that
// share an id are merged. A word claimed by two different ids is an error.
func NewVariantDictionary(groups ...VariantGroup) (*VariantDictionary, error) {
	d := &VariantDictionary{
		index: make(map[string]string),
	}

	position := make(map[string]int)

	for _, g := range groups {
		if g.ID == "" {
			return nil, fmt.Errorf("%w (words %v)", ErrEmptyGroupID, g.Words)
		}

		i, ok := position[g.ID]
		if !ok {
			i = len(d.groups)
			position[g.ID] = i
			d.groups = append(d.groups, VariantGroup{ID: g.ID})
		}

		for _, w := range g.Words {
			word := Normalize(w)
			if word == "" {
				continue
			}

			if owner, taken := d.index[word]; taken {
				if owner == g.ID {
					continue
				}

				return nil, fmt.Errorf("%w: %q is in %q and %q", ErrConflictingWord, word, owner, g.ID)
			}

			d.index[word] = g.ID
			d.groups[i].Words = append(d.groups[i].Words, word)
		}
	}

	return d, nil
}

// LoadVariantGroups parses a YAML document of the form
//
//	groups:
//	  - id: colour
//	    words: [colour, color]
func LoadVariantGroups(r io.Reader) ([]VariantGroup, error) {
	var f variantFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("decoding variant groups: %w", err)
	}

	return f.Groups, nil
}

// DefaultGroups returns the curated groups built into the package.
func DefaultGroups() []VariantGroup {
	return DefaultVariants().Groups()
}

// DefaultVariants returns the dictionary built from the embedded variant
// list. It is constructed on first use and shared afterwards.
var DefaultVariants = sync.OnceValue(func() *VariantDictionary {
	groups, err := LoadVariantGroups(bytes.NewReader(variantsYAML))
	if err != nil {
		panic(fmt.Sprintf("wordmatch: embedded variants: %v", err))
	}

	d, err := NewVariantDictionary(groups...)
	if err != nil {
		panic(fmt.Sprintf("wordmatch: embedded variants: %v", err))
	}

	return d
})

// SameGroup reports whether a and b are members of the same variant group.
// Both arguments must already be normalized.
func (d *VariantDictionary) SameGroup(a, b string) bool {
	if d == nil {
		return false
	}

	ga, ok := d.index[a]
	if !ok {
		return false
	}

	gb, ok := d.index[b]

	return ok && ga == gb
}

// Group returns the id of the group containing word, if any.
func (d *VariantDictionary) Group(word string) (string, bool) {
	if d == nil {
		return "", false
	}

	id, ok := d.index[word]

	return id, ok
}

// Groups returns a copy of the dictionary's groups with normalized members.
func (d *VariantDictionary) Groups() []VariantGroup {
	if d == nil {
		return nil
	}

	out := make([]VariantGroup, len(d.groups))
	for i, g := range d.groups {
		out[i] = VariantGroup{ID: g.ID, Words: slices.Clone(g.Words)}
	}

	return out
}

// Len returns the number of distinct member words.
func (d *VariantDictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.index)
}
