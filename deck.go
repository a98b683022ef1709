/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"bufio"
	"bytes"
	"crypto/rand"
	_ "embed"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/Seednode/wordguess/games/wordmatch"
)

//go:embed cards.txt
var defaultCards []byte

// Deck is the read-only list of secret words a clue giver can draw from.
type Deck struct {
	words []string
}

// parseDeck reads one card per line. Blank lines, # comments and cards that
// normalize to a word already in the deck are skipped.
func parseDeck(r io.Reader) (*Deck, error) {
	d := &Deck{}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key := wordmatch.Normalize(line)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		d.words = append(d.words, line)
	}

	return d, scanner.Err()
}

func embeddedDeck() *Deck {
	d, err := parseDeck(bytes.NewReader(defaultCards))
	if err != nil {
		panic("embedded cards: " + err.Error())
	}
	return d
}

// loadDeck reads --cards, falling back to the embedded deck when the file
// is missing, unreadable or empty.
func loadDeck(cfg *Config) *Deck {
	if cfg.cards == "" {
		return embeddedDeck()
	}

	f, err := os.Open(cfg.cards)
	if err != nil {
		logf(cfg, "ERROR: Using built-in cards: %v", err)
		return embeddedDeck()
	}
	defer f.Close()

	d, err := parseDeck(f)
	switch {
	case err != nil:
		logf(cfg, "ERROR: Using built-in cards: %s: %v", cfg.cards, err)
		return embeddedDeck()
	case d.Len() == 0:
		logf(cfg, "ERROR: Using built-in cards: %s has no cards", cfg.cards)
		return embeddedDeck()
	}

	logf(cfg, "START: Loaded %d cards from %s", d.Len(), cfg.cards)

	return d
}

func (d *Deck) Len() int {
	return len(d.words)
}

// Draw picks a random card whose normalized form is not in used.
func (d *Deck) Draw(used map[string]bool) (string, bool) {
	candidates := make([]string, 0, len(d.words))
	for _, w := range d.words {
		if !used[wordmatch.Normalize(w)] {
			candidates = append(candidates, w)
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(candidates))))
	if err != nil {
		return candidates[0], true
	}

	return candidates[n.Int64()], true
}
