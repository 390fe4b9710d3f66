// Package words supplies the word drawn at the start of every round.
package words

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/hangman/internal/game"
)

// ErrEmptyList is returned when a word list has no entries.
var ErrEmptyList = errors.New("word list is empty")

// DefaultWords is the built-in list used when no word file is configured.
var DefaultWords = []string{"Lucas", "Chen", "Is", "The", "Best", "At", "Stuff"}

// Source draws the word for a new round.
type Source interface {
	Next() string
	// Category is the text named by the first hint for words from this
	// source.
	Category() string
}

// Rand is the randomness a List draws with.
type Rand interface {
	IntN(n int) int
}

// List draws uniformly at random from a fixed set of words.
type List struct {
	words    []string
	category string
	rng      Rand
}

// NewList validates words and returns a List drawing from them with rng.
func NewList(category string, words []string, rng Rand) (*List, error) {
	if err := Validate(words); err != nil {
		return nil, err
	}
	if category == "" {
		category = game.DefaultCategory
	}
	return &List{
		words:    append([]string(nil), words...),
		category: category,
		rng:      rng,
	}, nil
}

// Default returns the built-in list.
func Default(rng Rand) *List {
	l, err := NewList(game.DefaultCategory, DefaultWords, rng)
	if err != nil {
		panic(err)
	}
	return l
}

// Next returns a uniformly drawn word.
func (l *List) Next() string {
	return l.words[l.rng.IntN(len(l.words))]
}

// Category returns the hint category for the list.
func (l *List) Category() string {
	return l.category
}

// Words returns a copy of the list.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// Validate checks every entry can be played: letters and single spaces only,
// with at least one letter.
func Validate(words []string) error {
	if len(words) == 0 {
		return ErrEmptyList
	}
	for i, w := range words {
		if err := validateWord(w); err != nil {
			return fmt.Errorf("word %d (%q): %w", i+1, w, err)
		}
	}
	return nil
}

func validateWord(w string) error {
	if strings.TrimSpace(w) != w {
		return errors.New("leading or trailing space")
	}
	if game.LettersOf(w) == 0 {
		return errors.New("no letters")
	}
	for _, r := range w {
		if r == ' ' {
			continue
		}
		if _, ok := game.Normalize(r); !ok {
			return fmt.Errorf("unsupported character %q", r)
		}
	}
	return nil
}
