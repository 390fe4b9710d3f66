package bot

import (
	"strings"

	"github.com/lox/hangman/internal/game"
)

// DictionaryBot knows the word list. It keeps the words that still fit the
// masked pattern and guesses the selectable letter found in most of them,
// breaking ties by English frequency. With no candidate left it falls back to
// frequency order.
type DictionaryBot struct {
	words []string
}

// NewDictionaryBot creates a DictionaryBot over words.
func NewDictionaryBot(words []string) *DictionaryBot {
	lower := make([]string, len(words))
	for i, w := range words {
		lower[i] = strings.ToLower(w)
	}
	return &DictionaryBot{words: lower}
}

func (d *DictionaryBot) Name() string { return Dictionary }

func (d *DictionaryBot) Pick(v game.View) (rune, bool) {
	selectable := v.Selectable()
	if selectable == 0 {
		return 0, false
	}

	var counts [26]int
	for _, w := range d.Candidates(v) {
		for _, r := range game.LettersOf(w).Runes() {
			if selectable.Has(r) {
				counts[r-'a']++
			}
		}
	}

	best, bestCount := rune(0), 0
	for _, r := range EnglishOrder {
		if c := counts[r-'a']; c > bestCount {
			best, bestCount = r, c
		}
	}
	if bestCount == 0 {
		return firstSelectable(selectable)
	}
	return best, true
}

// Candidates returns the words consistent with v.
func (d *DictionaryBot) Candidates(v game.View) []string {
	masked := []rune(strings.ToLower(v.Masked))
	var out []string
	for _, w := range d.words {
		if fits(w, masked, v) {
			out = append(out, w)
		}
	}
	return out
}

// fits reports whether word could be behind masked. Revealed positions must
// match exactly; hidden ones must hold a letter the view says could still be
// in the word.
func fits(word string, masked []rune, v game.View) bool {
	runes := []rune(word)
	if len(runes) != len(masked) {
		return false
	}
	for i, r := range runes {
		m := masked[i]
		switch {
		case m == '_':
			if !v.Letter(r).Selectable() {
				return false
			}
		case m != r:
			return false
		}
	}
	return true
}
