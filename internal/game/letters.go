package game

import (
	"math/bits"
	"strings"
	"unicode"
)

// Letters is a set of the 26 ASCII letters, case-folded to lowercase.
type Letters uint32

const (
	// Alphabet holds every letter a-z.
	Alphabet Letters = 1<<26 - 1

	// Vowels are the letters revealed by the final hint.
	Vowels = Letters(1<<('a'-'a') | 1<<('e'-'a') | 1<<('i'-'a') | 1<<('o'-'a') | 1<<('u'-'a'))
)

// Normalize folds r to lowercase and reports whether it is a letter a-z.
func Normalize(r rune) (rune, bool) {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return r, true
}

func bit(r rune) Letters {
	r, ok := Normalize(r)
	if !ok {
		return 0
	}
	return 1 << (r - 'a')
}

// LettersOf returns the set of letters appearing in s. Spaces and any other
// non-letters are skipped.
func LettersOf(s string) Letters {
	var l Letters
	for _, r := range s {
		l |= bit(r)
	}
	return l
}

// Has reports whether r (any case) is in the set.
func (l Letters) Has(r rune) bool {
	b := bit(r)
	return b != 0 && l&b != 0
}

// With returns the set plus r. Non-letters leave the set unchanged.
func (l Letters) With(r rune) Letters {
	return l | bit(r)
}

// Len returns the number of letters in the set.
func (l Letters) Len() int {
	return bits.OnesCount32(uint32(l & Alphabet))
}

// Runes returns the members in alphabetical order.
func (l Letters) Runes() []rune {
	out := make([]rune, 0, l.Len())
	for r := 'a'; r <= 'z'; r++ {
		if l.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

func (l Letters) String() string {
	var b strings.Builder
	for _, r := range l.Runes() {
		b.WriteRune(r)
	}
	return b.String()
}
