package game

import (
	"fmt"
	"strings"
)

const (
	// MaxIncorrect is the miss count that loses the round.
	MaxIncorrect = 6

	// MaxHintStage is the number of hints available per round.
	MaxHintStage = 3

	// hintGuardIncorrect blocks further hints once this many misses are on
	// the board and a hint has already been taken, so a hint is never the
	// move that loses the round after the first one.
	hintGuardIncorrect = MaxIncorrect - 1

	// DefaultCategory is the category named by the first hint.
	DefaultCategory = "Baseball"
)

// Status is the derived outcome of a round.
type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Finished reports whether the status is terminal.
func (s Status) Finished() bool {
	return s == Won || s == Lost
}

// State is one round of Hangman. The zero value is an empty round that no
// guess can win; use New or a Reset action to start a real one.
type State struct {
	word      string
	category  string
	needed    Letters
	guessed   Letters
	disabled  Letters
	incorrect int
	hintStage int
}

// New starts a round for word. category is the text named by the first hint;
// an empty category uses DefaultCategory.
func New(word, category string) State {
	if category == "" {
		category = DefaultCategory
	}
	return State{
		word:     word,
		category: category,
		needed:   LettersOf(word),
	}
}

// Word returns the round's word exactly as drawn.
func (s State) Word() string { return s.word }

// Category returns the category named by the first hint.
func (s State) Category() string { return s.category }

// Guessed returns the letters guessed so far, including vowels added by the
// final hint.
func (s State) Guessed() Letters { return s.guessed }

// Disabled returns the letters removed from play by the second hint.
func (s State) Disabled() Letters { return s.disabled }

// Incorrect returns the current miss count.
func (s State) Incorrect() int { return s.incorrect }

// HintStage returns how many hints have been taken this round.
func (s State) HintStage() int { return s.hintStage }

// Status derives the round outcome. A word that is fully revealed is Won even
// if the same action also reached MaxIncorrect: the vowel hint completes the
// word before its penalty is charged.
func (s State) Status() Status {
	if s.needed != 0 && s.needed&^s.guessed == 0 {
		return Won
	}
	if s.incorrect >= MaxIncorrect {
		return Lost
	}
	return InProgress
}

// IsRevealed reports whether the renderer should show letter r. Every letter
// is revealed once the round is over.
func (s State) IsRevealed(r rune) bool {
	return s.guessed.Has(r) || s.Status().Finished()
}

// HintAvailable reports whether a Hint action would change the round.
func (s State) HintAvailable() bool {
	switch {
	case s.Status() != InProgress:
		return false
	case s.hintStage >= MaxHintStage:
		return false
	case s.incorrect >= hintGuardIncorrect && s.hintStage >= 1:
		return false
	}
	return true
}

// HintText is the category sentence shown after the first hint, or empty.
func (s State) HintText() string {
	if s.hintStage < 1 {
		return ""
	}
	return "This word belongs to category: " + s.category
}

// Masked renders the word with '_' for unrevealed letters. Spaces are always
// shown.
func (s State) Masked() string {
	var b strings.Builder
	for _, r := range s.word {
		switch {
		case r == ' ':
			b.WriteRune(' ')
		case s.IsRevealed(r):
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Missing returns the letters of the word not yet guessed.
func (s State) Missing() Letters {
	return s.needed &^ s.guessed
}
