package game

import (
	rand "math/rand/v2"
)

// Rand is the randomness the reducer needs. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Action is a player input applied by Reduce.
type Action interface {
	isAction()
}

// Guess selects a letter. Any case is accepted.
type Guess struct {
	Letter rune
}

// Hint asks for the next hint stage.
type Hint struct{}

// Reset replaces the round with a fresh one for Word.
type Reset struct {
	Word     string
	Category string
}

func (Guess) isAction() {}
func (Hint) isAction()  {}
func (Reset) isAction() {}

// Outcome describes the effect of one action.
type Outcome int

const (
	// OutcomeIgnored means the action was a no-op: the round is over, the
	// letter was already guessed, disabled or not a letter.
	OutcomeIgnored Outcome = iota
	OutcomeHit
	OutcomeMiss
	OutcomeHintCategory
	OutcomeHintEliminate
	OutcomeHintVowels
	// OutcomeHintUnavailable means a hint was requested but none may be given.
	OutcomeHintUnavailable
	OutcomeNewRound
)

func (o Outcome) String() string {
	return [...]string{
		"ignored",
		"hit",
		"miss",
		"hint_category",
		"hint_eliminate",
		"hint_vowels",
		"hint_unavailable",
		"new_round",
	}[o]
}

// IsHint reports whether the outcome is one of the three hint stages.
func (o Outcome) IsHint() bool {
	return o == OutcomeHintCategory || o == OutcomeHintEliminate || o == OutcomeHintVowels
}

// Reduce applies a to s and returns the next state. s is never modified. rng
// is only consulted by the second hint; nil falls back to the global source.
func Reduce(s State, a Action, rng Rand) (State, Outcome) {
	switch a := a.(type) {
	case Guess:
		return guess(s, a.Letter)
	case Hint:
		if rng == nil {
			rng = globalRand{}
		}
		return hint(s, rng)
	case Reset:
		return New(a.Word, a.Category), OutcomeNewRound
	default:
		return s, OutcomeIgnored
	}
}

func guess(s State, letter rune) (State, Outcome) {
	r, ok := Normalize(letter)
	if !ok || s.Status() != InProgress || s.guessed.Has(r) || s.disabled.Has(r) {
		return s, OutcomeIgnored
	}

	s.guessed = s.guessed.With(r)
	if !s.needed.Has(r) {
		s.incorrect++
		return s, OutcomeMiss
	}
	return s, OutcomeHit
}

func hint(s State, rng Rand) (State, Outcome) {
	if !s.HintAvailable() {
		return s, OutcomeHintUnavailable
	}

	switch s.hintStage {
	case 0:
		s.hintStage = 1
		return s, OutcomeHintCategory

	case 1:
		candidates := (Alphabet &^ s.needed &^ s.guessed).Runes()
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		var disabled Letters
		for _, r := range candidates[:len(candidates)/2] {
			disabled = disabled.With(r)
		}
		s.disabled = disabled
		s.hintStage = 2
		s.incorrect++
		return s, OutcomeHintEliminate

	default:
		s.guessed |= Vowels
		s.hintStage = 3
		s.incorrect++
		return s, OutcomeHintVowels
	}
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }
