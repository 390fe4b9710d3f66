package game

import (
	"testing"

	"github.com/lox/hangman/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetters(t *testing.T) {
	l := LettersOf("The Best")
	assert.Equal(t, "behst", l.String())
	assert.Equal(t, 5, l.Len())
	assert.True(t, l.Has('T'))
	assert.False(t, l.Has(' '))
	assert.Equal(t, l, l.With('!'))
	assert.Equal(t, 26, Alphabet.Len())
	assert.Equal(t, "aeiou", Vowels.String())
}

func TestViewLetterStates(t *testing.T) {
	rng := randutil.New(12)
	s, _ := play(t, New("Chen", ""), rng, Guess{Letter: 'c'}, Guess{Letter: 'z'}, Hint{}, Hint{})
	v := s.View(OutcomeHintEliminate)

	assert.Equal(t, LetterHit, v.Letter('c'))
	assert.Equal(t, LetterMiss, v.Letter('Z'))
	assert.Equal(t, LetterAvailable, v.Letter('h'))
	for _, r := range s.Disabled().Runes() {
		assert.Equal(t, LetterDisabled, v.Letter(r))
	}
	assert.Equal(t, LetterLocked, v.Letter('#'))

	assert.Equal(t, LettersOf("cz"), v.Tried())
	assert.Equal(t, Alphabet&^LettersOf("cz")&^s.Disabled(), v.Selectable())
	assert.Equal(t, "C___", v.Masked)
	assert.Equal(t, 2, v.Incorrect)
	assert.Equal(t, 2, v.HintStage)
	assert.True(t, v.CanHint)
	assert.Equal(t, OutcomeHintEliminate, v.Outcome)
	assert.Equal(t, "This word belongs to category: Baseball", v.HintText)
}

func TestViewAfterLossRevealsWord(t *testing.T) {
	s, _ := play(t, New("At", ""), nil, guesses("bcdfgh")...)
	require.Equal(t, Lost, s.Status())

	v := s.View(OutcomeMiss)
	assert.Equal(t, Lost, v.Status)
	assert.Equal(t, "At", v.Masked)
	assert.False(t, v.CanHint)
	assert.Equal(t, LetterLocked, v.Letter('a'))
	assert.Equal(t, LetterMiss, v.Letter('b'))
	assert.Zero(t, v.Selectable())
}

func TestIsRevealedQuery(t *testing.T) {
	s := New("Chen", "")
	assert.False(t, s.IsRevealed('c'))

	s, _ = Reduce(s, Guess{Letter: 'c'}, nil)
	assert.True(t, s.IsRevealed('c'))
	assert.False(t, s.IsRevealed('h'))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "in_progress", InProgress.String())
	assert.Equal(t, "won", Won.String())
	assert.Equal(t, "lost", Lost.String())
	assert.Equal(t, "hint_unavailable", OutcomeHintUnavailable.String())
	assert.True(t, OutcomeHintVowels.IsHint())
	assert.False(t, OutcomeHit.IsHint())
}
