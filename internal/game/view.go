package game

// LetterState is how a renderer should draw one key of the letter grid.
type LetterState uint8

const (
	LetterAvailable LetterState = iota
	LetterHit
	LetterMiss
	LetterDisabled
	// LetterLocked is an unguessed letter after the round has finished.
	LetterLocked
)

func (l LetterState) String() string {
	return [...]string{"available", "hit", "miss", "disabled", "locked"}[l]
}

// Selectable reports whether a Guess for a letter in this state can change
// the round.
func (l LetterState) Selectable() bool {
	return l == LetterAvailable
}

// LetterState classifies r for the letter grid.
func (s State) LetterState(r rune) LetterState {
	switch {
	case s.guessed.Has(r) && s.needed.Has(r):
		return LetterHit
	case s.guessed.Has(r):
		return LetterMiss
	case s.disabled.Has(r):
		return LetterDisabled
	case s.Status().Finished():
		return LetterLocked
	default:
		return LetterAvailable
	}
}

// View is the renderer-facing snapshot of a round. It never carries the
// unrevealed word: Masked only shows every letter once the round is over.
type View struct {
	Status    Status
	Masked    string
	Incorrect int
	HintStage int
	HintText  string
	CanHint   bool
	Letters   [26]LetterState
	// Outcome is the effect of the action that produced this view.
	Outcome Outcome
}

// View projects s for renderers, tagging it with the outcome of the action
// that produced it.
func (s State) View(o Outcome) View {
	v := View{
		Status:    s.Status(),
		Masked:    s.Masked(),
		Incorrect: s.incorrect,
		HintStage: s.hintStage,
		HintText:  s.HintText(),
		CanHint:   s.HintAvailable(),
		Outcome:   o,
	}
	for i := range v.Letters {
		v.Letters[i] = s.LetterState(rune('a' + i))
	}
	return v
}

// Letter returns the grid state for r, or LetterLocked for non-letters.
func (v View) Letter(r rune) LetterState {
	r, ok := Normalize(r)
	if !ok {
		return LetterLocked
	}
	return v.Letters[r-'a']
}

// Tried returns every letter already guessed, hit or miss.
func (v View) Tried() Letters {
	var l Letters
	for i, st := range v.Letters {
		if st == LetterHit || st == LetterMiss {
			l = l.With(rune('a' + i))
		}
	}
	return l
}

// Selectable returns the letters a player may still pick.
func (v View) Selectable() Letters {
	var l Letters
	for i, st := range v.Letters {
		if st.Selectable() {
			l = l.With(rune('a' + i))
		}
	}
	return l
}
