package bot

import "github.com/lox/hangman/internal/game"

// RandomBot guesses a uniformly random selectable letter.
type RandomBot struct {
	rng Rand
}

// NewRandomBot creates a RandomBot.
func NewRandomBot(rng Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (r *RandomBot) Name() string { return Random }

func (r *RandomBot) Pick(v game.View) (rune, bool) {
	choices := v.Selectable().Runes()
	if len(choices) == 0 {
		return 0, false
	}
	return choices[r.rng.IntN(len(choices))], true
}
