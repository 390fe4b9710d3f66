package bot

import "github.com/lox/hangman/internal/game"

// EnglishOrder is the English letter frequency order.
const EnglishOrder = "etaoinshrdlcumwfgypbvkjxqz"

// FrequencyBot guesses letters from most to least common in English.
type FrequencyBot struct{}

func (FrequencyBot) Name() string { return Frequency }

func (FrequencyBot) Pick(v game.View) (rune, bool) {
	return firstSelectable(v.Selectable())
}

func firstSelectable(l game.Letters) (rune, bool) {
	for _, r := range EnglishOrder {
		if l.Has(r) {
			return r, true
		}
	}
	return 0, false
}
