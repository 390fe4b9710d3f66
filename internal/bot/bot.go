// Package bot plays Hangman rounds automatically. A Strategy picks the next
// letter from what a player can see; a Bot adds the hint policy on top.
package bot

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/lox/hangman/internal/game"
)

// Strategy names accepted by NewStrategy
const (
	Frequency  = "frequency"
	Random     = "random"
	Dictionary = "dictionary"
)

// StuckAt is the incorrect count from which a Bot with hints enabled asks for
// paid hints.
const StuckAt = 3

// Rand is the randomness a Strategy may use.
type Rand interface {
	IntN(n int) int
}

// Strategy picks the next letter to guess.
type Strategy interface {
	Name() string
	// Pick returns a selectable letter, or false when none is left.
	Pick(v game.View) (rune, bool)
}

// NewStrategy builds the named strategy. dictionary is only used by the
// dictionary strategy.
func NewStrategy(name string, rng Rand, dictionary []string) (Strategy, error) {
	switch name {
	case Frequency:
		return FrequencyBot{}, nil
	case Random:
		return NewRandomBot(rng), nil
	case Dictionary:
		return NewDictionaryBot(dictionary), nil
	}
	return nil, fmt.Errorf("unknown strategy %q (valid: %v)", name, Names())
}

// Names lists every strategy name.
func Names() []string {
	names := []string{Frequency, Random, Dictionary}
	sort.Strings(names)
	return names
}

// Move is one bot action.
type Move struct {
	Hint   bool
	Letter rune
}

// Action converts the move into a reducer action.
func (m Move) Action() game.Action {
	if m.Hint {
		return game.Hint{}
	}
	return game.Guess{Letter: m.Letter}
}

func (m Move) String() string {
	if m.Hint {
		return "hint"
	}
	return "guess " + string(m.Letter)
}

// Bot plays with a Strategy and an optional hint policy: the free category
// hint is always taken, paid hints only once the bot has missed StuckAt
// times.
type Bot struct {
	strategy Strategy
	hints    bool
	logger   *log.Logger
}

// New creates a bot.
func New(strategy Strategy, hints bool, logger *log.Logger) *Bot {
	return &Bot{
		strategy: strategy,
		hints:    hints,
		logger:   logger.WithPrefix("bot"),
	}
}

// Name returns the strategy name.
func (b *Bot) Name() string {
	return b.strategy.Name()
}

// Next returns the bot's move for v, or false when the round is over or
// nothing is left to pick.
func (b *Bot) Next(v game.View) (Move, bool) {
	if v.Status.Finished() {
		return Move{}, false
	}

	if b.hints && v.CanHint && (v.HintStage == 0 || v.Incorrect >= StuckAt) {
		b.logger.Debug("Requesting hint", "stage", v.HintStage, "incorrect", v.Incorrect)
		return Move{Hint: true}, true
	}

	letter, ok := b.strategy.Pick(v)
	if !ok {
		return Move{}, false
	}
	b.logger.Debug("Guessing", "strategy", b.strategy.Name(), "letter", string(letter), "masked", v.Masked)
	return Move{Letter: letter}, true
}
