// Package game implements the Hangman round: word, guessed letters, misses,
// hint progression and the derived win/loss status.
//
// The main type is State, an immutable snapshot of one round. State never
// changes in place; every player action goes through Reduce, which returns
// the next snapshot together with an Outcome describing what happened.
//
// # Basic Usage
//
//	s := game.New("Chen", game.DefaultCategory)
//	s, _ = game.Reduce(s, game.Guess{Letter: 'c'}, rng)
//	s, out := game.Reduce(s, game.Hint{}, rng)
//	if out == game.OutcomeHintUnavailable {
//	    // tell the player
//	}
//	fmt.Println(s.Masked(), s.Status())
//
// # Deterministic Testing
//
// Only the second hint consumes randomness. Reduce accepts any Rand, which
// *math/rand/v2.Rand satisfies, so tests pass a seeded generator:
//
//	rng := randutil.New(42)
//	s, _ = game.Reduce(s, game.Hint{}, rng)
//
// # Renderers
//
// Renderers never inspect State directly across a process boundary; they
// consume View, a plain value with the masked word, per-letter states and
// hint text.
package game
