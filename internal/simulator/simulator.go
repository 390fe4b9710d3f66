package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/hangman/internal/bot"
	"github.com/lox/hangman/internal/game"
	"github.com/lox/hangman/internal/randutil"
	"github.com/lox/hangman/internal/statistics"
	"github.com/lox/hangman/internal/words"
	"golang.org/x/sync/errgroup"
)

// maxMoves bounds a round: 26 letters plus every hint stage.
const maxMoves = 26 + game.MaxHintStage

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Strategy string
	Hints    bool
	Workers  int
	Seed     int64
	Category string
	Words    []string
	Timeout  time.Duration
	Logger   *log.Logger
}

// Simulator plays bot rounds
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a new simulator with the given configuration. Missing words,
// category and worker count fall back to defaults.
func New(config Config) (*Simulator, error) {
	if config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", config.Rounds)
	}
	if len(config.Words) == 0 {
		config.Words = words.DefaultWords
	}
	if config.Category == "" {
		config.Category = game.DefaultCategory
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := words.Validate(config.Words); err != nil {
		return nil, fmt.Errorf("invalid word list: %w", err)
	}
	if _, err := bot.NewStrategy(config.Strategy, nil, nil); err != nil {
		return nil, err
	}

	return &Simulator{
		config: config,
		logger: config.Logger.WithPrefix("simulator"),
	}, nil
}

// Run plays every round and returns the aggregated results. Rounds run in
// parallel but each has its own seed, so results do not depend on the
// worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	s.logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"strategy", s.config.Strategy,
		"hints", s.config.Hints,
		"workers", s.config.Workers,
		"seed", s.config.Seed)
	start := time.Now()

	results := make([]statistics.RoundResult, s.config.Rounds)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.PlayRound(randutil.Derive(s.config.Seed, i))
			if err != nil {
				return fmt.Errorf("round %d: %w", i+1, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.logger.Info("Simulation finished",
		"duration", time.Since(start),
		"winRate", fmt.Sprintf("%.3f", stats.WinRate()))
	return stats, nil
}

// PlayRound plays the round for seed. The same seed always deals the same
// word and produces the same result.
func (s *Simulator) PlayRound(seed int64) (statistics.RoundResult, error) {
	rng := randutil.New(seed)

	list, err := words.NewList(s.config.Category, s.config.Words, rng)
	if err != nil {
		return statistics.RoundResult{}, err
	}
	strategy, err := bot.NewStrategy(s.config.Strategy, rng, s.config.Words)
	if err != nil {
		return statistics.RoundResult{}, err
	}
	b := bot.New(strategy, s.config.Hints, s.logger)

	word := list.Next()
	state := game.New(word, list.Category())
	outcome := game.OutcomeNewRound
	result := statistics.RoundResult{Word: word, Seed: seed}

	for moves := 0; !state.Status().Finished(); moves++ {
		if moves >= maxMoves {
			return result, fmt.Errorf("bot %s did not finish %q (seed: %d)", strategy.Name(), word, seed)
		}
		move, ok := b.Next(state.View(outcome))
		if !ok {
			return result, fmt.Errorf("bot %s has no move for %q (seed: %d)", strategy.Name(), state.Masked(), seed)
		}
		state, outcome = game.Reduce(state, move.Action(), rng)
		if outcome == game.OutcomeIgnored {
			return result, fmt.Errorf("bot %s made an ignored move %s (seed: %d)", strategy.Name(), move, seed)
		}
		if move.Hint {
			continue
		}
		result.Guesses++
	}

	result.Won = state.Status() == game.Won
	result.Incorrect = state.Incorrect()
	result.Hints = state.HintStage()

	s.logger.Debug("Round finished",
		"word", word,
		"won", result.Won,
		"incorrect", result.Incorrect,
		"hints", result.Hints)
	return result, nil
}

// PrintSummary writes a human readable summary of stats
func PrintSummary(w io.Writer, stats *statistics.Statistics, strategy string) {
	low, high := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== FINAL RESULTS for %s-bot ===\n", strategy)
	fmt.Fprintf(w, "Rounds played: %d\n", stats.Rounds)
	fmt.Fprintf(w, "Won: %d  Lost: %d  Win rate: %.1f%%\n", stats.Wins, stats.Losses, stats.WinRate()*100)

	fmt.Fprintf(w, "\n=== INCORRECT GUESSES ===\n")
	fmt.Fprintf(w, "Mean: %.3f per round\n", stats.Mean())
	fmt.Fprintf(w, "Median: %.1f\n", stats.Median())
	fmt.Fprintf(w, "Std Dev: %.3f\n", stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.3f, %.3f]\n", low, high)

	fmt.Fprintf(w, "\n=== MISSES HISTOGRAM ===\n")
	for n, count := range stats.Misses {
		bar := ""
		if stats.Rounds > 0 {
			bar = strings.Repeat("#", count*40/stats.Rounds)
		}
		fmt.Fprintf(w, "%d: %6d %s\n", n, count, bar)
	}

	if stats.Rounds > 0 {
		fmt.Fprintf(w, "\nHints per round: %.2f  Guesses per round: %.2f\n",
			float64(stats.Hints)/float64(stats.Rounds),
			float64(stats.Guesses)/float64(stats.Rounds))
	}

	hardest := stats.Hardest(5)
	if len(hardest) > 0 {
		fmt.Fprintf(w, "\n=== HARDEST WORDS ===\n")
		for _, word := range hardest {
			ws := stats.ByWord[word]
			fmt.Fprintf(w, "%-12s %5d rounds, %.1f%% won\n", word, ws.Rounds, ws.WinRate()*100)
		}
	}
}
