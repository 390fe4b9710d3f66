package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/hangman/internal/game"
)

// RoundResult represents the outcome of a single simulated round
type RoundResult struct {
	Word      string // Word that was dealt
	Seed      int64  // RNG seed for this round (for replay)
	Won       bool   // Did the bot reveal the word?
	Incorrect int    // Final incorrect count, including hint penalties
	Hints     int    // Hint stages taken
	Guesses   int    // Letters guessed
}

// WordStats tracks results for one word
type WordStats struct {
	Rounds       int
	Wins         int
	SumIncorrect int
}

// WinRate returns the share of rounds won for this word
func (w WordStats) WinRate() float64 {
	if w.Rounds == 0 {
		return 0
	}
	return float64(w.Wins) / float64(w.Rounds)
}

// Statistics aggregates simulated rounds
type Statistics struct {
	Rounds int
	Wins   int
	Losses int

	SumIncorrect  float64
	SumIncorrect2 float64   // Sum of squares for variance calculation
	Values        []float64 // Incorrect count per round for median/percentile

	Hints   int
	Guesses int

	// Misses[n] counts rounds that finished with n incorrect
	Misses [game.MaxIncorrect + 1]int

	ByWord map[string]*WordStats
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	n := float64(result.Incorrect)
	s.Rounds++
	s.SumIncorrect += n
	s.SumIncorrect2 += n * n
	s.Values = append(s.Values, n)
	s.Hints += result.Hints
	s.Guesses += result.Guesses

	if result.Won {
		s.Wins++
	} else {
		s.Losses++
	}

	if result.Incorrect >= 0 && result.Incorrect <= game.MaxIncorrect {
		s.Misses[result.Incorrect]++
	}

	if s.ByWord == nil {
		s.ByWord = make(map[string]*WordStats)
	}
	ws := s.ByWord[result.Word]
	if ws == nil {
		ws = &WordStats{}
		s.ByWord[result.Word] = ws
	}
	ws.Rounds++
	ws.SumIncorrect += result.Incorrect
	if result.Won {
		ws.Wins++
	}
}

// WinRate returns the share of rounds won
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

// Mean returns the mean incorrect count per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumIncorrect / float64(s.Rounds)
}

// Variance returns the sample variance of the incorrect counts
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumIncorrect2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of the incorrect counts
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median incorrect count
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the incorrect count at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Hardest returns up to n words ordered by win rate, lowest first. Ties go
// to the word with more incorrect guesses on average, then alphabetically.
func (s *Statistics) Hardest(n int) []string {
	words := make([]string, 0, len(s.ByWord))
	for w := range s.ByWord {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		a, b := s.ByWord[words[i]], s.ByWord[words[j]]
		if a.WinRate() != b.WinRate() {
			return a.WinRate() < b.WinRate()
		}
		ma := float64(a.SumIncorrect) / float64(a.Rounds)
		mb := float64(b.SumIncorrect) / float64(b.Rounds)
		if ma != mb {
			return ma > mb
		}
		return words[i] < words[j]
	})
	if n < len(words) {
		words = words[:n]
	}
	return words
}

// Validate performs consistency checks on the aggregated data
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if s.Wins+s.Losses != s.Rounds {
		return fmt.Errorf("wins (%d) + losses (%d) does not match rounds (%d)",
			s.Wins, s.Losses, s.Rounds)
	}

	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values array length (%d) does not match rounds count (%d)",
			len(s.Values), s.Rounds)
	}

	histogram := 0
	for _, n := range s.Misses {
		histogram += n
	}
	if histogram != s.Rounds {
		return fmt.Errorf("misses histogram total (%d) does not match rounds (%d)", histogram, s.Rounds)
	}

	if s.Misses[game.MaxIncorrect] != s.Losses {
		return fmt.Errorf("rounds at %d incorrect (%d) does not match losses (%d)",
			game.MaxIncorrect, s.Misses[game.MaxIncorrect], s.Losses)
	}

	perWord := 0
	for _, ws := range s.ByWord {
		perWord += ws.Rounds
	}
	if perWord != s.Rounds {
		return fmt.Errorf("per-word rounds total (%d) does not match rounds (%d)", perWord, s.Rounds)
	}

	return nil
}
