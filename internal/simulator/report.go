package simulator

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lox/hangman/internal/fileutil"
	"github.com/lox/hangman/internal/statistics"
)

// Report is the TOML summary written by `hangman simulate --report`.
type Report struct {
	Strategy  string    `toml:"strategy"`
	Hints     bool      `toml:"hints"`
	Rounds    int       `toml:"rounds"`
	Seed      int64     `toml:"seed"`
	Generated time.Time `toml:"generated"`

	Wins          int       `toml:"wins"`
	Losses        int       `toml:"losses"`
	WinRate       float64   `toml:"win_rate"`
	MeanIncorrect float64   `toml:"mean_incorrect"`
	StdDev        float64   `toml:"std_dev"`
	CI95          []float64 `toml:"ci95"`
	Misses        []int     `toml:"misses"`

	Words []WordReport `toml:"words,omitempty"`
}

// WordReport is one [[words]] table of a Report
type WordReport struct {
	Word    string  `toml:"word"`
	Rounds  int     `toml:"rounds"`
	Wins    int     `toml:"wins"`
	WinRate float64 `toml:"win_rate"`
}

// NewReport summarises stats for config. Words are listed hardest first.
func NewReport(config Config, stats *statistics.Statistics, generated time.Time) *Report {
	low, high := stats.ConfidenceInterval95()
	r := &Report{
		Strategy:      config.Strategy,
		Hints:         config.Hints,
		Rounds:        stats.Rounds,
		Seed:          config.Seed,
		Generated:     generated.UTC(),
		Wins:          stats.Wins,
		Losses:        stats.Losses,
		WinRate:       stats.WinRate(),
		MeanIncorrect: stats.Mean(),
		StdDev:        stats.StdDev(),
		CI95:          []float64{low, high},
		Misses:        stats.Misses[:],
	}
	for _, w := range stats.Hardest(len(stats.ByWord)) {
		ws := stats.ByWord[w]
		r.Words = append(r.Words, WordReport{
			Word:    w,
			Rounds:  ws.Rounds,
			Wins:    ws.Wins,
			WinRate: ws.WinRate(),
		})
	}
	return r
}

// Encode writes the report in TOML format.
func (r *Report) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(r)
}

// WriteFile writes the report to path atomically.
func (r *Report) WriteFile(path string) error {
	if err := fileutil.WriteAtomic(path, 0o644, r.Encode); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// DecodeReport reads a report written by Encode.
func DecodeReport(r io.Reader) (*Report, error) {
	var report Report
	if _, err := toml.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &report, nil
}
