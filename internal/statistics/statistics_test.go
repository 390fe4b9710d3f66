package statistics

import (
	"math"
	"reflect"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.WinRate() != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty stats, got %f", stats.Percentile(0.5))
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for empty stats")
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{Word: "Chen", Seed: 12345, Won: true, Incorrect: 2, Hints: 1, Guesses: 6})

	if stats.Rounds != 1 || stats.Wins != 1 || stats.Losses != 0 {
		t.Errorf("Expected 1 round won, got rounds=%d wins=%d losses=%d", stats.Rounds, stats.Wins, stats.Losses)
	}
	if stats.Mean() != 2 {
		t.Errorf("Expected mean of 2, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
	if stats.Misses[2] != 1 {
		t.Errorf("Expected one round at 2 misses, got %v", stats.Misses)
	}
	if stats.Hints != 1 || stats.Guesses != 6 {
		t.Errorf("Expected 1 hint and 6 guesses, got %d and %d", stats.Hints, stats.Guesses)
	}
	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	stats := &Statistics{}

	results := []RoundResult{
		{Word: "Is", Won: true, Incorrect: 1},
		{Word: "Is", Won: false, Incorrect: 6},
		{Word: "At", Won: true, Incorrect: 0},
		{Word: "Chen", Won: true, Incorrect: 3},
		{Word: "Chen", Won: true, Incorrect: 0},
	}
	for _, r := range results {
		stats.Add(r)
	}

	if stats.Rounds != 5 {
		t.Errorf("Expected 5 rounds, got %d", stats.Rounds)
	}
	if got := stats.WinRate(); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("Expected win rate 0.8, got %f", got)
	}
	if got := stats.Mean(); math.Abs(got-2.0) > 1e-9 {
		t.Errorf("Expected mean 2.0, got %f", got)
	}

	// Values 1, 6, 0, 3, 0: sum of squared deviations is 26
	if got := stats.Variance(); math.Abs(got-6.5) > 1e-9 {
		t.Errorf("Expected variance 6.5, got %f", got)
	}
	if got := stats.Median(); got != 1 {
		t.Errorf("Expected median 1, got %f", got)
	}
	if got := stats.Percentile(1); got != 6 {
		t.Errorf("Expected max 6, got %f", got)
	}

	lo, hi := stats.ConfidenceInterval95()
	if lo >= stats.Mean() || hi <= stats.Mean() {
		t.Errorf("Expected CI around mean, got [%f, %f]", lo, hi)
	}

	want := [7]int{2, 1, 0, 1, 0, 0, 1}
	if stats.Misses != want {
		t.Errorf("Expected misses histogram %v, got %v", want, stats.Misses)
	}

	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_Hardest(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{Word: "At", Won: true, Incorrect: 0})
	stats.Add(RoundResult{Word: "Is", Won: false, Incorrect: 6})
	stats.Add(RoundResult{Word: "Chen", Won: true, Incorrect: 4})
	stats.Add(RoundResult{Word: "Best", Won: true, Incorrect: 4})

	got := stats.Hardest(3)
	want := []string{"Is", "Best", "Chen"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if n := len(stats.Hardest(10)); n != 4 {
		t.Errorf("Expected all 4 words, got %d", n)
	}
	if ws := stats.ByWord["Is"]; ws.WinRate() != 0 {
		t.Errorf("Expected 0 win rate for Is, got %f", ws.WinRate())
	}
}

func TestStatistics_ValidateMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(RoundResult{Word: "At", Won: true})
	stats.Wins++

	if err := stats.Validate(); err == nil {
		t.Error("Expected validation to catch wins/losses mismatch")
	}

	stats = &Statistics{}
	stats.Add(RoundResult{Word: "At", Won: false, Incorrect: 2})
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation to catch a loss below the miss limit")
	}
}
