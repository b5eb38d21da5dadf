package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesWithWordOrderTolerance(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	tests := []struct {
		name   string
		guess  string
		answer string
		want   bool
	}{
		{name: "reordered words", guess: "fun having when flies time", answer: "time flies when having fun", want: true},
		{name: "identical after normalization", guess: "Time Flies!", answer: "time flies", want: true},
		{name: "missing word", guess: "time flies when fun", answer: "time flies when having fun", want: false},
		{name: "extra word", guess: "time flies when having so much fun", answer: "time flies when having fun", want: false},
		{name: "subset of words", guess: "time flies", answer: "time flies when having fun", want: false},
		{name: "repeated word counts differ", guess: "up up down", answer: "up down down", want: false},
		{name: "contractions before reorder", guess: "right you're", answer: "you are right", want: true},
		{name: "empty guess", guess: "", answer: "anything", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchesWithWordOrderTolerance(tt.guess, tt.answer, cfg))
		})
	}
}

func TestMatchesWithWordOrderToleranceDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.TolerateWordOrderVariations = false

	assert.False(t, MatchesWithWordOrderTolerance("flies time", "time flies", cfg))
	assert.True(t, MatchesWithWordOrderTolerance("TIME flies", "time flies", cfg))
}
