// Package validation decides whether a free-text guess matches a puzzle answer.
//
// Cheap deterministic checks run first (normalized equality, word reordering,
// edit-distance similarity); a remote semantic judge is consulted only when
// those are inconclusive, and its failure always degrades to the deterministic
// verdict.
package validation

import "time"

// Config tunes the validation pipeline.
type Config struct {
	// Enabled is the master switch for the AI stage.
	Enabled bool `mapstructure:"enabled"`
	// AlwaysUseAI consults the judge regardless of similarity.
	AlwaysUseAI bool `mapstructure:"always_use_ai"`
	// QuickAcceptThreshold is the legacy similarity accepted as an exact match.
	QuickAcceptThreshold float64 `mapstructure:"quick_accept_threshold"`
	// MinorTypoThreshold is the legacy similarity accepted as a typo.
	MinorTypoThreshold float64 `mapstructure:"minor_typo_threshold"`
	// AIMinimumSimilarity skips the judge for guesses further away than this.
	AIMinimumSimilarity float64       `mapstructure:"ai_minimum_similarity"`
	AITimeout           time.Duration `mapstructure:"ai_timeout"`

	TolerateWordOrderVariations bool `mapstructure:"tolerate_word_order_variations"`
	ExpandContractions          bool `mapstructure:"expand_contractions"`
	IgnorePunctuation           bool `mapstructure:"ignore_punctuation"`
	IgnoreCapitalization        bool `mapstructure:"ignore_capitalization"`

	// MaxTypoRatio is informational and not enforced by the pipeline.
	MaxTypoRatio float64 `mapstructure:"max_typo_ratio"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:                     true,
		AlwaysUseAI:                 false,
		QuickAcceptThreshold:        0.98,
		MinorTypoThreshold:          0.95,
		AIMinimumSimilarity:         0.3,
		AITimeout:                   5 * time.Second,
		TolerateWordOrderVariations: true,
		ExpandContractions:          true,
		IgnorePunctuation:           true,
		IgnoreCapitalization:        true,
		MaxTypoRatio:                0.15,
	}
}

// NormalizeOptions derives the normalizer flags from the config.
func (c Config) NormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		IgnoreCapitalization: c.IgnoreCapitalization,
		IgnorePunctuation:    c.IgnorePunctuation,
		ExpandContractions:   c.ExpandContractions,
	}
}
