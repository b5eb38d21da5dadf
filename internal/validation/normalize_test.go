package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	opts := DefaultNormalizeOptions()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lowercase and trim", in: "  SunFlower  ", want: "sunflower"},
		{name: "strip punctuation", in: "Time flies!!! (when...)", want: "time flies when"},
		{name: "collapse whitespace", in: "a \t  b\n\nc", want: "a b c"},
		{name: "expand contraction", in: "You're right", want: "you are right"},
		{name: "can't becomes cannot", in: "I can't stop", want: "i cannot stop"},
		{name: "longest contraction wins", in: "shouldn't've", want: "should not have"},
		{name: "typographic apostrophe", in: "Don’t look back", want: "do not look back"},
		{name: "possessive kept", in: "Dog's life", want: "dog's life"},
		{name: "unicode letters kept", in: "Crème Brûlée", want: "crème brûlée"},
		{name: "empty", in: "", want: ""},
		{name: "only punctuation", in: "?!.,", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.in, opts))
		})
	}
}

func TestNormalizeToggles(t *testing.T) {
	t.Parallel()

	t.Run("keep capitalization", func(t *testing.T) {
		got := Normalize("Big Apple!", NormalizeOptions{IgnorePunctuation: true})
		assert.Equal(t, "Big Apple", got)
	})

	t.Run("keep punctuation", func(t *testing.T) {
		got := Normalize("big, apple", NormalizeOptions{IgnoreCapitalization: true})
		assert.Equal(t, "big, apple", got)
	})

	t.Run("no contraction expansion", func(t *testing.T) {
		got := Normalize("you're it", NormalizeOptions{IgnoreCapitalization: true, IgnorePunctuation: true})
		assert.Equal(t, "you're it", got)
	})
}

func TestNormalizeIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"You're RIGHT!",
		"  time   flies, when you're having fun ",
		"Rock 'n' roll",
		"won't can't shouldn't've",
		"I'd've known",
		"they'd've it'd've",
		"Über-cool café",
		"",
	}
	for _, opts := range []NormalizeOptions{
		DefaultNormalizeOptions(),
		{IgnoreCapitalization: true},
		{IgnorePunctuation: true},
		{ExpandContractions: true},
	} {
		for _, in := range inputs {
			once := Normalize(in, opts)
			assert.Equal(t, once, Normalize(once, opts), "input %q opts %+v", in, opts)
		}
	}
}

func TestContractionEquivalence(t *testing.T) {
	t.Parallel()

	opts := DefaultNormalizeOptions()
	assert.Equal(t, Normalize("You are right", opts), Normalize("You're right", opts))
	assert.Equal(t, Normalize("it is what it is", opts), Normalize("It's what it's", opts))
	assert.Equal(t, "i would have known", Normalize("I'd've known", opts))
	assert.Equal(t, Normalize("I would have known", opts), Normalize("I’d’ve known", opts))
	assert.Equal(t, "they would have", Normalize("They'd've", opts))
}

func TestLegacyNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "timeflies", LegacyNormalize("Time  flies!"))
	assert.Equal(t, "youre", LegacyNormalize("You're"))
	assert.Equal(t, "", LegacyNormalize(" - "))
	// Differs from Normalize on purpose: whitespace is removed entirely.
	assert.NotEqual(t, Normalize("time flies", DefaultNormalizeOptions()), LegacyNormalize("time flies"))
}
