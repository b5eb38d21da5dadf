package validation

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions toggles the individual normalization steps.
type NormalizeOptions struct {
	IgnoreCapitalization bool
	IgnorePunctuation    bool
	ExpandContractions   bool
}

// DefaultNormalizeOptions enables every step.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		IgnoreCapitalization: true,
		IgnorePunctuation:    true,
		ExpandContractions:   true,
	}
}

var contractions = map[string]string{
	"ain't":        "is not",
	"aren't":       "are not",
	"can't":        "cannot",
	"could've":     "could have",
	"couldn't":     "could not",
	"didn't":       "did not",
	"doesn't":      "does not",
	"don't":        "do not",
	"hadn't":       "had not",
	"hasn't":       "has not",
	"haven't":      "have not",
	"he'd":         "he would",
	"he'll":        "he will",
	"he's":         "he is",
	"how's":        "how is",
	"i'd":          "i would",
	"i'll":         "i will",
	"i'm":          "i am",
	"i've":         "i have",
	"isn't":        "is not",
	"it'd":         "it would",
	"it'll":        "it will",
	"it's":         "it is",
	"let's":        "let us",
	"ma'am":        "madam",
	"might've":     "might have",
	"mightn't":     "might not",
	"must've":      "must have",
	"mustn't":      "must not",
	"needn't":      "need not",
	"o'clock":      "of the clock",
	"shan't":       "shall not",
	"she'd":        "she would",
	"she'll":       "she will",
	"she's":        "she is",
	"should've":    "should have",
	"shouldn't":    "should not",
	"shouldn't've": "should not have",
	"that's":       "that is",
	"there's":      "there is",
	"they'd":       "they would",
	"they'll":      "they will",
	"they're":      "they are",
	"they've":      "they have",
	"wasn't":       "was not",
	"we'd":         "we would",
	"we'll":        "we will",
	"we're":        "we are",
	"we've":        "we have",
	"weren't":      "were not",
	"what's":       "what is",
	"where's":      "where is",
	"who's":        "who is",
	"won't":        "will not",
	"would've":     "would have",
	"wouldn't":     "would not",
	"wouldn't've":  "would not have",
	"y'all":        "you all",
	"you'd":        "you would",
	"you'll":       "you will",
	"you're":       "you are",
	"you've":       "you have",
}

// contractionPattern matches whole contractions, longest first, so that
// "shouldn't've" wins over "shouldn't".
var contractionPattern = func() *regexp.Regexp {
	keys := make([]string, 0, len(contractions))
	for k := range contractions {
		keys = append(keys, regexp.QuoteMeta(k))
	}
	slices.SortFunc(keys, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(keys, "|") + `)\b`)
}()

var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'", "`", "'")

// Normalize canonicalizes free text for comparison. It never fails and is
// idempotent for a fixed set of options.
func Normalize(text string, opts NormalizeOptions) string {
	s := norm.NFKC.String(text)
	s = apostrophes.Replace(s)

	if opts.IgnoreCapitalization {
		s = strings.ToLower(s)
	}

	if opts.IgnorePunctuation {
		s = strings.Map(func(r rune) rune {
			if isWordRune(r) || unicode.IsSpace(r) || r == '\'' {
				return r
			}
			return -1
		}, s)
	}

	if opts.ExpandContractions {
		s = expandContractions(s)
	}

	return strings.Join(strings.Fields(s), " ")
}

// expandContractions repeats until no contraction is left, so stacked forms
// like "i'd've" expand fully. Every expansion removes an apostrophe, which
// bounds the loop.
func expandContractions(s string) string {
	for contractionPattern.MatchString(s) {
		s = contractionPattern.ReplaceAllStringFunc(s, func(m string) string {
			return contractions[strings.ToLower(m)]
		})
	}
	return s
}

// LegacyNormalize is the quick-check canonical form: lowercase letters and
// digits only, with all whitespace removed. It intentionally differs from
// Normalize, which keeps single spaces between words.
func LegacyNormalize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, text)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
