package moderation

import (
	"regexp"
	"strings"
)

// TextCorrector rewrites detected profanity using the replacement
// dictionary. Matching is literal-substring and case-insensitive: a term
// embedded in a longer word is replaced too. That looseness is inherited
// behavior and covered by tests; do not tighten it silently.
type TextCorrector struct {
	replacements map[string]string
}

func NewTextCorrector(replacements map[string]string) *TextCorrector {
	return &TextCorrector{replacements: replacements}
}

// Correct replaces every case-insensitive occurrence of each detected word
// that has a dictionary entry. Words without an entry stay untouched even
// though the detector flagged them.
func (c *TextCorrector) Correct(text string, profanityWords []string) string {
	corrected := text
	for _, word := range profanityWords {
		replacement, ok := c.replacements[strings.ToLower(word)]
		if !ok {
			continue
		}
		re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(word))
		if err != nil {
			continue
		}
		corrected = re.ReplaceAllLiteralString(corrected, replacement)
	}
	return corrected
}
