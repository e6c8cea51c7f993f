package moderation

import (
	"unicode/utf8"

	"github.com/vportella/textgate/pkg/config"
)

// SuggestionGenerator assembles the advice blocks for a text. Block order is
// fixed; the final list is capped, possibly cutting a block mid-way.
type SuggestionGenerator struct {
	templates          config.SuggestionTemplates
	offensiveThreshold float64
	longTextThreshold  int
	maxSuggestions     int
}

func NewSuggestionGenerator(cfg config.ModerationConfig) *SuggestionGenerator {
	return &SuggestionGenerator{
		templates:          cfg.Templates,
		offensiveThreshold: cfg.OffensiveThreshold,
		longTextThreshold:  cfg.LongTextThreshold,
		maxSuggestions:     cfg.MaxSuggestions,
	}
}

// Suggest expects the sentiment score already normalized to [0,1] so the
// trigger behaves identically across backends.
func (g *SuggestionGenerator) Suggest(text string, normalizedScore float64, profanityCount int) []string {
	suggestions := make([]string, 0, g.maxSuggestions)

	if normalizedScore < g.offensiveThreshold {
		suggestions = append(suggestions, g.templates.NegativeEmotion...)
	}
	if profanityCount > 0 {
		suggestions = append(suggestions, g.templates.Profanity...)
	}
	if utf8.RuneCountInString(text) > g.longTextThreshold {
		suggestions = append(suggestions, g.templates.Length...)
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, g.templates.Positive...)
	}

	if len(suggestions) > g.maxSuggestions {
		suggestions = suggestions[:g.maxSuggestions]
	}
	return suggestions
}
