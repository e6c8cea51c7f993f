package moderation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportella/textgate/pkg/config"
)

func newTestSuggestions() (*SuggestionGenerator, config.ModerationConfig) {
	cfg := config.LoadDefaults().Moderation
	return NewSuggestionGenerator(cfg), cfg
}

func TestSuggestionGenerator_PositiveOnly(t *testing.T) {
	g, cfg := newTestSuggestions()

	got := g.Suggest("qué buen día", 0.9, 0)

	require.Equal(t, cfg.Templates.Positive, got)
	assert.Len(t, got, 3)
}

func TestSuggestionGenerator_NegativeEmotion(t *testing.T) {
	g, cfg := newTestSuggestions()

	got := g.Suggest("todo está mal", 0.2, 0)

	require.NotEmpty(t, got)
	assert.Equal(t, cfg.Templates.NegativeEmotion[0], got[0])
	assert.NotContains(t, got, cfg.Templates.Positive[0])
}

func TestSuggestionGenerator_CapAtMax(t *testing.T) {
	g, cfg := newTestSuggestions()

	// Negative emotion plus profanity plus length exceeds the cap.
	long := strings.Repeat("palabra ", 50)
	got := g.Suggest(long, 0.1, 2)

	assert.Len(t, got, cfg.MaxSuggestions)
	// Block order is fixed: emotion first, then profanity.
	assert.Equal(t, cfg.Templates.NegativeEmotion[0], got[0])
	assert.Equal(t, cfg.Templates.Profanity[0], got[len(cfg.Templates.NegativeEmotion)])
}

func TestSuggestionGenerator_LengthBlock(t *testing.T) {
	g, cfg := newTestSuggestions()

	long := strings.Repeat("a", cfg.LongTextThreshold+1)
	got := g.Suggest(long, 0.9, 0)

	require.Equal(t, cfg.Templates.Length, got)
}

func TestSuggestionGenerator_NeverExceedsMax(t *testing.T) {
	g, cfg := newTestSuggestions()

	texts := []string{"", "hola", strings.Repeat("x", 500)}
	scores := []float64{0, 0.3, 0.5, 1}
	counts := []int{0, 1, 7}

	for _, text := range texts {
		for _, score := range scores {
			for _, count := range counts {
				got := g.Suggest(text, score, count)
				assert.NotEmpty(t, got)
				assert.LessOrEqual(t, len(got), cfg.MaxSuggestions)
			}
		}
	}
}
