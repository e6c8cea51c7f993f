package sentiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedAnalyzer struct {
	method Method
}

func (a *fixedAnalyzer) Method() Method { return a.method }

func (a *fixedAnalyzer) Analyze(_ context.Context, _ string) (Result, error) {
	return Result{}, nil
}

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry(
		MethodLexiconES,
		&fixedAnalyzer{method: MethodLexiconES},
		&fixedAnalyzer{method: MethodVader},
	)
	require.NoError(t, err)

	assert.Equal(t, MethodLexiconES, registry.Default())

	_, ok := registry.Get(MethodVader)
	assert.True(t, ok)
	_, ok = registry.Get(MethodBERTMultilingual)
	assert.False(t, ok)
}

func TestNewRegistry_DuplicateAnalyzer(t *testing.T) {
	_, err := NewRegistry(
		MethodVader,
		&fixedAnalyzer{method: MethodVader},
		&fixedAnalyzer{method: MethodVader},
	)
	assert.Error(t, err)
}

func TestNewRegistry_MissingDefault(t *testing.T) {
	_, err := NewRegistry(MethodBERTMultilingual, &fixedAnalyzer{method: MethodVader})
	assert.Error(t, err)
}

func TestRegistry_AvailableOrder(t *testing.T) {
	registry, err := NewRegistry(
		MethodVader,
		&fixedAnalyzer{method: MethodLexiconES},
		&fixedAnalyzer{method: MethodVader},
		&fixedAnalyzer{method: MethodBERTMultilingual},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"bert_multilingual", "vader", "lexicon_es"}, registry.Available())
}
