package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportella/textgate/pkg/domain"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Method
		wantErr  bool
	}{
		{"empty picks default", "", MethodBERTMultilingual, false},
		{"bert", "bert_multilingual", MethodBERTMultilingual, false},
		{"vader", "vader", MethodVader, false},
		{"lexicon", "lexicon_es", MethodLexiconES, false},
		{"unknown", "gpt4", "", true},
		{"case sensitive", "VADER", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMethod(tt.raw, MethodBERTMultilingual)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsUnknownMethodError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMethod_ErrorListsAvailable(t *testing.T) {
	_, err := ParseMethod("gpt4", MethodBERTMultilingual)
	require.Error(t, err)

	for _, name := range MethodNames() {
		assert.Contains(t, err.Error(), name)
	}
}
