package sentiment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportella/textgate/pkg/infra/httpx"
)

func newBERTTestAnalyzer(t *testing.T, handler http.HandlerFunc) (*BERTAnalyzer, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	analyzer := NewBERTAnalyzer(
		server.URL,
		httpx.NewJSONClient(2*time.Second),
		httpx.NewCircuitBreaker("bert-test", time.Minute, 5),
		logrus.New(),
	)
	return analyzer, server
}

func TestBERTAnalyzer_Analyze(t *testing.T) {
	var received bertInferenceRequest
	analyzer, _ := newBERTTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(bertInferenceResponse{Label: "4 stars", Score: 0.87})
	})

	result, err := analyzer.Analyze(context.Background(), "me gusta mucho")
	require.NoError(t, err)

	assert.Equal(t, "me gusta mucho", received.Text)
	assert.InDelta(t, 0.8, result.Score, 1e-9)
	assert.Equal(t, "4 stars", result.NativeLabel)
	assert.InDelta(t, 0.87, result.Confidence, 1e-9)
}

func TestBERTAnalyzer_TruncatesLongInput(t *testing.T) {
	var received bertInferenceRequest
	analyzer, _ := newBERTTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(bertInferenceResponse{Label: "3 stars", Score: 0.5})
	})

	_, err := analyzer.Analyze(context.Background(), strings.Repeat("a", 2000))
	require.NoError(t, err)
	assert.Len(t, received.Text, bertMaxInputLen)
}

func TestBERTAnalyzer_TruncatesOnRuneBoundary(t *testing.T) {
	var received bertInferenceRequest
	analyzer, _ := newBERTTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(bertInferenceResponse{Label: "3 stars", Score: 0.5})
	})

	// Two-byte runes: a byte-level cut at 512 would split one in half.
	_, err := analyzer.Analyze(context.Background(), strings.Repeat("ñ", 600))
	require.NoError(t, err)
	assert.Equal(t, bertMaxInputLen, utf8.RuneCountInString(received.Text))
	assert.True(t, utf8.ValidString(received.Text))
	assert.Equal(t, strings.Repeat("ñ", bertMaxInputLen), received.Text)
}

func TestBERTAnalyzer_UpstreamError(t *testing.T) {
	analyzer, _ := newBERTTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	})

	_, err := analyzer.Analyze(context.Background(), "hola")
	assert.Error(t, err)
}

func TestBERTAnalyzer_BadLabel(t *testing.T) {
	analyzer, _ := newBERTTestAnalyzer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(bertInferenceResponse{Label: "POSITIVE", Score: 0.99})
	})

	_, err := analyzer.Analyze(context.Background(), "hola")
	assert.Error(t, err)
}

func TestParseStarLabel(t *testing.T) {
	tests := []struct {
		label   string
		stars   int
		wantErr bool
	}{
		{"1 star", 1, false},
		{"4 stars", 4, false},
		{"5 stars", 5, false},
		{"0 stars", 0, true},
		{"6 stars", 0, true},
		{"many stars", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			stars, err := parseStarLabel(tt.label)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.stars, stars)
		})
	}
}
