package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodsHandler(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/methods", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		DefaultMethod string `json:"default_method"`
		Methods       map[string]struct {
			Description string `json:"description"`
			Model       string `json:"model"`
			Scale       string `json:"scale"`
			Local       bool   `json:"local"`
			Default     bool   `json:"default"`
			Thresholds  map[string]float64
		} `json:"methods"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "bert_multilingual", body.DefaultMethod)
	require.Len(t, body.Methods, 3)

	bert, ok := body.Methods["bert_multilingual"]
	require.True(t, ok)
	assert.Equal(t, "unit", bert.Scale)
	assert.False(t, bert.Local)
	assert.True(t, bert.Default)

	lexicon, ok := body.Methods["lexicon_es"]
	require.True(t, ok)
	assert.Equal(t, "signed", lexicon.Scale)
	assert.True(t, lexicon.Local)
	assert.False(t, lexicon.Default)
}
