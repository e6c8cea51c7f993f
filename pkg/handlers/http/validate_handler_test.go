package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportella/textgate/pkg/handlers/http/request"
	"github.com/vportella/textgate/pkg/handlers/http/response"
)

func TestValidateHandler_CleanText(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/validate", request.ValidateRequest{
		Text: "este producto es excelente",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.ValidateResponse
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "este producto es excelente", body.OriginalText)
	assert.False(t, body.IsOffensive)
	assert.False(t, body.HasProfanity)
	assert.Zero(t, body.ProfanityCount)
	assert.Equal(t, "lexicon_es", body.SentimentMethod)
	assert.Equal(t, "este producto es excelente", body.CorrectedText)
	assert.NotEmpty(t, body.Suggestions)
	assert.Greater(t, body.ProcessingTime, 0.0)
	assert.Equal(t, "signed", body.MethodInfo.Scale)
}

func TestValidateHandler_ProfaneText(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/validate", request.ValidateRequest{
		Text: "Eres un pendejo",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.ValidateResponse
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.True(t, body.IsOffensive)
	assert.True(t, body.HasProfanity)
	assert.Equal(t, 1, body.ProfanityCount)
	assert.Equal(t, "Eres un persona", body.CorrectedText)
	assert.LessOrEqual(t, body.Confidence, 1.0)
	assert.GreaterOrEqual(t, body.Confidence, 0.0)
}

func TestValidateHandler_ExplicitMethod(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/validate", request.ValidateRequest{
		Text:            "hola mundo",
		SentimentMethod: "lexicon_es",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.ValidateResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "lexicon_es", body.SentimentMethod)
}

func TestValidateHandler_UnknownMethod(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/validate", request.ValidateRequest{
		Text:            "hola mundo",
		SentimentMethod: "gpt4",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	message := errorMessage(t, raw)
	assert.Contains(t, message, "gpt4")
	assert.Contains(t, message, "bert_multilingual")
	assert.Contains(t, message, "vader")
	assert.Contains(t, message, "lexicon_es")
}

func TestValidateHandler_InvalidText(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name    string
		text    string
		message string
	}{
		{"empty", "", "el texto no puede estar vacío"},
		{"too long", strings.Repeat("a", 1001), "el texto es demasiado largo"},
		{"forbidden characters", "<script>alert(1)</script>", "el texto contiene caracteres no permitidos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, raw := doJSON(t, app, http.MethodPost, "/validate", request.ValidateRequest{Text: tt.text})
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, errorMessage(t, raw), tt.message)
		})
	}
}

func TestValidateHandler_RegionalLanguageTag(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/validate", request.ValidateRequest{
		Text:     "hola mundo",
		Language: "es-MX",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.ValidateResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "hola mundo", body.OriginalText)
}

func TestValidateHandler_MalformedLanguageCode(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/validate", request.ValidateRequest{
		Text:     "hola mundo",
		Language: "e",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "código de idioma inválido", errorMessage(t, raw))
}

func TestValidateHandler_MalformedBody(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/validate", "not an object")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
