package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vportella/textgate/pkg/handlers/http/response"
)

func TestHealthHandler(t *testing.T) {
	app, _ := newTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body response.HealthResponse
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "healthy", body.Status)
	assert.True(t, body.ModelsLoaded)
	assert.False(t, body.GPUAvailable)
	assert.Equal(t, []string{"lexicon_es"}, body.AvailableMethods)
	assert.Equal(t, "lexicon_es", body.DefaultMethod)
}
