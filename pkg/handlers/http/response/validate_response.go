package response

// MethodInfo describes the backend that produced a response.
type MethodInfo struct {
	Description string             `json:"description"`
	Model       string             `json:"model"`
	Scale       string             `json:"scale"`
	Local       bool               `json:"local"`
	Thresholds  map[string]float64 `json:"thresholds"`
}

// ValidateResponse is the wire shape of POST /validate.
type ValidateResponse struct {
	OriginalText    string     `json:"original_text"`
	IsOffensive     bool       `json:"is_offensive"`
	HasProfanity    bool       `json:"has_profanity"`
	EmotionScore    float64    `json:"emotion_score"`
	EmotionLabel    string     `json:"emotion_label"`
	ProfanityCount  int        `json:"profanity_count"`
	Suggestions     []string   `json:"suggestions"`
	CorrectedText   string     `json:"corrected_text"`
	Confidence      float64    `json:"confidence"`
	SentimentMethod string     `json:"sentiment_method"`
	MethodInfo      MethodInfo `json:"method_info"`
	ProcessingTime  float64    `json:"processing_time"`
}

// BatchResponse is the wire shape of POST /validate/batch. Per-item failures
// never fail the batch.
type BatchResponse struct {
	Method     string        `json:"method"`
	TotalTexts int           `json:"total_texts"`
	ValidTexts int           `json:"valid_texts"`
	Results    []BatchResult `json:"results"`
}

type BatchResult struct {
	Text           string   `json:"text"`
	IsOffensive    *bool    `json:"is_offensive,omitempty"`
	EmotionScore   *float64 `json:"emotion_score,omitempty"`
	EmotionLabel   string   `json:"emotion_label,omitempty"`
	ProfanityCount *int     `json:"profanity_count,omitempty"`
	Valid          bool     `json:"valid"`
	Error          string   `json:"error,omitempty"`
}

// HealthResponse is the wire shape of GET /health.
type HealthResponse struct {
	Status           string   `json:"status"`
	ModelsLoaded     bool     `json:"models_loaded"`
	GPUAvailable     bool     `json:"gpu_available"`
	AvailableMethods []string `json:"available_methods"`
	DefaultMethod    string   `json:"default_method"`
}
