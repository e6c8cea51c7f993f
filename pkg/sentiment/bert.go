package sentiment

import (
	"context"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vportella/textgate/pkg/infra/httpx"
)

// The nlptown model rejects inputs beyond its token window; inputs are
// truncated to 512 characters before inference.
const bertMaxInputLen = 512

type bertInferenceRequest struct {
	Text string `json:"text"`
}

type bertInferenceResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// BERTAnalyzer calls a remote inference server hosting the multilingual
// star-rating model. The star count (1-5) is mapped onto [0,1].
type BERTAnalyzer struct {
	endpoint string
	client   *httpx.JSONClient
	breaker  httpx.CircuitBreaker
	logger   *logrus.Logger
}

func NewBERTAnalyzer(
	endpoint string,
	client *httpx.JSONClient,
	breaker httpx.CircuitBreaker,
	logger *logrus.Logger,
) *BERTAnalyzer {
	return &BERTAnalyzer{
		endpoint: endpoint,
		client:   client,
		breaker:  breaker,
		logger:   logger,
	}
}

func (a *BERTAnalyzer) Method() Method {
	return MethodBERTMultilingual
}

func (a *BERTAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	input := text
	// Truncate on runes, not bytes; a byte cut can split an accented
	// character and send a mangled tail to the model.
	if runes := []rune(input); len(runes) > bertMaxInputLen {
		input = string(runes[:bertMaxInputLen])
	}

	var resp bertInferenceResponse
	err := a.breaker.Execute(func() error {
		return a.client.Post(ctx, a.endpoint, bertInferenceRequest{Text: input}, &resp)
	})
	if err != nil {
		return Result{}, err
	}

	stars, err := parseStarLabel(resp.Label)
	if err != nil {
		a.logger.WithError(err).WithField("label", resp.Label).Warn("unexpected label from inference server")
		return Result{}, err
	}

	return Result{
		Score:       float64(stars) / 5.0,
		NativeLabel: resp.Label,
		Confidence:  resp.Score,
	}, nil
}

// parseStarLabel reads labels like "4 stars" or "1 star".
func parseStarLabel(label string) (int, error) {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0, &labelFormatError{label: label}
	}
	stars, err := strconv.Atoi(fields[0])
	if err != nil || stars < 1 || stars > 5 {
		return 0, &labelFormatError{label: label}
	}
	return stars, nil
}

type labelFormatError struct {
	label string
}

func (e *labelFormatError) Error() string {
	return "unparseable star label: " + e.label
}
