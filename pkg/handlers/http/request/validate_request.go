package request

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest is the body of POST /validate. Text constraints (empty,
// length, forbidden characters) are enforced by the moderation validator so
// the error messages accumulate; struct tags only cover field shape. The
// language field is informational, so anything tag-shaped passes, regional
// subtags included ("es-MX"); 35 is the BCP 47 length ceiling.
type ValidateRequest struct {
	Text            string `json:"text"`
	Language        string `json:"language" validate:"omitempty,min=2,max=35"`
	SentimentMethod string `json:"sentiment_method"`
}

func (r *ValidateRequest) Validate() error {
	return validate.Struct(r)
}

// ApplyDefaults fills the documented request defaults.
func (r *ValidateRequest) ApplyDefaults() {
	if r.Language == "" {
		r.Language = "es"
	}
}
