package moderation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vportella/textgate/pkg/domain"
)

// Markup-looking characters are rejected outright; this API feeds social
// feeds, not HTML renderers.
var forbiddenCharacters = regexp.MustCompile(`[<>{}\[\]]`)

// RequestValidator enforces the input constraints on a single text. All
// violations accumulate; callers usually report the first.
type RequestValidator struct {
	maxLength int
}

func NewRequestValidator(maxLength int) *RequestValidator {
	return &RequestValidator{maxLength: maxLength}
}

func (v *RequestValidator) Validate(text string) error {
	var messages []string

	if strings.TrimSpace(text) == "" {
		messages = append(messages, domain.ErrEmptyText.Error())
	}
	if utf8.RuneCountInString(text) > v.maxLength {
		messages = append(messages, fmt.Sprintf("%s (máximo %d caracteres)", domain.ErrTextTooLong.Error(), v.maxLength))
	}
	if forbiddenCharacters.MatchString(text) {
		messages = append(messages, domain.ErrForbiddenCharacters.Error())
	}

	if len(messages) > 0 {
		return domain.NewValidationError(messages)
	}
	return nil
}
