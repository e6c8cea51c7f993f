package sentiment

import (
	"github.com/vportella/textgate/pkg/domain"
)

// Method identifies a scoring backend. The set is closed: requests naming
// anything else are rejected at the HTTP boundary.
type Method string

const (
	MethodBERTMultilingual Method = "bert_multilingual"
	MethodVader            Method = "vader"
	MethodLexiconES        Method = "lexicon_es"
)

func AllMethods() []Method {
	return []Method{MethodBERTMultilingual, MethodVader, MethodLexiconES}
}

func MethodNames() []string {
	methods := AllMethods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = string(m)
	}
	return names
}

// ParseMethod maps a request string onto the closed enum. Empty input picks
// the provided default.
func ParseMethod(raw string, def Method) (Method, error) {
	if raw == "" {
		return def, nil
	}
	switch Method(raw) {
	case MethodBERTMultilingual:
		return MethodBERTMultilingual, nil
	case MethodVader:
		return MethodVader, nil
	case MethodLexiconES:
		return MethodLexiconES, nil
	default:
		return "", domain.NewUnknownMethodError(raw, MethodNames())
	}
}
