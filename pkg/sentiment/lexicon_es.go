package sentiment

import (
	"context"
	"strings"
	"unicode"
)

// LexiconESAnalyzer scores Spanish text by averaging per-word valences from
// an embedded lexicon. Deterministic and dependency-free, it keeps the
// service answering when no inference server is reachable.
type LexiconESAnalyzer struct {
	valences map[string]float64
}

func NewLexiconESAnalyzer() *LexiconESAnalyzer {
	return &LexiconESAnalyzer{valences: spanishValences}
}

func (a *LexiconESAnalyzer) Method() Method {
	return MethodLexiconES
}

func (a *LexiconESAnalyzer) Analyze(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	tokens := tokenizeSpanish(text)
	if len(tokens) == 0 {
		return Result{Score: 0, NativeLabel: "neutral", Confidence: 0}, nil
	}

	var sum float64
	matched := 0
	for _, token := range tokens {
		if valence, ok := a.valences[token]; ok {
			sum += valence
			matched++
		}
	}

	if matched == 0 {
		return Result{Score: 0, NativeLabel: "neutral", Confidence: 0}, nil
	}

	score := sum / float64(matched)
	if score > 1 {
		score = 1
	} else if score < -1 {
		score = -1
	}

	label := "neutral"
	switch {
	case score > 0.1:
		label = "positive"
	case score < -0.1:
		label = "negative"
	}

	// Coverage as confidence: the more words the lexicon recognizes, the
	// more the average means something.
	confidence := float64(matched) / float64(len(tokens))

	return Result{Score: score, NativeLabel: label, Confidence: confidence}, nil
}

func tokenizeSpanish(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// Word valences on [-1,1]. Small on purpose: this backend exists as a local
// fallback, not as a competitive model.
var spanishValences = map[string]float64{
	// positive
	"excelente":   0.9,
	"maravilloso": 0.9,
	"increíble":   0.8,
	"increible":   0.8,
	"perfecto":    0.8,
	"genial":      0.8,
	"encanta":     0.8,
	"encantar":    0.8,
	"fantástico":  0.8,
	"fantastico":  0.8,
	"bueno":       0.6,
	"buena":       0.6,
	"bien":        0.5,
	"feliz":       0.7,
	"alegre":      0.6,
	"gracias":     0.5,
	"útil":        0.5,
	"util":        0.5,
	"interesante": 0.5,
	"hermoso":     0.7,
	"hermosa":     0.7,
	"amor":        0.7,
	"mejor":       0.5,
	"éxito":       0.6,
	"exito":       0.6,
	"ayuda":       0.3,
	"calidad":     0.4,
	"brilla":      0.4,
	"sol":         0.2,

	// negative
	"horrible":      -0.9,
	"terrible":      -0.9,
	"pésimo":        -0.8,
	"pesimo":        -0.8,
	"odio":          -0.8,
	"odiar":         -0.8,
	"malo":          -0.6,
	"mala":          -0.6,
	"mal":           -0.5,
	"peor":          -0.6,
	"triste":        -0.6,
	"enojado":       -0.6,
	"enojada":       -0.6,
	"furioso":       -0.7,
	"molesto":       -0.5,
	"frustrado":     -0.6,
	"frustrada":     -0.6,
	"problema":      -0.3,
	"problemas":     -0.3,
	"error":         -0.4,
	"errores":       -0.4,
	"incompetente":  -0.7,
	"incompetentes": -0.7,
	"inútil":        -0.6,
	"inutil":        -0.6,
	"basura":        -0.7,
	"desastre":      -0.7,
	"fracaso":       -0.6,
	"feo":           -0.5,
	"fea":           -0.5,
	"nunca":         -0.2,
	"no":            -0.1,
}
