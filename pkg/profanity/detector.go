package profanity

import (
	"context"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"github.com/vportella/textgate/pkg/domain/analysis"
)

// Detector finds lexicon terms in free text. Matching runs over a
// normalized view (lowercase, leet speak simplified, punctuation and spacing
// stripped) while reported words keep their original spelling.
type Detector struct {
	matcher *goahocorasick.Machine
}

type textMapping struct {
	normalized []rune
	origIdx    []int
}

// NewDetector builds the Aho-Corasick automaton once, at startup.
func NewDetector(terms []string) (*Detector, error) {
	patterns := make([][]rune, 0, len(terms))
	for _, term := range terms {
		normalized := normalizeRunes([]rune(term))
		if len(normalized) == 0 {
			continue
		}
		patterns = append(patterns, normalized)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Detector{matcher: m}, nil
}

// Detect returns every lexicon hit in match order, duplicates included. A
// hit fully inside a longer hit is dropped, so "hijo de puta" counts once
// even though "puta" is its own lexicon entry. The returned words are the
// original substrings so the corrector can replace them literally.
func (d *Detector) Detect(ctx context.Context, text string) (analysis.ProfanitySignal, error) {
	if err := ctx.Err(); err != nil {
		return analysis.ProfanitySignal{Words: []string{}}, err
	}

	mapping := normalize(text)
	if len(mapping.normalized) == 0 {
		return analysis.ProfanitySignal{Words: []string{}}, nil
	}

	origRunes := []rune(text)
	spans := d.matcher.MultiPatternSearch(mapping.normalized, false)

	hits := make([]matchSpan, 0, len(spans))
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.origIdx) {
			continue
		}
		hits = append(hits, matchSpan{start: normStart, end: normEnd})
	}
	hits = dropContained(hits)

	words := make([]string, 0, len(hits))
	for _, h := range hits {
		origStart := mapping.origIdx[h.start]
		origEnd := mapping.origIdx[h.end-1] + 1
		words = append(words, string(origRunes[origStart:origEnd]))
	}

	return analysis.ProfanitySignal{Count: len(words), Words: words}, nil
}

type matchSpan struct {
	start, end int
}

// dropContained removes spans strictly inside a longer span. Match counts
// stay small, quadratic is fine.
func dropContained(hits []matchSpan) []matchSpan {
	kept := make([]matchSpan, 0, len(hits))
	for i, h := range hits {
		contained := false
		for j, other := range hits {
			if i == j {
				continue
			}
			longer := other.end-other.start > h.end-h.start
			if longer && other.start <= h.start && h.end <= other.end {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, h)
		}
	}
	return kept
}

// normalize produces the searchable view of the input and remembers where
// each kept rune came from.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return textMapping{normalized: norm, origIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune folds common leet-speak substitutions back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
