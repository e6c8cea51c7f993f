package config

import "time"

const (
	ScaleUnit   = "unit"
	ScaleSigned = "signed"

	MethodBERTMultilingual = "bert_multilingual"
	MethodVader            = "vader"
	MethodLexiconES        = "lexicon_es"
)

func setDefaultValues(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.MetricsPort == 0 {
		cfg.Server.MetricsPort = 9090
	}
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{"*"}
	}
	if len(cfg.CORS.AllowMethods) == 0 {
		cfg.CORS.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(cfg.CORS.AllowHeaders) == 0 {
		cfg.CORS.AllowHeaders = []string{"*"}
	}

	setModerationDefaults(&cfg.Moderation)
	setSentimentDefaults(&cfg.Sentiment)
	if len(cfg.Profanity.Lexicon) == 0 {
		cfg.Profanity.Lexicon = defaultProfanityLexicon()
	}
	cfg.Profanity.Lexicon = append(cfg.Profanity.Lexicon, cfg.Profanity.ExtraTerms...)
}

func setModerationDefaults(m *ModerationConfig) {
	if m.MaxTextLength == 0 {
		m.MaxTextLength = 1000
	}
	if m.MaxBatchSize == 0 {
		m.MaxBatchSize = 50
	}
	if m.MaxSuggestions == 0 {
		m.MaxSuggestions = 5
	}
	if m.LongTextThreshold == 0 {
		m.LongTextThreshold = 280 // Twitter-length cutoff
	}
	if m.OffensiveThreshold == 0 {
		m.OffensiveThreshold = 0.4
	}
	if m.ProfanityPenalty == 0 {
		m.ProfanityPenalty = 0.1
	}
	if m.MaxPenalty == 0 {
		m.MaxPenalty = 0.3
	}
	if len(m.Replacements) == 0 {
		m.Replacements = defaultReplacements()
	}
	if len(m.Templates.NegativeEmotion) == 0 {
		m.Templates.NegativeEmotion = []string{
			"Considera usar palabras más positivas y constructivas",
			"Evita términos que puedan generar emociones negativas",
			"Enfócate en soluciones en lugar de problemas",
			"Usa un tono más optimista y motivador",
		}
	}
	if len(m.Templates.Profanity) == 0 {
		m.Templates.Profanity = []string{
			"Reemplaza las groserías con palabras más apropiadas",
			"Usa un lenguaje más profesional y respetuoso",
			"Considera el impacto de tus palabras en diferentes audiencias",
			"Mantén un tono respetuoso y constructivo",
		}
	}
	if len(m.Templates.Length) == 0 {
		m.Templates.Length = []string{
			"El texto es muy largo, considera dividirlo en partes",
			"Mantén tu mensaje conciso y directo",
			"Considera usar hilos para textos extensos",
		}
	}
	if len(m.Templates.Positive) == 0 {
		m.Templates.Positive = []string{
			"Tu texto está bien escrito y es apropiado para redes sociales",
			"Excelente tono y contenido para compartir",
			"Mantén este nivel de calidad en tus publicaciones",
		}
	}
}

func setSentimentDefaults(s *SentimentConfig) {
	if s.DefaultMethod == "" {
		s.DefaultMethod = MethodBERTMultilingual
	}
	if s.Timeout == 0 {
		s.Timeout = 5 * time.Second
	}
	if s.Methods == nil {
		s.Methods = map[string]MethodConfig{}
	}
	if _, ok := s.Methods[MethodBERTMultilingual]; !ok {
		s.Methods[MethodBERTMultilingual] = MethodConfig{
			Description: "Transformer multilingüe (estrellas 1-5) servido por inferencia remota",
			Model:       "nlptown/bert-base-multilingual-uncased-sentiment",
			Scale:       ScaleUnit,
			Local:       false,
			Endpoint:    "http://localhost:8080/predict",
			Thresholds: Thresholds{
				VeryNegative: 0.2,
				Negative:     0.4,
				Neutral:      0.6,
				Positive:     0.8,
			},
		}
	}
	if _, ok := s.Methods[MethodVader]; !ok {
		s.Methods[MethodVader] = MethodConfig{
			Description: "VADER (reglas y léxico, score compuesto)",
			Model:       "vader-lexicon",
			Scale:       ScaleSigned,
			Local:       true,
			LexiconFile: "data/vader_lexicon.txt",
			EmojiFile:   "data/emoji_utf8_lexicon.txt",
			Thresholds: Thresholds{
				VeryNegative: -0.6,
				Negative:     -0.2,
				Neutral:      0.2,
				Positive:     0.6,
			},
		}
	}
	if _, ok := s.Methods[MethodLexiconES]; !ok {
		s.Methods[MethodLexiconES] = MethodConfig{
			Description: "Léxico de valencias en español (promedio de palabras)",
			Model:       "lexicon-es-v1",
			Scale:       ScaleSigned,
			Local:       true,
			Thresholds: Thresholds{
				VeryNegative: -0.6,
				Negative:     -0.2,
				Neutral:      0.2,
				Positive:     0.6,
			},
		}
	}
}

func defaultReplacements() map[string]string {
	return map[string]string{
		"puta":         "persona",
		"mierda":       "problema",
		"cabrón":       "persona",
		"gilipollas":   "persona",
		"hijo de puta": "persona",
		"coño":         "expresión",
		"joder":        "expresión",
		"follar":       "expresión",
		"polla":        "expresión",
		"pene":         "expresión",
		"vagina":       "expresión",
		"teta":         "expresión",
		"culo":         "expresión",
		"pendejo":      "persona",
		"pendeja":      "persona",
		"güey":         "amigo",
		"wey":          "amigo",
		"guey":         "amigo",
		"carajo":       "expresión",
		"verga":        "expresión",
		"chingar":      "expresión",
		"pinche":       "expresión",
		"chingada":     "expresión",
	}
}

func defaultProfanityLexicon() []string {
	return []string{
		"puta", "puto", "mierda", "cabrón", "cabron", "gilipollas",
		"hijo de puta", "coño", "joder", "follar", "polla", "pene",
		"vagina", "teta", "culo", "pendejo", "pendeja", "güey", "wey",
		"guey", "carajo", "verga", "chingar", "pinche", "chingada",
		"imbécil", "imbecil", "idiota", "estúpido", "estupido", "marica",
		"maricón", "maricon", "zorra", "perra", "cojones", "hostia",
		"capullo", "mamón", "mamon", "huevón", "huevon", "boludo",
		"pelotudo", "concha", "malparido", "gonorrea", "pirobo",
	}
}
