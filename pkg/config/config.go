package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Moderation ModerationConfig `mapstructure:"moderation"`
	Sentiment  SentimentConfig  `mapstructure:"sentiment"`
	Profanity  ProfanityConfig  `mapstructure:"profanity"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
	AllowMethods []string `mapstructure:"allow_methods"`
	AllowHeaders []string `mapstructure:"allow_headers"`
}

// ModerationConfig holds the static tables the pipeline reads: input limits,
// the verdict cutoff, the replacement dictionary and the suggestion templates.
type ModerationConfig struct {
	MaxTextLength      int     `mapstructure:"max_text_length"`
	MaxBatchSize       int     `mapstructure:"max_batch_size"`
	MaxSuggestions     int     `mapstructure:"max_suggestions"`
	LongTextThreshold  int     `mapstructure:"long_text_threshold"`
	OffensiveThreshold float64 `mapstructure:"offensive_threshold"`
	ProfanityPenalty   float64 `mapstructure:"profanity_penalty"`
	MaxPenalty         float64 `mapstructure:"max_penalty"`

	Replacements map[string]string   `mapstructure:"replacements"`
	Templates    SuggestionTemplates `mapstructure:"templates"`
}

type SuggestionTemplates struct {
	NegativeEmotion []string `mapstructure:"negative_emotion"`
	Profanity       []string `mapstructure:"profanity"`
	Length          []string `mapstructure:"length"`
	Positive        []string `mapstructure:"positive"`
}

type SentimentConfig struct {
	DefaultMethod string                  `mapstructure:"default_method"`
	Timeout       time.Duration           `mapstructure:"timeout"`
	Methods       map[string]MethodConfig `mapstructure:"methods"`
}

// MethodConfig describes one scoring backend: where it runs, its native
// scale and the cutoffs partitioning that scale into the five buckets.
type MethodConfig struct {
	Description string     `mapstructure:"description"`
	Model       string     `mapstructure:"model"`
	Scale       string     `mapstructure:"scale"` // "unit" ([0,1]) or "signed" ([-1,1])
	Local       bool       `mapstructure:"local"`
	Endpoint    string     `mapstructure:"endpoint"`
	LexiconFile string     `mapstructure:"lexicon_file"`
	EmojiFile   string     `mapstructure:"emoji_file"`
	Thresholds  Thresholds `mapstructure:"thresholds"`
}

// Thresholds are inclusive upper bounds, strictly increasing. Scores above
// Positive fall into the Very Positive bucket.
type Thresholds struct {
	VeryNegative float64 `mapstructure:"very_negative"`
	Negative     float64 `mapstructure:"negative"`
	Neutral      float64 `mapstructure:"neutral"`
	Positive     float64 `mapstructure:"positive"`
}

func (t Thresholds) Ordered() bool {
	return t.VeryNegative < t.Negative && t.Negative < t.Neutral && t.Neutral < t.Positive
}

type ProfanityConfig struct {
	Lexicon    []string `mapstructure:"lexicon"`
	ExtraTerms []string `mapstructure:"extra_terms"`
}

var globalConfig Config

func Load(configPath string) error {
	if err := loadConfigFile(configPath, "config", &globalConfig); err != nil {
		return err
	}
	setDefaultValues(&globalConfig)
	return validate(&globalConfig)
}

// LoadDefaults skips the config file entirely and fills every table with the
// built-in values. Used by tests and by deployments that configure through
// environment variables only.
func LoadDefaults() *Config {
	cfg := Config{}
	setDefaultValues(&cfg)
	return &cfg
}

func loadConfigFile(configPath, fileName string, out interface{}) error {
	viper.SetConfigName(fileName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// run on defaults + environment
			return nil
		}
		return fmt.Errorf("error reading config file %s.yaml: %w", fileName, err)
	}

	if err := viper.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal %s config: %w", fileName, err)
	}

	return nil
}

func validate(cfg *Config) error {
	if _, ok := cfg.Sentiment.Methods[cfg.Sentiment.DefaultMethod]; !ok {
		return fmt.Errorf("default_method %q is not a configured method", cfg.Sentiment.DefaultMethod)
	}
	for name, method := range cfg.Sentiment.Methods {
		if !method.Thresholds.Ordered() {
			return fmt.Errorf("thresholds for method %q are not strictly increasing", name)
		}
		if method.Scale != ScaleUnit && method.Scale != ScaleSigned {
			return fmt.Errorf("method %q has unknown scale %q", name, method.Scale)
		}
	}
	return nil
}

func GetConfig() *Config {
	return &globalConfig
}
