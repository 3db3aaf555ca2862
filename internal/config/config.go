package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/session"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix is prepended to every environment variable, e.g.
// KEYDRILL_QUIZ_DIFFICULTY.
const EnvPrefix = "KEYDRILL"

// Config holds application configuration loaded from defaults, an optional
// YAML file, environment variables and command-line flags.
type Config struct {
	Quiz Quiz `mapstructure:"quiz"`
	Log  Log  `mapstructure:"log"`
}

// Quiz contains the initial quiz settings.
type Quiz struct {
	QuestionCount int           `mapstructure:"question_count"`
	Difficulty    string        `mapstructure:"difficulty"`
	Category      string        `mapstructure:"category"`       // empty means all categories
	FeedbackDelay time.Duration `mapstructure:"feedback_delay"` // pause before moving to the next question
}

// Log configures the file logger. The terminal belongs to the UI, so logs
// are written only when File is set.
type Log struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"count":          "quiz.question_count",
	"difficulty":     "quiz.difficulty",
	"category":       "quiz.category",
	"feedback-delay": "quiz.feedback_delay",
	"log-level":      "log.level",
	"log-file":       "log.file",
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Quiz: Quiz{
			QuestionCount: session.DefaultQuestionCount,
			Difficulty:    string(catalog.DifficultyMixed),
			FeedbackDelay: 1500 * time.Millisecond,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads configuration. file names an explicit YAML file; when empty,
// $XDG_CONFIG_HOME/keydrill/config.yaml is used if it exists. flags may be
// nil; only flags named in flagKeys are bound.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("quiz.question_count", def.Quiz.QuestionCount)
	v.SetDefault("quiz.difficulty", def.Quiz.Difficulty)
	v.SetDefault("quiz.category", def.Quiz.Category)
	v.SetDefault("quiz.feedback_delay", def.Quiz.FeedbackDelay.String())
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(dir, "keydrill"))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error loading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the quiz and log sections.
func (c *Config) Validate() error {
	var errs []string

	if c.Quiz.QuestionCount <= 0 {
		errs = append(errs, fmt.Sprintf("quiz.question_count must be positive, got %d", c.Quiz.QuestionCount))
	}
	if _, err := catalog.ParseDifficulty(c.Quiz.Difficulty); err != nil {
		errs = append(errs, "quiz.difficulty: "+err.Error())
	}
	if c.Quiz.Category != "" && !catalog.Category(c.Quiz.Category).Valid() {
		errs = append(errs, fmt.Sprintf("quiz.category: unknown category %q", c.Quiz.Category))
	}
	if c.Quiz.FeedbackDelay < 0 {
		errs = append(errs, fmt.Sprintf("quiz.feedback_delay must not be negative, got %s", c.Quiz.FeedbackDelay))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level: unknown level %q", c.Log.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  %s", ErrInvalid, strings.Join(errs, "\n  "))
	}
	return nil
}

// Settings converts the quiz section into session settings.
func (c *Config) Settings() session.Settings {
	return session.Settings{
		QuestionCount: c.Quiz.QuestionCount,
		Difficulty:    catalog.Difficulty(c.Quiz.Difficulty),
		Category:      catalog.Category(c.Quiz.Category),
	}
}
