package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/LavenderBridge/jazzdrill/internal/db"
	"github.com/LavenderBridge/jazzdrill/internal/drill"
	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

// Config is the YAML configuration of the jazzdrill CLI and server.
type Config struct {
	DatabaseDriver string        `yaml:"database_driver"`
	DatabasePath   string        `yaml:"database_path"`
	Profile        string        `yaml:"profile"`
	Logging        LoggingConfig `yaml:"logging"`
	Quiz           QuizConfig    `yaml:"quiz"`
	Server         ServerConfig  `yaml:"server"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// QuizConfig holds the defaults for new quizzes.
type QuizConfig struct {
	QuestionCount int    `yaml:"question_count"`
	Difficulty    string `yaml:"difficulty"`
	KeyTier       string `yaml:"key_tier"`
}

// ServerConfig configures `jazzdrill serve`.
type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DefaultPath is ~/.jazzdrill/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".jazzdrill", "config.yaml"), nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	dbPath, err := db.DefaultPath()
	if err != nil {
		dbPath = "jazzdrill.db"
	}
	return &Config{
		DatabaseDriver: db.DriverCGO,
		DatabasePath:   dbPath,
		Profile:        db.DefaultProfile,
		Logging: LoggingConfig{
			Level: "warn",
		},
		Quiz: QuizConfig{
			QuestionCount: drill.DefaultQuestionCount,
			Difficulty:    theory.Beginner.String(),
			KeyTier:       string(drill.KeysAll),
		},
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("JAZZDRILL_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("JAZZDRILL_PROFILE"); v != "" {
		c.Profile = v
	}
	if v := os.Getenv("JAZZDRILL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate rejects values the rest of the program cannot use.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case db.DriverCGO, db.DriverPure:
	default:
		return fmt.Errorf("config: database_driver must be %q or %q, got %q", db.DriverCGO, db.DriverPure, c.DatabaseDriver)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("config: database_path is empty")
	}
	if c.Profile == "" {
		return fmt.Errorf("config: profile is empty")
	}
	if c.Quiz.QuestionCount < 1 || c.Quiz.QuestionCount > drill.MaxQuestionCount {
		return fmt.Errorf("config: quiz.question_count must be between 1 and %d", drill.MaxQuestionCount)
	}
	if _, err := theory.ParseDifficulty(c.Quiz.Difficulty); err != nil {
		return fmt.Errorf("config: quiz.difficulty: %w", err)
	}
	if len(drill.KeyTier(c.Quiz.KeyTier).Roots()) == 0 {
		return fmt.Errorf("config: unknown quiz.key_tier %q", c.Quiz.KeyTier)
	}
	return nil
}

// QuizDefaults converts the quiz section into drill filters.
func (c *Config) QuizDefaults() drill.QuizConfig {
	d, _ := theory.ParseDifficulty(c.Quiz.Difficulty)
	return drill.QuizConfig{
		Count:      c.Quiz.QuestionCount,
		Difficulty: d,
		KeyTier:    drill.KeyTier(c.Quiz.KeyTier),
	}
}
