package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LavenderBridge/jazzdrill/internal/drill"
	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Quiz, cfg.Quiz)
	assert.Equal(t, "sqlite3", cfg.DatabaseDriver)
}

func TestLoadYAMLAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
database_driver: sqlite
database_path: /tmp/drill.db
profile: alice
logging:
  level: debug
  json: true
quiz:
  question_count: 20
  difficulty: advanced
  key_tier: hard
server:
  addr: ":9000"
  allowed_origins: ["https://example.org"]
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))
	t.Setenv("JAZZDRILL_PROFILE", "bob")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "/tmp/drill.db", cfg.DatabasePath)
	assert.Equal(t, "bob", cfg.Profile)
	assert.True(t, cfg.Logging.JSON)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, []string{"https://example.org"}, cfg.Server.AllowedOrigins)

	q := cfg.QuizDefaults()
	assert.Equal(t, drill.QuizConfig{Count: 20, Difficulty: theory.Advanced, KeyTier: drill.KeysHard}, q)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"driver":     "database_driver: postgres\n",
		"difficulty": "quiz:\n  difficulty: impossible\n",
		"key tier":   "quiz:\n  key_tier: lydian\n",
		"count":      "quiz:\n  question_count: 0\n",
		"syntax":     "quiz: [",
	}
	for name, yml := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(yml), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Profile = "carol"
	cfg.Quiz.KeyTier = "easy"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
