package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func validConfig() Config {
	return Config{
		Match:    MatchConfig{MaxRounds: 3},
		Opponent: OpponentConfig{Aggression: 0.25},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3, cfg.Match.MaxRounds)
	assert.InDelta(t, 0.25, cfg.Opponent.Aggression, 1e-9)
}

func TestValidate_MaxRounds(t *testing.T) {
	cfg := validConfig()
	cfg.Match.MaxRounds = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_AggressionBounds(t *testing.T) {
	for _, bad := range []float64{-0.1, 1.1, 2} {
		cfg := validConfig()
		cfg.Opponent.Aggression = bad
		assert.Error(t, cfg.Validate(), "aggression %v", bad)
	}
	for _, ok := range []float64{0, 0.5, 1} {
		cfg := validConfig()
		cfg.Opponent.Aggression = ok
		assert.NoError(t, cfg.Validate(), "aggression %v", ok)
	}
}

func TestValidate_Logging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "trace"
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Logging.Format = "xml"
	assert.Error(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
match:
  max_rounds: 5

opponent:
  aggression: 0.5

logging:
  level: debug
  format: json
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Match.MaxRounds)
	assert.InDelta(t, 0.5, cfg.Opponent.Aggression, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile_DefaultsFillGaps(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
match:
  max_rounds: 7
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Match.MaxRounds)
	assert.InDelta(t, 0.25, cfg.Opponent.Aggression, 1e-9)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yaml")
	err := os.WriteFile(path, []byte(`
match:
  max_rounds: -1
`), 0o600)
	require.NoError(t, err)

	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate_MaxRoundsProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cfg := validConfig()
		cfg.Match.MaxRounds = rapid.IntRange(1, 1000).Draw(rt, "max_rounds")
		assert.NoError(t, cfg.Validate())
	})
	rapid.Check(t, func(rt *rapid.T) {
		cfg := validConfig()
		cfg.Match.MaxRounds = rapid.IntRange(-1000, 0).Draw(rt, "max_rounds")
		assert.Error(t, cfg.Validate())
	})
}
