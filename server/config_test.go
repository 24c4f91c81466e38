package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"zonearena/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zonearena.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, LoadConfig(t.TempDir()))

	cfg := CurrentConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "web", cfg.WebDir)
	assert.Equal(t, 60, cfg.TickHz)
	assert.Equal(t, 256, cfg.InputQueue)
	assert.Equal(t, game.DefaultSettings(), cfg.Round)
	assert.Equal(t, LogConfig{File: "app.log", Level: "debug", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 7}, cfg.Log)
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	dir := writeConfig(t, `
addr: ":9090"
tick:
  hz: 30
round:
  quality: 2
  hardcore: true
log:
  level: info
  maxBackups: 5
`)
	require.NoError(t, LoadConfig(dir))

	cfg := CurrentConfig()
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 30, cfg.TickHz)
	assert.Equal(t, game.Settings{Quality: game.QualityHigh, Hardcore: true}, cfg.Round)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.Equal(t, 7, cfg.Log.MaxAgeDays)
	assert.Equal(t, "app.log", cfg.Log.File)
}

func TestLoadConfig_PartialLogSectionKeepsDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, LoadConfig(writeConfig(t, "log:\n  level: warn\n")))

	assert.Equal(t, LogConfig{File: "app.log", Level: "warn", MaxSizeMB: 10, MaxBackups: 3, MaxAgeDays: 7},
		CurrentConfig().Log)
}

func TestLoadConfig_EnvWins(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("ZONEARENA_TICK_HZ", "20")
	dir := writeConfig(t, "tick:\n  hz: 30\n")
	require.NoError(t, LoadConfig(dir))
	assert.Equal(t, 20, CurrentConfig().TickHz)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("quality", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		err := LoadConfig(writeConfig(t, "round:\n  quality: 1.2\n"))
		require.Error(t, err)
		assert.ErrorIs(t, err, game.ErrInvalidQuality)
	})
	t.Run("tick rate", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		assert.Error(t, LoadConfig(writeConfig(t, "tick:\n  hz: 0\n")))
	})
	t.Run("malformed yaml", func(t *testing.T) {
		t.Cleanup(viper.Reset)
		assert.Error(t, LoadConfig(writeConfig(t, "tick: [\n")))
	})
}

func TestSetRoundDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)
	require.NoError(t, LoadConfig(t.TempDir()))

	SetRoundDefaults(game.Settings{Quality: game.QualityUltra, Hardcore: true})
	SetAddr(":7000")

	cfg := CurrentConfig()
	assert.Equal(t, game.Settings{Quality: game.QualityUltra, Hardcore: true}, cfg.Round)
	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, cfg.Round, RoundDefaults())
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { Log = zap.NewNop().Sugar() })
	path := filepath.Join(t.TempDir(), "arena.log")

	require.NoError(t, InitLogger(LogConfig{File: path, Level: "info", MaxSizeMB: 1}))
	Log.Infof("hello %s", "arena")
	SyncLogger()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "hello arena")

	assert.Error(t, InitLogger(LogConfig{File: path, Level: "loud"}))
}
