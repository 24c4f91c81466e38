package server

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"zonearena/game"
)

// LogConfig 日志文件与滚动策略
type LogConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
}

// Config 服务端配置；Round 只作为新开局的默认值
type Config struct {
	Addr       string
	WebDir     string
	TickHz     int
	InputQueue int
	Log        LogConfig
	Round      game.Settings
}

var cfgMu sync.RWMutex

func setDefaults() {
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("web.dir", "web")
	viper.SetDefault("tick.hz", 60)
	viper.SetDefault("input.queue", 256)

	viper.SetDefault("log.file", "app.log")
	viper.SetDefault("log.level", "debug")
	viper.SetDefault("log.maxSizeMB", 10)
	viper.SetDefault("log.maxBackups", 3)
	viper.SetDefault("log.maxAgeDays", 7)

	viper.SetDefault("round.quality", 1.0)
	viper.SetDefault("round.hardcore", false)
}

// LoadConfig 读取 configDir 下的 zonearena.yaml（可选）并设置默认值，
// 环境变量 ZONEARENA_* 优先级更高
func LoadConfig(configDir string) error {
	cfgMu.Lock()
	defer cfgMu.Unlock()

	setDefaults()
	viper.SetEnvPrefix("zonearena")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("zonearena")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if _, err := game.ParseQuality(viper.GetFloat64("round.quality")); err != nil {
		return fmt.Errorf("round.quality: %w", err)
	}
	if viper.GetInt("tick.hz") <= 0 {
		return fmt.Errorf("tick.hz must be > 0, got %d", viper.GetInt("tick.hz"))
	}
	return nil
}

// CurrentConfig 返回当前配置的副本
func CurrentConfig() Config {
	cfgMu.RLock()
	defer cfgMu.RUnlock()

	// 逐键读取，嵌套默认值才会和配置文件合并
	lc := LogConfig{
		File:       viper.GetString("log.file"),
		Level:      viper.GetString("log.level"),
		MaxSizeMB:  viper.GetInt("log.maxSizeMB"),
		MaxBackups: viper.GetInt("log.maxBackups"),
		MaxAgeDays: viper.GetInt("log.maxAgeDays"),
	}
	return Config{
		Addr:       viper.GetString("addr"),
		WebDir:     viper.GetString("web.dir"),
		TickHz:     viper.GetInt("tick.hz"),
		InputQueue: viper.GetInt("input.queue"),
		Log:        lc,
		Round:      roundDefaults(),
	}
}

// RoundDefaults 新开局的默认设置
func RoundDefaults() game.Settings {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return roundDefaults()
}

func roundDefaults() game.Settings {
	q, err := game.ParseQuality(viper.GetFloat64("round.quality"))
	if err != nil {
		q = game.QualityLow
	}
	return game.Settings{Quality: q, Hardcore: viper.GetBool("round.hardcore")}
}

// SetRoundDefaults 仅影响之后新开的局
func SetRoundDefaults(s game.Settings) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	viper.Set("round.quality", float64(s.Quality))
	viper.Set("round.hardcore", s.Hardcore)
}

// SetAddr 命令行参数覆盖监听地址
func SetAddr(addr string) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	viper.Set("addr", addr)
}
