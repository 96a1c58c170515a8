package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vancomm/minesweeper/internal/mines"
)

const envPrefix = "SWEEPER"

type Log struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type Config struct {
	Difficulty  string           `mapstructure:"difficulty"`
	Custom      mines.GameParams `mapstructure:"custom"`
	Seed        uint64           `mapstructure:"seed"`
	Development bool             `mapstructure:"development"`
	Log         Log              `mapstructure:"log"`
}

var defaults = map[string]any{
	"difficulty":       "moderate",
	"custom.size":      0,
	"custom.mines":     0,
	"seed":             0,
	"development":      false,
	"log.level":        "info",
	"log.file":         "",
	"log.max_size_mb":  10,
	"log.max_backups":  3,
	"log.max_age_days": 28,
}

// config keys bound to command line flags
var flagKeys = map[string]string{
	"difficulty":   "difficulty",
	"custom.size":  "size",
	"custom.mines": "mines",
	"seed":         "seed",
	"development":  "dev",
	"log.level":    "log-level",
	"log.file":     "log-file",
}

func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "config file path")
	fs.StringP("difficulty", "d", "moderate", "easy, moderate, hard or custom")
	fs.Int("size", 0, "grid size of the custom difficulty")
	fs.Int("mines", 0, "mine count of the custom difficulty")
	fs.Uint64("seed", 0, "mine placement seed (0 picks a random one)")
	fs.Bool("dev", false, "development mode (debug logging)")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-file", "", "also write JSON logs to this rotated file")
	return fs
}

// Load merges defaults, an optional YAML config file, SWEEPER_* environment
// variables and the already parsed flags, in increasing precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("unable to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readConfigFile(v, fs); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, fs *pflag.FlagSet) error {
	var path string
	if fs != nil {
		path, _ = fs.GetString("config")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("sweeper")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("unable to read config: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	d, err := c.Preset()
	if err != nil {
		return err
	}
	if d == mines.Custom {
		if err := c.Custom.Validate(); err != nil {
			return fmt.Errorf("custom difficulty: %w", err)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

func (c Config) Preset() (mines.Difficulty, error) {
	return mines.ParseDifficulty(c.Difficulty)
}

func (c Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	if c.Development {
		level = min(level, slog.LevelDebug)
	}
	return level, nil
}

// [Config] implements [slog.LogValuer]
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("difficulty", c.Difficulty),
		slog.String("custom", c.Custom.String()),
		slog.Uint64("seed", c.Seed),
		slog.Bool("development", c.Development),
		slog.String("log_level", c.Log.Level),
		slog.String("log_file", c.Log.File),
	)
}
