package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database  DatabaseConfig
	Data      DataConfig
	UI        UIConfig
	Animation AnimationConfig
}

// DatabaseConfig holds sqlite cache settings.
type DatabaseConfig struct {
	Path string
}

// DataConfig points at the directory holding the provider CSV exports.
type DataConfig struct {
	Dir string
}

// UIConfig holds default selections.
type UIConfig struct {
	DefaultEntity string `mapstructure:"default_entity"`
}

// AnimationConfig holds the tick delays of the two play loops, in
// milliseconds.
type AnimationConfig struct {
	PyramidTickMs int `mapstructure:"pyramid_tick_ms"`
	MedianTickMs  int `mapstructure:"median_tick_ms"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix POPVIZ_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "popviz", "popviz.db"))
	v.SetDefault("data.dir", "data")
	v.SetDefault("ui.default_entity", "World")
	v.SetDefault("animation.pyramid_tick_ms", 50)
	v.SetDefault("animation.median_tick_ms", 250)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("POPVIZ_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "popviz"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("POPVIZ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return normalize(c), nil
}

// normalize clamps nonsensical values back to defaults rather than
// failing startup over a cosmetic setting.
func normalize(c Config) Config {
	if c.Animation.PyramidTickMs <= 0 {
		c.Animation.PyramidTickMs = 50
	}
	if c.Animation.MedianTickMs <= 0 {
		c.Animation.MedianTickMs = 250
	}
	if strings.TrimSpace(c.UI.DefaultEntity) == "" {
		c.UI.DefaultEntity = "World"
	}
	return c
}

// PyramidTickDelay returns the fast loop delay as a duration.
func (c Config) PyramidTickDelay() time.Duration {
	return time.Duration(c.Animation.PyramidTickMs) * time.Millisecond
}

// MedianTickDelay returns the slow loop delay as a duration.
func (c Config) MedianTickDelay() time.Duration {
	return time.Duration(c.Animation.MedianTickMs) * time.Millisecond
}
