// Package config holds the command line configuration of zwq.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by zwq.
const EnvPrefix = "ZWQ"

// Config is the top-level configuration.
type Config struct {
	Log      LoggingConfig `mapstructure:"log"`
	Position int           `mapstructure:"position"`
	Seal     SealConfig    `mapstructure:"seal"`
}

// LoggingConfig is the configuration for the logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SealConfig holds the key material for sealing.
type SealConfig struct {
	Key  string `mapstructure:"key"`
	Salt string `mapstructure:"salt"`
}

// NewViper returns a viper instance reading ZWQ_ environment variables,
// e.g. ZWQ_LOG_LEVEL for log.level.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("position", -1)
	v.SetDefault("seal.key", "")
	v.SetDefault("seal.salt", "")
	return v
}

// BindFlag binds the flag named name to key.
func BindFlag(v *viper.Viper, key string, flags *pflag.FlagSet, name string) error {
	if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
		return fmt.Errorf("failed to bind flag %s: %w", name, err)
	}
	return nil
}

// ReadConfigFromViper unmarshals the configuration held by v.
func ReadConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &cfg, nil
}
