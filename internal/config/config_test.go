package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfigFromViper(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := ReadConfigFromViper(NewViper())
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, -1, cfg.Position)
		assert.Empty(t, cfg.Seal.Key)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("ZWQ_LOG_LEVEL", "debug")
		t.Setenv("ZWQ_POSITION", "4")
		t.Setenv("ZWQ_SEAL_KEY", "k")
		t.Setenv("ZWQ_SEAL_SALT", "s")

		cfg, err := ReadConfigFromViper(NewViper())
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 4, cfg.Position)
		assert.Equal(t, "k", cfg.Seal.Key)
		assert.Equal(t, "s", cfg.Seal.Salt)
	})

	t.Run("flags", func(t *testing.T) {
		v := NewViper()
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Int("position", -1, "")
		require.NoError(t, BindFlag(v, "position", flags, "position"))
		require.NoError(t, flags.Parse([]string{"--position", "7"}))

		cfg, err := ReadConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Position)
	})

	t.Run("unknown flag", func(t *testing.T) {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		assert.Error(t, BindFlag(NewViper(), "position", flags, "missing"))
	})
}
