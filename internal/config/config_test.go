package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "discard", cfg.Store)
	assert.Equal(t, "dark", cfg.Theme)
	assert.True(t, cfg.Mouse)
	assert.True(t, cfg.AltScreen)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.LegacyGender)
}

func TestLoadOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyStore, "memory")
	v.Set(KeyTheme, "light")
	v.Set(KeyAltScreen, false)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, "light", cfg.Theme)
	assert.False(t, cfg.AltScreen)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown store", KeyStore, "postgres"},
		{"unknown theme", KeyTheme, "neon"},
		{"empty store", KeyStore, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.val)

			_, err := Load(v)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
