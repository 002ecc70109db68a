// Package config turns flags, environment and the optional config file into a validated Config.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

const (
	KeyDebug         = "debug"
	KeyTruncateDebug = "truncate-debug"
	KeyStore         = "store"
	KeyTheme         = "theme"
	KeyMouse         = "mouse"
	KeyAltScreen     = "alt-screen"
	KeyLegacyGender  = "legacy-gender"
)

type Config struct {
	Debug         bool   `mapstructure:"debug"`
	TruncateDebug bool   `mapstructure:"truncate-debug"`
	Store         string `mapstructure:"store" validate:"required,oneof=discard memory"`
	Theme         string `mapstructure:"theme" validate:"required,oneof=dark light"`
	Mouse         bool   `mapstructure:"mouse"`
	AltScreen     bool   `mapstructure:"alt-screen"`
	LegacyGender  bool   `mapstructure:"legacy-gender"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyTruncateDebug, false)
	v.SetDefault(KeyStore, "discard")
	v.SetDefault(KeyTheme, "dark")
	v.SetDefault(KeyMouse, true)
	v.SetDefault(KeyAltScreen, true)
	v.SetDefault(KeyLegacyGender, false)
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("cannot decode configuration: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
