package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"labsim/labware"
)

// Config is the optional labsim config file: a default preset for
// describe, plus user-defined geometries merged over the built-in
// catalog.
type Config struct {
	DefaultPreset string                    `mapstructure:"defaultPreset"`
	Presets       map[string]labware.Preset `mapstructure:"presets"`
}

func loadConfig() (*Config, error) {
	v := viper.New()
	switch {
	case cfgFile != "":
		v.SetConfigFile(cfgFile)
	case os.Getenv("LABSIM_CONFIG") != "":
		v.SetConfigFile(os.Getenv("LABSIM_CONFIG"))
	default:
		v.SetConfigName("labsim")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home + "/.config/labsim")
		}
	}
	v.SetEnvPrefix("LABSIM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}
