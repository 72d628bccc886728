package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for zrc2020
type Config struct {
	Validation ValidationConfig `mapstructure:"validation"`
}

// ValidationConfig holds submission validation options
type ValidationConfig struct {
	// ManifestDir overrides the embedded manifest bundle. When set, manifests
	// are resolved as <manifest_dir>/<language>/<kind>_filelist.txt.
	ManifestDir string `mapstructure:"manifest_dir"`

	// StrictEmbeddings makes the embedding reader abort on the first
	// malformed file instead of accumulating errors.
	StrictEmbeddings bool `mapstructure:"strict_embeddings"`

	// AudioExtension selects which manifest entries get their headers checked.
	AudioExtension string `mapstructure:"audio_extension"`
}

var defaultConfig = Config{
	Validation: ValidationConfig{
		ManifestDir:      "",
		StrictEmbeddings: false,
		AudioExtension:   ".wav",
	},
}

// LoadConfig loads configuration from file, environment and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("validation.manifest_dir", defaultConfig.Validation.ManifestDir)
	v.SetDefault("validation.strict_embeddings", defaultConfig.Validation.StrictEmbeddings)
	v.SetDefault("validation.audio_extension", defaultConfig.Validation.AudioExtension)

	// Configuration file search paths
	v.SetConfigName(".zrc2020")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	// Environment variables
	v.SetEnvPrefix("ZRC2020")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Try to read config file (optional); ignore error to use defaults
	_ = v.ReadInConfig()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %v", err)
	}

	return &config, nil
}

// GetValidationConfig returns the validation section
func (c *Config) GetValidationConfig() ValidationConfig { return c.Validation }
