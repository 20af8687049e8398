package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	OutputDir string   `mapstructure:"output_dir"`
	Date      string   `mapstructure:"date"`
	Count     int      `mapstructure:"count"`
	Width     int      `mapstructure:"width"`
	Height    int      `mapstructure:"height"`
	Color     string   `mapstructure:"color"`
	Quality   int      `mapstructure:"quality"`
	Make      string   `mapstructure:"make"`
	Model     string   `mapstructure:"model"`
	Software  string   `mapstructure:"software"`
	ImageExt  []string `mapstructure:"image_extensions"`
}

func LoadConfig() (*Config, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to find user config dir: %w", err)
	}

	viper.SetConfigName("fixturegen")
	viper.SetConfigType("toml")
	viper.AddConfigPath(filepath.Join(configDir, "fixturegen"))

	// Set defaults:
	viper.SetDefault("output_dir", "test_photos")
	viper.SetDefault("date", "2024:01:15 14:30:00")
	viper.SetDefault("count", 4)
	viper.SetDefault("width", 100)
	viper.SetDefault("height", 100)
	viper.SetDefault("color", "red")
	viper.SetDefault("quality", 85)
	viper.SetDefault("make", "Test Camera")
	viper.SetDefault("model", "Test Model")
	viper.SetDefault("software", "Test Script")
	viper.SetDefault("image_extensions", []string{".jpg", ".jpeg"})

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; that's OK, just use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SessionsDir returns the directory where generation session manifests live.
func SessionsDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to find user config dir: %w", err)
	}
	return filepath.Join(configDir, "fixturegen", "sessions"), nil
}
