package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/amterp/hue/internal/model"
	"github.com/joho/godotenv"
)

// EnvConfig holds settings taken from the environment.
type EnvConfig struct {
	ConfigPath  string // HUE_CONFIG: palette file to use instead of discovery
	Palette     string // HUE_PALETTE: overrides default_palette
	CodePalette string // HUE_CODE_PALETTE: overrides code_palette
	Host        string // HUE_HOST: interface the preview server binds to
	Accessible  bool   // HUE_ACCESSIBLE: plain-text prompts for screen readers
}

// LoadDotEnv loads dir/.env into the process environment if it exists.
// Variables already set are left alone.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// LoadEnv loads configuration from environment variables.
func LoadEnv() *EnvConfig {
	return &EnvConfig{
		ConfigPath:  getEnvOrDefault("HUE_CONFIG", ""),
		Palette:     getEnvOrDefault("HUE_PALETTE", ""),
		CodePalette: getEnvOrDefault("HUE_CODE_PALETTE", ""),
		Host:        getEnvOrDefault("HUE_HOST", "127.0.0.1"),
		Accessible:  getEnvBool("HUE_ACCESSIBLE"),
	}
}

// Apply overlays the environment's palette choices onto file settings.
func (e *EnvConfig) Apply(f *model.PaletteFile) {
	if e.Palette != "" {
		f.DefaultPalette = e.Palette
	}
	if e.CodePalette != "" {
		f.CodePalette = e.CodePalette
	}
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool treats any value strconv.ParseBool accepts as true as set.
func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
