package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"snapcal/internal/nutrition"
)

// Config captures the fields snapcal reads at startup. The estimation
// API key deliberately never lives in this file; it comes from the
// environment (see APIKey).
type Config struct {
	Model     string
	DataDir   string
	ImagesDir string
	Timeout   time.Duration
	Goals     nutrition.Goal
}

const (
	defaultConfigPath = "~/.config/snapcal/config.toml"
	defaultDataDir    = "~/.local/share/snapcal"
	defaultImagesDir  = "~/Pictures"
	defaultModel      = "gemini-2.5-flash"
	defaultTimeoutSec = 30

	// APIKeyEnv names the environment variable holding the Gemini
	// credential.
	APIKeyEnv = "GEMINI_API_KEY"
)

// APIKey returns the estimation service credential from the
// environment, empty when unset.
func APIKey() string {
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}

// Load locates and parses the snapcal config, falling back to defaults
// when the file is missing. Zero or missing goal fields fall back to
// the built-in targets individually.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Model      string         `toml:"model"`
		DataDir    string         `toml:"data_dir"`
		ImagesDir  string         `toml:"images_dir"`
		TimeoutSec int            `toml:"timeout_seconds"`
		Goals      nutrition.Goal `toml:"goals"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if model := strings.TrimSpace(raw.Model); model != "" {
		cfg.Model = model
	}
	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = mustExpand(dir)
	}
	if dir := strings.TrimSpace(raw.ImagesDir); dir != "" {
		cfg.ImagesDir = mustExpand(dir)
	}
	if raw.TimeoutSec > 0 {
		cfg.Timeout = time.Duration(raw.TimeoutSec) * time.Second
	}
	cfg.Goals = mergeGoals(raw.Goals)

	return cfg, nil
}

// LogPath returns the diagnostic log file location.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "snapcal.log")
}

func defaults() Config {
	return Config{
		Model:     defaultModel,
		DataDir:   mustExpand(defaultDataDir),
		ImagesDir: mustExpand(defaultImagesDir),
		Timeout:   defaultTimeoutSec * time.Second,
		Goals:     nutrition.DefaultGoal(),
	}
}

// mergeGoals treats zero or negative targets as unset.
func mergeGoals(goals nutrition.Goal) nutrition.Goal {
	merged := nutrition.DefaultGoal()
	if goals.Calories > 0 {
		merged.Calories = goals.Calories
	}
	if goals.Protein > 0 {
		merged.Protein = goals.Protein
	}
	if goals.Carbs > 0 {
		merged.Carbs = goals.Carbs
	}
	if goals.Fat > 0 {
		merged.Fat = goals.Fat
	}
	return merged
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
