package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"snapcal/internal/config"
	"snapcal/internal/estimator"
	"snapcal/internal/foodlog"
	"snapcal/internal/logging"
	"snapcal/internal/prefs"
	"snapcal/internal/ui"
)

// Options configure the snapcal application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/snapcal/prefs.toml
	ImagesDir  string // overrides the configured images directory
	DataDir    string // overrides the configured data directory
	Verbose    bool
}

// Run boots the snapcal TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.DataDir != "" {
		cfg.DataDir = opts.DataDir
	}
	if opts.ImagesDir != "" {
		cfg.ImagesDir = opts.ImagesDir
	}

	logger, err := logging.New(cfg.LogPath(), opts.Verbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	est, err := estimator.New(ctx, estimator.Config{
		APIKey:  config.APIKey(),
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		if errors.Is(err, estimator.ErrNoAPIKey) {
			return fmt.Errorf("%s is not set; export your Gemini API key before starting", config.APIKeyEnv)
		}
		return fmt.Errorf("init estimator: %w", err)
	}

	store := foodlog.Open(cfg.DataDir, logger)
	userPrefs := prefs.Load(opts.PrefsPath)

	logger.Info("snapcal starting",
		zap.String("data_dir", cfg.DataDir),
		zap.String("model", cfg.Model),
		zap.Int("entries", store.Len()))

	err = ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Analyzer:  est,
		Goals:     cfg.Goals,
		ImagesDir: cfg.ImagesDir,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    logger,
	})
	// Context cancellation (SIGINT/SIGTERM) is a normal shutdown.
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
