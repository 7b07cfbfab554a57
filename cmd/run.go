package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/neurobattle/internal/app"
	"github.com/abhisek/neurobattle/internal/bank"
	"github.com/abhisek/neurobattle/internal/config"
	"github.com/abhisek/neurobattle/internal/game"
	"github.com/abhisek/neurobattle/internal/logger"
)

// runApp loads config and the question bank, then launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	b, err := loadBank(cfg)
	if err != nil {
		return err
	}
	log.Info("bank loaded",
		zap.String("title", b.Title()),
		zap.String("version", b.Version()),
		zap.Int("questions", b.Len()),
	)

	ctrl := game.NewController(b,
		game.WithSeed(cfg.Seed),
		game.WithLogger(log),
	)

	return app.Run(app.Options{
		Controller: ctrl,
		AssetsDir:  cfg.AssetsDir,
		Logger:     log,
	})
}

// loadBank returns the configured bank file, or the embedded bank when no
// path is set.
func loadBank(cfg *config.Config) (*bank.Bank, error) {
	if cfg.BankPath == "" {
		b, err := bank.Load()
		if err != nil {
			return nil, fmt.Errorf("load embedded bank: %w", err)
		}
		return b, nil
	}
	b, err := bank.LoadFile(cfg.BankPath)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", cfg.BankPath, err)
	}
	return b, nil
}
