package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wrm/internal/config"
	"github.com/cory-johannsen/wrm/internal/content"
	"github.com/cory-johannsen/wrm/internal/game/dice"
	"github.com/cory-johannsen/wrm/internal/game/session"
	"github.com/cory-johannsen/wrm/internal/observability"
)

type rootOptions struct {
	configPath string
	contentDir string
	seed       int64
}

// app is everything a subcommand needs, built once per invocation.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	session *session.Session
}

func (o *rootOptions) loadConfig(cmd *cobra.Command) (config.Config, error) {
	var (
		cfg config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.Load(o.configPath)
	} else {
		cfg, err = config.Default()
	}
	if err != nil {
		return config.Config{}, err
	}
	if o.contentDir != "" {
		cfg.Content.Dir = o.contentDir
	}
	if cmd.Flags().Changed("seed") {
		cfg.Dice.Source = "seeded"
		cfg.Dice.Seed = o.seed
	}
	return cfg, nil
}

func (o *rootOptions) build(cmd *cobra.Command) (*app, error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	var c *content.Content
	if cfg.Content.Dir != "" {
		c, err = content.Load(os.DirFS(cfg.Content.Dir))
	} else {
		c, err = content.LoadEmbedded()
	}
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	logger.Debug("content loaded",
		zap.String("dir", cfg.Content.Dir),
		zap.Int("items", len(c.Items.AllItems())),
		zap.Int("spells", len(c.Spells)),
		zap.Int("npcs", len(c.NPCs)),
	)

	s, err := session.New(session.Deps{
		Content:   c,
		Source:    newSource(cfg.Dice),
		Rules:     cfg.Rules.Rules(),
		MaxRounds: cfg.Session.MaxRounds,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, session: s}, nil
}

func newSource(cfg config.DiceConfig) dice.Source {
	if cfg.Source == "seeded" {
		return dice.NewSeededSource(cfg.Seed)
	}
	return dice.NewCryptoSource()
}
