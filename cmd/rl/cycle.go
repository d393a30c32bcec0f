package main

import (
	"context"
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/conn-castle/release-layer/internal/changelog"
	"github.com/conn-castle/release-layer/internal/commits"
	"github.com/conn-castle/release-layer/internal/config"
	"github.com/conn-castle/release-layer/internal/hosting"
	"github.com/conn-castle/release-layer/internal/logging"
	"github.com/conn-castle/release-layer/internal/messages"
	"github.com/conn-castle/release-layer/internal/release"
)

// computePlan loads the repo config, builds the configured strategy, and
// runs one release cycle over the commits file. The returned logger is
// owned by the caller, which should Sync it before exiting.
func computePlan(ctx context.Context, repoRoot string, commitsPath string) (*release.Plan, *zap.Logger, error) {
	if commitsPath == "" {
		return nil, nil, errors.New(messages.PlanCommitsRequired)
	}

	paths := config.DefaultPaths(repoRoot)
	cfg, err := config.LoadConfig(paths.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return nil, nil, err
	}

	opts, err := cfg.StrategyOptions()
	if err != nil {
		return nil, logger, err
	}

	host, err := hosting.NewLocalHost(repoRoot, filepath.Base(repoRoot))
	if err != nil {
		return nil, logger, err
	}

	strat, err := release.New(cfg.Release.Strategy, release.Deps{
		Host:    host,
		Logger:  logger,
		Options: opts,
	})
	if err != nil {
		return nil, logger, err
	}

	cs, err := commits.ReadFile(commitsPath)
	if err != nil {
		return nil, logger, err
	}

	plan, err := release.Run(ctx, strat, cs, changelog.Render)
	if err != nil {
		return nil, logger, err
	}
	return plan, logger, nil
}
