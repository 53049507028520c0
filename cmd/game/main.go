// Package main provides the interactive High Wizardry game client.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/highwizardry/internal/cli"
	"github.com/cory-johannsen/highwizardry/internal/config"
	"github.com/cory-johannsen/highwizardry/internal/game/combat"
	"github.com/cory-johannsen/highwizardry/internal/game/dice"
	"github.com/cory-johannsen/highwizardry/internal/game/item"
	"github.com/cory-johannsen/highwizardry/internal/game/property"
	"github.com/cory-johannsen/highwizardry/internal/observability"
	"github.com/cory-johannsen/highwizardry/internal/storage/leaderboard"
	"github.com/cory-johannsen/highwizardry/internal/storage/postgres"
	"github.com/cory-johannsen/highwizardry/internal/storage/savefile"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	content, err := loadContent(cfg.Game.ContentDir)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("weapons", len(content.Weapons)),
		zap.Int("armors", len(content.Armors)),
		zap.Int("enemies", len(content.Enemies)),
		zap.Int("properties", len(content.Properties)),
		zap.Duration("elapsed", time.Since(start)),
	)

	ctx := context.Background()

	var board cli.Scoreboard
	switch cfg.Game.LeaderboardBackend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()
		board = postgres.NewLeaderboardRepository(pool.DB())
		logger.Info("leaderboard backend: postgres",
			zap.String("host", cfg.Database.Host),
			zap.String("database", cfg.Database.Name),
		)
	default:
		board = leaderboard.NewFileBoard(cfg.Game.LeaderboardPath, logger)
		logger.Info("leaderboard backend: file",
			zap.String("path", cfg.Game.LeaderboardPath),
		)
	}

	store := savefile.NewStore(cfg.Game.SavePath, logger)
	game := cli.New(content, store, board, dice.NewCryptoSource(), time.Now, logger, os.Stdin, os.Stdout)

	if err := game.Run(ctx); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}

func loadContent(dir string) (cli.Content, error) {
	weapons, err := item.LoadWeapons(filepath.Join(dir, "weapons"))
	if err != nil {
		return cli.Content{}, err
	}
	armors, err := item.LoadArmors(filepath.Join(dir, "armors"))
	if err != nil {
		return cli.Content{}, err
	}
	enemies, err := combat.LoadTemplates(filepath.Join(dir, "enemies"))
	if err != nil {
		return cli.Content{}, err
	}
	properties, err := property.LoadProperties(filepath.Join(dir, "properties"))
	if err != nil {
		return cli.Content{}, err
	}
	return cli.Content{
		Weapons:    weapons,
		Armors:     armors,
		Enemies:    enemies,
		Properties: properties,
	}, nil
}
