package main

import (
	"chat-seeder/internal/pipeline"
	"chat-seeder/internal/storage"
	"context"
	"errors"
	"fmt"
	"github.com/caarlos0/env/v6"
	"github.com/jackc/pgx/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"log"
	"os"
	"time"
)

func main() {
	dotenvErr := godotenv.Load()

	cfg := pipeline.EnvConfig{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Cannot parse env config: %v", err)
	}
	if err := parseFlags(os.Args[1:], &cfg); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		log.Fatalf("newLogger: %v", err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()
	sugar.Info("Seeder is starting")
	if dotenvErr != nil && !errors.Is(dotenvErr, os.ErrNotExist) {
		sugar.Warnf("Cannot load .env file: %v", dotenvErr)
	}

	if err := run(context.Background(), sugar, cfg); err != nil {
		sugar.Fatalf("Seeding failed: %v", err)
	}
}

func run(ctx context.Context, logger *zap.SugaredLogger, cfg pipeline.EnvConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []pipeline.Option{pipeline.WithEnvConfig(cfg)}

	if cfg.Load {
		dbCfg := storage.Config{}
		if err := env.Parse(&dbCfg); err != nil {
			return err
		}

		storeOpts, err := storeOptions(cfg)
		if err != nil {
			return err
		}

		store, err := storage.New(ctx, logger, dbCfg, storeOpts...)
		if err != nil {
			return err
		}
		defer store.Close()

		opts = append(opts, pipeline.WithLoader(store))
	}

	p, err := pipeline.New(logger, opts...)
	if err != nil {
		return err
	}

	res, err := p.Run(ctx)
	if err != nil {
		return err
	}

	logger.Infof("Test data generation completed (run %s, seed %d)", res.RunID, res.Seed)

	return nil
}

func storeOptions(cfg pipeline.EnvConfig) ([]storage.Option, error) {
	opts := []storage.Option{storage.ConnectionTimeout(30 * time.Second)}
	if cfg.DBLogLevel == "" {
		return opts, nil
	}

	level, err := pgx.LogLevelFromString(cfg.DBLogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing database log level %q: %w", cfg.DBLogLevel, err)
	}
	return append(opts, storage.QueryLogLevel(level)), nil
}
