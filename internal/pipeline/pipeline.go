package pipeline

import (
	"chat-seeder/internal/render"
	"chat-seeder/internal/seed"
	"chat-seeder/internal/storage/zapadapter"
	"context"
	"errors"
	"fmt"
	"github.com/rs/xid"
	"go.uber.org/zap"
	"time"
)

var ErrNoOutput = errors.New("sql output path is required")

// Loader writes a generated dataset somewhere other than the output files.
type Loader interface {
	Load(ctx context.Context, ds *seed.Dataset) error
}

// Result describes a finished run.
type Result struct {
	RunID   string
	Seed    int64
	Dataset *seed.Dataset
	SQL     string
}

// Pipeline generates, validates, writes and optionally loads one dataset per Run.
type Pipeline struct {
	logger *zap.SugaredLogger
	cfg    config
}

func New(logger *zap.SugaredLogger, opts ...Option) (*Pipeline, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.sqlPath == "" {
		return nil, ErrNoOutput
	}

	return &Pipeline{
		logger: logger,
		cfg:    cfg,
	}, nil
}

// Run executes generate, validate, render and write, then the loader when one is set.
// Files are only written once the dataset is complete and valid.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	runID := xid.New().String()
	ctx = zapadapter.NewContextWithRunID(ctx, runID)
	logger := p.logger.With("run_id", runID)

	seedValue := p.cfg.seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	now := p.cfg.now
	if now.IsZero() {
		if p.cfg.seed != 0 {
			logger.Warn("Seed is fixed but the reference time is not, timestamps will differ between runs")
		}
		now = time.Now()
	}

	logger.Infof("Generating test data (seed %d, reference time %s)", seedValue, now.UTC().Format(time.RFC3339))
	if p.cfg.params.Users > 0 && p.cfg.params.Users < seed.MinGroupParticipants {
		logger.Warnf("Only %d users requested, group rooms need at least %d and are skipped", p.cfg.params.Users, seed.MinGroupParticipants)
	}

	ds, err := seed.Generate(seed.NewSource(seedValue, now), p.cfg.params)
	if err != nil {
		return nil, err
	}
	if err := seed.Validate(ds); err != nil {
		return nil, err
	}
	logger.Infof("Generated: %d users, %d rooms, %d messages, %d meetings",
		len(ds.Users), len(ds.Rooms), len(ds.Messages), len(ds.Meetings))

	script, err := render.WriteSQL(p.cfg.sqlPath, ds)
	if err != nil {
		return nil, err
	}
	logger.Infof("SQL generated and saved to %s", p.cfg.sqlPath)

	if p.cfg.jsonPath != "" {
		if err := render.WriteJSON(p.cfg.jsonPath, ds); err != nil {
			return nil, err
		}
		logger.Infof("JSON data saved to %s", p.cfg.jsonPath)
	}

	if p.cfg.loader != nil {
		if err := p.cfg.loader.Load(ctx, ds); err != nil {
			return nil, fmt.Errorf("loading dataset: %w", err)
		}
		logger.Info("Dataset loaded into the database")
	}

	return &Result{
		RunID:   runID,
		Seed:    seedValue,
		Dataset: ds,
		SQL:     script,
	}, nil
}
