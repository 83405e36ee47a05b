package storage

import (
	"chat-seeder/internal/schema"
	"chat-seeder/internal/seed"
	"chat-seeder/internal/storage/zapadapter"
	"context"
	"errors"
	"fmt"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

var (
	ErrSchemaMissing = errors.New("target schema is missing")
	ErrBadReference  = errors.New("row references a missing record")
	ErrDuplicate     = errors.New("row already exists")
)

// Store loads datasets into the chat application's database
type Store struct {
	logger *zap.SugaredLogger
	db     *pgxpool.Pool
}

// New sets provided zap.Logger via zapadapter to pgxpool.Pool and returns instance of Store struct
func New(ctx context.Context, logger *zap.SugaredLogger, cfg Config, opts ...Option) (*Store, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing connection config: %w", err)
	}
	config.ConnConfig.Logger = zapadapter.NewLogger(logger.Desugar())
	config.ConnConfig.LogLevel = pgx.LogLevelWarn

	for _, opt := range opts {
		opt.apply(config)
	}

	pool, err := pgxpool.ConnectConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", config.ConnConfig.Host, err)
	}

	return &Store{
		logger: logger,
		db:     pool,
	}, nil
}

// Close closes all pool connections
func (s *Store) Close() {
	s.db.Close()
}

// Load replaces the seeded tables' content with ds in one transaction: every seeded table
// is cleared, then each populated table is filled with a single COPY, referenced tables first.
// Nothing is changed when any step fails.
func (s *Store) Load(ctx context.Context, ds *seed.Dataset) error {
	s.logger.Debugf("Loading dataset (%d users, %d rooms, %d messages, %d meetings)",
		len(ds.Users), len(ds.Rooms), len(ds.Messages), len(ds.Meetings))

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	// error handling can be omitted for rollback according docs
	defer tx.Rollback(context.Background())

	for _, table := range schema.Cleared {
		if _, err := tx.Exec(ctx, "delete from "+pgx.Identifier{table}.Sanitize()); err != nil {
			return fmt.Errorf("clearing %s: %w", table, mapError(err))
		}
	}

	rows := schema.ByTable(schema.Rows(ds))
	for _, table := range schema.Inserted {
		n, err := tx.CopyFrom(ctx, pgx.Identifier{table.Name}, table.Columns, copyFromRows(rows[table]))
		if err != nil {
			return fmt.Errorf("copying into %s: %w", table.Name, mapError(err))
		}
		s.logger.Debugf("Copied %d rows into %s", n, table.Name)
	}

	if err := tx.Commit(ctx); err != nil {
		return mapError(err)
	}

	s.logger.Infof("Loaded dataset into %s", s.db.Config().ConnConfig.Database)

	return nil
}

// mapError translates constraint and schema violations into package errors, keeping the
// server message.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn:
		return fmt.Errorf("%w: %s", ErrSchemaMissing, pgErr.Message)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s (%s)", ErrBadReference, pgErr.Message, pgErr.ConstraintName)
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s (%s)", ErrDuplicate, pgErr.Message, pgErr.ConstraintName)
	default:
		return err
	}
}
