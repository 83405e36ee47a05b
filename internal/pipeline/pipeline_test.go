package pipeline

import (
	"chat-seeder/internal/seed"
	"chat-seeder/internal/storage/zapadapter"
	"context"
	"errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testNow = time.Date(2024, time.May, 17, 12, 0, 0, 0, time.UTC)

func testLogger(t *testing.T) *zap.SugaredLogger {
	return zaptest.NewLogger(t).Sugar()
}

type fakeLoader struct {
	calls int
	runID string
	ds    *seed.Dataset
	err   error
}

func (l *fakeLoader) Load(ctx context.Context, ds *seed.Dataset) error {
	l.calls++
	l.runID, _ = zapadapter.RunIDFromContext(ctx)
	l.ds = ds
	return l.err
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	sqlPath := filepath.Join(dir, "supabase", "advanced_seed.sql")
	jsonPath := filepath.Join(dir, "data.json")

	p, err := New(testLogger(t), Seed(42), Now(testNow), SQLOutput(sqlPath), JSONOutput(jsonPath))
	require.NoError(t, err)

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, res.RunID)
	require.EqualValues(t, 42, res.Seed)
	require.Len(t, res.Dataset.Users, 20)
	require.Len(t, res.Dataset.Meetings, 8)
	require.Equal(t, testNow, res.Dataset.GeneratedAt)

	written, err := os.ReadFile(sqlPath)
	require.NoError(t, err)
	require.Equal(t, res.SQL, string(written))

	_, err = os.Stat(jsonPath)
	require.NoError(t, err)
}

func TestRunIsReproducible(t *testing.T) {
	run := func() ([]byte, []byte) {
		dir := t.TempDir()
		sqlPath, jsonPath := filepath.Join(dir, "seed.sql"), filepath.Join(dir, "seed.json")

		p, err := New(testLogger(t), Seed(7), Now(testNow), SQLOutput(sqlPath), JSONOutput(jsonPath))
		require.NoError(t, err)
		_, err = p.Run(context.Background())
		require.NoError(t, err)

		sql, err := os.ReadFile(sqlPath)
		require.NoError(t, err)
		doc, err := os.ReadFile(jsonPath)
		require.NoError(t, err)
		return sql, doc
	}

	sql1, json1 := run()
	sql2, json2 := run()
	require.Equal(t, sql1, sql2)
	require.Equal(t, json1, json2)
}

func TestRunFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	sqlPath := filepath.Join(dir, "seed.sql")
	jsonPath := filepath.Join(dir, "seed.json")
	loader := &fakeLoader{}

	cfg := EnvConfig{Users: 10, MessagesPerRoom: 4, Meetings: 8, Output: sqlPath, JSON: jsonPath}
	p, err := New(testLogger(t), WithEnvConfig(cfg), WithLoader(loader))
	require.NoError(t, err)

	res, err := p.Run(context.Background())
	require.ErrorIs(t, err, seed.ErrInvalidCount)
	require.Nil(t, res)
	require.Zero(t, loader.calls)

	_, err = os.Stat(sqlPath)
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(jsonPath)
	require.True(t, os.IsNotExist(err))
}

func TestRunLoader(t *testing.T) {
	loader := &fakeLoader{}
	p, err := New(testLogger(t), Seed(1), Now(testNow), SQLOutput(filepath.Join(t.TempDir(), "seed.sql")), WithLoader(loader))
	require.NoError(t, err)

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, loader.calls)
	require.Equal(t, res.RunID, loader.runID)
	require.Same(t, res.Dataset, loader.ds)
}

func TestRunLoaderFailure(t *testing.T) {
	errDown := errors.New("database is down")
	sqlPath := filepath.Join(t.TempDir(), "seed.sql")

	p, err := New(testLogger(t), Seed(1), Now(testNow), SQLOutput(sqlPath), WithLoader(&fakeLoader{err: errDown}))
	require.NoError(t, err)

	_, err = p.Run(context.Background())
	require.ErrorIs(t, err, errDown)

	_, err = os.Stat(sqlPath)
	require.NoError(t, err)
}

func TestRunSingleUser(t *testing.T) {
	p, err := New(testLogger(t),
		WithEnvConfig(EnvConfig{Users: 1, MessagesPerRoom: 15, Meetings: 8, Output: filepath.Join(t.TempDir(), "seed.sql")}),
		Now(testNow))
	require.NoError(t, err)

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Dataset.Users, 1)
	require.Empty(t, res.Dataset.Rooms)
	require.Empty(t, res.Dataset.Meetings)
}

func TestRunTimeBasedSeed(t *testing.T) {
	p, err := New(testLogger(t), SQLOutput(filepath.Join(t.TempDir(), "seed.sql")))
	require.NoError(t, err)

	res, err := p.Run(context.Background())
	require.NoError(t, err)
	require.NotZero(t, res.Seed)
}

func TestNew(t *testing.T) {
	_, err := New(testLogger(t), SQLOutput(""))
	require.ErrorIs(t, err, ErrNoOutput)

	_, err = New(testLogger(t), WithEnvConfig(EnvConfig{Users: 5, MessagesPerRoom: 5, Output: "seed.sql", Now: "yesterday"}))
	require.Error(t, err)
}

func TestRunWarnsAboutSeedWithoutReferenceTime(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	dir := t.TempDir()

	p, err := New(zap.New(core).Sugar(), Seed(7), SQLOutput(filepath.Join(dir, "seed.sql")))
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessageSnippet("reference time is not").Len())

	core, logs = observer.New(zapcore.WarnLevel)
	p, err = New(zap.New(core).Sugar(), Seed(7), Now(testNow), SQLOutput(filepath.Join(dir, "seed.sql")))
	require.NoError(t, err)
	_, err = p.Run(context.Background())
	require.NoError(t, err)
	require.Zero(t, logs.FilterMessageSnippet("reference time is not").Len())
}
