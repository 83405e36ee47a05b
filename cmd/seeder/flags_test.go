package main

import (
	"chat-seeder/internal/pipeline"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"testing"
)

func envDefaults() pipeline.EnvConfig {
	return pipeline.EnvConfig{Users: 20, MessagesPerRoom: 15, Meetings: 8, Output: pipeline.DefaultSQLOutput}
}

func TestParseFlagsKeepsEnvValues(t *testing.T) {
	cfg := envDefaults()
	cfg.JSON = "from-env.json"

	require.NoError(t, parseFlags(nil, &cfg))
	require.Equal(t, 20, cfg.Users)
	require.Equal(t, "from-env.json", cfg.JSON)
}

func TestParseFlagsOverrideEnv(t *testing.T) {
	cfg := envDefaults()
	args := []string{
		"--users", "50",
		"--messages-per-room=30",
		"--meetings", "3",
		"--output", "out/seed.sql",
		"--json", "out/seed.json",
		"--seed", "7",
		"--now", "2024-05-17T12:00:00Z",
		"--load",
		"--log-file", "seed.log",
		"--db-log-level", "info",
	}

	require.NoError(t, parseFlags(args, &cfg))
	require.Equal(t, pipeline.EnvConfig{
		Users:           50,
		MessagesPerRoom: 30,
		Meetings:        3,
		Output:          "out/seed.sql",
		JSON:            "out/seed.json",
		Seed:            7,
		Now:             "2024-05-17T12:00:00Z",
		Load:            true,
		LogFile:         "seed.log",
		DBLogLevel:      "info",
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestParseFlagsErrors(t *testing.T) {
	cfg := envDefaults()
	require.Error(t, parseFlags([]string{"--users", "many"}, &cfg))
	require.Error(t, parseFlags([]string{"--unknown"}, &cfg))
	require.ErrorIs(t, parseFlags([]string{"--help"}, &cfg), pflag.ErrHelp)
}
