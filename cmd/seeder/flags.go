package main

import (
	"chat-seeder/internal/pipeline"
	"github.com/spf13/pflag"
)

// parseFlags overlays command-line flags on cfg, which already holds the environment
// values, so flags take precedence over the environment.
func parseFlags(args []string, cfg *pipeline.EnvConfig) error {
	fs := pflag.NewFlagSet("seeder", pflag.ContinueOnError)
	fs.SortFlags = false

	fs.IntVar(&cfg.Users, "users", cfg.Users, "number of users to generate")
	fs.IntVar(&cfg.MessagesPerRoom, "messages-per-room", cfg.MessagesPerRoom, "upper bound of messages per room (at least 5)")
	fs.IntVar(&cfg.Meetings, "meetings", cfg.Meetings, "number of meetings to generate")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output SQL file")
	fs.StringVar(&cfg.JSON, "json", cfg.JSON, "output JSON file for data inspection")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 picks a time-based seed; combine with --now for identical output across runs")
	fs.StringVar(&cfg.Now, "now", cfg.Now, "reference time in RFC 3339, empty means the current time")
	fs.BoolVar(&cfg.Load, "load", cfg.Load, "also load the dataset into PostgreSQL using the PG* environment variables")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "also write JSON logs to this rotated file")
	fs.StringVar(&cfg.DBLogLevel, "db-log-level", cfg.DBLogLevel, "pgx log level used with --load: trace, debug, info, warn, error or none")

	return fs.Parse(args)
}
