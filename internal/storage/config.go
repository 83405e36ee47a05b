package storage

import (
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"strconv"
	"strings"
	"time"
)

// Config defines connection parameters parsed from the libpq environment variables
type Config struct {
	URL      string `env:"DATABASE_URL"`
	User     string `env:"PGUSER" envDefault:"postgres"`
	Password string `env:"PGPASSWORD"`
	Host     string `env:"PGHOST" envDefault:"localhost"`
	Port     uint16 `env:"PGPORT" envDefault:"5432"`
	DBName   string `env:"PGDATABASE" envDefault:"postgres"`
	SSLMode  string `env:"PGSSLMODE" envDefault:"disable"`
}

// DSN returns URL when set, otherwise a keyword/value connection string built from the
// non-empty fields
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}

	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	var parts []string
	add := func(key, value string) {
		if value != "" {
			parts = append(parts, key+"="+value)
		}
	}
	add("user", c.User)
	add("password", c.Password)
	add("host", c.Host)
	if c.Port != 0 {
		add("port", strconv.FormatUint(uint64(c.Port), 10))
	}
	add("dbname", c.DBName)
	add("sslmode", sslMode)

	return strings.Join(parts, " ")
}

// Option alters the default configuration of the pgxpool.Config used during new Store construction
type Option interface {
	apply(*pgxpool.Config)
}

type optionFunc func(c *pgxpool.Config)

func (f optionFunc) apply(c *pgxpool.Config) { f(c) }

// ConnectionTimeout sets timeout for connection to be established
func ConnectionTimeout(d time.Duration) Option {
	return optionFunc(func(c *pgxpool.Config) {
		c.ConnConfig.ConnectTimeout = d
	})
}

// QueryLogLevel sets the lowest pgx log level passed to the zap logger
func QueryLogLevel(l pgx.LogLevel) Option {
	return optionFunc(func(c *pgxpool.Config) {
		c.ConnConfig.LogLevel = l
	})
}
