package pipeline

import (
	"chat-seeder/internal/seed"
	"fmt"
	"github.com/go-playground/validator/v10"
	"time"
)

const DefaultSQLOutput = "supabase/advanced_seed.sql"

type Option interface {
	apply(*config)
}

type optionFunc func(c *config)

func (f optionFunc) apply(c *config) { f(c) }

// config defines fields used for configuring a Pipeline instance
type config struct {
	params   seed.Params
	seed     int64
	now      time.Time
	sqlPath  string
	jsonPath string
	loader   Loader
	err      error
}

func defaultConfig() config {
	return config{
		params:  seed.Params{Users: 20, MessagesPerRoom: 15, Meetings: 8},
		sqlPath: DefaultSQLOutput,
	}
}

// EnvConfig defines fields used for parsing from environment variables
type EnvConfig struct {
	Users           int    `env:"SEED_USERS" envDefault:"20" validate:"min=1"`
	MessagesPerRoom int    `env:"SEED_MESSAGES_PER_ROOM" envDefault:"15" validate:"min=5,max=1000"`
	Meetings        int    `env:"SEED_MEETINGS" envDefault:"8" validate:"min=0"`
	Output          string `env:"SEED_OUTPUT" envDefault:"supabase/advanced_seed.sql" validate:"required"`
	JSON            string `env:"SEED_JSON"`
	Seed            int64  `env:"SEED_RANDOM_SEED"`
	Now             string `env:"SEED_NOW" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Load            bool   `env:"SEED_LOAD"`
	LogFile         string `env:"SEED_LOG_FILE"`
	DBLogLevel      string `env:"SEED_DB_LOG_LEVEL" validate:"omitempty,oneof=trace debug info warn error none"`
}

var validate = validator.New()

// Validate reports every field outside its allowed range
func (c EnvConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ReferenceTime parses Now. The zero time means the current time at run start.
func (c EnvConfig) ReferenceTime() (time.Time, error) {
	if c.Now == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, c.Now)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing reference time: %w", err)
	}
	return t, nil
}

// WithEnvConfig applies every generation and output setting of cfg. Loading is wired
// separately with WithLoader.
func WithEnvConfig(cfg EnvConfig) Option {
	return optionFunc(func(c *config) {
		c.params = seed.Params{Users: cfg.Users, MessagesPerRoom: cfg.MessagesPerRoom, Meetings: cfg.Meetings}
		c.seed = cfg.Seed
		c.sqlPath = cfg.Output
		c.jsonPath = cfg.JSON

		now, err := cfg.ReferenceTime()
		if err != nil {
			c.err = err
			return
		}
		c.now = now
	})
}

// Seed fixes the random seed; 0 picks a time-based seed for every run
func Seed(s int64) Option {
	return optionFunc(func(c *config) {
		c.seed = s
	})
}

// Now fixes the reference time generated timestamps are relative to
func Now(t time.Time) Option {
	return optionFunc(func(c *config) {
		c.now = t
	})
}

// SQLOutput sets the path the SQL script is written to
func SQLOutput(path string) Option {
	return optionFunc(func(c *config) {
		c.sqlPath = path
	})
}

// JSONOutput sets the path of the JSON dump; empty disables it
func JSONOutput(path string) Option {
	return optionFunc(func(c *config) {
		c.jsonPath = path
	})
}

// WithLoader registers a Loader run after the files are written
func WithLoader(l Loader) Option {
	return optionFunc(func(c *config) {
		c.loader = l
	})
}
