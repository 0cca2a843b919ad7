package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"

	"github.com/vipcxj/intervals/internal/output"
)

// Config holds the defaults of the command line flags, read from INTERVALS_*
// environment variables.
type Config struct {
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"warn"`
	Format      output.Format `env:"FORMAT" envDefault:"text"`
	MinLength   int           `env:"MIN_LENGTH" envDefault:"0"`
	Step        string        `env:"STEP" envDefault:"1d"`
	Parallelism int           `env:"PARALLELISM" envDefault:"1"`
	// Now pins the current time when set, in any form a timestamp flag accepts.
	Now string `env:"NOW"`
}

func Parse() (*Config, error) {
	return ParseEnvironment(nil)
}

// ParseEnvironment is Parse reading from environment instead of the process
// environment when it is not nil.
func ParseEnvironment(environment map[string]string) (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix:      "INTERVALS_",
		Environment: environment,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &conf, nil
}
