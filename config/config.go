package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is loaded once at startup and passed into the services explicitly.
// Nothing in the core reads the environment after this point.
type Config struct {
	Env               string `env:"ENV" envDefault:"development"`
	Port              string `env:"PORT" envDefault:"8080"`
	DBURL             string `env:"DB_URL,required,notEmpty"`
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	AccessExpiryMin   int    `env:"ACCESS_TOKEN_EXPIRY" envDefault:"30"`
	BcryptCost        int    `env:"BCRYPT_COST" envDefault:"0"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
