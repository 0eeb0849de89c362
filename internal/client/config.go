package client

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/heldtogether/traintrack/pkg/retry"
)

type Config struct {
	Host      string        `yaml:"host" mapstructure:"host" default:"http://localhost:8080" validate:"required,url"`
	TokenPath string        `yaml:"token_path" mapstructure:"token_path"`
	Timeout   time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
	Retry     RetryConfig   `yaml:"retry" mapstructure:"retry"`
}

// RetryConfig is off unless MaxAttempts is above 1. It applies to reads and
// artefact uploads only; dataset creation is never retried.
type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts" mapstructure:"max_attempts" default:"1" validate:"gte=0"`
	InitialDelay time.Duration `yaml:"initial_delay" mapstructure:"initial_delay" default:"1s" validate:"gte=0"`
	MaxDelay     time.Duration `yaml:"max_delay" mapstructure:"max_delay" default:"30s" validate:"gte=0"`
	Multiplier   float64       `yaml:"multiplier" mapstructure:"multiplier" default:"1.6" validate:"gte=0"`
}

func (c RetryConfig) Policy() retry.Policy {
	if c.MaxAttempts <= 1 {
		return retry.Policy{MaxAttempts: 1}
	}

	multiplier := c.Multiplier
	if multiplier == 0 {
		multiplier = 1
	}
	return retry.Policy{
		MaxAttempts: c.MaxAttempts,
		Backoff: &retry.ExponentialBackoff{
			Multiplier:   multiplier,
			InitialDelay: c.InitialDelay,
			MaxDelay:     c.MaxDelay,
			Jitter:       0.2,
		},
	}
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}
