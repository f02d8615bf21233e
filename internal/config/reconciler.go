package config

import (
	"fmt"
	"time"
)

type ReconcilerConfig struct {
	Interval       time.Duration `mapstructure:"interval"`
	PollTimeout    time.Duration `mapstructure:"poll-timeout"`
	SubmitTimeout  time.Duration `mapstructure:"submit-timeout"`
	ClaimTimeout   time.Duration `mapstructure:"claim-timeout"`
	MaxConcurrency int           `mapstructure:"max-concurrency"`
}

func (cfg *ReconcilerConfig) Validate() error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("reconciler interval must be positive")
	}

	if cfg.PollTimeout <= 0 {
		return fmt.Errorf("reconciler poll timeout must be positive")
	}

	if cfg.SubmitTimeout <= 0 {
		return fmt.Errorf("submit timeout must be positive")
	}

	if cfg.ClaimTimeout <= 0 {
		return fmt.Errorf("claim timeout must be positive")
	}

	if cfg.MaxConcurrency <= 0 {
		return fmt.Errorf("reconciler max concurrency must be positive")
	}

	return nil
}
