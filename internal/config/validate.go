package config

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/heartmarshall/vaxsim/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Store.MaxBatches <= 0 {
		return fmt.Errorf("store.max_batches must be > 0 (got %d)", c.Store.MaxBatches)
	}

	if _, err := c.Clock.Start(); err != nil {
		return fmt.Errorf("clock: %w", err)
	}

	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("language %q: %w", c.Language, err)
	}

	if c.Ops.ShutdownTimeout <= 0 {
		return fmt.Errorf("ops.shutdown_timeout must be > 0 (got %s)", c.Ops.ShutdownTimeout)
	}

	return nil
}

// Start parses StartDate into a calendar date.
func (c ClockConfig) Start() (domain.Date, error) {
	d, err := domain.ParseDate(c.StartDate)
	if err != nil {
		return domain.Date{}, fmt.Errorf("start_date: %w", err)
	}
	if !d.IsValid() {
		return domain.Date{}, fmt.Errorf("start_date %q is not a calendar date", c.StartDate)
	}
	return d, nil
}
