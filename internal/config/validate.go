package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	if c.Telegram.DevBypass && c.App.IsProduction() {
		errs = append(errs, errors.New("telegram.dev_bypass must be disabled in production"))
	}
	if strings.TrimSpace(c.Telegram.BotToken) == "" && !c.DevBypassActive() {
		errs = append(errs, errors.New("telegram.bot_token is required"))
	}
	if c.Telegram.InitDataHeader == "" {
		errs = append(errs, errors.New("telegram.init_data_header must not be empty"))
	}
	if c.Telegram.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("telegram.max_age must be >= 0 (got %s)", c.Telegram.MaxAge))
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			errs = append(errs, errors.New("database.dsn is required for the postgres storage driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be %q or %q (got %q)", DriverPostgres, DriverMemory, c.Storage.Driver))
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		errs = append(errs, fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute))
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.Burst <= 0 {
		errs = append(errs, fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

// DevBypassActive reports whether the fixed development identity may be used.
// It is never true in production, whatever dev_bypass says.
func (c *Config) DevBypassActive() bool {
	return c.Telegram.DevBypass && !c.App.IsProduction()
}
