package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Log      LogConfig   `yaml:"log"`
	Store    StoreConfig `yaml:"store"`
	Clock    ClockConfig `yaml:"clock"`
	Language string      `yaml:"language" env:"VAXSIM_LANGUAGE" env-default:"en"`
	Ops      OpsConfig   `yaml:"ops"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// StoreConfig holds in-memory store limits.
type StoreConfig struct {
	MaxBatches int `yaml:"max_batches" env:"STORE_MAX_BATCHES" env-default:"1000"`
}

// ClockConfig holds the simulated clock settings.
type ClockConfig struct {
	StartDate string `yaml:"start_date" env:"CLOCK_START_DATE" env-default:"01-01-2025"`
}

// OpsConfig holds the optional health and metrics HTTP server settings.
// The server is disabled when Addr is empty.
type OpsConfig struct {
	Addr              string        `yaml:"addr"                env:"OPS_ADDR"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"OPS_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"    env:"OPS_SHUTDOWN_TIMEOUT"    env-default:"5s"`
}

// Enabled reports whether the ops server should be started.
func (c OpsConfig) Enabled() bool {
	return c.Addr != ""
}
