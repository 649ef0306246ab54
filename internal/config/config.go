// SPDX-License-Identifier: MIT
// Package: ivivc/internal/config
//
// config.go — environment-driven settings for the CLI and server.

// Package config loads front-door settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment prefix: IVIVC_ADDR, IVIVC_LOG_LEVEL, ...
const Prefix = "IVIVC"

// Config holds server and telemetry settings.
type Config struct {
	Addr            string        `envconfig:"ADDR" default:":8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	NoColor         bool          `envconfig:"NO_COLOR" default:"false"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`

	OTel OTel `envconfig:"OTEL"`
}

// OTel configures the OTLP/gRPC metric exporter.
type OTel struct {
	Enabled  bool   `envconfig:"ENABLED" default:"false"`
	Endpoint string `envconfig:"ENDPOINT" default:"localhost:4317"`
	Insecure bool   `envconfig:"INSECURE" default:"true"`
}

// Load reads the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return c, nil
}
