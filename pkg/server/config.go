// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"net/http"
	"time"

	"github.com/MalteKiefer/Status/pkg/defaults"

	"golang.org/x/time/rate"
)

const (
	defaultAddress   = ":8080"
	defaultRateLimit = 10
	defaultBurst     = 20
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers are mounted behind the middleware chain, keyed by pattern.
	Handlers map[string]http.HandlerFunc

	// Address is the listen address, host:port.
	Address string

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration

	// NotifySystemd sends sd_notify READY and STOPPING messages when
	// running under a systemd Type=notify unit.
	NotifySystemd bool
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Name:              "status",
		Version:           "dev",
		Handlers:          map[string]http.HandlerFunc{},
		Address:           defaultAddress,
		RateLimit:         defaultRateLimit,
		RateLimitBurst:    defaultBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}
}

// Option configures the server.
type Option func(*Config)

// WithName sets the name reported by the root endpoint.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithVersion sets the version reported by the root endpoint and in logs.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.Version = version
	}
}

// WithHandler adds handlers; later calls override earlier ones for the same pattern.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) {
		for pattern, h := range handlers {
			c.Handlers[pattern] = h
		}
	}
}

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(c *Config) {
		if addr != "" {
			c.Address = addr
		}
	}
}

// WithRateLimit sets the per-server token bucket. Non-positive values keep the defaults.
func WithRateLimit(limit float64, burst int) Option {
	return func(c *Config) {
		if limit > 0 {
			c.RateLimit = rate.Limit(limit)
		}
		if burst > 0 {
			c.RateLimitBurst = burst
		}
	}
}

// WithShutdownTimeout overrides the graceful shutdown window.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.ShutdownTimeout = d
		}
	}
}

// WithSystemdNotify enables sd_notify readiness reporting.
func WithSystemdNotify(enabled bool) Option {
	return func(c *Config) {
		c.NotifySystemd = enabled
	}
}
