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

package config

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/MalteKiefer/Status/pkg/defaults"
	"github.com/MalteKiefer/Status/pkg/errors"
)

const (
	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "STATUS"

	// EnvCustomRootPath is the legacy name for the alternate root.
	EnvCustomRootPath = "STATUS_CUSTOM_ROOT_PATH"

	KeyRootPath          = "root_path"
	KeyDockerEnabled     = "docker.enabled"
	KeyCPUSampleInterval = "cpu.sample_interval"
	KeyNetworkInclude    = "network.include"
	KeyServerAddress     = "server.address"
	KeyServerRateLimit   = "server.rate_limit"
	KeyServerRateBurst   = "server.rate_burst"
	KeyServerSystemd     = "server.systemd_notify"

	configName = ".status"
	configType = "yaml"
)

// Config holds the resolved settings.
type Config struct {
	// RootPath is the alternate filesystem root; "" reads the live system.
	RootPath string

	// DockerEnabled gates the Docker collector.
	DockerEnabled bool

	// CPUSampleInterval is the gap between the two /proc/stat reads.
	CPUSampleInterval time.Duration

	// NetworkInclude limits network collection to matching interface names.
	NetworkInclude []string

	Server ServerConfig

	// File is the config file that was read, or "" when none was found.
	File string
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Address       string
	RateLimit     float64
	RateBurst     int
	SystemdNotify bool
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		DockerEnabled:     true,
		CPUSampleInterval: defaults.CPUSampleInterval,
		Server: ServerConfig{
			Address:       ":8080",
			RateLimit:     10,
			RateBurst:     20,
			SystemdNotify: true,
		},
	}
}

// Load reads the configuration. When file is set it must exist and parse;
// otherwise .status.yaml is looked up in the home and current directories
// and silently skipped when absent.
func Load(file string) (*Config, error) {
	v := newViper()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
				"failed to read config file", err, map[string]any{"file": file})
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName(configName)
		v.SetConfigType(configType)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse config file", err)
			}
		}
	}

	cfg := fromViper(v)
	if cfg.File != "" {
		slog.Debug("config loaded", slog.String("file", cfg.File))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	d := Default()

	v := viper.New()
	v.SetDefault(KeyRootPath, d.RootPath)
	v.SetDefault(KeyDockerEnabled, d.DockerEnabled)
	v.SetDefault(KeyCPUSampleInterval, d.CPUSampleInterval)
	v.SetDefault(KeyNetworkInclude, d.NetworkInclude)
	v.SetDefault(KeyServerAddress, d.Server.Address)
	v.SetDefault(KeyServerRateLimit, d.Server.RateLimit)
	v.SetDefault(KeyServerRateBurst, d.Server.RateBurst)
	v.SetDefault(KeyServerSystemd, d.Server.SystemdNotify)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// rootPath prefers STATUS_CUSTOM_ROOT_PATH over every other source.
func rootPath(v *viper.Viper) string {
	if custom, ok := os.LookupEnv(EnvCustomRootPath); ok {
		if trimmed := strings.TrimSpace(custom); trimmed != "" {
			return trimmed
		}
	}
	return strings.TrimSpace(v.GetString(KeyRootPath))
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		RootPath:          rootPath(v),
		DockerEnabled:     v.GetBool(KeyDockerEnabled),
		CPUSampleInterval: v.GetDuration(KeyCPUSampleInterval),
		NetworkInclude:    v.GetStringSlice(KeyNetworkInclude),
		Server: ServerConfig{
			Address:       v.GetString(KeyServerAddress),
			RateLimit:     v.GetFloat64(KeyServerRateLimit),
			RateBurst:     v.GetInt(KeyServerRateBurst),
			SystemdNotify: v.GetBool(KeyServerSystemd),
		},
		File: v.ConfigFileUsed(),
	}
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	if c.CPUSampleInterval < 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"cpu sample interval must not be negative",
			map[string]any{KeyCPUSampleInterval: c.CPUSampleInterval.String()})
	}
	if c.CPUSampleInterval >= defaults.CollectorTimeout {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("cpu sample interval must be shorter than the collector timeout (%s)", defaults.CollectorTimeout),
			map[string]any{KeyCPUSampleInterval: c.CPUSampleInterval.String()})
	}
	if c.Server.RateLimit <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"server rate limit must be positive",
			map[string]any{KeyServerRateLimit: c.Server.RateLimit})
	}
	if c.Server.RateBurst <= 0 {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"server rate burst must be positive",
			map[string]any{KeyServerRateBurst: c.Server.RateBurst})
	}
	if c.Server.Address == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "server address must not be empty")
	}
	return nil
}
