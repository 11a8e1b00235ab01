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

package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/driftmon/driftmon/pkg/defaults"
	cerrors "github.com/driftmon/driftmon/pkg/errors"
	"github.com/driftmon/driftmon/pkg/runner"
	"github.com/driftmon/driftmon/pkg/serializer"
	"github.com/driftmon/driftmon/pkg/snapshotter"
)

const defaultConfigName = ".driftmon.yaml"

// Config is the optional YAML config file.
type Config struct {
	LogLevel       string                    `yaml:"logLevel,omitempty"`
	Format         string                    `yaml:"format,omitempty"`
	Interval       time.Duration             `yaml:"interval,omitempty"`
	CommandTimeout time.Duration             `yaml:"commandTimeout,omitempty"`
	MetricsFile    string                    `yaml:"metricsFile,omitempty"`
	Commands       map[string]runner.Command `yaml:"commands,omitempty"`
}

// defaultConfigPath returns $HOME/.driftmon.yaml, or "" without a home.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultConfigName)
}

// LoadConfig reads the config file at path. A missing file is an error only
// when required is set; otherwise an empty Config is returned.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidConfig, "failed to read config file", err,
			map[string]any{"path": path})
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidConfig, "failed to parse config file", err,
			map[string]any{"path": path})
	}
	if err := cfg.Validate(); err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidConfig, "invalid config file", err,
			map[string]any{"path": path})
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Format != "" {
		if _, err := serializer.ParseFormat(c.Format); err != nil {
			return err
		}
	}
	if c.Interval != 0 && c.Interval < defaults.MinRefreshInterval {
		return fmt.Errorf("interval %s is below the minimum of %s", c.Interval, defaults.MinRefreshInterval)
	}
	if c.CommandTimeout < 0 {
		return errors.New("commandTimeout must not be negative")
	}
	for name, cmd := range c.Commands {
		if _, err := snapshotter.ParseSource(name); err != nil {
			return err
		}
		if cmd.Path == "" {
			return fmt.Errorf("command for source %q has no path", name)
		}
	}
	return nil
}

// Sources returns the default command table with configured overrides.
func (c *Config) Sources() snapshotter.Sources {
	overrides := make(snapshotter.Sources, len(c.Commands))
	for name, cmd := range c.Commands {
		src, err := snapshotter.ParseSource(name)
		if err != nil {
			continue
		}
		overrides[src] = cmd
	}
	return snapshotter.DefaultSources().Merge(overrides)
}
