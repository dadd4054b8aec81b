// Copyright 2025 The Kestrel Authors
// This file is part of Kestrel.
//
// Kestrel is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kestrel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Kestrel. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Config holds interpreter configuration.
type Config struct {
	// LegacyOnly disables the revamped call instructions entirely: the four
	// opcodes are absent from the instruction set and executing them fails
	// with ErrInvalidOpCode.
	LegacyOnly bool `yaml:"legacyOnly"`

	// Trace enables per-dispatch logging on the configured logger.
	Trace bool `yaml:"trace"`

	// LogLevel is the logrus level used by tooling that owns the logger.
	LogLevel string `yaml:"logLevel" default:"info"`

	// GasOverrides replaces individual gas parameters by key; see the
	// GasKey* constants. Absent keys keep their protocol defaults.
	GasOverrides map[string]uint64 `yaml:"gasOverrides"`
}

// LoadConfig reads a YAML config file, applying defaults for absent fields.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("applying config defaults: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Schedule returns the gas schedule implied by the config, or nil when no
// overrides are set.
func (c *Config) Schedule() *GasSchedule {
	if c == nil || len(c.GasOverrides) == 0 {
		return nil
	}
	return &GasSchedule{Overrides: c.GasOverrides}
}
