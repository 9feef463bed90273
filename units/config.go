// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the unit configuration of a model. It can be read from
// the environment with [ConfigFromEnv] or from a TOML or YAML file
// with [LoadConfig].
type Config struct {

	// System is the name of the system to use as the default system,
	// such as "si_engineering" or "cgs". Engineering systems are
	// loaded as needed. Empty keeps the current default.
	System string `env:"CAD_UNIT_SYSTEM" toml:"system" yaml:"system"`

	// Definitions is the path of a file with extra definitions to
	// load, in the format of [Registry.LoadDefinitions]. A leading ~
	// is expanded to the home directory.
	Definitions string `env:"CAD_UNIT_DEFINITIONS" toml:"definitions" yaml:"definitions"`
}

// ConfigFromEnv returns the configuration given by the CAD_UNIT_SYSTEM
// and CAD_UNIT_DEFINITIONS environment variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("units.ConfigFromEnv: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads the configuration from the given file, which is
// parsed as TOML or YAML depending on its extension.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		err = fmt.Errorf("unsupported config file type %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("units.LoadConfig %s: %w", path, err)
	}
	return cfg, nil
}

// Apply loads the extra definitions, if any, into the registry and
// then makes the system, if any, its default system.
func (c Config) Apply(reg *Registry) error {
	if c.Definitions != "" {
		path, err := homedir.Expand(c.Definitions)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := reg.LoadDefinitions(f); err != nil {
			return fmt.Errorf("units: loading %s: %w", path, err)
		}
	}
	if c.System == "" {
		return nil
	}
	var sys EngineeringSystems
	if sys.SetString(c.System) == nil {
		return reg.UseSystem(sys)
	}
	// any other system must already be defined
	return reg.SetDefaultSystem(c.System)
}
