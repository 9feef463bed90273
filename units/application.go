// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"sync"

	"cogentcore.org/cad/base/errors"
)

var (
	appOnce     sync.Once
	appRegistry *Registry
)

// App returns the application registry, which is shared by the whole
// process. It is created on first use, with the configuration from
// [ConfigFromEnv] applied to it; configuration errors are logged and
// leave the registry at its defaults.
func App() *Registry {
	appOnce.Do(func() {
		appRegistry = newAppRegistry()
	})
	return appRegistry
}

// newAppRegistry returns a new registry configured from the environment.
func newAppRegistry() *Registry {
	reg := NewRegistry()
	cfg, err := ConfigFromEnv()
	if errors.Log(err) == nil {
		errors.Log(cfg.Apply(reg))
	}
	return reg
}

// GetRegistry returns the application registry. If a system is given,
// its definition is loaded into the registry and it becomes the
// default system of the whole process; otherwise the current default
// system is left as it is. With several systems, the last one given
// is the default.
//
// Reusable part code should not pass a system, so that the model
// program using the parts decides on the units by passing one.
func GetRegistry(system ...EngineeringSystems) (*Registry, error) {
	reg := App()
	for _, sys := range system {
		if err := reg.UseSystem(sys); err != nil {
			return reg, err
		}
	}
	return reg, nil
}
