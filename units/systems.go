// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

// EngineeringSystems are the unit systems commonly used for part
// dimensions. Each one overrides a general system with a smaller
// base unit of length, so that reduced magnitudes are in the range
// drawings are usually dimensioned in. The name of each value is the
// name given to the system in its [EngineeringSystems.Definition].
type EngineeringSystems int32 //enums:enum -transform snake

const (
	// SIEngineering is SI with the millimeter as the base unit of length.
	SIEngineering EngineeringSystems = iota

	// USEngineering is the US customary system with the thou
	// (a thousandth of an inch) as the base unit of length.
	USEngineering
)

// definitions holds the system definition text of each system, in
// the format read by [Registry.LoadDefinitions].
var definitions = [...]string{
	SIEngineering: `
@system si_engineering using SI
    millimeter
@end
`,
	USEngineering: `
@system us_engineering using US
    thou
@end
`,
}

// Definition returns the system definition text of the system,
// which declares its base unit overrides and the system it extends.
func (es EngineeringSystems) Definition() string {
	if es < 0 || es >= EngineeringSystemsN {
		return ""
	}
	return definitions[es]
}

// SystemNames returns the names of all the engineering systems,
// in declaration order. It is useful for validating user input.
func SystemNames() []string {
	vals := EngineeringSystemsValues()
	names := make([]string, len(vals))
	for i, v := range vals {
		names[i] = v.String()
	}
	return names
}
