// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units bridges physical quantities and the plain numbers used by
the cad geometry packages.

A [Quantity] holds a magnitude along with a unit expression such as
"mm", "inch" or "N*m". A [Registry] knows the unit definitions and a
set of unit systems, one of which is the default. Reducing a quantity
to base units expresses it in the base unit of the default system for
its dimension: millimeters for lengths under [SIEngineering], thou
under [USEngineering], meters under plain SI.

Part library code should accept quantities and convert them with
[ArgsToBaseMagnitude] or [ToBaseMagnitude] before building geometry,
while a model program picks the system once with [GetRegistry]. All
parts built against the same registry then agree on their units.

Dimensions are tracked with [gonum.org/v1/gonum/unit], so any
[unit.Uniter] (for example [unit.Length]) can be used wherever a
quantity is accepted.
*/
package units

import (
	"cogentcore.org/cad/base/errors"
)

// standard conversion factors, in SI root units
const (
	MetersPerInch     = 0.0254
	MmPerInch         = 25.4
	ThouPerInch       = 1000.0
	KilogramsPerPound = 0.45359237
)

var (
	// ErrUndefinedUnit is returned for unit names that are not known
	// to a registry.
	ErrUndefinedUnit = errors.New("undefined unit")

	// ErrDimensionality is returned when converting between units
	// of different dimensions.
	ErrDimensionality = errors.New("incompatible dimensions")

	// ErrDefinition is returned for malformed definition text.
	ErrDefinition = errors.New("invalid definition")

	// ErrUnknownSystem is returned for unit system names that are not
	// known to a registry.
	ErrUnknownSystem = errors.New("unknown unit system")
)
