// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the geometric (as opposed to topological)
// types used by CAD part programs: placements ([Location]) backed by
// 4x4 homogeneous transforms, reference [Plane]s, and axis aligned
// bounding boxes. Points and directions are gonum [r3.Vec] values.
package geom

import (
	"errors"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tolerance is the absolute tolerance used for geometric comparisons
// such as zero length vectors and perpendicularity.
const Tolerance = 1e-9

var (
	// ErrZeroNormal is returned when a direction that must be
	// non-null, such as a plane normal or rotation axis, is zero.
	ErrZeroNormal = errors.New("geom: zero length direction")

	// ErrDegenerate is returned for geometry that is
	// inconsistent, such as an x direction parallel to the normal.
	ErrDegenerate = errors.New("geom: degenerate geometry")
)

// Vec returns a new vector from the given components.
func Vec(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

// Standard axis directions.
var (
	XDir = Vec(1, 0, 0)
	YDir = Vec(0, 1, 0)
	ZDir = Vec(0, 0, 1)
)

// IsZero returns whether the given vector has a length within
// [Tolerance] of zero.
func IsZero(v r3.Vec) bool {
	return r3.Norm(v) <= Tolerance
}

// EqualVec returns whether the two vectors are equal within
// the given absolute tolerance, component by component.
func EqualVec(a, b r3.Vec, tol float64) bool {
	return scalar.EqualWithinAbs(a.X, b.X, tol) &&
		scalar.EqualWithinAbs(a.Y, b.Y, tol) &&
		scalar.EqualWithinAbs(a.Z, b.Z, tol)
}

// Direction returns the unit vector of v, or [ErrZeroNormal]
// if v has zero length.
func Direction(v r3.Vec) (r3.Vec, error) {
	if IsZero(v) {
		return r3.Vec{}, ErrZeroNormal
	}
	return r3.Unit(v), nil
}
