// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"math"

	"cogentcore.org/cad/base/errors"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Location is a rigid placement (rotation followed by translation)
// of a shape in space. The zero value is the identity placement.
type Location struct {
	trsf Transform
}

// NewLocation returns a location that translates by pos.
func NewLocation(pos r3.Vec) Location {
	return Location{trsf: Translation(pos)}
}

// NewLocationRotated returns a location that rotates by angle
// degrees around axis (through the origin) and then translates by pos.
func NewLocationRotated(pos, axis r3.Vec, angle float64) (Location, error) {
	rot, err := Rotation(axis, angle*DegToRad)
	if err != nil {
		return Location{}, fmt.Errorf("geom.NewLocationRotated: %w", err)
	}
	return Location{trsf: Translation(pos).Mul(rot)}, nil
}

// LocationFromTransform returns a location wrapping the given transform.
// The transform is expected to be rigid.
func LocationFromTransform(t Transform) Location {
	return Location{trsf: t}
}

// DegToRad is the number of radians per degree.
const DegToRad = math.Pi / 180

// Transformation returns the transform of the location.
func (l Location) Transformation() Transform {
	return l.trsf
}

// Mul returns the location l * o: o is applied first, then l.
// This is how a child placement is combined with its parent's.
func (l Location) Mul(o Location) Location {
	return Location{trsf: l.trsf.Mul(o.trsf)}
}

// Inverse returns the inverse placement.
func (l Location) Inverse() Location {
	// rigid transforms are always invertible
	return Location{trsf: errors.Must1(l.trsf.Inverse())}
}

// Apply returns the point p placed by the location.
func (l Location) Apply(p r3.Vec) r3.Vec {
	return l.trsf.Apply(p)
}

// ApplyDir returns the direction v rotated by the location.
func (l Location) ApplyDir(v r3.Vec) r3.Vec {
	return l.trsf.ApplyDir(v)
}

// IsIdentity returns whether the location does not move anything.
func (l Location) IsIdentity() bool {
	return l.trsf.Equal(Identity(), Tolerance)
}

// Equal returns whether two locations are equal within tol.
func (l Location) Equal(o Location, tol float64) bool {
	return l.trsf.Equal(o.trsf, tol)
}

// String returns the translation of the location, and its
// rotation matrix if it has one.
func (l Location) String() string {
	p := l.trsf.TranslationPart()
	rotated := false
	for i := range 3 {
		for j := range 3 {
			want := 0.0
			if i == j {
				want = 1
			}
			if !scalar.EqualWithinAbs(l.trsf.At(i, j), want, Tolerance) {
				rotated = true
			}
		}
	}
	if !rotated {
		return fmt.Sprintf("Location(%g, %g, %g)", p.X, p.Y, p.Z)
	}
	return fmt.Sprintf("Location(%g, %g, %g; %v)", p.X, p.Y, p.Z, l.trsf)
}
