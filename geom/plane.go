// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Plane is a 2D coordinate system in 3D space: an origin and three
// orthonormal directions, with ZDir the plane normal and
// YDir = ZDir x XDir.
type Plane struct {
	Origin r3.Vec
	XDir   r3.Vec
	YDir   r3.Vec
	ZDir   r3.Vec
}

// XYPlane returns the global XY plane at the origin.
func XYPlane() Plane {
	return Plane{XDir: XDir, YDir: YDir, ZDir: ZDir}
}

// NewPlane returns a plane with the given origin, x direction and
// normal. A zero xDir picks the x direction from the normal alone,
// using [DefaultXDir]. The normal must be non-null, and a given
// xDir must be perpendicular to it.
func NewPlane(origin, xDir, normal r3.Vec) (Plane, error) {
	z, err := Direction(normal)
	if err != nil {
		return Plane{}, fmt.Errorf("geom.NewPlane: normal: %w", err)
	}
	var x r3.Vec
	if IsZero(xDir) {
		x = DefaultXDir(z)
	} else {
		x = r3.Unit(xDir)
		if math.Abs(r3.Dot(x, z)) > Tolerance {
			return Plane{}, fmt.Errorf("geom.NewPlane: %w: x direction %v is not perpendicular to normal %v", ErrDegenerate, xDir, normal)
		}
	}
	return Plane{
		Origin: origin,
		XDir:   x,
		YDir:   r3.Cross(z, x),
		ZDir:   z,
	}, nil
}

// DefaultXDir returns an x direction perpendicular to the given
// unit normal. It is the direction a CAD kernel derives for an axis
// system defined only by its main direction: the component of the
// normal with the smallest magnitude is dropped and the remaining
// two are swapped with one negated.
func DefaultXDir(n r3.Vec) r3.Vec {
	a, b, c := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	var d r3.Vec
	switch {
	case b <= a && b <= c:
		if a > c {
			d = Vec(-n.Z, 0, n.X)
		} else {
			d = Vec(n.Z, 0, -n.X)
		}
	case a <= b && a <= c:
		if b > c {
			d = Vec(0, -n.Z, n.Y)
		} else {
			d = Vec(0, n.Z, -n.Y)
		}
	default:
		if a > b {
			d = Vec(-n.Y, n.X, 0)
		} else {
			d = Vec(n.Y, -n.X, 0)
		}
	}
	return r3.Unit(d)
}

// Normal returns the plane normal.
func (p Plane) Normal() r3.Vec {
	return p.ZDir
}

// Location returns the placement that maps plane-local coordinates
// to global coordinates.
func (p Plane) Location() Location {
	return LocationFromTransform(p.transform())
}

func (p Plane) transform() Transform {
	t := Translation(p.Origin)
	m := t.dense()
	cols := [3]r3.Vec{p.XDir, p.YDir, p.ZDir}
	for j, c := range cols {
		m.Set(0, j, c.X)
		m.Set(1, j, c.Y)
		m.Set(2, j, c.Z)
	}
	return t
}

// ToWorld converts plane-local coordinates to global coordinates.
func (p Plane) ToWorld(local r3.Vec) r3.Vec {
	return r3.Add(p.Origin, r3.Add(r3.Scale(local.X, p.XDir),
		r3.Add(r3.Scale(local.Y, p.YDir), r3.Scale(local.Z, p.ZDir))))
}

// ToLocal converts global coordinates to plane-local coordinates.
func (p Plane) ToLocal(world r3.Vec) r3.Vec {
	d := r3.Sub(world, p.Origin)
	return Vec(r3.Dot(d, p.XDir), r3.Dot(d, p.YDir), r3.Dot(d, p.ZDir))
}

// Equal returns whether two planes have the same origin and
// directions within tol.
func (p Plane) Equal(o Plane, tol float64) bool {
	return EqualVec(p.Origin, o.Origin, tol) && EqualVec(p.XDir, o.XDir, tol) &&
		EqualVec(p.YDir, o.YDir, tol) && EqualVec(p.ZDir, o.ZDir, tol)
}

// String returns the origin and normal of the plane.
func (p Plane) String() string {
	return fmt.Sprintf("Plane(origin=(%g, %g, %g), xDir=(%g, %g, %g), normal=(%g, %g, %g))",
		p.Origin.X, p.Origin.Y, p.Origin.Z, p.XDir.X, p.XDir.Y, p.XDir.Z, p.ZDir.X, p.ZDir.Y, p.ZDir.Z)
}
