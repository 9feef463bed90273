// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an axis aligned bounding box defined by two points:
// the point with minimum coordinates and the point with maximum
// coordinates. Unlike [r3.Box], a Box with zero thickness in some
// direction (a planar face) is not empty.
type Box struct {
	Min r3.Vec
	Max r3.Vec
}

// EmptyBox returns a new [Box] with empty minimum and maximum values,
// ready to be expanded by points.
func EmptyBox() Box {
	bx := Box{}
	bx.SetEmpty()
	return bx
}

// BoxFromPoints returns the bounding box of the given points.
func BoxFromPoints(points ...r3.Vec) Box {
	bx := EmptyBox()
	for _, p := range points {
		bx.ExpandByPoint(p)
	}
	return bx
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box) SetEmpty() {
	inf := math.Inf(1)
	b.Min = Vec(inf, inf, inf)
	b.Max = Vec(-inf, -inf, -inf)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoint expands this bounding box to include the given point.
func (b *Box) ExpandByPoint(p r3.Vec) {
	b.Min = Vec(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z))
	b.Max = Vec(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z))
}

// ExpandByBox expands this bounding box to include the given box.
func (b *Box) ExpandByBox(o Box) {
	if o.IsEmpty() {
		return
	}
	b.ExpandByPoint(o.Min)
	b.ExpandByPoint(o.Max)
}

// Center returns the center of the bounding box.
func (b Box) Center() r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Size returns the vector from the minimum point to the maximum point.
func (b Box) Size() r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// ContainsPoint returns whether this bounding box contains the given point.
func (b Box) ContainsPoint(p r3.Vec) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Corners returns the eight corners of the box.
func (b Box) Corners() [8]r3.Vec {
	return [8]r3.Vec{
		Vec(b.Min.X, b.Min.Y, b.Min.Z),
		Vec(b.Min.X, b.Min.Y, b.Max.Z),
		Vec(b.Min.X, b.Max.Y, b.Min.Z),
		Vec(b.Max.X, b.Min.Y, b.Min.Z),
		Vec(b.Max.X, b.Max.Y, b.Max.Z),
		Vec(b.Max.X, b.Max.Y, b.Min.Z),
		Vec(b.Max.X, b.Min.Y, b.Max.Z),
		Vec(b.Min.X, b.Max.Y, b.Max.Z),
	}
}

// Transformed returns the box spanning the corners of this box
// placed by the given location.
func (b Box) Transformed(l Location) Box {
	if b.IsEmpty() {
		return b
	}
	nb := EmptyBox()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(l.Apply(c))
	}
	return nb
}
