// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"math"

	"cogentcore.org/cad/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Solid is a closed volume bounded by outward oriented faces.
type Solid struct {
	faces []*Face
}

// NewSolid returns a solid bounded by the given faces, which must
// form a closed shell with outward normals. The faces are copied.
func NewSolid(faces ...*Face) (*Solid, error) {
	if len(faces) < 4 {
		return nil, fmt.Errorf("shape.NewSolid: %w: need at least 4 faces, got %d", geom.ErrDegenerate, len(faces))
	}
	s := &Solid{faces: make([]*Face, len(faces))}
	for i, f := range faces {
		s.faces[i] = f.copy()
	}
	return s, nil
}

// MakeBox returns an axis aligned box with one corner at pnt and
// the given extents along x, y and z. The faces are ordered
// -X, +X, -Y, +Y, -Z, +Z.
func MakeBox(length, width, height float64, pnt r3.Vec) (*Solid, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("shape.MakeBox: %w: box dimensions must be positive, got %g x %g x %g", geom.ErrDegenerate, length, width, height)
	}
	c := func(x, y, z float64) r3.Vec {
		return r3.Add(pnt, geom.Vec(x, y, z))
	}
	l, w, h := length, width, height
	quads := [6][4]r3.Vec{
		{c(0, 0, 0), c(0, 0, h), c(0, w, h), c(0, w, 0)},
		{c(l, 0, 0), c(l, w, 0), c(l, w, h), c(l, 0, h)},
		{c(0, 0, 0), c(l, 0, 0), c(l, 0, h), c(0, 0, h)},
		{c(0, w, 0), c(0, w, h), c(l, w, h), c(l, w, 0)},
		{c(0, 0, 0), c(0, w, 0), c(l, w, 0), c(l, 0, 0)},
		{c(0, 0, h), c(l, 0, h), c(l, w, h), c(0, w, h)},
	}
	s := &Solid{faces: make([]*Face, 0, 6)}
	for _, q := range quads {
		s.faces = append(s.faces, &Face{verts: q[:]})
	}
	return s, nil
}

// Type returns [ShapeSolid].
func (s *Solid) Type() ShapeTypes {
	return ShapeSolid
}

// Faces returns the bounding faces of the solid. They are the
// solid's own faces: editing them edits the solid.
func (s *Solid) Faces() []*Face {
	return s.faces
}

// Volume returns the enclosed volume, from the divergence theorem
// over a triangle fan of every face.
func (s *Solid) Volume() float64 {
	v, _ := s.volumeCentroid()
	return v
}

func (s *Solid) volumeCentroid() (float64, r3.Vec) {
	var vol float64
	var moment r3.Vec
	for _, f := range s.faces {
		for _, t := range f.fan() {
			tv := r3.Dot(t[0], r3.Cross(t[1], t[2])) / 6
			vol += tv
			moment = r3.Add(moment, r3.Scale(tv/4, r3.Add(r3.Add(t[0], t[1]), t[2])))
		}
	}
	return vol, moment
}

// Center returns the center of mass of the solid, assuming uniform
// density. An open or flat shell falls back on the bounding box center.
func (s *Solid) Center() r3.Vec {
	vol, moment := s.volumeCentroid()
	if math.Abs(vol) <= geom.Tolerance {
		return s.BoundingBox().Center()
	}
	return r3.Scale(1/vol, moment)
}

// Copy returns an independent copy of the solid.
func (s *Solid) Copy() Shape {
	return s.copy()
}

func (s *Solid) copy() *Solid {
	cp := &Solid{faces: make([]*Face, len(s.faces))}
	for i, f := range s.faces {
		cp.faces[i] = f.copy()
	}
	return cp
}

// Move places the solid by the given location, in place.
func (s *Solid) Move(loc geom.Location) {
	for _, f := range s.faces {
		f.Move(loc)
	}
}

// Moved returns a copy of the solid placed by the given location.
func (s *Solid) Moved(loc geom.Location) Shape {
	cp := s.copy()
	cp.Move(loc)
	return cp
}

// BoundingBox returns the bounding box of the solid.
func (s *Solid) BoundingBox() geom.Box {
	return boundingBox(s.faces)
}

// String returns the face count and volume of the solid.
func (s *Solid) String() string {
	return fmt.Sprintf("Solid(%d faces, volume=%g)", len(s.faces), s.Volume())
}
