// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape is the topological object model used by CAD part
// programs: planar [Face]s, [Solid]s bounded by faces, [Compound]s
// grouping shapes under a placement, named [Assembly] trees, and the
// [Workplane] context that holds a stack of shapes for further
// operations.
//
// Shapes are mutable pointers. Operations that return a new shape
// (Copy, Moved) never share vertex storage with the receiver, while
// Move edits the receiver in place.
package shape

import (
	"errors"

	"cogentcore.org/cad/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNotFound is returned when a named object is not present.
	ErrNotFound = errors.New("shape: not found")

	// ErrEmptyCompound is returned when a shape is requested
	// from a compound that has no children.
	ErrEmptyCompound = errors.New("shape: empty compound")

	// ErrDuplicateName is returned when an assembly already
	// contains an object with a given name.
	ErrDuplicateName = errors.New("shape: duplicate name")
)

// ShapeTypes are the kinds of [Shape].
type ShapeTypes int32 //enums:enum -trim-prefix Shape

const (
	// ShapeFace is a bounded planar surface.
	ShapeFace ShapeTypes = iota

	// ShapeSolid is a volume bounded by faces.
	ShapeSolid

	// ShapeCompound is a group of shapes with a common placement.
	ShapeCompound
)

// Shape is the interface satisfied by all topological shapes.
type Shape interface {

	// Type returns the kind of shape.
	Type() ShapeTypes

	// Copy returns an independent deep copy of the shape.
	Copy() Shape

	// Move places the shape by the given location, in place.
	Move(loc geom.Location)

	// Moved returns a copy of the shape placed by the given location.
	Moved(loc geom.Location) Shape

	// Faces returns the faces of the shape, in global coordinates.
	Faces() []*Face

	// BoundingBox returns the axis aligned bounding box of the shape.
	BoundingBox() geom.Box

	// Center returns the center of mass of the shape.
	Center() r3.Vec
}

// Equal returns whether the two shapes are geometrically equal
// within the given tolerance: the same kind of shape, with the same
// faces in the same order and the same vertices. Equal shapes may be
// distinct objects.
func Equal(a, b Shape, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}
	if ca, ok := a.(*Compound); ok {
		cb := b.(*Compound)
		ach, bch := ca.Children(), cb.Children()
		if len(ach) != len(bch) {
			return false
		}
		for i := range ach {
			if !Equal(ach[i], bch[i], tol) {
				return false
			}
		}
		return true
	}
	af, bf := a.Faces(), b.Faces()
	if len(af) != len(bf) {
		return false
	}
	for i := range af {
		if !af[i].equal(bf[i], tol) {
			return false
		}
	}
	return true
}

// boundingBox returns the bounding box of the given faces.
func boundingBox(faces []*Face) geom.Box {
	bx := geom.EmptyBox()
	for _, f := range faces {
		bx.ExpandByBox(f.BoundingBox())
	}
	return bx
}
