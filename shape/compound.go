// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"iter"

	"cogentcore.org/cad/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Compound is an ordered group of shapes sharing a placement.
// The children are stored in the compound's local coordinates;
// iterating the compound yields them placed by its location.
type Compound struct {
	children []Shape
	loc      geom.Location
}

// MakeCompound returns a compound of the given shapes, which are
// held by reference, not copied.
func MakeCompound(shapes ...Shape) *Compound {
	return &Compound{children: shapes}
}

// Type returns [ShapeCompound].
func (c *Compound) Type() ShapeTypes {
	return ShapeCompound
}

// Locate sets the placement of the compound and returns it.
func (c *Compound) Locate(loc geom.Location) *Compound {
	c.loc = loc
	return c
}

// Location returns the placement of the compound.
func (c *Compound) Location() geom.Location {
	return c.loc
}

// Len returns the number of direct children of the compound.
func (c *Compound) Len() int {
	return len(c.children)
}

// Children returns the direct children of the compound placed by
// its location. Each returned shape is an independent copy, so moving
// it leaves the compound unchanged.
func (c *Compound) Children() []Shape {
	out := make([]Shape, len(c.children))
	for i, ch := range c.children {
		out[i] = c.located(ch)
	}
	return out
}

// All iterates over the placed children of the compound.
func (c *Compound) All() iter.Seq[Shape] {
	return func(yield func(Shape) bool) {
		for _, ch := range c.children {
			if !yield(c.located(ch)) {
				return
			}
		}
	}
}

// First returns the first placed child of the compound, or
// [ErrEmptyCompound] if it has none.
func (c *Compound) First() (Shape, error) {
	for s := range c.All() {
		return s, nil
	}
	return nil, ErrEmptyCompound
}

func (c *Compound) located(s Shape) Shape {
	if c.loc.IsIdentity() {
		return s.Copy()
	}
	return s.Moved(c.loc)
}

// Faces returns the faces of all children in global coordinates.
func (c *Compound) Faces() []*Face {
	var faces []*Face
	for s := range c.All() {
		faces = append(faces, s.Faces()...)
	}
	return faces
}

// Copy returns an independent deep copy of the compound.
func (c *Compound) Copy() Shape {
	cp := &Compound{children: make([]Shape, len(c.children)), loc: c.loc}
	for i, ch := range c.children {
		cp.children[i] = ch.Copy()
	}
	return cp
}

// Move places the compound by the given location, in place,
// composing it with the current placement.
func (c *Compound) Move(loc geom.Location) {
	c.loc = loc.Mul(c.loc)
}

// Moved returns a copy of the compound placed by the given location.
func (c *Compound) Moved(loc geom.Location) Shape {
	cp := c.Copy()
	cp.Move(loc)
	return cp
}

// BoundingBox returns the bounding box of all children.
func (c *Compound) BoundingBox() geom.Box {
	bx := geom.EmptyBox()
	for s := range c.All() {
		bx.ExpandByBox(s.BoundingBox())
	}
	return bx
}

// Center returns the center of the bounding box of the children.
func (c *Compound) Center() r3.Vec {
	return c.BoundingBox().Center()
}

// String returns the child count and placement of the compound.
func (c *Compound) String() string {
	return fmt.Sprintf("Compound(%d shapes, %v)", len(c.children), c.loc)
}
