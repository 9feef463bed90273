// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cadutil provides small accessors that reduce boilerplate in
// CAD part programs: getting a positioned component out of an
// assembly, reading the position of a location, deriving a plane from
// a face, and isolating a shape in its own workplane.
package cadutil

import (
	"fmt"

	"cogentcore.org/cad/geom"
	"cogentcore.org/cad/shape"
	"gonum.org/v1/gonum/spatial/r3"
)

// GetPositionedComponent returns the named component of an assembly,
// placed where the assembly positions it. This is useful when an
// assembly is used to position components and that position is needed
// later on in the part program.
//
// The named node is converted to a compound and its first child is
// returned, so the node is expected to hold exactly one shape. An
// unknown name returns an error wrapping [shape.ErrNotFound], and a
// node without shapes one wrapping [shape.ErrEmptyCompound].
func GetPositionedComponent(assembly *shape.Assembly, name string) (shape.Shape, error) {
	node, err := assembly.Object(name)
	if err != nil {
		return nil, err
	}
	s, err := node.ToCompound().First()
	if err != nil {
		return nil, fmt.Errorf("cadutil.GetPositionedComponent: component %q: %w", name, err)
	}
	return s, nil
}

// LocationPosition returns the translation of a location in XYZ order.
// This is useful for printing locations while debugging, or for
// turning them into vectors.
func LocationPosition(loc geom.Location) (x, y, z float64) {
	t := loc.Transformation().TranslationPart()
	return t.X, t.Y, t.Z
}

// LocationVector returns the translation of a location as a vector.
func LocationVector(loc geom.Location) r3.Vec {
	x, y, z := LocationPosition(loc)
	return geom.Vec(x, y, z)
}

// PlaneFromFace returns a plane through the center of the given face
// with the face normal at that center. It converts the topological
// face into its geometric equivalent.
func PlaneFromFace(face *shape.Face) (geom.Plane, error) {
	c := face.Center()
	pl, err := geom.NewPlane(c, r3.Vec{}, face.NormalAt(c))
	if err != nil {
		return geom.Plane{}, fmt.Errorf("cadutil.PlaneFromFace: %w", err)
	}
	return pl, nil
}

// WorkplaneWithCopy returns a new workplane whose stack holds only an
// independent copy of the given shape. Selectors and other workplane
// operations are more convenient than working on a bare shape, and
// the copy keeps in-place edits from reaching the original.
func WorkplaneWithCopy(s shape.Shape) *shape.Workplane {
	return shape.NewWorkplane().Add(s.Copy())
}
