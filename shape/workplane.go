// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/cad/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// Workplane is a scripting context: a reference plane and a stack
// of shapes that subsequent operations act on. Selection and
// placement operations return a new workplane whose parent is the
// receiver, so a chain can be unwound with [Workplane.End].
type Workplane struct {

	// Plane is the reference plane of the workplane.
	Plane geom.Plane

	objects []Shape
	parent  *Workplane
}

// NewWorkplane returns an empty workplane on the global XY plane.
func NewWorkplane() *Workplane {
	return &Workplane{Plane: geom.XYPlane()}
}

// NewWorkplaneOn returns an empty workplane on the given plane.
func NewWorkplaneOn(pl geom.Plane) *Workplane {
	return &Workplane{Plane: pl}
}

// Add pushes the given shapes onto the stack of the workplane and
// returns it. The shapes are held by reference.
func (w *Workplane) Add(shapes ...Shape) *Workplane {
	w.objects = append(w.objects, shapes...)
	return w
}

// Size returns the number of shapes on the stack.
func (w *Workplane) Size() int {
	return len(w.objects)
}

// Val returns the first shape on the stack, or nil if it is empty.
func (w *Workplane) Val() Shape {
	if len(w.objects) == 0 {
		return nil
	}
	return w.objects[0]
}

// Vals returns the shapes on the stack.
func (w *Workplane) Vals() []Shape {
	return w.objects
}

// End returns the workplane this one was derived from, or nil.
func (w *Workplane) End() *Workplane {
	return w.parent
}

func (w *Workplane) child(objs []Shape) *Workplane {
	return &Workplane{Plane: w.Plane, objects: objs, parent: w}
}

// Faces returns a new workplane holding the faces of every shape on
// the stack that match the given selector. An empty selector
// selects all faces.
func (w *Workplane) Faces(selector string) (*Workplane, error) {
	var faces []*Face
	for _, s := range w.objects {
		faces = append(faces, s.Faces()...)
	}
	if selector != "" {
		sel, err := ParseSelector(selector)
		if err != nil {
			return nil, fmt.Errorf("shape.Workplane.Faces: %w", err)
		}
		faces = sel.Filter(faces)
	}
	objs := make([]Shape, len(faces))
	for i, f := range faces {
		objs[i] = f
	}
	return w.child(objs), nil
}

// Translate returns a new workplane holding copies of the shapes on
// the stack translated by v. The shapes on w are not modified.
func (w *Workplane) Translate(v r3.Vec) *Workplane {
	loc := geom.NewLocation(v)
	objs := make([]Shape, len(w.objects))
	for i, s := range w.objects {
		objs[i] = s.Moved(loc)
	}
	return w.child(objs)
}

// Workplane returns a new, empty workplane on the plane of the
// single face on the stack, as CAD scripts do to sketch on a face.
func (w *Workplane) Workplane() (*Workplane, error) {
	if len(w.objects) != 1 {
		return nil, fmt.Errorf("shape.Workplane.Workplane: need exactly one face on the stack, have %d objects", len(w.objects))
	}
	f, ok := w.objects[0].(*Face)
	if !ok {
		return nil, fmt.Errorf("shape.Workplane.Workplane: stack holds a %v, not a face", w.objects[0].Type())
	}
	pl, err := geom.NewPlane(f.Center(), r3.Vec{}, f.Normal())
	if err != nil {
		return nil, fmt.Errorf("shape.Workplane.Workplane: %w", err)
	}
	return &Workplane{Plane: pl, parent: w}, nil
}
