// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"math"
	"slices"

	"cogentcore.org/cad/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// planarTol is the maximum distance of a face vertex from the
// plane of the face.
const planarTol = 1e-7

// Face is a planar face bounded by a simple polygon. The vertex
// order defines the face orientation by the right hand rule.
type Face struct {
	verts []r3.Vec
}

// NewPolygonFace returns a face bounded by the given closed polygon.
// The polygon must have at least three vertices, non-zero area, and
// all of its vertices in one plane.
func NewPolygonFace(points ...r3.Vec) (*Face, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("shape.NewPolygonFace: %w: need at least 3 points, got %d", geom.ErrDegenerate, len(points))
	}
	f := &Face{verts: slices.Clone(points)}
	area := f.areaVector()
	if geom.IsZero(area) {
		return nil, fmt.Errorf("shape.NewPolygonFace: %w: zero area polygon", geom.ErrDegenerate)
	}
	n := r3.Unit(area)
	for i, p := range f.verts {
		if d := math.Abs(r3.Dot(r3.Sub(p, f.verts[0]), n)); d > planarTol {
			return nil, fmt.Errorf("shape.NewPolygonFace: %w: vertex %d is %g off the face plane", geom.ErrDegenerate, i, d)
		}
	}
	return f, nil
}

// NewRectFace returns a rectangular face of the given size centered
// on the origin of the given plane, oriented along the plane normal.
func NewRectFace(pl geom.Plane, xLen, yLen float64) (*Face, error) {
	hx, hy := xLen/2, yLen/2
	return NewPolygonFace(
		pl.ToWorld(geom.Vec(-hx, -hy, 0)),
		pl.ToWorld(geom.Vec(hx, -hy, 0)),
		pl.ToWorld(geom.Vec(hx, hy, 0)),
		pl.ToWorld(geom.Vec(-hx, hy, 0)),
	)
}

// Type returns [ShapeFace].
func (f *Face) Type() ShapeTypes {
	return ShapeFace
}

// Vertices returns a copy of the boundary vertices of the face.
func (f *Face) Vertices() []r3.Vec {
	return slices.Clone(f.verts)
}

// fan returns the triangles of a fan from the first vertex.
func (f *Face) fan() []r3.Triangle {
	if len(f.verts) < 3 {
		return nil
	}
	tris := make([]r3.Triangle, 0, len(f.verts)-2)
	for i := 1; i < len(f.verts)-1; i++ {
		tris = append(tris, r3.Triangle{f.verts[0], f.verts[i], f.verts[i+1]})
	}
	return tris
}

// areaVector returns the vector normal to the face with a
// magnitude of twice its area.
func (f *Face) areaVector() r3.Vec {
	var sum r3.Vec
	for _, t := range f.fan() {
		sum = r3.Add(sum, t.Normal())
	}
	return sum
}

// Area returns the area of the face.
func (f *Face) Area() float64 {
	return r3.Norm(f.areaVector()) / 2
}

// Normal returns the unit normal of the face. It is the zero vector
// for a face with no area.
func (f *Face) Normal() r3.Vec {
	av := f.areaVector()
	if geom.IsZero(av) {
		return r3.Vec{}
	}
	return r3.Unit(av)
}

// NormalAt returns the unit normal of the face at the given point.
// Faces are planar, so this is the same everywhere on the face.
func (f *Face) NormalAt(p r3.Vec) r3.Vec {
	return f.Normal()
}

// Center returns the centroid (center of area) of the face.
// A face with no area returns the mean of its vertices.
func (f *Face) Center() r3.Vec {
	n := f.Normal()
	var sum r3.Vec
	var total float64
	for _, t := range f.fan() {
		a := r3.Dot(t.Normal(), n) / 2
		sum = r3.Add(sum, r3.Scale(a, t.Centroid()))
		total += a
	}
	if total == 0 {
		var mean r3.Vec
		for _, v := range f.verts {
			mean = r3.Add(mean, v)
		}
		if len(f.verts) > 0 {
			mean = r3.Scale(1/float64(len(f.verts)), mean)
		}
		return mean
	}
	return r3.Scale(1/total, sum)
}

// Copy returns an independent copy of the face.
func (f *Face) Copy() Shape {
	return f.copy()
}

func (f *Face) copy() *Face {
	return &Face{verts: slices.Clone(f.verts)}
}

// Move places the face by the given location, in place.
func (f *Face) Move(loc geom.Location) {
	for i, v := range f.verts {
		f.verts[i] = loc.Apply(v)
	}
}

// Moved returns a copy of the face placed by the given location.
func (f *Face) Moved(loc geom.Location) Shape {
	cp := f.copy()
	cp.Move(loc)
	return cp
}

// Faces returns the face itself.
func (f *Face) Faces() []*Face {
	return []*Face{f}
}

// BoundingBox returns the bounding box of the face vertices.
func (f *Face) BoundingBox() geom.Box {
	return geom.BoxFromPoints(f.verts...)
}

// equal returns whether the two faces have the same vertices within tol.
func (f *Face) equal(o *Face, tol float64) bool {
	return slices.EqualFunc(f.verts, o.verts, func(a, b r3.Vec) bool {
		return geom.EqualVec(a, b, tol)
	})
}

// String returns the vertex count, center and normal of the face.
func (f *Face) String() string {
	c, n := f.Center(), f.Normal()
	return fmt.Sprintf("Face(%d vertices, center=(%g, %g, %g), normal=(%g, %g, %g))",
		len(f.verts), c.X, c.Y, c.Z, n.X, n.Y, n.Z)
}
