// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is an affine transform in homogeneous coordinates,
// stored as a 4x4 row-major matrix whose last row is 0 0 0 1.
// The zero value is the identity transform. Transforms are
// immutable: all methods return new values.
type Transform struct {
	m *mat.Dense
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{}
}

func identity4() *mat.Dense {
	return mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// dense returns the matrix of the transform, which is the
// identity for the zero value. It must not be modified.
func (t Transform) dense() *mat.Dense {
	if t.m == nil {
		return identity4()
	}
	return t.m
}

// Translation returns a transform that translates by v.
func Translation(v r3.Vec) Transform {
	m := identity4()
	m.Set(0, 3, v.X)
	m.Set(1, 3, v.Y)
	m.Set(2, 3, v.Z)
	return Transform{m: m}
}

// Rotation returns a transform that rotates by angle radians
// around the given axis through the origin, following the right
// hand rule. It returns [ErrZeroNormal] for a zero axis.
func Rotation(axis r3.Vec, angle float64) (Transform, error) {
	dir, err := Direction(axis)
	if err != nil {
		return Transform{}, fmt.Errorf("rotation axis: %w", err)
	}
	rm := r3.NewRotation(angle, dir).Mat()
	m := identity4()
	for i := range 3 {
		for j := range 3 {
			m.Set(i, j, rm.At(i, j))
		}
	}
	return Transform{m: m}, nil
}

// At returns the matrix element at row i and column j.
func (t Transform) At(i, j int) float64 {
	return t.dense().At(i, j)
}

// TranslationPart returns the translation component of the transform:
// the image of the origin.
func (t Transform) TranslationPart() r3.Vec {
	m := t.dense()
	return Vec(m.At(0, 3), m.At(1, 3), m.At(2, 3))
}

// Mul returns the composition t * o, which applies o first and then t.
func (t Transform) Mul(o Transform) Transform {
	if t.m == nil {
		return o
	}
	if o.m == nil {
		return t
	}
	var r mat.Dense
	r.Mul(t.m, o.m)
	return Transform{m: &r}
}

// Inverse returns the inverse transform, or an error if the
// transform is singular.
func (t Transform) Inverse() (Transform, error) {
	if t.m == nil {
		return t, nil
	}
	var r mat.Dense
	if err := r.Inverse(t.m); err != nil {
		return Transform{}, fmt.Errorf("%w: singular transform: %v", ErrDegenerate, err)
	}
	return Transform{m: &r}, nil
}

// Apply returns the point p transformed by t.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	m := t.dense()
	return Vec(
		m.At(0, 0)*p.X+m.At(0, 1)*p.Y+m.At(0, 2)*p.Z+m.At(0, 3),
		m.At(1, 0)*p.X+m.At(1, 1)*p.Y+m.At(1, 2)*p.Z+m.At(1, 3),
		m.At(2, 0)*p.X+m.At(2, 1)*p.Y+m.At(2, 2)*p.Z+m.At(2, 3),
	)
}

// ApplyDir returns the direction v transformed by t, ignoring
// the translation part.
func (t Transform) ApplyDir(v r3.Vec) r3.Vec {
	m := t.dense()
	return Vec(
		m.At(0, 0)*v.X+m.At(0, 1)*v.Y+m.At(0, 2)*v.Z,
		m.At(1, 0)*v.X+m.At(1, 1)*v.Y+m.At(1, 2)*v.Z,
		m.At(2, 0)*v.X+m.At(2, 1)*v.Y+m.At(2, 2)*v.Z,
	)
}

// Equal returns whether the two transforms are equal within
// the given absolute tolerance, element by element.
func (t Transform) Equal(o Transform, tol float64) bool {
	return mat.EqualApprox(t.dense(), o.dense(), tol)
}

// String returns the matrix rows of the transform.
func (t Transform) String() string {
	return fmt.Sprintf("%v", mat.Formatted(t.dense(), mat.Squeeze()))
}
