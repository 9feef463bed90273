// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/cad/base/tolassert"
	"cogentcore.org/cad/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const standardTol = 1e-9

func assertVec(t *testing.T, want, have r3.Vec) {
	t.Helper()
	if diff := cmp.Diff(want, have, cmpopts.EquateApprox(0, standardTol)); diff != "" {
		t.Errorf("vector mismatch (-want +have):\n%s", diff)
	}
}

func unitBox(t *testing.T) *Solid {
	t.Helper()
	s, err := MakeBox(2, 4, 6, r3.Vec{})
	require.NoError(t, err)
	return s
}

func TestShapeTypes(t *testing.T) {
	assert.Equal(t, "Face", ShapeFace.String())
	assert.Equal(t, "Compound", ShapeCompound.String())
	var st ShapeTypes
	assert.NoError(t, st.SetString("Solid"))
	assert.Equal(t, ShapeSolid, st)
	assert.Error(t, st.UnmarshalText([]byte("Edge")))
	assert.Len(t, ShapeTypesValues(), int(ShapeTypesN))
}

func TestPolygonFace(t *testing.T) {
	f, err := NewPolygonFace(geom.Vec(0, 0, 1), geom.Vec(2, 0, 1), geom.Vec(2, 2, 1), geom.Vec(0, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, ShapeFace, f.Type())
	tolassert.Equal(t, 4, f.Area())
	assertVec(t, geom.ZDir, f.Normal())
	assertVec(t, geom.ZDir, f.NormalAt(f.Center()))
	assertVec(t, geom.Vec(1, 1, 1), f.Center())

	// an L shape, whose centroid differs from its vertex mean
	l, err := NewPolygonFace(geom.Vec(0, 0, 0), geom.Vec(2, 0, 0), geom.Vec(2, 1, 0),
		geom.Vec(1, 1, 0), geom.Vec(1, 2, 0), geom.Vec(0, 2, 0))
	require.NoError(t, err)
	tolassert.Equal(t, 3, l.Area())
	assertVec(t, geom.Vec(5.0/6, 5.0/6, 0), l.Center())

	_, err = NewPolygonFace(geom.Vec(0, 0, 0), geom.Vec(1, 0, 0))
	assert.ErrorIs(t, err, geom.ErrDegenerate)
	_, err = NewPolygonFace(geom.Vec(0, 0, 0), geom.Vec(1, 0, 0), geom.Vec(2, 0, 0))
	assert.ErrorIs(t, err, geom.ErrDegenerate)
	_, err = NewPolygonFace(geom.Vec(0, 0, 0), geom.Vec(1, 0, 0), geom.Vec(1, 1, 0), geom.Vec(0, 1, 1))
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestRectFace(t *testing.T) {
	pl, err := geom.NewPlane(geom.Vec(0, 0, 3), r3.Vec{}, geom.Vec(0, 0, -1))
	require.NoError(t, err)
	f, err := NewRectFace(pl, 2, 4)
	require.NoError(t, err)
	tolassert.Equal(t, 8, f.Area())
	assertVec(t, geom.Vec(0, 0, 3), f.Center())
	assertVec(t, geom.Vec(0, 0, -1), f.Normal())
}

func TestFaceMove(t *testing.T) {
	f, err := NewRectFace(geom.XYPlane(), 1, 1)
	require.NoError(t, err)
	moved := f.Moved(geom.NewLocation(geom.Vec(0, 0, 5)))
	assertVec(t, r3.Vec{}, f.Center())
	assertVec(t, geom.Vec(0, 0, 5), moved.Center())

	cp := f.Copy()
	assert.True(t, Equal(f, cp, standardTol))
	assert.NotSame(t, f, cp)
	cp.Move(geom.NewLocation(geom.Vec(1, 0, 0)))
	assert.False(t, Equal(f, cp, standardTol))
	assertVec(t, r3.Vec{}, f.Center())
}

func TestMakeBox(t *testing.T) {
	s := unitBox(t)
	assert.Equal(t, ShapeSolid, s.Type())
	require.Len(t, s.Faces(), 6)
	tolassert.Equal(t, 48, s.Volume())
	assertVec(t, geom.Vec(1, 2, 3), s.Center())
	assertVec(t, geom.Vec(2, 4, 6), s.BoundingBox().Size())

	normals := []r3.Vec{geom.Vec(-1, 0, 0), geom.XDir, geom.Vec(0, -1, 0), geom.YDir, geom.Vec(0, 0, -1), geom.ZDir}
	for i, f := range s.Faces() {
		assertVec(t, normals[i], f.Normal())
	}

	_, err := MakeBox(0, 1, 1, r3.Vec{})
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestNewSolid(t *testing.T) {
	box := unitBox(t)
	s, err := NewSolid(box.Faces()...)
	require.NoError(t, err)
	assert.True(t, Equal(box, s, standardTol))
	s.Faces()[0].Move(geom.NewLocation(geom.Vec(-1, 0, 0)))
	assert.False(t, Equal(box, s, standardTol))

	_, err = NewSolid(box.Faces()[:2]...)
	assert.ErrorIs(t, err, geom.ErrDegenerate)
}

func TestSolidMove(t *testing.T) {
	s := unitBox(t)
	rot, err := geom.NewLocationRotated(geom.Vec(10, 0, 0), geom.ZDir, 90)
	require.NoError(t, err)
	moved := s.Moved(rot)
	assertVec(t, geom.Vec(1, 2, 3), s.Center())
	assertVec(t, geom.Vec(8, 1, 3), moved.Center())
	tolassert.Equal(t, 48, moved.(*Solid).Volume())

	s.Move(geom.NewLocation(geom.Vec(0, 0, 1)))
	assertVec(t, geom.Vec(1, 2, 4), s.Center())
}

func TestCompound(t *testing.T) {
	a := unitBox(t)
	b, err := MakeBox(1, 1, 1, geom.Vec(5, 0, 0))
	require.NoError(t, err)
	c := MakeCompound(a, b)
	assert.Equal(t, ShapeCompound, c.Type())
	assert.Equal(t, 2, c.Len())
	first, err := c.First()
	require.NoError(t, err)
	assert.NotSame(t, a, first)
	assert.True(t, Equal(a, first, standardTol))
	first.Move(geom.NewLocation(geom.Vec(0, 0, 1)))
	assertVec(t, geom.Vec(1, 2, 3), a.Center())
	assert.Len(t, c.Faces(), 12)

	c.Locate(geom.NewLocation(geom.Vec(0, 0, 10)))
	first, err = c.First()
	require.NoError(t, err)
	assertVec(t, geom.Vec(1, 2, 13), first.Center())
	assertVec(t, geom.Vec(1, 2, 3), a.Center())
	assertVec(t, geom.Vec(0, 0, 10), c.BoundingBox().Min)

	cp := c.Copy()
	assert.True(t, Equal(c, cp, standardTol))
	cp.Move(geom.NewLocation(geom.Vec(1, 0, 0)))
	assert.False(t, Equal(c, cp, standardTol))
	assertVec(t, geom.Vec(0, 0, 10), c.BoundingBox().Min)
	assertVec(t, geom.Vec(1, 0, 10), cp.BoundingBox().Min)

	_, err = MakeCompound().First()
	assert.ErrorIs(t, err, ErrEmptyCompound)
}

func TestEqual(t *testing.T) {
	a := unitBox(t)
	f, err := NewRectFace(geom.XYPlane(), 1, 1)
	require.NoError(t, err)
	assert.False(t, Equal(a, f, standardTol))
	assert.False(t, Equal(a, nil, standardTol))
	assert.True(t, Equal(nil, nil, standardTol))
	assert.False(t, Equal(MakeCompound(a), MakeCompound(a, a), standardTol))
}
