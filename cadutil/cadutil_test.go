// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cadutil

import (
	"testing"

	"cogentcore.org/cad/base/tolassert"
	"cogentcore.org/cad/geom"
	"cogentcore.org/cad/shape"
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

func TestGetPositionedComponent(t *testing.T) {
	post, err := shape.MakeBox(1, 1, 10, r3.Vec{})
	require.NoError(t, err)
	root := shape.NewAssembly("frame", geom.Location{})
	_, err = root.AddShape("post", post, geom.NewLocation(geom.Vec(5, 0, 0)))
	require.NoError(t, err)

	got, err := GetPositionedComponent(root, "post")
	require.NoError(t, err)
	want := post.Moved(geom.NewLocation(geom.Vec(5, 0, 0)))
	assert.True(t, shape.Equal(want, got, standardTol))
	assertVec(t, geom.Vec(5.5, 0.5, 5), got.Center())

	// the original shape is not moved
	assertVec(t, geom.Vec(0.5, 0.5, 5), post.Center())

	_, err = GetPositionedComponent(root, "beam")
	assert.ErrorIs(t, err, shape.ErrNotFound)

	_, err = GetPositionedComponent(root, "frame")
	require.NoError(t, err)

	empty := shape.NewAssembly("empty", geom.Location{})
	_, err = GetPositionedComponent(empty, "empty")
	assert.ErrorIs(t, err, shape.ErrEmptyCompound)
}

func TestGetPositionedComponentIdentity(t *testing.T) {
	post, err := shape.MakeBox(1, 1, 10, r3.Vec{})
	require.NoError(t, err)
	root := shape.NewAssembly("frame", geom.Location{})
	_, err = root.AddShape("post", post, geom.Location{})
	require.NoError(t, err)

	got, err := GetPositionedComponent(root, "post")
	require.NoError(t, err)
	assert.NotSame(t, post, got)
	assert.True(t, shape.Equal(post, got, standardTol))

	// moving the result leaves the assembly alone
	got.Move(geom.NewLocation(geom.Vec(100, 0, 0)))
	assertVec(t, geom.Vec(100.5, 0.5, 5), got.Center())
	assertVec(t, geom.Vec(0.5, 0.5, 5), post.Center())

	again, err := GetPositionedComponent(root, "post")
	require.NoError(t, err)
	assertVec(t, geom.Vec(0.5, 0.5, 5), again.Center())
}

func TestGetPositionedComponentRotated(t *testing.T) {
	post, err := shape.MakeBox(1, 1, 10, r3.Vec{})
	require.NoError(t, err)
	loc, err := geom.NewLocationRotated(geom.Vec(0, 0, 2), geom.XDir, 90)
	require.NoError(t, err)
	root := shape.NewAssembly("frame", geom.Location{})
	_, err = root.AddShape("post", post, loc)
	require.NoError(t, err)

	got, err := GetPositionedComponent(root, "post")
	require.NoError(t, err)
	assert.True(t, shape.Equal(post.Moved(loc), got, standardTol))
	assertVec(t, geom.Vec(0.5, -5, 2.5), got.Center())
}

func TestLocationPosition(t *testing.T) {
	x, y, z := LocationPosition(geom.NewLocation(geom.Vec(1.5, -2, 30)))
	assert.Equal(t, []float64{1.5, -2, 30}, []float64{x, y, z})

	x, y, z = LocationPosition(geom.Location{})
	assert.Equal(t, []float64{0, 0, 0}, []float64{x, y, z})

	rot, err := geom.NewLocationRotated(geom.Vec(7, 8, 9), geom.ZDir, 45)
	require.NoError(t, err)
	assert.Equal(t, geom.Vec(7, 8, 9), LocationVector(rot))
}

func TestPlaneFromFace(t *testing.T) {
	box, err := shape.MakeBox(2, 4, 6, r3.Vec{})
	require.NoError(t, err)
	for _, f := range box.Faces() {
		pl, err := PlaneFromFace(f)
		require.NoError(t, err)
		assertVec(t, f.Center(), pl.Origin)
		assertVec(t, f.Normal(), pl.Normal())
		tolassert.EqualTol(t, 0, r3.Dot(pl.XDir, pl.ZDir), standardTol)
	}

	tilted, err := shape.NewPolygonFace(geom.Vec(0, 0, 0), geom.Vec(1, 0, 1), geom.Vec(1, 1, 1), geom.Vec(0, 1, 0))
	require.NoError(t, err)
	pl, err := PlaneFromFace(tilted)
	require.NoError(t, err)
	assertVec(t, geom.Vec(0.5, 0.5, 0.5), pl.Origin)
	assertVec(t, r3.Unit(geom.Vec(-1, 0, 1)), pl.Normal())

	_, err = PlaneFromFace(&shape.Face{})
	assert.ErrorIs(t, err, geom.ErrZeroNormal)
}

func TestWorkplaneWithCopy(t *testing.T) {
	box, err := shape.MakeBox(1, 2, 3, r3.Vec{})
	require.NoError(t, err)
	wp := WorkplaneWithCopy(box)
	require.Equal(t, 1, wp.Size())

	cp := wp.Val()
	assert.NotSame(t, box, cp)
	assert.True(t, shape.Equal(box, cp, standardTol))

	cp.Move(geom.NewLocation(geom.Vec(100, 0, 0)))
	assertVec(t, geom.Vec(0.5, 1, 1.5), box.Center())
	assertVec(t, geom.Vec(100.5, 1, 1.5), cp.Center())

	top, err := wp.Faces(">Z")
	require.NoError(t, err)
	require.Equal(t, 1, top.Size())
	top.Val().Move(geom.NewLocation(geom.Vec(0, 0, 1)))
	assertVec(t, geom.Vec(0.5, 1, 3), box.Faces()[5].Center())
}
