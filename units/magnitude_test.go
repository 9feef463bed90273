// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"cogentcore.org/cad/base/errors"
	"cogentcore.org/cad/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/unit"
)

func TestToBaseMagnitude(t *testing.T) {
	reg := newRegistry(t)

	// other values are returned unchanged
	var nilq *Quantity
	for _, v := range []any{"x", 3, 2.5, nil, true, nilq, []float64{1}} {
		got, err := ToBaseMagnitude(reg, v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	got, err := ToBaseMagnitude(reg, Q(5, "mm"))
	require.NoError(t, err)
	require.IsType(t, float64(0), got)
	tolassert.Equal(t, 0.005, got.(float64))

	q := In(2)
	got, err = ToBaseMagnitude(reg, &q)
	require.NoError(t, err)
	tolassert.Equal(t, 2*MetersPerInch, got.(float64))

	// a magnitude is not converted again
	again, err := ToBaseMagnitude(reg, got)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	require.NoError(t, reg.UseSystem(SIEngineering))
	got, err = ToBaseMagnitude(reg, unit.Length(0.005))
	require.NoError(t, err)
	tolassert.Equal(t, 5, got.(float64))

	got, err = ToBaseMagnitude(reg, unit.Mass(3))
	require.NoError(t, err)
	tolassert.Equal(t, 3, got.(float64))

	_, err = ToBaseMagnitude(reg, Q(1, "furlong"))
	assert.ErrorIs(t, err, ErrUndefinedUnit)
}

func TestBaseMagnitude(t *testing.T) {
	reg := newRegistry(t, USEngineering)
	m, err := BaseMagnitude(reg, Mm(25.4))
	require.NoError(t, err)
	tolassert.EqualTol(t, 1000, m, 1e-9)

	m, err = BaseMagnitude(reg, unit.Length(MetersPerInch))
	require.NoError(t, err)
	tolassert.EqualTol(t, 1000, m, 1e-9)

	_, err = BaseMagnitude(reg, (*Quantity)(nil))
	assert.Error(t, err)
	_, err = BaseMagnitude(reg, (*unit.Unit)(nil))
	assert.Error(t, err)
}

func TestBaseMagnitudes(t *testing.T) {
	reg := newRegistry(t, SIEngineering)
	got, err := BaseMagnitudes(reg, In(1), "label", 7)
	require.NoError(t, err)
	require.Len(t, got, 3)
	tolassert.Equal(t, MmPerInch, got[0].(float64))
	assert.Equal(t, []any{"label", 7}, got[1:])

	got, err = BaseMagnitudes(reg)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = BaseMagnitudes(reg, Mm(1), Q(1, "furlong"))
	assert.ErrorIs(t, err, ErrUndefinedUnit)
	assert.ErrorContains(t, err, "argument 1")
}

func TestArgsToBaseMagnitude(t *testing.T) {
	reg := newRegistry(t)
	var seen Args
	calls := 0
	part := ArgsToBaseMagnitude(reg, func(a Args) (string, error) {
		calls++
		seen = a
		return "part", nil
	})

	res, err := part(Args{Positional: []any{Q(5, "mm"), "x"}})
	require.NoError(t, err)
	assert.Equal(t, "part", res)
	require.Len(t, seen.Positional, 2)
	tolassert.Equal(t, 0.005, seen.Positional[0].(float64))
	assert.Equal(t, "x", seen.Positional[1])
	assert.Nil(t, seen.Keyword)

	res, err = part(Args{
		Positional: []any{"x"},
		Keyword:    map[string]any{"width": In(1), "height": unit.Length(2), "label": "y", "count": 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "part", res)
	assert.Equal(t, []any{"x"}, seen.Positional)
	require.Len(t, seen.Keyword, 4)
	tolassert.Equal(t, MetersPerInch, seen.Keyword["width"].(float64))
	tolassert.Equal(t, 2, seen.Keyword["height"].(float64))
	assert.Equal(t, "y", seen.Keyword["label"])
	assert.Equal(t, 3, seen.Keyword["count"])
	assert.Equal(t, 2, calls)

	// conversion errors do not call the function
	_, err = part(Args{Keyword: map[string]any{"width": Q(1, "furlong")}})
	assert.ErrorIs(t, err, ErrUndefinedUnit)
	assert.ErrorContains(t, err, "width")
	_, err = part(Args{Positional: []any{Q(1, "furlong")}})
	assert.ErrorIs(t, err, ErrUndefinedUnit)
	assert.Equal(t, 2, calls)
}

func TestArgsToBaseMagnitudeResult(t *testing.T) {
	reg := newRegistry(t, SIEngineering)
	errPart := errors.New("too thin")
	area := ArgsToBaseMagnitude(reg, func(a Args) (float64, error) {
		w, h := a.Positional[0].(float64), a.Positional[1].(float64)
		if w < 1 {
			return w * h, errPart
		}
		return w * h, nil
	})

	got, err := area(Args{Positional: []any{Q(2, "cm"), In(1)}})
	require.NoError(t, err)
	tolassert.EqualTol(t, 20*MmPerInch, got, 1e-9)

	got, err = area(Args{Positional: []any{Q(0.5, "mm"), Mm(4)}})
	assert.ErrorIs(t, err, errPart)
	tolassert.Equal(t, 2, got)
}
