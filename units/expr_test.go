// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/unit"
)

func TestNumberLen(t *testing.T) {
	tests := map[string]int{
		"5":       1,
		"25.4mm":  4,
		"1e3 m":   3,
		"1.5E-3":  6,
		"2em":     1,
		"3e+":     1,
		"mm":      0,
		".25 in":  3,
		"10e2e2":  4,
		"7 e5":    1,
		"1_000 m": 1,
	}
	for s, want := range tests {
		assert.Equal(t, want, numberLen(s), s)
	}
}

func TestLex(t *testing.T) {
	toks, err := lex("kg*m / s**2 ^ (µm)-1")
	require.NoError(t, err)
	var kinds []tokenKind
	var texts []string
	for _, tk := range toks {
		kinds = append(kinds, tk.kind)
		texts = append(texts, tk.text)
	}
	assert.Equal(t, []tokenKind{tokName, tokMul, tokName, tokDiv, tokName, tokPow, tokNumber,
		tokPow, tokLParen, tokName, tokRParen, tokMinus, tokNumber, tokEOF}, kinds)
	assert.Equal(t, []string{"kg", "*", "m", "/", "s", "**", "2", "^", "(", "µm", ")", "-", "1", ""}, texts)

	_, err = lex("m + s")
	assert.Error(t, err)
}

func TestEvalExpr(t *testing.T) {
	length := dimval{factor: 2, dims: unit.Dimensions{unit.LengthDim: 1}}
	resolve := func(name string) (dimval, error) {
		if name == "L" {
			return length, nil
		}
		return dimval{}, ErrUndefinedUnit
	}
	tests := []struct {
		expr   string
		factor float64
		dims   unit.Dimensions
	}{
		{"", 1, unit.Dimensions{}},
		{"L", 2, unit.Dimensions{unit.LengthDim: 1}},
		{"L^2", 4, unit.Dimensions{unit.LengthDim: 2}},
		{"3 L L", 12, unit.Dimensions{unit.LengthDim: 2}},
		{"1/L", 0.5, unit.Dimensions{unit.LengthDim: -1}},
		{"L/L", 1, unit.Dimensions{}},
		{"L**-2", 0.25, unit.Dimensions{unit.LengthDim: -2}},
		{"(L*L)^2 / L", 8, unit.Dimensions{unit.LengthDim: 3}},
		{"8 / 2 / 2", 2, unit.Dimensions{}},
		{"2 * L ** 3", 16, unit.Dimensions{unit.LengthDim: 3}},
		{"L^64 * L**-64", 1, unit.Dimensions{}},
	}
	for _, tt := range tests {
		v, err := evalExpr(tt.expr, resolve)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.factor, v.factor, tt.expr)
		assert.True(t, sameDims(tt.dims, v.dims), tt.expr)
	}

	for _, expr := range []string{"X", "L^", "L^L", "L^1.5", "L)", "(L", "*L", "L//L", "-L", "L^65", "L**-65", "L^99999999999999999999"} {
		_, err := evalExpr(expr, resolve)
		assert.ErrorIs(t, err, ErrUndefinedUnit, expr)
	}
	// resolver errors are not wrapped twice
	_, err := evalExpr("X", resolve)
	assert.Equal(t, ErrUndefinedUnit, err)
}
