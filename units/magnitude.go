// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"maps"
	"slices"

	"gonum.org/v1/gonum/unit"
)

// BaseMagnitude returns the magnitude of u in the base units of the
// default system of the registry. A nil registry means the
// application registry.
func BaseMagnitude(reg *Registry, u unit.Uniter) (float64, error) {
	reg = orApp(reg)
	switch q := u.(type) {
	case Quantity:
		b, err := q.ToBase(reg)
		return b.Magnitude, err
	case *Quantity:
		if q == nil {
			return 0, fmt.Errorf("units.BaseMagnitude: nil quantity")
		}
		b, err := q.ToBase(reg)
		return b.Magnitude, err
	}
	gu := u.Unit()
	if gu == nil {
		return 0, fmt.Errorf("units.BaseMagnitude: %T has no unit", u)
	}
	_, factor, err := reg.baseOf(gu.Dimensions())
	if err != nil {
		return 0, err
	}
	return gu.Value() / factor, nil
}

// ToBaseMagnitude converts v to its magnitude in the base units of
// the default system of the registry if v is a [Quantity] or any
// other [unit.Uniter], such as [unit.Length]. Any other value,
// including a nil pointer, is returned unchanged.
func ToBaseMagnitude(reg *Registry, v any) (any, error) {
	switch q := v.(type) {
	case *Quantity:
		if q == nil {
			return v, nil
		}
	case unit.Uniter:
	default:
		return v, nil
	}
	m, err := BaseMagnitude(reg, v.(unit.Uniter))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// BaseMagnitudes returns vals with every quantity converted by
// [ToBaseMagnitude].
func BaseMagnitudes(reg *Registry, vals ...any) ([]any, error) {
	if vals == nil {
		return nil, nil
	}
	out := make([]any, len(vals))
	for i, v := range vals {
		m, err := ToBaseMagnitude(reg, v)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		out[i] = m
	}
	return out, nil
}

// Args are the arguments of a part function: positional values and
// named values.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// ArgsToBaseMagnitude wraps fn so that every [Quantity] in its
// arguments is converted to a magnitude in base units with
// [ToBaseMagnitude] before fn is called. The result of fn is returned
// unchanged, and fn is not called if any conversion fails.
//
// It is intended to be used with a pair of functions, a public one
// that takes quantities and a private one that builds the part from
// plain numbers:
//
//	var bracket = units.ArgsToBaseMagnitude(nil, func(a units.Args) (*shape.Solid, error) {
//		width := a.Positional[0].(float64)
//		...
//	})
//
//	func Bracket(width units.Quantity) (*shape.Solid, error) {
//		return bracket(units.Args{Positional: []any{width}})
//	}
//
// All the parts of a model that share a registry then agree on their
// units, whatever units their callers used.
func ArgsToBaseMagnitude[R any](reg *Registry, fn func(Args) (R, error)) func(Args) (R, error) {
	return func(a Args) (R, error) {
		var zero R
		pos, err := BaseMagnitudes(reg, a.Positional...)
		if err != nil {
			return zero, err
		}
		var kw map[string]any
		if a.Keyword != nil {
			kw = make(map[string]any, len(a.Keyword))
			for _, k := range slices.Sorted(maps.Keys(a.Keyword)) {
				m, err := ToBaseMagnitude(reg, a.Keyword[k])
				if err != nil {
					return zero, fmt.Errorf("argument %s: %w", k, err)
				}
				kw[k] = m
			}
		}
		return fn(Args{Positional: pos, Keyword: kw})
	}
}
