// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"cogentcore.org/cad/geom"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrSelector is returned for a selector string that cannot be parsed.
var ErrSelector = errors.New("shape: invalid selector")

// selectTol is the tolerance used when comparing face positions
// and directions in selectors.
const selectTol = 1e-6

// Selector filters a list of faces.
type Selector interface {
	Filter(faces []*Face) []*Face
}

// DirectionMinMax selects the faces whose centers are furthest along
// Dir (Max) or furthest against it (!Max). Faces within a small
// tolerance of the extreme are all selected.
type DirectionMinMax struct {
	Dir r3.Vec
	Max bool
}

// Filter implements [Selector].
func (s DirectionMinMax) Filter(faces []*Face) []*Face {
	if len(faces) == 0 {
		return nil
	}
	dist := make([]float64, len(faces))
	best := math.Inf(-1)
	for i, f := range faces {
		d := r3.Dot(f.Center(), s.Dir)
		if !s.Max {
			d = -d
		}
		dist[i] = d
		best = math.Max(best, d)
	}
	var out []*Face
	for i, f := range faces {
		if scalar.EqualWithinAbs(dist[i], best, selectTol) {
			out = append(out, f)
		}
	}
	return out
}

// Parallel selects the faces whose normal is parallel to Dir,
// in either orientation.
type Parallel struct {
	Dir r3.Vec
}

// Filter implements [Selector].
func (s Parallel) Filter(faces []*Face) []*Face {
	var out []*Face
	for _, f := range faces {
		if scalar.EqualWithinAbs(math.Abs(r3.Dot(f.Normal(), s.Dir)), 1, selectTol) {
			out = append(out, f)
		}
	}
	return out
}

// Direction selects the faces whose normal points along Dir.
type Direction struct {
	Dir r3.Vec
}

// Filter implements [Selector].
func (s Direction) Filter(faces []*Face) []*Face {
	var out []*Face
	for _, f := range faces {
		if geom.EqualVec(f.Normal(), s.Dir, selectTol) {
			out = append(out, f)
		}
	}
	return out
}

// ParseSelector parses a selector string: an operator followed by an
// axis name. The operators are ">" (max along the axis), "<" (min along
// the axis), "|" (normal parallel to the axis), "+" and "-" (normal
// along or against the axis); the axes are X, Y and Z, in any case.
func ParseSelector(sel string) (Selector, error) {
	sel = strings.TrimSpace(sel)
	if len(sel) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrSelector, sel)
	}
	var axis r3.Vec
	switch strings.ToUpper(sel[1:]) {
	case "X":
		axis = geom.XDir
	case "Y":
		axis = geom.YDir
	case "Z":
		axis = geom.ZDir
	default:
		return nil, fmt.Errorf("%w: unknown axis in %q", ErrSelector, sel)
	}
	switch sel[0] {
	case '>':
		return DirectionMinMax{Dir: axis, Max: true}, nil
	case '<':
		return DirectionMinMax{Dir: axis}, nil
	case '|':
		return Parallel{Dir: axis}, nil
	case '+':
		return Direction{Dir: axis}, nil
	case '-':
		return Direction{Dir: r3.Scale(-1, axis)}, nil
	}
	return nil, fmt.Errorf("%w: unknown operator in %q", ErrSelector, sel)
}
