// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/cad/base/errors"
	"gonum.org/v1/gonum/unit"
)

// Quantity is a magnitude along with the units it is expressed in.
// The units are a unit expression resolved by a [Registry], such as
// "mm", "inch", "N*m" or "m/s^2". Empty units are dimensionless.
type Quantity struct {

	// Magnitude is the numerical value in Units.
	Magnitude float64

	// Units is the unit expression of the quantity.
	Units string
}

// Q returns a new quantity with the given magnitude and units.
func Q(mag float64, units string) Quantity {
	return Quantity{Magnitude: mag, Units: units}
}

// Parse parses a quantity from a magnitude followed by units, such
// as "5 mm", "5mm", "-1.5e3 N*m" or "25.4". The units are not checked
// against any registry.
func Parse(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	n := numberLen(s[i:])
	if n == 0 {
		return Quantity{}, fmt.Errorf("units.Parse: %q does not start with a number", s)
	}
	mag, err := strconv.ParseFloat(s[:i+n], 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("units.Parse: %q: %w", s, err)
	}
	return Q(mag, strings.TrimSpace(s[i+n:])), nil
}

// String returns the magnitude followed by the units.
func (q Quantity) String() string {
	m := strconv.FormatFloat(q.Magnitude, 'g', -1, 64)
	if q.Units == "" {
		return m
	}
	return m + " " + q.Units
}

// MarshalText implements [encoding.TextMarshaler].
func (q Quantity) MarshalText() ([]byte, error) {
	return []byte(q.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [Parse].
func (q *Quantity) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

// To returns the quantity converted to the given units. The units
// must have the same dimensions as the quantity, or the returned
// error wraps [ErrDimensionality].
func (q Quantity) To(reg *Registry, units string) (Quantity, error) {
	reg = orApp(reg)
	from, err := reg.reduce(q.Units)
	if err != nil {
		return Quantity{}, err
	}
	to, err := reg.reduce(units)
	if err != nil {
		return Quantity{}, err
	}
	if !sameDims(from.dims, to.dims) {
		return Quantity{}, fmt.Errorf("%w: cannot convert %q (%v) to %q (%v)", ErrDimensionality, q.Units, from.dims, units, to.dims)
	}
	return Q(q.Magnitude*from.factor/to.factor, units), nil
}

// ToBase returns the quantity converted to the base units of the
// default system of the registry.
func (q Quantity) ToBase(reg *Registry) (Quantity, error) {
	v, base, factor, err := orApp(reg).reduceToBase(q.Units)
	if err != nil {
		return Quantity{}, err
	}
	return Q(q.Magnitude*v.factor/factor, base), nil
}

// UnitIn returns the quantity as a gonum unit value in SI root units,
// resolving its units with the given registry.
func (q Quantity) UnitIn(reg *Registry) (*unit.Unit, error) {
	v, err := orApp(reg).reduce(q.Units)
	if err != nil {
		return nil, err
	}
	return unit.New(q.Magnitude*v.factor, v.dims), nil
}

// Unit implements [unit.Uniter] using the application registry.
// Units that cannot be resolved are logged and give a dimensionless
// NaN.
func (q Quantity) Unit() *unit.Unit {
	if u := errors.Log1(q.UnitIn(App())); u != nil {
		return u
	}
	return unit.New(math.NaN(), nil)
}

// orApp returns reg, or the application registry if reg is nil.
func orApp(reg *Registry) *Registry {
	if reg == nil {
		return App()
	}
	return reg
}
