// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"

	"cogentcore.org/cad/base/errors"
	"cogentcore.org/cad/base/ordmap"
	"cogentcore.org/cad/logx"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"gonum.org/v1/gonum/unit"
)

// Definition is a unit known to a [Registry].
type Definition struct {

	// Name is the canonical name of the unit.
	Name string

	// Symbol is the short name of the unit, if any.
	Symbol string

	// Aliases are other names of the unit.
	Aliases []string

	// Factor is the size of the unit in SI root units.
	Factor float64

	// Dims are the dimensions of the unit.
	Dims unit.Dimensions
}

// System is a named unit system: a set of base units, one per
// dimension, that overrides the base units of the systems it uses.
type System struct {

	// Name is the name of the system.
	Name string

	// Using are the systems consulted, in order, for dimensions
	// that have no base unit in this system.
	Using []string

	// BaseUnits are the unit names that are the base units of this
	// system.
	BaseUnits []string
}

// prefix is a unit prefix such as milli or m.
type prefix struct {
	key    string
	factor float64
}

// rootUnits are the names of the SI root units, which are the base
// units of every dimension that a system does not override.
var rootUnits = map[unit.Dimension]string{
	unit.LengthDim:            "meter",
	unit.MassDim:              "kilogram",
	unit.TimeDim:              "second",
	unit.CurrentDim:           "ampere",
	unit.TemperatureDim:       "kelvin",
	unit.MoleDim:              "mole",
	unit.LuminousIntensityDim: "candela",
	unit.AngleDim:             "radian",
}

// dimOrder is the order in which dimensions are written in base unit
// expressions.
var dimOrder = []unit.Dimension{
	unit.LengthDim,
	unit.MassDim,
	unit.TimeDim,
	unit.CurrentDim,
	unit.TemperatureDim,
	unit.MoleDim,
	unit.LuminousIntensityDim,
	unit.AngleDim,
}

// tables holds all of the definitions of a registry. Loading
// definitions works on a clone, which replaces the registry tables
// only when the whole text is valid.
type tables struct {
	units         *ordmap.Map[string, *Definition]
	names         map[string]*Definition
	symbols       map[string]*Definition
	prefixes      []prefix
	prefixSymbols []prefix
	systems       *ordmap.Map[string, *System]
}

func newTables() *tables {
	return &tables{
		units:   ordmap.New[string, *Definition](),
		names:   map[string]*Definition{},
		symbols: map[string]*Definition{},
		systems: ordmap.New[string, *System](),
	}
}

func (t *tables) clone() *tables {
	cp := &tables{
		units:         t.units.Clone(),
		names:         make(map[string]*Definition, len(t.names)),
		symbols:       make(map[string]*Definition, len(t.symbols)),
		prefixes:      slices.Clone(t.prefixes),
		prefixSymbols: slices.Clone(t.prefixSymbols),
		systems:       t.systems.Clone(),
	}
	for k, v := range t.names {
		cp.names[k] = v
	}
	for k, v := range t.symbols {
		cp.symbols[k] = v
	}
	return cp
}

// addPrefix adds a prefix keeping longer keys first, so that the
// longest matching prefix is tried first.
func addPrefix(list []prefix, p prefix) []prefix {
	p.key = normalize(p.key)
	list = slices.DeleteFunc(list, func(o prefix) bool { return o.key == p.key })
	list = append(list, p)
	slices.SortStableFunc(list, func(a, b prefix) int {
		if c := cmp.Compare(len(b.key), len(a.key)); c != 0 {
			return c
		}
		return strings.Compare(a.key, b.key)
	})
	return list
}

// addUnit adds d, replacing any existing unit with the same name
// and taking over its symbol and aliases.
func (t *tables) addUnit(d *Definition) {
	d.Name = normalize(d.Name)
	d.Symbol = normalize(d.Symbol)
	for i, a := range d.Aliases {
		d.Aliases[i] = normalize(a)
	}
	if old, ok := t.units.ValueByKeyTry(d.Name); ok {
		logx.Logger("units").Warn("redefining unit", "unit", d.Name, "old", old.Factor, "new", d.Factor)
	}
	t.units.Add(d.Name, d)
	t.names[d.Name] = d
	for _, a := range d.Aliases {
		t.names[a] = d
	}
	if d.Symbol != "" {
		t.symbols[d.Symbol] = d
	}
}

// lookup resolves a unit name, symbol or alias, optionally with
// a prefix: long prefixes go with names and short ones with symbols.
func (t *tables) lookup(s string) (dimval, bool) {
	if d := t.names[s]; d != nil {
		return dimval{factor: d.Factor, dims: d.Dims}, true
	}
	if d := t.symbols[s]; d != nil {
		return dimval{factor: d.Factor, dims: d.Dims}, true
	}
	for _, p := range t.prefixes {
		if rest, ok := strings.CutPrefix(s, p.key); ok {
			if d := t.names[rest]; d != nil {
				return dimval{factor: p.factor * d.Factor, dims: d.Dims}, true
			}
		}
	}
	for _, p := range t.prefixSymbols {
		if rest, ok := strings.CutPrefix(s, p.key); ok {
			if d := t.symbols[rest]; d != nil {
				return dimval{factor: p.factor * d.Factor, dims: d.Dims}, true
			}
		}
	}
	return dimval{}, false
}

// resolve resolves a single unit name, also trying it as a plural.
func (t *tables) resolve(name string) (dimval, error) {
	if v, ok := t.lookup(name); ok {
		return v, nil
	}
	for _, suffix := range []string{"s", "es"} {
		if single, ok := strings.CutSuffix(name, suffix); ok && single != "" {
			if v, ok := t.lookup(single); ok {
				return v, nil
			}
		}
	}
	if guess := t.suggest(name); guess != "" {
		return dimval{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrUndefinedUnit, name, guess)
	}
	return dimval{}, fmt.Errorf("%w: %q", ErrUndefinedUnit, name)
}

// suggest returns the unit name or alias most similar to name, if any
// is close enough to be a likely misspelling.
func (t *tables) suggest(name string) string {
	const minSimilarity = 0.75
	lev := metrics.NewLevenshtein()
	best, bestSim := "", minSimilarity
	for _, n := range slices.Sorted(maps.Keys(t.names)) {
		if sim := strutil.Similarity(name, n, lev); sim > bestSim {
			best, bestSim = n, sim
		}
	}
	return best
}

// eval evaluates a unit expression.
func (t *tables) eval(expr string) (dimval, error) {
	return evalExpr(expr, t.resolve)
}

// baseUnit is the base unit of one dimension in a system.
type baseUnit struct {
	name   string
	factor float64
}

// systemBases returns the base units of the named system, including
// the ones it gets from the systems it uses.
func (t *tables) systemBases(name string) (map[unit.Dimension]baseUnit, error) {
	bases := map[unit.Dimension]baseUnit{}
	visited := map[string]bool{}
	var walk func(name string) error
	walk = func(name string) error {
		if visited[name] {
			return nil
		}
		visited[name] = true
		sys, ok := t.systems.ValueByKeyTry(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSystem, name)
		}
		for _, bu := range sys.BaseUnits {
			v, err := t.eval(bu)
			if err != nil {
				return err
			}
			dim, ok := singleDim(v.dims)
			if !ok {
				return fmt.Errorf("%w: base unit %q of system %q is not of a single dimension", ErrDefinition, bu, name)
			}
			if _, has := bases[dim]; !has {
				bases[dim] = baseUnit{name: bu, factor: v.factor}
			}
		}
		for _, parent := range sys.Using {
			if err := walk(parent); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(name); err != nil {
		return nil, err
	}
	return bases, nil
}

// base returns the base unit expression for dims in the named system,
// along with its factor in SI root units.
func (t *tables) base(system string, dims unit.Dimensions) (string, float64, error) {
	bases, err := t.systemBases(system)
	if err != nil {
		return "", 0, err
	}
	order := slices.Clone(dimOrder)
	for dim := range dims {
		if !slices.Contains(order, dim) {
			order = append(order, dim)
		}
	}
	var num, den, inv []string
	factor := 1.0
	for _, dim := range order {
		p := dims[dim]
		if p == 0 {
			continue
		}
		bu, ok := bases[dim]
		if !ok {
			root, ok := rootUnits[dim]
			if !ok {
				return "", 0, fmt.Errorf("%w: no base unit for dimension %v", ErrUndefinedUnit, dim)
			}
			bu = baseUnit{name: root, factor: 1}
		}
		factor *= math.Pow(bu.factor, float64(p))
		if p > 0 {
			num = append(num, powTerm(bu.name, p))
		} else {
			den = append(den, powTerm(bu.name, -p))
			inv = append(inv, powTerm(bu.name, p))
		}
	}
	if len(num) == 0 {
		// only negative powers, as in "second ** -1"
		return strings.Join(inv, " * "), factor, nil
	}
	expr := strings.Join(num, " * ")
	if len(den) > 0 {
		expr += " / " + strings.Join(den, " / ")
	}
	return expr, factor, nil
}

// powTerm returns name raised to the power p.
func powTerm(name string, p int) string {
	if p == 1 {
		return name
	}
	return name + " ** " + strconv.Itoa(p)
}

// Registry holds unit definitions and unit systems, and the default
// system that quantities are reduced to. A Registry is safe for
// concurrent use; callers that change the default system concurrently
// see the last change win.
type Registry struct {
	mu            sync.RWMutex
	tab           *tables
	defaultSystem string
}

// NewRegistry returns a new registry with the default definitions
// loaded and SI as its default system.
func NewRegistry() *Registry {
	r := &Registry{tab: newTables(), defaultSystem: "SI"}
	errors.Must(r.LoadDefinitions(strings.NewReader(defaultDefinitions)))
	return r
}

// LoadDefinitions reads unit, prefix and system definitions from rd
// and adds them to the registry. Nothing is added if any part of the
// text is invalid; such errors wrap [ErrDefinition].
func (r *Registry) LoadDefinitions(rd io.Reader) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(rd)
}

func (r *Registry) load(rd io.Reader) error {
	tab := r.tab.clone()
	st, err := parseDefinitions(rd, tab)
	if err != nil {
		return err
	}
	r.tab = tab
	logx.Logger("units").Debug("loaded definitions", "units", st.units, "prefixes", st.prefixes, "systems", st.systems)
	return nil
}

// UseSystem loads the definition of the given engineering system and
// makes it the default system of the registry.
func (r *Registry) UseSystem(sys EngineeringSystems) error {
	if sys < 0 || sys >= EngineeringSystemsN {
		return fmt.Errorf("%w: engineering system %d", ErrUnknownSystem, sys)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.load(strings.NewReader(sys.Definition())); err != nil {
		return fmt.Errorf("units.UseSystem %v: %w", sys, err)
	}
	return r.setDefault(sys.String())
}

// SetDefaultSystem sets the default system to the named system,
// which must already be defined.
func (r *Registry) SetDefaultSystem(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setDefault(name)
}

func (r *Registry) setDefault(name string) error {
	if _, err := r.tab.systemBases(name); err != nil {
		return err
	}
	if r.defaultSystem != name {
		logx.Logger("units").Debug("default system", "old", r.defaultSystem, "new", name)
	}
	r.defaultSystem = name
	return nil
}

// DefaultSystem returns the name of the default system.
func (r *Registry) DefaultSystem() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultSystem
}

// Systems returns the names of the defined systems, in the order
// they were defined.
func (r *Registry) Systems() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab.systems.Keys()
}

// Defined returns whether the given unit expression can be resolved.
func (r *Registry) Defined(expr string) bool {
	_, err := r.reduce(expr)
	return err == nil
}

// BaseUnits returns the unit expression of the base units of the
// default system for the given dimensions, for example
// "millimeter ** 2" for an area under [SIEngineering]. Dimensionless
// values have the empty expression.
func (r *Registry) BaseUnits(dims unit.Dimensions) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expr, _, err := r.tab.base(r.defaultSystem, dims)
	return expr, err
}

// reduce evaluates a unit expression.
func (r *Registry) reduce(expr string) (dimval, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab.eval(expr)
}

// reduceToBase evaluates a unit expression and returns the base
// unit expression of its dimensions in the default system, with the
// factor of the base units in SI root units.
func (r *Registry) reduceToBase(expr string) (dimval, string, float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, err := r.tab.eval(expr)
	if err != nil {
		return v, "", 0, err
	}
	base, factor, err := r.tab.base(r.defaultSystem, v.dims)
	return v, base, factor, err
}

// baseOf returns the base unit expression and its factor in SI root
// units for dims in the default system.
func (r *Registry) baseOf(dims unit.Dimensions) (string, float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab.base(r.defaultSystem, dims)
}
