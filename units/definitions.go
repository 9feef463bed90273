// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/unit"
)

// defaultDefinitions are the definitions every [Registry] starts with.
//
//go:embed default_en.txt
var defaultDefinitions string

// dimensionNames are the names of the root dimensions in definitions.
var dimensionNames = map[string]unit.Dimension{
	"length":      unit.LengthDim,
	"mass":        unit.MassDim,
	"time":        unit.TimeDim,
	"current":     unit.CurrentDim,
	"temperature": unit.TemperatureDim,
	"substance":   unit.MoleDim,
	"luminosity":  unit.LuminousIntensityDim,
	"angle":       unit.AngleDim,
}

// loadStats counts what a definition text defined.
type loadStats struct {
	units    int
	prefixes int
	systems  int
}

// parseDefinitions reads definitions from rd into tab. Each line is
// one of:
//
//	name = expression [= symbol] [= alias ...]
//	name = [dimension] [= symbol] [= alias ...]
//	name- = factor [= symbol-] [= alias- ...]
//	@system name [using parent, ...]
//	@end
//
// Lines between @system and @end list the base units of the system.
// Everything after a # is a comment.
func parseDefinitions(rd io.Reader, tab *tables) (loadStats, error) {
	var st loadStats
	var sys *System
	sysLine := 0
	sc := bufio.NewScanner(rd)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var err error
		switch {
		case sys != nil:
			if line == "@end" {
				err = addSystem(tab, sys)
				sys = nil
				st.systems++
				break
			}
			if strings.HasPrefix(line, "@") {
				err = fmt.Errorf("%s inside @system %s", line, sys.Name)
				break
			}
			// a "new: old" line replaces old with new
			if n, _, ok := strings.Cut(line, ":"); ok {
				line = strings.TrimSpace(n)
			}
			sys.BaseUnits = append(sys.BaseUnits, line)
		case strings.HasPrefix(line, "@system"):
			sys, err = parseSystemHeader(line)
			sysLine = ln
		case strings.HasPrefix(line, "@"):
			err = fmt.Errorf("unknown directive %q", strings.Fields(line)[0])
		default:
			var isPrefix bool
			isPrefix, err = parseDefinition(tab, line)
			if isPrefix {
				st.prefixes++
			} else {
				st.units++
			}
		}
		if err != nil {
			return st, fmt.Errorf("%w: line %d: %w", ErrDefinition, ln, err)
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("%w: %w", ErrDefinition, err)
	}
	if sys != nil {
		return st, fmt.Errorf("%w: line %d: @system %s has no @end", ErrDefinition, sysLine, sys.Name)
	}
	return st, nil
}

// parseSystemHeader parses "@system name [using a, b]".
func parseSystemHeader(line string) (*System, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "@system"))
	name, using, _ := strings.Cut(rest, " using ")
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return nil, fmt.Errorf("invalid system name in %q", line)
	}
	sys := &System{Name: name}
	if using != "" {
		for u := range strings.SplitSeq(using, ",") {
			u = strings.TrimSpace(u)
			if u == "" {
				return nil, fmt.Errorf("empty system name in %q", line)
			}
			sys.Using = append(sys.Using, u)
		}
	}
	return sys, nil
}

// addSystem adds a fully read system to tab, checking that all of its
// base units and parent systems are known.
func addSystem(tab *tables, sys *System) error {
	if len(sys.BaseUnits) == 0 && len(sys.Using) == 0 {
		return fmt.Errorf("@system %s has no base units", sys.Name)
	}
	tab.systems.Add(sys.Name, sys)
	_, err := tab.systemBases(sys.Name)
	return err
}

// parseDefinition parses a unit or prefix definition line into tab.
func parseDefinition(tab *tables, line string) (isPrefix bool, err error) {
	parts := strings.Split(line, "=")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return false, fmt.Errorf("expected name = value, got %q", line)
	}
	name := parts[0]
	if strings.ContainsAny(name, " \t*/^()") {
		return false, fmt.Errorf("invalid name %q", name)
	}
	if p, ok := strings.CutSuffix(name, "-"); ok {
		return true, parsePrefix(tab, p, parts[1], parts[2:])
	}

	d := &Definition{Name: name}
	if dim, ok := strings.CutPrefix(parts[1], "["); ok {
		dim, ok = strings.CutSuffix(dim, "]")
		rd, known := dimensionNames[dim]
		if !ok || !known {
			return false, fmt.Errorf("unknown dimension %s", parts[1])
		}
		d.Factor = 1
		d.Dims = unit.Dimensions{rd: 1}
	} else {
		v, err := tab.eval(parts[1])
		if err != nil {
			return false, err
		}
		d.Factor = v.factor
		d.Dims = v.dims
	}
	if len(parts) > 2 && parts[2] != "_" {
		d.Symbol = parts[2]
	}
	if len(parts) > 3 {
		d.Aliases = parts[3:]
	}
	for _, a := range append([]string{d.Symbol}, d.Aliases...) {
		if strings.ContainsAny(a, " \t*/^()") {
			return false, fmt.Errorf("invalid symbol or alias %q", a)
		}
	}
	tab.addUnit(d)
	return false, nil
}

// parsePrefix adds a prefix with the given factor, symbol and
// aliases, which all end in a dash. Aliases combine with both unit
// names and unit symbols.
func parsePrefix(tab *tables, name, value string, rest []string) error {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid prefix factor %q", value)
	}
	tab.prefixes = addPrefix(tab.prefixes, prefix{key: name, factor: f})
	for i, r := range rest {
		key, ok := strings.CutSuffix(r, "-")
		if !ok || key == "" {
			return fmt.Errorf("prefix %q must end in -", r)
		}
		p := prefix{key: key, factor: f}
		tab.prefixSymbols = addPrefix(tab.prefixSymbols, p)
		if i > 0 {
			// aliases also go with full names
			tab.prefixes = addPrefix(tab.prefixes, p)
		}
	}
	return nil
}
