// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"cogentcore.org/cad/base/errors"
	"golang.org/x/text/unicode/norm"
	"gonum.org/v1/gonum/unit"
)

// dimval is a unit expression reduced to a factor in SI root units
// and its dimensions.
type dimval struct {
	factor float64
	dims   unit.Dimensions
}

func scalar(f float64) dimval {
	return dimval{factor: f, dims: unit.Dimensions{}}
}

func (d dimval) mul(o dimval) dimval {
	r := dimval{factor: d.factor * o.factor, dims: unit.Dimensions{}}
	for dim, p := range d.dims {
		r.dims[dim] += p
	}
	for dim, p := range o.dims {
		r.dims[dim] += p
	}
	r.dims = clean(r.dims)
	return r
}

func (d dimval) div(o dimval) dimval {
	return d.mul(o.pow(-1))
}

func (d dimval) pow(n int) dimval {
	r := dimval{factor: math.Pow(d.factor, float64(n)), dims: unit.Dimensions{}}
	for dim, p := range d.dims {
		r.dims[dim] = p * n
	}
	r.dims = clean(r.dims)
	return r
}

// clean removes zero powers from dims.
func clean(dims unit.Dimensions) unit.Dimensions {
	for dim, p := range dims {
		if p == 0 {
			delete(dims, dim)
		}
	}
	return dims
}

// sameDims returns whether a and b have the same nonzero powers.
func sameDims(a, b unit.Dimensions) bool {
	for dim, p := range a {
		if b[dim] != p {
			return false
		}
	}
	for dim, p := range b {
		if a[dim] != p {
			return false
		}
	}
	return true
}

// singleDim returns the dimension of dims if it is a single
// dimension to the first power.
func singleDim(dims unit.Dimensions) (unit.Dimension, bool) {
	var found unit.Dimension
	n := 0
	for dim, p := range dims {
		if p == 0 {
			continue
		}
		if p != 1 {
			return 0, false
		}
		found = dim
		n++
	}
	return found, n == 1
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokName
	tokMul
	tokDiv
	tokPow
	tokMinus
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

// superscripts maps superscript powers to the operator form, as NFKC
// would otherwise turn m² into m2.
var superscripts = strings.NewReplacer(
	"⁻¹", "^-1", "⁻²", "^-2", "⁻³", "^-3",
	"¹", "^1", "²", "^2", "³", "^3",
)

// normalize returns the NFKC form of a unit name or expression, so that
// compatibility characters such as the micro sign (U+00B5) and the
// ohm sign (U+2126) match their Greek letters.
func normalize(s string) string {
	if isASCII(s) {
		return s
	}
	return norm.NFKC.String(superscripts.Replace(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// isNameStart returns whether r can start a unit name.
func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// lex splits a unit expression into tokens.
func lex(s string) ([]token, error) {
	var toks []token
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			i += w
		case r == '*':
			if i+1 < len(s) && s[i+1] == '*' {
				toks = append(toks, token{kind: tokPow, text: "**"})
				i += 2
				continue
			}
			toks = append(toks, token{kind: tokMul, text: "*"})
			i++
		case r == '^':
			toks = append(toks, token{kind: tokPow, text: "^"})
			i++
		case r == '/':
			toks = append(toks, token{kind: tokDiv, text: "/"})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus, text: "-"})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "("})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")"})
			i++
		case r == '.' || unicode.IsDigit(r):
			n := numberLen(s[i:])
			f, err := strconv.ParseFloat(s[i:i+n], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q", s[i:i+n])
			}
			toks = append(toks, token{kind: tokNumber, text: s[i : i+n], num: f})
			i += n
		case isNameStart(r):
			j := i + w
			for j < len(s) {
				r, w := utf8.DecodeRuneInString(s[j:])
				if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
					break
				}
				j += w
			}
			toks = append(toks, token{kind: tokName, text: s[i:j]})
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q", r)
		}
	}
	return append(toks, token{kind: tokEOF}), nil
}

// numberLen returns the length of the unsigned decimal number at the
// start of s. An exponent is only consumed when digits follow it, so
// that "5em" is read as 5 followed by em.
func numberLen(s string) int {
	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return i
}

// exprParser evaluates a unit expression with the usual precedence:
// powers bind tighter than products and quotients, which are left
// associative. Adjacent terms without an operator are multiplied.
type exprParser struct {
	toks    []token
	pos     int
	resolve func(name string) (dimval, error)
}

// evalExpr evaluates the unit expression s, resolving unit names with
// resolve. The empty expression is dimensionless with a factor of 1.
func evalExpr(s string, resolve func(name string) (dimval, error)) (dimval, error) {
	toks, err := lex(normalize(s))
	if err != nil {
		return dimval{}, fmt.Errorf("%w: %q: %w", ErrUndefinedUnit, s, err)
	}
	if toks[0].kind == tokEOF {
		return scalar(1), nil
	}
	p := &exprParser{toks: toks, resolve: resolve}
	v, err := p.expr()
	if err == nil && p.peek().kind != tokEOF {
		err = fmt.Errorf("unexpected %q", p.peek().text)
	}
	if err != nil {
		if errors.Is(err, ErrUndefinedUnit) {
			return dimval{}, err
		}
		return dimval{}, fmt.Errorf("%w: %q: %w", ErrUndefinedUnit, s, err)
	}
	return v, nil
}

func (p *exprParser) peek() token {
	return p.toks[p.pos]
}

func (p *exprParser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *exprParser) expr() (dimval, error) {
	v, err := p.term()
	if err != nil {
		return v, err
	}
	for {
		switch p.peek().kind {
		case tokMul:
			p.next()
			o, err := p.term()
			if err != nil {
				return v, err
			}
			v = v.mul(o)
		case tokDiv:
			p.next()
			o, err := p.term()
			if err != nil {
				return v, err
			}
			v = v.div(o)
		case tokNumber, tokName, tokLParen:
			o, err := p.term()
			if err != nil {
				return v, err
			}
			v = v.mul(o)
		default:
			return v, nil
		}
	}
}

// maxPower is the largest magnitude of a power in a unit expression.
const maxPower = 64

func (p *exprParser) term() (dimval, error) {
	v, err := p.factor()
	if err != nil {
		return v, err
	}
	if p.peek().kind != tokPow {
		return v, nil
	}
	p.next()
	neg := false
	if p.peek().kind == tokMinus {
		p.next()
		neg = true
	}
	t := p.next()
	if t.kind != tokNumber || t.num != math.Trunc(t.num) || t.num > maxPower {
		return v, fmt.Errorf("power must be an integer from -%d to %d, not %q", maxPower, maxPower, t.text)
	}
	n := int(t.num)
	if neg {
		n = -n
	}
	return v.pow(n), nil
}

func (p *exprParser) factor() (dimval, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return scalar(t.num), nil
	case tokName:
		return p.resolve(t.text)
	case tokLParen:
		v, err := p.expr()
		if err != nil {
			return v, err
		}
		if p.next().kind != tokRParen {
			return v, fmt.Errorf("missing )")
		}
		return v, nil
	case tokEOF:
		return dimval{}, fmt.Errorf("unexpected end")
	}
	return dimval{}, fmt.Errorf("unexpected %q", t.text)
}
