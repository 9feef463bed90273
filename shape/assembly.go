// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/cad/base/ordmap"
	"cogentcore.org/cad/geom"
)

// Assembly is a named tree of shapes. Each node holds zero or more
// shapes and child assemblies, placed relative to its parent by Loc.
// Names are unique across the whole tree.
type Assembly struct {

	// Name is the name of the assembly node, unique in its tree.
	Name string

	// Loc is the placement of the node relative to its parent.
	Loc geom.Location

	// Shapes are the shapes held directly by this node,
	// in the node's local coordinates.
	Shapes []Shape

	children *ordmap.Map[string, *Assembly]
	parent   *Assembly
}

// NewAssembly returns a new root assembly node.
func NewAssembly(name string, loc geom.Location, shapes ...Shape) *Assembly {
	return &Assembly{Name: name, Loc: loc, Shapes: shapes}
}

// Add adds the given assembly as a child of a. It returns an error
// wrapping [ErrDuplicateName] if any name in the child's tree is
// already used in a's tree, and leaves a unchanged in that case.
func (a *Assembly) Add(child *Assembly) error {
	names := a.Root().Objects()
	for name := range child.Objects() {
		if _, has := names[name]; has {
			return fmt.Errorf("shape.Assembly.Add: %w: %q", ErrDuplicateName, name)
		}
	}
	if a.children == nil {
		a.children = ordmap.New[string, *Assembly]()
	}
	child.parent = a
	a.children.Add(child.Name, child)
	return nil
}

// AddShape adds a new child node named name holding the given shape
// at the given placement, and returns the new node.
func (a *Assembly) AddShape(name string, s Shape, loc geom.Location) (*Assembly, error) {
	child := NewAssembly(name, loc, s)
	if err := a.Add(child); err != nil {
		return nil, err
	}
	return child, nil
}

// Parent returns the parent of the node, or nil for a root.
func (a *Assembly) Parent() *Assembly {
	return a.parent
}

// Root returns the root of the tree a belongs to.
func (a *Assembly) Root() *Assembly {
	r := a
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Children returns the direct children of the node, in the order
// they were added.
func (a *Assembly) Children() []*Assembly {
	return a.children.Values()
}

// Objects returns a map from name to node for a and all of its
// descendants.
func (a *Assembly) Objects() map[string]*Assembly {
	objs := make(map[string]*Assembly)
	a.walk(func(n *Assembly) {
		objs[n.Name] = n
	})
	return objs
}

// Object returns the node with the given name in a's subtree,
// or an error wrapping [ErrNotFound].
func (a *Assembly) Object(name string) (*Assembly, error) {
	if n, ok := a.Objects()[name]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("shape.Assembly.Object: %w: no object named %q in assembly %q", ErrNotFound, name, a.Name)
}

func (a *Assembly) walk(fun func(n *Assembly)) {
	fun(a)
	for _, ch := range a.children.All() {
		ch.walk(fun)
	}
}

// AbsoluteLocation returns the placement of the node relative to
// the root of its tree.
func (a *Assembly) AbsoluteLocation() geom.Location {
	loc := a.Loc
	for p := a.parent; p != nil; p = p.parent {
		loc = p.Loc.Mul(loc)
	}
	return loc
}

// ToCompound returns a compound of the node's own shapes followed by
// one compound per child, placed by the node's own location. The
// placement of the node's ancestors is not applied.
func (a *Assembly) ToCompound() *Compound {
	shapes := make([]Shape, 0, len(a.Shapes)+a.children.Len())
	shapes = append(shapes, a.Shapes...)
	for _, ch := range a.children.All() {
		shapes = append(shapes, ch.ToCompound())
	}
	return MakeCompound(shapes...).Locate(a.Loc)
}

// String returns the name and size of the node.
func (a *Assembly) String() string {
	return fmt.Sprintf("Assembly(%q, %d shapes, %d children)", a.Name, len(a.Shapes), a.children.Len())
}
