// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements a generic map that remembers the order in
// which keys were first added. Assemblies use it for their named
// children and the unit registry for its system table, where both
// lookup by name and a stable iteration order are needed.
package ordmap

import (
	"fmt"
	"iter"
	"slices"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map. Order holds the entries in insertion order
// and Map indexes into Order by key.
type Map[K comparable, V any] struct {

	// Order is the list of entries in the order they were added.
	Order []KeyValue[K, V]

	// Map is the key to index mapping.
	Map map[K]int
}

// New returns a new, empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{Map: make(map[K]int)}
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.Map == nil {
		om.Map = make(map[K]int)
	}
}

// Add sets the value for the given key. An existing key keeps its
// position; a new key is appended.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if idx, has := om.Map[key]; has {
		om.Order[idx].Value = val
		return
	}
	om.Map[key] = len(om.Order)
	om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
}

// AddNew adds the value for the given key, returning an error if
// the key is already present.
func (om *Map[K, V]) AddNew(key K, val V) error {
	if _, has := om.Map[key]; has {
		return fmt.Errorf("ordmap.Map: key %v already exists", key)
	}
	om.Add(key, val)
	return nil
}

// ValueByKeyTry returns the value for the given key,
// with false returned for a missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if om != nil {
		if idx, ok := om.Map[key]; ok {
			return om.Order[idx].Value, true
		}
	}
	var zv V
	return zv, false
}

// Len returns the number of entries in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// Keys returns the keys in order.
func (om *Map[K, V]) Keys() []K {
	if om == nil {
		return nil
	}
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns the values in order.
func (om *Map[K, V]) Values() []V {
	if om == nil {
		return nil
	}
	vl := make([]V, om.Len())
	for i, kv := range om.Order {
		vl[i] = kv.Value
	}
	return vl
}

// All iterates over the entries in order.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if om == nil {
			return
		}
		for _, kv := range om.Order {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the map: the entries are copied,
// the values themselves are not.
func (om *Map[K, V]) Clone() *Map[K, V] {
	cp := &Map[K, V]{
		Order: slices.Clone(om.Order),
		Map:   make(map[K]int, om.Len()),
	}
	for i, kv := range cp.Order {
		cp.Map[kv.Key] = i
	}
	return cp
}
