// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// it is much easier to test with an independent enum mock
type enum int64

var enumNames = map[enum]string{5: "apple", 3: "orange"}
var enumValues = map[string]enum{"apple": 5, "orange": 3}

func (e enum) String() string            { return String(e, enumNames) }
func (e enum) Int64() int64              { return int64(e) }
func (e enum) Desc() string              { return Desc(e, map[enum]string{5: "A red fruit"}) }
func (e *enum) SetInt64(i int64)         { *e = enum(i) }
func (e *enum) SetString(s string) error { return SetString(e, s, enumValues, "Fruits") }

func TestString(t *testing.T) {
	assert.Equal(t, "apple", String(enum(5), enumNames))
	assert.Equal(t, "4", String(enum(4), enumNames))
}

func TestSetString(t *testing.T) {
	i := enum(0)
	assert.NoError(t, SetString(&i, "apple", enumValues, "Fruits"))
	assert.Equal(t, enum(5), i)

	i = enum(4)
	err := SetString(&i, "Apple", enumValues, "Fruits")
	if assert.Error(t, err) {
		assert.Equal(t, "Apple is not a valid value for type Fruits", err.Error())
	}
	assert.Equal(t, enum(4), i)

	assert.NoError(t, SetStringLower(&i, "ORANGE", enumValues, "Fruits"))
	assert.Equal(t, enum(3), i)
	i = enum(4)
	assert.Error(t, SetStringLower(&i, "Pear", enumValues, "Fruits"))
	assert.Equal(t, enum(4), i)
}

func TestDesc(t *testing.T) {
	assert.Equal(t, "A red fruit", enum(5).Desc())
	assert.Equal(t, "orange", enum(3).Desc())
}

func TestValues(t *testing.T) {
	assert.Equal(t, []Enum{enum(7), enum(4)}, Values([]enum{7, 4}))
}

func TestUnmarshalText(t *testing.T) {
	i := enum(0)
	assert.NoError(t, UnmarshalText(&i, []byte("orange"), "Fruits"))
	assert.Equal(t, enum(3), i)

	i = 4
	err := UnmarshalText(&i, []byte("Pear"), "Fruits")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Fruits")
	}
	assert.Equal(t, enum(4), i)
}
