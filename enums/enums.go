// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enums defines the interface implemented by enum types
// annotated with //enums:enum and the helper functions their
// generated methods delegate to.
package enums

import (
	"fmt"
	"strconv"
	"strings"
)

// Enum is the interface that all enum types satisfy.
type Enum interface {
	fmt.Stringer

	// Int64 returns the enum value as an int64.
	Int64() int64

	// Desc returns the description of the enum value.
	Desc() string
}

// EnumSetter is an expanded interface that all pointers
// to enum types satisfy.
type EnumSetter interface {
	Enum

	// SetString sets the enum value from its string representation,
	// and returns an error if the string is invalid.
	SetString(s string) error

	// SetInt64 sets the enum value from an int64.
	SetInt64(i int64)
}

// Scalar is the constraint satisfied by the underlying types of enums.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// String returns the name of the given enum value from the given
// name map, or its number if it has no name.
func String[T Scalar](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(int64(i), 10)
}

// SetString sets the given enum value from its name,
// using the given map from names to values.
func SetString[T Scalar](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower is like [SetString], but also accepts the name
// in any case by looking up its lowercase form.
func SetStringLower[T Scalar](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value from the
// given description map, falling back on its name.
func Desc[T interface {
	Scalar
	fmt.Stringer
}](i T, descMap map[T]string) string {
	if str, ok := descMap[i]; ok {
		return str
	}
	return i.String()
}

// Values converts the given slice of enum values into a slice of [Enum].
func Values[T Enum](in []T) []Enum {
	res := make([]Enum, len(in))
	for i, v := range in {
		res[i] = v
	}
	return res
}

// UnmarshalText sets the given enum from the given text,
// returning an error naming the type if it is not a valid value.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		return fmt.Errorf("enums.UnmarshalText: %s: %w", typeName, err)
	}
	return nil
}
