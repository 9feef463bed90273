// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

// Um returns a new micrometer quantity.
func Um(mag float64) Quantity {
	return Q(mag, "micrometer")
}

// Mm returns a new millimeter quantity:
// the base unit of length of [SIEngineering].
func Mm(mag float64) Quantity {
	return Q(mag, "millimeter")
}

// Cm returns a new centimeter quantity.
func Cm(mag float64) Quantity {
	return Q(mag, "centimeter")
}

// M returns a new meter quantity.
func M(mag float64) Quantity {
	return Q(mag, "meter")
}

// Thou returns a new thou quantity:
// 1 thou = 1/1000 in, the base unit of length of [USEngineering].
func Thou(mag float64) Quantity {
	return Q(mag, "thou")
}

// In returns a new inch quantity:
// 1 in = 25.4 mm.
func In(mag float64) Quantity {
	return Q(mag, "inch")
}

// Ft returns a new foot quantity:
// 1 ft = 12 in.
func Ft(mag float64) Quantity {
	return Q(mag, "foot")
}

// Deg returns a new degree quantity:
// 1 deg = pi/180 rad.
func Deg(mag float64) Quantity {
	return Q(mag, "degree")
}

// Rad returns a new radian quantity.
func Rad(mag float64) Quantity {
	return Q(mag, "radian")
}

// Kg returns a new kilogram quantity.
func Kg(mag float64) Quantity {
	return Q(mag, "kilogram")
}

// Lb returns a new pound quantity:
// 1 lb = 0.45359237 kg.
func Lb(mag float64) Quantity {
	return Q(mag, "pound")
}

// N returns a new newton quantity.
func N(mag float64) Quantity {
	return Q(mag, "newton")
}
