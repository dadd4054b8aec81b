// Copyright 2025 The Kestrel Authors
// This file is part of Kestrel.
//
// Kestrel is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Kestrel is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Kestrel. If not, see <http://www.gnu.org/licenses/>.

// Package math provides overflow-checked integer arithmetic for gas formulas.
package math

import "math"

// MaxUint64 is the largest value representable by a uint64.
const MaxUint64 = math.MaxUint64

// SafeAdd returns x+y and checks for overflow.
func SafeAdd(x, y uint64) (uint64, bool) {
	return x + y, y > MaxUint64-x
}

// SafeMul returns x*y and checks for overflow.
func SafeMul(x, y uint64) (uint64, bool) {
	if x == 0 || y == 0 {
		return 0, false
	}
	return x * y, y > MaxUint64/x
}

// SafeSub returns x-y and checks for underflow.
func SafeSub(x, y uint64) (uint64, bool) {
	return x - y, x < y
}
