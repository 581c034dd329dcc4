// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package timsort

// minRunLength computes the minimum run length for a slice of n elements,
// chosen so that n/minrun is a power of two, or failing that, close to but
// strictly less than one. Requires n >= 1.
//
// For n < 32 it returns n. For n a power of two >= 32 it returns 16.
// Otherwise it returns a value in [16, 32].
func minRunLength(n int) int {
	bumper := 0
	for n >= maxMinRunLength {
		bumper |= n & 1
		n >>= 1
	}
	return n + bumper
}

// reverseRun reverses data[first:last] in place.
// The range must be strictly descending or reversal would break stability.
func reverseRun[T any](data []T, first, last int) {
	for last--; first < last; first, last = first+1, last-1 {
		data[first], data[last] = data[last], data[first]
	}
}

// detectRunAndMakeAscending returns p such that data[first:p] is weakly
// ascending under less and p <= last. A strictly descending prefix is
// detected and reversed in place. Descending runs must be strict: reversing
// a weakly descending run would transpose equal elements.
func detectRunAndMakeAscending[T any](data []T, first, last int, less func(a, b T) bool) int {
	p := first
	if p >= last {
		return p
	}
	if p++; p >= last {
		return p
	}

	if less(data[p], data[p-1]) {
		// strictly descending
		for p++; p < last && less(data[p], data[p-1]); p++ {
		}
		reverseRun(data, first, p)
	} else {
		// weakly ascending
		for p++; p < last && !less(data[p], data[p-1]); p++ {
		}
	}
	return p
}

// binaryInsertionSort stably sorts data[first:last]. Each element is placed
// at its upper bound within the already sorted prefix; using the upper bound
// keeps equal elements in input order.
func binaryInsertionSort[T any](data []T, first, last int, less func(a, b T) bool) {
	for i := first + 1; i < last; i++ {
		value := data[i]

		lo, hi := first, i
		for lo < hi {
			mid := int(uint(lo+hi) >> 1)
			if less(value, data[mid]) {
				hi = mid
			} else {
				lo = mid + 1
			}
		}

		copy(data[lo+1:i+1], data[lo:i])
		data[lo] = value
	}
}
