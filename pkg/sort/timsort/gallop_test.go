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

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func intLess(a, b int) bool { return a < b }

// lowerBound and upperBound are the linear-scan references the galloping
// searches must agree with.
func lowerBound(data []int, first, last, value int) int {
	for i := first; i < last; i++ {
		if !intLess(data[i], value) {
			return i
		}
	}
	return last
}

func upperBound(data []int, first, last, value int) int {
	for i := first; i < last; i++ {
		if intLess(value, data[i]) {
			return i
		}
	}
	return last
}

func TestGallopAgainstLinearSearch(t *testing.T) {
	// sorted, with duplicate clusters so both bounds differ
	data := []int{0, 2, 2, 2, 3, 5, 5, 8, 8, 8, 8, 9, 12, 12, 15}
	for hint := 0; hint < len(data); hint++ {
		for value := -1; value <= 16; value++ {
			got := gallopLeft(data, 0, len(data), hint, value, intLess)
			want := lowerBound(data, 0, len(data), value)
			require.Equal(t, want, got, "gallopLeft hint=%v value=%v", hint, value)

			got = gallopRight(data, 0, len(data), hint, value, intLess)
			want = upperBound(data, 0, len(data), value)
			require.Equal(t, want, got, "gallopRight hint=%v value=%v", hint, value)
		}
	}
}

func TestGallopSubRange(t *testing.T) {
	data := []int{99, 99, 1, 1, 2, 4, 4, 4, 7, 99}
	first, last := 2, 9
	for hint := first; hint < last; hint++ {
		for value := 0; value <= 8; value++ {
			require.Equal(t,
				lowerBound(data, first, last, value),
				gallopLeft(data, first, last, hint, value, intLess),
				"gallopLeft hint=%v value=%v", hint, value)
			require.Equal(t,
				upperBound(data, first, last, value),
				gallopRight(data, first, last, hint, value, intLess),
				"gallopRight hint=%v value=%v", hint, value)
		}
	}
}

func TestGallopRandomized(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		n := 1 + rnd.Intn(500)
		data := make([]int, n)
		v := 0
		for i := range data {
			v += rnd.Intn(3) // duplicates on purpose
			data[i] = v
		}
		hint := rnd.Intn(n)
		value := rnd.Intn(v + 2)
		require.Equal(t, lowerBound(data, 0, n, value),
			gallopLeft(data, 0, n, hint, value, intLess))
		require.Equal(t, upperBound(data, 0, n, value),
			gallopRight(data, 0, n, hint, value, intLess))
	}
}

func TestGallopSingleElement(t *testing.T) {
	data := []int{5}
	require.Equal(t, 0, gallopLeft(data, 0, 1, 0, 5, intLess))
	require.Equal(t, 1, gallopRight(data, 0, 1, 0, 5, intLess))
	require.Equal(t, 0, gallopLeft(data, 0, 1, 0, 4, intLess))
	require.Equal(t, 0, gallopRight(data, 0, 1, 0, 4, intLess))
	require.Equal(t, 1, gallopLeft(data, 0, 1, 0, 6, intLess))
	require.Equal(t, 1, gallopRight(data, 0, 1, 0, 6, intLess))
}
