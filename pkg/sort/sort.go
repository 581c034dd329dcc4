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

// Package sort provides ascending and descending ordering of value slices
// and of order indexes over value slices, on top of the timsort core.
package sort

import (
	"github.com/matrixorigin/timsort/pkg/sort/timsort"
	"golang.org/x/exp/constraints"
)

// Sort stably permutes the order index os so that vs[os[i]] is ordered.
// Entries of os referring to equal values keep their relative order, in
// both directions. vs itself is not modified.
func Sort[T constraints.Ordered](desc bool, os []int64, vs []T) {
	if desc {
		timsort.SortFunc(os, func(a, b int64) bool { return vs[b] < vs[a] })
	} else {
		timsort.SortFunc(os, func(a, b int64) bool { return vs[a] < vs[b] })
	}
}

// SortValues stably sorts vs in place.
func SortValues[T constraints.Ordered](desc bool, vs []T) {
	if desc {
		timsort.SortFunc(vs, func(a, b T) bool { return b < a })
	} else {
		timsort.Sort(vs)
	}
}
