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

// Package timsort implements a stable, adaptive, in-place comparison sort
// for slices, based on the Timsort algorithm. It exploits pre-existing order
// in the input and merges natural runs with a combination of one-pair-at-a-time
// merging and galloping search, giving O(n) behavior on nearly-sorted input
// and O(n log n) in the worst case.
package timsort

import (
	"math/bits"

	"github.com/matrixorigin/timsort/pkg/logutil"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

const (
	// maxMinRunLength is the maximum minrun length.
	maxMinRunLength = 32

	// Based on the merging strategy, the run lengths in the stack grow at
	// least as fast as the Fibonacci numbers. A stack of depth 100 covers
	// any slice addressable on a 64-bit machine.
	maxMergeStackSize = 100

	// minGallopInit is the initial threshold for entering galloping mode.
	minGallopInit = 7

	// initMergeAreaSize is the initial reservation of the merge area.
	initMergeAreaSize = 256
)

// run is the half-open range [first, last) within the slice being sorted.
// After detection its elements are weakly ascending under the comparator.
type run struct {
	first int
	last  int
}

func (r run) length() int {
	return r.last - r.first
}

// sorter holds the per-call merge state: the run stack, the reusable merge
// area and the adaptive gallop threshold.
type sorter[T any] struct {
	data []T
	less func(a, b T) bool

	arraySize int

	numRuns int
	stack   [maxMergeStackSize]run

	minGallop int

	// mergeArea holds the smaller of the two runs during a merge.
	// It grows on demand up to arraySize/2 and never shrinks within a sort.
	mergeArea []T
}

// Sort sorts data in ascending order. The sort is stable.
func Sort[T constraints.Ordered](data []T) {
	SortFunc(data, func(a, b T) bool { return a < b })
}

// SortFunc sorts data using less as the comparator. less must define a strict
// weak order; the sort is stable with respect to it. Sorting a sub-slice
// data[i:j] sorts exactly that range.
func SortFunc[T any](data []T, less func(a, b T) bool) {
	n := len(data)
	if n <= 1 {
		return
	}

	initArea := initMergeAreaSize
	if half := n >> 1; half < initArea {
		initArea = half
	}
	s := &sorter[T]{
		data:      data,
		less:      less,
		arraySize: n,
		minGallop: minGallopInit,
		mergeArea: make([]T, initArea),
	}

	minRun := minRunLength(n)
	next := 0
	for next < n {
		runLast := detectRunAndMakeAscending(data, next, n, less)
		runLen := runLast - next

		// Boost short natural runs to minRun with binary insertion sort.
		if remain := n - next; runLen < minRun && runLen < remain {
			runLen = minRun
			if remain < runLen {
				runLen = remain
			}
			runLast = next + runLen
			binaryInsertionSort(data, next, runLast, less)
		}

		s.pushRun(run{first: next, last: runLast})
		s.tryMerge()

		next = runLast
	}

	s.forceMerge()
}

func (s *sorter[T]) pushRun(r run) {
	if s.numRuns >= maxMergeStackSize {
		invariantFailed("merge stack overflow",
			zap.Int("numRuns", s.numRuns), zap.Int("arraySize", s.arraySize))
	}
	s.stack[s.numRuns] = r
	s.numRuns++
}

// ensureMergeArea returns a merge area of exactly the required length.
// Growth is to the next power of two at least the required size, clamped to
// arraySize/2. The amortized allocation cost over a sort is O(n).
func (s *sorter[T]) ensureMergeArea(required int) []T {
	if len(s.mergeArea) < required {
		newSize := 1 << bits.Len(uint(required-1))
		if half := s.arraySize >> 1; newSize > half {
			newSize = half
		}
		if newSize < required {
			newSize = required
		}
		s.mergeArea = make([]T, newSize)
	}
	return s.mergeArea[:required]
}

func invariantFailed(msg string, fields ...zap.Field) {
	logutil.Error(msg, fields...)
	panic("timsort: " + msg)
}
