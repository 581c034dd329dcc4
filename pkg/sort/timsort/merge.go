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

import "go.uber.org/zap"

// tryMerge restores the run stack invariants after a push. With A, B and C
// the three rightmost runs (A deepest), both len(A) > len(B)+len(C) and
// len(B) > len(C) must hold; while either is broken, B is merged with the
// smaller of its neighbors. Merging A with C directly is never allowed, it
// would reorder equal elements across B.
func (s *sorter[T]) tryMerge() {
	for s.numRuns > 1 {
		pos := s.numRuns - 2
		switch {
		case pos > 0 && s.stack[pos-1].length() <= s.stack[pos].length()+s.stack[pos+1].length():
			if s.stack[pos-1].length() < s.stack[pos+1].length() {
				pos--
			}
			s.mergeAt(pos)
		case s.stack[pos].length() <= s.stack[pos+1].length():
			s.mergeAt(pos)
		default:
			return
		}
	}
}

// forceMerge drains the stack down to a single run, merging the second run
// from the top with the smaller of its neighbors each time.
func (s *sorter[T]) forceMerge() {
	for s.numRuns > 1 {
		pos := s.numRuns - 2
		if pos > 0 && s.stack[pos-1].length() < s.stack[pos+1].length() {
			pos--
		}
		s.mergeAt(pos)
	}
}

// mergeAt merges the stack entries pos and pos+1. pos must be the second or
// third entry from the top.
func (s *sorter[T]) mergeAt(pos int) {
	if pos != s.numRuns-2 && pos != s.numRuns-3 {
		invariantFailed("merge at invalid stack position",
			zap.Int("pos", pos), zap.Int("numRuns", s.numRuns))
	}

	firstA, lastA := s.stack[pos].first, s.stack[pos].last
	firstB, lastB := s.stack[pos+1].first, s.stack[pos+1].last

	// Entry pos absorbs the combined run. If the merge is one below the
	// top, the former top slides down a slot.
	s.stack[pos].last = lastB
	if pos == s.numRuns-3 {
		s.stack[pos+1] = s.stack[pos+2]
	}
	s.numRuns--

	// The leading elements of A that are at most the first element of B
	// are already in place.
	pA := gallopRight(s.data, firstA, lastA, firstA, s.data[firstB], s.less)
	if lastA-pA == 0 {
		return
	}

	// The trailing elements of B that are at least the last element of A
	// are already in place.
	pB := gallopLeft(s.data, firstB, lastB, lastB-1, s.data[lastA-1], s.less)
	if pB-firstB == 0 {
		return
	}

	if lastA-pA <= pB-firstB {
		s.mergeLow(pA, lastA, firstB, pB)
	} else {
		s.mergeHigh(pA, lastA, firstB, pB)
	}
}

// mergeLow merges the adjacent weakly ascending runs A = data[firstA:lastA]
// and B = data[firstB:lastB], with lastA == firstB, len(A) <= len(B),
// less(data[firstB], data[firstA]) and less(data[lastB-1], data[lastA-1]).
// A is copied to the merge area and the merge runs left to right.
func (s *sorter[T]) mergeLow(firstA, lastA, firstB, lastB int) {
	lengthA := lastA - firstA
	lengthB := lastB - firstB

	tmp := s.ensureMergeArea(lengthA)
	copy(tmp, s.data[firstA:lastA])

	cursorA := 0 // into tmp
	cursorB := firstB
	dest := firstA

	// The three ways a merge terminates: B exhausted (the rest of A is
	// still in the merge area), one element of A left (it belongs at the
	// very end), or A exhausted during a gallop (everything is in place).
	copyRestOfA := func() {
		copy(s.data[dest:dest+lengthA], tmp[cursorA:cursorA+lengthA])
	}
	copyBAppendA := func() {
		copy(s.data[dest:dest+lengthB], s.data[cursorB:cursorB+lengthB])
		s.data[dest+lengthB] = tmp[cursorA]
	}

	// The caller guarantees the first element of B is less than the first
	// element of A, so it is emitted up front.
	s.data[dest] = s.data[cursorB]
	dest++
	cursorB++
	lengthB--

	minGallop := s.minGallop

	if lengthB == 0 {
		s.minGallop = minGallop
		copyRestOfA()
		return
	}
	if lengthA == 1 {
		s.minGallop = minGallop
		copyBAppendA()
		return
	}

	for {
		countA := 0 // times run A won in a row
		countB := 0 // times run B won in a row

		// One-pair-at-a-time mode. Ties go to A to keep the sort stable.
		for {
			if s.less(s.data[cursorB], tmp[cursorA]) {
				s.data[dest] = s.data[cursorB]
				dest++
				cursorB++
				lengthB--
				countA = 0
				countB++
				if lengthB == 0 {
					s.minGallop = minGallop
					copyRestOfA()
					return
				}
			} else {
				s.data[dest] = tmp[cursorA]
				dest++
				cursorA++
				lengthA--
				countA++
				countB = 0
				if lengthA == 1 {
					s.minGallop = minGallop
					copyBAppendA()
					return
				}
			}
			// one of the counters is always zero
			if countA|countB >= minGallop {
				break
			}
		}

		// Galloping mode. Stay as long as either run keeps winning streaks
		// of at least minGallopInit.
		for {
			p := gallopRight(tmp, cursorA, cursorA+lengthA, cursorA, s.data[cursorB], s.less)
			countA = p - cursorA
			if countA != 0 {
				copy(s.data[dest:dest+countA], tmp[cursorA:p])
				dest += countA
				cursorA += countA
				lengthA -= countA

				if lengthA == 0 {
					// not reached while the last element of A exceeds every
					// element of B; the rest of B is already in place
					s.minGallop = minGallop
					return
				}
				if lengthA == 1 {
					s.minGallop = minGallop
					copyBAppendA()
					return
				}
			}
			s.data[dest] = s.data[cursorB]
			dest++
			cursorB++
			lengthB--
			if lengthB == 0 {
				s.minGallop = minGallop
				copyRestOfA()
				return
			}

			p = gallopLeft(s.data, cursorB, lastB, cursorB, tmp[cursorA], s.less)
			countB = p - cursorB
			if countB != 0 {
				copy(s.data[dest:dest+countB], s.data[cursorB:p])
				dest += countB
				cursorB += countB
				lengthB -= countB

				if lengthB == 0 {
					s.minGallop = minGallop
					copyRestOfA()
					return
				}
			}
			s.data[dest] = tmp[cursorA]
			dest++
			cursorA++
			lengthA--
			if lengthA == 1 {
				s.minGallop = minGallop
				copyBAppendA()
				return
			}

			// The longer galloping pays off this time, the earlier it is
			// entered next time.
			if minGallop > 1 {
				minGallop--
			}
			if countA < minGallopInit && countB < minGallopInit {
				break
			}
		}

		minGallop++ // penalize leaving galloping mode
	}
}

// mergeHigh merges the adjacent weakly ascending runs A = data[firstA:lastA]
// and B = data[firstB:lastB], with lastA == firstB, len(A) > len(B),
// less(data[firstB], data[firstA]) and less(data[lastB-1], data[lastA-1]).
// B is copied to the merge area and the merge runs right to left.
func (s *sorter[T]) mergeHigh(firstA, lastA, firstB, lastB int) {
	lengthA := lastA - firstA
	lengthB := lastB - firstB

	tmp := s.ensureMergeArea(lengthB)
	copy(tmp, s.data[firstB:lastB])

	cursorA := lastA - 1   // into data
	cursorB := lengthB - 1 // into tmp
	dest := lastB - 1

	copyRestOfB := func() {
		copy(s.data[dest-cursorB:dest+1], tmp[:cursorB+1])
	}
	copyAPrependB := func() {
		copy(s.data[dest-lengthA+1:dest+1], s.data[firstA:cursorA+1])
		s.data[dest-lengthA] = tmp[cursorB]
	}

	// The caller guarantees the last element of A exceeds the last element
	// of B, so it is emitted up front.
	s.data[dest] = s.data[cursorA]
	dest--
	cursorA--
	lengthA--

	minGallop := s.minGallop

	if lengthA == 0 {
		s.minGallop = minGallop
		copyRestOfB()
		return
	}
	if lengthB == 1 {
		s.minGallop = minGallop
		copyAPrependB()
		return
	}

	for {
		countA := 0
		countB := 0

		// One-pair-at-a-time mode. Emitting right to left, ties go to B so
		// equal elements of B stay to the right of their peers in A.
		for {
			if s.less(tmp[cursorB], s.data[cursorA]) {
				s.data[dest] = s.data[cursorA]
				dest--
				cursorA--
				lengthA--
				countA++
				countB = 0
				if lengthA == 0 {
					s.minGallop = minGallop
					copyRestOfB()
					return
				}
			} else {
				s.data[dest] = tmp[cursorB]
				dest--
				cursorB--
				lengthB--
				countA = 0
				countB++
				if lengthB == 1 {
					s.minGallop = minGallop
					copyAPrependB()
					return
				}
			}
			if countA|countB >= minGallop {
				break
			}
		}

		for {
			p := gallopRight(s.data, firstA, cursorA+1, cursorA, tmp[cursorB], s.less)
			countA = cursorA + 1 - p
			if countA != 0 {
				copy(s.data[dest-countA+1:dest+1], s.data[p:cursorA+1])
				dest -= countA
				cursorA -= countA
				lengthA -= countA
				if lengthA == 0 {
					// the first element of A exceeds the first element of
					// B, so some of B is always left here
					s.minGallop = minGallop
					copyRestOfB()
					return
				}
			}
			s.data[dest] = tmp[cursorB]
			dest--
			cursorB--
			lengthB--
			if lengthB == 1 {
				s.minGallop = minGallop
				copyAPrependB()
				return
			}

			p = gallopLeft(tmp, 0, cursorB+1, cursorB, s.data[cursorA], s.less)
			countB = cursorB + 1 - p
			if countB != 0 {
				copy(s.data[dest-countB+1:dest+1], tmp[p:cursorB+1])
				dest -= countB
				cursorB -= countB
				lengthB -= countB
				if lengthB == 0 {
					// not reached while the first element of A exceeds the
					// first element of B; the rest of A is already in place
					s.minGallop = minGallop
					return
				}
				if lengthB == 1 {
					s.minGallop = minGallop
					copyAPrependB()
					return
				}
			}
			s.data[dest] = s.data[cursorA]
			dest--
			cursorA--
			lengthA--
			if lengthA == 0 {
				s.minGallop = minGallop
				copyRestOfB()
				return
			}

			if minGallop > 1 {
				minGallop--
			}
			if countA < minGallopInit && countB < minGallopInit {
				break
			}
		}

		minGallop++
	}
}
