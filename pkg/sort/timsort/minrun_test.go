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

import "testing"

func TestMinRunLengthSmall(t *testing.T) {
	for n := 1; n < maxMinRunLength; n++ {
		if got := minRunLength(n); got != n {
			t.Errorf("minRunLength(%v) = %v, want %v", n, got, n)
		}
	}
}

func TestMinRunLengthExact(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "32 is a power of two", n: 32, want: 16},
		{name: "33 carries a sticky bit", n: 33, want: 17},
		{name: "63 all low bits set", n: 63, want: 32},
		{name: "64 is a power of two", n: 64, want: 16},
		{name: "65", n: 65, want: 17},
		{name: "1024 is a power of two", n: 1024, want: 16},
		{name: "large power of two", n: 1 << 30, want: 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minRunLength(tt.n); got != tt.want {
				t.Errorf("minRunLength(%v) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestMinRunLengthBounds(t *testing.T) {
	for n := maxMinRunLength; n < 1<<16; n++ {
		got := minRunLength(n)
		if got < maxMinRunLength/2 || got > maxMinRunLength {
			t.Fatalf("minRunLength(%v) = %v out of [16, 32]", n, got)
		}
	}
}
