/*
Copyright 2023 The Uniconv Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package utf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeFrom8(t *testing.T) {
	testCases := []struct {
		name string
		in   []byte
		in16 int
		in32 int
	}{
		{"empty", nil, 0, 0},
		{"terminator only", []byte{0x00}, 0, 0},
		{"ascii", []byte{0x41, 0x42, 0x43, 0x00}, 3, 3},
		{"mixed", sample8, 5, 4},
		{"supplementary pair cost", []byte{0xF0, 0x90, 0x8D, 0x88, 0x00}, 2, 1},
		{"after terminator ignored", []byte{0x41, 0x00, 0x42, 0x43}, 1, 1},
		{"unterminated", []byte{0xC2, 0xA2, 0xE2, 0x82, 0xAC}, 2, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.in16, Size8In16(tc.in))
			assert.Equal(t, tc.in32, Size8In32(tc.in))
		})
	}
}

func TestSizeFrom16(t *testing.T) {
	testCases := []struct {
		name string
		in   []uint16
		swap bool
		in8  int
		in32 int
	}{
		{"empty", nil, false, 0, 0},
		{"terminator only", []uint16{0x0000}, false, 0, 0},
		{"ascii", []uint16{0x0041, 0x0042, 0x0000}, false, 2, 2},
		{"mixed", sample16, false, 10, 4},
		{"pair collapses", []uint16{0xD800, 0xDF48, 0x0000}, false, 4, 1},
		{"threshold classes", []uint16{0x007F, 0x0080, 0x07FF, 0x0800, 0xFFFF, 0x0000}, false, 1 + 2 + 2 + 3 + 3, 5},
		{"swapped mixed", []uint16{0x2400, 0xA200, 0xAC20, 0x00D8, 0x48DF, 0x0000}, true, 10, 4},
		{"after terminator ignored", []uint16{0x20AC, 0x0000, 0xD800}, false, 3, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.in8, Size16In8(tc.in, tc.swap))
			assert.Equal(t, tc.in32, Size16In32(tc.in, tc.swap))
		})
	}
}

func TestSizeFrom32(t *testing.T) {
	testCases := []struct {
		name string
		in   []uint32
		swap bool
		in8  int
		in16 int
	}{
		{"empty", nil, false, 0, 0},
		{"terminator only", []uint32{0x00000000}, false, 0, 0},
		{"mixed", sample32, false, 10, 5},
		{"threshold classes", []uint32{0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x00}, false, 1 + 2 + 2 + 3 + 3, 5},
		{"swapped mixed", []uint32{0x24000000, 0xA2000000, 0xAC200000, 0x48030100, 0x00000000}, true, 10, 5},
		{"after terminator ignored", []uint32{0x10348, 0x0, 0x10348}, false, 4, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.in8, Size32In8(tc.in, tc.swap))
			assert.Equal(t, tc.in16, Size32In16(tc.in, tc.swap))
		})
	}
}

// The pair threshold in the 16-bit target is inclusive: the first
// supplementary scalar already needs two units.
func TestSize32In16Boundary(t *testing.T) {
	assert.Equal(t, 1, Size32In16([]uint32{0x0000FFFF, 0x00000000}, false))
	assert.Equal(t, 2, Size32In16([]uint32{0x00010000, 0x00000000}, false))
	assert.Equal(t, 2, Size32In16([]uint32{0x0010FFFF, 0x00000000}, false))
}

func BenchmarkSize8In16(b *testing.B) {
	src := build8(sampledScalars(2053))

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_ = Size8In16(src)
	}
}
