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

import "math/bits"

func swap32(u uint32, swap bool) uint32 {
	if swap {
		return bits.ReverseBytes32(u)
	}
	return u
}

// DecodeRune32 decodes the first scalar in src, byte-reversing the unit
// first when swap is set. The unit value is the candidate scalar directly;
// surrogates and values past MaxRune yield RuneError. Exactly 1 unit is
// consumed unless src is empty, which returns (RuneError, 0).
func DecodeRune32(src []uint32, swap bool) (rune, int) {
	if len(src) == 0 {
		return RuneError, 0
	}
	if r := rune(swap32(src[0], swap)); ValidRune(r) {
		return r, 1
	}
	return RuneError, 1
}

// EncodeRune32 writes r as a single 32-bit unit at the start of dst,
// byte-reversed when swap is set, and returns 1. Invalid scalars encode as
// RuneError. An empty dst returns 0.
func EncodeRune32(dst []uint32, r rune, swap bool) int {
	if !ValidRune(r) {
		r = RuneError
	}
	if len(dst) < 1 {
		return 0
	}
	dst[0] = swap32(uint32(r), swap)
	return 1
}
