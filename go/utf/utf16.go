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

func swap16(u uint16, swap bool) uint16 {
	if swap {
		return bits.ReverseBytes16(u)
	}
	return u
}

// RuneLen16 returns the number of 16-bit units EncodeRune16 would write for
// r. Scalars that cannot be encoded take the length of RuneError.
func RuneLen16(r rune) int {
	if ValidRune(r) && r >= surrSelf {
		return 2
	}
	return 1
}

// DecodeRune16 decodes the first scalar in src and returns it along with the
// number of 16-bit units consumed, byte-reversing each unit first when swap
// is set. A high surrogate must be directly followed by a unit in the low
// surrogate range; any unpaired surrogate yields RuneError with 1 unit
// consumed, so the scan resynchronizes on the very next unit. An empty src
// returns (RuneError, 0).
func DecodeRune16(src []uint16, swap bool) (rune, int) {
	if len(src) == 0 {
		return RuneError, 0
	}
	lead := swap16(src[0], swap)
	switch {
	case surrHighMin <= lead && lead <= surrHighMax:
		if len(src) < 2 {
			return RuneError, 1
		}
		trail := swap16(src[1], swap)
		if trail < surrLowMin || surrLowMax < trail {
			return RuneError, 1
		}
		// Ten payload bits per half; the pair offset puts the result in
		// [0x10000, 0x10FFFF], so no further validity check is needed.
		return (rune(lead&0x3FF)<<10 | rune(trail&0x3FF)) + surrSelf, 2
	case surrLowMin <= lead && lead <= surrLowMax:
		return RuneError, 1
	}
	return rune(lead), 1
}

// EncodeRune16 writes the 16-bit encoding of r at the start of dst and
// returns the number of units written, byte-reversing each unit when swap is
// set. Invalid scalars encode as RuneError. When dst cannot hold the full
// encoding, the available span is zero-filled and 0 is returned; a half pair
// is never emitted.
func EncodeRune16(dst []uint16, r rune, swap bool) int {
	if !ValidRune(r) {
		r = RuneError
	}
	if r < surrSelf {
		if len(dst) < 1 {
			return 0
		}
		dst[0] = swap16(uint16(r), swap)
		return 1
	}
	if len(dst) < 2 {
		for i := range dst {
			dst[i] = 0
		}
		return 0
	}
	r -= surrSelf
	dst[0] = swap16(uint16(r>>10)&0x3FF|surrHighMin, swap)
	dst[1] = swap16(uint16(r)&0x3FF|surrLowMin, swap)
	return 2
}
