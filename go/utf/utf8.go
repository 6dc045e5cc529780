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

// utf8MaxLen is the longest legal 8-bit sequence. The classification table
// below still describes the historical 5- and 6-unit lead patterns so the
// decoder can consume them whole before rejecting them.
const utf8MaxLen = 4

const (
	rune1Max = 1<<7 - 1
	rune2Max = 1<<11 - 1
	rune3Max = 1<<16 - 1
)

// utf8Trailing maps a leading unit to the number of continuation units its
// sequence declares. Continuation units (0x80-0xBF) map to 0 and are caught
// later by the minimality check when they appear in lead position.
var utf8Trailing = [256]uint8{
	//   1  2  3  4  5  6  7  8  9  A  B  C  D  E  F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x00-0x0F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x10-0x1F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x20-0x2F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x30-0x3F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x40-0x4F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x50-0x5F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x60-0x6F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x70-0x7F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x80-0x8F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x90-0x9F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xA0-0xAF
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xB0-0xBF
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xC0-0xCF
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xD0-0xDF
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xE0-0xEF
	3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, // 0xF0-0xFF
}

// utf8Subtract holds, per sequence length, the lead and continuation marker
// bits accumulated by the shift-and-add decode. Subtracting the entry
// recovers the plain scalar.
var utf8Subtract = [utf8MaxLen + 1]rune{
	0,
	0,
	0xC0<<6 | 0x80,
	0xE0<<12 | 0x80<<6 | 0x80,
	0xF0<<18 | 0x80<<12 | 0x80<<6 | 0x80,
}

// utf8Lead holds the marker bits OR'd into the leading unit, per sequence
// length.
var utf8Lead = [utf8MaxLen + 1]byte{0, 0, 0xC0, 0xE0, 0xF0}

// runeLen8 is the threshold cost of a scalar in 8-bit units. It deliberately
// takes the raw unsigned value so size estimation can apply it to unchecked
// input; values past MaxRune simply land in the 4-unit bucket.
func runeLen8(u uint32) int {
	switch {
	case u <= rune1Max:
		return 1
	case u <= rune2Max:
		return 2
	case u <= rune3Max:
		return 3
	}
	return 4
}

// RuneLen8 returns the number of 8-bit units EncodeRune8 would write for r.
// Scalars that cannot be encoded take the length of RuneError.
func RuneLen8(r rune) int {
	if !ValidRune(r) {
		r = RuneError
	}
	return runeLen8(uint32(r))
}

// DecodeRune8 decodes the first scalar in src and returns it along with the
// number of 8-bit units consumed. Malformed input yields RuneError; the
// consumed count then spans the full attempted sequence (or whatever the
// slice still holds, when the sequence is cut short) so that a scan always
// moves forward. An empty src returns (RuneError, 0).
func DecodeRune8(src []byte) (rune, int) {
	if len(src) == 0 {
		return RuneError, 0
	}
	size := int(utf8Trailing[src[0]]) + 1
	if len(src) < size {
		return RuneError, len(src)
	}
	if size > utf8MaxLen {
		return RuneError, size
	}
	r := rune(src[0])
	for _, c := range src[1:size] {
		if c&0xC0 != 0x80 {
			return RuneError, size
		}
		r = r<<6 + rune(c)
	}
	r -= utf8Subtract[size]
	if !ValidRune(r) || runeLen8(uint32(r)) != size {
		return RuneError, size
	}
	return r, size
}

// EncodeRune8 writes the 8-bit encoding of r at the start of dst and returns
// the number of units written. Invalid scalars encode as RuneError. When dst
// cannot hold the full sequence, the available span is zero-filled and 0 is
// returned; a return of 0 therefore always means "did not fit", while
// encoding the scalar zero returns 1.
func EncodeRune8(dst []byte, r rune) int {
	if !ValidRune(r) {
		r = RuneError
	}
	size := runeLen8(uint32(r))
	if len(dst) < size {
		for i := range dst {
			dst[i] = 0
		}
		return 0
	}
	for i := size - 1; i > 0; i-- {
		dst[i] = byte(r)&0x3F | 0x80
		r >>= 6
	}
	dst[0] = byte(r) | utf8Lead[size]
	return size
}
