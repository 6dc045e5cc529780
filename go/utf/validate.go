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

// Verdict classifies the outcome of validating a buffer. The zero value
// means well-formed; every violation class has its own distinct code so
// callers can tell an unpaired surrogate from an out-of-range scalar from an
// overlong sequence. A Verdict is a result, not an error: validation never
// aborts the caller.
type Verdict int

const (
	WellFormed Verdict = iota

	// UnpairedSurrogate: a 16-bit high surrogate not followed by a unit in
	// the low surrogate range.
	UnpairedSurrogate

	// SurrogateScalar: a surrogate value where a direct scalar is expected,
	// including a 16-bit low surrogate in leading position.
	SurrogateScalar

	// RangeExceeded: a scalar above MaxRune.
	RangeExceeded

	// BadContinuation: an 8-bit trailing unit that is missing or does not
	// carry the 10xxxxxx pattern.
	BadContinuation

	// Overlong: an 8-bit sequence longer than its scalar's minimal
	// encoding, or a lead declaring more than 3 trailing units.
	Overlong
)

func (v Verdict) String() string {
	switch v {
	case WellFormed:
		return "well-formed"
	case UnpairedSurrogate:
		return "unpaired surrogate"
	case SurrogateScalar:
		return "surrogate scalar"
	case RangeExceeded:
		return "scalar out of range"
	case BadContinuation:
		return "bad continuation unit"
	case Overlong:
		return "overlong encoding"
	}
	return "invalid"
}

// Validate8 scans the terminated 8-bit buffer src and returns the first
// violation found, or WellFormed. Every sequence is checked; nothing
// short-circuits on the first decodable scalar. The checks re-derive the
// decoder's rules independently: continuation units must carry the exact 10
// bit prefix, assembled scalars must be in range and non-surrogate, and each
// scalar must occupy exactly its minimal length.
func Validate8(src []byte) Verdict {
	for i := 0; i < len(src) && src[i] != 0; {
		size := int(utf8Trailing[src[i]]) + 1
		if size > utf8MaxLen {
			return Overlong
		}
		if i+size > len(src) {
			return BadContinuation
		}
		r := rune(src[i])
		for _, c := range src[i+1 : i+size] {
			if c == 0 || c&0xC0 != 0x80 {
				return BadContinuation
			}
			r = r<<6 + rune(c)
		}
		r -= utf8Subtract[size]
		switch {
		case surrHighMin <= r && r <= surrLowMax:
			return SurrogateScalar
		case r > MaxRune:
			return RangeExceeded
		case runeLen8(uint32(r)) != size:
			return Overlong
		}
		i += size
	}
	return WellFormed
}

// Validate16 scans the terminated 16-bit buffer src and returns the first
// violation found, or WellFormed. Both halves of a candidate pair are
// byte-reversed before inspection when swap is set.
func Validate16(src []uint16, swap bool) Verdict {
	for i := 0; i < len(src) && src[i] != 0; i++ {
		u := swap16(src[i], swap)
		switch {
		case surrHighMin <= u && u <= surrHighMax:
			if i+1 >= len(src) || src[i+1] == 0 {
				return UnpairedSurrogate
			}
			trail := swap16(src[i+1], swap)
			if trail < surrLowMin || surrLowMax < trail {
				return UnpairedSurrogate
			}
			i++
		case surrLowMin <= u && u <= surrLowMax:
			return SurrogateScalar
		}
	}
	return WellFormed
}

// Validate32 scans the terminated 32-bit buffer src and returns the first
// violation found, or WellFormed.
func Validate32(src []uint32, swap bool) Verdict {
	for i := 0; i < len(src) && src[i] != 0; i++ {
		u := swap32(src[i], swap)
		switch {
		case surrHighMin <= u && u <= surrLowMax:
			return SurrogateScalar
		case u > MaxRune:
			return RangeExceeded
		}
	}
	return WellFormed
}
