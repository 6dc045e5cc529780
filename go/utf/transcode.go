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

// Stop tells a Transcode caller why the conversion ended.
type Stop int8

const (
	// StopTerm: the source terminator was decoded. It was neither consumed
	// nor written; callers reserve and zero the destination terminator slot
	// themselves.
	StopTerm Stop = iota

	// StopSrc: the source slice ran out before any terminator appeared.
	StopSrc

	// StopDst: the destination cannot hold the next scalar's encoding. The
	// scalar stays unconsumed, so the conversion can resume from src[nSrc:]
	// with a fresh destination.
	StopDst
)

func (s Stop) String() string {
	switch s {
	case StopTerm:
		return "terminator"
	case StopSrc:
		return "source exhausted"
	case StopDst:
		return "destination full"
	}
	return "invalid"
}

// transcode drives every conversion direction: decode one scalar, re-encode
// it, advance both cursors. Malformed source turns into RuneError under the
// decoder's consumption rules, so the loop always progresses. When source
// and destination give out on the same scalar, the source-side verdict wins.
func transcode[S, D Unit](dst []D, src []S, swap bool,
	decode func([]S, bool) (rune, int),
	encode func([]D, rune, bool) int,
) (nDst, nSrc int, stop Stop) {
	for nDst < len(dst) && nSrc < len(src) {
		r, n := decode(src[nSrc:], swap)
		if r == 0 {
			return nDst, nSrc, StopTerm
		}
		w := encode(dst[nDst:], r, swap)
		if w == 0 {
			return nDst, nSrc, StopDst
		}
		nDst += w
		nSrc += n
	}
	if nSrc < len(src) {
		return nDst, nSrc, StopDst
	}
	return nDst, nSrc, StopSrc
}

// The 8-bit form has no byte order; these adapters give its codec the shape
// the generic loop expects.
func decodeRune8(src []byte, _ bool) (rune, int) { return DecodeRune8(src) }
func encodeRune8(dst []byte, r rune, _ bool) int { return EncodeRune8(dst, r) }

// Transcode8To16 converts a terminated 8-bit buffer into 16-bit units,
// byte-reversing each written unit when swap is set. It returns the units
// written to dst, the units consumed from src (the terminator excluded), and
// the reason the conversion stopped.
func Transcode8To16(dst []uint16, src []byte, swap bool) (nDst, nSrc int, stop Stop) {
	return transcode(dst, src, swap, decodeRune8, EncodeRune16)
}

// Transcode8To32 converts a terminated 8-bit buffer into 32-bit units,
// byte-reversing each written unit when swap is set.
func Transcode8To32(dst []uint32, src []byte, swap bool) (nDst, nSrc int, stop Stop) {
	return transcode(dst, src, swap, decodeRune8, EncodeRune32)
}

// Transcode16To8 converts a terminated 16-bit buffer into 8-bit units,
// byte-reversing each source unit when swap is set.
func Transcode16To8(dst []byte, src []uint16, swap bool) (nDst, nSrc int, stop Stop) {
	return transcode(dst, src, swap, DecodeRune16, encodeRune8)
}

// Transcode16To32 converts a terminated 16-bit buffer into 32-bit units. The
// swap flag applies to both sides: source units are byte-reversed before
// decoding and destination units after encoding.
func Transcode16To32(dst []uint32, src []uint16, swap bool) (nDst, nSrc int, stop Stop) {
	return transcode(dst, src, swap, DecodeRune16, EncodeRune32)
}

// Transcode32To8 converts a terminated 32-bit buffer into 8-bit units,
// byte-reversing each source unit when swap is set.
func Transcode32To8(dst []byte, src []uint32, swap bool) (nDst, nSrc int, stop Stop) {
	return transcode(dst, src, swap, DecodeRune32, encodeRune8)
}

// Transcode32To16 converts a terminated 32-bit buffer into 16-bit units. The
// swap flag applies to both sides: source units are byte-reversed before
// decoding and destination units after encoding.
func Transcode32To16(dst []uint16, src []uint32, swap bool) (nDst, nSrc int, stop Stop) {
	return transcode(dst, src, swap, DecodeRune32, EncodeRune16)
}
