package utf

// Size estimation walks leading units only: no assembly, no validity checks.
// On well-formed input each estimate equals the unit count the matching
// Transcode call produces; on malformed input it may over- or undercount the
// RuneError substitutions and is advisory. Every walk stops at the first
// zero leading unit or the end of the slice.

// Size8In16 returns the 16-bit units needed to hold the scalars of the
// terminated 8-bit buffer src. Sequences of 4 units (supplementary plane)
// become a surrogate pair and cost 2; everything else costs 1.
func Size8In16(src []byte) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; {
		t := int(utf8Trailing[src[i]])
		if t == 3 {
			n += 2
		} else {
			n++
		}
		i += 1 + t
	}
	return n
}

// Size8In32 returns the 32-bit units needed to hold the scalars of the
// terminated 8-bit buffer src: one per sequence.
func Size8In32(src []byte) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; {
		n++
		i += 1 + int(utf8Trailing[src[i]])
	}
	return n
}

// Size16In8 returns the 8-bit units needed to hold the scalars of the
// terminated 16-bit buffer src. A high surrogate implies a pair, which
// always carries a 4-unit scalar; other units cost their threshold length.
func Size16In8(src []uint16, swap bool) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; i++ {
		u := swap16(src[i], swap)
		if surrHighMin <= u && u <= surrHighMax {
			n += 4
			i++
		} else {
			n += runeLen8(uint32(u))
		}
	}
	return n
}

// Size16In32 returns the 32-bit units needed to hold the scalars of the
// terminated 16-bit buffer src: one per scalar, with surrogate pairs
// collapsing into one.
func Size16In32(src []uint16, swap bool) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; i++ {
		u := swap16(src[i], swap)
		if surrHighMin <= u && u <= surrHighMax {
			i++
		}
		n++
	}
	return n
}

// Size32In8 returns the 8-bit units needed to hold the scalars of the
// terminated 32-bit buffer src, by threshold length of each unit value.
func Size32In8(src []uint32, swap bool) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; i++ {
		n += runeLen8(swap32(src[i], swap))
	}
	return n
}

// Size32In16 returns the 16-bit units needed to hold the scalars of the
// terminated 32-bit buffer src. Supplementary-plane values cost a pair.
func Size32In16(src []uint32, swap bool) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; i++ {
		if swap32(src[i], swap) >= surrSelf {
			n += 2
		} else {
			n++
		}
	}
	return n
}
