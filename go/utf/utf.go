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

// Package utf converts null-terminated buffers between the three Unicode
// serialization forms (8-bit variable width, 16-bit with surrogate pairs,
// 32-bit fixed width) and validates them.
//
// Buffers are slices of encoding units ([]byte, []uint16, []uint32) whose
// payload ends at the first zero unit. Every operation also stops at the end
// of the slice, so a missing terminator never reads out of bounds. Operations
// on 16- and 32-bit units take a swap flag that byte-reverses each unit on
// the way in (decoding) or out (encoding), letting callers work with buffers
// in either byte order without rewriting them first.
//
// All functions are pure. They allocate nothing and are safe for
// unsynchronized concurrent use.
package utf

import (
	"fmt"
	"strings"
)

const (
	// RuneError is the replacement scalar substituted for input that cannot
	// be decoded.
	RuneError = '�'

	// MaxRune is the highest scalar value Unicode assigns.
	MaxRune = '\U0010FFFF'
)

// The surrogate range encodes nothing by itself. In the 16-bit form a high
// unit followed by a low unit carries one supplementary scalar; everywhere
// else these values are invalid.
const (
	surrHighMin = 0xD800
	surrHighMax = 0xDBFF
	surrLowMin  = 0xDC00
	surrLowMax  = 0xDFFF

	// Scalars at or above surrSelf need a surrogate pair in the 16-bit form.
	surrSelf = 0x10000
)

// ValidRune reports whether r is a Unicode scalar value: within range and
// outside the surrogate block.
func ValidRune(r rune) bool {
	return uint32(r) <= MaxRune && (r < surrHighMin || surrLowMax < r)
}

// Unit is satisfied by the encoding unit width of each serialization form.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Len returns the number of units preceding the first zero unit in src, or
// len(src) when src holds no terminator. The count is raw units, not
// scalars: a supplementary-plane scalar contributes 4 to an 8-bit length and
// 2 to a 16-bit one. Byte order cannot move a zero unit, so there is no swap
// flag.
func Len[U Unit](src []U) int {
	for i, u := range src {
		if u == 0 {
			return i
		}
	}
	return len(src)
}

// Form identifies one of the three serialization forms.
type Form uint8

const (
	Form8 Form = iota
	Form16
	Form32
)

// ParseForm maps a form name to its Form value. Both the bare unit width
// ("16") and the conventional spelling ("utf16", "utf-16") are accepted.
func ParseForm(s string) (Form, error) {
	switch strings.ToLower(s) {
	case "8", "utf8", "utf-8":
		return Form8, nil
	case "16", "utf16", "utf-16":
		return Form16, nil
	case "32", "utf32", "utf-32":
		return Form32, nil
	}
	return 0, fmt.Errorf("unknown serialization form %q", s)
}

func (f Form) String() string {
	switch f {
	case Form8:
		return "utf8"
	case Form16:
		return "utf16"
	case Form32:
		return "utf32"
	}
	return "invalid"
}

// UnitBytes returns the width of one encoding unit in bytes.
func (f Form) UnitBytes() int {
	switch f {
	case Form16:
		return 2
	case Form32:
		return 4
	}
	return 1
}
