//go:build gofuzz
// +build gofuzz

/*
Copyright 2024 The Uniconv Authors.
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
	fuzz "github.com/AdaLogics/go-fuzz-headers"
)

// FuzzTranscode feeds arbitrary unit buffers through validation, size
// estimation and both conversion directions of one source form, and panics
// when a well-formed buffer transcodes to a different unit count than the
// estimator predicted.
func FuzzTranscode(data []byte) int {
	f := fuzz.NewConsumer(data)
	form, err := f.GetInt()
	if err != nil {
		return 0
	}
	swap, err := f.GetBool()
	if err != nil {
		return 0
	}
	raw, err := f.GetBytes()
	if err != nil {
		return 0
	}
	switch Form(form % 3) {
	case Form8:
		fuzz8(raw, swap)
	case Form16:
		fuzz16(fuzzUnits16(raw), swap)
	case Form32:
		fuzz32(fuzzUnits32(raw), swap)
	}
	return 1
}

func fuzz8(src []byte, swap bool) {
	ok := Validate8(src) == WellFormed
	d16 := make([]uint16, len(src)+1)
	d32 := make([]uint32, len(src)+1)
	n16, _, _ := Transcode8To16(d16, src, swap)
	n32, _, _ := Transcode8To32(d32, src, swap)
	if ok && (n16 != Size8In16(src) || n32 != Size8In32(src)) {
		panic("estimate diverged from transcode for well-formed 8-bit input")
	}
}

func fuzz16(src []uint16, swap bool) {
	ok := Validate16(src, swap) == WellFormed
	d8 := make([]byte, 3*len(src)+1)
	d32 := make([]uint32, len(src)+1)
	n8, _, _ := Transcode16To8(d8, src, swap)
	n32, _, _ := Transcode16To32(d32, src, swap)
	if ok && (n8 != Size16In8(src, swap) || n32 != Size16In32(src, swap)) {
		panic("estimate diverged from transcode for well-formed 16-bit input")
	}
}

func fuzz32(src []uint32, swap bool) {
	ok := Validate32(src, swap) == WellFormed
	d8 := make([]byte, 4*len(src)+1)
	d16 := make([]uint16, 2*len(src)+1)
	n8, _, _ := Transcode32To8(d8, src, swap)
	n16, _, _ := Transcode32To16(d16, src, swap)
	if ok && (n8 != Size32In8(src, swap) || n16 != Size32In16(src, swap)) {
		panic("estimate diverged from transcode for well-formed 32-bit input")
	}
}

func fuzzUnits16(b []byte) []uint16 {
	u := make([]uint16, len(b)/2)
	for i := range u {
		u[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return u
}

func fuzzUnits32(b []byte) []uint32 {
	u := make([]uint32, len(b)/4)
	for i := range u {
		u[i] = uint32(b[4*i]) | uint32(b[4*i+1])<<8 | uint32(b[4*i+2])<<16 | uint32(b[4*i+3])<<24
	}
	return u
}
