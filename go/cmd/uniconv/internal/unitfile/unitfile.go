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

// Package unitfile loads and stores null-terminated unit buffers from disk.
//
// Units are kept in memory exactly as they appear in the file. A file whose
// byte order differs from the host's yields byte-reversed unit values; the
// swap result of Load reports that, and callers pass it through to the utf
// package, which interprets and produces reversed units natively. Store
// therefore writes units back verbatim, with no order conversion of its own.
package unitfile

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/NeilJiang-tech/uniconv/go/utf"
)

// Order names a unit byte order requested on the command line.
type Order int8

const (
	// OrderHost stores the most significant byte wherever the host does.
	OrderHost Order = iota
	// OrderLittle stores the least significant byte first.
	OrderLittle
	// OrderBig stores the most significant byte first.
	OrderBig
	// OrderAuto detects the order from a leading byte order mark,
	// falling back to host order when no mark is present.
	OrderAuto
)

// hostOrder is the byte order units take in memory.
var hostOrder = func() Order {
	if binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001 {
		return OrderLittle
	}
	return OrderBig
}()

// ParseOrder converts a --byte-order flag value into an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "host", "native", "":
		return OrderHost, nil
	case "little", "le":
		return OrderLittle, nil
	case "big", "be":
		return OrderBig, nil
	case "auto":
		return OrderAuto, nil
	default:
		return OrderHost, fmt.Errorf("unknown byte order %q: expected host, little, big, or auto", s)
	}
}

func (o Order) String() string {
	switch o {
	case OrderHost:
		return "host"
	case OrderLittle:
		return "little"
	case OrderBig:
		return "big"
	case OrderAuto:
		return "auto"
	default:
		return "invalid"
	}
}

// Swap reports whether units in this order are byte-reversed relative to the
// host. OrderAuto resolves to host order; when loading a file, the detected
// mark takes precedence.
func (o Order) Swap() bool {
	switch o {
	case OrderLittle, OrderBig:
		return o != hostOrder
	default:
		return false
	}
}

// detectOrder resolves o against the leading bytes of a file. It returns the
// effective order and the number of byte-order-mark bytes to skip.
func detectOrder(o Order, data []byte, form utf.Form) (Order, int) {
	if o != OrderAuto {
		if o == OrderHost {
			return hostOrder, 0
		}
		return o, 0
	}

	switch form {
	case utf.Form16:
		switch {
		case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
			return OrderBig, 2
		case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
			return OrderLittle, 2
		}
	case utf.Form32:
		switch {
		case len(data) >= 4 && data[0] == 0x00 && data[1] == 0x00 && data[2] == 0xFE && data[3] == 0xFF:
			return OrderBig, 4
		case len(data) >= 4 && data[0] == 0xFF && data[1] == 0xFE && data[2] == 0x00 && data[3] == 0x00:
			return OrderLittle, 4
		}
	}
	return hostOrder, 0
}

// Load8 reads an 8-bit unit file. A missing trailing terminator is supplied.
func Load8(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(data) == 0 || data[len(data)-1] != 0 {
		data = append(data, 0)
	}
	return data, nil
}

// Load16 reads a 16-bit unit file in the requested order. The returned swap
// flag reports whether unit bytes are reversed relative to the host, and is
// meant to be passed to the utf package operations. A missing trailing
// terminator is supplied.
func Load16(path string, order Order) ([]uint16, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("loading %s: %w", path, err)
	}

	effective, skip := detectOrder(order, data, utf.Form16)
	data = data[skip:]
	if len(data)%2 != 0 {
		return nil, false, fmt.Errorf("loading %s: size %d is not a whole number of 16-bit units", path, len(data))
	}

	units := make([]uint16, 0, len(data)/2+1)
	for i := 0; i < len(data); i += 2 {
		units = append(units, binary.NativeEndian.Uint16(data[i:]))
	}
	if len(units) == 0 || units[len(units)-1] != 0 {
		units = append(units, 0)
	}
	return units, effective != hostOrder, nil
}

// Load32 reads a 32-bit unit file in the requested order. The returned swap
// flag reports whether unit bytes are reversed relative to the host. A
// missing trailing terminator is supplied.
func Load32(path string, order Order) ([]uint32, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("loading %s: %w", path, err)
	}

	effective, skip := detectOrder(order, data, utf.Form32)
	data = data[skip:]
	if len(data)%4 != 0 {
		return nil, false, fmt.Errorf("loading %s: size %d is not a whole number of 32-bit units", path, len(data))
	}

	units := make([]uint32, 0, len(data)/4+1)
	for i := 0; i < len(data); i += 4 {
		units = append(units, binary.NativeEndian.Uint32(data[i:]))
	}
	if len(units) == 0 || units[len(units)-1] != 0 {
		units = append(units, 0)
	}
	return units, effective != hostOrder, nil
}

// Store8 writes an 8-bit unit buffer.
func Store8(path string, units []byte) error {
	if err := os.WriteFile(path, units, 0o644); err != nil {
		return fmt.Errorf("storing %s: %w", path, err)
	}
	return nil
}

// Store16 writes a 16-bit unit buffer exactly as it sits in memory.
func Store16(path string, units []uint16) error {
	buf := make([]byte, 0, 2*len(units))
	for _, u := range units {
		buf = binary.NativeEndian.AppendUint16(buf, u)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("storing %s: %w", path, err)
	}
	return nil
}

// Store32 writes a 32-bit unit buffer exactly as it sits in memory.
func Store32(path string, units []uint32) error {
	buf := make([]byte, 0, 4*len(units))
	for _, u := range units {
		buf = binary.NativeEndian.AppendUint32(buf, u)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("storing %s: %w", path, err)
	}
	return nil
}
