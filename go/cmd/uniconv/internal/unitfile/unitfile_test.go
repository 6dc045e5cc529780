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

package unitfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeilJiang-tech/uniconv/go/utf"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParseOrder(t *testing.T) {
	testCases := []struct {
		in      string
		want    Order
		wantErr bool
	}{
		{in: "host", want: OrderHost},
		{in: "native", want: OrderHost},
		{in: "", want: OrderHost},
		{in: "little", want: OrderLittle},
		{in: "le", want: OrderLittle},
		{in: "big", want: OrderBig},
		{in: "be", want: OrderBig},
		{in: "auto", want: OrderAuto},
		{in: "middle", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			order, err := ParseOrder(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, order)
			assert.NotEqual(t, "invalid", order.String())
		})
	}
}

func TestOrderSwap(t *testing.T) {
	assert.False(t, OrderHost.Swap())
	assert.False(t, OrderAuto.Swap())

	// Exactly one of the two explicit orders differs from the host.
	assert.NotEqual(t, OrderLittle.Swap(), OrderBig.Swap())
	assert.Equal(t, hostOrder != OrderLittle, OrderLittle.Swap())
	assert.Equal(t, hostOrder != OrderBig, OrderBig.Swap())
}

func TestLoad8(t *testing.T) {
	path := writeFile(t, "plain.u8", []byte("abc"))
	units, err := Load8(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b', 'c', 0}, units)

	path = writeFile(t, "terminated.u8", []byte{'a', 0})
	units, err = Load8(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0}, units)

	path = writeFile(t, "empty.u8", nil)
	units, err = Load8(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, units)

	_, err = Load8(filepath.Join(t.TempDir(), "missing.u8"))
	require.ErrorContains(t, err, "missing.u8")
}

func TestLoad16(t *testing.T) {
	// Big-endian EURO SIGN with no terminator.
	path := writeFile(t, "euro.u16", []byte{0x20, 0xAC})
	units, swap, err := Load16(path, OrderBig)
	require.NoError(t, err)
	assert.Equal(t, OrderBig.Swap(), swap)
	require.Len(t, units, 2)
	assert.EqualValues(t, 0, units[1])

	r, size := utf.DecodeRune16(units, swap)
	assert.Equal(t, rune(0x20AC), r)
	assert.Equal(t, 1, size)

	// The same bytes read little-endian decode to a different scalar.
	units, swap, err = Load16(path, OrderLittle)
	require.NoError(t, err)
	r, _ = utf.DecodeRune16(units, swap)
	assert.Equal(t, rune(0xAC20), r)

	path = writeFile(t, "odd.u16", []byte{0x20, 0xAC, 0x00})
	_, _, err = Load16(path, OrderHost)
	require.ErrorContains(t, err, "not a whole number of 16-bit units")
}

func TestLoad16BOM(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want Order
	}{
		{name: "big", data: []byte{0xFE, 0xFF, 0x00, 0x24, 0x00, 0x00}, want: OrderBig},
		{name: "little", data: []byte{0xFF, 0xFE, 0x24, 0x00, 0x00, 0x00}, want: OrderLittle},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "bom.u16", tc.data)
			units, swap, err := Load16(path, OrderAuto)
			require.NoError(t, err)
			assert.Equal(t, tc.want != hostOrder, swap)
			require.Len(t, units, 2, "mark should not survive as a unit")

			r, _ := utf.DecodeRune16(units, swap)
			assert.Equal(t, '$', r)
		})
	}

	// No mark: auto falls back to host order.
	path := writeFile(t, "plain.u16", []byte{0x24, 0x24})
	units, swap, err := Load16(path, OrderAuto)
	require.NoError(t, err)
	assert.False(t, swap)
	require.Len(t, units, 2)
}

func TestLoad32BOM(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want Order
	}{
		{name: "big", data: []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x01, 0x03, 0x48}, want: OrderBig},
		{name: "little", data: []byte{0xFF, 0xFE, 0x00, 0x00, 0x48, 0x03, 0x01, 0x00}, want: OrderLittle},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "bom.u32", tc.data)
			units, swap, err := Load32(path, OrderAuto)
			require.NoError(t, err)
			assert.Equal(t, tc.want != hostOrder, swap)
			require.Len(t, units, 2, "mark should not survive as a unit")

			r, size := utf.DecodeRune32(units, swap)
			assert.Equal(t, rune(0x10348), r)
			assert.Equal(t, 1, size)
		})
	}

	path := writeFile(t, "short.u32", []byte{0x00, 0x00, 0xFE, 0xFF, 0x48})
	_, _, err := Load32(path, OrderAuto)
	require.ErrorContains(t, err, "not a whole number of 32-bit units")
}

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	units16 := []uint16{0x0024, 0x20AC, 0xD800, 0xDF48, 0x0000}
	path := filepath.Join(dir, "out.u16")
	require.NoError(t, Store16(path, units16))
	loaded16, swap, err := Load16(path, OrderHost)
	require.NoError(t, err)
	assert.False(t, swap)
	assert.Equal(t, units16, loaded16)

	units32 := []uint32{0x24, 0x10348, 0}
	path = filepath.Join(dir, "out.u32")
	require.NoError(t, Store32(path, units32))
	loaded32, swap, err := Load32(path, OrderHost)
	require.NoError(t, err)
	assert.False(t, swap)
	assert.Equal(t, units32, loaded32)

	units8 := []byte{0xE2, 0x82, 0xAC, 0x00}
	path = filepath.Join(dir, "out.u8")
	require.NoError(t, Store8(path, units8))
	loaded8, err := Load8(path)
	require.NoError(t, err)
	assert.Equal(t, units8, loaded8)
}
