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

package command

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeilJiang-tech/uniconv/go/cmd/uniconv/internal/unitfile"
	"github.com/NeilJiang-tech/uniconv/go/test/utils"
	"github.com/NeilJiang-tech/uniconv/go/utf"
)

// $, ¢, €, 𐍈, terminated.
var samplePlane1 = []byte{0x24, 0xC2, 0xA2, 0xE2, 0x82, 0xAC, 0xF0, 0x90, 0x8D, 0x88, 0x00}

func TestRunConvertDirections(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.u8")
	require.NoError(t, os.WriteFile(in, samplePlane1, 0o644))

	out16 := filepath.Join(dir, "out.u16")
	res, err := runConvert(utf.Form8, utf.Form16, unitfile.OrderHost, true, in, out16)
	require.NoError(t, err)
	assert.Equal(t, utf.StopTerm, res.stop)
	assert.Equal(t, 10, res.read)
	assert.Equal(t, 5, res.wrote)

	units16, swap, err := unitfile.Load16(out16, unitfile.OrderHost)
	require.NoError(t, err)
	assert.False(t, swap)
	assert.Equal(t, []uint16{0x0024, 0x00A2, 0x20AC, 0xD800, 0xDF48, 0x0000}, units16)

	out32 := filepath.Join(dir, "out.u32")
	res, err = runConvert(utf.Form16, utf.Form32, unitfile.OrderHost, true, out16, out32)
	require.NoError(t, err)
	assert.Equal(t, 5, res.read)
	assert.Equal(t, 4, res.wrote)

	units32, _, err := unitfile.Load32(out32, unitfile.OrderHost)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x24, 0xA2, 0x20AC, 0x10348, 0}, units32)

	back8 := filepath.Join(dir, "back.u8")
	res, err = runConvert(utf.Form32, utf.Form8, unitfile.OrderHost, true, out32, back8)
	require.NoError(t, err)
	assert.Equal(t, 4, res.read)
	assert.Equal(t, 10, res.wrote)

	units8, err := unitfile.Load8(back8)
	require.NoError(t, err)
	assert.Equal(t, samplePlane1, units8)

	// The remaining three directions retrace the loop the other way.
	direct32 := filepath.Join(dir, "direct.u32")
	res, err = runConvert(utf.Form8, utf.Form32, unitfile.OrderHost, true, in, direct32)
	require.NoError(t, err)
	assert.Equal(t, 10, res.read)
	assert.Equal(t, 4, res.wrote)

	back16 := filepath.Join(dir, "back.u16")
	res, err = runConvert(utf.Form32, utf.Form16, unitfile.OrderHost, true, direct32, back16)
	require.NoError(t, err)
	assert.Equal(t, 4, res.read)
	assert.Equal(t, 5, res.wrote)

	final8 := filepath.Join(dir, "final.u8")
	res, err = runConvert(utf.Form16, utf.Form8, unitfile.OrderHost, true, back16, final8)
	require.NoError(t, err)
	assert.Equal(t, 5, res.read)
	assert.Equal(t, 10, res.wrote)

	units8, err = unitfile.Load8(final8)
	require.NoError(t, err)
	assert.Equal(t, samplePlane1, units8)
}

func TestRunConvertBigEndian(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.u8")
	require.NoError(t, os.WriteFile(in, samplePlane1, 0o644))

	// The output file holds big-endian units regardless of the host.
	out := filepath.Join(dir, "be.u16")
	_, err := runConvert(utf.Form8, utf.Form16, unitfile.OrderBig, true, in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x00, 0x24, 0x00, 0xA2, 0x20, 0xAC, 0xD8, 0x00, 0xDF, 0x48, 0x00, 0x00,
	}, data)

	back := filepath.Join(dir, "back.u8")
	res, err := runConvert(utf.Form16, utf.Form8, unitfile.OrderBig, true, out, back)
	require.NoError(t, err)
	assert.Equal(t, 5, res.read)

	units8, err := unitfile.Load8(back)
	require.NoError(t, err)
	assert.Equal(t, samplePlane1, units8)
}

func TestRunConvertDetectsBOM(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bom.u16")
	require.NoError(t, os.WriteFile(in, []byte{0xFE, 0xFF, 0x20, 0xAC, 0x00, 0x00}, 0o644))

	out := filepath.Join(dir, "out.u8")
	res, err := runConvert(utf.Form16, utf.Form8, unitfile.OrderAuto, true, in, out)
	require.NoError(t, err)
	assert.Equal(t, 1, res.read)
	assert.Equal(t, 3, res.wrote)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE2, 0x82, 0xAC, 0x00}, data)
}

func TestRunConvertCheck(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "overlong.u8")
	require.NoError(t, os.WriteFile(in, []byte{0xC0, 0xAE, 0x00}, 0o644))
	out := filepath.Join(dir, "out.u16")

	_, err := runConvert(utf.Form8, utf.Form16, unitfile.OrderHost, true, in, out)
	require.ErrorContains(t, err, "ill-formed")
	require.ErrorContains(t, err, "overlong")

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "output should not be written for rejected input")

	// Without the check, the sequence converts to a replacement scalar.
	res, err := runConvert(utf.Form8, utf.Form16, unitfile.OrderHost, false, in, out)
	require.NoError(t, err)
	assert.Equal(t, utf.StopTerm, res.stop)
	assert.Equal(t, 2, res.read)
	assert.Equal(t, 1, res.wrote)

	units, _, err := unitfile.Load16(out, unitfile.OrderHost)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0xFFFD, 0x0000}, units)
}

func TestRunConvertDestinationFull(t *testing.T) {
	// An unpaired surrogate expands to a three-byte replacement while the
	// advisory estimate reserved four bytes for a pair, so the scalar after
	// it no longer fits.
	dir := t.TempDir()
	in := filepath.Join(dir, "lone.u16")
	require.NoError(t, unitfile.Store16(in, []uint16{0xD800, 0x20AC, 0x0000}))

	out := filepath.Join(dir, "lone.u8")
	res, err := runConvert(utf.Form16, utf.Form8, unitfile.OrderHost, false, in, out)
	require.NoError(t, err)
	assert.Equal(t, utf.StopDst, res.stop)
	assert.Equal(t, 1, res.read)
	assert.Equal(t, 3, res.wrote)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xEF, 0xBF, 0xBD, 0x00}, data)
}

func TestConvertCommand(t *testing.T) {
	ctx := utils.LeakCheckContext(t)

	dir := t.TempDir()
	in := filepath.Join(dir, "in.u8")
	require.NoError(t, os.WriteFile(in, samplePlane1, 0o644))
	out := filepath.Join(dir, "out.u32")

	var output bytes.Buffer
	Root.SetOut(&output)
	Root.SetErr(&output)

	// Raise glog verbosity so the per-conversion diagnostic line runs too.
	require.NoError(t, flag.Set("v", "2"))
	defer func() { require.NoError(t, flag.Set("v", "0")) }()

	Root.SetArgs([]string{"convert", "--from", "8", "--to", "32", in, out})
	require.NoError(t, Root.ExecuteContext(ctx))
	assert.Contains(t, output.String(), "10 utf8 units in, 4 utf32 units out (terminator)")

	Root.SetArgs([]string{"convert", "--from", "8", "--to", "8", in, out})
	require.ErrorContains(t, Root.ExecuteContext(ctx), "nothing to convert")
}
