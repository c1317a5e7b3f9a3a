/*
 * Copyright 2026 wirefmt Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegralSlice_RoundTrip(t *testing.T) {
	v := []int32{1, -2, 300, 1 << 20}
	w, buf := newTestWriter()
	require.NoError(t, WriteIntegralSlice(w, v))
	require.NoError(t, w.Flush())
	assert.Equal(t, byte(Binary), (*buf)[0])
	assert.Equal(t, SizeIntegralSlice(v), len(*buf))

	got, err := ReadIntegralSlice[int32](newTestReader(*buf))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestIntegralArray_LengthMismatchFails(t *testing.T) {
	w, buf := newTestWriter()
	require.NoError(t, WriteIntegralSlice(w, []uint16{1, 2, 3}))
	require.NoError(t, w.Flush())

	out := make([]uint16, 2)
	err := ReadIntegralArray(newTestReader(*buf), out)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, InvalidContainerLength, e.Kind)
}

func TestSlice_NonIntegralElements(t *testing.T) {
	v := []string{"a", "bb", "ccc"}
	w, buf := newTestWriter()
	require.NoError(t, WriteSlice(w, v, WriteString))
	require.NoError(t, w.Flush())
	assert.Equal(t, byte(Array), (*buf)[0])

	got, err := ReadSlice(newTestReader(*buf), ReadString)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestString_RoundTrip(t *testing.T) {
	v := "hello, wire format"
	w, buf := newTestWriter()
	require.NoError(t, WriteString(w, v))
	require.NoError(t, w.Flush())
	assert.Equal(t, SizeString(v), len(*buf))

	got, err := ReadString(newTestReader(*buf))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestValidateUTF8(t *testing.T) {
	require.NoError(t, ValidateUTF8("héllo 中文"))
	require.Error(t, ValidateUTF8(string([]byte{0xff, 0xfe})))
}

func TestUTF16_RoundTrip(t *testing.T) {
	v := []uint16{'h', 'i', 0x4e2d}
	w, buf := newTestWriter()
	require.NoError(t, WriteUTF16(w, v))
	require.NoError(t, w.Flush())
	assert.Equal(t, byte(String), (*buf)[0])

	got, err := ReadUTF16(newTestReader(*buf))
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestMap_RoundTrip(t *testing.T) {
	m := map[string]int32{"a": 1, "b": 2, "c": 3}
	w, buf := newTestWriter()
	require.NoError(t, WriteMap(w, m, WriteString, WriteInt32))
	require.NoError(t, w.Flush())
	assert.Equal(t, byte(Map), (*buf)[0])

	got, err := ReadMap(newTestReader(*buf), ReadString, ReadInt32)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestMapSorted_DeterministicEncoding(t *testing.T) {
	m := map[string]int32{"z": 1, "a": 2, "m": 3}
	less := func(a, b string) bool { return a < b }

	w1, buf1 := newTestWriter()
	require.NoError(t, WriteMapSorted(w1, m, WriteString, WriteInt32, less))
	require.NoError(t, w1.Flush())

	w2, buf2 := newTestWriter()
	require.NoError(t, WriteMapSorted(w2, m, WriteString, WriteInt32, less))
	require.NoError(t, w2.Flush())

	assert.Equal(t, *buf1, *buf2)

	got, err := ReadMap(newTestReader(*buf1), ReadString, ReadInt32)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}
