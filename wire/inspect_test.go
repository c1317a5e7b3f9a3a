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

func TestInspect_ScalarsAndString(t *testing.T) {
	w, buf := newTestWriter()
	require.NoError(t, WriteInt32(w, -70000))
	require.NoError(t, WriteString(w, "hello"))
	require.NoError(t, w.Flush())

	r := newTestReader(*buf)
	n, err := Inspect(r)
	require.NoError(t, err)
	assert.Equal(t, KindScalar, n.Kind)
	assert.EqualValues(t, -70000, n.Scalar)

	n2, err := Inspect(r)
	require.NoError(t, err)
	assert.Equal(t, KindBytes, n2.Kind)
	assert.Equal(t, "hello", n2.Scalar)
}

func TestInspect_NestedArray(t *testing.T) {
	w, buf := newTestWriter()
	require.NoError(t, WriteSlice(w, []int32{1, 2, 3}, WriteInt32))
	require.NoError(t, w.Flush())

	r := newTestReader(*buf)
	n, err := Inspect(r)
	require.NoError(t, err)
	require.Equal(t, KindArray, n.Kind)
	require.Len(t, n.Children, 3)
	assert.EqualValues(t, 1, n.Children[0].Scalar)
	assert.EqualValues(t, 3, n.Children[2].Scalar)
}

func TestInspect_TableEntriesCarryIDAndSize(t *testing.T) {
	var name string
	fields := []TableField{
		{
			ID:      1,
			State:   Active,
			Present: func() bool { return name != "" },
			Size:    func() int { return SizeString(name) },
			Write:   func(w *Writer) error { return WriteString(w, name) },
			Read:    func(r *Reader) error { v, err := ReadString(r); name = v; return err },
			Clear:   func() { name = "" },
		},
	}
	name = "acct-1"

	w, buf := newTestWriter()
	require.NoError(t, WriteTable(w, 0xABCD, fields))
	require.NoError(t, w.Flush())

	r := newTestReader(*buf)
	n, err := Inspect(r)
	require.NoError(t, err)
	require.Equal(t, KindTable, n.Kind)
	assert.EqualValues(t, uint64(0xABCD), n.Meta["namespaceHash"])
	require.Len(t, n.Children, 1)
	entry := n.Children[0]
	assert.EqualValues(t, 1, entry.Meta["id"])
	assert.EqualValues(t, SizeString("acct-1"), entry.Meta["payloadSize"])
	require.Len(t, entry.Children, 1)
	assert.Equal(t, "acct-1", entry.Children[0].Scalar)
}

func TestInspect_RejectsReservedTag(t *testing.T) {
	r := newTestReader([]byte{0x90})
	_, err := Inspect(r)
	require.Error(t, err)
}
