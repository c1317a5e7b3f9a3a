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

package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wirefmt/wirefmt/iobuf"
)

func TestWriter_RejectsOverBudgetMalloc(t *testing.T) {
	var out []byte
	rw := NewWriter(iobuf.NewBytesWriter(&out), 4)

	buf, err := rw.Malloc(4)
	require.NoError(t, err)
	assert.Len(t, buf, 4)

	_, err = rw.Malloc(1)
	require.Error(t, err)
}

func TestWriter_PadFillsRemainder(t *testing.T) {
	var out []byte
	rw := NewWriter(iobuf.NewBytesWriter(&out), 8)

	buf, err := rw.Malloc(3)
	require.NoError(t, err)
	copy(buf, []byte{1, 2, 3})

	require.NoError(t, rw.Pad())
	assert.Equal(t, 0, rw.Remaining())
	require.NoError(t, rw.Flush())
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0}, out)
}

func TestReader_RejectsOverBudgetRead(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	rr := NewReader(iobuf.NewBytesReader(data), 4)

	buf, err := rr.Next(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)

	_, err = rr.Next(1)
	require.Error(t, err)
}

func TestReader_DrainSkipsUnreadRemainder(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	underlying := iobuf.NewBytesReader(data)
	rr := NewReader(underlying, 5)

	_, err := rr.Next(2)
	require.NoError(t, err)
	require.NoError(t, rr.Drain())
	assert.Equal(t, 0, rr.Remaining())

	rest, err := underlying.Next(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{6, 7, 8}, rest)
}
