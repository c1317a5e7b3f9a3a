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

func TestResult_Success(t *testing.T) {
	r := Success[int32, string]("ok")
	w, buf := newTestWriter()
	require.NoError(t, WriteResult(w, r, WriteInt32, WriteString))
	require.NoError(t, w.Flush())
	assert.NotEqual(t, byte(Error), (*buf)[0])

	got, err := ReadResult(newTestReader(*buf), ReadInt32, ReadString)
	require.NoError(t, err)
	assert.False(t, got.Failed)
	assert.Equal(t, "ok", got.Value)
}

func TestResult_Failure(t *testing.T) {
	r := Failure[int32, string](int32(13))
	w, buf := newTestWriter()
	require.NoError(t, WriteResult(w, r, WriteInt32, WriteString))
	require.NoError(t, w.Flush())
	assert.Equal(t, byte(Error), (*buf)[0])

	got, err := ReadResult(newTestReader(*buf), ReadInt32, ReadString)
	require.NoError(t, err)
	assert.True(t, got.Failed)
	assert.Equal(t, int32(13), got.Err)
}
