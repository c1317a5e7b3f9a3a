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

	"github.com/wirefmt/wirefmt/iobuf"
)

func TestSerializerDeserializer_RoundTrip(t *testing.T) {
	var buf []byte
	ser := NewSerializer[string](iobuf.NewBytesWriter(&buf), nil, SizeString, WriteString)

	assert.Equal(t, SizeString("hello"), ser.Size("hello"))
	status := ser.Write("hello")
	require.True(t, status.IsOk())
	require.NoError(t, ser.Flush())

	de := NewDeserializer[string](iobuf.NewBytesReader(buf), nil, ReadString)
	got := de.Read()
	require.True(t, got.IsOk())
	v, err := got.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestDeserializer_PropagatesFailureStatus(t *testing.T) {
	de := NewDeserializer[string](iobuf.NewBytesReader([]byte{byte(Table)}), nil, ReadString)
	got := de.Read()
	assert.False(t, got.IsOk())
	_, err := got.Unwrap()
	require.Error(t, err)
}
