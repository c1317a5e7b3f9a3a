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

func intVariantCases() []VariantCase {
	return []VariantCase{
		{
			Write: func(w *Writer, v any) error { return WriteInt32(w, v.(int32)) },
			Read:  func(r *Reader) (any, error) { return ReadInt32(r) },
			Size:  func(v any) int { return SizeInt32(v.(int32)) },
		},
		{
			Write: func(w *Writer, v any) error { return WriteString(w, v.(string)) },
			Read:  func(r *Reader) (any, error) { return ReadString(r) },
			Size:  func(v any) int { return SizeString(v.(string)) },
		},
	}
}

func TestVariant_SelectsCaseByIndex(t *testing.T) {
	cases := intVariantCases()
	v := Variant{Index: 1, Value: "chosen"}
	w, buf := newTestWriter()
	require.NoError(t, WriteVariant(w, v, cases))
	require.NoError(t, w.Flush())

	got, err := ReadVariant(newTestReader(*buf), cases)
	require.NoError(t, err)
	assert.Equal(t, int32(1), got.Index)
	assert.Equal(t, "chosen", got.Value)
}

func TestVariant_EmptyIsNilSentinel(t *testing.T) {
	cases := intVariantCases()
	v := Variant{Index: EmptyVariant}
	w, buf := newTestWriter()
	require.NoError(t, WriteVariant(w, v, cases))
	require.NoError(t, w.Flush())
	assert.Equal(t, byte(Nil), (*buf)[len(*buf)-1])

	got, err := ReadVariant(newTestReader(*buf), cases)
	require.NoError(t, err)
	assert.Equal(t, EmptyVariant, got.Index)
}

func TestVariant_OutOfRangeIndexRejected(t *testing.T) {
	cases := intVariantCases()
	v := Variant{Index: 5, Value: "oops"}
	w, _ := newTestWriter()
	err := WriteVariant(w, v, cases)
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, UnexpectedVariantType, e.Kind)
}
