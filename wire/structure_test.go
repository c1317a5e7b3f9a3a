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

type point struct {
	X, Y int32
}

func pointFields(p *point) []StructureField {
	return []StructureField{
		{
			Write: func(w *Writer) error { return WriteInt32(w, p.X) },
			Read:  func(r *Reader) error { v, err := ReadInt32(r); p.X = v; return err },
			Size:  func() int { return SizeInt32(p.X) },
		},
		{
			Write: func(w *Writer) error { return WriteInt32(w, p.Y) },
			Read:  func(r *Reader) error { v, err := ReadInt32(r); p.Y = v; return err },
			Size:  func() int { return SizeInt32(p.Y) },
		},
	}
}

func TestStructure_RoundTrip(t *testing.T) {
	p := point{X: 3, Y: -4}
	w, buf := newTestWriter()
	require.NoError(t, WriteStructure(w, pointFields(&p)))
	require.NoError(t, w.Flush())
	assert.Equal(t, byte(Structure), (*buf)[0])

	var got point
	require.NoError(t, ReadStructure(newTestReader(*buf), pointFields(&got)))
	assert.Equal(t, p, got)
}

func TestStructure_MemberCountMismatch(t *testing.T) {
	p := point{X: 1, Y: 2}
	w, buf := newTestWriter()
	require.NoError(t, WriteStructure(w, pointFields(&p)))
	require.NoError(t, w.Flush())

	var got point
	err := ReadStructure(newTestReader(*buf), pointFields(&got)[:1])
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, InvalidMemberCount, e.Kind)
}

type celsius float64

func TestValueWrapper_Transparent(t *testing.T) {
	writeCelsius := func(w *Writer, c celsius) error { return WriteFloat64(w, float64(c)) }
	readCelsius := func(r *Reader) (celsius, error) { v, err := ReadFloat64(r); return celsius(v), err }

	w, buf := newTestWriter()
	require.NoError(t, WriteValue(w, celsius(36.6), writeCelsius))
	require.NoError(t, w.Flush())
	assert.Equal(t, byte(F64), (*buf)[0])

	got, err := ReadValue(newTestReader(*buf), readCelsius)
	require.NoError(t, err)
	assert.Equal(t, celsius(36.6), got)
}
