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
)

func TestEncodingByte_FixIntClassification(t *testing.T) {
	assert.True(t, EncodingByte(0x00).IsPosFixInt())
	assert.True(t, EncodingByte(0x7F).IsPosFixInt())
	assert.False(t, EncodingByte(0x80).IsPosFixInt())

	assert.True(t, EncodingByte(0xC0).IsNegFixInt())
	assert.True(t, EncodingByte(0xFF).IsNegFixInt())
	assert.False(t, EncodingByte(0xBF).IsNegFixInt())

	assert.Equal(t, int8(-1), EncodingByte(0xFF).NegFixIntValue())
	assert.Equal(t, int8(-64), EncodingByte(0xC0).NegFixIntValue())
}

func TestEncodingByte_ReservedRange(t *testing.T) {
	assert.True(t, EncodingByte(0x8A).IsReserved())
	assert.True(t, EncodingByte(0xB4).IsReserved())
	assert.False(t, EncodingByte(0xB5).IsReserved())
	assert.False(t, EncodingByte(0x89).IsReserved())
}

func TestEncodingByte_String(t *testing.T) {
	assert.Equal(t, "Table", Table.String())
	assert.Equal(t, "PosFixInt", EncodingByte(0x05).String())
	assert.Equal(t, "NegFixInt", EncodingByte(0xFE).String())
	assert.Equal(t, "Reserved", EncodingByte(0x90).String())
}

func TestPayloadWidth(t *testing.T) {
	assert.Equal(t, 1, payloadWidth(U8))
	assert.Equal(t, 2, payloadWidth(I16))
	assert.Equal(t, 4, payloadWidth(F32))
	assert.Equal(t, 8, payloadWidth(U64))
	assert.Equal(t, -1, payloadWidth(Table))
}
