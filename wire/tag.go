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

// EncodingByte is the single-byte discriminator that begins every encoded
// value. The numeric values below are contractual: a decoder for this
// format must accept exactly these bytes at exactly these meanings.
//
// originally modeled on the TType tag byte of protocol/thrift,
// generalized from thrift's 12-member alphabet to this format's
// fix-int/tagged-container alphabet.
type EncodingByte byte

const (
	// PosFixIntMin..PosFixIntMax: value is embedded in the tag byte itself.
	PosFixIntMin EncodingByte = 0x00
	PosFixIntMax EncodingByte = 0x7F

	// NegFixIntMin..NegFixIntMax: two's-complement embedded value, -64..-1.
	NegFixIntMin EncodingByte = 0xC0
	NegFixIntMax EncodingByte = 0xFF

	// False/True overload the two smallest positive fix-ints.
	False EncodingByte = 0x00
	True  EncodingByte = 0x01

	U8  EncodingByte = 0x80
	U16 EncodingByte = 0x81
	U32 EncodingByte = 0x82
	U64 EncodingByte = 0x83
	I8  EncodingByte = 0x84
	I16 EncodingByte = 0x85
	I32 EncodingByte = 0x86
	I64 EncodingByte = 0x87
	F32 EncodingByte = 0x88
	F64 EncodingByte = 0x89

	// reservedMin..reservedMax: must never be produced, must be rejected on read.
	reservedMin EncodingByte = 0x8A
	reservedMax EncodingByte = 0xB4

	Table     EncodingByte = 0xB5
	Error     EncodingByte = 0xB6
	Handle    EncodingByte = 0xB7
	Variant   EncodingByte = 0xB8
	Structure EncodingByte = 0xB9
	Array     EncodingByte = 0xBA
	Map       EncodingByte = 0xBB
	Binary    EncodingByte = 0xBC
	String    EncodingByte = 0xBD
	Nil       EncodingByte = 0xBE
	Extension EncodingByte = 0xBF // not produced by this package; reserved for future use
)

// IsPosFixInt reports whether b is a positive fix-int tag (0x00..0x7F).
func (b EncodingByte) IsPosFixInt() bool { return b <= PosFixIntMax }

// IsNegFixInt reports whether b is a negative fix-int tag (0xC0..0xFF).
func (b EncodingByte) IsNegFixInt() bool { return b >= NegFixIntMin }

// IsFixInt reports whether b is any fix-int tag.
func (b EncodingByte) IsFixInt() bool { return b.IsPosFixInt() || b.IsNegFixInt() }

// IsReserved reports whether b falls in the reserved range that must never
// be produced and must be rejected on read.
func (b EncodingByte) IsReserved() bool { return b >= reservedMin && b <= reservedMax }

// PosFixIntValue returns the embedded value of a positive fix-int tag.
func (b EncodingByte) PosFixIntValue() uint8 { return uint8(b) }

// NegFixIntValue returns the embedded value of a negative fix-int tag as
// its two's-complement int8.
func (b EncodingByte) NegFixIntValue() int8 { return int8(b) }

func (b EncodingByte) String() string {
	switch {
	case b.IsPosFixInt():
		return "PosFixInt"
	case b.IsNegFixInt():
		return "NegFixInt"
	case b.IsReserved():
		return "Reserved"
	}
	switch b {
	case U8:
		return "U8"
	case U16:
		return "U16"
	case U32:
		return "U32"
	case U64:
		return "U64"
	case I8:
		return "I8"
	case I16:
		return "I16"
	case I32:
		return "I32"
	case I64:
		return "I64"
	case F32:
		return "F32"
	case F64:
		return "F64"
	case Table:
		return "Table"
	case Error:
		return "Error"
	case Handle:
		return "Handle"
	case Variant:
		return "Variant"
	case Structure:
		return "Structure"
	case Array:
		return "Array"
	case Map:
		return "Map"
	case Binary:
		return "Binary"
	case String:
		return "String"
	case Nil:
		return "Nil"
	case Extension:
		return "Extension"
	default:
		return "Unknown"
	}
}

// payloadWidth returns the fixed payload width in bytes for tags whose
// payload size does not depend on the value (everything except fix-ints
// and every length-prefixed container). It returns -1 for tags whose size
// must be computed some other way.
func payloadWidth(b EncodingByte) int {
	switch b {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	default:
		return -1
	}
}
