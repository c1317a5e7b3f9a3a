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

import "math"

// WriteBool writes v as the overloaded fix-int tags 0x00/0x01.
func WriteBool(w *Writer, v bool) error {
	if v {
		return w.writeByte(byte(True))
	}
	return w.writeByte(byte(False))
}

// ReadBool reads a bool. By design, a bool position accepts
// only the exact tags False/True, never any other fix-int — overloading
// "integer or bool" at the same wire position is ambiguous by
// construction and this package never does it.
func ReadBool(r *Reader) (bool, error) {
	b, err := r.readByte()
	if err != nil {
		return false, err
	}
	switch EncodingByte(b) {
	case False:
		return false, nil
	case True:
		return true, nil
	default:
		return false, NewError(UnexpectedEncodingType, "expected bool tag 0x00/0x01")
	}
}

// SizeBool returns the encoded size of a bool: always 1.
func SizeBool(bool) int { return 1 }

// --- unsigned integers ---

func WriteUint8(w *Writer, v uint8) error  { return writeUnsignedTagged(w, uint64(v)) }
func WriteUint16(w *Writer, v uint16) error { return writeUnsignedTagged(w, uint64(v)) }
func WriteUint32(w *Writer, v uint32) error { return writeUnsignedTagged(w, uint64(v)) }
func WriteUint64(w *Writer, v uint64) error { return writeUnsignedTagged(w, v) }

func ReadUint8(r *Reader) (uint8, error) {
	v, err := readUnsignedTagged(r, 1)
	return uint8(v), err
}

func ReadUint16(r *Reader) (uint16, error) {
	v, err := readUnsignedTagged(r, 2)
	return uint16(v), err
}

func ReadUint32(r *Reader) (uint32, error) {
	v, err := readUnsignedTagged(r, 4)
	return uint32(v), err
}

func ReadUint64(r *Reader) (uint64, error) {
	return readUnsignedTagged(r, 8)
}

func SizeUint8(v uint8) int   { return 1 + unsignedWidth(uint64(v)) }
func SizeUint16(v uint16) int { return 1 + unsignedWidth(uint64(v)) }
func SizeUint32(v uint32) int { return 1 + unsignedWidth(uint64(v)) }
func SizeUint64(v uint64) int { return 1 + unsignedWidth(v) }

// --- signed integers ---

func WriteInt8(w *Writer, v int8) error   { return writeSignedTagged(w, int64(v)) }
func WriteInt16(w *Writer, v int16) error { return writeSignedTagged(w, int64(v)) }
func WriteInt32(w *Writer, v int32) error { return writeSignedTagged(w, int64(v)) }
func WriteInt64(w *Writer, v int64) error { return writeSignedTagged(w, v) }

func ReadInt8(r *Reader) (int8, error) {
	v, err := readSignedTagged(r, 1)
	return int8(v), err
}

func ReadInt16(r *Reader) (int16, error) {
	v, err := readSignedTagged(r, 2)
	return int16(v), err
}

func ReadInt32(r *Reader) (int32, error) {
	v, err := readSignedTagged(r, 4)
	return int32(v), err
}

func ReadInt64(r *Reader) (int64, error) {
	return readSignedTagged(r, 8)
}

func SizeInt8(v int8) int   { return 1 + signedWidth(int64(v)) }
func SizeInt16(v int16) int { return 1 + signedWidth(int64(v)) }
func SizeInt32(v int32) int { return 1 + signedWidth(int64(v)) }
func SizeInt64(v int64) int { return 1 + signedWidth(v) }

// --- floats: no fix-form, always the full-width tag ---

func WriteFloat32(w *Writer, v float32) error {
	buf, err := w.reserve(5)
	if err != nil {
		return err
	}
	buf[0] = byte(F32)
	putUintLE(buf[1:], uint64(math.Float32bits(v)), 4)
	return nil
}

func ReadFloat32(r *Reader) (float32, error) {
	tagByte, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if EncodingByte(tagByte) != F32 {
		return 0, NewError(UnexpectedEncodingType, "expected F32 tag")
	}
	buf, err := r.read(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(getUintLE(buf, 4))), nil
}

func SizeFloat32(float32) int { return 5 }

func WriteFloat64(w *Writer, v float64) error {
	buf, err := w.reserve(9)
	if err != nil {
		return err
	}
	buf[0] = byte(F64)
	putUintLE(buf[1:], math.Float64bits(v), 8)
	return nil
}

func ReadFloat64(r *Reader) (float64, error) {
	tagByte, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if EncodingByte(tagByte) != F64 {
		return 0, NewError(UnexpectedEncodingType, "expected F64 tag")
	}
	buf, err := r.read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(getUintLE(buf, 8)), nil
}

func SizeFloat64(float64) int { return 9 }

// --- enums: encoded exactly as their underlying integer type ---

// WriteEnum32 writes an enum whose underlying representation is int32,
// the common case for enums declared the Go way (a named int32 type with
// const values).
func WriteEnum32[T ~int32](w *Writer, v T) error { return WriteInt32(w, int32(v)) }

// ReadEnum32 reads an enum back; the accepted tag set is exactly that of
// Int32 (any signed tag no wider than 4 bytes, or fix-int).
func ReadEnum32[T ~int32](r *Reader) (T, error) {
	v, err := ReadInt32(r)
	return T(v), err
}

func SizeEnum32[T ~int32](v T) int { return SizeInt32(int32(v)) }
