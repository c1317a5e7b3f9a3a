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
	"encoding/binary"
	"unsafe"
)

// SizeType is the canonical unsigned integer used for every count/length
// prefix embedded in a container payload. Go's uint is 64-bit on 64-bit
// hosts and 32-bit otherwise, which is exactly the width this type is
// specified to have.
type SizeType = uint

// unsignedWidth returns the number of payload bytes needed for v under the
// fix-int/widening rule: 0 means "fix-int, no separate payload".
func unsignedWidth(v uint64) int {
	switch {
	case v <= uint64(PosFixIntMax):
		return 0
	case v <= 0xFF:
		return 1
	case v <= 0xFFFF:
		return 2
	case v <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

func unsignedTagForWidth(width int) EncodingByte {
	switch width {
	case 1:
		return U8
	case 2:
		return U16
	case 4:
		return U32
	default:
		return U64
	}
}

// writeUnsignedTagged writes v as a positive fix-int when it fits, and
// otherwise as the narrowest unsigned tag that can hold it.
func writeUnsignedTagged(w *Writer, v uint64) error {
	width := unsignedWidth(v)
	if width == 0 {
		return w.writeByte(byte(v))
	}
	tag := unsignedTagForWidth(width)
	buf, err := w.reserve(1 + width)
	if err != nil {
		return err
	}
	buf[0] = byte(tag)
	putUintLE(buf[1:], v, width)
	return nil
}

// readUnsignedTagged reads an unsigned integer, accepting any tag whose
// payload width does not exceed maxWidth bytes (fix-int always accepted).
func readUnsignedTagged(r *Reader, maxWidth int) (uint64, error) {
	tagByte, err := r.readByte()
	if err != nil {
		return 0, err
	}
	tag := EncodingByte(tagByte)
	if tag.IsPosFixInt() {
		return uint64(tag.PosFixIntValue()), nil
	}
	width := payloadWidth(tag)
	switch tag {
	case U8, U16, U32, U64:
		if width > maxWidth {
			return 0, NewError(InvalidContainerLength, "unsigned value too wide for target")
		}
		buf, err := r.read(width)
		if err != nil {
			return 0, err
		}
		return getUintLE(buf, width), nil
	default:
		return 0, NewError(UnexpectedEncodingType, "expected an unsigned integer tag, got "+tag.String())
	}
}

// signedWidth returns the number of payload bytes needed for v, or 0 for
// fix-int (positive 0..127 or negative -64..-1).
func signedWidth(v int64) int {
	switch {
	case v >= -64 && v <= int64(PosFixIntMax):
		return 0
	case v >= -128 && v <= 127:
		return 1
	case v >= -32768 && v <= 32767:
		return 2
	case v >= -2147483648 && v <= 2147483647:
		return 4
	default:
		return 8
	}
}

func signedTagForWidth(width int) EncodingByte {
	switch width {
	case 1:
		return I8
	case 2:
		return I16
	case 4:
		return I32
	default:
		return I64
	}
}

func writeSignedTagged(w *Writer, v int64) error {
	width := signedWidth(v)
	if width == 0 {
		return w.writeByte(byte(uint8(v)))
	}
	tag := signedTagForWidth(width)
	buf, err := w.reserve(1 + width)
	if err != nil {
		return err
	}
	buf[0] = byte(tag)
	putUintLE(buf[1:], uint64(v), width)
	return nil
}

func readSignedTagged(r *Reader, maxWidth int) (int64, error) {
	tagByte, err := r.readByte()
	if err != nil {
		return 0, err
	}
	tag := EncodingByte(tagByte)
	switch {
	case tag.IsPosFixInt():
		return int64(tag.PosFixIntValue()), nil
	case tag.IsNegFixInt():
		return int64(tag.NegFixIntValue()), nil
	}
	width := payloadWidth(tag)
	switch tag {
	case I8, I16, I32, I64:
		if width > maxWidth {
			return 0, NewError(InvalidContainerLength, "signed value too wide for target")
		}
		buf, err := r.read(width)
		if err != nil {
			return 0, err
		}
		return signExtend(getUintLE(buf, width), width), nil
	default:
		return 0, NewError(UnexpectedEncodingType, "expected a signed integer tag, got "+tag.String())
	}
}

func signExtend(v uint64, width int) int64 {
	switch width {
	case 1:
		return int64(int8(v))
	case 2:
		return int64(int16(v))
	case 4:
		return int64(int32(v))
	default:
		return int64(v)
	}
}

func putUintLE(buf []byte, v uint64, width int) {
	switch width {
	case 1:
		buf[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(buf, v)
	}
}

func getUintLE(buf []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf))
	default:
		return binary.LittleEndian.Uint64(buf)
	}
}

// WriteSizeType writes n using the integer codec, as every container
// length/count prefix does.
func WriteSizeType(w *Writer, n SizeType) error {
	return writeUnsignedTagged(w, uint64(n))
}

// ReadSizeType reads a SizeType prefix written by WriteSizeType.
func ReadSizeType(r *Reader) (SizeType, error) {
	v, err := readUnsignedTagged(r, sizeTypeWidth)
	return SizeType(v), err
}

// sizeTypeWidth is the payload width, in bytes, of the host's SizeType:
// 8 on 64-bit hosts, 4 on 32-bit hosts.
var sizeTypeWidth = int(unsafe.Sizeof(SizeType(0)))
