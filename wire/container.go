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
	"sort"
	"unsafe"

	"github.com/wirefmt/wirefmt/unsafex"
)

// Integral is the set of element types that get the compact Binary
// encoding instead of the fully-tagged Array encoding.
type Integral interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

func elemWidth[T Integral]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// WriteIntegralSlice writes v using the compact Binary form: tag, byte
// length, then little-endian element bytes.
func WriteIntegralSlice[T Integral](w *Writer, v []T) error {
	width := elemWidth[T]()
	byteLen := len(v) * width
	buf, err := w.reserve(1)
	if err != nil {
		return err
	}
	buf[0] = byte(Binary)
	if err := WriteSizeType(w, SizeType(byteLen)); err != nil {
		return err
	}
	payload, err := w.reserve(byteLen)
	if err != nil {
		return err
	}
	for i, e := range v {
		putUintLE(payload[i*width:], elemToUint64(e), width)
	}
	return nil
}

// ReadIntegralSlice reads a variable-length Binary-encoded element
// sequence into a freshly allocated slice.
func ReadIntegralSlice[T Integral](r *Reader) ([]T, error) {
	width := elemWidth[T]()
	n, err := expectBinaryLen(r, width)
	if err != nil {
		return nil, err
	}
	count := n / width
	if err := r.Ensure(n); err != nil {
		return nil, err
	}
	out := make([]T, count)
	for i := range out {
		buf, err := r.read(width)
		if err != nil {
			return nil, err
		}
		out[i] = uint64ToElem[T](getUintLE(buf, width))
	}
	return out, nil
}

// ReadIntegralArray reads a Binary-encoded sequence into a fixed-size
// target, requiring the decoded element count to equal len(out) exactly,
// else InvalidContainerLength.
func ReadIntegralArray[T Integral](r *Reader, out []T) error {
	width := elemWidth[T]()
	n, err := expectBinaryLen(r, width)
	if err != nil {
		return err
	}
	count := n / width
	if count != len(out) {
		return NewError(InvalidContainerLength, "array length mismatch")
	}
	for i := range out {
		buf, err := r.read(width)
		if err != nil {
			return err
		}
		out[i] = uint64ToElem[T](getUintLE(buf, width))
	}
	return nil
}

func expectBinaryLen(r *Reader, width int) (int, error) {
	tagByte, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if EncodingByte(tagByte) != Binary {
		return 0, NewError(UnexpectedEncodingType, "expected Binary tag")
	}
	n, err := ReadSizeType(r)
	if err != nil {
		return 0, err
	}
	if width > 0 && int(n)%width != 0 {
		return 0, NewError(InvalidContainerLength, "binary length not a multiple of element width")
	}
	return int(n), nil
}

func elemToUint64[T Integral](v T) uint64 {
	switch width := elemWidth[T](); width {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&v)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&v)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&v)))
	default:
		return *(*uint64)(unsafe.Pointer(&v))
	}
}

func uint64ToElem[T Integral](v uint64) T {
	var out T
	switch elemWidth[T]() {
	case 1:
		u := uint8(v)
		out = *(*T)(unsafe.Pointer(&u))
	case 2:
		u := uint16(v)
		out = *(*T)(unsafe.Pointer(&u))
	case 4:
		u := uint32(v)
		out = *(*T)(unsafe.Pointer(&u))
	default:
		out = *(*T)(unsafe.Pointer(&v))
	}
	return out
}

func SizeIntegralSlice[T Integral](v []T) int {
	width := elemWidth[T]()
	return 1 + sizeTypeSize(SizeType(len(v)*width)) + len(v)*width
}

func sizeTypeSize(n SizeType) int { return 1 + unsignedWidth(uint64(n)) }

// --- non-integral element sequences: Array tag, fully-tagged elements ---

// WriteSlice writes v as an Array: tag, SizeType count, then each element
// fully encoded via writeElem.
func WriteSlice[T any](w *Writer, v []T, writeElem func(*Writer, T) error) error {
	if err := w.writeByte(byte(Array)); err != nil {
		return err
	}
	if err := WriteSizeType(w, SizeType(len(v))); err != nil {
		return err
	}
	for _, e := range v {
		if err := writeElem(w, e); err != nil {
			return err
		}
	}
	return nil
}

// ReadSlice reads an Array into a freshly allocated slice.
func ReadSlice[T any](r *Reader, readElem func(*Reader) (T, error)) ([]T, error) {
	n, err := expectArrayCount(r)
	if err != nil {
		return nil, err
	}
	if err := r.Ensure(0); err != nil { // defensive sizing: cheap probe, real bound enforced per-element
		return nil, err
	}
	out := make([]T, 0, clampPrealloc(n))
	for i := 0; i < n; i++ {
		e, err := readElem(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// ReadArray reads an Array into a fixed-size target, requiring the decoded
// count to equal len(out) exactly.
func ReadArray[T any](r *Reader, out []T, readElem func(*Reader) (T, error)) error {
	n, err := expectArrayCount(r)
	if err != nil {
		return err
	}
	if n != len(out) {
		return NewError(InvalidContainerLength, "array length mismatch")
	}
	for i := range out {
		e, err := readElem(r)
		if err != nil {
			return err
		}
		out[i] = e
	}
	return nil
}

func expectArrayCount(r *Reader) (int, error) {
	tagByte, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if EncodingByte(tagByte) != Array {
		return 0, NewError(UnexpectedEncodingType, "expected Array tag")
	}
	n, err := ReadSizeType(r)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// clampPrealloc bounds a length-prefixed preallocation so a hostile count
// can't drive an out-of-memory allocation before any element is read.
func clampPrealloc(n int) int {
	const cap = 4096
	if n > cap {
		return cap
	}
	return n
}

func SizeSlice[T any](v []T, sizeElem func(T) int) int {
	n := 1 + sizeTypeSize(SizeType(len(v)))
	for _, e := range v {
		n += sizeElem(e)
	}
	return n
}

// --- strings ---

// WriteString writes a byte-oriented (UTF-8) string: tag String, byte
// length, raw bytes. The length is counted in bytes, not code units.
func WriteString(w *Writer, s string) error {
	if err := w.writeByte(byte(String)); err != nil {
		return err
	}
	if err := WriteSizeType(w, SizeType(len(s))); err != nil {
		return err
	}
	return w.writeBytes(unsafex.StringToBinary(s))
}

// ReadString reads a String back. The decoded length must be a multiple
// of 1 (the UTF-8 code-unit width), which is trivially true; the check
// exists for symmetry with ReadUTF16/ReadUTF32.
func ReadString(r *Reader) (string, error) {
	n, err := expectStringLen(r, 1)
	if err != nil {
		return "", err
	}
	if err := r.Ensure(n); err != nil {
		return "", err
	}
	buf, err := r.read(n)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func expectStringLen(r *Reader, codeUnitWidth int) (int, error) {
	tagByte, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if EncodingByte(tagByte) != String {
		return 0, NewError(UnexpectedEncodingType, "expected String tag")
	}
	n, err := ReadSizeType(r)
	if err != nil {
		return 0, err
	}
	if int(n)%codeUnitWidth != 0 {
		return 0, NewError(InvalidStringLength, "string length not a multiple of code-unit width")
	}
	return int(n), nil
}

func SizeString(s string) int { return 1 + sizeTypeSize(SizeType(len(s))) + len(s) }

// WriteUTF16 writes v as a String whose code unit is 2 bytes wide: tag
// String, byte length (= 2*len(v)), then little-endian code units.
func WriteUTF16(w *Writer, v []uint16) error {
	if err := w.writeByte(byte(String)); err != nil {
		return err
	}
	byteLen := len(v) * 2
	if err := WriteSizeType(w, SizeType(byteLen)); err != nil {
		return err
	}
	payload, err := w.reserve(byteLen)
	if err != nil {
		return err
	}
	for i, u := range v {
		putUintLE(payload[i*2:], uint64(u), 2)
	}
	return nil
}

// ReadUTF16 reads a String whose code unit is 2 bytes wide, as written by
// WriteUTF16.
func ReadUTF16(r *Reader) ([]uint16, error) {
	n, err := expectStringLen(r, 2)
	if err != nil {
		return nil, err
	}
	if err := r.Ensure(n); err != nil {
		return nil, err
	}
	out := make([]uint16, n/2)
	for i := range out {
		buf, err := r.read(2)
		if err != nil {
			return nil, err
		}
		out[i] = uint16(getUintLE(buf, 2))
	}
	return out, nil
}

// ValidateUTF8 is an opt-in well-formedness pass for callers that need a
// strict text type — the base codec validates only length divisibility,
// not encoding well-formedness.
func ValidateUTF8(s string) error {
	for i := 0; i < len(s); {
		r := s[i]
		switch {
		case r < 0x80:
			i++
		case r&0xE0 == 0xC0:
			if i+1 >= len(s) || s[i+1]&0xC0 != 0x80 {
				return NewError(InvalidStringLength, "invalid UTF-8 continuation byte")
			}
			i += 2
		case r&0xF0 == 0xE0:
			if i+2 >= len(s) || s[i+1]&0xC0 != 0x80 || s[i+2]&0xC0 != 0x80 {
				return NewError(InvalidStringLength, "invalid UTF-8 continuation byte")
			}
			i += 3
		case r&0xF8 == 0xF0:
			if i+3 >= len(s) || s[i+1]&0xC0 != 0x80 || s[i+2]&0xC0 != 0x80 || s[i+3]&0xC0 != 0x80 {
				return NewError(InvalidStringLength, "invalid UTF-8 continuation byte")
			}
			i += 4
		default:
			return NewError(InvalidStringLength, "invalid UTF-8 leading byte")
		}
	}
	return nil
}

// --- maps ---

// WriteMap writes m as a Map: tag, SizeType count, then (key, value)
// pairs. Iteration order is Go's randomized map order — the codec does
// not prescribe or enforce ordering.
func WriteMap[K comparable, V any](w *Writer, m map[K]V, writeKey func(*Writer, K) error, writeVal func(*Writer, V) error) error {
	if err := w.writeByte(byte(Map)); err != nil {
		return err
	}
	if err := WriteSizeType(w, SizeType(len(m))); err != nil {
		return err
	}
	for k, v := range m {
		if err := writeKey(w, k); err != nil {
			return err
		}
		if err := writeVal(w, v); err != nil {
			return err
		}
	}
	return nil
}

// WriteMapSorted writes m with keys in ascending order, for callers that
// need a deterministic encoding (e.g. for hashing/signing) — the base Map
// codec leaves order unspecified.
func WriteMapSorted[K comparable, V any](w *Writer, m map[K]V, writeKey func(*Writer, K) error, writeVal func(*Writer, V) error, less func(a, b K) bool) error {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	if err := w.writeByte(byte(Map)); err != nil {
		return err
	}
	if err := WriteSizeType(w, SizeType(len(keys))); err != nil {
		return err
	}
	for _, k := range keys {
		if err := writeKey(w, k); err != nil {
			return err
		}
		if err := writeVal(w, m[k]); err != nil {
			return err
		}
	}
	return nil
}

// ReadMap reads a Map. Duplicate keys are permitted; the last occurrence
// on the wire wins, matching the codec's insert-as-read contract.
func ReadMap[K comparable, V any](r *Reader, readKey func(*Reader) (K, error), readVal func(*Reader) (V, error)) (map[K]V, error) {
	tagByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if EncodingByte(tagByte) != Map {
		return nil, NewError(UnexpectedEncodingType, "expected Map tag")
	}
	n, err := ReadSizeType(r)
	if err != nil {
		return nil, err
	}
	out := make(map[K]V, clampPrealloc(int(n)))
	for i := 0; i < int(n); i++ {
		k, err := readKey(r)
		if err != nil {
			return nil, err
		}
		v, err := readVal(r)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

func SizeMap[K comparable, V any](m map[K]V, sizeKey func(K) int, sizeVal func(V) int) int {
	n := 1 + sizeTypeSize(SizeType(len(m)))
	for k, v := range m {
		n += sizeKey(k) + sizeVal(v)
	}
	return n
}
