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

// StructureField describes one member of a declared-order structure: its
// writer/reader/sizer, applied positionally rather than by name or id
// (unlike Table, Structure has no per-member identifier and no
// forward/backward compatibility; member order is the wire contract).
type StructureField struct {
	Write func(*Writer) error
	Read  func(*Reader) error
	Size  func() int
}

// WriteStructure writes the Structure tag, the member count, and each
// field's encoding in declared order.
func WriteStructure(w *Writer, fields []StructureField) error {
	if err := w.writeByte(byte(Structure)); err != nil {
		return err
	}
	if err := WriteSizeType(w, SizeType(len(fields))); err != nil {
		return err
	}
	for _, f := range fields {
		if err := f.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadStructure reads a Structure, requiring the decoded member count to
// equal len(fields) exactly — callers needing forward/backward
// compatibility should model the type as a Table instead.
func ReadStructure(r *Reader, fields []StructureField) error {
	tagByte, err := r.readByte()
	if err != nil {
		return err
	}
	if EncodingByte(tagByte) != Structure {
		return NewError(UnexpectedEncodingType, "expected Structure tag")
	}
	n, err := ReadSizeType(r)
	if err != nil {
		return err
	}
	if int(n) != len(fields) {
		return NewError(InvalidMemberCount, "structure member count mismatch")
	}
	for _, f := range fields {
		if err := f.Read(r); err != nil {
			return err
		}
	}
	return nil
}

func SizeStructure(fields []StructureField) int {
	n := 1 + sizeTypeSize(SizeType(len(fields)))
	for _, f := range fields {
		n += f.Size()
	}
	return n
}

// WriteValue forwards to the wrapped value's own writer: a single-field
// value wrapper contributes no tag of its own beyond what the inner type
// already writes (value wrappers are transparent on the wire).
func WriteValue[T any](w *Writer, v T, writeInner func(*Writer, T) error) error {
	return writeInner(w, v)
}

// ReadValue forwards to the wrapped value's own reader.
func ReadValue[T any](r *Reader, readInner func(*Reader) (T, error)) (T, error) {
	return readInner(r)
}

func SizeValue[T any](v T, sizeInner func(T) int) int {
	return sizeInner(v)
}
