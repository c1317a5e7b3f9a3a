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

import "github.com/wirefmt/wirefmt/region"

// EntryState marks a declared table field as live or tombstoned. A
// Deleted field is still part of the schema (so old writers that still
// emit it can be skipped cleanly) but is never written, and is never
// read into.
type EntryState int

const (
	Active EntryState = iota
	Deleted
)

// TableField describes one declared entry of a table's schema: its wire
// id, its state, and the hooks the codec needs to test, size, write, read
// and clear it. Present reports whether the field currently holds a
// value worth emitting — an inactive-but-unset field is never written,
// matching "empty active entries are never emitted".
type TableField struct {
	ID      int64
	State   EntryState
	Present func() bool
	Size    func() int
	Write   func(*Writer) error
	Read    func(*Reader) error
	Clear   func()
}

// maxTablePayload bounds a single entry's declared payload_size against
// outright nonsensical values before any allocation is attempted, ahead
// of the Reader.Remaining() check below.
const maxTablePayload uint64 = 1 << 32

// WriteTable writes a Table: tag, namespaceHash, the active/non-empty
// entry count, then each such entry as (id, payload_size, bounded
// region) in declared order.
func WriteTable(w *Writer, namespaceHash uint64, fields []TableField) error {
	if err := w.writeByte(byte(Table)); err != nil {
		return err
	}
	if err := WriteUint64(w, namespaceHash); err != nil {
		return err
	}
	k := 0
	for _, f := range fields {
		if f.State == Active && f.Present() {
			k++
		}
	}
	if err := WriteSizeType(w, SizeType(k)); err != nil {
		return err
	}
	for _, f := range fields {
		if f.State != Active || !f.Present() {
			continue
		}
		if err := WriteSizeType(w, SizeType(f.ID)); err != nil {
			return err
		}
		payloadSize := f.Size()
		if err := WriteSizeType(w, SizeType(payloadSize)); err != nil {
			return err
		}
		regionWriter := region.NewWriter(w.w, payloadSize)
		inner := NewWriter(regionWriter, w.handles)
		if err := f.Write(inner); err != nil {
			return err
		}
		if err := regionWriter.Pad(); err != nil {
			return WrapError(WriteLimitReached, err)
		}
	}
	return nil
}

// ReadTable reads a Table written by WriteTable. Every field is cleared
// first; unknown or Deleted ids are skipped by their declared
// payload_size without being parsed.
func ReadTable(r *Reader, namespaceHash uint64, fields []TableField) error {
	tagByte, err := r.readByte()
	if err != nil {
		return err
	}
	if EncodingByte(tagByte) != Table {
		return NewError(UnexpectedEncodingType, "expected Table tag")
	}
	hash, err := ReadUint64(r)
	if err != nil {
		return err
	}
	if hash != namespaceHash {
		return NewError(InvalidTableHash, "table namespace hash mismatch")
	}
	k, err := ReadSizeType(r)
	if err != nil {
		return err
	}
	for _, f := range fields {
		f.Clear()
	}
	seen := make(map[int64]bool, k)
	for i := 0; i < int(k); i++ {
		id, err := ReadSizeType(r)
		if err != nil {
			return err
		}
		payloadSize, err := ReadSizeType(r)
		if err != nil {
			return err
		}
		if uint64(payloadSize) > maxTablePayload || int(payloadSize) > r.Remaining() {
			return NewError(InvalidContainerLength, "table entry payload_size exceeds available input")
		}
		regionReader := region.NewReader(r.r, int(payloadSize))
		inner := NewReader(regionReader, r.handles)

		var target *TableField
		for j := range fields {
			if fields[j].ID == int64(id) {
				target = &fields[j]
				break
			}
		}
		if target != nil && target.State == Active {
			if seen[int64(id)] {
				return NewError(DuplicateTableEntry, "duplicate table entry id")
			}
			seen[int64(id)] = true
			if err := target.Read(inner); err != nil {
				return err
			}
		}
		if err := regionReader.Drain(); err != nil {
			return WrapError(ReadLimitReached, err)
		}
	}
	return nil
}
