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

// HandleReference is the small wire-visible integer a Handle tag carries
// in place of an in-process resource. -1 denotes the empty handle.
type HandleReference int64

// EmptyHandle is the reserved reference value meaning "no resource".
const EmptyHandle HandleReference = -1

// HandlePusher is implemented by a handle table that a Writer can register
// an in-process resource with, receiving back the reference to encode.
type HandlePusher interface {
	PushHandle(h any) (HandleReference, error)
}

// HandleGetter is implemented by a handle table that a Reader can resolve
// a decoded reference against.
type HandleGetter interface {
	GetHandle(ref HandleReference) (any, error)
}

// HandlePolicy binds a wire-level handle type number to the Go type it
// carries and to release semantics: "the in-process handle type,
// an empty sentinel, a 'handle-type' small integer used on the wire, and
// close/release operations."
type HandlePolicy interface {
	// HandleType is the small integer identifying this resource kind on
	// the wire; it is written immediately after the Handle tag.
	HandleType() int32
	// Release is called when a handle table entry is evicted or the
	// table holding it is closed.
	Release(h any) error
}

// WriteHandle writes h as a Handle: tag, handle-type integer, then the
// HandleReference obtained by registering h with w's handle table.
func WriteHandle(w *Writer, policy HandlePolicy, h any) error {
	if err := w.writeByte(byte(Handle)); err != nil {
		return err
	}
	if err := WriteInt32(w, policy.HandleType()); err != nil {
		return err
	}
	ref, err := w.PushHandle(h)
	if err != nil {
		return err
	}
	return writeSignedTagged(w, int64(ref))
}

// ReadHandle reads a Handle, checks its wire handle-type against policy,
// and resolves the reference through r's handle table. A reference of
// EmptyHandle resolves to (nil, nil) without consulting the table.
func ReadHandle(r *Reader, policy HandlePolicy) (any, error) {
	tagByte, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if EncodingByte(tagByte) != Handle {
		return nil, NewError(UnexpectedEncodingType, "expected Handle tag")
	}
	wireType, err := ReadInt32(r)
	if err != nil {
		return nil, err
	}
	if wireType != policy.HandleType() {
		return nil, NewError(UnexpectedHandleType, "handle type mismatch")
	}
	refVal, err := readSignedTagged(r, 8)
	if err != nil {
		return nil, err
	}
	ref := HandleReference(refVal)
	if ref == EmptyHandle {
		return nil, nil
	}
	return r.GetHandle(ref)
}

func SizeHandle(policy HandlePolicy, ref HandleReference) int {
	return 1 + SizeInt32(policy.HandleType()) + 1 + signedWidth(int64(ref))
}
