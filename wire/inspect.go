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

// Inspect walks an arbitrary, schema-free encoded blob one tag at a time
// and renders it as a generic Node tree, the same way
// protocol/thrift's SkipDecoderTpl walks a thrift payload by TType
// without a generated struct to decode into — except Inspect keeps what
// it reads instead of discarding it.
//
// Pair/Triple reuse the Array tag and always carry a SizeType count (2
// or 3, respectively), so they are wire-identical to a count-prefixed
// Array of the same arity — Inspect renders either as an ordinary
// KindArray node with no special-casing required.

// NodeKind classifies a Node for display purposes.
type NodeKind int

const (
	KindScalar NodeKind = iota
	KindNil
	KindBytes
	KindArray
	KindMapEntries
	KindStructure
	KindTable
	KindTableEntry
	KindHandle
	KindVariant
	KindError
)

// Node is one decoded value in the generic tree Inspect produces. Scalar
// holds the Go value for KindScalar; Bytes holds the raw payload for
// KindBytes (String/Binary); Children holds nested Nodes for every
// container kind. Meta carries kind-specific side information (a table
// entry's id, a handle's declared type, a variant's index) that doesn't
// fit the Scalar/Children shape.
type Node struct {
	Tag      EncodingByte
	Kind     NodeKind
	Scalar   any
	Bytes    []byte
	Children []*Node
	Meta     map[string]any
}

const defaultInspectDepth = 64

// Inspect decodes one value from r without any schema, recursing into
// containers up to a fixed depth to guard against a maliciously nested
// blob driving unbounded recursion.
func Inspect(r *Reader) (*Node, error) {
	return inspectDepth(r, defaultInspectDepth)
}

func inspectDepth(r *Reader, depth int) (*Node, error) {
	if depth <= 0 {
		return nil, NewError(ProtocolError, "inspect: max nesting depth exceeded")
	}
	peeked, err := r.r.Peek(1)
	if err != nil {
		return nil, WrapError(ReadLimitReached, err)
	}
	tag := EncodingByte(peeked[0])

	switch {
	case tag.IsPosFixInt() || tag.IsNegFixInt():
		v, err := readSignedTagged(r, 8)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindScalar, Scalar: v}, nil
	}

	switch tag {
	case U8, U16, U32, U64:
		v, err := readUnsignedTagged(r, 8)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindScalar, Scalar: v}, nil
	case I8, I16, I32, I64:
		v, err := readSignedTagged(r, 8)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindScalar, Scalar: v}, nil
	case F32:
		v, err := ReadFloat32(r)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindScalar, Scalar: v}, nil
	case F64:
		v, err := ReadFloat64(r)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindScalar, Scalar: v}, nil
	case Nil:
		if _, err := r.readByte(); err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindNil}, nil
	case String:
		b, err := inspectLengthPrefixed(r, tag)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindBytes, Bytes: b, Scalar: string(b)}, nil
	case Binary:
		b, err := inspectLengthPrefixed(r, tag)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindBytes, Bytes: b}, nil
	case Array:
		if _, err := r.readByte(); err != nil {
			return nil, err
		}
		n, err := ReadSizeType(r)
		if err != nil {
			return nil, err
		}
		children := make([]*Node, 0, clampPrealloc(int(n)))
		for i := 0; i < int(n); i++ {
			child, err := inspectDepth(r, depth-1)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return &Node{Tag: tag, Kind: KindArray, Children: children}, nil
	case Map:
		if _, err := r.readByte(); err != nil {
			return nil, err
		}
		n, err := ReadSizeType(r)
		if err != nil {
			return nil, err
		}
		children := make([]*Node, 0, clampPrealloc(int(n))*2)
		for i := 0; i < int(n); i++ {
			key, err := inspectDepth(r, depth-1)
			if err != nil {
				return nil, err
			}
			val, err := inspectDepth(r, depth-1)
			if err != nil {
				return nil, err
			}
			children = append(children, key, val)
		}
		return &Node{Tag: tag, Kind: KindMapEntries, Children: children}, nil
	case Structure:
		if _, err := r.readByte(); err != nil {
			return nil, err
		}
		n, err := ReadSizeType(r)
		if err != nil {
			return nil, err
		}
		children := make([]*Node, 0, clampPrealloc(int(n)))
		for i := 0; i < int(n); i++ {
			child, err := inspectDepth(r, depth-1)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return &Node{Tag: tag, Kind: KindStructure, Children: children}, nil
	case Variant:
		if _, err := r.readByte(); err != nil {
			return nil, err
		}
		idx, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		if idx == EmptyVariant {
			nilByte, err := r.readByte()
			if err != nil {
				return nil, err
			}
			if EncodingByte(nilByte) != Nil {
				return nil, NewError(UnexpectedEncodingType, "expected Nil tag for empty variant")
			}
			return &Node{Tag: tag, Kind: KindVariant, Meta: map[string]any{"index": idx}}, nil
		}
		inner, err := inspectDepth(r, depth-1)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindVariant, Meta: map[string]any{"index": idx}, Children: []*Node{inner}}, nil
	case Error:
		if _, err := r.readByte(); err != nil {
			return nil, err
		}
		inner, err := inspectDepth(r, depth-1)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindError, Children: []*Node{inner}}, nil
	case Handle:
		if _, err := r.readByte(); err != nil {
			return nil, err
		}
		handleType, err := ReadInt32(r)
		if err != nil {
			return nil, err
		}
		ref, err := ReadInt64(r)
		if err != nil {
			return nil, err
		}
		return &Node{Tag: tag, Kind: KindHandle, Meta: map[string]any{"handleType": handleType, "reference": ref}}, nil
	case Table:
		return inspectTable(r, depth)
	default:
		return nil, NewError(UnexpectedEncodingType, "inspect: unrecognized or reserved tag "+tag.String())
	}
}

func inspectLengthPrefixed(r *Reader, tag EncodingByte) ([]byte, error) {
	if _, err := r.readByte(); err != nil {
		return nil, err
	}
	n, err := ReadSizeType(r)
	if err != nil {
		return nil, err
	}
	if err := r.Ensure(int(n)); err != nil {
		return nil, err
	}
	buf, err := r.read(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}

func inspectTable(r *Reader, depth int) (*Node, error) {
	if _, err := r.readByte(); err != nil {
		return nil, err
	}
	hash, err := ReadUint64(r)
	if err != nil {
		return nil, err
	}
	k, err := ReadSizeType(r)
	if err != nil {
		return nil, err
	}
	entries := make([]*Node, 0, clampPrealloc(int(k)))
	for i := 0; i < int(k); i++ {
		id, err := ReadSizeType(r)
		if err != nil {
			return nil, err
		}
		payloadSize, err := ReadSizeType(r)
		if err != nil {
			return nil, err
		}
		if uint64(payloadSize) > maxTablePayload || int(payloadSize) > r.Remaining() {
			return nil, NewError(InvalidContainerLength, "table entry payload_size exceeds available input")
		}
		regionReader := region.NewReader(r.r, int(payloadSize))
		inner := NewReader(regionReader, r.handles)
		entryNode := &Node{Tag: Table, Kind: KindTableEntry, Meta: map[string]any{"id": int64(id), "payloadSize": int(payloadSize)}}
		if payloadSize > 0 {
			value, err := inspectDepth(inner, depth-1)
			if err == nil {
				entryNode.Children = []*Node{value}
			}
			// A payload this walker can't parse (e.g. raw bytes from a
			// caller-defined codec) is left as an id/size-only entry;
			// the caller still sees where it sits and how big it is.
		}
		if err := regionReader.Drain(); err != nil {
			return nil, WrapError(ReadLimitReached, err)
		}
		entries = append(entries, entryNode)
	}
	return &Node{Tag: Table, Kind: KindTable, Meta: map[string]any{"namespaceHash": hash}, Children: entries}, nil
}
