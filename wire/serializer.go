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

import "github.com/wirefmt/wirefmt/iobuf"

// Serializer is a reentrant façade over a Writer: size/write, with no
// state carried between calls beyond the wrapped Writer itself.
type Serializer[T any] struct {
	w       *Writer
	sizeFn  func(T) int
	writeFn func(*Writer, T) error
}

// NewSerializer builds a Serializer around iw, given the codec functions
// for T (typically the SizeX/WriteX pair the caller's type maps to).
func NewSerializer[T any](iw iobuf.Writer, handles HandlePusher, sizeFn func(T) int, writeFn func(*Writer, T) error) *Serializer[T] {
	return &Serializer[T]{w: NewWriter(iw, handles), sizeFn: sizeFn, writeFn: writeFn}
}

// Size returns the upper-bound encoded size for value; it never
// underestimates, though table entries may pad past it.
func (s *Serializer[T]) Size(value T) int { return s.sizeFn(value) }

// Write asks the underlying Writer to Prepare(Size(value)) and then
// invokes the codec.
func (s *Serializer[T]) Write(value T) Status[struct{}] {
	n := s.sizeFn(value)
	if err := s.w.Prepare(n); err != nil {
		if e, ok := err.(*Error); ok {
			return Failed[struct{}](e.Kind, e.Msg)
		}
		return Failed[struct{}](WriteLimitReached, err.Error())
	}
	if err := s.writeFn(s.w, value); err != nil {
		if e, ok := err.(*Error); ok {
			return Failed[struct{}](e.Kind, e.Msg)
		}
		return Failed[struct{}](IOError, err.Error())
	}
	return Ok(struct{}{})
}

// Flush flushes the underlying Writer, if it buffers.
func (s *Serializer[T]) Flush() error { return s.w.Flush() }

// Deserializer is a reentrant façade over a Reader: read, with no
// pre-sizing call made on the Reader.
type Deserializer[T any] struct {
	r      *Reader
	readFn func(*Reader) (T, error)
}

// NewDeserializer builds a Deserializer around ir, given the read
// function for T.
func NewDeserializer[T any](ir iobuf.Reader, handles HandleGetter, readFn func(*Reader) (T, error)) *Deserializer[T] {
	return &Deserializer[T]{r: NewReader(ir, handles), readFn: readFn}
}

// Read invokes the codec and returns the decoded value.
func (d *Deserializer[T]) Read() Status[T] {
	v, err := d.readFn(d.r)
	if err != nil {
		if e, ok := err.(*Error); ok {
			return Failed[T](e.Kind, e.Msg)
		}
		return Failed[T](IOError, err.Error())
	}
	return Ok(v)
}
