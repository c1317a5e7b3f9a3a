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

// Result carries either a success value of type T or a failure of type
// E, encoded on the wire as either the Error tag followed by the failure
// payload, or the inner success value's own tag. Unlike Status[T]
// (this package's internal error carrier), Result is a wire-level
// container a schema can declare for a fallible operation's return type.
type Result[E, T any] struct {
	Failed bool
	Err    E
	Value  T
}

func Success[E, T any](v T) Result[E, T] { return Result[E, T]{Value: v} }
func Failure[E, T any](e E) Result[E, T] { return Result[E, T]{Failed: true, Err: e} }

// WriteResult writes the Error tag plus writeErr(r.Err) on failure, or
// just the inner value's encoding on success.
func WriteResult[E, T any](w *Writer, r Result[E, T], writeErr func(*Writer, E) error, writeVal func(*Writer, T) error) error {
	if r.Failed {
		if err := w.writeByte(byte(Error)); err != nil {
			return err
		}
		return writeErr(w, r.Err)
	}
	return writeVal(w, r.Value)
}

// ReadResult peeks the next tag: Error consumes it and delegates to
// readErr; any other tag is handed to readVal unconsumed.
func ReadResult[E, T any](r *Reader, readErr func(*Reader) (E, error), readVal func(*Reader) (T, error)) (Result[E, T], error) {
	peeked, err := r.r.Peek(1)
	if err != nil {
		return Result[E, T]{}, WrapError(ReadLimitReached, err)
	}
	if EncodingByte(peeked[0]) == Error {
		if _, err := r.readByte(); err != nil {
			return Result[E, T]{}, err
		}
		e, err := readErr(r)
		if err != nil {
			return Result[E, T]{}, err
		}
		return Failure[E, T](e), nil
	}
	v, err := readVal(r)
	if err != nil {
		return Result[E, T]{}, err
	}
	return Success[E, T](v), nil
}

func SizeResult[E, T any](r Result[E, T], sizeErr func(E) int, sizeVal func(T) int) int {
	if r.Failed {
		return 1 + sizeErr(r.Err)
	}
	return sizeVal(r.Value)
}
