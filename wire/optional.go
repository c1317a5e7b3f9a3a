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

// Optional represents a present-or-absent value with no wrapper tag of
// its own: absent encodes as the bare Nil tag, present encodes as
// whatever the inner value encodes as (Optional<T> does not add a
// byte of its own beyond what Nil-or-not already costs).
type Optional[T any] struct {
	Valid bool
	Value T
}

func Some[T any](v T) Optional[T] { return Optional[T]{Valid: true, Value: v} }
func None[T any]() Optional[T]    { return Optional[T]{} }

// WriteOptional writes Nil when o is absent, else delegates to writeVal.
func WriteOptional[T any](w *Writer, o Optional[T], writeVal func(*Writer, T) error) error {
	if !o.Valid {
		return w.writeByte(byte(Nil))
	}
	return writeVal(w, o.Value)
}

// ReadOptional peeks the next tag: Nil consumes it and returns an absent
// Optional; any other tag is handed to readVal unconsumed.
func ReadOptional[T any](r *Reader, readVal func(*Reader) (T, error)) (Optional[T], error) {
	peeked, err := r.r.Peek(1)
	if err != nil {
		return Optional[T]{}, WrapError(ReadLimitReached, err)
	}
	if EncodingByte(peeked[0]) == Nil {
		if _, err := r.readByte(); err != nil {
			return Optional[T]{}, err
		}
		return None[T](), nil
	}
	v, err := readVal(r)
	if err != nil {
		return Optional[T]{}, err
	}
	return Some(v), nil
}

func SizeOptional[T any](o Optional[T], sizeVal func(T) int) int {
	if !o.Valid {
		return 1
	}
	return sizeVal(o.Value)
}
