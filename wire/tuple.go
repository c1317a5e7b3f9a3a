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

// Pair is a fixed-arity 2-tuple, encoded as an Array tag whose SizeType
// count is always exactly 2 — the arity is fixed by the type itself, but
// the count byte is still written, matching every other Array on the
// wire so a schema-free reader never has to special-case a tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// WritePair writes a Pair as Array(2): tag, SizeType count of 2, then
// First, then Second.
func WritePair[A, B any](w *Writer, p Pair[A, B], writeA func(*Writer, A) error, writeB func(*Writer, B) error) error {
	if err := w.writeByte(byte(Array)); err != nil {
		return err
	}
	if err := WriteSizeType(w, 2); err != nil {
		return err
	}
	if err := writeA(w, p.First); err != nil {
		return err
	}
	return writeB(w, p.Second)
}

// ReadPair reads a Pair written by WritePair, rejecting a count other
// than 2.
func ReadPair[A, B any](r *Reader, readA func(*Reader) (A, error), readB func(*Reader) (B, error)) (Pair[A, B], error) {
	var zero Pair[A, B]
	tagByte, err := r.readByte()
	if err != nil {
		return zero, err
	}
	if EncodingByte(tagByte) != Array {
		return zero, NewError(UnexpectedEncodingType, "expected Array tag")
	}
	n, err := ReadSizeType(r)
	if err != nil {
		return zero, err
	}
	if n != 2 {
		return zero, NewError(InvalidContainerLength, "pair requires an element count of 2")
	}
	a, err := readA(r)
	if err != nil {
		return zero, err
	}
	b, err := readB(r)
	if err != nil {
		return zero, err
	}
	return Pair[A, B]{First: a, Second: b}, nil
}

func SizePair[A, B any](p Pair[A, B], sizeA func(A) int, sizeB func(B) int) int {
	return 1 + sizeTypeSize(2) + sizeA(p.First) + sizeB(p.Second)
}

// Triple is a fixed-arity 3-tuple, following the same convention as Pair.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func WriteTriple[A, B, C any](w *Writer, t Triple[A, B, C], writeA func(*Writer, A) error, writeB func(*Writer, B) error, writeC func(*Writer, C) error) error {
	if err := w.writeByte(byte(Array)); err != nil {
		return err
	}
	if err := WriteSizeType(w, 3); err != nil {
		return err
	}
	if err := writeA(w, t.First); err != nil {
		return err
	}
	if err := writeB(w, t.Second); err != nil {
		return err
	}
	return writeC(w, t.Third)
}

func ReadTriple[A, B, C any](r *Reader, readA func(*Reader) (A, error), readB func(*Reader) (B, error), readC func(*Reader) (C, error)) (Triple[A, B, C], error) {
	var zero Triple[A, B, C]
	tagByte, err := r.readByte()
	if err != nil {
		return zero, err
	}
	if EncodingByte(tagByte) != Array {
		return zero, NewError(UnexpectedEncodingType, "expected Array tag")
	}
	n, err := ReadSizeType(r)
	if err != nil {
		return zero, err
	}
	if n != 3 {
		return zero, NewError(InvalidContainerLength, "triple requires an element count of 3")
	}
	a, err := readA(r)
	if err != nil {
		return zero, err
	}
	b, err := readB(r)
	if err != nil {
		return zero, err
	}
	c, err := readC(r)
	if err != nil {
		return zero, err
	}
	return Triple[A, B, C]{First: a, Second: b, Third: c}, nil
}

func SizeTriple[A, B, C any](t Triple[A, B, C], sizeA func(A) int, sizeB func(B) int, sizeC func(C) int) int {
	return 1 + sizeTypeSize(3) + sizeA(t.First) + sizeB(t.Second) + sizeC(t.Third)
}
