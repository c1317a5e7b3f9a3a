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

// Witness[A, B] is a compile-time proof that A and B are fungible:
// every value of A and the corresponding value of B produce identical
// byte sequences. Witness is zero-sized and carries no runtime state; the
// only way to obtain one is through the constructors below, so the
// Protocol gate (GateRead/GateWrite) can accept "any witness the caller
// can produce" and still reject non-fungible pairings, because no
// constructor exists to manufacture a false one.
type Witness[A, B any] struct{}

// Same is the reflexive witness: a type is always fungible with itself.
func Same[T any]() Witness[T, T] { return Witness[T, T]{} }

// Symmetric flips a witness; fungibility is symmetric by construction.
func Symmetric[A, B any](Witness[A, B]) Witness[B, A] { return Witness[B, A]{} }

// Compose chains two witnesses transitively.
func Compose[A, B, C any](Witness[A, B], Witness[B, C]) Witness[A, C] { return Witness[A, C]{} }

// Slices lifts element-wise fungibility to the slices over those elements
// — covers both the "fixed array of length N" and "vector" wire shapes,
// since this package represents both as a Go slice (ReadArray enforces
// the fixed-length case; ReadSlice leaves it open).
func Slices[A, B any](Witness[A, B]) Witness[[]A, []B] { return Witness[[]A, []B]{} }

// Pairs lifts element-wise fungibility to wire.Pair — also the witness
// for "2-element Array/Vector of a single fungible element type" via
// PairAsSlice below.
func Pairs[A1, B1, A2, B2 any](Witness[A1, B1], Witness[A2, B2]) Witness[Pair[A1, A2], Pair[B1, B2]] {
	return Witness[Pair[A1, A2], Pair[B1, B2]]{}
}

// Triples lifts element-wise fungibility to wire.Triple.
func Triples[A1, B1, A2, B2, A3, B3 any](Witness[A1, B1], Witness[A2, B2], Witness[A3, B3]) Witness[Triple[A1, A2, A3], Triple[B1, B2, B3]] {
	return Witness[Triple[A1, A2, A3], Triple[B1, B2, B3]]{}
}

// PairAsSlice witnesses that a Pair[T, T] and a 2-element []T encode
// identically when T is fungible with itself: both write the Array tag,
// a SizeType count of 2, then the two element encodings back to back.
func PairAsSlice[T any]() Witness[Pair[T, T], []T] { return Witness[Pair[T, T], []T]{} }

// Optionals lifts element-wise fungibility to Optional.
func Optionals[A, B any](Witness[A, B]) Witness[Optional[A], Optional[B]] {
	return Witness[Optional[A], Optional[B]]{}
}

// Results lifts fungibility to Result, requiring both the error and
// value alternatives to be pairwise fungible.
func Results[EA, EB, A, B any](Witness[EA, EB], Witness[A, B]) Witness[Result[EA, A], Result[EB, B]] {
	return Witness[Result[EA, A], Result[EB, B]]{}
}

// Maps lifts fungibility to map types under both key and value.
func Maps[KA, KB comparable, VA, VB any](Witness[KA, KB], Witness[VA, VB]) Witness[map[KA]VA, map[KB]VB] {
	return Witness[map[KA]VA, map[KB]VB]{}
}

// BoundedBuffers witnesses that a logical buffer and a vector over the
// same element type are fungible ("logical buffers are fungible
// with vectors of the same element type").
func BoundedBuffers[T any]() Witness[BoundedBuffer[T], []T] { return Witness[BoundedBuffer[T], []T]{} }

// Wrappers witnesses that a single-field value wrapper is fungible with
// its sole member's type — Outer carries no independent encoding, so the
// caller asserts this once per wrapper type it defines.
func Wrappers[Outer, Inner any]() Witness[Outer, Inner] { return Witness[Outer, Inner]{} }

// GateWrite is the Protocol gate's write side: it accepts a
// Witness[P, V] as proof that the declared protocol type P and the
// actual value type V are fungible, then performs the write. The witness
// parameter is otherwise unused — its only job is to fail to compile
// when no fungibility proof for (P, V) exists.
func GateWrite[P, V any](w *Writer, _ Witness[P, V], v V, writeVal func(*Writer, V) error) error {
	return writeVal(w, v)
}

// GateRead is the Protocol gate's read side.
func GateRead[P, V any](r *Reader, _ Witness[P, V], readVal func(*Reader) (V, error)) (V, error) {
	return readVal(r)
}
