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

// Package wire implements a compact, self-describing binary wire format
// and the type-directed encoding engine that reads and writes it.
//
// There is no runtime schema and no code generation: every supported kind
// (primitives, arrays/vectors/strings/maps/tuples, optionals, results,
// variants, user structures, value wrappers, logical buffers, tables and
// handles) has a small set of hand-written functions that compute a size,
// write a tag-prefixed payload, and read one back. Dispatch on Go's type
// system (generics plus per-type function sets) stands in for the C++
// template dispatch and Rust trait impls this format was designed around.
//
// Every encoded value begins with exactly one EncodingByte tag (see
// tag.go); decoding always consumes and validates that byte before
// touching the payload.
package wire
