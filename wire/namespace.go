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

import "github.com/dchest/siphash"

// Fixed SipHash-2-4 keys a table's namespace string is hashed with
// Every table in this module shares these keys; only the
// namespace string varies.
const (
	namespaceHashK0 = 0xBAADF00DDEADBEEF
	namespaceHashK1 = 0x0123456789ABCDEF
)

// NamespaceHash computes a table's namespace hash from its namespace
// string. The convention for "no namespace" is the explicit value 0,
// which callers pass directly to WriteTable/ReadTable instead of calling
// this function.
func NamespaceHash(namespace string) uint64 {
	return siphash.Hash(namespaceHashK0, namespaceHashK1, []byte(namespace))
}

// NoNamespace is the reserved hash value for a table with no namespace.
const NoNamespace uint64 = 0
