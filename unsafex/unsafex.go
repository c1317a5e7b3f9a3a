// Package unsafex provides zero-copy conversions between string and []byte
// used by the wire codec's String/Binary payload paths.
package unsafex

import "unsafe"

// BinaryToString converts []byte to string without copying.
// The caller must not mutate b after the call.
func BinaryToString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBinary converts string to []byte without copying.
// The returned slice must not be mutated; s may be backed by read-only memory.
func StringToBinary(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
