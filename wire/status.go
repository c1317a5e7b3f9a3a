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

import "fmt"

// ErrorStatus is the closed enumeration of failure kinds the codec can
// report. Values are stable API identities, not wire-visible.
//
// originally modeled on the exception-code constants of
// protocol/thrift/exception.go (ApplicationException/ProtocolException
// error codes), generalized to this format's failure modes.
type ErrorStatus int

const (
	None ErrorStatus = iota
	UnexpectedEncodingType
	UnexpectedHandleType
	UnexpectedVariantType
	InvalidContainerLength
	InvalidMemberCount
	InvalidStringLength
	InvalidTableHash
	InvalidHandleReference
	InvalidHandleValue
	InvalidInterfaceMethod
	DuplicateTableEntry
	ReadLimitReached
	WriteLimitReached
	StreamError
	ProtocolError
	IOError
	SystemError
	DebugError
)

var errorStatusNames = [...]string{
	None:                    "no error",
	UnexpectedEncodingType:  "unexpected encoding type",
	UnexpectedHandleType:    "unexpected handle type",
	UnexpectedVariantType:   "unexpected variant type",
	InvalidContainerLength:  "invalid container length",
	InvalidMemberCount:      "invalid member count",
	InvalidStringLength:     "invalid string length",
	InvalidTableHash:        "invalid table hash",
	InvalidHandleReference:  "invalid handle reference",
	InvalidHandleValue:      "invalid handle value",
	InvalidInterfaceMethod:  "invalid interface method",
	DuplicateTableEntry:     "duplicate table entry",
	ReadLimitReached:        "read limit reached",
	WriteLimitReached:       "write limit reached",
	StreamError:             "stream error",
	ProtocolError:           "protocol error",
	IOError:                 "io error",
	SystemError:             "system error",
	DebugError:              "debug error",
}

// String returns the canonical human-readable name for k.
func (k ErrorStatus) String() string {
	if int(k) >= 0 && int(k) < len(errorStatusNames) {
		return errorStatusNames[k]
	}
	return fmt.Sprintf("ErrorStatus(%d)", int(k))
}

// Error is the uniform error carrier produced by this package. It pairs a
// closed ErrorStatus kind with a human-readable message and an optional
// wrapped cause, mirroring the way protocol/thrift/exception.go layers
// ProtocolException/ApplicationException over a typed code.
type Error struct {
	Kind ErrorStatus
	Msg  string
	err  error // wrapped cause, if any
}

// NewError creates an *Error of the given kind with msg as its message.
func NewError(kind ErrorStatus, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WrapError creates an *Error of the given kind that wraps an underlying
// cause (typically from the Reader/Writer's transport).
func WrapError(kind ErrorStatus, cause error) *Error {
	return &Error{Kind: kind, Msg: cause.Error(), err: cause}
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Kind.String() + ": " + e.Msg
	}
	return e.Kind.String()
}

// Unwrap supports errors.Is/errors.As against the wrapped transport cause.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, wire.NewError(wire.InvalidTableHash, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Status is the uniform result carrier described by the data model: a
// value on success, or a closed ErrorStatus/Error on failure.
type Status[T any] struct {
	Value T
	Err   *Error
}

// Ok constructs a successful Status.
func Ok[T any](v T) Status[T] { return Status[T]{Value: v} }

// Failed constructs a failed Status of the given kind.
func Failed[T any](kind ErrorStatus, msg string) Status[T] {
	return Status[T]{Err: NewError(kind, msg)}
}

// IsOk reports whether s carries a value rather than an error.
func (s Status[T]) IsOk() bool { return s.Err == nil }

// Unwrap returns the value and a non-nil error if s failed.
func (s Status[T]) Unwrap() (T, error) {
	if s.Err != nil {
		return s.Value, s.Err
	}
	return s.Value, nil
}
