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

// preparer is implemented by iobuf.Writer backends that benefit from an
// upfront size hint (e.g. to grow their buffer once instead of repeatedly).
// BytesWriter/StreamWriter don't need it; it's consulted opportunistically.
type preparer interface {
	Prepare(n int) error
}

// Writer is the codec's view of a byte sink: the Prepare/Write/Skip/
// PushHandle contract, implemented on top of an iobuf.Writer plus an
// optional out-of-band handle table.
type Writer struct {
	w       iobuf.Writer
	handles HandlePusher
}

// NewWriter wraps iw as a wire.Writer. handles may be nil if the caller
// never writes handle-bearing values.
func NewWriter(iw iobuf.Writer, handles HandlePusher) *Writer {
	return &Writer{w: iw, handles: handles}
}

// Prepare reserves or pre-checks n bytes. It is a best-effort hint:
// backends that don't support pre-sizing silently ignore it.
func (w *Writer) Prepare(n int) error {
	if p, ok := w.w.(preparer); ok {
		if err := p.Prepare(n); err != nil {
			return WrapError(WriteLimitReached, err)
		}
	}
	return nil
}

func (w *Writer) reserve(n int) ([]byte, error) {
	buf, err := w.w.Malloc(n)
	if err != nil {
		return nil, WrapError(WriteLimitReached, err)
	}
	return buf, nil
}

func (w *Writer) writeByte(b byte) error {
	buf, err := w.reserve(1)
	if err != nil {
		return err
	}
	buf[0] = b
	return nil
}

func (w *Writer) writeBytes(p []byte) error {
	n, err := w.w.WriteBinary(p)
	if err != nil {
		return WrapError(WriteLimitReached, err)
	}
	if n != len(p) {
		return NewError(WriteLimitReached, "short write")
	}
	return nil
}

// Skip writes n pad bytes, matching Writer.Skip(n, pad_byte) — used by the
// table codec to zero-fill a reserved region the inner value undershot.
func (w *Writer) Skip(n int, pad byte) error {
	if n <= 0 {
		return nil
	}
	buf, err := w.reserve(n)
	if err != nil {
		return err
	}
	for i := range buf {
		buf[i] = pad
	}
	return nil
}

// PushHandle hands h to the out-of-band handle table and returns the
// reference the Reader will later resolve it by.
func (w *Writer) PushHandle(h any) (HandleReference, error) {
	if w.handles == nil {
		return 0, NewError(InvalidHandleValue, "writer has no handle table")
	}
	return w.handles.PushHandle(h)
}

// Flush flushes the underlying iobuf.Writer, if it buffers.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return WrapError(WriteLimitReached, err)
	}
	return nil
}

// Reader is the codec's view of a byte source: the Ensure/Read/Skip/
// GetHandle contract, implemented on top of an iobuf.Reader plus an
// optional out-of-band handle table.
type Reader struct {
	r       iobuf.Reader
	handles HandleGetter
}

// NewReader wraps ir as a wire.Reader. handles may be nil if the caller
// never reads handle-bearing values.
func NewReader(ir iobuf.Reader, handles HandleGetter) *Reader {
	return &Reader{r: ir, handles: handles}
}

// Ensure promises that n bytes exist without consuming them, guarding
// against maliciously inflated container sizes driving unbounded
// allocation ("defensive sizing on read").
func (r *Reader) Ensure(n int) error {
	if n < 0 {
		return NewError(InvalidContainerLength, "negative length")
	}
	if _, err := r.r.Peek(n); err != nil {
		return WrapError(ReadLimitReached, err)
	}
	return nil
}

// exactRemainer is implemented by backends (e.g. iobuf.BytesReader) that
// know precisely how many unread bytes are left.
type exactRemainer interface {
	Remaining() int
}

// bufferedRemainer is implemented by backends (e.g. iobuf.StreamReader)
// that only know a lower bound: bytes already buffered from the stream.
type bufferedRemainer interface {
	Buffered() int
}

// Remaining reports how many bytes are known to be available to read,
// used by the table codec to cap an adversarial payload_size before
// allocating (cap payload_size against the Reader's
// remaining bytes). Backends that can't report an exact count return a
// lower bound (or the probe fallback), which is enough to reject a
// payload_size that is obviously larger than anything on the wire.
func (r *Reader) Remaining() int {
	if er, ok := r.r.(exactRemainer); ok {
		return er.Remaining()
	}
	if br, ok := r.r.(bufferedRemainer); ok {
		return br.Buffered()
	}
	// Fall back to a doubling probe for backends with neither hint.
	lo, hi := 0, 4096
	for {
		if _, err := r.r.Peek(hi); err != nil {
			break
		}
		lo = hi
		hi *= 2
	}
	for lo+1 < hi {
		mid := (lo + hi) / 2
		if _, err := r.r.Peek(mid); err == nil {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

func (r *Reader) read(n int) ([]byte, error) {
	buf, err := r.r.Next(n)
	if err != nil {
		return nil, WrapError(ReadLimitReached, err)
	}
	return buf, nil
}

func (r *Reader) readByte() (byte, error) {
	buf, err := r.read(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Skip discards n bytes without interpreting them.
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return NewError(InvalidContainerLength, "negative skip length")
	}
	if err := r.r.Skip(n); err != nil {
		return WrapError(ReadLimitReached, err)
	}
	return nil
}

// GetHandle resolves a HandleReference pushed by a paired Writer.
func (r *Reader) GetHandle(ref HandleReference) (any, error) {
	if r.handles == nil {
		return nil, NewError(InvalidHandleReference, "reader has no handle table")
	}
	return r.handles.GetHandle(ref)
}
