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

// Package region implements the bounded-region adapter the table codec
// uses to confine an entry's inner value to exactly its predicted
// payload_size bytes: a Writer that refuses to exceed its
// budget and can zero-pad any shortfall, and a Reader that refuses to
// read past its budget and can drain any unread remainder. Both wrap an
// existing iobuf.Reader/Writer rather than owning storage themselves —
// unlike the scatter-gather multi-chunk buffer this package supersedes,
// a bounded region never needs its own backing allocation, only an exact
// budget enforced against a buffer someone else owns.
package region

import "github.com/wirefmt/wirefmt/iobuf"

// errOverflow is returned when a region's caller tries to write or read
// more than the region's declared budget.
type errOverflow struct{}

func (errOverflow) Error() string { return "region: operation exceeds bounded region budget" }

// Writer bounds writes through an underlying iobuf.Writer to exactly
// budget bytes, satisfying the iobuf.Writer interface so a wire.Writer
// can be built directly on top of it.
type Writer struct {
	w      iobuf.Writer
	budget int
	used   int
}

// NewWriter returns a Writer that allows at most budget bytes to be
// written through w before every further write is rejected.
func NewWriter(w iobuf.Writer, budget int) *Writer {
	return &Writer{w: w, budget: budget}
}

func (rw *Writer) Malloc(n int) (buf []byte, err error) {
	if n < 0 || rw.used+n > rw.budget {
		return nil, errOverflow{}
	}
	buf, err = rw.w.Malloc(n)
	if err != nil {
		return nil, err
	}
	rw.used += n
	return buf, nil
}

func (rw *Writer) WriteBinary(bs []byte) (n int, err error) {
	if rw.used+len(bs) > rw.budget {
		return 0, errOverflow{}
	}
	n, err = rw.w.WriteBinary(bs)
	rw.used += n
	return n, err
}

func (rw *Writer) WrittenLen() int { return rw.used }

func (rw *Writer) Flush() error { return rw.w.Flush() }

// Remaining reports how many more bytes can be written before the
// region's budget is exhausted.
func (rw *Writer) Remaining() int { return rw.budget - rw.used }

// Pad fills the unused remainder of the region with zero bytes, per the
// table codec's "pad the remainder with zero bytes if the actual written
// size fell short of the predicted size" rule.
func (rw *Writer) Pad() error {
	remaining := rw.Remaining()
	if remaining <= 0 {
		return nil
	}
	buf, err := rw.w.Malloc(remaining)
	if err != nil {
		return err
	}
	for i := range buf {
		buf[i] = 0
	}
	rw.used += remaining
	return nil
}

// Reader bounds reads through an underlying iobuf.Reader to exactly
// budget bytes, satisfying the iobuf.Reader interface so a wire.Reader
// can be built directly on top of it.
type Reader struct {
	r      iobuf.Reader
	budget int
	used   int
}

// NewReader returns a Reader that allows at most budget bytes to be read
// through r before every further read is rejected.
func NewReader(r iobuf.Reader, budget int) *Reader {
	return &Reader{r: r, budget: budget}
}

func (rr *Reader) Next(n int) (p []byte, err error) {
	if n < 0 || rr.used+n > rr.budget {
		return nil, errOverflow{}
	}
	p, err = rr.r.Next(n)
	if err != nil {
		return nil, err
	}
	rr.used += n
	return p, nil
}

func (rr *Reader) ReadBinary(bs []byte) (n int, err error) {
	if rr.used+len(bs) > rr.budget {
		return 0, errOverflow{}
	}
	n, err = rr.r.ReadBinary(bs)
	rr.used += n
	return n, err
}

func (rr *Reader) Peek(n int) (buf []byte, err error) {
	if n < 0 || rr.used+n > rr.budget {
		return nil, errOverflow{}
	}
	return rr.r.Peek(n)
}

func (rr *Reader) Skip(n int) (err error) {
	if n < 0 || rr.used+n > rr.budget {
		return errOverflow{}
	}
	if err := rr.r.Skip(n); err != nil {
		return err
	}
	rr.used += n
	return nil
}

func (rr *Reader) ReadLen() int { return rr.used }

func (rr *Reader) Release(e error) error { return rr.r.Release(e) }

// Remaining reports how many bytes of the region remain unread, the
// exact-count hint wire.Reader.Remaining() consults.
func (rr *Reader) Remaining() int { return rr.budget - rr.used }

// Drain skips any unread bytes left in the region, per the table
// codec's "drain any trailing bytes in the region" rule.
func (rr *Reader) Drain() error {
	remaining := rr.Remaining()
	if remaining <= 0 {
		return nil
	}
	return rr.Skip(remaining)
}
