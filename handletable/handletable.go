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

// Package handletable implements an LRU-backed out-of-band handle table,
// one concrete home for the Writer.PushHandle/Reader.GetHandle contract
// the wire package's Handle codec depends on. A handle never
// travels as value-bytes, so something on each side of the wire has to
// hold the live resource and hand back a small integer in its place;
// this package is that something, bounded so a misbehaving peer that
// never releases its handles can't grow the table without limit.
package handletable

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"
	"github.com/op/go-logging"

	"github.com/wirefmt/wirefmt/wire"
)

var log = logging.MustGetLogger("handletable")

// Table is a bounded, eviction-logging handle table. A single Table
// is meant to back one side (Writer or Reader, not both) of one
// connection's handle traffic — per the wire package's concurrency
// model, a Table is not safe for concurrent use by multiple Writers or
// Readers simultaneously, matching the "independent instances may run
// in parallel" rule for the rest of the core.
type Table struct {
	cache  *lru.Cache
	next   int64
	policy wire.HandlePolicy
}

// New builds a Table of the given capacity, releasing evicted handles
// through policy.Release and logging each eviction.
func New(capacity int, policy wire.HandlePolicy) (*Table, error) {
	t := &Table{policy: policy}
	cache, err := lru.NewWithEvict(capacity, func(key, value interface{}) {
		ref := key.(wire.HandleReference)
		if err := policy.Release(value); err != nil {
			log.Warningf("handle %d: release on eviction failed: %v", ref, err)
			return
		}
		log.Debugf("handle %d evicted", ref)
	})
	if err != nil {
		return nil, err
	}
	t.cache = cache
	return t, nil
}

// PushHandle registers h under a freshly allocated reference.
func (t *Table) PushHandle(h any) (wire.HandleReference, error) {
	ref := wire.HandleReference(atomic.AddInt64(&t.next, 1))
	t.cache.Add(ref, h)
	return ref, nil
}

// GetHandle resolves ref back to the handle PushHandle registered it
// with.
func (t *Table) GetHandle(ref wire.HandleReference) (any, error) {
	if ref == wire.EmptyHandle {
		return nil, nil
	}
	v, ok := t.cache.Get(ref)
	if !ok {
		return nil, wire.NewError(wire.InvalidHandleReference, "unknown handle reference")
	}
	return v, nil
}

// Close releases every handle still held by the table, in eviction order.
func (t *Table) Close() error {
	for _, key := range t.cache.Keys() {
		t.cache.Remove(key) // triggers the eviction callback, which releases
	}
	return nil
}

// Len reports how many handles are currently live in the table.
func (t *Table) Len() int { return t.cache.Len() }
