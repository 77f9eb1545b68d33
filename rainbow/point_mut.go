// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

// PointMut wraps an owned Point[T] for in-place mutation. Rust leans on
// Drop to recompute the cached hash when a mutable borrow ends; Go has no
// destructors, so callers must call Finalize (typically via defer)
// immediately after the mutation is done. Finalize is idempotent.
type PointMut[T any] struct {
	p   *Point[T]
	f   *localFetcher[T]
	got bool
}

// Mutate begins a mutable borrow of p, which must wrap a local (owned)
// fetcher; it panics otherwise, matching the Rust API's
// `get_mut().expect(...)` on a non-exclusive Point.
func Mutate[T any](p *Point[T]) *PointMut[T] {
	lf, ok := p.f.(*localFetcher[T])
	if !ok {
		panic("rainbow: Mutate requires an owned Point (use FromOwned)")
	}
	return &PointMut[T]{p: p, f: lf}
}

// Value returns a pointer to the owned value for in-place editing.
func (m *PointMut[T]) Value() *T {
	m.f.mu.Lock()
	defer m.f.mu.Unlock()
	return &m.f.v
}

// Finalize clears the cached hash so the next Hash() call recomputes it
// from the (possibly mutated) value. Safe to call more than once.
func (m *PointMut[T]) Finalize() {
	if m.got {
		return
	}
	m.f.clearHash()
	m.got = true
}
