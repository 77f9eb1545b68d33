// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"context"
	"sync"

	"github.com/dolthub/rainbow/hash"
)

// fetcher is the strategy behind a Point[T]: how to produce a T, lazily,
// from whatever the Point was built from. The decode closure is captured
// at construction time (where the PT pointer-constraint is available) so
// Point[T]'s own methods never need it.
type fetcher[T any] interface {
	hash() hash.Hash
	fetchBytes(ctx context.Context) (ByteNode, bool, error)
	fetch(ctx context.Context) (T, error)
	tryFetchLocal() (T, bool)
}

// byAddressFetcher is a Point built from an Address and a Resolver: the
// common case for a node freshly decoded from storage, where the pointee
// has not been fetched yet.
type byAddressFetcher[T any] struct {
	addr     Address
	resolver Resolver
	decode   func(data []byte, resolver Resolver) (T, error)
}

func (f *byAddressFetcher[T]) hash() hash.Hash { return f.addr.Hash }

func (f *byAddressFetcher[T]) fetchBytes(ctx context.Context) (ByteNode, bool, error) {
	bn, err := f.resolver.Resolve(ctx, f.addr)
	if err != nil {
		return ByteNode{}, false, err
	}
	return bn, true, nil
}

func (f *byAddressFetcher[T]) fetch(ctx context.Context) (T, error) {
	bn, _, err := f.fetchBytes(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.decode(bn.Data, bn.Resolver)
}

func (f *byAddressFetcher[T]) tryFetchLocal() (T, bool) {
	bn, ok := f.resolver.TryResolveLocal(f.addr)
	if !ok {
		var zero T
		return zero, false
	}
	v, err := f.decode(bn.Data, bn.Resolver)
	if err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// localFetcher is a Point built directly from an owned value (the
// "from_owned" constructor): its hash is computed lazily and cached, and
// fetching it never does I/O.
type localFetcher[T any] struct {
	mu       sync.Mutex
	v        T
	h        hash.Optional
	fullHash func(T) hash.Hash
	toBytes  func(T) ByteNode
}

func (f *localFetcher[T]) hash() hash.Hash {
	f.mu.Lock()
	defer f.mu.Unlock()
	if got, ok := f.h.Get(); ok {
		return got
	}
	h := f.fullHash(f.v)
	f.h = hash.FromHash(h)
	return h
}

func (f *localFetcher[T]) fetchBytes(ctx context.Context) (ByteNode, bool, error) {
	return f.toBytes(f.v), true, nil
}

func (f *localFetcher[T]) fetch(ctx context.Context) (T, error) {
	return f.v, nil
}

func (f *localFetcher[T]) tryFetchLocal() (T, bool) {
	return f.v, true
}

// clearHash invalidates the cached hash after a mutable fetch; the next
// hash() call recomputes it.
func (f *localFetcher[T]) clearHash() {
	f.mu.Lock()
	f.h.Clear()
	f.mu.Unlock()
}

// mappedFetcher is a Point reinterpreted through a declared Equivalent
// relationship: it delegates to an inner fetcher of a structurally
// identical type U and converts on the way out.
type mappedFetcher[T, U any] struct {
	inner fetcher[U]
	toT   func(U) T
	toU   func(T) U
}

func (f *mappedFetcher[T, U]) hash() hash.Hash { return f.inner.hash() }

func (f *mappedFetcher[T, U]) fetchBytes(ctx context.Context) (ByteNode, bool, error) {
	return f.inner.fetchBytes(ctx)
}

func (f *mappedFetcher[T, U]) fetch(ctx context.Context) (T, error) {
	u, err := f.inner.fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return f.toT(u), nil
}

func (f *mappedFetcher[T, U]) tryFetchLocal() (T, bool) {
	u, ok := f.inner.tryFetchLocal()
	if !ok {
		var zero T
		return zero, false
	}
	return f.toT(u), true
}

// Point is a lazy, content-addressed reference to a T: on the wire it is
// exactly one Hash wide, and parsing one never fetches the bytes it names.
type Point[T any] struct {
	f    fetcher[T]
	tags Tags
}

// Hash returns the full_hash this Point refers to, computing and caching
// it for local/owned Points.
func (p *Point[T]) Hash() hash.Hash { return p.f.hash() }

// FetchBytes implements Singular.
func (p *Point[T]) FetchBytes(ctx context.Context) (ByteNode, error) {
	bn, _, err := p.f.fetchBytes(ctx)
	return bn, err
}

// TryFetchBytesLocal implements Singular.
func (p *Point[T]) TryFetchBytesLocal() (ByteNode, bool) {
	if _, ok := p.f.(*localFetcher[T]); !ok {
		return ByteNode{}, false
	}
	bn, ok, err := p.f.fetchBytes(context.Background())
	if err != nil || !ok {
		return ByteNode{}, false
	}
	return bn, true
}

// Fetch resolves the pointed-to value, doing I/O through the Resolver if
// needed.
func (p *Point[T]) Fetch(ctx context.Context) (T, error) {
	return p.f.fetch(ctx)
}

// TryFetchLocal returns the pointed-to value only if no I/O is required.
func (p *Point[T]) TryFetchLocal() (T, bool) {
	return p.f.tryFetchLocal()
}

// AcceptPoints implements Topological: a Point is itself one reference.
func (p *Point[T]) AcceptPoints(v RefVisitor) { v.Visit(p) }

// Tags implements Tagged, delegating to T's own tags (a Point is
// transparent in the schema tree, matching Rust's `TAGS = T::TAGS`).
func (p *Point[T]) Tags() Tags { return p.tags }

// ToOutput writes the 32-byte full_hash this Point refers to.
func (p *Point[T]) ToOutput(out Output) {
	h := p.Hash()
	out.Write(h[:])
}

// FromOwned builds a Point directly from a value, with no Resolver
// involved; its hash is computed lazily on first use.
func FromOwned[T any, PT interface {
	*T
	Codec
}](v T) Point[T] {
	var zero T
	pt := PT(&zero)
	return Point[T]{
		f: &localFetcher[T]{
			v:        v,
			fullHash: func(x T) hash.Hash { return FullHash[T, PT](x) },
			toBytes:  func(x T) ByteNode { return ByteNode{Data: Encode(PT(&x))} },
		},
		tags: pt.Tags(),
	}
}

// FromAddress builds a Point that will fetch through resolver the first
// time it is asked for a value.
func FromAddress[T any, PT interface {
	*T
	Codec
}](addr Address, resolver Resolver) Point[T] {
	var zero T
	pt := PT(&zero)
	return Point[T]{
		f: &byAddressFetcher[T]{
			addr:     addr,
			resolver: resolver,
			decode: func(data []byte, next Resolver) (T, error) {
				return Decode[T, PT](data, next)
			},
		},
		tags: pt.Tags(),
	}
}

// ParsePointInline decodes a Point[T] as one field of a composite: it
// reads exactly one Hash-wide Address off in and builds a by-address
// Point. It never fetches the pointee.
func ParsePointInline[T any, PT interface {
	*T
	Codec
}](in *Input) (Point[T], error) {
	addr, err := in.TakeAddress()
	if err != nil {
		return Point[T]{}, err
	}
	if in.Resolver() == nil {
		return Point[T]{}, Wrap(Unimplemented, errNoResolver)
	}
	return FromAddress[T, PT](addr, in.Resolver()), nil
}

// FromOwnedFull is FromOwned for a T whose top-level encoding is a
// FullCodec rather than a plain Codec (its encoding may consume unbounded
// trailing bytes, e.g. a node whose tail is raw, unlength-prefixed data).
func FromOwnedFull[T any, PT interface {
	*T
	FullCodec
}](v T) Point[T] {
	var zero T
	pt := PT(&zero)
	return Point[T]{
		f: &localFetcher[T]{
			v:        v,
			fullHash: func(x T) hash.Hash { return FullHashOfFull[T, PT](x) },
			toBytes:  func(x T) ByteNode { return ByteNode{Data: Encode(PT(&x))} },
		},
		tags: pt.Tags(),
	}
}

// FromAddressFull is FromAddress for a FullCodec T.
func FromAddressFull[T any, PT interface {
	*T
	FullCodec
}](addr Address, resolver Resolver) Point[T] {
	var zero T
	pt := PT(&zero)
	return Point[T]{
		f: &byAddressFetcher[T]{
			addr:     addr,
			resolver: resolver,
			decode: func(data []byte, next Resolver) (T, error) {
				return DecodeFull[T, PT](data, next)
			},
		},
		tags: pt.Tags(),
	}
}

// ParsePointInlineFull is ParsePointInline for a FullCodec T.
func ParsePointInlineFull[T any, PT interface {
	*T
	FullCodec
}](in *Input) (Point[T], error) {
	addr, err := in.TakeAddress()
	if err != nil {
		return Point[T]{}, err
	}
	if in.Resolver() == nil {
		return Point[T]{}, Wrap(Unimplemented, errNoResolver)
	}
	return FromAddressFull[T, PT](addr, in.Resolver()), nil
}

var errNoResolver = errString("rainbow: Point field decoded with a nil Resolver")

type errString string

func (e errString) Error() string { return string(e) }
