// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/dolthub/rainbow"
	"github.com/dolthub/rainbow/hash"
)

// Resolver adapts a Store into a rainbow.Resolver: a store is a flat,
// global namespace keyed only by full_hash, so an Address's Index (which
// matters for a SingularResolver's fixed in-memory topology) is ignored
// here — only addr.Hash is looked up.
type Resolver struct {
	s Store
}

// NewResolver wraps s as a rainbow.Resolver.
func NewResolver(s Store) *Resolver { return &Resolver{s: s} }

func (r *Resolver) Name() string { return r.s.Name() }

func (r *Resolver) Resolve(ctx context.Context, addr rainbow.Address) (rainbow.ByteNode, error) {
	data, err := r.s.Fetch(ctx, addr.Hash)
	if err != nil {
		return rainbow.ByteNode{}, errors.Wrapf(err, "store: resolve %s", addr.Hash)
	}
	return rainbow.ByteNode{Data: data, Resolver: r}, nil
}

// localPeeker is implemented by stores cheap enough to read without
// context plumbing or I/O latency (an in-process map, or an LRU-fronted
// disk store with a hit). Stores that can't satisfy this, FS included on
// a cache miss, make TryResolveLocal report false and force a real Fetch.
type localPeeker interface {
	peekLocal(h hash.Hash) ([]byte, bool)
}

func (r *Resolver) TryResolveLocal(addr rainbow.Address) (rainbow.ByteNode, bool) {
	p, ok := r.s.(localPeeker)
	if !ok {
		return rainbow.ByteNode{}, false
	}
	data, ok := p.peekLocal(addr.Hash)
	if !ok {
		return rainbow.ByteNode{}, false
	}
	return rainbow.ByteNode{Data: data, Resolver: r}, true
}

var _ rainbow.Resolver = (*Resolver)(nil)
