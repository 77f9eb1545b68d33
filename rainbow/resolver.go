// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"context"

	"github.com/dolthub/rainbow/hash"
)

// Resolver is the abstraction a Point fetches through: something that can
// turn an Address into the raw bytes of the node it names, plus the
// Resolver that nested Points decoded from those bytes should continue
// fetching against (letting a store swap resolvers at a shard boundary, or
// a test swap in a fixture).
type Resolver interface {
	// Resolve fetches the bytes for addr. The implementations in this
	// module return the bytes they hold for addr without checking them
	// against addr.Hash, and a by-address Point decodes them as returned.
	Resolve(ctx context.Context, addr Address) (ByteNode, error)
	// TryResolveLocal returns bytes without I/O if available, for
	// TryFetchLocal on a by-address Point.
	TryResolveLocal(addr Address) (ByteNode, bool)
	// Name identifies the resolver for diagnostics and log fields.
	Name() string
}

// SingularResolver resolves every Address against one fixed, in-memory
// topology: the Singular values a node's own AcceptPoints walk produced.
// It is the Resolver used for a just-built, not-yet-stored object graph,
// and in tests.
type SingularResolver struct {
	refs []Singular
}

// NewSingularResolver builds a SingularResolver over refs, in the same
// order AcceptPoints produced them.
func NewSingularResolver(refs []Singular) *SingularResolver {
	return &SingularResolver{refs: refs}
}

func (r *SingularResolver) Name() string { return "singular" }

func (r *SingularResolver) Resolve(ctx context.Context, addr Address) (ByteNode, error) {
	s, err := r.lookup(addr)
	if err != nil {
		return ByteNode{}, err
	}
	return s.FetchBytes(ctx)
}

func (r *SingularResolver) TryResolveLocal(addr Address) (ByteNode, bool) {
	s, err := r.lookup(addr)
	if err != nil {
		return ByteNode{}, false
	}
	return s.TryFetchBytesLocal()
}

func (r *SingularResolver) lookup(addr Address) (Singular, error) {
	if addr.Index < 0 || addr.Index >= len(r.refs) {
		return nil, ErrAddressOutOfBounds
	}
	s := r.refs[addr.Index]
	if s.Hash() != addr.Hash {
		return nil, ErrResolutionMismatch
	}
	return s, nil
}

// verifyData checks data hashes to want, wrapping the mismatch as a
// DataMismatch error; Resolver implementations that fetch bytes from an
// untrusted source (disk, network) should call this before trusting them.
func verifyData(data []byte, want hash.Hash) error {
	if hash.Of(data) != want {
		return ErrDataMismatch
	}
	return nil
}
