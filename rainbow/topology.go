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

// Singular is the type-erased face of a Point[T]: enough to compute a
// node's topology_hash and to fetch raw bytes without knowing T. *Point[T]
// implements it; an OptionPoint[T] hands its present Point to AcceptPoints.
type Singular interface {
	// Hash returns the full_hash this reference points at.
	Hash() hash.Hash
	// FetchBytes resolves the referenced node's raw encoded bytes.
	FetchBytes(ctx context.Context) (ByteNode, error)
	// TryFetchBytesLocal returns the bytes without any fetch if they are
	// already resolvable without I/O (e.g. a local/in-memory Point).
	TryFetchBytesLocal() (ByteNode, bool)
}

// ByteNode is raw bytes paired with the Resolver a nested Point decoded
// from them should continue fetching against.
type ByteNode struct {
	Data     []byte
	Resolver Resolver
}

// RefVisitor is handed every Singular a node directly contains, in the
// fixed order AcceptPoints chooses to walk its fields. That order is the
// node's topology, and must exactly match the order Input.TakeAddress
// numbers Points in during decode.
type RefVisitor interface {
	Visit(s Singular)
}

// Topological is implemented by any type that may contain Points. Scalar
// leaf types implement it as a no-op.
type Topological interface {
	AcceptPoints(v RefVisitor)
}

// TopoVec collects the Singular values a RefVisitor walk produces, in
// order, for topology_hash computation and for building a SingularResolver.
type TopoVec struct {
	refs []Singular
}

func (t *TopoVec) Visit(s Singular) { t.refs = append(t.refs, s) }

// Refs returns the collected references in visitation order.
func (t *TopoVec) Refs() []Singular { return t.refs }

// CollectTopology walks v's Points via AcceptPoints and returns them in
// order.
func CollectTopology(v Topological) []Singular {
	var tv TopoVec
	v.AcceptPoints(&tv)
	return tv.Refs()
}

// TopologyHash hashes the concatenation of every directly-referenced
// node's full_hash, in visitation order. A node with no references hashes
// the empty byte string.
func TopologyHash(v Topological) hash.Hash {
	refs := CollectTopology(v)
	out := NewHashOutput(VariantSha256)
	for _, s := range refs {
		h := s.Hash()
		out.Write(h[:])
	}
	return out.SumHash()
}
