// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"github.com/dolthub/rainbow/d"
	"github.com/dolthub/rainbow/hash"
)

// Address names one reference slot inside an encoded node: Index is the
// position of the slot in the node's topology (the order AcceptPoints
// visited it in), Hash is the full_hash the slot is expected to resolve to.
// A Resolver is handed an Address, never a bare Hash, so it can reject a
// request whose index no longer matches the topology it holds.
type Address struct {
	Index int
	Hash  hash.Hash
}

// ObjectHashes bundles the three hash layers computed for a node plus the
// full_hash derived from them. Schema and Topology are independent of the
// node's own content bytes; Content only covers the bytes
// ToOutput(ByteOutput) writes, not nested nodes reached through Point
// references.
type ObjectHashes struct {
	Schema   hash.Hash
	Topology hash.Hash
	Content  hash.Hash
}

// Full combines the three layers into the node's full_hash, per
// full_hash = SHA256(schema_hash || topology_hash || content_hash).
func (o ObjectHashes) Full() hash.Hash {
	var buf [hash.ByteLen * 3]byte
	copy(buf[0:], o.Schema[:])
	copy(buf[hash.ByteLen:], o.Topology[:])
	copy(buf[hash.ByteLen*2:], o.Content[:])
	full := hash.Of(buf[:])
	d.PanicIfTrue(full.IsEmpty(), "rainbow: full_hash collided with the all-zero niche sentinel")
	return full
}
