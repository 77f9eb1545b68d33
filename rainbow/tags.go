// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"reflect"
	"sync"

	"github.com/dolthub/rainbow/hash"
)

// Tag is one node in a type's schema tree: a human-readable label (the Rust
// type name equivalent) plus the tags of any types it is structurally
// composed from. Two types with the same Tag tree are schema-equivalent
// even if their Go names differ, which is what makes Equivalent[T, U]
// sound.
type Tag struct {
	Name     string
	Children []Tags
}

// Tags is the schema descriptor every Codec/FullCodec implementation
// exposes via its Tags() method. It is meant to be a compile-time constant
// per type; since Go has no const-generics to express that, each type
// builds its Tags fresh (cheaply, from a handful of static Tag literals)
// and callers that need the derived schema_hash repeatedly should go
// through SchemaHash, which memoizes per Go type.
type Tags struct {
	Tag Tag
}

// Leaf builds a Tags for a type with no structural children (numerics,
// bool, Hash, ...).
func Leaf(name string) Tags {
	return Tags{Tag: Tag{Name: name}}
}

// Compose builds a Tags for a type structurally built from children, in
// order (tuples, Option, Point, Vec, ...).
func Compose(name string, children ...Tags) Tags {
	return Tags{Tag: Tag{Name: name, Children: children}}
}

// ToOutput writes the canonical serialization of the tag tree: each node
// contributes its name, length-prefixed, followed by its child count and
// each child's serialization, depth first.
func (t Tags) ToOutput(out Output) {
	writeLenPrefixed(out, []byte(t.Tag.Name))
	WriteUint64LE(out, uint64(len(t.Tag.Children)))
	for _, c := range t.Tag.Children {
		c.ToOutput(out)
	}
}

func writeLenPrefixed(out Output, b []byte) {
	WriteUint64LE(out, uint64(len(b)))
	out.Write(b)
}

// Hash returns the schema_hash for this tag tree: SHA256 of its canonical
// serialization.
func (t Tags) Hash() hash.Hash {
	out := NewHashOutput(VariantSha256)
	t.ToOutput(out)
	return out.SumHash()
}

// Tagged is implemented by every encodable type: Tags() must return the
// same value on every call for a given Go type.
type Tagged interface {
	Tags() Tags
}

var schemaHashCache sync.Map // map[reflect.Type]hash.Hash

// SchemaHash returns the memoized schema_hash for T, computed once per Go
// type via its zero value's Tags() method. T must be default-constructible
// (its zero value must be enough to report Tags, which holds for every
// type in this package since Tags never depends on a value's contents).
func SchemaHash[T any, PT interface {
	*T
	Tagged
}]() hash.Hash {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := schemaHashCache.Load(typ); ok {
		return v.(hash.Hash)
	}
	var zero T
	pt := PT(&zero)
	h := pt.Tags().Hash()
	schemaHashCache.Store(typ, h)
	return h
}
