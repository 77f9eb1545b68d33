// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import "github.com/dolthub/rainbow/hash"

// Codec is satisfied by any self-delimiting type: one whose encoding
// either has a known fixed width or carries its own length, so it can be
// decoded as one field among several inside a tuple or struct, not only as
// the last. This covers numerics, bool, Hash, fixed arrays,
// length-prefixed and zero-terminated bytes/strings, the fixed Option
// types, and hand-written structs such as Entry. Point, OptionPoint and
// Pair do not implement it; they are decoded through ParsePointInline,
// ParseOptionPointInline and ParsePairInline/ParsePairFull.
type Codec interface {
	ToOutput
	Topological
	Tagged
	ParseInlineRainbow(in *Input) error
}

// FullCodec is satisfied by a type that may consume every remaining byte
// of an Input rather than a known span: the unbounded raw-bytes tail the
// spec allows as the sole trailing field of a composite, and the type used
// as a whole node's top-level schema. A Codec is not automatically a
// FullCodec; Decode is the top-level entry point for a plain Codec (parse
// inline, then require the input empty).
type FullCodec interface {
	ToOutput
	Topological
	Tagged
	ParseFullRainbow(in *Input) error
}

// ParseInline decodes a Codec value as one field among several: exactly
// its own span is consumed from in, leaving sibling fields available.
func ParseInline[T any, PT interface {
	*T
	Codec
}](in *Input) (T, error) {
	var v T
	pt := PT(&v)
	if err := pt.ParseInlineRainbow(in); err != nil {
		return v, err
	}
	return v, nil
}

// ParseFull decodes a FullCodec value, consuming exactly the bytes it
// reports; callers at the true top level should additionally check
// in.Empty() themselves if they want to enforce that no trailing garbage
// follows (Decode and DecodeFull already do this).
func ParseFull[T any, PT interface {
	*T
	FullCodec
}](in *Input) (T, error) {
	var v T
	pt := PT(&v)
	if err := pt.ParseFullRainbow(in); err != nil {
		return v, err
	}
	return v, nil
}

// Decode parses data as a complete, standalone node whose type is an
// ordinary Codec: it must consume every byte. This is the common entry
// point, used whenever a node's type is self-delimiting (the normal case,
// since most composite types bottom out in length-prefixed fields).
func Decode[T any, PT interface {
	*T
	Codec
}](data []byte, resolver Resolver) (T, error) {
	in := NewInput(nil, data, resolver)
	v, err := ParseInline[T, PT](in)
	if err != nil {
		return v, err
	}
	if !in.Empty() {
		return v, ErrExtraInputLeft
	}
	return v, nil
}

// DecodeFull parses data as a complete, standalone node whose type is a
// FullCodec: the type itself is responsible for consuming every byte (for
// instance because its last field is an unbounded byte tail).
func DecodeFull[T any, PT interface {
	*T
	FullCodec
}](data []byte, resolver Resolver) (T, error) {
	in := NewInput(nil, data, resolver)
	v, err := ParseFull[T, PT](in)
	if err != nil {
		return v, err
	}
	if !in.Empty() {
		return v, ErrExtraInputLeft
	}
	return v, nil
}

// Encode returns the canonical bytes for any ToOutput value.
func Encode(v ToOutput) []byte {
	out := NewByteOutput(64)
	v.ToOutput(out)
	return out.Bytes()
}

// ContentHash hashes exactly the bytes ToOutput writes for v, which for a
// composite type includes the inline (e.g. Hash-width) encoding of its
// Points but never the bytes of the nodes they point at.
func ContentHash(v ToOutput) hash.Hash {
	out := NewHashOutput(VariantSha256)
	v.ToOutput(out)
	return out.SumHash()
}

// Hashes computes the full ObjectHashes triple for a Codec value.
func Hashes[T any, PT interface {
	*T
	Codec
}](v T) ObjectHashes {
	pt := PT(&v)
	return ObjectHashes{
		Schema:   SchemaHash[T, PT](),
		Topology: TopologyHash(pt),
		Content:  ContentHash(pt),
	}
}

// FullHash computes the full_hash of a Codec value: the identity a store
// keys it under.
func FullHash[T any, PT interface {
	*T
	Codec
}](v T) hash.Hash {
	return Hashes[T, PT](v).Full()
}

// HashesFull computes the full ObjectHashes triple for a FullCodec value
// (one whose top-level encoding may consume unbounded trailing bytes).
func HashesFull[T any, PT interface {
	*T
	FullCodec
}](v T) ObjectHashes {
	pt := PT(&v)
	return ObjectHashes{
		Schema:   SchemaHash[T, PT](),
		Topology: TopologyHash(pt),
		Content:  ContentHash(pt),
	}
}

// FullHashOfFull computes the full_hash of a FullCodec value.
func FullHashOfFull[T any, PT interface {
	*T
	FullCodec
}](v T) hash.Hash {
	return HashesFull[T, PT](v).Full()
}
