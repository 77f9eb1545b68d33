// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"

	"github.com/dolthub/rainbow/hash"
)

// Output is the sink every encodable type writes its canonical bytes to.
// Types never see the concrete writer: the same ToOutput method is used to
// produce bytes for storage (ByteOutput) and to fold bytes directly into a
// running hash (HashOutput), without an intermediate allocation.
type Output interface {
	Write(p []byte)
	// Tell returns the number of bytes written so far.
	Tell() int
}

// ToOutput is implemented by every value with a canonical byte encoding.
type ToOutput interface {
	ToOutput(out Output)
}

// ByteOutput accumulates a plain byte buffer, used when a node's encoded
// bytes are needed in full (for storage, for bundling, for a FullCodec's
// parse round-trip tests).
type ByteOutput struct {
	buf []byte
}

// NewByteOutput returns an empty ByteOutput with cap pre-reserved.
func NewByteOutput(cap int) *ByteOutput {
	return &ByteOutput{buf: make([]byte, 0, cap)}
}

func (o *ByteOutput) Write(p []byte) { o.buf = append(o.buf, p...) }
func (o *ByteOutput) Tell() int      { return len(o.buf) }

// Bytes returns the accumulated buffer. The caller must not mutate it.
func (o *ByteOutput) Bytes() []byte { return o.buf }

// HashVariant selects the digest algorithm a HashOutput folds bytes into.
// Sha256 is the only variant ever used for full_hash identity; the others
// are available to callers and never participate in content addressing.
type HashVariant int

const (
	VariantSha256 HashVariant = iota
	VariantBlake3
	VariantBlake2b
	VariantXXH3
)

func (v HashVariant) String() string {
	switch v {
	case VariantSha256:
		return "sha256"
	case VariantBlake3:
		return "blake3"
	case VariantBlake2b:
		return "blake2b"
	case VariantXXH3:
		return "xxh3"
	default:
		return "unknown"
	}
}

type digester interface {
	Write(p []byte) (int, error)
	Sum(b []byte) []byte
}

// HashOutput folds written bytes directly into a running digest, without
// retaining them, so computing a node's content_hash never requires holding
// the node's full encoded form in memory at once.
type HashOutput struct {
	variant HashVariant
	d       digester
	n       int
}

// NewHashOutput returns a HashOutput using the given variant. Sha256 is the
// identity variant; nothing in this module uses the others (store.FS keeps
// no checksum sidecar).
func NewHashOutput(variant HashVariant) *HashOutput {
	return &HashOutput{variant: variant, d: newDigester(variant)}
}

func newDigester(variant HashVariant) digester {
	switch variant {
	case VariantBlake3:
		return blake3.New()
	case VariantBlake2b:
		h, err := blake2b.New256(nil)
		if err != nil {
			panic(err)
		}
		return h
	case VariantXXH3:
		return xxh3.New()
	default:
		return sha256.New()
	}
}

func (o *HashOutput) Write(p []byte) {
	o.d.Write(p)
	o.n += len(p)
}

func (o *HashOutput) Tell() int { return o.n }

// SumHash returns the accumulated digest as a Hash. Only meaningful when
// variant is VariantSha256; other variants should use SumBytes.
func (o *HashOutput) SumHash() hash.Hash {
	var out [hash.ByteLen]byte
	copy(out[:], o.d.Sum(nil))
	return hash.New(out)
}

// SumBytes returns the raw accumulated digest, for non-identity variants
// whose output width may differ from hash.ByteLen.
func (o *HashOutput) SumBytes() []byte { return o.d.Sum(nil) }

// WriteUint64LE writes v as 8 little-endian bytes, the width used throughout
// the wire format for lengths and offsets.
func WriteUint64LE(out Output, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	out.Write(buf[:])
}
