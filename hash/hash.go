// Copyright 2019 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// This file incorporates work covered by the following copyright and
// permission notice:
//
// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

// Package hash implements the 32-byte content identifier used throughout
// rainbow: Hash is always SHA-256 of some canonical byte encoding. Unlike
// noms' legacy 20-byte SHA-1 digest, every value here is 32 bytes, per the
// spec.
package hash

import (
	"bytes"
	"crypto/sha256"
)

// ByteLen is the number of bytes in a Hash.
const ByteLen = 32

// StringLen is the length of the base32 encoding of a Hash.
const StringLen = 52

// Hash is a 32-byte SHA-256 digest, the content identifier of a node's
// canonical byte encoding.
type Hash [ByteLen]byte

var emptyHash = Hash{}

// Of returns the Hash of data, i.e. SHA-256(data).
func Of(data []byte) Hash {
	return Hash(sha256.Sum256(data))
}

// New constructs a Hash directly from a 32-byte digest. It does not hash its
// input; callers that have raw data should use Of.
func New(digest [ByteLen]byte) Hash {
	return Hash(digest)
}

// Parse decodes s, a base32 string, into a Hash. It panics if s is not a
// validly-formed Hash string, mirroring the teacher's Parse.
func Parse(s string) Hash {
	h, ok := MaybeParse(s)
	if !ok {
		panic("invalid hash: " + s)
	}
	return h
}

// MaybeParse decodes s into a Hash, returning ok=false instead of panicking
// on malformed input.
func MaybeParse(s string) (Hash, bool) {
	if len(s) != StringLen {
		return emptyHash, false
	}
	data, ok := decode(s)
	if !ok {
		return emptyHash, false
	}
	var h Hash
	copy(h[:], data)
	return h, true
}

// String returns the base32 encoding of h.
func (h Hash) String() string {
	return encode(h[:])
}

// IsEmpty reports whether h is the all-zero sentinel hash.
func (h Hash) IsEmpty() bool {
	return h == emptyHash
}

// Less reports whether h sorts before other.
func (h Hash) Less(other Hash) bool {
	return bytes.Compare(h[:], other[:]) < 0
}

// Compare returns -1, 0, or 1 as h is less than, equal to, or greater than
// other.
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h[:], other[:])
}

// IsZero is an alias for IsEmpty, matching Go's usual "IsZero" naming for
// zero-valued comparable types.
func (h Hash) IsZero() bool {
	return h.IsEmpty()
}
