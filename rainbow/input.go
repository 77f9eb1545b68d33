// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"context"
	"unicode/utf8"

	"github.com/dolthub/rainbow/hash"
)

// Input is the shared decode cursor. It walks a byte slice left to right,
// and hands out Address values for each Point it crosses, numbering them in
// visitation order to match the topology AcceptPoints would produce when
// encoding the same value.
//
// Extra, the per-fetch environment the spec describes as orthogonal to a
// node's identity, rides along as a context.Context rather than as a type
// parameter: it is never hashed, never serialized, and Go's context package
// is already the idiomatic way to thread request-scoped values through a
// call chain.
type Input struct {
	data     []byte
	pos      int
	resolver Resolver
	nextRef  int
	ctx      context.Context
}

// NewInput builds an Input over data. resolver may be nil for types that
// never contain a Point (decoding a Point with a nil resolver returns an
// Unimplemented error). ctx carries the caller's Extra environment.
func NewInput(ctx context.Context, data []byte, resolver Resolver) *Input {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Input{data: data, resolver: resolver, ctx: ctx}
}

// Context returns the Extra environment for this decode.
func (in *Input) Context() context.Context { return in.ctx }

// Resolver returns the Resolver Points decoded from this Input should fetch
// against.
func (in *Input) Resolver() Resolver { return in.resolver }

// Remaining returns the number of unconsumed bytes.
func (in *Input) Remaining() int { return len(in.data) - in.pos }

// Empty reports whether every byte has been consumed.
func (in *Input) Empty() bool { return in.Remaining() == 0 }

// Take consumes and returns exactly n bytes, or an EndOfInput error.
func (in *Input) Take(n int) ([]byte, error) {
	if n < 0 || in.Remaining() < n {
		return nil, ErrEndOfInput
	}
	b := in.data[in.pos : in.pos+n]
	in.pos += n
	return b, nil
}

// unwind rewinds the cursor by n bytes, for the handful of callers that
// need to peek ahead (e.g. OptionPoint deciding whether its niche pattern
// is present before committing to a Point parse).
func (in *Input) unwind(n int) {
	in.pos -= n
}

// TakeRest consumes and returns every remaining byte.
func (in *Input) TakeRest() []byte {
	b := in.data[in.pos:]
	in.pos = len(in.data)
	return b
}

// Byte consumes and returns a single byte.
func (in *Input) Byte() (byte, error) {
	b, err := in.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// TakeHash consumes one Hash-wide field as a plain value, not a reference:
// it does not advance the Point visitation counter.
func (in *Input) TakeHash() (hash.Hash, error) {
	b, err := in.Take(hash.ByteLen)
	if err != nil {
		return hash.Hash{}, err
	}
	var raw [hash.ByteLen]byte
	copy(raw[:], b)
	return hash.New(raw), nil
}

// TakeAddress consumes one Hash-wide field and returns the Address the next
// Point in visitation order should carry: the index auto-increments so
// sibling Points get distinct, stable slots regardless of how many fields
// precede them.
func (in *Input) TakeAddress() (Address, error) {
	b, err := in.Take(hash.ByteLen)
	if err != nil {
		return Address{}, err
	}
	var raw [hash.ByteLen]byte
	copy(raw[:], b)
	idx := in.nextRef
	in.nextRef++
	return Address{Index: idx, Hash: hash.New(raw)}, nil
}

// TakeLengthPrefixed reads a little-endian u64 length followed by that many
// bytes, erroring if the length overflows int on this platform or the bytes
// aren't available.
func (in *Input) TakeLengthPrefixed() ([]byte, error) {
	n, err := in.TakeUint64LE()
	if err != nil {
		return nil, err
	}
	if n > uint64(^uint(0)>>1) {
		return nil, ErrUnsupportedLength
	}
	return in.Take(int(n))
}

// TakeUint64LE reads a little-endian 8-byte unsigned integer.
func (in *Input) TakeUint64LE() (uint64, error) {
	b, err := in.Take(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 7; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v, nil
}

// TakeUTF8 reads a length-prefixed string and validates it as UTF-8.
func (in *Input) TakeUTF8() (string, error) {
	b, err := in.TakeLengthPrefixed()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrUTF8
	}
	return string(b), nil
}

// TakeZeroTerminated reads bytes up to and excluding the first 0x00 byte,
// consuming the terminator. It errors if no terminator is found.
func (in *Input) TakeZeroTerminated() ([]byte, error) {
	for i := in.pos; i < len(in.data); i++ {
		if in.data[i] == 0 {
			b := in.data[in.pos:i]
			in.pos = i + 1
			return b, nil
		}
	}
	return nil, ErrEndOfInput
}
