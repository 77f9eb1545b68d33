// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import "github.com/dolthub/rainbow/hash"

// Bool is bool's Codec realization: encoded as a single byte, 0 or 1, with
// every other byte value rejected on decode. Its niche (any byte >= 2) is
// what Option[Bool] and the nested Option[Option[Bool]] reuse.
type Bool bool

func (b Bool) ToOutput(out Output) {
	if b {
		out.Write([]byte{1})
	} else {
		out.Write([]byte{0})
	}
}

func (b Bool) AcceptPoints(v RefVisitor) {}
func (b Bool) Tags() Tags                { return Leaf("bool") }

func (b *Bool) ParseInlineRainbow(in *Input) error {
	v, err := in.Byte()
	if err != nil {
		return err
	}
	switch v {
	case 0:
		*b = false
	case 1:
		*b = true
	default:
		return ErrOutOfBounds
	}
	return nil
}

// NonZero is a fixed-width unsigned integer that rejects the value zero on
// decode, freeing the all-zero bit pattern as a niche for
// Option[NonZero[T]].
type NonZero[T Unsigned] struct {
	value T
}

// NewNonZero builds a NonZero, panicking if v is zero.
func NewNonZero[T Unsigned](v T) NonZero[T] {
	if v == 0 {
		panic("rainbow: NonZero value is zero")
	}
	return NonZero[T]{value: v}
}

func (n NonZero[T]) Value() T { return n.value }

func (n NonZero[T]) ToOutput(out Output) {
	LE[T]{Value: n.value}.ToOutput(out)
}

func (n NonZero[T]) AcceptPoints(v RefVisitor) {}

func (n NonZero[T]) Tags() Tags {
	return Compose("nonzero", LE[T]{}.Tags())
}

func (n *NonZero[T]) ParseInlineRainbow(in *Input) error {
	var le LE[T]
	if err := le.ParseInlineRainbow(in); err != nil {
		return err
	}
	if le.Value == 0 {
		return ErrZero
	}
	n.value = le.Value
	return nil
}

// niche returns the all-zero byte pattern NonZero[T] never produces,
// available to whichever Option wrapper wants to reuse it.
func (n NonZero[T]) niche() []byte {
	return make([]byte, widthOf[T]())
}

// Bytes32 is a fixed 32-byte array Codec for fixed-width payloads.
type Bytes32 [32]byte

func (b Bytes32) ToOutput(out Output)        { out.Write(b[:]) }
func (b Bytes32) AcceptPoints(v RefVisitor)  {}
func (b Bytes32) Tags() Tags                 { return Leaf("bytes32") }
func (b *Bytes32) ParseInlineRainbow(in *Input) error {
	raw, err := in.Take(32)
	if err != nil {
		return err
	}
	copy(b[:], raw)
	return nil
}

// HashCodec is Hash's Codec realization: a fixed 32-byte field whose
// all-zero pattern is globally reserved (the spec treats the all-zero hash
// as impossible for any real node), which is exactly the niche
// Option[Hash] spends.
type HashCodec struct {
	Hash hash.Hash
}

func (h HashCodec) ToOutput(out Output) {
	b := h.Hash
	out.Write(b[:])
}
func (h HashCodec) AcceptPoints(v RefVisitor) {}
func (h HashCodec) Tags() Tags                { return Leaf("hash") }

func (h *HashCodec) ParseInlineRainbow(in *Input) error {
	v, err := in.TakeHash()
	if err != nil {
		return err
	}
	h.Hash = v
	return nil
}
