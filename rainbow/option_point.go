// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import "github.com/dolthub/rainbow/hash"

// OptionPoint is Option<Point<T>>: still exactly one Hash wide on the
// wire, since a real Point's full_hash is never the all-zero pattern (see
// DESIGN.md's discussion of the all-zero-hash invariant), leaving it free
// to mean None.
type OptionPoint[T any] struct {
	some bool
	p    Point[T]
	tags Tags
}

// SomePoint wraps a present Point whose T is an ordinary Codec.
func SomePoint[T any, PT interface {
	*T
	Codec
}](p Point[T]) OptionPoint[T] {
	return OptionPoint[T]{some: true, p: p, tags: TagsOf[T, PT]()}
}

// NoPoint builds an absent OptionPoint for a Codec T.
func NoPoint[T any, PT interface {
	*T
	Codec
}]() OptionPoint[T] {
	return OptionPoint[T]{tags: TagsOf[T, PT]()}
}

// SomePointFull wraps a present Point whose T is a FullCodec (e.g. a node
// type whose top-level encoding has an unbounded tail).
func SomePointFull[T any, PT interface {
	*T
	FullCodec
}](p Point[T]) OptionPoint[T] {
	return OptionPoint[T]{some: true, p: p, tags: TagsOf[T, PT]()}
}

// NoPointFull builds an absent OptionPoint for a FullCodec T.
func NoPointFull[T any, PT interface {
	*T
	FullCodec
}]() OptionPoint[T] {
	return OptionPoint[T]{tags: TagsOf[T, PT]()}
}

// Get returns the wrapped Point and true, or (zero, false) if absent.
func (o OptionPoint[T]) Get() (Point[T], bool) { return o.p, o.some }

func (o OptionPoint[T]) ToOutput(out Output) {
	if !o.some {
		var zero hash.Hash
		out.Write(zero[:])
		return
	}
	o.p.ToOutput(out)
}

func (o OptionPoint[T]) AcceptPoints(v RefVisitor) {
	if o.some {
		o.p.AcceptPoints(v)
	}
}

func (o OptionPoint[T]) Tags() Tags {
	return Compose("option", o.tags)
}

// ParseOptionPointInline decodes an OptionPoint[T] as one field of a
// composite.
func ParseOptionPointInline[T any, PT interface {
	*T
	Codec
}](in *Input) (OptionPoint[T], error) {
	h, err := peekHash(in)
	if err != nil {
		return OptionPoint[T]{}, err
	}
	if h.IsEmpty() {
		if _, err := in.Take(hash.ByteLen); err != nil {
			return OptionPoint[T]{}, err
		}
		return NoPoint[T, PT](), nil
	}
	p, err := ParsePointInline[T, PT](in)
	if err != nil {
		return OptionPoint[T]{}, err
	}
	return SomePoint[T, PT](p), nil
}

// ParseOptionPointInlineFull is ParseOptionPointInline for a FullCodec T.
func ParseOptionPointInlineFull[T any, PT interface {
	*T
	FullCodec
}](in *Input) (OptionPoint[T], error) {
	h, err := peekHash(in)
	if err != nil {
		return OptionPoint[T]{}, err
	}
	if h.IsEmpty() {
		if _, err := in.Take(hash.ByteLen); err != nil {
			return OptionPoint[T]{}, err
		}
		return NoPointFull[T, PT](), nil
	}
	p, err := ParsePointInlineFull[T, PT](in)
	if err != nil {
		return OptionPoint[T]{}, err
	}
	return SomePointFull[T, PT](p), nil
}

func peekHash(in *Input) (hash.Hash, error) {
	b, err := in.Take(hash.ByteLen)
	if err != nil {
		return hash.Hash{}, err
	}
	var raw [hash.ByteLen]byte
	copy(raw[:], b)
	in.unwind(hash.ByteLen)
	return hash.New(raw), nil
}
