// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

// Pair composes two Codec fields into one Codec: A is parsed inline, then
// B is parsed inline immediately after. Composite types with more than two
// fields nest Pair (Pair[A, Pair[B, C]]), the same way bigger tuples are
// just nested pairs in the source this is ported from.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) ToOutput(out Output) {
	anyToOutput(out, p.First)
	anyToOutput(out, p.Second)
}

func (p Pair[A, B]) AcceptPoints(v RefVisitor) {
	anyAcceptPoints(v, p.First)
	anyAcceptPoints(v, p.Second)
}

func anyToOutput(out Output, v any) {
	if t, ok := v.(ToOutput); ok {
		t.ToOutput(out)
		return
	}
	panic("rainbow: Pair field does not implement ToOutput")
}

func anyAcceptPoints(v RefVisitor, f any) {
	if t, ok := f.(Topological); ok {
		t.AcceptPoints(v)
		return
	}
	panic("rainbow: Pair field does not implement Topological")
}

// ParsePairInline decodes a Pair[A, B] where both fields are Codec values
// parsed inline, one after another. Used for composites none of whose
// fields is an unbounded tail.
func ParsePairInline[A any, PA interface {
	*A
	Codec
}, B any, PB interface {
	*B
	Codec
}](in *Input) (Pair[A, B], error) {
	a, err := ParseInline[A, PA](in)
	if err != nil {
		return Pair[A, B]{}, err
	}
	b, err := ParseInline[B, PB](in)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{First: a, Second: b}, nil
}

// ParsePairFull decodes a Pair[A, B] where A is parsed inline and B, the last
// field, is parsed full (it may consume every remaining byte).
func ParsePairFull[A any, PA interface {
	*A
	Codec
}, B any, PB interface {
	*B
	FullCodec
}](in *Input) (Pair[A, B], error) {
	a, err := ParseInline[A, PA](in)
	if err != nil {
		return Pair[A, B]{}, err
	}
	b, err := ParseFull[B, PB](in)
	if err != nil {
		return Pair[A, B]{}, err
	}
	return Pair[A, B]{First: a, Second: b}, nil
}

// TagsOf computes the Tags tree for a standalone Codec type T, for use when
// building a Compose(...) schema tree that includes T as a child (e.g. a
// hand-written struct's Tags method describing a Pair[A, B] field).
func TagsOf[T any, PT interface {
	*T
	Tagged
}]() Tags {
	var zero T
	return PT(&zero).Tags()
}
