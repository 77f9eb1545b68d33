// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import "github.com/dolthub/rainbow/hash"

// OptionHash is Option<Hash>: 32 bytes, all-zero meaning None, reusing
// Hash's own niche with no extra storage.
type OptionHash struct {
	v hash.Optional
}

// SomeHash builds a present OptionHash.
func SomeHash(h hash.Hash) OptionHash { return OptionHash{v: hash.FromHash(h)} }

// NoHash is the absent OptionHash.
var NoHash = OptionHash{v: hash.None}

func (o OptionHash) Get() (hash.Hash, bool) { return o.v.Get() }
func (o OptionHash) IsSome() bool           { return o.v.IsSome() }
func (o OptionHash) IsNone() bool           { return o.v.IsNone() }

func (o OptionHash) ToOutput(out Output)      { out.Write(o.v[:]) }
func (o OptionHash) AcceptPoints(v RefVisitor) {}
func (o OptionHash) Tags() Tags               { return Compose("option", Leaf("hash")) }

func (o *OptionHash) ParseInlineRainbow(in *Input) error {
	h, err := in.TakeHash()
	if err != nil {
		return err
	}
	o.v = hash.FromHash(h)
	return nil
}

// OptionOptionHash is Option<Option<Hash>>, one niche link deeper.
type OptionOptionHash struct {
	v hash.OptionalOptional
}

func (o OptionOptionHash) Get() (OptionHash, bool) {
	inner, ok := o.v.Get()
	return OptionHash{v: inner}, ok
}

func (o OptionOptionHash) ToOutput(out Output)      { out.Write(o.v[:]) }
func (o OptionOptionHash) AcceptPoints(v RefVisitor) {}
func (o OptionOptionHash) Tags() Tags {
	return Compose("option", OptionHash{}.Tags())
}

func (o *OptionOptionHash) ParseInlineRainbow(in *Input) error {
	b, err := in.Take(hash.ByteLen)
	if err != nil {
		return err
	}
	var raw hash.OptionalOptional
	copy(raw[:], b)
	o.v = raw
	return nil
}

// OptionBool is Option<bool>: one byte, 0/1 real values, 2 meaning None.
type OptionBool struct {
	present bool
	value   bool
}

func SomeBool(b bool) OptionBool { return OptionBool{present: true, value: b} }

var NoBool = OptionBool{}

func (o OptionBool) Get() (bool, bool) { return o.value, o.present }

func (o OptionBool) ToOutput(out Output) {
	switch {
	case !o.present:
		out.Write([]byte{2})
	case o.value:
		out.Write([]byte{1})
	default:
		out.Write([]byte{0})
	}
}

func (o OptionBool) AcceptPoints(v RefVisitor) {}
func (o OptionBool) Tags() Tags                { return Compose("option", Leaf("bool")) }

func (o *OptionBool) ParseInlineRainbow(in *Input) error {
	b, err := in.Byte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		*o = OptionBool{present: true, value: false}
	case 1:
		*o = OptionBool{present: true, value: true}
	case 2:
		*o = OptionBool{}
	default:
		return ErrOutOfBounds
	}
	return nil
}

// OptionOptionBool is Option<Option<bool>>: still one byte. Some(None) is
// byte 2 (OptionBool's own none pattern); the new outer None is byte 3.
type OptionOptionBool struct {
	outerPresent bool
	inner        OptionBool
}

func (o OptionOptionBool) Get() (OptionBool, bool) { return o.inner, o.outerPresent }

func (o OptionOptionBool) ToOutput(out Output) {
	if !o.outerPresent {
		out.Write([]byte{3})
		return
	}
	o.inner.ToOutput(out)
}

func (o OptionOptionBool) AcceptPoints(v RefVisitor) {}
func (o OptionOptionBool) Tags() Tags {
	return Compose("option", OptionBool{}.Tags())
}

func (o *OptionOptionBool) ParseInlineRainbow(in *Input) error {
	b, err := in.Byte()
	if err != nil {
		return err
	}
	switch b {
	case 0:
		*o = OptionOptionBool{outerPresent: true, inner: OptionBool{present: true, value: false}}
	case 1:
		*o = OptionOptionBool{outerPresent: true, inner: OptionBool{present: true, value: true}}
	case 2:
		*o = OptionOptionBool{outerPresent: true, inner: OptionBool{}}
	case 3:
		*o = OptionOptionBool{}
	default:
		return ErrOutOfBounds
	}
	return nil
}

// OptionNonZero is Option<NonZero[T]>: the same width as NonZero[T]
// itself, with the all-zero pattern reused for None.
type OptionNonZero[T Unsigned] struct {
	value T
}

func SomeNonZero[T Unsigned](n NonZero[T]) OptionNonZero[T] {
	return OptionNonZero[T]{value: n.Value()}
}

func (o OptionNonZero[T]) Get() (T, bool) {
	if o.value == 0 {
		var zero T
		return zero, false
	}
	return o.value, true
}

func (o OptionNonZero[T]) ToOutput(out Output) {
	LE[T]{Value: o.value}.ToOutput(out)
}

func (o OptionNonZero[T]) AcceptPoints(v RefVisitor) {}

func (o OptionNonZero[T]) Tags() Tags {
	return Compose("option", NonZero[T]{}.Tags())
}

func (o *OptionNonZero[T]) ParseInlineRainbow(in *Input) error {
	var le LE[T]
	if err := le.ParseInlineRainbow(in); err != nil {
		return err
	}
	o.value = le.Value
	return nil
}
