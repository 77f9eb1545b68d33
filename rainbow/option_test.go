// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/rainbow/hash"
)

func TestOptionHashNoneIsAllZero(t *testing.T) {
	none := NoHash
	data := Encode(none)
	assert.True(t, bytes.Equal(make([]byte, hash.ByteLen), data))

	h := hash.Of([]byte("payload"))
	some := SomeHash(h)
	data = Encode(some)
	assert.Equal(t, h[:], data)

	var back OptionHash
	in := NewInput(nil, data, nil)
	require.NoError(t, back.ParseInlineRainbow(in))
	got, ok := back.Get()
	require.True(t, ok)
	assert.Equal(t, h, got)
}

func TestOptionOptionHashNiche(t *testing.T) {
	outerNone := OptionOptionHash{v: hash.NoneOuter2}
	data := Encode(outerNone)
	want := make([]byte, hash.ByteLen)
	want[hash.ByteLen-1] = 1
	assert.Equal(t, want, data)

	var backOuterNone OptionOptionHash
	require.NoError(t, backOuterNone.ParseInlineRainbow(NewInput(nil, data, nil)))
	_, ok := backOuterNone.Get()
	assert.False(t, ok)

	someNone := OptionOptionHash{v: hash.FromOptional(hash.None)}
	data = Encode(someNone)
	assert.Equal(t, make([]byte, hash.ByteLen), data)

	var backSomeNone OptionOptionHash
	require.NoError(t, backSomeNone.ParseInlineRainbow(NewInput(nil, data, nil)))
	inner, ok := backSomeNone.Get()
	require.True(t, ok)
	assert.True(t, inner.IsNone())
}

func TestOptionBoolEncoding(t *testing.T) {
	assert.Equal(t, []byte{0}, Encode(SomeBool(false)))
	assert.Equal(t, []byte{1}, Encode(SomeBool(true)))
	assert.Equal(t, []byte{2}, Encode(NoBool))
}

func TestOptionOptionBoolEncoding(t *testing.T) {
	some := OptionOptionBool{outerPresent: true, inner: SomeBool(true)}
	assert.Equal(t, []byte{1}, Encode(some))

	someNone := OptionOptionBool{outerPresent: true, inner: NoBool}
	assert.Equal(t, []byte{2}, Encode(someNone))

	outerNone := OptionOptionBool{}
	assert.Equal(t, []byte{3}, Encode(outerNone))
}

func TestOptionNonZeroU8(t *testing.T) {
	some := SomeNonZero(NewNonZero[uint8](5))
	data := Encode(some)
	assert.Equal(t, []byte{5}, data)

	var none OptionNonZero[uint8]
	data = Encode(none)
	assert.Equal(t, []byte{0}, data)
	_, ok := none.Get()
	assert.False(t, ok)
}

func TestOptionPointNiche(t *testing.T) {
	none := NoPointFull[Node, *Node]()
	data := Encode(none)
	assert.Equal(t, make([]byte, hash.ByteLen), data)

	blob := NewBlob([]byte("pointed"))
	p := FromOwnedFull[Node, *Node](blob)
	some := SomePointFull[Node, *Node](p)
	data = Encode(some)
	h := FullHashOfFull[Node, *Node](blob)
	assert.Equal(t, h[:], data)
}
