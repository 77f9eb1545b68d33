// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalOptionalNiche(t *testing.T) {
	assert.Equal(t, OptionalOptional{}, FromOptional(None))
	assert.NotEqual(t, NoneOuter2, OptionalOptional{})

	oo := FromOptional(FromHash(Of([]byte("abc"))))
	inner, ok := oo.Get()
	assert.True(t, ok)
	assert.True(t, inner.IsSome())

	absent := NoneOuter2
	_, ok = absent.Get()
	assert.False(t, ok)

	someNone := FromOptional(None)
	inner, ok = someNone.Get()
	assert.True(t, ok)
	assert.True(t, inner.IsNone())
}

func TestOptionalOptionalOptionalNiche(t *testing.T) {
	assert.NotEqual(t, NoneOuter3, OptionalOptionalOptional{})
	assert.NotEqual(t, NoneOuter3, OptionalOptionalOptional(NoneOuter2))

	ooo := FromOptionalOptional(FromOptional(FromHash(Of([]byte("xyz")))))
	inner, ok := ooo.Get()
	assert.True(t, ok)
	innerInner, ok := inner.Get()
	assert.True(t, ok)
	assert.True(t, innerInner.IsSome())

	_, ok = NoneOuter3.Get()
	assert.False(t, ok)
}
