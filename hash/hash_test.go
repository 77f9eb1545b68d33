// Copyright 2019 Dolthub, Inc.
// Licensed under the Apache License, Version 2.0 (the "License");
//
// This file incorporates work covered by the following copyright and
// permission notice:
//
// Copyright 2016 Attic Labs, Inc. All rights reserved.
// Licensed under the Apache License, version 2.0:
// http://www.apache.org/licenses/LICENSE-2.0

package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func zeros(n int) string { return strings.Repeat("0", n) }

func TestParseError(t *testing.T) {
	assert := assert.New(t)

	assertParseError := func(s string) {
		assert.Panics(func() { Parse(s) })
	}

	assertParseError("foo")
	assertParseError(zeros(StringLen - 1))
	assertParseError(zeros(StringLen + 1))
	assertParseError(zeros(StringLen-1) + "w")
	assertParseError("sha1-" + zeros(StringLen))

	r := Parse(zeros(StringLen))
	assert.NotNil(r)
}

func TestMaybeParse(t *testing.T) {
	assert := assert.New(t)

	parse := func(s string, success bool) {
		r, ok := MaybeParse(s)
		assert.Equal(success, ok, "Expected success=%t for %s", success, s)
		if ok {
			assert.Equal(s, r.String())
		} else {
			assert.Equal(emptyHash, r)
		}
	}

	parse(zeros(StringLen), true)
	parse(zeros(StringLen-1)+"1", true)
	parse("", false)
	parse("adsfasdf", false)
	parse(zeros(StringLen-1)+"w", false)
}

func TestEquals(t *testing.T) {
	assert := assert.New(t)

	r0 := Parse(zeros(StringLen))
	r01 := Parse(zeros(StringLen))
	r1 := Parse(zeros(StringLen-1) + "1")

	assert.Equal(r0, r01)
	assert.NotEqual(r0, r1)
}

func TestStringRoundTrip(t *testing.T) {
	s := zeros(StringLen-1) + "1"
	r := Parse(s)
	assert.Equal(t, s, r.String())
}

func TestOf(t *testing.T) {
	r := Of([]byte("abc"))
	assert.Equal(t, "1ejo2qvou0eft90k2g6ubmn248tg0dgq75gnfaeb847vc7p005dd", r.String())
	assert.Len(t, r.String(), StringLen)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, Hash{}.IsEmpty())
	assert.True(t, Parse(zeros(StringLen)).IsEmpty())
	assert.False(t, Of([]byte("abc")).IsEmpty())
}

func TestLess(t *testing.T) {
	assert := assert.New(t)

	r1 := Parse(zeros(StringLen-1) + "1")
	r2 := Parse(zeros(StringLen-1) + "2")

	assert.False(r1.Less(r1))
	assert.True(r1.Less(r2))
	assert.False(r2.Less(r1))
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	r1 := Parse(zeros(StringLen-1) + "1")
	r2 := Parse(zeros(StringLen-1) + "2")

	assert.True(r1.Compare(r1) == 0)
	assert.True(r2.Compare(r1) > 0)
	assert.True(r1.Compare(r2) < 0)
}

func TestOptionalNiche(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(None, FromOption(Hash{}, false))
	assert.True(None.IsNone())

	h := Of([]byte("abc"))
	o := FromHash(h)
	assert.True(o.IsSome())
	got, ok := o.Get()
	assert.True(ok)
	assert.Equal(h, got)

	o.Clear()
	assert.True(o.IsNone())
}
