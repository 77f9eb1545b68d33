// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairInlineRoundTrip(t *testing.T) {
	p := Pair[Bool, LpBytes]{First: true, Second: LpBytes{Data: []byte("tail")}}
	data := Encode(p)

	got, err := ParsePairInline[Bool, *Bool, LpBytes, *LpBytes](NewInput(nil, data, nil))
	require.NoError(t, err)
	assert.Equal(t, p.First, got.First)
	assert.Equal(t, p.Second.Data, got.Second.Data)
}

func TestPairFullRoundTrip(t *testing.T) {
	p := Pair[Bool, RawBytes]{First: false, Second: RawBytes{Data: []byte("remainder")}}
	data := Encode(p)

	got, err := ParsePairFull[Bool, *Bool, RawBytes, *RawBytes](NewInput(nil, data, nil))
	require.NoError(t, err)
	assert.Equal(t, p.First, got.First)
	assert.Equal(t, p.Second.Data, got.Second.Data)
}
