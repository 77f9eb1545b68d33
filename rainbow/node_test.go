// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package rainbow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/rainbow/hash"
)

func TestBlobRoundTrip(t *testing.T) {
	n := NewBlob([]byte("hello world"))
	data := Encode(&n)

	got, err := DecodeFull[Node, *Node](data, nil)
	require.NoError(t, err)
	b, ok := got.Blob()
	require.True(t, ok)
	assert.Equal(t, []byte("hello world"), b)
}

func TestDirectoryRoundTripThroughPoints(t *testing.T) {
	leaf := NewBlob([]byte("leaf contents"))
	leafPoint := FromOwnedFull[Node, *Node](leaf)

	dir := NewDirectory([]Entry{
		{Name: LpString{Data: "leaf.txt"}, Child: leafPoint},
	})
	dirData := Encode(&dir)

	refs := CollectTopology(&dir)
	require.Len(t, refs, 1)
	resolver := NewSingularResolver(refs)

	got, err := DecodeFull[Node, *Node](dirData, resolver)
	require.NoError(t, err)
	entries, ok := got.Directory()
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "leaf.txt", entries[0].Name.Data)

	child, err := entries[0].Child.Fetch(context.Background())
	require.NoError(t, err)
	b, ok := child.Blob()
	require.True(t, ok)
	assert.Equal(t, []byte("leaf contents"), b)
}

func TestFullHashDeterministic(t *testing.T) {
	n1 := NewBlob([]byte("same bytes"))
	n2 := NewBlob([]byte("same bytes"))
	assert.Equal(t, FullHashOfFull[Node, *Node](n1), FullHashOfFull[Node, *Node](n2))

	n3 := NewBlob([]byte("different"))
	assert.NotEqual(t, FullHashOfFull[Node, *Node](n1), FullHashOfFull[Node, *Node](n3))
}

func TestTopologyHashEmptyForLeaf(t *testing.T) {
	n := NewBlob([]byte("x"))
	h := TopologyHash(&n)
	assert.Equal(t, hash.Of(nil), h)
}

func TestSchemaHashStableAcrossValues(t *testing.T) {
	n1 := NewBlob([]byte("a"))
	n2 := NewBlob([]byte("bbbb"))
	assert.Equal(t, SchemaHash[Node, *Node](), SchemaHash[Node, *Node]())
	assert.Equal(t, SchemaHash[Node, *Node](), n1.Tags().Hash())
	assert.Equal(t, SchemaHash[Node, *Node](), n2.Tags().Hash())
}

func TestExtraInputLeftRejected(t *testing.T) {
	lp := LpBytes{Data: []byte("ok")}
	data := Encode(&lp)
	data = append(data, 0xFF)
	_, err := Decode[LpBytes, *LpBytes](data, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtraInputLeft)
}

func TestDiscriminantOverflow(t *testing.T) {
	data := []byte{2}
	_, err := DecodeFull[Node, *Node](data, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDiscriminantOverflow)
}
