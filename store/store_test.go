// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/rainbow"
)

func TestMemorySaveIdempotent(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	n := rainbow.NewBlob([]byte("hello"))
	hashes := rainbow.HashesFull[rainbow.Node, *rainbow.Node](n)
	data := rainbow.Encode(&n)

	require.NoError(t, m.SaveData(ctx, hashes, data))
	require.NoError(t, m.SaveData(ctx, hashes, data))

	ok, err := m.Contains(ctx, hashes.Full())
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := m.Fetch(ctx, hashes.Full())
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestMemoryFetchMissing(t *testing.T) {
	m := NewMemory()
	_, err := m.Fetch(context.Background(), rainbow.FullHashOfFull[rainbow.Node, *rainbow.Node](rainbow.NewBlob([]byte("nope"))))
	assert.ErrorIs(t, err, rainbow.ErrHashNotFound)
}

func TestFSSaveIdempotentAndSharded(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFS(dir, nil)
	require.NoError(t, err)

	n := rainbow.NewBlob([]byte("filesystem contents"))
	hashes := rainbow.HashesFull[rainbow.Node, *rainbow.Node](n)
	data := rainbow.Encode(&n)
	ctx := context.Background()

	require.NoError(t, fs.SaveData(ctx, hashes, data))
	require.NoError(t, fs.SaveData(ctx, hashes, data))

	ok, err := fs.Contains(ctx, hashes.Full())
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := fs.Fetch(ctx, hashes.Full())
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestFSSaveTopologyConcurrent(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFS(dir, nil)
	require.NoError(t, err)

	var records []Record
	for _, s := range []string{"a", "b", "c", "d"} {
		n := rainbow.NewBlob([]byte(s))
		records = append(records, Record{
			Hashes: rainbow.HashesFull[rainbow.Node, *rainbow.Node](n),
			Data:   rainbow.Encode(&n),
		})
	}

	require.NoError(t, fs.SaveTopology(context.Background(), records))

	for _, r := range records {
		ok, err := fs.Contains(context.Background(), r.Hashes.Full())
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestResolverRoundTripThroughStore(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	leaf := rainbow.NewBlob([]byte("leaf contents"))
	leafHashes := rainbow.HashesFull[rainbow.Node, *rainbow.Node](leaf)
	require.NoError(t, m.SaveData(ctx, leafHashes, rainbow.Encode(&leaf)))

	resolver := NewResolver(m)
	addr := rainbow.Address{Index: 0, Hash: leafHashes.Full()}
	bn, err := resolver.Resolve(ctx, addr)
	require.NoError(t, err)

	got, err := rainbow.DecodeFull[rainbow.Node, *rainbow.Node](bn.Data, bn.Resolver)
	require.NoError(t, err)
	b, ok := got.Blob()
	require.True(t, ok)
	assert.Equal(t, []byte("leaf contents"), b)
}
