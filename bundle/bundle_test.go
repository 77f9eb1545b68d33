// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/rainbow"
)

func TestWriteReadRoundTrip(t *testing.T) {
	leaf := rainbow.FromOwnedFull[rainbow.Node, *rainbow.Node](rainbow.NewBlob([]byte("leaf contents")))

	sub := rainbow.NewDirectory([]rainbow.Entry{
		{Name: rainbow.LpString{Data: "leaf.txt"}, Child: leaf},
	})
	subPoint := rainbow.FromOwnedFull[rainbow.Node, *rainbow.Node](sub)

	root := rainbow.NewDirectory([]rainbow.Entry{
		{Name: rainbow.LpString{Data: "sub"}, Child: subPoint},
		{Name: rainbow.LpString{Data: "again.txt"}, Child: leaf},
	})
	rootPoint := rainbow.FromOwnedFull[rainbow.Node, *rainbow.Node](root)
	wantHash := rootPoint.Hash()

	data, err := Write[rainbow.Node, *rainbow.Node](rootPoint)
	require.NoError(t, err)

	b, err := Read(data)
	require.NoError(t, err)

	// leaf is referenced twice but must appear once: root, sub, leaf, that's
	// it, since "again.txt" reuses the already-written leaf record.
	assert.Equal(t, 3, b.Len())

	got, err := rainbow.DecodeFull[rainbow.Node, *rainbow.Node](b.Root(), stubResolver{})
	require.NoError(t, err)
	entries, ok := got.Directory()
	require.True(t, ok)
	require.Len(t, entries, 2)

	gotHash := rainbow.FullHashOfFull[rainbow.Node, *rainbow.Node](got)
	assert.Equal(t, wantHash, gotHash)

	require.NoError(t, VerifyFull[rainbow.Node, *rainbow.Node](b))
}

func TestWriteReadResolvesNestedChildren(t *testing.T) {
	leaf := rainbow.FromOwnedFull[rainbow.Node, *rainbow.Node](rainbow.NewBlob([]byte("x")))
	dir := rainbow.NewDirectory([]rainbow.Entry{
		{Name: rainbow.LpString{Data: "a"}, Child: leaf},
	})
	root := rainbow.FromOwnedFull[rainbow.Node, *rainbow.Node](dir)

	data, err := Write[rainbow.Node, *rainbow.Node](root)
	require.NoError(t, err)

	b, err := Read(data)
	require.NoError(t, err)
	require.Equal(t, 2, b.Len())

	offsets, err := b.Offsets(0)
	require.NoError(t, err)
	require.Len(t, offsets, 1)
	assert.EqualValues(t, 1, offsets[0])

	child, err := b.Record(int(offsets[0]))
	require.NoError(t, err)
	n, err := rainbow.DecodeFull[rainbow.Node, *rainbow.Node](child, stubResolver{})
	require.NoError(t, err)
	bytes, ok := n.Blob()
	require.True(t, ok)
	assert.Equal(t, []byte("x"), bytes)
}

func TestReadRejectsOutOfRangeOffset(t *testing.T) {
	leaf := rainbow.FromOwnedFull[rainbow.Node, *rainbow.Node](rainbow.NewBlob([]byte("x")))
	data, err := Write[rainbow.Node, *rainbow.Node](leaf)
	require.NoError(t, err)

	// corrupt: rewrite the single record's offset count from 0 to 1 and
	// supply offset 5, which names a record the bundle doesn't have.
	corrupt := append([]byte{}, data[:len(data)-8]...)
	corrupt = appendUint64LE(corrupt, 1)
	corrupt = appendUint64LE(corrupt, 5)

	_, err = Read(corrupt)
	assert.Error(t, err)
}

func TestVerifyFullDetectsCorruption(t *testing.T) {
	leaf := rainbow.FromOwnedFull[rainbow.Node, *rainbow.Node](rainbow.NewBlob([]byte("ok")))
	data, err := Write[rainbow.Node, *rainbow.Node](leaf)
	require.NoError(t, err)

	b, err := Read(data)
	require.NoError(t, err)
	require.NoError(t, VerifyFull[rainbow.Node, *rainbow.Node](b))

	b.payloads[0] = []byte{0xFF}
	assert.Error(t, VerifyFull[rainbow.Node, *rainbow.Node](b))
}

func TestWriteFetchErrorPropagates(t *testing.T) {
	// A Point built from_address with a resolver that has nothing
	// registered fails to fetch, and Write must surface that error rather
	// than silently producing a truncated bundle.
	resolver := rainbow.NewSingularResolver(nil)
	missing := rainbow.FromAddressFull[rainbow.Node, *rainbow.Node](
		rainbow.Address{Index: 0, Hash: rainbow.FullHashOfFull[rainbow.Node, *rainbow.Node](rainbow.NewBlob([]byte("gone")))},
		resolver,
	)

	_, err := Write[rainbow.Node, *rainbow.Node](missing)
	assert.Error(t, err)
}

