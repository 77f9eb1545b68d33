// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

// Package bundle implements the flattened blob format one self-contained
// object graph can be written to and read back from in a single byte
// string: a sequence of (length, payload, offset count, offsets) records,
// every integer a little-endian u64, root first, every other record
// reachable from an earlier record's offset list.
package bundle

import (
	"context"
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/dolthub/rainbow"
	"github.com/dolthub/rainbow/hash"
)

// Bundle is a decoded blob: every record's raw payload and its offset
// list, indexed by position. Record 0 is always the root.
type Bundle struct {
	payloads [][]byte
	offsets  [][]uint64
}

// Root returns the root record's bytes.
func (b *Bundle) Root() []byte { return b.payloads[0] }

// Record returns the payload bytes at index i.
func (b *Bundle) Record(i int) ([]byte, error) {
	if i < 0 || i >= len(b.payloads) {
		return nil, rainbow.ErrAddressOutOfBounds
	}
	return b.payloads[i], nil
}

// Offsets returns the child record indices record i points at, in
// topology order.
func (b *Bundle) Offsets(i int) ([]uint64, error) {
	if i < 0 || i >= len(b.offsets) {
		return nil, rainbow.ErrAddressOutOfBounds
	}
	return b.offsets[i], nil
}

// Len returns the number of records in the bundle.
func (b *Bundle) Len() int { return len(b.payloads) }

// Write flattens root and everything it transitively references into one
// blob. T must be the FullCodec node type the graph is built from (every
// reference in this package's object graphs is homogeneous: a node's
// Points refer to other nodes of the same Go type, exactly like Node in
// the core package). Records are deduplicated by full_hash: a node shared
// by two parents appears once.
func Write[T any, PT interface {
	*T
	rainbow.FullCodec
}](root rainbow.Point[T]) ([]byte, error) {
	ctx := context.Background()
	type record struct {
		payload []byte
		offsets []uint64
	}
	records := map[hash.Hash]*record{}
	var order []hash.Hash

	var walk func(p rainbow.Point[T]) error
	walk = func(p rainbow.Point[T]) error {
		h := p.Hash()
		if _, ok := records[h]; ok {
			return nil
		}
		bn, err := p.FetchBytes(ctx)
		if err != nil {
			return errors.Wrapf(err, "bundle: fetch %s", h)
		}
		r := &record{payload: bn.Data}
		records[h] = r
		order = append(order, h)

		// Discover children from the live value behind p rather than
		// re-decoding bn.Data: a freshly constructed ByteNode carries no
		// resolver of its own, but p.Fetch returns the same in-memory
		// value (or resolves it through whatever resolver p already
		// holds), which is what CollectTopology needs to walk.
		v, err := p.Fetch(ctx)
		if err != nil {
			return errors.Wrapf(err, "bundle: fetch value %s", h)
		}
		for _, s := range rainbow.CollectTopology(PT(&v)) {
			child, ok := s.(*rainbow.Point[T])
			if !ok {
				return errors.Errorf("bundle: non-homogeneous reference under %s", h)
			}
			if err := walk(*child); err != nil {
				return err
			}
			r.offsets = append(r.offsets, uint64(indexOf(order, child.Hash())))
		}
		return nil
	}

	pr := root
	if err := walk(pr); err != nil {
		return nil, err
	}

	var out []byte
	for _, h := range order {
		r := records[h]
		out = appendUint64LE(out, uint64(len(r.payload)))
		out = append(out, r.payload...)
		out = appendUint64LE(out, uint64(len(r.offsets)))
		for _, off := range r.offsets {
			out = appendUint64LE(out, off)
		}
	}
	return out, nil
}

func indexOf(order []hash.Hash, h hash.Hash) int {
	for i, oh := range order {
		if oh == h {
			return i
		}
	}
	return -1
}

// Read parses data back into a Bundle, checking every record's offset
// list points at a record index that exists. It does not decode records
// as any particular T; VerifyFull does that, with full integrity
// checking.
func Read(data []byte) (*Bundle, error) {
	var payloads [][]byte
	var offsetLists [][]uint64
	pos := 0
	for pos < len(data) {
		n, newPos, err := readUint64LE(data, pos)
		if err != nil {
			return nil, err
		}
		pos = newPos
		if uint64(len(data)-pos) < n {
			return nil, rainbow.ErrEndOfInput
		}
		payload := data[pos : pos+int(n)]
		pos += int(n)

		offsetCount, newPos, err := readUint64LE(data, pos)
		if err != nil {
			return nil, err
		}
		pos = newPos
		offsets := make([]uint64, offsetCount)
		for i := range offsets {
			v, np, err := readUint64LE(data, pos)
			if err != nil {
				return nil, err
			}
			offsets[i] = v
			pos = np
		}
		payloads = append(payloads, payload)
		offsetLists = append(offsetLists, offsets)
	}
	if len(payloads) == 0 {
		return nil, rainbow.ErrEndOfInput
	}
	for i, offs := range offsetLists {
		for _, off := range offs {
			if off >= uint64(len(payloads)) {
				return nil, errors.Errorf("bundle: record %d points at out-of-range offset %d", i, off)
			}
		}
	}
	return &Bundle{payloads: payloads, offsets: offsetLists}, nil
}

// VerifyFull decodes every record in b as T and confirms each record's
// full_hash matches what its parent's offset list implied, fanning the
// per-record decodes out across an errgroup since sibling records have no
// required ordering, per the no-ordering-promised rule for sibling
// fetches. Decoding a record only needs a Resolver to satisfy a Point
// field's non-nil check: a Point's own Hash() reads straight out of the
// address bytes it was parsed from, so no record ever actually fetches
// through stubResolver during this walk.
func VerifyFull[T any, PT interface {
	*T
	rainbow.FullCodec
}](b *Bundle) error {
	values := make([]T, len(b.payloads))
	g, _ := errgroup.WithContext(context.Background())
	for i := range b.payloads {
		i := i
		g.Go(func() error {
			v, err := rainbow.DecodeFull[T, PT](b.payloads[i], stubResolver{})
			if err != nil {
				return errors.Wrapf(err, "bundle: record %d", i)
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, offs := range b.offsets {
		refs := rainbow.CollectTopology(PT(&values[i]))
		if len(refs) != len(offs) {
			return errors.Errorf("bundle: record %d has %d references but %d offsets", i, len(refs), len(offs))
		}
		for j, s := range refs {
			childIdx := int(offs[j])
			want := s.Hash()
			got := rainbow.FullHashOfFull[T, PT](values[childIdx])
			if got != want {
				return errors.Errorf("bundle: record %d reference %d names hash %s but record %d hashes to %s", i, j, want, childIdx, got)
			}
		}
	}
	return nil
}

// stubResolver satisfies the non-nil Resolver a Point field requires at
// decode time without actually being able to fetch anything; decoding a
// record to compute its own full_hash never needs to resolve a child's
// bytes, only the address bytes already inline in the record.
type stubResolver struct{}

func (stubResolver) Name() string { return "bundle-verify-stub" }

func (stubResolver) Resolve(ctx context.Context, addr rainbow.Address) (rainbow.ByteNode, error) {
	return rainbow.ByteNode{}, errors.New("bundle: unexpected fetch through verify stub resolver")
}

func (stubResolver) TryResolveLocal(addr rainbow.Address) (rainbow.ByteNode, bool) {
	return rainbow.ByteNode{}, false
}

func appendUint64LE(b []byte, v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return append(b, buf[:]...)
}

func readUint64LE(data []byte, pos int) (uint64, int, error) {
	if len(data)-pos < 8 {
		return 0, pos, rainbow.ErrEndOfInput
	}
	return binary.LittleEndian.Uint64(data[pos : pos+8]), pos + 8, nil
}
