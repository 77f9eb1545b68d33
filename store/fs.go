// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dolthub/rainbow"
	"github.com/dolthub/rainbow/hash"
)

// shardWidth is how many leading characters of a hash's base32 string form
// the first directory level, keeping any one directory's entry count
// bounded regardless of how many objects the store eventually holds.
const shardWidth = 2

// defaultCacheSize bounds the in-memory decode/object cache fronting a
// filesystem store's disk reads.
const defaultCacheSize = 4096

// FS is a content-addressed store backed by a two-level sharded directory
// tree: <root>/<base32[0:2]>/<base32[2:]>. Every file is written once and
// never modified, matching a store of immutable, hash-identified nodes.
type FS struct {
	root  string
	id    uuid.UUID
	log   *zap.SugaredLogger
	cache *lru.Cache[hash.Hash, []byte]
}

// NewFS opens (creating if necessary) a filesystem store rooted at dir.
func NewFS(dir string, log *zap.SugaredLogger) (*FS, error) {
	if log == nil {
		l, err := zap.NewProduction()
		if err != nil {
			return nil, errors.Wrap(err, "store: building default logger")
		}
		log = l.Sugar()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "store: creating root %s", dir)
	}
	cache, err := lru.New[hash.Hash, []byte](defaultCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "store: building decode cache")
	}
	id := uuid.New()
	log.Infow("opened filesystem store", "root", dir, "instance", id.String())
	return &FS{root: dir, id: id, log: log, cache: cache}, nil
}

func (f *FS) Name() string { return "fs:" + f.root + ":" + f.id.String() }

func (f *FS) pathFor(h hash.Hash) string {
	s := h.String()
	return filepath.Join(f.root, s[:shardWidth], s[shardWidth:])
}

func (f *FS) SaveData(ctx context.Context, hashes rainbow.ObjectHashes, data []byte) error {
	h := hashes.Full()
	p := f.pathFor(h)
	if _, err := os.Stat(p); err == nil {
		// already saved; SaveData is idempotent and must not re-verify
		// byte-for-byte on every call, matching chunks.ChunkStore's
		// write-once assumption for a given hash.
		f.cache.Add(h, data)
		return nil
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, "store: stat %s", p)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return errors.Wrapf(err, "store: creating shard dir for %s", h)
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "store: writing %s", h)
	}
	if err := os.Rename(tmp, p); err != nil {
		return errors.Wrapf(err, "store: finalizing %s", h)
	}
	f.cache.Add(h, data)
	f.log.Debugw("saved node", "hash", h.String())
	return nil
}

func (f *FS) Contains(ctx context.Context, h hash.Hash) (bool, error) {
	if _, ok := f.cache.Get(h); ok {
		return true, nil
	}
	_, err := os.Stat(f.pathFor(h))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Wrapf(err, "store: stat %s", h)
}

func (f *FS) Fetch(ctx context.Context, h hash.Hash) ([]byte, error) {
	if data, ok := f.cache.Get(h); ok {
		return data, nil
	}
	data, err := os.ReadFile(f.pathFor(h))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, rainbow.ErrHashNotFound
		}
		return nil, errors.Wrapf(err, "store: reading %s", h)
	}
	f.cache.Add(h, data)
	return data, nil
}

func (f *FS) peekLocal(h hash.Hash) ([]byte, bool) {
	return f.cache.Get(h)
}

// Record pairs a node's already-computed hashes with its canonical bytes,
// the unit SaveTopology persists.
type Record struct {
	Hashes rainbow.ObjectHashes
	Data   []byte
}

// SaveTopology saves every record concurrently, fanning the writes out
// across an errgroup since sibling nodes in a topology have no required
// write ordering (only their shared parent needs all of them to succeed
// before it is itself considered durable).
func (f *FS) SaveTopology(ctx context.Context, records []Record) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range records {
		r := r
		g.Go(func() error {
			return f.SaveData(ctx, r.Hashes, r.Data)
		})
	}
	return g.Wait()
}

var _ Store = (*FS)(nil)
