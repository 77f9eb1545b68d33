// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

// Package store implements concrete save-side collaborators for rainbow
// nodes: something a Resolver can be built on top of, and something
// callers write newly-constructed nodes into. A Store never interprets a
// node's schema; it only ever moves bytes keyed by full_hash.
package store

import (
	"context"

	"github.com/dolthub/rainbow"
	"github.com/dolthub/rainbow/hash"
)

// Store is the save-side half of content addressing: given a node's
// already-computed hashes and its canonical bytes, persist them keyed by
// full_hash. SaveData is idempotent; saving the same (hashes, data) twice
// must leave Fetch/Contains observing exactly the same thing as saving it
// once.
type Store interface {
	// SaveData persists data under hashes.Full(). Implementations may
	// assume the caller has already verified hash.Of(data)-derived
	// integrity at a higher layer; SaveData itself only writes.
	SaveData(ctx context.Context, hashes rainbow.ObjectHashes, data []byte) error

	// Contains reports whether h has previously been saved.
	Contains(ctx context.Context, h hash.Hash) (bool, error)

	// Fetch returns the bytes saved under h, or ErrHashNotFound.
	Fetch(ctx context.Context, h hash.Hash) ([]byte, error)

	// Name identifies the store instance, for logging and diagnostics.
	Name() string
}
