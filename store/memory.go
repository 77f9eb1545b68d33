// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dolthub/rainbow"
	"github.com/dolthub/rainbow/hash"
)

// Memory is an in-process, map-backed Store: the default for tests and the
// store the CLI opens when no --config file is given. It never touches
// disk and is safe for concurrent use.
type Memory struct {
	id uuid.UUID

	mu   sync.RWMutex
	data map[hash.Hash][]byte
}

// NewMemory builds an empty Memory store, stamped with a fresh instance id
// for log correlation across a process's lifetime.
func NewMemory() *Memory {
	return &Memory{
		id:   uuid.New(),
		data: map[hash.Hash][]byte{},
	}
}

func (m *Memory) Name() string { return "memory:" + m.id.String() }

func (m *Memory) SaveData(ctx context.Context, hashes rainbow.ObjectHashes, data []byte) error {
	h := hashes.Full()
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.data[h]; ok {
		if string(existing) != string(data) {
			return rainbow.Wrap(rainbow.DataMismatch, errDuplicateHashDifferentBytes)
		}
		return nil
	}
	m.data[h] = data
	return nil
}

func (m *Memory) Contains(ctx context.Context, h hash.Hash) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[h]
	return ok, nil
}

func (m *Memory) Fetch(ctx context.Context, h hash.Hash) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[h]
	if !ok {
		return nil, rainbow.ErrHashNotFound
	}
	return data, nil
}

func (m *Memory) peekLocal(h hash.Hash) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.data[h]
	return data, ok
}

type errString string

func (e errString) Error() string { return string(e) }

var errDuplicateHashDifferentBytes = errString("store: same hash saved with different bytes")
