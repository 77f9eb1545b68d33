// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	c := &Config{Stores: map[string]DbConfig{
		DefaultStoreAlias: {Kind: "fs", Path: "/var/rainbow/data"},
		"scratch":         {Kind: "memory"},
	}}

	path := filepath.Join(t.TempDir(), "rainbow.toml")
	require.NoError(t, Save(c, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c.Stores[DefaultStoreAlias], got.Stores[DefaultStoreAlias])
	assert.Equal(t, c.Stores["scratch"], got.Stores["scratch"])
}

func TestDbConfigForFallsBackToDefault(t *testing.T) {
	c := &Config{Stores: map[string]DbConfig{
		DefaultStoreAlias: {Kind: "memory"},
	}}
	assert.Equal(t, DbConfig{Kind: "memory"}, c.DbConfigFor("nonexistent"))
}

func TestDbConfigForMissingEntirely(t *testing.T) {
	c := &Config{}
	assert.Equal(t, DbConfig{Kind: "memory"}, c.DbConfigFor("anything"))
}

func TestOpenUnknownKind(t *testing.T) {
	_, err := Open(DbConfig{Kind: "s3"}, nil)
	assert.Error(t, err)
}

func TestOpenMemory(t *testing.T) {
	s, err := Open(DbConfig{Kind: "memory"}, nil)
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestOpenFSRequiresPath(t *testing.T) {
	_, err := Open(DbConfig{Kind: "fs"}, nil)
	assert.Error(t, err)
}
