// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

// Package config reads the TOML file describing which stores a CLI
// invocation or a test harness should open, and under what names.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dolthub/rainbow/store"
)

// DefaultStoreAlias is the name used when a config file or CLI invocation
// doesn't name a store explicitly.
const DefaultStoreAlias = "default"

// DbConfig describes one named store: either an in-process map (Kind ==
// "memory", Path ignored) or a sharded filesystem directory (Kind ==
// "fs", Path required).
type DbConfig struct {
	Kind string `toml:"kind"`
	Path string `toml:"path"`
}

// Config is the parsed contents of a rainbow config file: every named
// store it declares.
type Config struct {
	Stores map[string]DbConfig `toml:"stores"`
}

// Default returns the zero-configuration Config: one store named
// DefaultStoreAlias, in memory.
func Default() *Config {
	return &Config{
		Stores: map[string]DbConfig{
			DefaultStoreAlias: {Kind: "memory"},
		},
	}
}

// Load reads and parses the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}
	var c Config
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, errors.Wrapf(err, "config: parsing %s", path)
	}
	if c.Stores == nil {
		c.Stores = map[string]DbConfig{}
	}
	return &c, nil
}

// Save writes c to path as TOML, overwriting any existing file.
func Save(c *Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "config: creating %s", path)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errors.Wrapf(err, "config: writing %s", path)
	}
	return nil
}

// DbConfigFor looks up a named store, falling back to DefaultStoreAlias's
// entry, or a fresh in-memory DbConfig if even that is absent.
func (c *Config) DbConfigFor(alias string) DbConfig {
	if dc, ok := c.Stores[alias]; ok {
		return dc
	}
	if dc, ok := c.Stores[DefaultStoreAlias]; ok {
		return dc
	}
	return DbConfig{Kind: "memory"}
}

// Open builds the store.Store dc describes.
func Open(dc DbConfig, log *zap.SugaredLogger) (store.Store, error) {
	switch dc.Kind {
	case "", "memory":
		return store.NewMemory(), nil
	case "fs":
		if dc.Path == "" {
			return nil, errors.New("config: fs store requires a path")
		}
		return store.NewFS(dc.Path, log)
	default:
		return nil, errors.Errorf("config: unknown store kind %q", dc.Kind)
	}
}
