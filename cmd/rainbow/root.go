// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dolthub/rainbow"
	"github.com/dolthub/rainbow/config"
	"github.com/dolthub/rainbow/store"
)

var (
	configPath string
	storeAlias string
	logger     *zap.SugaredLogger
)

// RootCmd is the main command for the rainbow binary.
var RootCmd = &cobra.Command{
	Use:           "rainbow",
	Short:         "inspect and populate a rainbow object store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a rainbow.toml config file (defaults to one in-memory store)")
	RootCmd.PersistentFlags().StringVar(&storeAlias, "store", config.DefaultStoreAlias, "named store from the config file to use")
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(tagsCmd)

	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger = l.Sugar()
}

// openStore resolves the --config/--store flags into a concrete
// store.Store, falling back to a fresh in-memory store when no config
// file is given.
func openStore() (store.Store, error) {
	var cfg *config.Config
	if configPath == "" {
		cfg = config.Default()
	} else {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "rainbow: loading config")
		}
	}
	return config.Open(cfg.DbConfigFor(storeAlias), logger)
}

// storeResolver wraps s as the rainbow.Resolver any nested Point a fetched
// node decodes should continue fetching through.
func storeResolver(s store.Store) rainbow.Resolver {
	return store.NewResolver(s)
}
