// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dolthub/rainbow"
)

var putCmd = &cobra.Command{
	Use:   "put <file>",
	Short: "save a file's contents as a blob node, printing its full_hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrapf(err, "rainbow: reading %s", args[0])
		}

		s, err := openStore()
		if err != nil {
			return err
		}

		node := rainbow.NewBlob(data)
		hashes := rainbow.HashesFull[rainbow.Node, *rainbow.Node](node)
		encoded := rainbow.Encode(&node)

		if err := s.SaveData(context.Background(), hashes, encoded); err != nil {
			return errors.Wrap(err, "rainbow: saving")
		}

		fmt.Fprintln(cmd.OutOrStdout(), hashes.Full().String())
		return nil
	},
}
