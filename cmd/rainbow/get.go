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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dolthub/rainbow"
	"github.com/dolthub/rainbow/hash"
)

var getCmd = &cobra.Command{
	Use:   "get <hash>",
	Short: "fetch a node by full_hash and print its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, ok := hash.MaybeParse(args[0])
		if !ok {
			return errors.Errorf("rainbow: %q is not a valid hash", args[0])
		}

		s, err := openStore()
		if err != nil {
			return err
		}

		data, err := s.Fetch(context.Background(), h)
		if err != nil {
			return errors.Wrap(err, "rainbow: fetching")
		}

		resolver := storeResolver(s)
		node, err := rainbow.DecodeFull[rainbow.Node, *rainbow.Node](data, resolver)
		if err != nil {
			return errors.Wrap(err, "rainbow: decoding")
		}

		out := cmd.OutOrStdout()
		switch node.Kind() {
		case rainbow.KindBlob:
			b, _ := node.Blob()
			fmt.Fprintln(out, string(b))
		case rainbow.KindDirectory:
			entries, _ := node.Directory()
			for _, e := range entries {
				fmt.Fprintf(out, "%s\t%s\n", e.Name.Data, e.Child.Hash())
			}
		}
		return nil
	},
}
