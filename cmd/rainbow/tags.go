// Copyright 2024 The Rainbow Authors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dolthub/rainbow"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "print the schema tag tree for a node type this binary knows about",
	RunE: func(cmd *cobra.Command, args []string) error {
		printTag(cmd.OutOrStdout(), rainbow.TagsOf[rainbow.Node, *rainbow.Node]().Tag, 0)
		return nil
	},
}

func printTag(out io.Writer, t rainbow.Tag, depth int) {
	for i := 0; i < depth; i++ {
		fmt.Fprint(out, "  ")
	}
	fmt.Fprintln(out, t.Name)
	for _, c := range t.Children {
		printTag(out, c.Tag, depth+1)
	}
}
