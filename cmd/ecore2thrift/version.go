// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/ecore2thrift/generator"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ecore2thrift %s (commit: %s, built: %s)\n", version, commit, date)
			var gens []string
			for _, g := range generator.All() {
				md := g.Metadata()
				gens = append(gens, md.Name+" "+md.Version)
			}
			fmt.Fprintf(out, "generators: %s\n", strings.Join(gens, ", "))
		},
	}
}
