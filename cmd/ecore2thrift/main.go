// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command ecore2thrift generates Apache Thrift IDL from Ecore metamodels
// written as JSON or YAML documents.
//
// Usage:
//
//	ecore2thrift generate [flags] <schema>...
//	ecore2thrift version
//
// Each schema is validated first; a schema with Error diagnostics produces
// no output. The document is written next to the schema with its extension
// replaced, as in people.ecore.yaml -> people.thrift.
//
// Flags:
//
//	--ext            Output file extension (default: .thrift)
//	--namespace      lang=name namespace declaration, repeatable
//	--types          Comma-separated classes and enums to generate (default: all)
//	--resolve-deps   Include the dependencies of --types (default: true)
//	--dry-run        Print the documents to stdout without writing files
//	--yes, --no      Answer overwrite questions without prompting
//	--jobs           Schemas processed concurrently (default: 4)
//	--format         Force json or yaml instead of detecting it
//	--config         YAML file with option values
//	-D, --debug      Enable debug logging
//
// Every flag may also be set through an ECORE2THRIFT_* environment
// variable, as in ECORE2THRIFT_DRY_RUN=true.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
