// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package thrift

// Config holds configuration for Thrift generation.
type Config struct {
	// Types to include (empty means all).
	Types []string

	// ResolveDeps includes transitively referenced types.
	ResolveDeps bool

	// Namespaces maps a target language to its namespace declaration.
	Namespaces map[string]string

	// Source is the schema file name for the header comment.
	Source string

	// Indent is the indentation used inside declarations.
	Indent string
}

// DefaultIndent is used when Config.Indent is empty.
const DefaultIndent = "  "
