// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for IDL generators.
package generator

import (
	"context"

	"github.com/albertocavalcante/ecore2thrift/model"
)

// Generator is the interface that all IDL generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate produces the IDL document for a validated schema.
	// Generators must not modify s.
	Generate(ctx context.Context, s *model.Schema, cfg Config) (*Output, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "thrift").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".thrift"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}

// Extension returns the primary output extension, or "".
func (m Metadata) Extension() string {
	if len(m.FileExtensions) == 0 {
		return ""
	}
	return m.FileExtensions[0]
}
