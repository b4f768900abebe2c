// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package thrift

import (
	"context"

	"github.com/albertocavalcante/ecore2thrift/generator"
	"github.com/albertocavalcante/ecore2thrift/model"
)

// Name is the registry name of the Thrift generator.
const Name = "thrift"

// Generator implements [generator.Generator] for Apache Thrift generation.
type Generator struct{}

// NewGenerator creates a new Thrift generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           Name,
		Version:        "1.0.0",
		Description:    "Generate Apache Thrift IDL from Ecore-style metamodels",
		FileExtensions: []string{".thrift"},
		URL:            "https://github.com/albertocavalcante/ecore2thrift",
	}
}

// Generate produces the Thrift document for s.
func (g *Generator) Generate(ctx context.Context, s *model.Schema, cfg generator.Config) (*generator.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Convert generator.Config to internal Config
	internalCfg := Config{
		Types:       cfg.Types,
		ResolveDeps: cfg.ResolveDeps,
		Namespaces:  cfg.Namespaces,
		Source:      cfg.Source,
		Indent:      cfg.Option("indent", DefaultIndent),
	}

	out, err := New(s, internalCfg).Generate()
	if err != nil {
		return nil, err
	}
	return &generator.Output{Document: out.Document, Content: out.Thrift}, nil
}
