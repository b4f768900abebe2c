// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package loader reads schema documents from disk into a [model.Schema].
//
// A schema document is a JSON or YAML rendering of an Ecore package:
//
//	name: people
//	nsURI: http://example.org/people
//	classes:
//	  - name: Person
//	    attributes:
//	      - {name: age, type: EInt, multiplicity: "1"}
//
// Decoding is strict: unknown keys and malformed multiplicities are load
// errors. Semantic problems, such as a supertype that does not exist, are
// left for the validator.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/ecore2thrift/model"
)

// Format is a schema document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned when the document format cannot be determined.
var ErrUnknownFormat = errors.New("unknown schema format")

// Options configures how to load a schema.
type Options struct {
	// Path is the schema document to read.
	Path string

	// Format overrides detection from the file extension.
	Format Format
}

// Result contains the loaded schema and metadata.
type Result struct {
	// Model is the decoded schema.
	Model *model.Schema

	// Format is the encoding the document was decoded from.
	Format Format

	// Source describes where the schema was loaded from.
	Source string
}

// Load reads and decodes the schema document named by opts.Path.
func Load(ctx context.Context, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := opts.Format
	if format == "" {
		var err error
		if format, err = DetectFormat(opts.Path); err != nil {
			return nil, err
		}
	}
	return loadFromFile(opts.Path, format)
}

// loadFromFile reads the schema from a local file.
func loadFromFile(path string, format Format) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	s, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	return &Result{
		Model:  s,
		Format: format,
		Source: path,
	}, nil
}

// DetectFormat returns the format implied by the extension of path.
// ".json", ".yaml" and ".yml" are recognized, optionally after ".ecore"
// (as in "people.ecore.yaml").
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (want .json, .yaml or .yml)", ErrUnknownFormat, filepath.Base(path))
}

// ParseFormat parses a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "":
		return "", nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Decode decodes a schema document in the given format.
func Decode(data []byte, format Format) (*model.Schema, error) {
	var doc schemaDoc
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return doc.schema()
}
