// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package thrift generates Apache Thrift IDL from a schema.
//
// Every class becomes a struct and every enumeration an enum. A struct lists
// the members inherited along the supertype chain, most-base first, followed
// by the class's own attributes and then its own references. Field tags are
// assigned densely from 1 in that order and depend on nothing else: moving a
// member renumbers the fields after it.
package thrift

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/albertocavalcante/ecore2thrift/generator"
	"github.com/albertocavalcante/ecore2thrift/internal/idl"
	"github.com/albertocavalcante/ecore2thrift/internal/logging"
	"github.com/albertocavalcante/ecore2thrift/internal/logging/logfields"
	"github.com/albertocavalcante/ecore2thrift/model"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "thrift")

// ErrNilSchema is returned when there is no schema to generate from.
var ErrNilSchema = errors.New("no schema")

// Codegen generates a Thrift document from a schema.
type Codegen struct {
	schema     *model.Schema
	config     Config
	typeFilter map[string]bool // nil = all types
}

// New creates a new Thrift Codegen.
func New(s *model.Schema, cfg Config) *Codegen {
	c := &Codegen{schema: s, config: cfg}
	if c.config.Indent == "" {
		c.config.Indent = DefaultIndent
	}
	return c
}

// Output contains the generated document and its rendered text.
type Output struct {
	Document *idl.Document
	Thrift   []byte
}

// shouldInclude returns whether a type should be included in generation output.
func (g *Codegen) shouldInclude(name string) bool {
	return g.typeFilter == nil || g.typeFilter[name]
}

// Generate builds and renders the document.
func (g *Codegen) Generate() (*Output, error) {
	doc, err := g.Build()
	if err != nil {
		return nil, err
	}
	return &Output{Document: doc, Thrift: Render(doc, g.config.Indent)}, nil
}

// Build produces the structured document without rendering it. Any failure
// to map a member is returned; nothing is skipped.
func (g *Codegen) Build() (*idl.Document, error) {
	if g.schema == nil {
		return nil, ErrNilSchema
	}

	selection := generator.Config{Types: g.config.Types, ResolveDeps: g.config.ResolveDeps}
	g.typeFilter = selection.Filter(func(f map[string]bool) map[string]bool {
		return generator.ResolveDeps(g.schema, f)
	})

	doc := &idl.Document{
		Schema:     g.schema.Name,
		NsURI:      g.schema.NsURI,
		Namespaces: g.namespaces(),
	}
	if g.config.Source != "" {
		doc.Source = filepath.Base(g.config.Source)
	}

	// Generate enums first (dependencies)
	for _, e := range g.schema.Enums {
		if !g.shouldInclude(e.Name) {
			continue
		}
		doc.Enums = append(doc.Enums, g.buildEnum(e))
	}

	for _, c := range g.schema.Classes {
		if !g.shouldInclude(c.Name) {
			continue
		}
		st, err := g.buildStruct(c)
		if err != nil {
			return nil, err
		}
		doc.Structs = append(doc.Structs, st)
	}
	return doc, nil
}

func (g *Codegen) namespaces() []idl.Namespace {
	langs := make([]string, 0, len(g.config.Namespaces))
	for lang := range g.config.Namespaces {
		langs = append(langs, lang)
	}
	slices.Sort(langs)

	out := make([]idl.Namespace, 0, len(langs))
	for _, lang := range langs {
		out = append(out, idl.Namespace{Lang: lang, Name: g.config.Namespaces[lang]})
	}
	return out
}

func (g *Codegen) buildEnum(e *model.EnumDef) idl.Enum {
	out := idl.Enum{Name: idl.Escape(e.Name), Doc: e.Doc}
	for i, lit := range e.Literals {
		out.Values = append(out.Values, idl.EnumValue{
			Name:  idl.Escape(lit.Name),
			Value: lit.Number(i),
		})
	}
	return out
}

func (g *Codegen) buildStruct(c *model.ClassDef) (idl.Struct, error) {
	ancestors, err := g.schema.Ancestors(c.Name)
	if err != nil {
		return idl.Struct{}, fmt.Errorf("class %q: %w", c.Name, err)
	}

	st := idl.Struct{Name: idl.Escape(c.Name), Doc: c.Doc, Class: c.Name}
	for _, owner := range append(ancestors, c) {
		if err := g.appendMembers(&st, owner); err != nil {
			return idl.Struct{}, err
		}
	}
	return st, nil
}

// appendMembers adds the attributes then the references declared by owner.
func (g *Codegen) appendMembers(st *idl.Struct, owner *model.ClassDef) error {
	add := func(name, doc string, m idl.Mapping) {
		st.Fields = append(st.Fields, idl.Field{
			ID:           len(st.Fields) + 1,
			Name:         idl.Escape(name),
			Doc:          doc,
			Type:         m.Type,
			Requiredness: m.Requiredness,
			Owner:        owner.Name,
		})
	}

	for _, a := range owner.Attributes {
		m, err := idl.MapType(a.Type, a.Bounds())
		if err != nil {
			return fmt.Errorf("%s.%s: %w", owner.Name, a.Name, err)
		}
		if a.Type.Kind == model.KindEnum {
			g.checkSelected(owner.Name, a.Name, a.Type.Enum)
		}
		add(a.Name, a.Doc, m)
	}
	for _, r := range owner.References {
		m, err := idl.MapReference(r.Target, r.Multiplicity)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", owner.Name, r.Name, err)
		}
		g.checkSelected(owner.Name, r.Name, r.Target)
		add(r.Name, r.Doc, m)
	}
	return nil
}

// checkSelected warns when a field names a type the type filter leaves out,
// which happens when dependencies are not resolved.
func (g *Codegen) checkSelected(owner, field, typeName string) {
	if g.shouldInclude(typeName) {
		return
	}
	log.WithFields(logrus.Fields{
		logfields.Element: owner + "." + field,
		logfields.Type:    typeName,
	}).Warn("Field names a type excluded by the type filter; the document will not declare it")
}

// docLines splits a documentation string into comment lines.
func docLines(doc string) []string {
	doc = strings.TrimSpace(strings.ReplaceAll(doc, "\r\n", "\n"))
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}
