// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/albertocavalcante/ecore2thrift/model"
)

// The document types mirror the on-disk layout. Types and multiplicities are
// plain strings there and are resolved into the model on conversion.

type schemaDoc struct {
	Name    string     `json:"name" yaml:"name"`
	NsURI   string     `json:"nsURI" yaml:"nsURI"`
	Classes []classDoc `json:"classes" yaml:"classes"`
	Enums   []enumDoc  `json:"enums" yaml:"enums"`
}

type classDoc struct {
	Name       string         `json:"name" yaml:"name"`
	Doc        string         `json:"doc" yaml:"doc"`
	Abstract   bool           `json:"abstract" yaml:"abstract"`
	Super      string         `json:"super" yaml:"super"`
	Attributes []attributeDoc `json:"attributes" yaml:"attributes"`
	References []referenceDoc `json:"references" yaml:"references"`
}

type attributeDoc struct {
	Name         string `json:"name" yaml:"name"`
	Doc          string `json:"doc" yaml:"doc"`
	Type         string `json:"type" yaml:"type"`
	Multiplicity string `json:"multiplicity" yaml:"multiplicity"`
}

type referenceDoc struct {
	Name         string `json:"name" yaml:"name"`
	Doc          string `json:"doc" yaml:"doc"`
	Target       string `json:"target" yaml:"target"`
	Multiplicity string `json:"multiplicity" yaml:"multiplicity"`
	Containment  bool   `json:"containment" yaml:"containment"`
}

type enumDoc struct {
	Name     string       `json:"name" yaml:"name"`
	Doc      string       `json:"doc" yaml:"doc"`
	Literals []literalDoc `json:"literals" yaml:"literals"`
}

type literalDoc struct {
	Name  string `json:"name" yaml:"name"`
	Value *int   `json:"value" yaml:"value"`
}

func (d *schemaDoc) schema() (*model.Schema, error) {
	enums := make(map[string]bool, len(d.Enums))
	s := &model.Schema{Name: d.Name, NsURI: d.NsURI}
	for _, e := range d.Enums {
		enums[e.Name] = true
		def := &model.EnumDef{Name: e.Name, Doc: e.Doc}
		for _, lit := range e.Literals {
			def.Literals = append(def.Literals, model.EnumLiteral{Name: lit.Name, Value: lit.Value})
		}
		s.Enums = append(s.Enums, def)
	}

	for _, c := range d.Classes {
		def := &model.ClassDef{Name: c.Name, Doc: c.Doc, Abstract: c.Abstract, Super: c.Super}
		for _, a := range c.Attributes {
			attr := model.AttributeDef{Name: a.Name, Doc: a.Doc, Type: resolveType(a.Type, enums)}
			if a.Multiplicity != "" {
				m, err := ParseMultiplicity(a.Multiplicity)
				if err != nil {
					return nil, fmt.Errorf("class %s attribute %s: %w", c.Name, a.Name, err)
				}
				attr.Multiplicity = &m
			}
			def.Attributes = append(def.Attributes, attr)
		}
		for _, r := range c.References {
			ref := model.ReferenceDef{Name: r.Name, Doc: r.Doc, Target: r.Target, Multiplicity: model.Optional, Containment: r.Containment}
			if r.Multiplicity != "" {
				m, err := ParseMultiplicity(r.Multiplicity)
				if err != nil {
					return nil, fmt.Errorf("class %s reference %s: %w", c.Name, r.Name, err)
				}
				ref.Multiplicity = m
			}
			def.References = append(def.References, ref)
		}
		s.Classes = append(s.Classes, def)
	}
	return s, nil
}

// resolveType turns a type name into a data type. Data type names (Ecore or
// plain) win over enum names. Anything else is kept verbatim as the kind so
// the validator can report it.
func resolveType(name string, enums map[string]bool) model.DataType {
	if k, ok := model.LookupKind(name); ok {
		return model.DataType{Kind: k}
	}
	if enums[name] {
		return model.DataType{Kind: model.KindEnum, Enum: name}
	}
	return model.DataType{Kind: model.Kind(name)}
}

// ParseMultiplicity parses "l..u", where u may be "*" or -1, or a single
// bound: "*" means 0..*, and "n" means exactly n.
func ParseMultiplicity(s string) (model.Multiplicity, error) {
	s = strings.TrimSpace(s)
	if s == "*" {
		return model.Many, nil
	}

	lo, hi, ranged := strings.Cut(s, "..")
	lower, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return model.Multiplicity{}, fmt.Errorf("invalid multiplicity %q", s)
	}
	if !ranged {
		return model.Multiplicity{Lower: lower, Upper: lower}, nil
	}

	hi = strings.TrimSpace(hi)
	if hi == "*" {
		return model.Multiplicity{Lower: lower, Upper: model.Unbounded}, nil
	}
	upper, err := strconv.Atoi(hi)
	if err != nil {
		return model.Multiplicity{}, fmt.Errorf("invalid multiplicity %q", s)
	}
	return model.Multiplicity{Lower: lower, Upper: upper}, nil
}
