// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the in-memory object-model schema consumed by the
// ecore2thrift pipeline.
//
// A Schema mirrors the subset of Ecore the generator understands: classes
// with attributes, references and at most one supertype, plus enumerations.
// It is independent of any textual encoding; see internal/loader for the
// JSON and YAML document formats.
//
// A Schema is treated as an immutable value for the duration of a pipeline
// run. Nothing in this package caches or mutates state after construction,
// so a single Schema may be shared by concurrent runs.
package model

import "fmt"

// Unbounded is the Upper bound of a many-valued multiplicity ("*").
const Unbounded = -1

// Schema is a parsed object-model schema.
type Schema struct {
	// Name is the package name (Ecore nsPrefix or EPackage name).
	Name string `json:"name" yaml:"name"`

	// NsURI is the package namespace URI, used only for header comments.
	NsURI string `json:"nsURI,omitempty" yaml:"nsURI,omitempty"`

	// Classes lists every class in declaration order.
	Classes []*ClassDef `json:"classes" yaml:"classes"`

	// Enums lists every enumeration in declaration order.
	Enums []*EnumDef `json:"enums,omitempty" yaml:"enums,omitempty"`
}

// ClassDef describes a single class.
type ClassDef struct {
	Name     string `json:"name" yaml:"name"`
	Doc      string `json:"doc,omitempty" yaml:"doc,omitempty"`
	Abstract bool   `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Super names the supertype class, or is empty.
	Super string `json:"super,omitempty" yaml:"super,omitempty"`

	// Attributes are the class's own attributes in declaration order.
	Attributes []AttributeDef `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	// References are the class's own references in declaration order.
	References []ReferenceDef `json:"references,omitempty" yaml:"references,omitempty"`
}

// AttributeDef is a typed attribute of a class.
type AttributeDef struct {
	Name string   `json:"name" yaml:"name"`
	Doc  string   `json:"doc,omitempty" yaml:"doc,omitempty"`
	Type DataType `json:"type" yaml:"type"`

	// Multiplicity may be nil, meaning the Ecore default 0..1.
	Multiplicity *Multiplicity `json:"multiplicity,omitempty" yaml:"multiplicity,omitempty"`
}

// Bounds returns the attribute multiplicity, applying the 0..1 default.
func (a AttributeDef) Bounds() Multiplicity {
	if a.Multiplicity == nil {
		return Optional
	}
	return *a.Multiplicity
}

// ReferenceDef is a reference from one class to another.
type ReferenceDef struct {
	Name         string       `json:"name" yaml:"name"`
	Doc          string       `json:"doc,omitempty" yaml:"doc,omitempty"`
	Target       string       `json:"target" yaml:"target"`
	Multiplicity Multiplicity `json:"multiplicity" yaml:"multiplicity"`

	// Containment marks the reference as owning its target.
	Containment bool `json:"containment,omitempty" yaml:"containment,omitempty"`
}

// EnumDef is an enumeration with named literals.
type EnumDef struct {
	Name     string        `json:"name" yaml:"name"`
	Doc      string        `json:"doc,omitempty" yaml:"doc,omitempty"`
	Literals []EnumLiteral `json:"literals,omitempty" yaml:"literals,omitempty"`
}

// EnumLiteral is a single enum member. A nil Value means "use the literal's
// position".
type EnumLiteral struct {
	Name  string `json:"name" yaml:"name"`
	Value *int   `json:"value,omitempty" yaml:"value,omitempty"`
}

// Number returns the literal's numeric value, defaulting to pos.
func (l EnumLiteral) Number(pos int) int {
	if l.Value == nil {
		return pos
	}
	return *l.Value
}

// Multiplicity holds lower and upper bounds. Upper is Unbounded for "*".
type Multiplicity struct {
	Lower int `json:"lower" yaml:"lower"`
	Upper int `json:"upper" yaml:"upper"`
}

// Common multiplicities.
var (
	Optional  = Multiplicity{Lower: 0, Upper: 1}
	Required  = Multiplicity{Lower: 1, Upper: 1}
	Many      = Multiplicity{Lower: 0, Upper: Unbounded}
	OneOrMore = Multiplicity{Lower: 1, Upper: Unbounded}
)

// IsMany reports whether the multiplicity admits more than one value.
func (m Multiplicity) IsMany() bool {
	return m.Upper == Unbounded || m.Upper > 1
}

// Valid reports whether the bounds are well formed.
func (m Multiplicity) Valid() bool {
	if m.Lower < 0 {
		return false
	}
	if m.Upper == Unbounded {
		return true
	}
	return m.Upper >= 1 && m.Lower <= m.Upper
}

// String formats the multiplicity as "lower..upper".
func (m Multiplicity) String() string {
	if m.Upper == Unbounded {
		return fmt.Sprintf("%d..*", m.Lower)
	}
	return fmt.Sprintf("%d..%d", m.Lower, m.Upper)
}

// Class returns the class with the given name.
func (s *Schema) Class(name string) (*ClassDef, bool) {
	for _, c := range s.Classes {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// Enum returns the enumeration with the given name.
func (s *Schema) Enum(name string) (*EnumDef, bool) {
	for _, e := range s.Enums {
		if e.Name == name {
			return e, true
		}
	}
	return nil, false
}
