// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package idl holds the target-side vocabulary shared by the validator and
// the Thrift generator: IDL types, the model→IDL type mapping, identifier
// rules, and the structured document the generator emits.
package idl

// Thrift base type names.
const (
	TypeBool   = "bool"
	TypeI8     = "i8"
	TypeI16    = "i16"
	TypeI32    = "i32"
	TypeI64    = "i64"
	TypeDouble = "double"
	TypeString = "string"
	TypeBinary = "binary"
)

// TypeKind classifies an IDL type.
type TypeKind int

const (
	// KindBase is a Thrift base type; Name holds the base type name.
	KindBase TypeKind = iota
	// KindEnum names a generated enum.
	KindEnum
	// KindStruct names a generated struct.
	KindStruct
	// KindList is an ordered collection of Elem.
	KindList
)

// Type is an IDL type expression.
type Type struct {
	Kind TypeKind
	Name string
	Elem *Type
}

// Base returns the base type with the given name.
func Base(name string) Type { return Type{Kind: KindBase, Name: name} }

// ListOf returns an ordered collection of elem.
func ListOf(elem Type) Type { return Type{Kind: KindList, Elem: &elem} }

// String renders the type in Thrift syntax.
func (t Type) String() string {
	if t.Kind == KindList {
		if t.Elem == nil {
			return "list<>"
		}
		return "list<" + t.Elem.String() + ">"
	}
	return t.Name
}

// Requiredness is the Thrift field requiredness qualifier.
type Requiredness int

const (
	Optional Requiredness = iota
	Required
)

// String returns the Thrift keyword.
func (r Requiredness) String() string {
	if r == Required {
		return "required"
	}
	return "optional"
}
