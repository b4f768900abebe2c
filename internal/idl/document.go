// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package idl

// Document is the ordered declaration list produced by a generator. It is
// built once and not modified after it is returned.
type Document struct {
	// Source is the schema file the document was generated from (base name).
	Source string

	// Schema and NsURI identify the model package.
	Schema string
	NsURI  string

	Namespaces []Namespace
	Enums      []Enum
	Structs    []Struct
}

// Namespace is a Thrift "namespace <lang> <name>" declaration.
type Namespace struct {
	Lang string
	Name string
}

// Enum is an enum declaration.
type Enum struct {
	Name   string
	Doc    string
	Values []EnumValue
}

// EnumValue is one enum member.
type EnumValue struct {
	Name  string
	Value int
}

// Struct is a struct declaration generated from one model class.
type Struct struct {
	Name string
	Doc  string

	// Class is the model class the struct was generated from.
	Class string

	Fields []Field
}

// Field is a struct field with its positional tag.
type Field struct {
	ID           int
	Name         string
	Doc          string
	Type         Type
	Requiredness Requiredness

	// Owner is the model class that declares the member; it differs from
	// the struct's class for inherited members.
	Owner string
}

// Struct returns the struct generated for the named model class.
func (d *Document) Struct(class string) (Struct, bool) {
	for _, s := range d.Structs {
		if s.Class == class {
			return s, true
		}
	}
	return Struct{}, false
}

// MaxID returns the highest field tag in the struct, or 0 when empty.
func (s Struct) MaxID() int {
	highest := 0
	for _, f := range s.Fields {
		highest = max(highest, f.ID)
	}
	return highest
}

// Field returns the field with the given emitted name.
func (s Struct) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
