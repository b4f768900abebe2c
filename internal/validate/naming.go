// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package validate

import (
	"github.com/albertocavalcante/ecore2thrift/internal/diag"
	"github.com/albertocavalcante/ecore2thrift/internal/idl"
	"github.com/albertocavalcante/ecore2thrift/model"
)

// named is any model element that ends up as an IDL identifier.
type named struct {
	el   diag.Element
	name string
}

// identifiers lists every name the generator will emit, in schema order.
func identifiers(s *model.Schema) []named {
	var out []named
	for _, c := range s.Classes {
		out = append(out, named{diag.Class(c.Name), c.Name})
		for _, m := range ownMembers(c) {
			out = append(out, named{m.element(), m.name})
		}
	}
	for _, e := range s.Enums {
		out = append(out, named{diag.Enum(e.Name), e.Name})
		for _, lit := range e.Literals {
			out = append(out, named{diag.Literal(e.Name, lit.Name), lit.Name})
		}
	}
	return out
}

func checkIdentifiers(s *model.Schema, r *diag.Reporter) {
	for _, n := range identifiers(s) {
		if !idl.IsIdentifier(n.name) {
			r.Errorf(n.el, "%q is not a valid identifier", n.name)
		}
	}
}

func checkReservedWords(s *model.Schema, r *diag.Reporter) {
	for _, n := range identifiers(s) {
		if idl.IsReserved(n.name) {
			r.Warnf(n.el, "%q is a reserved word; emitted as %q", n.name, idl.Escape(n.name))
		}
	}
}

func checkNamingStyle(s *model.Schema, r *diag.Reporter) {
	for _, c := range s.Classes {
		if idl.IsIdentifier(c.Name) && !idl.StartsUpper(c.Name) {
			r.Warnf(diag.Class(c.Name), "class name %q should start with an upper-case letter", c.Name)
		}
	}
	for _, e := range s.Enums {
		if idl.IsIdentifier(e.Name) && !idl.StartsUpper(e.Name) {
			r.Warnf(diag.Enum(e.Name), "enum name %q should start with an upper-case letter", e.Name)
		}
		if len(e.Literals) == 0 {
			r.Warnf(diag.Enum(e.Name), "enum has no literals")
		}
	}
}
