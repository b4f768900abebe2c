// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package validate

import (
	"math"
	"strings"

	"github.com/albertocavalcante/ecore2thrift/internal/diag"
	"github.com/albertocavalcante/ecore2thrift/internal/idl"
	"github.com/albertocavalcante/ecore2thrift/model"
)

func checkDuplicateTypes(s *model.Schema, r *diag.Reporter) {
	seen := make(map[string]string) // emitted name -> declared name
	check := func(el diag.Element, name string) {
		emitted := idl.Escape(name)
		prev, dup := seen[emitted]
		switch {
		case !dup:
			seen[emitted] = name
		case prev == name:
			r.Errorf(el, "type %q is declared more than once", name)
		default:
			r.Errorf(el, "type %q collides with %q once emitted as %q", name, prev, emitted)
		}
	}
	for _, c := range s.Classes {
		check(diag.Class(c.Name), c.Name)
	}
	for _, e := range s.Enums {
		check(diag.Enum(e.Name), e.Name)
	}
}

func checkSupertypeExists(s *model.Schema, r *diag.Reporter) {
	for _, c := range s.Classes {
		if c.Super == "" {
			continue
		}
		if _, ok := s.Class(c.Super); ok {
			continue
		}
		if _, ok := s.Enum(c.Super); ok {
			r.Errorf(diag.Class(c.Name), "supertype %q is an enum, not a class", c.Super)
			continue
		}
		r.Errorf(diag.Class(c.Name), "supertype %q does not exist", c.Super)
	}
}

// checkSupertypeAcyclic reports every class that lies on a supertype cycle.
// Classes that merely inherit from a cycle are not reported again.
func checkSupertypeAcyclic(s *model.Schema, r *diag.Reporter) {
	for _, c := range s.Classes {
		path := []string{c.Name}
		visited := map[string]bool{c.Name: true}
		cur := c
		for cur.Super != "" {
			next, ok := s.Class(cur.Super)
			if !ok {
				break
			}
			path = append(path, next.Name)
			if next.Name == c.Name {
				r.Errorf(diag.Class(c.Name), "supertype chain is cyclic: %s", strings.Join(path, " -> "))
				break
			}
			if visited[next.Name] {
				break
			}
			visited[next.Name] = true
			cur = next
		}
	}
}

func checkReferenceTargets(s *model.Schema, r *diag.Reporter) {
	for _, c := range s.Classes {
		for _, ref := range c.References {
			el := diag.Reference(c.Name, ref.Name)
			switch {
			case ref.Target == "":
				r.Errorf(el, "reference has no target class")
			case hasClass(s, ref.Target):
			case hasEnum(s, ref.Target):
				r.Errorf(el, "target %q is an enum; model it as an attribute", ref.Target)
			default:
				r.Errorf(el, "target class %q does not exist", ref.Target)
			}
		}
	}
}

func checkMultiplicities(s *model.Schema, r *diag.Reporter) {
	for _, c := range s.Classes {
		for _, a := range c.Attributes {
			if m := a.Bounds(); !m.Valid() {
				r.Errorf(diag.Attribute(c.Name, a.Name), "invalid multiplicity %s", m)
			}
		}
		for _, ref := range c.References {
			if !ref.Multiplicity.Valid() {
				r.Errorf(diag.Reference(c.Name, ref.Name), "invalid multiplicity %s", ref.Multiplicity)
			}
		}
	}
}

// checkDuplicateMembers compares emitted member names across a class and
// its supertype chain. A collision is reported on the class that introduces
// the second member, so a clash between two ancestors is reported once.
// Classes with a broken chain are skipped; other rules report the chain.
func checkDuplicateMembers(s *model.Schema, r *diag.Reporter) {
	for _, c := range s.Classes {
		ancestors, err := s.Ancestors(c.Name)
		if err != nil {
			continue
		}

		seen := make(map[string]member)
		for _, a := range ancestors {
			for _, m := range ownMembers(a) {
				if _, dup := seen[idl.Escape(m.name)]; !dup {
					seen[idl.Escape(m.name)] = m
				}
			}
		}
		for _, m := range ownMembers(c) {
			emitted := idl.Escape(m.name)
			prev, dup := seen[emitted]
			if !dup {
				seen[emitted] = m
				continue
			}
			switch {
			case prev.owner != c.Name:
				r.Errorf(m.element(), "%s %q clashes with inherited %s %s.%s", m.kind(), m.name, prev.kind(), prev.owner, prev.name)
			case prev.name == m.name:
				r.Errorf(m.element(), "%s %q is declared more than once", m.kind(), m.name)
			default:
				r.Errorf(m.element(), "%s %q collides with %q once emitted as %q", m.kind(), m.name, prev.name, emitted)
			}
		}
	}
}

func checkEnumLiterals(s *model.Schema, r *diag.Reporter) {
	for _, e := range s.Enums {
		names := make(map[string]bool)
		values := make(map[int]string)
		for i, lit := range e.Literals {
			el := diag.Literal(e.Name, lit.Name)
			if emitted := idl.Escape(lit.Name); names[emitted] {
				r.Errorf(el, "literal %q is declared more than once", lit.Name)
			} else {
				names[emitted] = true
			}
			n := lit.Number(i)
			if n < math.MinInt32 || n > math.MaxInt32 {
				r.Errorf(el, "literal %q value %d is outside the i32 range", lit.Name, n)
				continue
			}
			if prev, dup := values[n]; dup {
				r.Errorf(el, "literal %q reuses value %d of %q", lit.Name, n, prev)
				continue
			}
			values[n] = lit.Name
		}
	}
}

func hasClass(s *model.Schema, name string) bool {
	_, ok := s.Class(name)
	return ok
}

func hasEnum(s *model.Schema, name string) bool {
	_, ok := s.Enum(name)
	return ok
}
