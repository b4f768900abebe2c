// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package diag holds validation findings.
//
// A Diagnostic names the model element it concerns rather than a source
// position; callers that own a marker system translate elements into
// positions themselves.
package diag

import (
	"fmt"
	"strings"
)

// Severity indicates whether a diagnostic blocks generation.
type Severity int

const (
	// Warning is advisory: generation proceeds.
	Warning Severity = iota
	// Error blocks generation.
	Error
)

// String returns "warning" or "error".
func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// ElementKind classifies the model element a diagnostic refers to.
type ElementKind int

const (
	ElementSchema ElementKind = iota
	ElementClass
	ElementEnum
	ElementLiteral
	ElementAttribute
	ElementReference
)

var elementKindNames = [...]string{
	ElementSchema:    "schema",
	ElementClass:     "class",
	ElementEnum:      "enum",
	ElementLiteral:   "literal",
	ElementAttribute: "attribute",
	ElementReference: "reference",
}

// String returns the lower-case kind name.
func (k ElementKind) String() string {
	if int(k) < len(elementKindNames) {
		return elementKindNames[k]
	}
	return fmt.Sprintf("ElementKind(%d)", int(k))
}

// Element identifies a model element. Owner is the class or enum holding a
// member; for classes, enums and the schema it is empty.
type Element struct {
	Kind  ElementKind
	Owner string
	Name  string
}

// String formats the element as "Owner.Name" or "Name".
func (e Element) String() string {
	if e.Owner == "" {
		return e.Name
	}
	return e.Owner + "." + e.Name
}

// Schema, Class, Enum, Literal, Attribute and Reference build Elements.
func Schema(name string) Element         { return Element{Kind: ElementSchema, Name: name} }
func Class(name string) Element          { return Element{Kind: ElementClass, Name: name} }
func Enum(name string) Element           { return Element{Kind: ElementEnum, Name: name} }
func Literal(enum, name string) Element  { return Element{Kind: ElementLiteral, Owner: enum, Name: name} }
func Attribute(cls, name string) Element { return Element{Kind: ElementAttribute, Owner: cls, Name: name} }
func Reference(cls, name string) Element { return Element{Kind: ElementReference, Owner: cls, Name: name} }

// Diagnostic is a single validation finding. It is not modified after it
// is created.
type Diagnostic struct {
	Severity Severity
	Element  Element
	Rule     string
	Message  string
}

// String formats the diagnostic as "severity: [rule] element: message".
func (d Diagnostic) String() string {
	var b strings.Builder
	b.WriteString(d.Severity.String())
	b.WriteString(": ")
	if d.Rule != "" {
		fmt.Fprintf(&b, "[%s] ", d.Rule)
	}
	if el := d.Element.String(); el != "" {
		fmt.Fprintf(&b, "%s %s: ", d.Element.Kind, el)
	}
	b.WriteString(d.Message)
	return b.String()
}

// List is an ordered set of diagnostics. It implements error so a blocked
// run can return its findings as one value.
type List []Diagnostic

// HasErrors reports whether any diagnostic has severity Error.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Filter returns the diagnostics with the given severity.
func (l List) Filter(sev Severity) List {
	var out List
	for _, d := range l {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// Error summarizes the list.
func (l List) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].String()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].String(), len(l)-1)
	}
}

// Collector accumulates diagnostics for one validation run. It only
// appends; the zero value is ready to use. A Collector is not safe for
// concurrent use; each run owns its own.
type Collector struct {
	items List
}

// ForRule returns a Reporter that stamps rule on every diagnostic it
// records into c.
func (c *Collector) ForRule(rule string) *Reporter {
	return &Reporter{c: c, rule: rule}
}

// Add records a diagnostic.
func (c *Collector) Add(d Diagnostic) {
	c.items = append(c.items, d)
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int { return len(c.items) }

// List returns a copy of the recorded diagnostics in recording order.
func (c *Collector) List() List {
	out := make(List, len(c.items))
	copy(out, c.items)
	return out
}

// Reporter records diagnostics for a single rule.
type Reporter struct {
	c    *Collector
	rule string
}

// Errorf records an Error diagnostic.
func (r *Reporter) Errorf(el Element, format string, args ...any) {
	r.c.Add(Diagnostic{Severity: Error, Element: el, Rule: r.rule, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a Warning diagnostic.
func (r *Reporter) Warnf(el Element, format string, args ...any) {
	r.c.Add(Diagnostic{Severity: Warning, Element: el, Rule: r.rule, Message: fmt.Sprintf(format, args...)})
}
