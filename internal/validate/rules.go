// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package validate

import (
	"github.com/albertocavalcante/ecore2thrift/internal/diag"
	"github.com/albertocavalcante/ecore2thrift/model"
)

// Built-in rule names.
const (
	RuleDuplicateType      = "duplicate-type"
	RuleSupertypeExists    = "supertype-exists"
	RuleSupertypeAcyclic   = "supertype-acyclic"
	RuleReferenceTarget    = "reference-target"
	RuleMultiplicityBounds = "multiplicity-bounds"
	RuleDuplicateMember    = "duplicate-member"
	RuleEnumLiterals       = "enum-literals"
	RuleAttributeType      = "attribute-type"
	RuleContainment        = "containment"
	RuleIdentifierGrammar  = "identifier-grammar"
	RuleReservedWord       = "reserved-word"
	RuleNamingStyle        = "naming-style"
)

// builtin returns the fixed rule set in execution order.
func builtin() []Rule {
	return []Rule{
		NewRule(RuleDuplicateType, Structural, checkDuplicateTypes),
		NewRule(RuleSupertypeExists, Structural, checkSupertypeExists),
		NewRule(RuleSupertypeAcyclic, Structural, checkSupertypeAcyclic),
		NewRule(RuleReferenceTarget, Structural, checkReferenceTargets),
		NewRule(RuleMultiplicityBounds, Structural, checkMultiplicities),
		NewRule(RuleDuplicateMember, Structural, checkDuplicateMembers),
		NewRule(RuleEnumLiterals, Structural, checkEnumLiterals),
		NewRule(RuleAttributeType, Mapping, checkAttributeTypes),
		NewRule(RuleContainment, Mapping, checkContainment),
		NewRule(RuleIdentifierGrammar, Naming, checkIdentifiers),
		NewRule(RuleReservedWord, Naming, checkReservedWords),
		NewRule(RuleNamingStyle, Naming, checkNamingStyle),
	}
}

// member is an attribute or reference seen uniformly.
type member struct {
	owner string
	name  string
	ref   bool
}

func (m member) element() diag.Element {
	if m.ref {
		return diag.Reference(m.owner, m.name)
	}
	return diag.Attribute(m.owner, m.name)
}

func (m member) kind() string {
	if m.ref {
		return "reference"
	}
	return "attribute"
}

// ownMembers returns the attributes then the references of c, in the order
// the generator emits them.
func ownMembers(c *model.ClassDef) []member {
	out := make([]member, 0, len(c.Attributes)+len(c.References))
	for _, a := range c.Attributes {
		out = append(out, member{owner: c.Name, name: a.Name})
	}
	for _, r := range c.References {
		out = append(out, member{owner: c.Name, name: r.Name, ref: true})
	}
	return out
}
