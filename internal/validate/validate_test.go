// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package validate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/albertocavalcante/ecore2thrift/internal/diag"
	"github.com/albertocavalcante/ecore2thrift/model"
)

func intp(v int) *int { return &v }

func mult(lower, upper int) *model.Multiplicity {
	return &model.Multiplicity{Lower: lower, Upper: upper}
}

// library is a schema that passes every rule without findings.
func library() *model.Schema {
	return &model.Schema{
		Name:  "library",
		NsURI: "http://example.org/library",
		Classes: []*model.ClassDef{
			{
				Name:     "Entity",
				Abstract: true,
				Attributes: []model.AttributeDef{
					{Name: "name", Type: model.DataType{Kind: model.KindString}, Multiplicity: mult(1, 1)},
				},
			},
			{
				Name:  "Book",
				Super: "Entity",
				Attributes: []model.AttributeDef{
					{Name: "pages", Type: model.DataType{Kind: model.KindInt}},
					{Name: "genre", Type: model.DataType{Kind: model.KindEnum, Enum: "Genre"}},
				},
				References: []model.ReferenceDef{
					{Name: "chapters", Target: "Chapter", Multiplicity: model.Many, Containment: true},
				},
			},
			{
				Name: "Chapter",
				Attributes: []model.AttributeDef{
					{Name: "title", Type: model.DataType{Kind: model.KindString}},
				},
				References: []model.ReferenceDef{
					{Name: "sections", Target: "Chapter", Multiplicity: model.Many, Containment: true},
				},
			},
		},
		Enums: []*model.EnumDef{
			{Name: "Genre", Literals: []model.EnumLiteral{{Name: "FICTION"}, {Name: "POETRY", Value: intp(10)}}},
		},
	}
}

// runRule runs a single built-in rule against s.
func runRule(t *testing.T, name string, s *model.Schema) diag.List {
	t.Helper()
	for _, r := range builtin() {
		if r.Name() == name {
			return New(r).Validate(s)
		}
	}
	t.Fatalf("no built-in rule %q", name)
	return nil
}

func errorf(rule string, el diag.Element, msg string) diag.Diagnostic {
	return diag.Diagnostic{Severity: diag.Error, Element: el, Rule: rule, Message: msg}
}

func warnf(rule string, el diag.Element, msg string) diag.Diagnostic {
	return diag.Diagnostic{Severity: diag.Warning, Element: el, Rule: rule, Message: msg}
}

func TestRegistry(t *testing.T) {
	Reset()
	defer Reset()

	t.Run("Builtin order", func(t *testing.T) {
		want := []string{
			RuleDuplicateType, RuleSupertypeExists, RuleSupertypeAcyclic,
			RuleReferenceTarget, RuleMultiplicityBounds, RuleDuplicateMember,
			RuleEnumLiterals, RuleAttributeType, RuleContainment,
			RuleIdentifierGrammar, RuleReservedWord, RuleNamingStyle,
		}
		if diff := cmp.Diff(want, List()); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Register and Get", func(t *testing.T) {
		Register(NewRule("custom", Naming, func(*model.Schema, *diag.Reporter) {}))

		got, ok := Get("custom")
		if !ok {
			t.Fatal("expected to find registered rule")
		}
		if got.Category() != Naming {
			t.Errorf("got category %q, want %q", got.Category(), Naming)
		}
		if names := List(); names[len(names)-1] != "custom" {
			t.Errorf("custom rule should run last, got %v", names)
		}
	})

	t.Run("Get nonexistent", func(t *testing.T) {
		if _, ok := Get("nonexistent"); ok {
			t.Error("expected not to find nonexistent rule")
		}
	})

	t.Run("Duplicate panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic on duplicate registration")
			}
		}()
		Register(NewRule(RuleContainment, Mapping, func(*model.Schema, *diag.Reporter) {}))
	})

	t.Run("Reset", func(t *testing.T) {
		Reset()
		if _, ok := Get("custom"); ok {
			t.Error("expected custom rule to be gone after Reset")
		}
		if got := len(All()); got != len(builtin()) {
			t.Errorf("got %d rules after Reset, want %d", got, len(builtin()))
		}
	})
}

func TestValidateClean(t *testing.T) {
	if got := Default().Validate(library()); len(got) != 0 {
		t.Errorf("expected no diagnostics, got:\n%v", got)
	}
}

func TestValidateReportsEverything(t *testing.T) {
	s := &model.Schema{
		Name: "broken",
		Classes: []*model.ClassDef{
			{Name: "A", Super: "Missing"},
			{
				Name: "B",
				References: []model.ReferenceDef{
					{Name: "x", Target: "Nowhere", Multiplicity: model.Optional, Containment: true},
				},
			},
		},
	}

	got := Default().Validate(s)
	want := diag.List{
		errorf(RuleSupertypeExists, diag.Class("A"), `supertype "Missing" does not exist`),
		errorf(RuleReferenceTarget, diag.Reference("B", "x"), `target class "Nowhere" does not exist`),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
	if !got.HasErrors() {
		t.Error("expected HasErrors")
	}
}

func TestValidateDoesNotModifySchema(t *testing.T) {
	s := library()
	s.Classes[0].Name = "class"
	before := library()
	before.Classes[0].Name = "class"

	Default().Validate(s)

	if diff := cmp.Diff(before, s); diff != "" {
		t.Errorf("schema modified (-before +after):\n%s", diff)
	}
}

func TestDuplicateType(t *testing.T) {
	s := &model.Schema{
		Classes: []*model.ClassDef{{Name: "Order"}, {Name: "Order"}, {Name: "list"}},
		Enums:   []*model.EnumDef{{Name: "list_"}},
	}
	want := diag.List{
		errorf(RuleDuplicateType, diag.Class("Order"), `type "Order" is declared more than once`),
		errorf(RuleDuplicateType, diag.Enum("list_"), `type "list_" collides with "list" once emitted as "list_"`),
	}
	if diff := cmp.Diff(want, runRule(t, RuleDuplicateType, s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSupertypeExists(t *testing.T) {
	s := &model.Schema{
		Classes: []*model.ClassDef{
			{Name: "A", Super: "Ghost"},
			{Name: "B", Super: "Color"},
			{Name: "C", Super: "A"},
		},
		Enums: []*model.EnumDef{{Name: "Color"}},
	}
	want := diag.List{
		errorf(RuleSupertypeExists, diag.Class("A"), `supertype "Ghost" does not exist`),
		errorf(RuleSupertypeExists, diag.Class("B"), `supertype "Color" is an enum, not a class`),
	}
	if diff := cmp.Diff(want, runRule(t, RuleSupertypeExists, s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSupertypeAcyclic(t *testing.T) {
	tests := []struct {
		name    string
		classes []*model.ClassDef
		want    diag.List
	}{
		{
			name:    "self supertype",
			classes: []*model.ClassDef{{Name: "Loop", Super: "Loop"}},
			want: diag.List{
				errorf(RuleSupertypeAcyclic, diag.Class("Loop"), "supertype chain is cyclic: Loop -> Loop"),
			},
		},
		{
			name: "two-class cycle with a descendant",
			classes: []*model.ClassDef{
				{Name: "A", Super: "B"},
				{Name: "B", Super: "A"},
				{Name: "C", Super: "A"},
			},
			want: diag.List{
				errorf(RuleSupertypeAcyclic, diag.Class("A"), "supertype chain is cyclic: A -> B -> A"),
				errorf(RuleSupertypeAcyclic, diag.Class("B"), "supertype chain is cyclic: B -> A -> B"),
			},
		},
		{
			name: "self reference is not a cycle",
			classes: []*model.ClassDef{
				{Name: "Node", References: []model.ReferenceDef{
					{Name: "parent", Target: "Node", Multiplicity: model.Optional, Containment: true},
				}},
			},
		},
		{
			name:    "dangling supertype is not a cycle",
			classes: []*model.ClassDef{{Name: "A", Super: "Ghost"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runRule(t, RuleSupertypeAcyclic, &model.Schema{Classes: tt.classes})
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReferenceTarget(t *testing.T) {
	s := &model.Schema{
		Classes: []*model.ClassDef{{
			Name: "Order",
			References: []model.ReferenceDef{
				{Name: "empty", Multiplicity: model.Optional},
				{Name: "status", Target: "Status", Multiplicity: model.Optional},
				{Name: "customer", Target: "Customer", Multiplicity: model.Optional},
				{Name: "self", Target: "Order", Multiplicity: model.Optional},
			},
		}},
		Enums: []*model.EnumDef{{Name: "Status"}},
	}
	want := diag.List{
		errorf(RuleReferenceTarget, diag.Reference("Order", "empty"), "reference has no target class"),
		errorf(RuleReferenceTarget, diag.Reference("Order", "status"), `target "Status" is an enum; model it as an attribute`),
		errorf(RuleReferenceTarget, diag.Reference("Order", "customer"), `target class "Customer" does not exist`),
	}
	if diff := cmp.Diff(want, runRule(t, RuleReferenceTarget, s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiplicityBounds(t *testing.T) {
	s := &model.Schema{
		Classes: []*model.ClassDef{{
			Name: "Order",
			Attributes: []model.AttributeDef{
				{Name: "ok", Type: model.DataType{Kind: model.KindInt}},
				{Name: "inverted", Type: model.DataType{Kind: model.KindInt}, Multiplicity: mult(3, 2)},
				{Name: "negative", Type: model.DataType{Kind: model.KindInt}, Multiplicity: mult(-1, 1)},
			},
			References: []model.ReferenceDef{
				{Name: "zero", Target: "Order", Multiplicity: model.Multiplicity{Lower: 0, Upper: 0}},
			},
		}},
	}
	want := diag.List{
		errorf(RuleMultiplicityBounds, diag.Attribute("Order", "inverted"), "invalid multiplicity 3..2"),
		errorf(RuleMultiplicityBounds, diag.Attribute("Order", "negative"), "invalid multiplicity -1..1"),
		errorf(RuleMultiplicityBounds, diag.Reference("Order", "zero"), "invalid multiplicity 0..0"),
	}
	if diff := cmp.Diff(want, runRule(t, RuleMultiplicityBounds, s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDuplicateMember(t *testing.T) {
	str := model.DataType{Kind: model.KindString}
	s := &model.Schema{
		Classes: []*model.ClassDef{
			{Name: "Base", Attributes: []model.AttributeDef{{Name: "id", Type: str}}},
			{
				Name:  "Child",
				Super: "Base",
				Attributes: []model.AttributeDef{
					{Name: "id", Type: str},
					{Name: "label", Type: str},
					{Name: "label", Type: str},
					{Name: "set", Type: str},
				},
				References: []model.ReferenceDef{
					{Name: "set_", Target: "Base", Multiplicity: model.Optional},
				},
			},
			{Name: "Grandchild", Super: "Child"},
			{Name: "Orphan", Super: "Ghost", Attributes: []model.AttributeDef{{Name: "a", Type: str}, {Name: "a", Type: str}}},
		},
	}
	want := diag.List{
		errorf(RuleDuplicateMember, diag.Attribute("Child", "id"), `attribute "id" clashes with inherited attribute Base.id`),
		errorf(RuleDuplicateMember, diag.Attribute("Child", "label"), `attribute "label" is declared more than once`),
		errorf(RuleDuplicateMember, diag.Reference("Child", "set_"), `reference "set_" collides with "set" once emitted as "set_"`),
	}
	if diff := cmp.Diff(want, runRule(t, RuleDuplicateMember, s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumLiterals(t *testing.T) {
	s := &model.Schema{
		Enums: []*model.EnumDef{{
			Name: "Level",
			Literals: []model.EnumLiteral{
				{Name: "LOW"},
				{Name: "HIGH", Value: intp(5)},
				{Name: "LOW"},
				{Name: "MAX", Value: intp(5)},
				{Name: "HUGE", Value: intp(1 << 40)},
				{Name: "TINY", Value: intp(math.MinInt32 - 1)},
				{Name: "FLOOR", Value: intp(math.MinInt32)},
			},
		}},
	}
	want := diag.List{
		errorf(RuleEnumLiterals, diag.Literal("Level", "LOW"), `literal "LOW" is declared more than once`),
		errorf(RuleEnumLiterals, diag.Literal("Level", "MAX"), `literal "MAX" reuses value 5 of "HIGH"`),
		errorf(RuleEnumLiterals, diag.Literal("Level", "HUGE"), `literal "HUGE" value 1099511627776 is outside the i32 range`),
		errorf(RuleEnumLiterals, diag.Literal("Level", "TINY"), `literal "TINY" value -2147483649 is outside the i32 range`),
	}
	if diff := cmp.Diff(want, runRule(t, RuleEnumLiterals, s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributeType(t *testing.T) {
	s := &model.Schema{
		Classes: []*model.ClassDef{{
			Name: "Sample",
			Attributes: []model.AttributeDef{
				{Name: "count", Type: model.DataType{Kind: model.KindInt}},
				{Name: "ratio", Type: model.DataType{Kind: model.KindFloat}},
				{Name: "handle", Type: model.DataType{Kind: model.KindObject}},
				{Name: "color", Type: model.DataType{Kind: model.KindEnum, Enum: "Color"}},
				{Name: "bad", Type: model.DataType{Kind: model.KindFloat}, Multiplicity: mult(2, 1)},
			},
		}},
	}
	want := diag.List{
		warnf(RuleAttributeType, diag.Attribute("Sample", "ratio"), "lossy mapping: float widened to double"),
		errorf(RuleAttributeType, diag.Attribute("Sample", "handle"), "type object has no IDL equivalent: unmappable type: object"),
		errorf(RuleAttributeType, diag.Attribute("Sample", "color"), `enum type "Color" does not exist`),
	}
	if diff := cmp.Diff(want, runRule(t, RuleAttributeType, s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestContainment(t *testing.T) {
	s := &model.Schema{
		Classes: []*model.ClassDef{{
			Name: "Order",
			References: []model.ReferenceDef{
				{Name: "lines", Target: "Line", Multiplicity: model.Many, Containment: true},
				{Name: "customer", Target: "Customer", Multiplicity: model.Required},
			},
		}},
	}
	want := diag.List{
		warnf(RuleContainment, diag.Reference("Order", "customer"), `non-containment reference to "Customer" is emitted by value`),
	}
	got := runRule(t, RuleContainment, s)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if got.HasErrors() {
		t.Error("containment findings must not block generation")
	}
}

func TestNamingRules(t *testing.T) {
	s := &model.Schema{
		Classes: []*model.ClassDef{
			{Name: "class"},
			{Name: "2Fast", Attributes: []model.AttributeDef{
				{Name: "end", Type: model.DataType{Kind: model.KindLong}},
				{Name: "white space", Type: model.DataType{Kind: model.KindString}},
			}},
		},
		Enums: []*model.EnumDef{
			{Name: "Empty"},
			{Name: "mode", Literals: []model.EnumLiteral{{Name: "true-ish"}}},
		},
	}

	t.Run("identifier-grammar", func(t *testing.T) {
		want := diag.List{
			errorf(RuleIdentifierGrammar, diag.Class("2Fast"), `"2Fast" is not a valid identifier`),
			errorf(RuleIdentifierGrammar, diag.Attribute("2Fast", "white space"), `"white space" is not a valid identifier`),
			errorf(RuleIdentifierGrammar, diag.Literal("mode", "true-ish"), `"true-ish" is not a valid identifier`),
		}
		if diff := cmp.Diff(want, runRule(t, RuleIdentifierGrammar, s)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("reserved-word", func(t *testing.T) {
		want := diag.List{
			warnf(RuleReservedWord, diag.Class("class"), `"class" is a reserved word; emitted as "class_"`),
			warnf(RuleReservedWord, diag.Attribute("2Fast", "end"), `"end" is a reserved word; emitted as "end_"`),
		}
		if diff := cmp.Diff(want, runRule(t, RuleReservedWord, s)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("naming-style", func(t *testing.T) {
		want := diag.List{
			warnf(RuleNamingStyle, diag.Class("class"), `class name "class" should start with an upper-case letter`),
			warnf(RuleNamingStyle, diag.Enum("Empty"), "enum has no literals"),
			warnf(RuleNamingStyle, diag.Enum("mode"), `enum name "mode" should start with an upper-case letter`),
		}
		if diff := cmp.Diff(want, runRule(t, RuleNamingStyle, s)); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCustomValidatorOrder(t *testing.T) {
	var order []string
	tagged := func(name string) Rule {
		return NewRule(name, Structural, func(_ *model.Schema, r *diag.Reporter) {
			order = append(order, name)
			r.Warnf(diag.Schema("s"), "ran")
		})
	}
	v := New(tagged("first"), tagged("second"))

	got := v.Validate(&model.Schema{Name: "s"})
	if diff := cmp.Diff([]string{"first", "second"}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if len(got) != 2 || got[0].Rule != "first" || got[1].Rule != "second" {
		t.Errorf("diagnostics not stamped with their rule: %v", got)
	}
}
