// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package validate checks a schema against the fixed rule set that decides
// whether Thrift generation may proceed.
//
// Rules are independent: each inspects the schema on its own and may report
// any number of diagnostics. A run always executes every rule, so callers
// see all violations at once. Rules never modify the schema.
package validate

import (
	"fmt"
	"slices"
	"sync"

	"github.com/albertocavalcante/ecore2thrift/internal/diag"
	"github.com/albertocavalcante/ecore2thrift/model"
)

// Category groups rules by the kind of problem they detect.
type Category string

const (
	Structural Category = "structural"
	Mapping    Category = "mapping"
	Naming     Category = "naming"
)

// Rule is a single check.
type Rule interface {
	// Name is the stable rule identifier recorded on its diagnostics.
	Name() string
	// Category classifies the rule.
	Category() Category
	// Check inspects s and reports findings to r.
	Check(s *model.Schema, r *diag.Reporter)
}

// CheckFunc is the body of a rule.
type CheckFunc func(s *model.Schema, r *diag.Reporter)

type funcRule struct {
	name     string
	category Category
	check    CheckFunc
}

func (f funcRule) Name() string                            { return f.name }
func (f funcRule) Category() Category                      { return f.category }
func (f funcRule) Check(s *model.Schema, r *diag.Reporter) { f.check(s, r) }

// NewRule returns a Rule backed by fn.
func NewRule(name string, category Category, fn CheckFunc) Rule {
	return funcRule{name: name, category: category, check: fn}
}

var (
	mu       sync.RWMutex
	registry []Rule
)

func init() {
	registry = builtin()
}

// Register appends a rule to the default rule set. It panics if a rule with
// the same name is already registered.
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()

	if slices.ContainsFunc(registry, func(x Rule) bool { return x.Name() == r.Name() }) {
		panic(fmt.Sprintf("rule %q already registered", r.Name()))
	}
	registry = append(registry, r)
}

// Get returns a registered rule by name.
func Get(name string) (Rule, bool) {
	mu.RLock()
	defer mu.RUnlock()

	for _, r := range registry {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// List returns the registered rule names in execution order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for _, r := range registry {
		names = append(names, r.Name())
	}
	return names
}

// All returns the registered rules in execution order.
func All() []Rule {
	mu.RLock()
	defer mu.RUnlock()

	return slices.Clone(registry)
}

// Reset restores the built-in rule set (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	registry = builtin()
}

// Validator runs an ordered set of rules.
type Validator struct {
	rules []Rule
}

// New returns a Validator that runs rules in the given order.
func New(rules ...Rule) *Validator {
	return &Validator{rules: slices.Clone(rules)}
}

// Default returns a Validator over the registered rule set.
func Default() *Validator {
	return New(All()...)
}

// Rules returns the rules the validator runs.
func (v *Validator) Rules() []Rule {
	return slices.Clone(v.rules)
}

// Validate runs every rule against s and returns the findings in rule
// order. It is safe to call concurrently; each call owns its collector.
func (v *Validator) Validate(s *model.Schema) diag.List {
	var c diag.Collector
	for _, rule := range v.rules {
		rule.Check(s, c.ForRule(rule.Name()))
	}
	return c.List()
}
