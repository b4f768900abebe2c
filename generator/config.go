// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// Config contains generator configuration.
type Config struct {
	// Types filters to specific class or enum names (empty = all).
	Types []string

	// ResolveDeps includes transitive dependencies when filtering.
	ResolveDeps bool

	// Namespaces maps a target language (e.g. "java", "go") to the
	// namespace declared for it in the output.
	Namespaces map[string]string

	// Source is the schema source path (for headers).
	Source string

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// Filter returns the type filter as a set, expanded through dependencies
// when ResolveDeps is set. It returns nil when every type is selected.
func (c Config) Filter(deps func(map[string]bool) map[string]bool) map[string]bool {
	if len(c.Types) == 0 {
		return nil
	}
	filter := make(map[string]bool, len(c.Types))
	for _, t := range c.Types {
		filter[t] = true
	}
	if c.ResolveDeps && deps != nil {
		return deps(filter)
	}
	return filter
}
