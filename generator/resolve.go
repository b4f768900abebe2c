// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/ecore2thrift/model"

// ResolveDeps expands a type filter to include all transitively
// referenced types from the schema. Returns nil if filter is nil
// (meaning "generate all types").
//
// A class depends on its supertype, the targets of its references and the
// enums its attributes use. Names that do not resolve are kept as given.
func ResolveDeps(s *model.Schema, filter map[string]bool) map[string]bool {
	if filter == nil {
		return nil
	}

	expanded := make(map[string]bool)
	for name := range filter {
		collectDeps(s, name, expanded)
	}
	return expanded
}

// collectDeps recursively collects all types referenced by typeName.
func collectDeps(s *model.Schema, typeName string, visited map[string]bool) {
	if visited[typeName] {
		return // Already processed or cycle
	}
	visited[typeName] = true

	c, ok := s.Class(typeName)
	if !ok {
		return // Enums don't reference other types
	}
	if c.Super != "" {
		collectDeps(s, c.Super, visited)
	}
	for _, a := range c.Attributes {
		if a.Type.Kind == model.KindEnum && a.Type.Enum != "" {
			collectDeps(s, a.Type.Enum, visited)
		}
	}
	for _, r := range c.References {
		if r.Target != "" {
			collectDeps(s, r.Target, visited)
		}
	}
}
