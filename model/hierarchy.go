// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrUnknownClass is returned when a class name does not resolve.
	ErrUnknownClass = errors.New("unknown class")

	// ErrSupertypeCycle is returned when a supertype chain revisits a class.
	ErrSupertypeCycle = errors.New("supertype cycle")
)

// Ancestors returns the supertype chain of the named class, most-base first,
// excluding the class itself.
//
// The schema is not trusted to be acyclic: a chain that revisits a class
// yields an error wrapping ErrSupertypeCycle, and a supertype that does not
// resolve yields an error wrapping ErrUnknownClass.
func (s *Schema) Ancestors(name string) ([]*ClassDef, error) {
	c, ok := s.Class(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownClass, name)
	}

	var chain []*ClassDef
	path := []string{c.Name}
	for c.Super != "" {
		if slices.Contains(path, c.Super) {
			path = append(path, c.Super)
			return nil, fmt.Errorf("%w: %s", ErrSupertypeCycle, strings.Join(path, " -> "))
		}
		super, ok := s.Class(c.Super)
		if !ok {
			return nil, fmt.Errorf("%w %q (supertype of %q)", ErrUnknownClass, c.Super, c.Name)
		}
		chain = append(chain, super)
		path = append(path, super.Name)
		c = super
	}

	slices.Reverse(chain)
	return chain, nil
}
