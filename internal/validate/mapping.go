// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package validate

import (
	"errors"

	"github.com/albertocavalcante/ecore2thrift/internal/diag"
	"github.com/albertocavalcante/ecore2thrift/internal/idl"
	"github.com/albertocavalcante/ecore2thrift/model"
)

// checkAttributeTypes reports attributes whose data type cannot be
// expressed in the IDL, and warns about lossy mappings. Malformed bounds are
// left to the multiplicity rule.
func checkAttributeTypes(s *model.Schema, r *diag.Reporter) {
	for _, c := range s.Classes {
		for _, a := range c.Attributes {
			el := diag.Attribute(c.Name, a.Name)
			if a.Type.Kind == model.KindEnum && a.Type.Enum != "" && !hasEnum(s, a.Type.Enum) {
				r.Errorf(el, "enum type %q does not exist", a.Type.Enum)
				continue
			}
			m, err := idl.MapType(a.Type, a.Bounds())
			switch {
			case errors.Is(err, idl.ErrInvalidMultiplicity):
			case err != nil:
				r.Errorf(el, "type %s has no IDL equivalent: %v", a.Type, err)
			case m.Fallback != "":
				r.Warnf(el, "lossy mapping: %s", m.Fallback)
			}
		}
	}
}

// checkContainment warns about non-containment references. The IDL has no
// pointer semantics, so such references are emitted as nested copies.
func checkContainment(s *model.Schema, r *diag.Reporter) {
	for _, c := range s.Classes {
		for _, ref := range c.References {
			if !ref.Containment {
				r.Warnf(diag.Reference(c.Name, ref.Name), "non-containment reference to %q is emitted by value", ref.Target)
			}
		}
	}
}
