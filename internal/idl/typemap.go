// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package idl

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/ecore2thrift/model"
)

var (
	// ErrUnmappable is returned for model types with no IDL representation.
	ErrUnmappable = errors.New("unmappable type")

	// ErrInvalidMultiplicity is returned for malformed bounds.
	ErrInvalidMultiplicity = errors.New("invalid multiplicity")
)

// Mapping is the IDL shape of a model member.
type Mapping struct {
	Type         Type
	Requiredness Requiredness

	// Fallback is set when the mapping is lossy but safe, and says why.
	Fallback string
}

// exact maps kinds with a same-width Thrift primitive.
var exact = map[model.Kind]string{
	model.KindBoolean: TypeBool,
	model.KindByte:    TypeI8,
	model.KindShort:   TypeI16,
	model.KindInt:     TypeI32,
	model.KindLong:    TypeI64,
	model.KindDouble:  TypeDouble,
	model.KindString:  TypeString,
	model.KindBytes:   TypeBinary,
}

// fallbacks maps kinds that have no same-width Thrift primitive.
var fallbacks = map[model.Kind]struct {
	base   string
	reason string
}{
	model.KindFloat:      {TypeDouble, "float widened to double"},
	model.KindChar:       {TypeString, "char represented as a one-character string"},
	model.KindDate:       {TypeI64, "date represented as i64 epoch milliseconds"},
	model.KindBigInt:     {TypeString, "big integer represented as a decimal string"},
	model.KindBigDecimal: {TypeString, "big decimal represented as a decimal string"},
}

// MapType maps an attribute type and multiplicity to its IDL shape.
// Types with no IDL representation return an error wrapping ErrUnmappable.
func MapType(dt model.DataType, m model.Multiplicity) (Mapping, error) {
	var (
		t        Type
		fallback string
	)
	switch {
	case dt.Kind == model.KindEnum:
		if dt.Enum == "" {
			return Mapping{}, fmt.Errorf("%w: enum type without an enum name", ErrUnmappable)
		}
		t = Type{Kind: KindEnum, Name: Escape(dt.Enum)}
	case exact[dt.Kind] != "":
		t = Base(exact[dt.Kind])
	default:
		fb, ok := fallbacks[dt.Kind]
		if !ok {
			return Mapping{}, fmt.Errorf("%w: %s", ErrUnmappable, dt)
		}
		t = Base(fb.base)
		fallback = fb.reason
	}

	mapping, err := wrap(t, m)
	if err != nil {
		return Mapping{}, err
	}
	mapping.Fallback = fallback
	return mapping, nil
}

// MapReference maps a reference to the named class.
func MapReference(target string, m model.Multiplicity) (Mapping, error) {
	if target == "" {
		return Mapping{}, fmt.Errorf("%w: reference without a target", ErrUnmappable)
	}
	return wrap(Type{Kind: KindStruct, Name: Escape(target)}, m)
}

// wrap applies multiplicity: single-valued members become optional or
// required scalars, many-valued members become lists.
func wrap(t Type, m model.Multiplicity) (Mapping, error) {
	if !m.Valid() {
		return Mapping{}, fmt.Errorf("%w: %s", ErrInvalidMultiplicity, m)
	}
	req := Optional
	if m.Lower > 0 {
		req = Required
	}
	if m.IsMany() {
		t = ListOf(t)
	}
	return Mapping{Type: t, Requiredness: req}, nil
}
