// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package model

import "strings"

// Kind classifies the value type of an attribute.
type Kind string

// Attribute kinds.
const (
	KindBoolean    Kind = "boolean"
	KindByte       Kind = "byte"
	KindShort      Kind = "short"
	KindInt        Kind = "int"
	KindLong       Kind = "long"
	KindFloat      Kind = "float"
	KindDouble     Kind = "double"
	KindString     Kind = "string"
	KindBytes      Kind = "bytes"
	KindChar       Kind = "char"
	KindDate       Kind = "date"
	KindBigInt     Kind = "bigint"
	KindBigDecimal Kind = "bigdecimal"
	KindEnum       Kind = "enum"
	KindObject     Kind = "object"
	KindMap        Kind = "map"
)

// DataType is the type of an attribute. Enum is set only for KindEnum.
type DataType struct {
	Kind Kind   `json:"kind" yaml:"kind"`
	Enum string `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// String returns the kind, qualified with the enum name for enum types.
func (t DataType) String() string {
	if t.Kind == KindEnum {
		return "enum " + t.Enum
	}
	return string(t.Kind)
}

// kindAliases maps Ecore data type names and common spellings to kinds.
var kindAliases = map[string]Kind{
	"eboolean":         KindBoolean,
	"ebooleanobject":   KindBoolean,
	"bool":             KindBoolean,
	"ebyte":            KindByte,
	"ebyteobject":      KindByte,
	"int8":             KindByte,
	"eshort":           KindShort,
	"eshortobject":     KindShort,
	"int16":            KindShort,
	"eint":             KindInt,
	"eintegerobject":   KindInt,
	"integer":          KindInt,
	"int32":            KindInt,
	"elong":            KindLong,
	"elongobject":      KindLong,
	"int64":            KindLong,
	"efloat":           KindFloat,
	"efloatobject":     KindFloat,
	"float32":          KindFloat,
	"edouble":          KindDouble,
	"edoubleobject":    KindDouble,
	"float64":          KindDouble,
	"estring":          KindString,
	"ebytearray":       KindBytes,
	"binary":           KindBytes,
	"echar":            KindChar,
	"echaracterobject": KindChar,
	"edate":            KindDate,
	"ebiginteger":      KindBigInt,
	"ebigdecimal":      KindBigDecimal,
	"ejavaobject":      KindObject,
	"ejavaclass":       KindObject,
	"emap":             KindMap,
	"eemap":            KindMap,
}

// LookupKind resolves a type name (a kind, an Ecore EDataType name such as
// "EInt", or a width-qualified alias such as "int32") case-insensitively.
func LookupKind(name string) (Kind, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	switch k := Kind(lower); k {
	case KindBoolean, KindByte, KindShort, KindInt, KindLong, KindFloat,
		KindDouble, KindString, KindBytes, KindChar, KindDate, KindBigInt,
		KindBigDecimal, KindEnum, KindObject, KindMap:
		return k, true
	}
	k, ok := kindAliases[lower]
	return k, ok
}
