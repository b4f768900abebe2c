// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package idl

import (
	"strings"
	"unicode"
)

// EscapeSuffix is appended to identifiers that clash with a reserved word.
const EscapeSuffix = "_"

// reserved holds Thrift keywords and the words the Thrift compiler reserves
// for its target languages. Matching is case-sensitive, as in the compiler.
var reserved = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`
		include cpp_include namespace const typedef enum struct union exception
		extends service required optional oneway void throws bool byte i8 i16
		i32 i64 double string binary uuid list set map senum slist async
		cpp_type xsd_all xsd_optional xsd_nillable xsd_namespace xsd_attrs
		BEGIN END __CLASS__ __DIR__ __FILE__ __FUNCTION__ __LINE__
		__METHOD__ __NAMESPACE__ abstract alias and args as assert begin
		break case catch class clone continue declare def default del delete
		do dynamic elif else elseif elsif end enddeclare endfor endforeach
		endif endswitch endwhile ensure except exec finally float for foreach
		from function global goto if implements import in inline instanceof
		interface is lambda module native new next nil not or package pass
		print private protected public raise redo rescue retry register
		return self sizeof static super switch synchronized then this throw
		transient try undef unless unsigned until use var virtual volatile
		when while with xor yield`) {
		reserved[w] = true
	}
}

// IsReserved reports whether name is a reserved word in the target IDL.
func IsReserved(name string) bool {
	return reserved[name]
}

// Escape returns name unchanged unless it is reserved, in which case
// EscapeSuffix is appended. The rule is applied to every emitted identifier,
// so repeated runs over the same input produce the same names.
func Escape(name string) string {
	if IsReserved(name) {
		return name + EscapeSuffix
	}
	return name
}

// IsIdentifier reports whether name matches [A-Za-z_][A-Za-z0-9_]*.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r < unicode.MaxASCII && unicode.IsLetter(r):
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

// IsNamespace reports whether name is a dot-separated list of identifiers.
func IsNamespace(name string) bool {
	if name == "" {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if !IsIdentifier(part) {
			return false
		}
	}
	return true
}

// StartsUpper reports whether the first rune of name is upper case.
func StartsUpper(name string) bool {
	for _, r := range name {
		return unicode.IsUpper(r)
	}
	return false
}
