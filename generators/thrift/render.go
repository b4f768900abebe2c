// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package thrift

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/ecore2thrift/internal/idl"
)

// HeaderLine is the first line of every generated file.
const HeaderLine = "// Code generated by ecore2thrift. DO NOT EDIT."

// Render formats doc as Thrift IDL. Declarations are separated by one blank
// line and the output ends with a single newline.
func Render(doc *idl.Document, indent string) []byte {
	var blocks []string

	blocks = append(blocks, renderHeader(doc))

	if len(doc.Namespaces) > 0 {
		var b strings.Builder
		for _, ns := range doc.Namespaces {
			fmt.Fprintf(&b, "namespace %s %s\n", ns.Lang, ns.Name)
		}
		blocks = append(blocks, b.String())
	}

	for _, e := range doc.Enums {
		blocks = append(blocks, renderEnum(e, indent))
	}
	for _, s := range doc.Structs {
		blocks = append(blocks, renderStruct(s, indent))
	}

	return []byte(strings.Join(blocks, "\n"))
}

func renderHeader(doc *idl.Document) string {
	var b strings.Builder
	b.WriteString(HeaderLine + "\n")
	if doc.Source != "" {
		fmt.Fprintf(&b, "// Source: %s\n", doc.Source)
	}
	switch {
	case doc.Schema != "" && doc.NsURI != "":
		fmt.Fprintf(&b, "// Schema: %s (%s)\n", doc.Schema, doc.NsURI)
	case doc.Schema != "":
		fmt.Fprintf(&b, "// Schema: %s\n", doc.Schema)
	}
	return b.String()
}

func renderEnum(e idl.Enum, indent string) string {
	var b strings.Builder
	writeDoc(&b, "", e.Doc)
	fmt.Fprintf(&b, "enum %s {\n", e.Name)
	for _, v := range e.Values {
		fmt.Fprintf(&b, "%s%s = %d,\n", indent, v.Name, v.Value)
	}
	b.WriteString("}\n")
	return b.String()
}

func renderStruct(s idl.Struct, indent string) string {
	var b strings.Builder
	writeDoc(&b, "", s.Doc)
	fmt.Fprintf(&b, "struct %s {\n", s.Name)
	for _, f := range s.Fields {
		writeDoc(&b, indent, f.Doc)
		fmt.Fprintf(&b, "%s%d: %s %s %s,\n", indent, f.ID, f.Requiredness, f.Type, f.Name)
	}
	b.WriteString("}\n")
	return b.String()
}

func writeDoc(b *strings.Builder, indent, doc string) {
	for _, line := range docLines(doc) {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			b.WriteString(indent + "//\n")
			continue
		}
		fmt.Fprintf(b, "%s// %s\n", indent, line)
	}
}
