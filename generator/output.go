// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import "github.com/albertocavalcante/ecore2thrift/internal/idl"

// Output is the result of one generation.
type Output struct {
	// Document is the structured form of the generated IDL.
	Document *idl.Document

	// Content is the rendered text, UTF-8 and newline-terminated.
	Content []byte
}
