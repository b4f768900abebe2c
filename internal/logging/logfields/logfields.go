// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package logfields defines common logging fields which are used across packages
package logfields

const (
	// LogSubsys is the field denoting the subsystem when logging
	LogSubsys = "subsys"

	// Path is a filesystem path
	Path = "path"

	// Source is the schema document a run was started for
	Source = "source"

	// Phase is a pipeline phase name
	Phase = "phase"

	// State is a terminal pipeline state
	State = "state"

	// Element is the model element a diagnostic refers to
	Element = "element"

	// Generator is the name of the generator used
	Generator = "generator"

	// Bytes is a byte count
	Bytes = "bytes"

	// Errors is a count of Error diagnostics
	Errors = "errors"

	// Warnings is a count of Warning diagnostics
	Warnings = "warnings"

	// Type is an IDL type name
	Type = "type"
)
