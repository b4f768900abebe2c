// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/albertocavalcante/ecore2thrift/generator"
	"github.com/albertocavalcante/ecore2thrift/generators/thrift"
)

func init() {
	generator.Register(thrift.NewGenerator())
}
