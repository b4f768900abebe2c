// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Package e2e provides end-to-end compile verification tests.
// These tests verify that generated documents are accepted by the Apache
// Thrift compiler.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/tools/txtar"
)

// Tool installation instructions
var installInstructions = map[string]string{
	"thrift": "thrift is required. Install: https://thrift.apache.org/download",
}

// requireTool fails the test if the tool is not available.
func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		instruction := installInstructions[name]
		if instruction == "" {
			instruction = fmt.Sprintf("Install %s and ensure it's in PATH", name)
		}
		t.Fatalf("%s not found in PATH.\n%s", name, instruction)
	}
}

// TestThriftOutputCompiles generates every e2e schema and runs the thrift
// compiler over the result.
func TestThriftOutputCompiles(t *testing.T) {
	requireTool(t, "thrift")

	files, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %s: %v", file, err)
		}
		tc, err := parseE2ECase(file, ar)
		if err != nil {
			t.Fatalf("parse %s: %v", file, err)
		}
		if tc.exit != 0 {
			continue
		}

		t.Run(filepath.Base(file), func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			tmpDir := t.TempDir()
			inputPath := filepath.Join(tmpDir, tc.inputName)
			if err := os.WriteFile(inputPath, tc.input, 0o644); err != nil {
				t.Fatal(err)
			}

			args := append([]string{"generate", "--yes"}, tc.flags...)
			cmd := exec.CommandContext(ctx, binary, append(args, inputPath)...)
			cmd.Env = withoutOptionEnv(os.Environ())
			var stderr bytes.Buffer
			cmd.Stderr = &stderr
			if err := cmd.Run(); err != nil {
				t.Fatalf("ecore2thrift generate: %v\n%s", err, stderr.String())
			}

			outDir := filepath.Join(tmpDir, "gen")
			if err := os.Mkdir(outDir, 0o755); err != nil {
				t.Fatal(err)
			}

			start := time.Now()
			thrift := exec.CommandContext(ctx, "thrift", "--gen", "py", "-out", outDir, filepath.Join(tmpDir, "input.thrift"))
			output, err := thrift.CombinedOutput()
			if err != nil {
				t.Fatalf("thrift failed: %v\n%s", err, output)
			}
			t.Logf("thrift --gen py: %v", time.Since(start))
		})
	}
}
