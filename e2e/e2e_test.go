// SPDX-License-Identifier: MIT

// Package e2e provides end-to-end tests for the ecore2thrift CLI.
package e2e

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

var (
	binary string                                              // path to built ecore2thrift binary
	update = flag.Bool("update", false, "update golden files")
)

func TestMain(m *testing.M) {
	flag.Parse()

	// Build the ecore2thrift binary to a temp location.
	tmpDir, err := os.MkdirTemp("", "ecore2thrift-e2e-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}

	binary = filepath.Join(tmpDir, "ecore2thrift")
	if err := buildBinary(binary); err != nil {
		fmt.Fprintf(os.Stderr, "failed to build binary: %v\n", err)
		os.RemoveAll(tmpDir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// buildBinary builds the ecore2thrift binary to the specified path.
func buildBinary(outputPath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "build", "-o", outputPath, "./cmd/ecore2thrift")

	moduleRoot, err := findModuleRoot()
	if err != nil {
		return fmt.Errorf("find module root: %w", err)
	}
	cmd.Dir = moduleRoot

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w: %s", err, stderr.String())
	}

	return nil
}

// findModuleRoot finds the root of the Go module by looking for go.mod.
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found")
		}
		dir = parent
	}
}

func TestE2E(t *testing.T) {
	testdataDir := filepath.Join("testdata")

	pattern := filepath.Join(testdataDir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", testdataDir)
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		t.Run(name, func(t *testing.T) {
			runTestCase(t, file, name)
		})
	}
}

// runTestCase executes a single e2e test case.
func runTestCase(t *testing.T, file, name string) {
	t.Helper()

	ar, err := txtar.ParseFile(file)
	if err != nil {
		t.Fatalf("parse txtar: %v", err)
	}

	tc, err := parseE2ECase(name, ar)
	if err != nil {
		t.Fatalf("parse case: %v", err)
	}

	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, tc.inputName)
	if err := os.WriteFile(inputPath, tc.input, 0o644); err != nil {
		t.Fatalf("write %s: %v", tc.inputName, err)
	}

	args := append([]string{"generate", "--dry-run"}, tc.flags...)
	args = append(args, inputPath)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = withoutOptionEnv(os.Environ())
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("command failed: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}
	if exitCode != tc.exit {
		t.Logf("command: %s %s", binary, strings.Join(args, " "))
		t.Logf("stderr: %s", stderr.String())
		t.Fatalf("exit code = %d, want %d", exitCode, tc.exit)
	}

	got := map[string][]byte{
		"stdout": stdout.Bytes(),
	}
	// stderr is only compared when the case pins it.
	if _, ok := tc.want["stderr"]; ok || *update && tc.exit != 0 {
		got["stderr"] = bytes.ReplaceAll(stderr.Bytes(), []byte(tmpDir+string(filepath.Separator)), nil)
	}

	if *update {
		updated := updateE2EArchive(ar, tc.inputName, got)
		if err := os.WriteFile(file, txtar.Format(updated), 0o644); err != nil {
			t.Fatalf("write updated file: %v", err)
		}
		t.Logf("updated %s", file)
		return
	}

	compareOutput(t, tc.want, got)
}

// e2eCase represents a parsed e2e test case.
type e2eCase struct {
	name        string
	description string
	flags       []string
	exit        int
	inputName   string
	input       []byte
	want        map[string][]byte
}

// parseE2ECase parses a txtar archive into an e2e test case.
func parseE2ECase(name string, ar *txtar.Archive) (*e2eCase, error) {
	c := &e2eCase{
		name:        name,
		description: string(ar.Comment),
		want:        make(map[string][]byte),
	}

	if err := c.parseDirectives(); err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == "input.json" || f.Name == "input.yaml":
			c.inputName = f.Name
			c.input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			relPath := strings.TrimPrefix(f.Name, "want/")
			c.want[relPath] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input.json, input.yaml or want/*)", f.Name)
		}
	}

	if c.input == nil {
		return nil, fmt.Errorf("missing input.json or input.yaml in archive")
	}

	if _, ok := c.want["stdout"]; !ok {
		return nil, fmt.Errorf("missing want/stdout in archive")
	}

	return c, nil
}

// parseDirectives extracts the "Flags: ..." and "Exit: N" lines of the
// description. Flags are space-separated to match CLI conventions.
func (c *e2eCase) parseDirectives() error {
	for _, line := range strings.Split(c.description, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Flags:"):
			c.flags = strings.Fields(strings.TrimPrefix(line, "Flags:"))
		case strings.HasPrefix(line, "Exit:"):
			code, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Exit:")))
			if err != nil {
				return fmt.Errorf("invalid exit directive %q: %w", line, err)
			}
			c.exit = code
		}
	}
	return nil
}

// withoutOptionEnv drops ECORE2THRIFT_* variables so the host environment
// cannot change the outcome.
func withoutOptionEnv(env []string) []string {
	var out []string
	for _, e := range env {
		if !strings.HasPrefix(e, "ECORE2THRIFT_") {
			out = append(out, e)
		}
	}
	return out
}

// compareOutput compares expected and actual output.
func compareOutput(t *testing.T, want, got map[string][]byte) {
	t.Helper()

	for wantFile := range want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output: %q", wantFile)
		}
	}

	for gotFile := range got {
		if _, ok := want[gotFile]; !ok {
			t.Errorf("unexpected output: %q", gotFile)
		}
	}

	for wantFile, wantContent := range want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing.
		}

		if diff := cmp.Diff(normalizeOutput(wantContent), normalizeOutput(gotContent)); diff != "" {
			t.Errorf("%q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// normalizeOutput trims trailing whitespace from each line and trailing
// newlines from the content.
func normalizeOutput(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// updateE2EArchive updates a txtar archive with new output.
func updateE2EArchive(ar *txtar.Archive, inputName string, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if f.Name == inputName {
			result.Files = append(result.Files, f)
			break
		}
	}

	var names []string
	for name := range got {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: got[name],
		})
	}

	return result
}
