// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package output persists generated documents next to their source schema.
package output

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"github.com/sirupsen/logrus"

	"github.com/albertocavalcante/ecore2thrift/internal/logging"
	"github.com/albertocavalcante/ecore2thrift/internal/logging/logfields"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "output")

// DefaultPerm is the mode of newly created output files.
const DefaultPerm fs.FileMode = 0o644

// Status is the outcome of a write.
type Status int

const (
	// Written means the destination now holds the complete document.
	Written Status = iota
	// Aborted means an existing destination was kept because the overwrite
	// was declined. It is not an error.
	Aborted
)

func (s Status) String() string {
	if s == Aborted {
		return "aborted"
	}
	return "written"
}

// ConfirmFunc decides whether an existing file at path may be replaced.
type ConfirmFunc func(path string) bool

// Destination returns the output path for source: its final extension is
// replaced by ext, or ext is appended when source has none. An ".ecore"
// left in front of the replaced extension, as in "people.ecore.yaml", is
// dropped as well.
func Destination(source, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	base := strings.TrimSuffix(source, filepath.Ext(source))
	base = strings.TrimSuffix(base, ".ecore")
	return base + ext
}

// Writer writes documents atomically.
type Writer struct {
	// Perm is the mode used for new files; zero means DefaultPerm.
	// Existing files keep their mode.
	Perm fs.FileMode
}

// Write persists content at path. When path already exists, confirm is
// asked first; a nil confirm declines. The destination is replaced by an
// atomic rename, so it either keeps its previous content or holds all of
// content.
func (w *Writer) Write(path string, content []byte, confirm ConfirmFunc) (Status, error) {
	scopedLog := log.WithField(logfields.Path, path)

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return Written, fmt.Errorf("destination %s is a directory", path)
	case err == nil:
		if confirm == nil || !confirm(path) {
			scopedLog.Debug("Overwrite declined")
			return Aborted, nil
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return Written, fmt.Errorf("stat destination: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Written, fmt.Errorf("create output directory: %w", err)
	}

	perm := w.Perm
	if perm == 0 {
		perm = DefaultPerm
	}
	if err := writeAtomic(path, content, perm); err != nil {
		return Written, err
	}

	scopedLog.WithFields(logrus.Fields{logfields.Bytes: len(content)}).Debug("Wrote output")
	return Written, nil
}

// writeAtomic writes content to a pending file in the destination directory
// and renames it into place. Cleanup removes the pending file on every
// failure path and is a no-op after a successful replace.
func writeAtomic(path string, content []byte, perm fs.FileMode) error {
	f, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(perm),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("failed to open temporary file: %w", err)
	}
	defer f.Cleanup()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
