// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/sirupsen/logrus"

	"github.com/albertocavalcante/ecore2thrift/internal/logging/logfields"
	"github.com/albertocavalcante/ecore2thrift/internal/pipeline"
)

// logSink reports the progress of one run through the CLI logger.
type logSink struct {
	log logrus.FieldLogger
}

func newLogSink(source string) logSink {
	return logSink{log: log.WithField(logfields.Source, source)}
}

func (s logSink) PhaseStarted(phase string) {
	s.log.WithField(logfields.Phase, phase).Debug("Phase started")
}

func (s logSink) Finished(state pipeline.State, err error) {
	scopedLog := s.log.WithField(logfields.State, state)
	switch {
	case state == pipeline.Cancelled:
		scopedLog.Info("Run cancelled")
	case err != nil:
		scopedLog.WithError(err).Debug("Run failed")
	default:
		scopedLog.Debug("Run done")
	}
}
