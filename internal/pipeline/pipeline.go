// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package pipeline runs one schema through validation, generation and
// output, gating generation on the absence of Error diagnostics.
//
// A run is strictly sequential and owns everything it produces. Cancellation
// is cooperative: it is observed before generation and before writing, never
// in the middle of a phase, so a cancelled run never leaves a partial
// document behind. Independent runs share no mutable state and may execute
// concurrently on one Orchestrator.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/albertocavalcante/ecore2thrift/generator"
	"github.com/albertocavalcante/ecore2thrift/internal/diag"
	"github.com/albertocavalcante/ecore2thrift/internal/idl"
	"github.com/albertocavalcante/ecore2thrift/internal/logging"
	"github.com/albertocavalcante/ecore2thrift/internal/logging/logfields"
	"github.com/albertocavalcante/ecore2thrift/internal/output"
	"github.com/albertocavalcante/ecore2thrift/internal/validate"
	"github.com/albertocavalcante/ecore2thrift/model"
)

var (
	// ErrValidationBlocked is the failure of a run whose validation found
	// at least one Error diagnostic.
	ErrValidationBlocked = errors.New("validation blocked generation")

	// ErrGeneration wraps faults raised while generating.
	ErrGeneration = errors.New("generation failed")

	// ErrWrite wraps faults raised while writing the output.
	ErrWrite = errors.New("write failed")

	// ErrNoModel is the generation fault of a request without a model.
	ErrNoModel = errors.New("no model to generate from")

	// ErrDestinationIsSource is the write fault of a run whose output path
	// would replace the schema document itself.
	ErrDestinationIsSource = errors.New("destination is the source document")
)

// Validator produces the diagnostics for a schema.
type Validator interface {
	Validate(s *model.Schema) diag.List
}

// Writer persists a rendered document.
type Writer interface {
	Write(path string, content []byte, confirm output.ConfirmFunc) (output.Status, error)
}

// Request is the input of one run.
type Request struct {
	// Model is the schema to translate. It is only read.
	Model *model.Schema

	// SourcePath is the schema file; the output is written next to it.
	SourcePath string

	// ConfirmOverwrite decides whether an existing output may be
	// replaced. Nil declines.
	ConfirmOverwrite output.ConfirmFunc

	// Progress observes the run. Nil discards events.
	Progress ProgressSink

	// Cancelled is polled at phase boundaries. Nil never cancels.
	Cancelled func() bool

	// DryRun stops after generation without writing.
	DryRun bool
}

// Result is the outcome of one run.
type Result struct {
	// State is always terminal.
	State State

	// Diagnostics holds every validation finding, whatever the outcome.
	Diagnostics diag.List

	// OutputPath is set only when the document was written.
	OutputPath string

	// Document and Content are set only when the run reached Done.
	Document *idl.Document
	Content  []byte

	// Err is the cause of a Failed run, or nil.
	Err error
}

// Orchestrator wires the phases of a run together.
type Orchestrator struct {
	Validator Validator
	Generator generator.Generator
	Writer    Writer

	// Extension replaces the source extension to form the output path.
	// Empty means the generator's primary extension.
	Extension string

	// Config is passed to the generator; Source is filled per run.
	Config generator.Config

	Logger logrus.FieldLogger
}

// New returns an Orchestrator using the registered validation rules, an
// atomic file writer and gen.
func New(gen generator.Generator, cfg generator.Config) *Orchestrator {
	return &Orchestrator{
		Validator: validate.Default(),
		Generator: gen,
		Writer:    &output.Writer{},
		Config:    cfg,
	}
}

func (o *Orchestrator) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.DefaultLogger.WithField(logfields.LogSubsys, "pipeline")
}

func (o *Orchestrator) extension() string {
	if o.Extension != "" {
		return o.Extension
	}
	return o.Generator.Metadata().Extension()
}

// Run executes one run to a terminal state on the calling goroutine.
func (o *Orchestrator) Run(ctx context.Context, req Request) *Result {
	r := &run{
		o:    o,
		ctx:  ctx,
		req:  req,
		sink: req.Progress,
		log:  o.logger().WithField(logfields.Source, req.SourcePath),
	}
	if r.sink == nil {
		r.sink = nopSink{}
	}
	return r.execute()
}

// run is the state of a single execution.
type run struct {
	o    *Orchestrator
	ctx  context.Context
	req  Request
	sink ProgressSink
	log  logrus.FieldLogger
}

func (r *run) cancelled() bool {
	if r.ctx.Err() != nil {
		return true
	}
	return r.req.Cancelled != nil && r.req.Cancelled()
}

func (r *run) finish(res *Result, state State, err error) *Result {
	res.State = state
	res.Err = err
	if state != Done {
		res.Document = nil
		res.Content = nil
	}

	scopedLog := r.log.WithField(logfields.State, state)
	if err != nil {
		scopedLog.WithError(err).Debug("Run finished")
	} else {
		scopedLog.Debug("Run finished")
	}
	r.sink.Finished(state, err)
	return res
}

func (r *run) execute() *Result {
	res := &Result{}

	// Validating
	r.sink.PhaseStarted(PhaseValidate)
	if r.req.Model != nil {
		res.Diagnostics = r.o.Validator.Validate(r.req.Model)
	}
	errs := res.Diagnostics.Filter(diag.Error)
	r.log.WithFields(logrus.Fields{
		logfields.Errors:   len(errs),
		logfields.Warnings: len(res.Diagnostics) - len(errs),
	}).Debug("Validation finished")
	if len(errs) > 0 {
		return r.finish(res, Failed, fmt.Errorf("%w: %w", ErrValidationBlocked, errs))
	}

	if r.cancelled() {
		return r.finish(res, Cancelled, nil)
	}

	// Generating
	r.sink.PhaseStarted(PhaseGenerate)
	if r.req.Model == nil {
		return r.finish(res, Failed, fmt.Errorf("%w: %w", ErrGeneration, ErrNoModel))
	}
	cfg := r.o.Config
	cfg.Source = r.req.SourcePath
	// A started phase runs to completion; cancellation waits for the
	// next boundary.
	out, err := r.generate(cfg)
	if err != nil {
		return r.finish(res, Failed, fmt.Errorf("%w: %w", ErrGeneration, err))
	}
	res.Document = out.Document
	res.Content = out.Content

	if r.req.DryRun {
		return r.finish(res, Done, nil)
	}
	if r.cancelled() {
		return r.finish(res, Cancelled, nil)
	}

	// Writing
	r.sink.PhaseStarted(PhaseWrite)
	if r.req.SourcePath == "" {
		return r.finish(res, Failed, fmt.Errorf("%w: no source path to derive the destination from", ErrWrite))
	}
	path := output.Destination(r.req.SourcePath, r.o.extension())
	if filepath.Clean(path) == filepath.Clean(r.req.SourcePath) {
		return r.finish(res, Failed, fmt.Errorf("%w: %w: %s", ErrWrite, ErrDestinationIsSource, path))
	}
	status, err := r.o.Writer.Write(path, out.Content, r.req.ConfirmOverwrite)
	switch {
	case err != nil:
		return r.finish(res, Failed, fmt.Errorf("%w: %w", ErrWrite, err))
	case status == output.Aborted:
		r.log.WithField(logfields.Path, path).Info("Kept existing output")
		return r.finish(res, Cancelled, nil)
	}
	res.OutputPath = path
	return r.finish(res, Done, nil)
}

// generate runs the generator, turning a panic into a generation fault.
func (r *run) generate(cfg generator.Config) (out *generator.Output, err error) {
	defer func() {
		if p := recover(); p != nil {
			r.log.WithField(logfields.Generator, r.o.Generator.Metadata().Name).
				Debugf("Generator panicked:\n%s", debug.Stack())
			out, err = nil, fmt.Errorf("panic: %v", p)
		}
	}()
	out, err = r.o.Generator.Generate(context.WithoutCancel(r.ctx), r.req.Model, cfg)
	if err == nil && out == nil {
		err = errors.New("generator returned no output")
	}
	return out, err
}

// Task is a run executing on its own goroutine.
type Task struct {
	done   chan struct{}
	result *Result
}

// Start begins a run in the background and returns immediately.
func (o *Orchestrator) Start(ctx context.Context, req Request) *Task {
	t := &Task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.result = o.Run(ctx, req)
	}()
	return t
}

// Done is closed when the run reaches a terminal state.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the run finishes and returns its result.
func (t *Task) Wait() *Result {
	<-t.done
	return t.result
}
