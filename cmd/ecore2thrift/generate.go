// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/ecore2thrift/generator"
	"github.com/albertocavalcante/ecore2thrift/internal/loader"
	"github.com/albertocavalcante/ecore2thrift/internal/logging/logfields"
	"github.com/albertocavalcante/ecore2thrift/internal/option"
	"github.com/albertocavalcante/ecore2thrift/internal/output"
	"github.com/albertocavalcante/ecore2thrift/internal/pipeline"
)

func newGenerateCmd(vp *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [flags] <schema>...",
		Short: "Generate a Thrift document for each schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var cfg option.Config
			if err := cfg.Populate(vp); err != nil {
				return err
			}
			confirm := newConfirmer(&cfg, cmd.InOrStdin(), cmd.ErrOrStderr())
			return runGenerate(cmd.Context(), &cfg, args, cmd.OutOrStdout(), cmd.ErrOrStderr(), confirm.Confirm)
		},
	}

	flags := cmd.Flags()
	flags.String(option.Ext, option.DefaultExt, "Output file extension")
	flags.String(option.Generator, option.DefaultGenerator, "Generator to use")
	flags.String(option.Format, "", "Schema format (json or yaml; default: from the file extension)")
	flags.StringArray(option.Namespace, nil, "Namespace declaration as lang=name (repeatable)")
	flags.StringSlice(option.Types, nil, "Classes and enums to generate (default: all)")
	flags.Bool(option.ResolveDeps, true, "Include the dependencies of --types")
	flags.Bool(option.DryRun, false, "Print to stdout without writing files")
	flags.Bool(option.AssumeYes, false, "Overwrite existing outputs without asking")
	flags.Bool(option.AssumeNo, false, "Keep existing outputs without asking")
	flags.Int(option.Jobs, option.DefaultJobs, "Number of schemas processed concurrently")
	if err := vp.BindPFlags(flags); err != nil {
		log.WithError(err).Fatal("Unable to bind flags")
	}
	return cmd
}

// fileRun is the outcome for one schema argument. Err is set when the
// schema could not be loaded, in which case Result is nil.
type fileRun struct {
	Path   string
	Result *pipeline.Result
	Err    error
}

func runGenerate(ctx context.Context, cfg *option.Config, paths []string, stdout, stderr io.Writer, confirm output.ConfirmFunc) error {
	gen, ok := generator.Get(cfg.Generator)
	if !ok {
		return fmt.Errorf("unknown generator %q (available: %s)", cfg.Generator, strings.Join(generator.List(), ", "))
	}
	format, err := loader.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	orch := pipeline.New(gen, generator.Config{
		Types:       cfg.Types,
		ResolveDeps: cfg.ResolveDeps,
		Namespaces:  cfg.Namespaces,
	})
	orch.Extension = cfg.Ext

	runs := make([]fileRun, len(paths))
	var g errgroup.Group
	g.SetLimit(cfg.Jobs)
	for i, path := range paths {
		g.Go(func() error {
			runs[i] = process(ctx, orch, loader.Options{Path: path, Format: format}, cfg.DryRun, confirm)
			return nil
		})
	}
	_ = g.Wait()

	return report(ctx, runs, cfg.DryRun, stdout, stderr)
}

func process(ctx context.Context, orch *pipeline.Orchestrator, opts loader.Options, dryRun bool, confirm output.ConfirmFunc) fileRun {
	loaded, err := loader.Load(ctx, opts)
	if err != nil {
		return fileRun{Path: opts.Path, Err: err}
	}
	res := orch.Run(ctx, pipeline.Request{
		Model:            loaded.Model,
		SourcePath:       opts.Path,
		ConfirmOverwrite: confirm,
		Progress:         newLogSink(opts.Path),
		DryRun:           dryRun,
	})
	return fileRun{Path: opts.Path, Result: res}
}

// report prints diagnostics and dry-run documents in argument order and
// returns an error if any schema failed.
func report(ctx context.Context, runs []fileRun, dryRun bool, stdout, stderr io.Writer) error {
	failed := 0
	for _, r := range runs {
		if r.Err != nil {
			if ctx.Err() != nil && errors.Is(r.Err, ctx.Err()) {
				log.WithField(logfields.Source, r.Path).Info("Skipped after interrupt")
				continue
			}
			fmt.Fprintf(stderr, "%s: error: %v\n", r.Path, r.Err)
			failed++
			continue
		}

		for _, d := range r.Result.Diagnostics {
			fmt.Fprintf(stderr, "%s: %s\n", r.Path, d)
		}
		switch r.Result.State {
		case pipeline.Failed:
			failed++
			// Blocking diagnostics were printed above.
			if !errors.Is(r.Result.Err, pipeline.ErrValidationBlocked) {
				fmt.Fprintf(stderr, "%s: error: %v\n", r.Path, r.Result.Err)
			}
		case pipeline.Done:
			if dryRun {
				if _, err := stdout.Write(r.Result.Content); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				continue
			}
			log.WithFields(logrus.Fields{
				logfields.Source: r.Path,
				logfields.Path:   r.Result.OutputPath,
				logfields.Bytes:  len(r.Result.Content),
			}).Info("Wrote output")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d schemas failed", failed, len(runs))
	}
	return ctx.Err()
}
