// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/ecore2thrift/internal/logging"
	"github.com/albertocavalcante/ecore2thrift/internal/logging/logfields"
	"github.com/albertocavalcante/ecore2thrift/internal/option"
)

var log = logging.DefaultLogger.WithField(logfields.LogSubsys, "cli")

// newRootCmd returns the ecore2thrift command tree bound to a fresh viper
// instance.
func newRootCmd() *cobra.Command {
	vp := option.NewViper()

	rootCmd := &cobra.Command{
		Use:           "ecore2thrift",
		Short:         "Generate Apache Thrift IDL from Ecore metamodels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := option.ReadConfigFile(vp); err != nil {
				return err
			}
			logging.SetupLogging(logging.LogOptions{
				logging.FormatOpt: vp.GetString(option.LogFormat),
			}, vp.GetBool(option.DebugArg))
			if path := vp.ConfigFileUsed(); path != "" {
				log.WithField(logfields.Path, path).Debug("Loaded config file")
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP(option.DebugArg, "D", false, "Enable debug messages")
	flags.String(option.LogFormat, string(logging.DefaultLogFormat), "Log format (text or json)")
	flags.String(option.ConfigFile, "", "YAML file with option values")
	if err := vp.BindPFlags(flags); err != nil {
		log.WithError(err).Fatal("Unable to bind flags")
	}

	rootCmd.AddCommand(
		newGenerateCmd(vp),
		newVersionCmd(),
	)
	return rootCmd
}
