// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package option holds the command-line configuration of ecore2thrift.
package option

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/albertocavalcante/ecore2thrift/internal/idl"
)

// Option keys, shared by flags, environment variables and the config file.
const (
	// ConfigFile is an optional YAML file with option values.
	ConfigFile = "config"

	// DebugArg enables debug logging.
	DebugArg = "debug"

	// LogFormat selects text or json log lines.
	LogFormat = "log-format"

	// Ext is the output file extension.
	Ext = "ext"

	// Generator names the registered generator to use.
	Generator = "generator"

	// Format forces the schema document format.
	Format = "format"

	// Namespace is a repeatable lang=namespace declaration.
	Namespace = "namespace"

	// Types restricts generation to the named classes and enums.
	Types = "types"

	// ResolveDeps adds the dependencies of the selected types.
	ResolveDeps = "resolve-deps"

	// DryRun prints the documents instead of writing them.
	DryRun = "dry-run"

	// AssumeYes approves every overwrite.
	AssumeYes = "yes"

	// AssumeNo declines every overwrite.
	AssumeNo = "no"

	// Jobs bounds the number of schemas processed concurrently.
	Jobs = "jobs"
)

// EnvPrefix prefixes the environment variable of every option, as in
// ECORE2THRIFT_DRY_RUN.
const EnvPrefix = "ecore2thrift"

// Defaults.
const (
	DefaultExt       = ".thrift"
	DefaultGenerator = "thrift"
	DefaultJobs      = 4
)

// Config is the resolved configuration of one invocation.
type Config struct {
	Debug       bool
	LogFormat   string
	Ext         string
	Generator   string
	Format      string
	Namespaces  map[string]string
	Types       []string
	ResolveDeps bool
	DryRun      bool
	AssumeYes   bool
	AssumeNo    bool
	Jobs        int
}

// NewViper returns a viper instance that also reads ECORE2THRIFT_*
// environment variables.
func NewViper() *viper.Viper {
	vp := viper.New()
	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	return vp
}

// ReadConfigFile merges the file named by the ConfigFile option, if any.
func ReadConfigFile(vp *viper.Viper) error {
	path := vp.GetString(ConfigFile)
	if path == "" {
		return nil
	}
	vp.SetConfigFile(path)
	if err := vp.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return nil
}

// Populate fills c from vp and checks the combination of values.
func (c *Config) Populate(vp *viper.Viper) error {
	c.Debug = vp.GetBool(DebugArg)
	c.LogFormat = vp.GetString(LogFormat)
	c.Ext = vp.GetString(Ext)
	c.Generator = vp.GetString(Generator)
	c.Format = vp.GetString(Format)
	c.Types = splitList(vp.GetStringSlice(Types))
	c.ResolveDeps = vp.GetBool(ResolveDeps)
	c.DryRun = vp.GetBool(DryRun)
	c.AssumeYes = vp.GetBool(AssumeYes)
	c.AssumeNo = vp.GetBool(AssumeNo)
	c.Jobs = vp.GetInt(Jobs)

	if c.Ext == "" {
		c.Ext = DefaultExt
	}
	if c.Generator == "" {
		c.Generator = DefaultGenerator
	}
	if c.Jobs < 1 {
		c.Jobs = 1
	}

	var errs []error
	if c.AssumeYes && c.AssumeNo {
		errs = append(errs, fmt.Errorf("--%s and --%s are mutually exclusive", AssumeYes, AssumeNo))
	}
	ns, err := ParseNamespaces(vp.GetStringSlice(Namespace))
	if err != nil {
		errs = append(errs, err)
	}
	c.Namespaces = ns
	return errors.Join(errs...)
}

// ParseNamespaces parses "lang=name" declarations. A later declaration for
// the same language replaces an earlier one. Names must be dotted
// identifiers.
func ParseNamespaces(decls []string) (map[string]string, error) {
	if len(decls) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(decls))
	for _, d := range decls {
		lang, name, ok := strings.Cut(strings.TrimSpace(d), "=")
		lang, name = strings.TrimSpace(lang), strings.TrimSpace(name)
		switch {
		case !ok || lang == "" || name == "":
			return nil, fmt.Errorf("invalid namespace %q: want lang=name", d)
		case lang != "*" && !idl.IsIdentifier(lang):
			return nil, fmt.Errorf("invalid namespace language %q", lang)
		case !idl.IsNamespace(name):
			return nil, fmt.Errorf("invalid namespace %q for %s: want dotted identifiers", name, lang)
		}
		out[lang] = name
	}
	return out, nil
}

// splitList flattens comma-separated entries and drops empty ones.
func splitList(in []string) []string {
	var out []string
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" && !slices.Contains(out, part) {
				out = append(out, part)
			}
		}
	}
	return out
}
