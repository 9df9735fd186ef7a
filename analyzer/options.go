// Copyright 2026 The globalscope Authors. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"log/slog"

	"github.com/scopetools/globalscope/internal/config"
)

// Option configures specific behavior of a [New] globalscope analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithSkipUnused is an [Option] to suppress reports for globals that are
// never referenced, keeping only the smaller-scope reports.
func WithSkipUnused(skipUnused bool) Option { return skipUnusedOption{skipUnused: skipUnused} }

type skipUnusedOption struct{ skipUnused bool }

func (o skipUnusedOption) apply(r *runOptions) {
	r.behavior.Set(config.SkipUnused, o.skipUnused)
}

func (o skipUnusedOption) LogAttr() slog.Attr {
	return slog.Bool("skip-unused", o.skipUnused)
}

// WithWarnInit is an [Option] to also report declarations whose initializer
// is a non-constant, potentially side-effecting expression.
func WithWarnInit(warnInit bool) Option { return warnInitOption{warnInit: warnInit} }

type warnInitOption struct{ warnInit bool }

func (o warnInitOption) apply(r *runOptions) {
	r.behavior.Set(config.WarnInit, o.warnInit)
}

func (o warnInitOption) LogAttr() slog.Attr {
	return slog.Bool("warn-init", o.warnInit)
}

// WithUsageNotes is an [Option] to configure whether reports carry the
// detailed usage notes pointing at every block and reference site.
func WithUsageNotes(notes bool) Option { return usageNotesOption{notes: notes} }

type usageNotesOption struct{ notes bool }

func (o usageNotesOption) apply(r *runOptions) {
	r.behavior.Set(config.HideUsageNotes, !o.notes)
}

func (o usageNotesOption) LogAttr() slog.Attr {
	return slog.Bool("usage-notes", o.notes)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDumpAST is an [Option] to dump the AST of the first analyzed file to
// stderr, for debugging.
func WithDumpAST(dumpAST bool) Option { return dumpASTOption{dumpAST: dumpAST} }

type dumpASTOption struct{ dumpAST bool }

func (o dumpASTOption) apply(r *runOptions) {
	r.behavior.Set(config.DumpAST, o.dumpAST)
}

func (o dumpASTOption) LogAttr() slog.Attr {
	return slog.Bool("dump-ast", o.dumpAST)
}
