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

// Package filter decides which declarations are tracked by the analysis and
// which tracked declarations are exempt from reporting.
package filter

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"github.com/scopetools/globalscope/internal/astutil"
	"github.com/scopetools/globalscope/internal/config"
)

// InitKind classifies a declaration's initializer.
type InitKind uint8

const (
	// InitNone indicates the declaration has no initializer.
	InitNone InitKind = iota

	// InitConst indicates a constant-evaluable initializer.
	InitConst

	// InitCall indicates a non-constant, potentially side-effecting initializer.
	InitCall
)

// Decl carries the report-relevant facts about one tracked declaration.
// It is immutable after registration except for the Ignored flag.
type Decl struct {
	// Name is the declared identifier.
	Name string

	// Pos and End delimit the declaring identifier.
	Pos, End token.Pos

	// Exported indicates the variable is visible to other packages. Foreign
	// references are invisible to the pass, so relocation is never safe.
	Exported bool

	// Init classifies the initializer expression.
	Init InitKind

	// Ignored indicates the declaration carries an exemption directive.
	Ignored bool
}

// Filter implements the tracking and exemption policy.
type Filter struct {
	pass     *analysis.Pass
	behavior config.BitMask[config.Config]
}

// New creates a [Filter] for one analysis pass.
func New(pass *analysis.Pass, behavior config.BitMask[config.Config]) Filter {
	return Filter{pass: pass, behavior: behavior}
}

// SkipFile reports whether a file is excluded from analysis entirely, for
// both registration and usage recording. Generated files are the Go analogue
// of foreign source units.
func (f Filter) SkipFile(file astutil.CurrentFile) bool {
	if !file.Valid() {
		return true
	}

	return file.Generated() && !f.behavior.Enabled(config.IncludeGenerated)
}

// Candidate inspects the i-th name of a var spec and returns the canonical
// object and declaration facts if it is eligible for tracking.
//
// Each exclusion is independently sufficient: blank identifiers, function
// parameters, struct fields and non-variables are all skipped. Declarations
// inside a block resolve to a non-package scope and fail the scope check.
func (f Filter) Candidate(decl *ast.GenDecl, spec *ast.ValueSpec, i int) (*types.Var, Decl, bool) {
	name := spec.Names[i]
	if name.Name == "_" {
		return nil, Decl{}, false
	}

	v, ok := f.pass.TypesInfo.Defs[name].(*types.Var)
	if !ok || v.IsField() {
		return nil, Decl{}, false
	}

	// Only true package-scope variables are tracked.
	if v.Parent() != f.pass.Pkg.Scope() {
		return nil, Decl{}, false
	}

	d := Decl{
		Name:     v.Name(),
		Pos:      name.Pos(),
		End:      name.End(),
		Exported: v.Exported(),
		Init:     f.initKind(spec, i),
		Ignored:  astutil.HasIgnoreDirective(decl.Doc, spec.Doc, spec.Comment),
	}

	return v, d, true
}

// initKind classifies the initializer of the i-th name in a var spec.
func (f Filter) initKind(spec *ast.ValueSpec, i int) InitKind {
	switch {
	case len(spec.Values) == 0:
		return InitNone

	case len(spec.Values) != len(spec.Names):
		// var a, b = f(): a multi-value call initializes every name.
		return InitCall
	}

	if tv, ok := f.pass.TypesInfo.Types[spec.Values[i]]; ok && tv.Value != nil {
		return InitConst
	}

	return InitCall
}

// Exempt reports whether a tracked declaration is excluded from reporting,
// regardless of its usage pattern. Checked at report time, not at
// registration time.
func (f Filter) Exempt(d Decl) bool {
	if d.Ignored || d.Exported {
		return true
	}

	return d.Init == InitCall && !f.behavior.Enabled(config.WarnInit)
}
