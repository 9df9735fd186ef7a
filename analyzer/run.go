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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"os"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/scopetools/globalscope/internal/astutil"
	"github.com/scopetools/globalscope/internal/config"
	"github.com/scopetools/globalscope/internal/filter"
	"github.com/scopetools/globalscope/internal/report"
	"github.com/scopetools/globalscope/internal/usage"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the globalscope analyzer's pipeline over one package.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("globalscope: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "GlobalScope")
	defer task.End()

	f := filter.New(p, r.behavior)
	col := usage.NewCollector()

	// Stage 1: register every eligible package-level declaration. Go permits
	// references lexically before the declaration, so registration cannot be
	// interleaved with the usage traversal.
	globals := registerGlobals(ctx, p, f, col, r.behavior.Enabled(config.DumpAST))

	// Stage 2: replay the AST as block and reference events on the collector;
	// every block exit collapses the usages recorded inside it.
	globals.trackUsages(ctx, p, in, f, col)

	if col.Depth() != 0 && len(p.Files) > 0 {
		astutil.InternalError(p, p.Files[0], "Unbalanced block traversal (depth %d)", col.Depth())

		return nil, nil
	}

	// Stage 3: classify the collapsed usage lists and report.
	entries := make([]report.Entry, len(globals.decls))
	for i, g := range globals.decls {
		entries[i] = report.Entry{Decl: g.decl, Usages: col.Usages(g.id)}
	}

	report.Stage{Pass: p, Filter: f, Behavior: r.behavior}.Report(ctx, entries)

	return nil, nil
}

// tracked pairs a registered declaration's usage handle with its facts.
type tracked struct {
	id   usage.DeclID
	decl filter.Decl
}

// globalIndex holds all tracked package-level declarations of one pass,
// keyed by their canonical type-checker object.
type globalIndex struct {
	index map[*types.Var]int
	decls []tracked
}

// registerGlobals walks the package-level declarations of every analyzed
// file and registers the eligible ones.
func registerGlobals(ctx context.Context, p *analysis.Pass, f filter.Filter, col *usage.Collector, dumpAST bool) *globalIndex {
	defer trace.StartRegion(ctx, "Register").End()

	g := &globalIndex{index: make(map[*types.Var]int)}

	dumped := !dumpAST

	for _, file := range p.Files {
		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if f.SkipFile(currentFile) {
			continue
		}

		if !dumped {
			dumped = true
			_ = ast.Fprint(os.Stderr, p.Fset, file, ast.NotNilFilter) // debugging aid
		}

		for _, d := range file.Decls {
			gen, ok := d.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, s := range gen.Specs {
				spec, ok := s.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for i := range spec.Names {
					if v, decl, ok := f.Candidate(gen, spec, i); ok {
						g.add(col, v, decl)
					}
				}
			}
		}
	}

	return g
}

// add registers a declaration, merging the exemption flag when the canonical
// object is already tracked. The first registration wins.
func (g *globalIndex) add(col *usage.Collector, v *types.Var, decl filter.Decl) {
	if i, ok := g.index[v]; ok {
		if decl.Ignored {
			g.decls[i].decl.Ignored = true
		}

		return
	}

	g.index[v] = len(g.decls)
	g.decls = append(g.decls, tracked{id: col.Register(), decl: decl})
}

// trackUsages drives the collector with the traversal events of the whole
// package: block boundaries around every statement scope and one reference
// event per identifier resolving to a tracked global.
func (g *globalIndex) trackUsages(ctx context.Context, p *analysis.Pass, in *inspector.Inspector, f filter.Filter, col *usage.Collector) {
	defer trace.StartRegion(ctx, "Track").End()

	nodeTypes := []ast.Node{
		// keep-sorted start
		(*ast.BlockStmt)(nil),
		(*ast.CaseClause)(nil),
		(*ast.CommClause)(nil),
		(*ast.File)(nil),
		(*ast.Ident)(nil),
		// keep-sorted end
	}

	in.Nodes(nodeTypes, func(n ast.Node, push bool) bool {
		switch n := n.(type) {
		case *ast.File:
			if !push {
				return true
			}

			descend := !f.SkipFile(astutil.NewCurrentFile(p.Fset, n))

			return descend

		case *ast.BlockStmt, *ast.CaseClause, *ast.CommClause:
			if push {
				col.EnterBlock(n.Pos())
			} else {
				col.ExitBlock()
			}

		case *ast.Ident:
			if push {
				g.record(p, col, n)
			}
		}

		return true
	})
}

// record adds a usage event when the identifier resolves to a tracked
// global. Identifiers bound to shadowing locals resolve to a different
// object and fall through, as do references to anything untracked.
func (g *globalIndex) record(p *analysis.Pass, col *usage.Collector, id *ast.Ident) {
	v, ok := p.TypesInfo.Uses[id].(*types.Var)
	if !ok {
		return
	}

	i, ok := g.index[v]
	if !ok {
		return
	}

	col.Record(g.decls[i].id, id.Pos())
}
