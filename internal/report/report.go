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

package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"github.com/scopetools/globalscope/internal/config"
	"github.com/scopetools/globalscope/internal/filter"
	"github.com/scopetools/globalscope/internal/usage"
)

// Entry pairs one tracked declaration with its final usage list.
type Entry struct {
	Decl   filter.Decl
	Usages []usage.Usage
}

// Stage configures and runs the classification and reporting stage.
type Stage struct {
	// Pass is the analysis pass diagnostics are reported to.
	Pass *analysis.Pass

	// Filter supplies the report-time exemption policy.
	Filter filter.Filter

	// Behavior holds the reporting options.
	Behavior config.BitMask[config.Config]
}

// Report classifies every tracked, non-exempt declaration and emits
// diagnostics for unused and redundantly scoped globals. It runs once, after
// traversal of the whole package has completed.
func (s Stage) Report(ctx context.Context, entries []Entry) {
	defer trace.StartRegion(ctx, "Report").End()

	for _, e := range entries {
		if s.Filter.Exempt(e.Decl) {
			continue
		}

		switch Classify(e.Usages) {
		case KindUnused:
			s.reportUnused(e.Decl)

		case KindRedundantScope:
			s.reportRedundantScope(e.Decl, e.Usages)

		case KindProperlyScoped, KindMultiScoped:
		}
	}
}

func (s Stage) reportUnused(d filter.Decl) {
	if s.Behavior.Enabled(config.SkipUnused) {
		return
	}

	s.Pass.Report(analysis.Diagnostic{
		Pos:     d.Pos,
		End:     d.End,
		Message: fmt.Sprintf("Global variable '%s' is unused and can be removed (gs:%s)", d.Name, KindUnused),
	})
}

func (s Stage) reportRedundantScope(d filter.Decl, us []usage.Usage) {
	diagnostic := analysis.Diagnostic{
		Pos:     d.Pos,
		End:     d.End,
		Message: fmt.Sprintf("Global variable '%s' is only used in a smaller scope, consider moving it (gs:%s)", d.Name, KindRedundantScope),
	}

	if !s.Behavior.Enabled(config.HideUsageNotes) {
		diagnostic.Related = appendNotes(nil, us)
	}

	s.Pass.Report(diagnostic)
}

// appendNotes walks the usage tree in traversal order: each composite yields
// a "within this block" note before its children, each leaf a "used here"
// note at its reference site.
func appendNotes(related []analysis.RelatedInformation, us []usage.Usage) []analysis.RelatedInformation {
	for _, u := range us {
		switch u := u.(type) {
		case usage.Leaf:
			related = append(related, analysis.RelatedInformation{Pos: u.Site, Message: "Used here"})

		case usage.Composite:
			related = append(related, analysis.RelatedInformation{Pos: u.Pos, Message: "Used within this block"})
			related = appendNotes(related, u.Children)
		}
	}

	return related
}
