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
	"testing"

	"github.com/scopetools/globalscope/internal/config"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	r := makeRunOptions(Options{
		WithSkipUnused(true),
		WithUsageNotes(false),
		WithGenerated(true),
		nil,
	})

	tests := []struct {
		name string
		flag config.Config
		want bool
	}{
		{"skip-unused", config.SkipUnused, true},
		{"warn-init", config.WarnInit, false},
		{"hide-usage-notes", config.HideUsageNotes, true},
		{"generated", config.IncludeGenerated, true},
		{"dump-ast", config.DumpAST, false},
	}

	for _, tt := range tests {
		if got := r.behavior.Enabled(tt.flag); got != tt.want {
			t.Errorf("Got %t for %s, expected %t", got, tt.name, tt.want)
		}
	}
}

func TestWithUsageNotesEnabled(t *testing.T) {
	t.Parallel()

	r := makeRunOptions(Options{WithUsageNotes(true)})

	if r.behavior.Enabled(config.HideUsageNotes) {
		t.Error("Expected usage notes to stay visible")
	}
}
