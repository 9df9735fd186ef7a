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

package analyzer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "github.com/scopetools/globalscope/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "./a",
		},
		{
			name:    "SkipUnused",
			dir:     "./skipunused",
			options: WithSkipUnused(true),
		},
		{
			name:    "WarnInit",
			dir:     "./warninit",
			options: WithWarnInit(true),
		},
		{
			name: "Exempt",
			dir:  "./exempt",
		},
		{
			name: "Shadow",
			dir:  "./shadow",
		},
		{
			name: "Generated",
			dir:  "./generated",
		},
		{
			name:    "IncludeGenerated",
			dir:     "./includegenerated",
			options: WithGenerated(true),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			analysistest.Run(t, testdata, New(tt.options), tt.dir)
		})
	}
}
