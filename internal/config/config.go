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

// Package config holds the behavior flags shared by the filter and report stages.
package config

// Config represents configuration options for the globalscope analyzer.
type Config uint8

const (
	// SkipUnused suppresses reports for globals that are never referenced.
	SkipUnused Config = 1 << iota

	// WarnInit includes declarations whose initializer is a non-constant,
	// potentially side-effecting expression.
	WarnInit

	// HideUsageNotes suppresses the supporting usage notes of a report.
	HideUsageNotes

	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated

	// DumpAST dumps the AST of the first analyzed file to stderr.
	DumpAST
)
