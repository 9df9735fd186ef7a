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

// Package report classifies collapsed usage lists and emits diagnostics.
package report

// Kind classifies a declaration's fully collapsed usage list.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// KindProperlyScoped indicates the declaration legitimately lives at
	// package scope: a single reference made directly at package scope.
	KindProperlyScoped Kind = iota // ok

	// KindUnused indicates the declaration is never referenced.
	KindUnused // uns

	// KindRedundantScope indicates every reference falls within one smaller
	// enclosing block, so the declaration could move there.
	KindRedundantScope // rds

	// KindMultiScoped indicates references in several top-level scopes that
	// share no smaller common enclosing block. Nothing to report.
	KindMultiScoped // mul
)
