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
	"flag"

	"github.com/scopetools/globalscope/internal/config"
)

// registerFlags binds the analyzer's options to command line flag values.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	behavior := func(value config.Config) boolValue[config.Config, *config.BitMask[config.Config]] {
		return boolValue[config.Config, *config.BitMask[config.Config]]{flags: &r.behavior, value: value}
	}

	flags.Var(behavior(config.SkipUnused), "skip-unused",
		"do not warn on unused globals, only on those used in smaller scopes")
	flags.Var(behavior(config.WarnInit), "warn-init",
		"warn even if the declaration has a non-constant initializer")
	flags.Var(behavior(config.HideUsageNotes), "hide-usage-notes",
		"do not show detailed usage notes for reported globals")
	flags.Var(behavior(config.IncludeGenerated), "generated",
		"check generated files")
	flags.Var(behavior(config.DumpAST), "dump-ast",
		"print the AST of the first analyzed file (debugging)")
}
