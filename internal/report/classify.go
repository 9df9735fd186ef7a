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

import "github.com/scopetools/globalscope/internal/usage"

// Classify inspects a declaration's fully collapsed usage list.
//
// A list with more than one element means references exist in top-level
// scopes that share no smaller common enclosing block, possibly mixed with
// references made directly at package scope. Such declarations are
// classified as [KindMultiScoped] and never warned about.
func Classify(us []usage.Usage) Kind {
	switch len(us) {
	case 0:
		return KindUnused

	case 1:
		if _, ok := us[0].(usage.Composite); ok {
			return KindRedundantScope
		}

		// A single leaf is a lone reference at package scope.
		return KindProperlyScoped

	default:
		return KindMultiScoped
	}
}
