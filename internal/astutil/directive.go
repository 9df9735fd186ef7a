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

package astutil

import (
	"go/ast"
	"regexp"
	"strings"
)

// globalscope is the name of the linter.
const globalscope = "globalscope"

// ignoreDirective marks a declaration as exempt from the check.
const ignoreDirective = "//" + globalscope + ":ignore"

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// HasIgnoreDirective reports whether any comment in the given groups exempts
// the declaration: either a `//globalscope:ignore` directive or a
// `//nolint:globalscope` comment. Both forms are treated identically.
func HasIgnoreDirective(groups ...*ast.CommentGroup) bool {
	for _, group := range groups {
		if group == nil {
			continue
		}

		for _, comment := range group.List {
			if CommentIgnores(comment) {
				return true
			}
		}
	}

	return false
}

// CommentIgnores checks a single comment for an exemption directive.
func CommentIgnores(comment *ast.Comment) bool {
	text := comment.Text
	if text == ignoreDirective || strings.HasPrefix(text, ignoreDirective+" ") {
		return true
	}

	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == globalscope || l == "all" {
			return true
		}
	}

	return false
}
