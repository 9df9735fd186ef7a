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

package usage

import (
	"go/token"
	"slices"

	"github.com/scopetools/globalscope/internal/block"
)

// DeclID is a stable, comparable handle for one tracked declaration,
// assigned at registration. The caller maps canonical declarations to
// handles; the registry never keys on AST or type-checker pointers.
type DeclID int

// entry tags a usage with the block it is currently attributed to.
// [block.None] means the usage is attributed directly to package scope.
type entry struct {
	attr block.ID
	use  Usage
}

// Registry owns the usage lists of all tracked declarations.
//
// During traversal a list may hold several entries attributed to sibling
// blocks; each enclosing block's exit collapses them via [Registry.MergeBlock]
// until, at the end of traversal, every list holds at most one entry per
// top-level scope the declaration is referenced from.
type Registry struct {
	lists [][]entry
}

// Register allocates an empty usage list and returns its handle.
func (r *Registry) Register() DeclID {
	r.lists = append(r.lists, nil)

	return DeclID(len(r.lists) - 1)
}

// Record appends a leaf usage at site, attributed to the given block.
func (r *Registry) Record(d DeclID, at block.ID, site token.Pos) {
	r.lists[d] = append(r.lists[d], entry{attr: at, use: Leaf{Site: site}})
}

// MergeBlock collapses, for every declaration, the usages attributed to the
// exited block b into a single composite attributed to b's parent. The
// declaration's references have now "bubbled up" one nesting level.
// Declarations without usages in b are left untouched.
func (r *Registry) MergeBlock(b, parent block.ID, pos token.Pos) {
	for d, list := range r.lists {
		r.lists[d] = mergeList(list, b, parent, pos)
	}
}

// mergeList replaces the run of entries attributed to b with one composite.
//
// The run is always a suffix: entries are appended in traversal order, and
// everything recorded after b was entered has already collapsed into entries
// attributed to b by the time b exits. Entries attributed to [block.None]
// precede any entry attributed to b and are never merged.
func mergeList(list []entry, b, parent block.ID, pos token.Pos) []entry {
	i := slices.IndexFunc(list, func(e entry) bool { return e.attr == b })
	if i < 0 {
		return list
	}

	children := make([]Usage, len(list)-i)
	for j, e := range list[i:] {
		children[j] = e.use
	}

	list[i] = entry{attr: parent, use: Composite{Block: b, Pos: pos, Children: children}}

	return list[:i+1]
}

// Usages returns the current usage list of d, without attribution tags.
// After traversal completes this is the fully collapsed list the
// classification stage reads.
func (r *Registry) Usages(d DeclID) []Usage {
	list := r.lists[d]
	if len(list) == 0 {
		return nil
	}

	us := make([]Usage, len(list))
	for i, e := range list {
		us[i] = e.use
	}

	return us
}
