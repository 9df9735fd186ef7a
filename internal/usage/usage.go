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

// Package usage tracks where globals are referenced and collapses those
// references, block by block, into the innermost scope containing all of them.
package usage

import (
	"go/token"

	"github.com/scopetools/globalscope/internal/block"
)

// Usage is one element of a declaration's usage list: either a single
// concrete reference ([Leaf]) or the result of merging every reference found
// inside one block ([Composite]).
type Usage interface {
	usage()
}

// Leaf is a single reference site, not yet merged with siblings.
type Leaf struct {
	// Site is the position of the reference.
	Site token.Pos
}

// Composite represents "referenced somewhere inside this block". It is
// synthesized when the block is exited; its children are the usages that were
// attributed to the block at that point, in traversal order.
type Composite struct {
	// Block is the merged block's handle.
	Block block.ID

	// Pos is the block's starting position, used for note reporting.
	Pos token.Pos

	// Children are the merged usages. Never empty.
	Children []Usage
}

func (Leaf) usage()      {}
func (Composite) usage() {}
