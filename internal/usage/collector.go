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

	"github.com/scopetools/globalscope/internal/block"
)

// Collector is the traversal listener: the external AST walker reports block
// boundaries, declarations and references, and the collector keeps the block
// stack and the usage registry in sync.
//
// Calls must follow the traversal contract: EnterBlock/ExitBlock strictly
// matched around the walk of each block's body, Record between them for
// references found inside. One collector processes exactly one package and
// is discarded afterwards.
type Collector struct {
	stack block.Stack
	reg   Registry
}

// NewCollector creates an empty [Collector].
func NewCollector() *Collector {
	return &Collector{}
}

// EnterBlock pushes the block starting at pos onto the block stack.
func (c *Collector) EnterBlock(pos token.Pos) {
	c.stack.Enter(pos)
}

// ExitBlock pops the current block and collapses every usage recorded inside
// it, directly or in already-merged nested blocks, into one composite
// attributed to the parent block.
func (c *Collector) ExitBlock() {
	id, parent, pos := c.stack.Exit()
	c.reg.MergeBlock(id, parent, pos)
}

// Depth returns the current block nesting depth; zero is package scope.
func (c *Collector) Depth() int {
	return c.stack.Depth()
}

// Register allocates a usage list for a newly tracked declaration.
func (c *Collector) Register() DeclID {
	return c.reg.Register()
}

// Record attributes a reference at site to the innermost enclosing block,
// or to package scope when the traversal is at depth zero. References at
// package scope stay their own leaf forever; they are never merged.
func (c *Collector) Record(d DeclID, site token.Pos) {
	c.reg.Record(d, c.stack.Current(), site)
}

// Usages returns the usage list of d. Read after traversal completes.
func (c *Collector) Usages(d DeclID) []Usage {
	return c.reg.Usages(d)
}
