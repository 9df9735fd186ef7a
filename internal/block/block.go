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

// Package block maintains the chain of lexical blocks enclosing the current
// position of a depth-first AST traversal.
package block

import "go/token"

// ID identifies one lexical block within a single traversal pass.
// Handles are opaque; they are never mapped back to AST nodes.
type ID int

// None denotes package (global) scope, outside any block.
const None ID = 0

// frame is one entry of the block stack.
type frame struct {
	id     ID
	parent ID
	pos    token.Pos
}

// Stack tracks the lexical nesting path during traversal. Entering and
// exiting blocks must be strictly matched; depth zero is package scope.
//
// The zero value is an empty stack ready for use.
type Stack struct {
	frames []frame
	next   ID
}

// Enter pushes a new block starting at pos and returns its handle.
// The block's parent is whatever block was current before the push.
func (s *Stack) Enter(pos token.Pos) ID {
	s.next++
	f := frame{id: s.next, parent: s.Current(), pos: pos}
	s.frames = append(s.frames, f)

	return f.id
}

// Exit pops the current block and returns its handle, the handle of its
// parent ([None] for a top-level block) and its starting position.
func (s *Stack) Exit() (id, parent ID, pos token.Pos) {
	n := len(s.frames) - 1
	f := s.frames[n]
	s.frames = s.frames[:n]

	return f.id, f.parent, f.pos
}

// Current returns the handle of the innermost open block, or [None] when the
// traversal is at package scope.
func (s *Stack) Current() ID {
	if len(s.frames) == 0 {
		return None
	}

	return s.frames[len(s.frames)-1].id
}

// Depth returns the current nesting depth. Zero denotes package scope.
func (s *Stack) Depth() int {
	return len(s.frames)
}
