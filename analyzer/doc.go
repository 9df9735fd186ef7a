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

// Package analyzer implements the globalscope static analysis pass.
//
// # Overview
//
// Globalscope reports package-level variables that are never referenced, or
// that are referenced only from within a single smaller lexical scope and
// could be declared there instead.
//
// # Example
//
// Reported:
//
//	var retries int // only used inside connect
//
//	func connect() error {
//	    for retries = 0; retries < 3; retries++ {
//	        // ...
//	    }
//	    return nil
//	}
//
// The report carries notes pointing at each block and reference site the
// variable is used in, down to the innermost scope that contains all of them.
//
// # What is never reported
//
//   - Variables referenced from more than one top-level scope, or directly
//     at package scope alongside nested references.
//   - Exported variables: references from other packages are invisible to
//     the analysis, so relocation is never safe.
//   - Variables whose initializer is a non-constant expression, unless
//     warn-init is enabled: moving the declaration would also move the
//     side effect.
//   - Variables marked with a //globalscope:ignore directive or a
//     //nolint:globalscope comment.
package analyzer
