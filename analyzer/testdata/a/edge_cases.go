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

package a

// Registry is exported: other packages may reference it, so it is never
// reported even though this package does not use it.
var Registry map[string]int

func fill() string { return "cached" }

// cache has a non-constant initializer and is skipped without warn-init.
var cache = fill()

var enabled bool // want `Global variable 'enabled' is only used in a smaller scope`

func toggle(on bool) {
	if on {
		enabled = true
	} else {
		enabled = false
	}
}

var _ = 42 // the blank identifier is never tracked
