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

// shared is referenced from two top-level functions: there is no smaller
// common scope, so it stays put.
var shared int

// seed is referenced both at package scope and inside grow. Mixed usage is
// never reported.
var seed = 2

var limit = seed * 8

func grow() int {
	shared++

	return seed + limit
}

func shrink() int {
	shared--

	return limit
}
