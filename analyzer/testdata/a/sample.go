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

var x int64 // used in both aux and run

var y int // want `Global variable 'y' is only used in a smaller scope`

var yz = "1001" // want `Global variable 'yz' is only used in a smaller scope`

var p int // want `Global variable 'p' is unused`

func aux() { x = 110 }

func run() int {
	p := int(x) // shadows the global p, which is now unused
	if p < 0 {
		p = len(yz)
	} else {
		p = 1000
	}

	return y + p
}
