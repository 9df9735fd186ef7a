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

var counter int // want `Global variable 'counter' is only used in a smaller scope`

var total int // want `Global variable 'total' is unused and can be removed`

func tally(items []int) {
	for _, it := range items {
		if it > 0 {
			counter += it
		}
	}
}

var verdict string // want `Global variable 'verdict' is only used in a smaller scope`

func judge(score int) {
	switch {
	case score > 80:
		verdict = "good"
	case score > 40:
		verdict = "fair"
	default:
		verdict = "poor"
	}
}
