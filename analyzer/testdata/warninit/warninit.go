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

package warninit

func produce() int { return 42 }

var fromCall = produce() // want `Global variable 'fromCall' is only used in a smaller scope`

var stale = produce() // want `Global variable 'stale' is unused and can be removed`

func use() int {
	if fromCall > 0 {
		return fromCall * 2
	}

	return 0
}
