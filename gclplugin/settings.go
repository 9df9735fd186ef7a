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

package gclplugin

import globalscope "github.com/scopetools/globalscope/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// SkipUnused suppresses reports for globals that are never referenced.
	SkipUnused *bool `json:"skip-unused,omitzero"`
	// WarnInit also reports declarations with non-constant initializers.
	WarnInit *bool `json:"warn-init,omitzero"`
	// UsageNotes controls the detailed usage notes attached to reports.
	UsageNotes *bool `json:"usage-notes,omitzero"`
}

// Options converts [Settings] into a list of [globalscope.Option] for the
// globalscope analyzer. It processes settings and applies them only when
// explicitly set (non-nil).
func (s Settings) Options() []globalscope.Option {
	var opts []globalscope.Option

	opts = appendOption(opts, s.SkipUnused, globalscope.WithSkipUnused)
	opts = appendOption(opts, s.WarnInit, globalscope.WithWarnInit)
	opts = appendOption(opts, s.UsageNotes, globalscope.WithUsageNotes)

	return opts
}

// appendOption appends a non-nil setting to a [globalscope.Option] list.
func appendOption[T any](opts []globalscope.Option, value *T, constructor func(T) globalscope.Option) []globalscope.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
