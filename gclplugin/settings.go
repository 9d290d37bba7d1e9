// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

import inlinecall "fillmore-labs.com/inlinecall/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Directive restricts inlining to functions marked with //go:fix inline.
	Directive *bool `json:"directive,omitzero"`
	// Conservative refuses inlining that inserts declarations before the call.
	Conservative *bool `json:"conservative,omitzero"`
	// MaxUses limits how often a substituted expression is duplicated.
	MaxUses *int `json:"max-uses,omitzero"`
}

// Options converts [Settings] into a list of [inlinecall.Option] for the inlinecall analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []inlinecall.Option {
	var opts []inlinecall.Option

	opts = appendOption(opts, s.Directive, inlinecall.WithDirective)
	opts = appendOption(opts, s.Conservative, inlinecall.WithConservative)
	opts = appendOption(opts, s.MaxUses, inlinecall.WithMaxUses)

	return opts
}

// appendOption appends a non-nil setting to an [inlinecall.Option] list.
func appendOption[T any](opts []inlinecall.Option, value *T, constructor func(T) inlinecall.Option) []inlinecall.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
