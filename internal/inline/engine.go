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

package inline

import "context"

// Engine inlines calls using the collaborators of a language.
type Engine struct {
	Query  SymbolQuery
	Refs   ReferenceFinder
	Locals LocalFinder
	Lang   Language
}

// Inline computes the changes for c and applies them in ws.
func (e Engine) Inline(ctx context.Context, c Candidate, ws Workspace) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	changes, err := e.Lang.ComputeChanges(ctx, c)
	if err != nil {
		return err
	}

	return e.Apply(ctx, c, changes, ws)
}
