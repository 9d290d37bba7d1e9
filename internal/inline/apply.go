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

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"
)

// Apply applies changes to an isolated copy of the callee, inserts the extracted
// declarations before the call's statement and replaces the call with the rewritten
// inline node.
func (e Engine) Apply(ctx context.Context, c Candidate, changes *ChangeSet, ws Workspace) error {
	defer trace.StartRegion(ctx, "Apply").End()

	iso, err := ws.Isolate(c.Decl)
	if err != nil {
		return err
	}

	for ch := range changes.Replacements() {
		if err := e.replaceReferences(ctx, iso, c.Decl, ch.Symbol, ch.Replacement); err != nil {
			return err
		}
	}

	for ch := range changes.Renames() {
		if err := e.replaceReferences(ctx, iso, c.Decl, ch.Symbol, ch.Identifier); err != nil {
			return err
		}
	}

	node := e.Lang.InlineNode(c.Decl)
	if node == nil {
		return fmt.Errorf("%w: %s has no inline node", ErrNotApplicable, c.Callee.Name())
	}

	rewritten, err := iso.Rewritten(node)
	if err != nil {
		return err
	}

	doc := ws.Document()

	for ch := range changes.Extractions() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := doc.InsertBefore(c.Call, ch.Declaration); err != nil {
			return err
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return doc.ReplaceNode(c.Call, rewritten)
}

// replaceReferences replaces all references to sym within root.
func (e Engine) replaceReferences(ctx context.Context, ed Editor, root ast.Node, sym types.Object, replacement ast.Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	refs, err := e.Refs.References(ctx, sym, root)
	if err != nil {
		return err
	}

	for _, id := range refs {
		if err := ed.ReplaceNode(id, replacement); err != nil {
			return err
		}
	}

	return nil
}
