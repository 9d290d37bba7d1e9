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

package edit

import (
	"cmp"
	"fmt"
	"go/ast"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// Document collects the edits of a suggested fix.
type Document struct {
	src     *Source
	root    inspector.Cursor
	edits   []analysis.TextEdit
	inserts []analysis.TextEdit
	anchors []ast.Node
}

// Document creates a [Document] editing the files under root.
func (s *Source) Document(root inspector.Cursor) *Document {
	return &Document{src: s, root: root}
}

// ReplaceNode replaces old with replacement.
//
// Expressions are parenthesized where required. A statement may only replace
// the expression of an expression statement.
func (d *Document) ReplaceNode(old, replacement ast.Node) error {
	c, ok := d.root.FindNode(old)
	if !ok {
		return fmt.Errorf("%w: %T at %d", ErrForeignNode, old, old.Pos())
	}

	text, err := d.src.Text(replacement)
	if err != nil {
		return err
	}

	switch replacement.(type) {
	case ast.Stmt:
		if kind, _ := c.ParentEdge(); kind != edge.ExprStmt_X {
			return fmt.Errorf("statement replaces %T in %s", old, kind)
		}

	default:
		if NeedParens(replacement, c) {
			text = parenthesize(text)
		}
	}

	d.edits = append(d.edits, analysis.TextEdit{Pos: old.Pos(), End: old.End(), NewText: text})

	return nil
}

// InsertBefore inserts stmt before the statement containing anchor, using its indentation.
func (d *Document) InsertBefore(anchor ast.Node, stmt ast.Stmt) error {
	c, ok := d.root.FindNode(anchor)
	if !ok {
		return fmt.Errorf("%w: %T at %d", ErrForeignNode, anchor, anchor.Pos())
	}

	list, ok := Statement(c)
	if !ok {
		return fmt.Errorf("%w: %T is not in a statement list", ErrForeignNode, anchor)
	}

	pos := list.Node().Pos()

	text, err := insertion(d.src, pos, stmt)
	if err != nil {
		return err
	}

	d.inserts = append(d.inserts, analysis.TextEdit{Pos: pos, End: pos, NewText: text})
	if !slices.Contains(d.anchors, list.Node()) {
		d.anchors = append(d.anchors, list.Node())
	}

	return nil
}

// Anchors returns the statements declarations were inserted before.
func (d *Document) Anchors() []ast.Node {
	return d.anchors
}

// Edits returns the collected edits sorted by position.
// Insertions at the same position are merged with each other and with a
// replacement starting there, in the order they were made.
func (d *Document) Edits() []analysis.TextEdit {
	all := slices.Concat(d.inserts, d.edits)
	slices.SortStableFunc(all, func(a, b analysis.TextEdit) int { return cmp.Compare(a.Pos, b.Pos) })

	merged := all[:0]
	for _, e := range all {
		if n := len(merged); n > 0 {
			if prev := merged[n-1]; prev.Pos == prev.End && prev.Pos == e.Pos {
				merged[n-1] = analysis.TextEdit{Pos: e.Pos, End: e.End, NewText: slices.Concat(prev.NewText, e.NewText)}

				continue
			}
		}

		merged = append(merged, e)
	}

	return merged
}
