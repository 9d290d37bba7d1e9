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
	"fmt"
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/inspector"
)

// Buffer edits a detached copy of a declaration's source.
type Buffer struct {
	src   *Source
	root  inspector.Cursor
	tf    *token.File
	start int
	text  []byte
	edits []Edit
}

// Isolate opens a [Buffer] over the node at root.
func (s *Source) Isolate(root inspector.Cursor) (*Buffer, error) {
	n := root.Node()
	if n == nil {
		return nil, fmt.Errorf("%w: no declaration", ErrForeignNode)
	}

	tf, content, err := s.Content(n.Pos())
	if err != nil {
		return nil, err
	}

	start, end := tf.Offset(n.Pos()), tf.Offset(n.End())

	return &Buffer{src: s, root: root, tf: tf, start: start, text: content[start:end:end]}, nil
}

// ReplaceNode replaces old with replacement, parenthesized where required.
func (b *Buffer) ReplaceNode(old, replacement ast.Node) error {
	c, ok := b.root.FindNode(old)
	if !ok {
		return fmt.Errorf("%w: %T at %d", ErrForeignNode, old, old.Pos())
	}

	text, err := b.src.Text(replacement)
	if err != nil {
		return err
	}

	if NeedParens(replacement, c) {
		text = parenthesize(text)
	}

	b.edits = append(b.edits, Edit{Start: b.offset(old.Pos()), End: b.offset(old.End()), Text: text, Node: replacement})

	return nil
}

// InsertBefore inserts stmt before the statement containing anchor.
func (b *Buffer) InsertBefore(anchor ast.Node, stmt ast.Stmt) error {
	c, ok := b.root.FindNode(anchor)
	if !ok {
		return fmt.Errorf("%w: %T at %d", ErrForeignNode, anchor, anchor.Pos())
	}

	list, ok := Statement(c)
	if !ok {
		return fmt.Errorf("%w: %T is not in a statement list", ErrForeignNode, anchor)
	}

	text, err := insertion(b.src, list.Node().Pos(), stmt)
	if err != nil {
		return err
	}

	pos := b.offset(list.Node().Pos())
	b.edits = append(b.edits, Edit{Start: pos, End: pos, Text: text})

	return nil
}

// Rewritten returns a node standing for n with all edits within n applied.
//
// A node replaced as a whole is returned as its replacement. Otherwise the result
// is a copy of n whose text is registered with the [Source].
func (b *Buffer) Rewritten(n ast.Node) (ast.Node, error) {
	start, end := b.offset(n.Pos()), b.offset(n.End())
	if start < 0 || end > len(b.text) {
		return nil, fmt.Errorf("%w: %T outside declaration", ErrForeignNode, n)
	}

	var inner []Edit

	for _, e := range b.edits {
		switch {
		case e.End <= start || e.Start >= end:
			// outside

		case e.Start >= start && e.End <= end:
			inner = append(inner, Edit{Start: e.Start - start, End: e.End - start, Text: e.Text, Node: e.Node})

		default:
			return nil, fmt.Errorf("%w: edit [%d, %d) crosses %T", ErrOverlap, e.Start, e.End, n)
		}
	}

	if len(inner) == 1 && inner[0].Node != nil && inner[0].Start == 0 && inner[0].End == end-start {
		return inner[0].Node, nil
	}

	text, err := Apply(b.text[start:end], inner)
	if err != nil {
		return nil, err
	}

	c := shallowCopy(n)
	b.src.Register(c, text)

	return c, nil
}

func (b *Buffer) offset(pos token.Pos) int {
	return b.tf.Offset(pos) - b.start
}

func parenthesize(text []byte) []byte {
	p := make([]byte, 0, len(text)+2)
	p = append(p, '(')
	p = append(p, text...)

	return append(p, ')')
}

// insertion renders stmt followed by the separator to the statement at pos.
func insertion(src *Source, pos token.Pos, stmt ast.Stmt) ([]byte, error) {
	text, err := src.Text(stmt)
	if err != nil {
		return nil, err
	}

	sep, err := src.separator(pos)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(text)+len(sep))
	out = append(out, text...)

	return append(out, sep...), nil
}
