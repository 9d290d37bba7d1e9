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
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrOverlap is returned when edits overlap.
	ErrOverlap = errors.New("overlapping edits")

	// ErrNoSource is returned when the source of a node is not available.
	ErrNoSource = errors.New("source not available")

	// ErrForeignNode is returned when a node is not part of the edited tree.
	ErrForeignNode = errors.New("node not in edited tree")
)

// Edit replaces the bytes [Start, End) of a buffer with Text.
type Edit struct {
	Start, End int
	Text       []byte

	// Node is the replacement node, nil for insertions.
	Node ast.Node
}

// Apply applies non-overlapping edits to src.
func Apply(src []byte, edits []Edit) ([]byte, error) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b Edit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	var out bytes.Buffer
	out.Grow(len(src))

	last := 0
	for _, e := range sorted {
		if e.Start < last || e.End < e.Start || e.End > len(src) {
			return nil, fmt.Errorf("%w: [%d, %d) after %d", ErrOverlap, e.Start, e.End, last)
		}

		out.Write(src[last:e.Start]) // ignore error
		out.Write(e.Text)            // ignore error
		last = e.End
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}

// Overlapping reports whether any edit of a overlaps any edit of b.
// Insertions at the same position count as overlapping, their order would be undefined.
func Overlapping(a, b []analysis.TextEdit) bool {
	for _, x := range a {
		for _, y := range b {
			if x.Pos == y.Pos || (x.Pos < y.End && y.Pos < x.End) {
				return true
			}
		}
	}

	return false
}

// ApplyTextEdits applies edits to the content of tf.
func ApplyTextEdits(tf *token.File, content []byte, edits []analysis.TextEdit) ([]byte, error) {
	es := make([]Edit, 0, len(edits))
	for _, e := range edits {
		end := e.End
		if !end.IsValid() {
			end = e.Pos
		}

		es = append(es, Edit{Start: tf.Offset(e.Pos), End: tf.Offset(end), Text: e.NewText})
	}

	return Apply(content, es)
}
