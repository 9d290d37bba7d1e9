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

package inline_test

import (
	"errors"
	"go/ast"
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/inlinecall/internal/inline"
)

func TestChangeSetDuplicate(t *testing.T) {
	t.Parallel()

	a := intVar("a")

	tests := []struct {
		name   string
		first  Change
		second Change
	}{
		{
			name:   "rename twice",
			first:  IdentifierRenameVariableChange{Symbol: a, Identifier: ast.NewIdent("x")},
			second: IdentifierRenameVariableChange{Symbol: a, Identifier: ast.NewIdent("y")},
		},
		{
			name:   "replace and rename",
			first:  ReplaceVariableChange{Symbol: a, Replacement: &ast.BasicLit{Kind: token.INT, Value: "1"}},
			second: IdentifierRenameVariableChange{Symbol: a, Identifier: ast.NewIdent("y")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewChangeSet()
			if err := s.Add(tt.first); err != nil {
				t.Fatalf("Add failed: %v", err)
			}

			if err := s.Add(tt.second); !errors.Is(err, ErrDuplicateTarget) {
				t.Errorf("Got error %v, want %v", err, ErrDuplicateTarget)
			}

			if got, want := s.Len(), 1; got != want {
				t.Errorf("Got %d changes, want %d", got, want)
			}
		})
	}
}

func TestChangeSetOrder(t *testing.T) {
	t.Parallel()

	a, b, c := intVar("a"), intVar("b"), intVar("c")

	s := NewChangeSet()

	changes := []Change{
		IdentifierRenameVariableChange{Symbol: c, Identifier: ast.NewIdent("c1")},
		ExtractDeclarationChange{Declaration: &ast.EmptyStmt{}},
		ReplaceVariableChange{Symbol: b, Replacement: ast.NewIdent("y")},
		IdentifierRenameVariableChange{Symbol: a, Identifier: ast.NewIdent("x")},
		ExtractDeclarationChange{Declaration: &ast.BranchStmt{Tok: token.BREAK}},
	}
	for _, ch := range changes {
		if err := s.Add(ch); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	var renames []string
	for r := range s.Renames() {
		renames = append(renames, r.Symbol.Name()+"->"+r.Identifier.Name)
	}

	if diff := cmp.Diff([]string{"c->c1", "a->x"}, renames); diff != "" {
		t.Errorf("Renames mismatch (-want +got):\n%s", diff)
	}

	var replaced []string
	for r := range s.Replacements() {
		replaced = append(replaced, r.Symbol.Name())
	}

	if diff := cmp.Diff([]string{"b"}, replaced); diff != "" {
		t.Errorf("Replacements mismatch (-want +got):\n%s", diff)
	}

	var extracted []string
	for e := range s.Extractions() {
		extracted = append(extracted, typeName(e.Declaration))
	}

	if diff := cmp.Diff([]string{"*ast.EmptyStmt", "*ast.BranchStmt"}, extracted); diff != "" {
		t.Errorf("Extractions mismatch (-want +got):\n%s", diff)
	}

	if _, ok := s.Target(b); !ok {
		t.Error("Expected a change for b")
	}

	if got, want := s.Len(), 5; got != want {
		t.Errorf("Got %d changes, want %d", got, want)
	}
}

func TestChangeSetNilSymbol(t *testing.T) {
	t.Parallel()

	s := NewChangeSet()
	if err := s.Add(ReplaceVariableChange{Replacement: ast.NewIdent("x")}); err == nil {
		t.Error("Expected error for change without symbol")
	}
}
