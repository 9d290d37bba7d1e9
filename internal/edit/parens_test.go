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

package edit_test

import (
	"go/ast"
	"go/parser"
	"testing"

	"golang.org/x/tools/go/ast/inspector"

	. "fillmore-labs.com/inlinecall/internal/edit"
	"fillmore-labs.com/inlinecall/internal/testsource"
)

func TestNeedParens(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		src         string
		replacement string
		expected    bool // true = needs parens
	}{
		{
			name:        "Assignment",
			src:         `_ = f()`,
			replacement: `a + b`,
			expected:    false,
		},
		{
			name:        "Lower precedence",
			src:         `_ = 2 * f()`,
			replacement: `a + b`,
			expected:    true,
		},
		{
			name:        "Higher precedence",
			src:         `_ = 2 + f()`,
			replacement: `a * b`,
			expected:    false,
		},
		{
			name:        "Left operand",
			src:         `_ = f() - 1`,
			replacement: `a - b`,
			expected:    false,
		},
		{
			name:        "Right operand",
			src:         `_ = 1 - f()`,
			replacement: `a - b`,
			expected:    true,
		},
		{
			name:        "Unary operand",
			src:         `_ = 1 - f()`,
			replacement: `-a`,
			expected:    false,
		},
		{
			name:        "Selector",
			src:         `_ = f().x`,
			replacement: `a + b`,
			expected:    true,
		},
		{
			name:        "Selector operand",
			src:         `_ = f().x`,
			replacement: `a.b`,
			expected:    false,
		},
		{
			name:        "Negation",
			src:         `_ = -f()`,
			replacement: `-a`,
			expected:    true,
		},
		{
			name:        "Dereference",
			src:         `_ = *f()`,
			replacement: `&a`,
			expected:    true,
		},
		{
			name:        "CallExpr",
			src:         `g(f())`,
			replacement: `a || b`,
			expected:    false,
		},
		{
			name:        "Composite literal",
			src:         `_ = f()`,
			replacement: `T{}`,
			expected:    false,
		},
		{
			name:        "Composite literal in if",
			src:         `if f() == x {}`,
			replacement: `T{}`,
			expected:    true,
		},
		{
			name:        "Composite literal in call in if",
			src:         `if g(f()) {}`,
			replacement: `T{}`,
			expected:    false,
		},
		{
			name:        "Nested composite literal in for",
			src:         `for f() {}`,
			replacement: `&T{}`,
			expected:    true,
		},
		{
			name:        "Composite literal argument in switch",
			src:         `switch f() {}`,
			replacement: `g(T{})`,
			expected:    false,
		},
		{
			name:        "Composite literal in range",
			src:         `for range f() {}`,
			replacement: `T{}.x`,
			expected:    true,
		},
		{
			name:        "Composite literal in closure",
			src:         `if f() {}`,
			replacement: `func() bool { return T{} == x }()`,
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, _, body := testsource.Parse(t, tt.src)

			call := findCall(t, body, "f")

			replacement, err := parser.ParseExpr(tt.replacement)
			if err != nil {
				t.Fatalf("Can't parse %q: %v", tt.replacement, err)
			}

			if got := NeedParens(replacement, call); got != tt.expected {
				t.Errorf("NeedParens(%q) in %q = %v, want %v", tt.replacement, tt.src, got, tt.expected)
			}
		})
	}
}

func findCall(t *testing.T, root inspector.Cursor, name string) inspector.Cursor {
	t.Helper()

	for c := range root.Preorder((*ast.CallExpr)(nil)) {
		if id, ok := c.Node().(*ast.CallExpr).Fun.(*ast.Ident); ok && id.Name == name {
			return c
		}
	}

	t.Fatalf("Call of %s not found", name)

	return root
}
