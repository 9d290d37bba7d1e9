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

package scope_test

import (
	"go/ast"
	"go/token"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/inlinecall/internal/scope"
	"fillmore-labs.com/inlinecall/internal/testsource"
)

func TestVisibleNames(t *testing.T) {
	t.Parallel()

	const src = `package test

var global int

func f(p int) {
	before := p
	{
		inner := before
		_ = inner /* here */
	}
	after := 1
	_, _ = before, after
}
`

	fset, f := testsource.ParseFile(t, src)
	pkg, info := testsource.Check(t, fset, f)

	pos := testsource.Comment(t, f, "/* here */")

	names := VisibleNames(pkg.Scope(), pos)

	for _, name := range []string{"global", "f", "p", "before", "inner", "int", "len"} {
		if _, ok := names[name]; !ok {
			t.Errorf("Expected %q to be visible", name)
		}
	}

	if _, ok := names["after"]; ok {
		t.Error("Expected \"after\" not to be visible before its declaration")
	}

	scopes := NewIndex(info)

	var fn *ast.FuncDecl
	for _, decl := range f.Decls {
		if d, ok := decl.(*ast.FuncDecl); ok {
			fn = d
		}
	}

	body := info.Scopes[fn.Type]
	if !scopes.Local(body) {
		t.Error("Expected function scope to be local")
	}

	if scopes.Local(pkg.Scope()) {
		t.Error("Expected package scope not to be local")
	}

	if diff := cmp.Diff([]string{"after", "before", "inner", "p"}, scopes.Declared(body)); diff != "" {
		t.Errorf("Declared mismatch (-want +got):\n%s", diff)
	}

	if got := slices.Sorted(maps.Keys(VisibleNames(pkg.Scope(), token.NoPos))); !slices.Contains(got, "global") {
		t.Errorf("Got package level names %v, want global", got)
	}
}

func TestName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		node ast.Node
		want string
	}{
		{&ast.IfStmt{}, "if statement"},
		{&ast.LabeledStmt{Stmt: &ast.ForStmt{}}, "for loop"},
		{&ast.AssignStmt{}, "assignment"},
		{&ast.ReturnStmt{}, "return statement"},
		{nil, "<nil>"},
	}

	for _, tt := range tests {
		if got := Name(tt.node); got != tt.want {
			t.Errorf("Name(%T) = %q, want %q", tt.node, got, tt.want)
		}
	}
}
