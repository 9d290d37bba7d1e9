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
	"context"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	. "fillmore-labs.com/inlinecall/internal/inline"
)

type fakeQuery struct {
	res     Resolution
	decls   []*ast.FuncDecl
	visible map[string]struct{}
}

func (q fakeQuery) Resolve(context.Context, *ast.CallExpr) (Resolution, error) {
	return q.res, nil
}

func (q fakeQuery) Declarations(context.Context, *types.Func) ([]*ast.FuncDecl, error) {
	return q.decls, nil
}

func (q fakeQuery) VisibleNames(context.Context, token.Pos) (map[string]struct{}, error) {
	return q.visible, nil
}

type fakeLocals []types.Object

func (l fakeLocals) Locals(context.Context, ast.Node) ([]types.Object, error) {
	return l, nil
}

type fakeRefs map[types.Object][]*ast.Ident

func (r fakeRefs) References(_ context.Context, obj types.Object, _ ast.Node) ([]*ast.Ident, error) {
	return r[obj], nil
}

type fakeLang struct {
	single  bool
	changes *ChangeSet
}

func (l fakeLang) SingleStatement(*ast.FuncDecl) bool { return l.single }

func (fakeLang) InlineNode(decl *ast.FuncDecl) ast.Node {
	if ret, ok := decl.Body.List[0].(*ast.ReturnStmt); ok {
		return ret.Results[0]
	}

	return decl.Body.List[0]
}

func (l fakeLang) ComputeChanges(context.Context, Candidate) (*ChangeSet, error) {
	return l.changes, nil
}

var testPkg = types.NewPackage("test", "test")

func intVar(name string) *types.Var {
	return types.NewVar(token.NoPos, testPkg, name, types.Typ[types.Int])
}

func names(m ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(m))
	for _, n := range m {
		s[n] = struct{}{}
	}

	return s
}

func typeName(n ast.Node) string {
	return fmt.Sprintf("%T", n)
}
