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

package golang

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/inlinecall/internal/inline"
	"fillmore-labs.com/inlinecall/internal/scope"
)

// callSite describes where a call appears in the caller.
type callSite struct {
	call   *ast.CallExpr
	cursor inspector.Cursor
	file   *ast.File
	scope  *types.Scope

	// stmt is set when the call is the expression of an expression statement.
	stmt bool

	// anchor is the statement list element declarations are inserted before.
	anchor inspector.Cursor

	// noHoist is set when declarations can't be inserted before the call.
	noHoist error
}

func (p *Package) newSite(call *ast.CallExpr) (*callSite, error) {
	c, err := p.cursor(call)
	if err != nil {
		return nil, err
	}

	s := &callSite{
		call:   call,
		cursor: c,
		scope:  scope.Innermost(p.pkg.Scope(), call.Pos()),
	}

	for fc := range c.Enclosing((*ast.File)(nil)) {
		s.file = fc.Node().(*ast.File)
	}

	if s.file == nil {
		return nil, fmt.Errorf("%w: call outside of a file", inline.ErrNotApplicable)
	}

	switch kind, _ := c.ParentEdge(); kind {
	case edge.GoStmt_Call, edge.DeferStmt_Call:
		return nil, fmt.Errorf("%w: call in go or defer statement", inline.ErrNotApplicable)

	case edge.ExprStmt_X:
		s.stmt = true

	case edge.ParenExpr_X:
		top := c.Parent()
		for kind, _ := top.ParentEdge(); kind == edge.ParenExpr_X; kind, _ = top.ParentEdge() {
			top = top.Parent()
		}

		if kind, _ := top.ParentEdge(); kind == edge.ExprStmt_X {
			return nil, fmt.Errorf("%w: parenthesized call statement", inline.ErrNotApplicable)
		}
	}

	s.anchor, s.noHoist = hoistAnchor(c)

	return s, nil
}

var errNoHoist = errors.New("declarations can't be inserted")

// hoistAnchor finds the statement list element containing c where inserted declarations
// are evaluated exactly once, immediately before the call.
func hoistAnchor(c inspector.Cursor) (inspector.Cursor, error) {
	for ; ; c = c.Parent() {
		switch c.Node().(type) {
		case nil, *ast.File:
			return c, fmt.Errorf("%w: package-level declaration", errNoHoist)
		}

		switch kind, _ := c.ParentEdge(); kind {
		case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:
			if _, ok := c.Node().(*ast.LabeledStmt); ok {
				// jumps to the label would skip the declarations
				return c, fmt.Errorf("%w: labeled statement", errNoHoist)
			}

			return c, nil

		case edge.ForStmt_Cond:
			return c, fmt.Errorf("%w: loop condition", errNoHoist)

		case edge.ForStmt_Post:
			return c, fmt.Errorf("%w: loop post statement", errNoHoist)

		case edge.IfStmt_Else:
			return c, fmt.Errorf("%w: else if", errNoHoist)

		case edge.CaseClause_List:
			return c, fmt.Errorf("%w: case expression", errNoHoist)

		case edge.CommClause_Comm:
			return c, fmt.Errorf("%w: select case", errNoHoist)

		case edge.BinaryExpr_Y:
			switch c.Parent().Node().(*ast.BinaryExpr).Op {
			case token.LAND, token.LOR:
				return c, fmt.Errorf("%w: conditionally evaluated operand", errNoHoist)
			}
		}
	}
}

// checkFree verifies that identifiers of body declared outside the callee denote
// the same objects at the call site and returns their names.
func (p *Package) checkFree(s *callSite, c inline.Candidate, body inspector.Cursor) ([]string, error) {
	sig := c.Callee.Signature()
	decl := c.Decl

	var names []string

	for ic := range body.Preorder((*ast.Ident)(nil), (*ast.TypeSwitchStmt)(nil)) {
		if ts, ok := ic.Node().(*ast.TypeSwitchStmt); ok {
			if _, ok := ts.Assign.(*ast.AssignStmt); ok {
				return nil, fmt.Errorf("%w: type switch with symbolic variable", inline.ErrNotApplicable)
			}

			continue
		}

		id := ic.Node().(*ast.Ident)

		obj := p.info.Uses[id]
		if obj == nil {
			continue
		}

		if kind, _ := ic.ParentEdge(); kind == edge.SelectorExpr_Sel {
			continue
		}

		if v, ok := obj.(*types.Var); ok && v.IsField() {
			continue // composite literal key
		}

		if decl.Pos() <= obj.Pos() && obj.Pos() < decl.End() {
			if isResult(sig, obj) {
				return nil, fmt.Errorf("%w: named result %s referenced", inline.ErrNotApplicable, id.Name)
			}

			continue
		}

		names = append(names, id.Name)

		_, found := s.scope.LookupParent(id.Name, s.call.Pos())
		if !sameObject(obj, found) {
			return nil, fmt.Errorf("%w: %s refers to a different object at the call site", inline.ErrNotApplicable, id.Name)
		}
	}

	return names, nil
}

// sameObject reports whether found denotes obj, where imports of the same package are equal.
func sameObject(obj, found types.Object) bool {
	if pn, ok := obj.(*types.PkgName); ok {
		fpn, ok := found.(*types.PkgName)

		return ok && fpn.Imported() == pn.Imported()
	}

	return found == obj
}

func isResult(sig *types.Signature, obj types.Object) bool {
	for v := range sig.Results().Variables() {
		if v == obj {
			return true
		}
	}

	return false
}

// declaredWithin reports whether e refers to an object declared in the node of c.
//
// Such an argument can't be hoisted before c.
func (p *Package) declaredWithin(e ast.Expr, c inspector.Cursor) bool {
	n := c.Node()
	within := false

	ast.Inspect(e, func(x ast.Node) bool {
		id, ok := x.(*ast.Ident)
		if !ok {
			return !within
		}

		if obj := p.info.Uses[id]; obj != nil && n.Pos() <= obj.Pos() && obj.Pos() < n.End() {
			within = true
		}

		return false
	})

	return within
}
