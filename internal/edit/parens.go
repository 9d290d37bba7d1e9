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
	"go/ast"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// NeedParens reports whether replacement must be parenthesized when it takes
// the place of the node at c.
func NeedParens(replacement ast.Node, c inspector.Cursor) bool {
	x, ok := replacement.(ast.Expr)
	if !ok {
		return false
	}

	if !operand(x) && !delimited(x, c) {
		return true
	}

	return hasCompositeLit(x) && inHeader(c)
}

// operand reports whether x binds at least as tight as any operator.
func operand(x ast.Expr) bool {
	switch x.(type) {
	case *ast.BinaryExpr, *ast.UnaryExpr, *ast.StarExpr, *ast.KeyValueExpr:
		return false

	default:
		return true
	}
}

// delimited reports whether a non-operand x can stand at c without parentheses.
func delimited(x ast.Expr, c inspector.Cursor) bool {
	if c.Node() == nil {
		return true
	}

	switch kind, _ := c.ParentEdge(); kind {
	case edge.BinaryExpr_X, edge.BinaryExpr_Y:
		b, ok := x.(*ast.BinaryExpr)
		if !ok {
			return true // unary operators bind tighter than binary ones
		}

		parent, ok := c.Parent().Node().(*ast.BinaryExpr)
		if !ok {
			return false
		}

		prec, outer := b.Op.Precedence(), parent.Op.Precedence()

		return prec > outer || (prec == outer && kind == edge.BinaryExpr_X)

	case edge.UnaryExpr_X, edge.StarExpr_X,
		edge.SelectorExpr_X, edge.CallExpr_Fun,
		edge.IndexExpr_X, edge.IndexListExpr_X, edge.SliceExpr_X,
		edge.TypeAssertExpr_X:
		return false

	default:
		return true
	}
}

// hasCompositeLit reports whether x contains a composite literal not enclosed
// in delimiters.
func hasCompositeLit(x ast.Node) bool {
	found := false

	ast.Inspect(x, func(n ast.Node) bool {
		if found {
			return false
		}

		switch n := n.(type) {
		case *ast.CompositeLit:
			found = true

			return false

		case *ast.ParenExpr, *ast.FuncLit:
			return false

		case *ast.CallExpr:
			found = hasCompositeLit(n.Fun)

			return false

		case *ast.IndexExpr:
			found = hasCompositeLit(n.X)

			return false

		case *ast.IndexListExpr:
			found = hasCompositeLit(n.X)

			return false

		case *ast.SliceExpr:
			found = hasCompositeLit(n.X)

			return false
		}

		return true
	})

	return found
}

// inHeader reports whether c is part of an "if", "for" or "switch" header without
// enclosing delimiters. A composite literal there is ambiguous with the block:
//
//	A parsing ambiguity arises when a composite literal [...] appears as an operand between the keyword and the opening brace of the block of an "if", "for", or "switch" statement, ...
func inHeader(c inspector.Cursor) bool {
	for ; ; c = c.Parent() {
		switch c.Node().(type) {
		case nil, *ast.File:
			return false
		}

		switch kind, _ := c.ParentEdge(); kind {
		// Already wrapped
		case edge.ParenExpr_X,
			// Inside a block statement, function call or index expression
			edge.BlockStmt_List, edge.CallExpr_Args, edge.IndexExpr_Index, edge.IndexListExpr_Indices,
			// Slice expression
			edge.SliceExpr_Low, edge.SliceExpr_High, edge.SliceExpr_Max,
			// Nested composite literal
			edge.CompositeLit_Elts, edge.KeyValueExpr_Value,
			edge.FuncLit_Body, edge.Invalid:
			return false

		case edge.IfStmt_Init, edge.IfStmt_Cond,
			edge.ForStmt_Init, edge.ForStmt_Cond, edge.ForStmt_Post,
			edge.SwitchStmt_Init, edge.SwitchStmt_Tag,
			edge.TypeSwitchStmt_Init, edge.TypeSwitchStmt_Assign,
			edge.RangeStmt_Key, edge.RangeStmt_Value, edge.RangeStmt_X:
			return true
		}
	}
}
