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
	"go/ast"
	"go/token"
	"go/types"
)

// SingleStatement reports whether the body of decl consists of exactly one inlinable statement.
//
// Functions with results must return a single expression. Functions without results
// may consist of an expression, increment, assignment or send statement.
func (p *Package) SingleStatement(decl *ast.FuncDecl) bool {
	if decl == nil || decl.Body == nil || len(decl.Body.List) != 1 {
		return false
	}

	results := decl.Type.Results.NumFields()

	switch stmt := decl.Body.List[0].(type) {
	case *ast.ReturnStmt:
		return results == 1 && len(stmt.Results) == 1

	case *ast.ExprStmt, *ast.IncDecStmt, *ast.SendStmt:
		return results == 0

	case *ast.AssignStmt:
		return results == 0 && stmt.Tok != token.DEFINE

	default:
		return false
	}
}

// InlineNode returns the node replacing the call: the returned expression or the statement.
func (p *Package) InlineNode(decl *ast.FuncDecl) ast.Node {
	if !p.SingleStatement(decl) {
		return nil
	}

	switch stmt := decl.Body.List[0].(type) {
	case *ast.ReturnStmt:
		return stmt.Results[0]

	case *ast.ExprStmt:
		return stmt.X

	default:
		return stmt
	}
}

// statementExpr reports whether e may stand alone as an expression statement.
func (p *Package) statementExpr(e ast.Expr) bool {
	switch e := ast.Unparen(e).(type) {
	case *ast.UnaryExpr:
		return e.Op == token.ARROW

	case *ast.CallExpr:
		if p.info.Types[e.Fun].IsType() {
			return false // conversion
		}

		if id, ok := ast.Unparen(e.Fun).(*ast.Ident); ok {
			if b, ok := p.info.Uses[id].(*types.Builtin); ok {
				switch b.Name() {
				case "clear", "close", "copy", "delete", "panic", "print", "println", "recover":
					return true

				default:
					return false
				}
			}
		}

		return true

	default:
		return false
	}
}
