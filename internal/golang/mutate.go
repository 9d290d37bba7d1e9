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

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

// refCursors returns the cursors of identifiers referring to obj within root.
func (p *Package) refCursors(obj types.Object, root inspector.Cursor) []inspector.Cursor {
	var refs []inspector.Cursor

	for c := range root.Preorder((*ast.Ident)(nil)) {
		if p.info.Uses[c.Node().(*ast.Ident)] == obj {
			refs = append(refs, c)
		}
	}

	return refs
}

// mutated reports whether any reference is assigned, incremented or has its address taken.
func (p *Package) mutated(refs []inspector.Cursor) bool {
	for _, c := range refs {
		if p.lvalue(c) {
			return true
		}
	}

	return false
}

// lvalue reports whether the variable at c is modified or its address escapes.
func (p *Package) lvalue(c inspector.Cursor) bool {
	for {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.AssignStmt_Lhs, edge.IncDecStmt_X, edge.RangeStmt_Key, edge.RangeStmt_Value:
			return true

		case edge.UnaryExpr_X:
			return c.Parent().Node().(*ast.UnaryExpr).Op == token.AND

		case edge.ParenExpr_X:
			c = c.Parent()

		case edge.SelectorExpr_X:
			sel, ok := p.info.Selections[c.Parent().Node().(*ast.SelectorExpr)]
			if !ok {
				return false
			}

			switch sel.Kind() {
			case types.FieldVal:
				if sel.Indirect() {
					return false
				}

				c = c.Parent()

			case types.MethodVal:
				// a pointer method on a value takes its address
				return pointerRecv(sel.Obj()) && !isPointer(sel.Recv())

			default:
				return false
			}

		case edge.IndexExpr_X:
			if !isArray(p.info.TypeOf(c.Node().(ast.Expr))) {
				return false
			}

			c = c.Parent()

		case edge.SliceExpr_X:
			return isArray(p.info.TypeOf(c.Node().(ast.Expr)))

		default:
			return false
		}
	}
}

func pointerRecv(obj types.Object) bool {
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	recv := fn.Signature().Recv()

	return recv != nil && isPointer(recv.Type())
}

func isPointer(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Pointer)

	return ok
}

func isArray(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Array)

	return ok
}

// captured reports whether any reference is inside a function literal that outlives the call.
func captured(refs []inspector.Cursor) bool {
	for _, c := range refs {
		for fc := range c.Enclosing((*ast.FuncLit)(nil)) {
			if !invokedImmediately(fc) {
				return true
			}
		}
	}

	return false
}

// invokedImmediately reports whether the function literal at c is called where it is defined.
func invokedImmediately(c inspector.Cursor) bool {
	kind, _ := c.ParentEdge()
	for kind == edge.ParenExpr_X {
		c = c.Parent()
		kind, _ = c.ParentEdge()
	}

	if kind != edge.CallExpr_Fun {
		return false
	}

	switch kind, _ := c.Parent().ParentEdge(); kind {
	case edge.GoStmt_Call, edge.DeferStmt_Call:
		return false

	default:
		return true
	}
}

// pure reports whether evaluating e has no side effects.
func (p *Package) pure(e ast.Expr) bool {
	switch e := e.(type) {
	case nil:
		return true

	case *ast.Ident, *ast.BasicLit, *ast.FuncLit:
		return true

	case *ast.ParenExpr:
		return p.pure(e.X)

	case *ast.SelectorExpr:
		return p.pure(e.X)

	case *ast.IndexExpr:
		return p.pure(e.X) && p.pure(e.Index)

	case *ast.IndexListExpr:
		return p.pure(e.X)

	case *ast.SliceExpr:
		return p.pure(e.X) && p.pure(e.Low) && p.pure(e.High) && p.pure(e.Max)

	case *ast.StarExpr:
		return p.pure(e.X)

	case *ast.UnaryExpr:
		return e.Op != token.ARROW && p.pure(e.X)

	case *ast.BinaryExpr:
		return p.pure(e.X) && p.pure(e.Y)

	case *ast.TypeAssertExpr:
		return p.pure(e.X)

	case *ast.CallExpr:
		if p.info.Types[e.Fun].IsType() {
			return p.pureAll(e.Args)
		}

		if id, ok := ast.Unparen(e.Fun).(*ast.Ident); ok {
			if b, ok := p.info.Uses[id].(*types.Builtin); ok {
				switch b.Name() {
				case "cap", "complex", "imag", "len", "max", "min", "real":
					return p.pureAll(e.Args)
				}
			}
		}

		return false

	default:
		return p.info.Types[e].IsType()
	}
}

func (p *Package) pureAll(list []ast.Expr) bool {
	for _, e := range list {
		if !p.pure(e) {
			return false
		}
	}

	return true
}

// trivial reports whether e is cheap enough to duplicate without limit.
func trivial(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Ident, *ast.BasicLit:
		return true

	case *ast.ParenExpr:
		return trivial(e.X)

	case *ast.SelectorExpr:
		return trivial(e.X)

	default:
		return false
	}
}

// droppable reports whether removing e loses no run-time panic and leaves no variable
// or import unused.
func (p *Package) droppable(e ast.Expr) bool {
	ok := true

	ast.Inspect(e, func(n ast.Node) bool {
		if !ok {
			return false
		}

		if p.mayPanic(n) {
			ok = false

			return false
		}

		id, isIdent := n.(*ast.Ident)
		if !isIdent {
			return true
		}

		switch obj := p.info.Uses[id].(type) {
		case *types.PkgName:
			ok = p.useCount(obj) > 1

		case *types.Var:
			if p.mustUse(obj) {
				ok = p.useCount(obj) > 1
			}
		}

		return ok
	})

	return ok
}

// mustUse reports whether v is a local variable the compiler requires to be used.
func (p *Package) mustUse(v *types.Var) bool {
	return !v.IsField() && v.Parent() != nil && v.Parent() != p.pkg.Scope() && !p.isParam(v)
}

// mayPanic reports whether evaluating the operation n itself can panic.
func (p *Package) mayPanic(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.StarExpr:
		return !p.info.Types[n].IsType()

	case *ast.TypeAssertExpr:
		return true

	case *ast.IndexExpr:
		if tv := p.info.Types[n]; tv.IsType() || tv.Value != nil {
			return false
		}

		if _, ok := p.info.Instances[indexedIdent(n.X)]; ok {
			return false // instantiation
		}

		t := p.info.TypeOf(n.X)
		if t == nil {
			return true
		}

		switch t.Underlying().(type) {
		case *types.Map:
			return false

		case *types.Array:
			return p.info.Types[n.Index].Value == nil

		default:
			return true
		}

	case *ast.SliceExpr:
		return true

	case *ast.BinaryExpr:
		if n.Op != token.QUO && n.Op != token.REM {
			return false
		}

		tv := p.info.Types[n.Y]
		if tv.Type == nil {
			return true
		}

		b, ok := tv.Type.Underlying().(*types.Basic)

		return ok && b.Info()&types.IsInteger != 0 && tv.Value == nil

	case *ast.SelectorExpr:
		sel, ok := p.info.Selections[n]

		return ok && sel.Indirect()

	default:
		return false
	}
}

func indexedIdent(x ast.Expr) *ast.Ident {
	switch x := ast.Unparen(x).(type) {
	case *ast.Ident:
		return x

	case *ast.SelectorExpr:
		return x.Sel

	default:
		return nil
	}
}

// arithmetic reports whether a reference is an operand of an arithmetic operation.
func arithmetic(refs []inspector.Cursor) bool {
	for _, c := range refs {
		kind, _ := c.ParentEdge()
		for kind == edge.ParenExpr_X {
			c = c.Parent()
			kind, _ = c.ParentEdge()
		}

		switch kind {
		case edge.BinaryExpr_X, edge.BinaryExpr_Y:
			switch c.Parent().Node().(*ast.BinaryExpr).Op {
			case token.ADD, token.SUB, token.MUL, token.QUO, token.REM,
				token.AND, token.OR, token.XOR, token.SHL, token.SHR, token.AND_NOT:
				return true
			}

		case edge.UnaryExpr_X:
			switch c.Parent().Node().(*ast.UnaryExpr).Op {
			case token.ADD, token.SUB, token.XOR:
				return true
			}
		}
	}

	return false
}
