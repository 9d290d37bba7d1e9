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
	"context"
	"go/ast"
	"go/token"
	"go/types"

	"fillmore-labs.com/inlinecall/internal/inline"
	"fillmore-labs.com/inlinecall/internal/scope"
)

// Resolve determines the function or method a call invokes.
//
// Method expressions, function-valued fields and explicitly instantiated calls
// resolve to nothing. When the type checker recorded no use, the candidates are
// looked up by name.
func (p *Package) Resolve(ctx context.Context, call *ast.CallExpr) (inline.Resolution, error) {
	if err := ctx.Err(); err != nil {
		return inline.Resolution{}, err
	}

	var id *ast.Ident

	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		id = fun

	case *ast.SelectorExpr:
		if sel, ok := p.info.Selections[fun]; ok && sel.Kind() != types.MethodVal {
			return inline.Resolution{}, nil
		}

		id = fun.Sel

	default:
		return inline.Resolution{}, nil
	}

	if obj := p.info.Uses[id]; obj != nil {
		return inline.Resolution{Symbol: obj}, nil
	}

	return inline.Resolution{Candidates: p.candidates(call.Fun, id)}, nil
}

// candidates looks up id by name for a call the type checker could not resolve.
func (p *Package) candidates(fun ast.Expr, id *ast.Ident) []types.Object {
	var cands []types.Object

	if sel, ok := ast.Unparen(fun).(*ast.SelectorExpr); ok {
		if t := p.info.TypeOf(sel.X); t != nil {
			if obj, _, _ := types.LookupFieldOrMethod(t, true, p.pkg, id.Name); obj != nil {
				cands = append(cands, obj)
			}
		}

		return cands
	}

	if _, obj := scope.Innermost(p.pkg.Scope(), id.Pos()).LookupParent(id.Name, id.Pos()); obj != nil {
		cands = append(cands, obj)
	}

	return cands
}

// Declarations returns the declarations of fn in this package.
func (p *Package) Declarations(ctx context.Context, fn *types.Func) ([]*ast.FuncDecl, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.decls == nil {
		p.decls = make(map[*types.Func][]*ast.FuncDecl)

		for c := range p.root.Preorder((*ast.FuncDecl)(nil)) {
			decl := c.Node().(*ast.FuncDecl)
			if fn, ok := p.info.Defs[decl.Name].(*types.Func); ok {
				p.decls[fn] = append(p.decls[fn], decl)
			}
		}
	}

	return p.decls[fn], nil
}

// VisibleNames returns the names of all symbols visible at pos.
func (p *Package) VisibleNames(ctx context.Context, pos token.Pos) (map[string]struct{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return scope.VisibleNames(p.pkg.Scope(), pos), nil
}

// References returns the identifiers declaring or referring to obj within root.
func (p *Package) References(ctx context.Context, obj types.Object, root ast.Node) ([]*ast.Ident, error) {
	c, err := p.cursor(root)
	if err != nil {
		return nil, err
	}

	var ids []*ast.Ident

	for ic := range c.Preorder((*ast.Ident)(nil)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if id := ic.Node().(*ast.Ident); p.refersTo(id, obj) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (p *Package) refersTo(id *ast.Ident, obj types.Object) bool {
	if use, ok := p.info.Uses[id]; ok {
		return use == obj
	}

	return p.info.Defs[id] == obj
}

// Locals returns the variables, constants and types declared within root.
func (p *Package) Locals(ctx context.Context, root ast.Node) ([]types.Object, error) {
	c, err := p.cursor(root)
	if err != nil {
		return nil, err
	}

	var (
		objs []types.Object
		seen = make(map[types.Object]struct{})
	)

	for ic := range c.Preorder((*ast.Ident)(nil)) {
		obj := p.info.Defs[ic.Node().(*ast.Ident)]

		switch o := obj.(type) {
		case *types.Var:
			if o.IsField() {
				continue
			}

		case *types.Const, *types.TypeName:

		default:
			continue
		}

		if _, ok := seen[obj]; ok {
			continue
		}

		seen[obj] = struct{}{}
		objs = append(objs, obj)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return objs, nil
}
