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

// Package golang implements the collaborators of the inlining engine for
// type-checked Go packages.
//
// A [Package] answers symbol and scope queries, finds references and local
// declarations, and binds a callee's parameters to the arguments of a call:
//
//   - identifiers naming variables replace the parameter,
//   - constants and side-effect-free expressions are substituted,
//   - other arguments are hoisted into declarations before the call's statement.
//
// It refuses calls whose inlining would change the meaning of an identifier.
package golang

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/inlinecall/internal/edit"
	"fillmore-labs.com/inlinecall/internal/inline"
	"fillmore-labs.com/inlinecall/internal/scope"
)

// Options configure argument binding.
type Options struct {
	// Conservative refuses inlining that needs hoisted declarations.
	Conservative bool

	// MaxUses limits how often a non-trivial expression is duplicated, zero or negative for no limit.
	MaxUses int
}

// Package provides the language collaborators for one type-checked package.
type Package struct {
	fset   *token.FileSet
	pkg    *types.Package
	info   *types.Info
	root   inspector.Cursor
	src    *edit.Source
	scopes scope.Index
	opts   Options

	decls  map[*types.Func][]*ast.FuncDecl
	uses   map[types.Object]int
	params map[*types.Var]struct{}
}

// New creates a [Package].
func New(fset *token.FileSet, pkg *types.Package, info *types.Info, in *inspector.Inspector, src *edit.Source, opts Options) *Package {
	return &Package{
		fset:   fset,
		pkg:    pkg,
		info:   info,
		root:   in.Root(),
		src:    src,
		scopes: scope.NewIndex(info),
		opts:   opts,
	}
}

// Engine returns an [inline.Engine] using p for all collaborators.
func (p *Package) Engine() inline.Engine {
	return inline.Engine{Query: p, Refs: p, Locals: p, Lang: p}
}

// cursor finds the cursor of n.
func (p *Package) cursor(n ast.Node) (inspector.Cursor, error) {
	c, ok := p.root.FindNode(n)
	if !ok {
		return c, fmt.Errorf("%w: %T at %s", edit.ErrForeignNode, n, p.fset.Position(n.Pos()))
	}

	return c, nil
}

// isParam reports whether v is a parameter, result or receiver of a function.
func (p *Package) isParam(v *types.Var) bool {
	if p.params == nil {
		p.params = make(map[*types.Var]struct{})

		for c := range p.root.Preorder((*ast.FuncDecl)(nil), (*ast.FuncType)(nil)) {
			var lists []*ast.FieldList

			switch n := c.Node().(type) {
			case *ast.FuncDecl:
				lists = append(lists, n.Recv)

			case *ast.FuncType:
				lists = append(lists, n.Params, n.Results)
			}

			for _, list := range lists {
				if list == nil {
					continue
				}

				for _, field := range list.List {
					for _, id := range field.Names {
						if v, ok := p.info.Defs[id].(*types.Var); ok {
							p.params[v] = struct{}{}
						}
					}
				}
			}
		}
	}

	_, ok := p.params[v]

	return ok
}

// useCount returns how often obj is read in the package.
// Assignments and increments don't count, as for the compiler's unused variable check.
func (p *Package) useCount(obj types.Object) int {
	if p.uses == nil {
		p.uses = make(map[types.Object]int)

		for c := range p.root.Preorder((*ast.Ident)(nil)) {
			switch kind, _ := c.ParentEdge(); kind {
			case edge.AssignStmt_Lhs, edge.IncDecStmt_X:
				continue
			}

			if use := p.info.Uses[c.Node().(*ast.Ident)]; use != nil {
				p.uses[use]++
			}
		}
	}

	return p.uses[obj]
}
