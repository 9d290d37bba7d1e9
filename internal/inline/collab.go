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

package inline

import (
	"context"
	"go/ast"
	"go/token"
	"go/types"
)

// Resolution is the result of resolving the function a call invokes.
type Resolution struct {
	// Symbol is the exactly resolved object, nil when resolution was ambiguous.
	Symbol types.Object

	// Candidates are the objects the call might refer to when Symbol is nil.
	Candidates []types.Object
}

// Best returns the exact symbol or, when resolution was ambiguous, the first candidate.
//
// This is a heuristic. Callers must not assume the returned object is the one the
// compiler would choose.
func (r Resolution) Best() types.Object {
	if r.Symbol != nil {
		return r.Symbol
	}

	if len(r.Candidates) > 0 {
		return r.Candidates[0]
	}

	return nil
}

// SymbolQuery resolves symbols and enumerates names visible at a position.
type SymbolQuery interface {
	// Resolve determines the function or method a call invokes.
	Resolve(ctx context.Context, call *ast.CallExpr) (Resolution, error)

	// Declarations returns the declarations of fn found in source.
	Declarations(ctx context.Context, fn *types.Func) ([]*ast.FuncDecl, error)

	// VisibleNames returns the names of all symbols visible at pos.
	VisibleNames(ctx context.Context, pos token.Pos) (map[string]struct{}, error)
}

// ReferenceFinder finds the identifiers referring to an object.
type ReferenceFinder interface {
	// References returns declaring and referencing identifiers of obj within root, in source order.
	References(ctx context.Context, obj types.Object, root ast.Node) ([]*ast.Ident, error)
}

// LocalFinder discovers local declarations.
type LocalFinder interface {
	// Locals returns the objects declared within root, in source order and without duplicates.
	Locals(ctx context.Context, root ast.Node) ([]types.Object, error)
}

// Language is the language hook deciding shapes and computing changes.
type Language interface {
	// SingleStatement reports whether the body of decl consists of exactly one inlinable statement.
	SingleStatement(decl *ast.FuncDecl) bool

	// InlineNode returns the node that replaces the call: the returned expression or the statement.
	InlineNode(decl *ast.FuncDecl) ast.Node

	// ComputeChanges binds the callee's parameters to the call's arguments.
	ComputeChanges(ctx context.Context, c Candidate) (*ChangeSet, error)
}

// Editor modifies source text while keeping the trivia around replaced nodes.
type Editor interface {
	// ReplaceNode replaces old with replacement.
	ReplaceNode(old, replacement ast.Node) error

	// InsertBefore inserts stmt before the statement containing anchor.
	InsertBefore(anchor ast.Node, stmt ast.Stmt) error
}

// Isolated is an [Editor] over a detached copy of a declaration.
type Isolated interface {
	Editor

	// Rewritten returns a node standing for n with all edits applied.
	Rewritten(n ast.Node) (ast.Node, error)
}

// Workspace provides the editors for one inlining.
type Workspace interface {
	// Isolate opens an isolated editor over decl.
	Isolate(decl *ast.FuncDecl) (Isolated, error)

	// Document returns the editor of the caller's source.
	Document() Editor
}

// Candidate is an eligible call site.
type Candidate struct {
	Call   *ast.CallExpr
	Callee *types.Func
	Decl   *ast.FuncDecl
}
