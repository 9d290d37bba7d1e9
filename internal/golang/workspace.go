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

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/inlinecall/internal/edit"
	"fillmore-labs.com/inlinecall/internal/inline"
)

// Workspace provides the editors for inlining one call.
type Workspace struct {
	p   *Package
	c   inline.Candidate
	doc *edit.Document
}

var _ inline.Workspace = (*Workspace)(nil)

// Workspace creates a [Workspace] for the candidate.
func (p *Package) Workspace(c inline.Candidate) *Workspace {
	return &Workspace{p: p, c: c, doc: p.src.Document(p.root)}
}

// Isolate opens an isolated editor over decl.
func (w *Workspace) Isolate(decl *ast.FuncDecl) (inline.Isolated, error) {
	dc, err := w.p.cursor(decl)
	if err != nil {
		return nil, err
	}

	buf, err := w.p.src.Isolate(dc)
	if err != nil {
		return nil, err
	}

	site, err := w.p.newSite(w.c.Call)
	if err != nil {
		return nil, err
	}

	return &isolated{Buffer: buf, p: w.p, c: w.c, site: site}, nil
}

// Document returns the editor of the caller's source.
func (w *Workspace) Document() inline.Editor {
	return w.doc
}

// Edits returns the accumulated text edits of the caller's source.
func (w *Workspace) Edits() []analysis.TextEdit {
	return w.doc.Edits()
}

// Anchors returns the statements declarations were inserted before.
func (w *Workspace) Anchors() []ast.Node {
	return w.doc.Anchors()
}

// isolated adapts the rewritten callee expression to the call site.
type isolated struct {
	*edit.Buffer

	p    *Package
	c    inline.Candidate
	site *callSite
}

// Rewritten returns the rewritten node, converted to the callee's result type and
// assigned to the blank identifier when it can't stand alone as a statement.
func (i *isolated) Rewritten(n ast.Node) (ast.Node, error) {
	r, err := i.Buffer.Rewritten(n)
	if err != nil {
		return nil, err
	}

	orig, ok := n.(ast.Expr)
	if !ok {
		return r, nil
	}

	x, ok := r.(ast.Expr)
	if !ok {
		return r, nil
	}

	standalone := i.p.statementExpr(orig)

	if results := i.c.Callee.Signature().Results(); results.Len() == 1 {
		if to := results.At(0).Type(); needsConversion(i.p.sourceType(orig), to) {
			str, err := i.p.typeString(i.site, to)
			if err != nil {
				return nil, err
			}

			x, standalone = conversion(str, x), false
		}
	}

	if i.site.stmt && !standalone {
		return blank(x), nil
	}

	return x, nil
}
