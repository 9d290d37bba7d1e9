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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/inlinecall/internal/inline"
)

// binding associates a parameter with its arguments.
type binding struct {
	param *types.Var
	args  []ast.Expr
	kind  ArgKind

	// array is set for a variadic parameter collecting the trailing arguments.
	array bool

	// addr and deref make an implicit receiver conversion explicit.
	addr, deref bool

	// implicit is set when the receiver is only selected from, which converts it implicitly.
	implicit bool
}

// expr returns the single argument as the parameter receives it.
func (b binding) expr() ast.Expr {
	x := b.args[0]

	switch {
	case b.addr:
		return &ast.UnaryExpr{Op: token.AND, X: x}

	case b.deref:
		return &ast.StarExpr{X: x}

	default:
		return x
	}
}

// ComputeChanges binds the callee's parameters to the call's arguments.
func (p *Package) ComputeChanges(ctx context.Context, c inline.Candidate) (*inline.ChangeSet, error) {
	defer trace.StartRegion(ctx, "ComputeChanges").End()

	node := p.InlineNode(c.Decl)
	if node == nil {
		return nil, fmt.Errorf("%w: body of %s is not a single statement", inline.ErrNotApplicable, c.Callee.Name())
	}

	site, err := p.newSite(c.Call)
	if err != nil {
		return nil, err
	}

	if _, ok := node.(ast.Stmt); ok && !site.stmt {
		return nil, fmt.Errorf("%w: statement in expression context", inline.ErrNotApplicable)
	}

	body, err := p.cursor(node)
	if err != nil {
		return nil, err
	}

	reserved, err := p.checkFree(site, c, body)
	if err != nil {
		return nil, err
	}

	bs, err := p.bindings(c)
	if err != nil {
		return nil, err
	}

	req, err := p.plan(site, body, bs, reserved)
	if err != nil {
		return nil, err
	}

	req.Call, req.Body = c.Call, node

	table, err := inline.BuildRenameTable(ctx, p, p, req)
	if err != nil {
		return nil, err
	}

	changes := inline.NewChangeSet()
	params := make(map[types.Object]struct{}, len(bs))

	for _, b := range bs {
		params[b.param] = struct{}{}

		if err := p.bind(site, table, changes, b); err != nil {
			return nil, err
		}
	}

	for obj, name := range table.All() {
		if _, ok := params[obj]; ok || name == obj.Name() {
			continue
		}

		if err := changes.Add(inline.IdentifierRenameVariableChange{Symbol: obj, Identifier: ast.NewIdent(name)}); err != nil {
			return nil, err
		}
	}

	return changes, nil
}

// bindings pairs receiver and parameters of the callee with the call's arguments.
func (p *Package) bindings(c inline.Candidate) ([]binding, error) {
	sig := c.Callee.Signature()

	var bs []binding

	if recv := sig.Recv(); recv != nil {
		fun, ok := ast.Unparen(c.Call.Fun).(*ast.SelectorExpr)
		if !ok {
			return nil, fmt.Errorf("%w: method call without selector", inline.ErrNotApplicable)
		}

		sel, ok := p.info.Selections[fun]
		if !ok || sel.Kind() != types.MethodVal {
			return nil, fmt.Errorf("%w: not a method value", inline.ErrNotApplicable)
		}

		if len(sel.Index()) > 1 {
			return nil, fmt.Errorf("%w: promoted method %s", inline.ErrNotApplicable, c.Callee.Name())
		}

		ptrRecv, ptrArg := isPointer(recv.Type()), isPointer(p.info.TypeOf(fun.X))
		bs = append(bs, binding{
			param: recv,
			args:  []ast.Expr{fun.X},
			addr:  ptrRecv && !ptrArg,
			deref: !ptrRecv && ptrArg,
		})
	}

	for _, arg := range c.Call.Args {
		if _, ok := p.info.TypeOf(arg).(*types.Tuple); ok {
			return nil, fmt.Errorf("%w: multi-value argument", inline.ErrNotApplicable)
		}
	}

	params, args := sig.Params(), c.Call.Args
	n := params.Len()

	if sig.Variadic() && !c.Call.Ellipsis.IsValid() {
		if len(args) < n-1 {
			return nil, fmt.Errorf("%w: missing arguments", inline.ErrNotApplicable)
		}

		for i := range n - 1 {
			bs = append(bs, binding{param: params.At(i), args: args[i : i+1]})
		}

		return append(bs, binding{param: params.At(n - 1), args: args[n-1:], array: true}), nil
	}

	if len(args) != n {
		return nil, fmt.Errorf("%w: %d arguments for %d parameters", inline.ErrNotApplicable, len(args), n)
	}

	for i := range n {
		bs = append(bs, binding{param: params.At(i), args: args[i : i+1]})
	}

	return bs, nil
}

// plan classifies the bindings and prepares the rename request.
func (p *Package) plan(s *callSite, body inspector.Cursor, bs []binding, reserved []string) (inline.RenameRequest, error) {
	var (
		req     inline.RenameRequest
		hoisted bool
	)

	for i := range bs {
		b := &bs[i]
		b.kind = p.classify(body, b)

		reserved = append(reserved, p.typeWords(b.param.Type())...)

		switch b.kind {
		case ArgRenamed:
			req.Renames = append(req.Renames, inline.ParamBinding{Param: b.param, Name: ast.Unparen(b.args[0]).(*ast.Ident).Name})

		case ArgLiteral, ArgSubstituted:
			reserved = append(reserved, identNames(b.args)...)

		case ArgExtracted:
			req.Expressions = append(req.Expressions, b.param)

		case ArgParamArray:
			req.ParamArray = b.param
		}

		if !b.kind.hoisted() {
			continue
		}

		if p.opts.Conservative {
			return req, fmt.Errorf("%w: parameter %s needs %s", inline.ErrNotApplicable, b.param.Name(), b.kind)
		}

		if s.noHoist != nil {
			return req, fmt.Errorf("%w: %w", inline.ErrNotApplicable, s.noHoist)
		}

		for _, arg := range b.args {
			if p.declaredWithin(arg, s.anchor) {
				return req, fmt.Errorf("%w: argument depends on a declaration in the enclosing statement", inline.ErrNotApplicable)
			}
		}

		hoisted = true
	}

	if hoisted {
		if sc := p.container(s); sc != nil {
			reserved = append(reserved, p.scopes.Declared(sc)...)
		}
	}

	req.Reserved = reserved

	return req, nil
}

// classify decides how an argument is bound.
//
// Extracted arguments are evaluated in order before the call's statement, while
// substituted and renamed arguments are read where the body references them.
func (p *Package) classify(body inspector.Cursor, b *binding) ArgKind {
	refs := p.refCursors(b.param, body)

	if b.array {
		switch {
		case len(refs) > 0:
			return ArgParamArray

		case p.pureAll(b.args) && p.droppableAll(b.args):
			return ArgUnused

		default:
			return ArgDiscarded
		}
	}

	arg := b.args[0]

	switch {
	case len(refs) == 0:
		if p.pure(arg) && p.droppable(arg) {
			return ArgUnused
		}

		return ArgDiscarded

	case p.mutated(refs):
		return ArgExtracted
	}

	if tv := p.info.Types[arg]; !b.addr && !b.deref && (tv.Value != nil || tv.IsNil()) {
		if tv.Value != nil && !foldsLikeRuntime(b.param.Type()) && arithmetic(refs) {
			return ArgExtracted // folded constants must be representable in their type
		}

		return ArgLiteral
	}

	if captured(refs) {
		return ArgExtracted
	}

	if b.addr || b.deref {
		if !selected(refs) {
			return p.substitution(arg, len(refs))
		}

		b.addr, b.deref, b.implicit = false, false, true
	}

	if p.varIdent(arg) && !needsConversion(p.argType(*b), b.param.Type()) {
		return ArgRenamed
	}

	kind := p.substitution(arg, len(refs))
	if kind == ArgExtracted && b.implicit {
		b.implicit = false
		b.addr, b.deref = isPointer(b.param.Type()), !isPointer(b.param.Type())
	}

	return kind
}

// substitution returns whether arg may be duplicated into each reference.
func (p *Package) substitution(arg ast.Expr, uses int) ArgKind {
	if p.pure(arg) && (trivial(arg) || p.opts.MaxUses <= 0 || uses <= p.opts.MaxUses) {
		return ArgSubstituted
	}

	return ArgExtracted
}

// bind records the changes for one binding.
func (p *Package) bind(s *callSite, table *inline.RenameTable, changes *inline.ChangeSet, b binding) error {
	switch b.kind {
	case ArgUnused:
		return nil

	case ArgDiscarded:
		for _, x := range p.discards(b) {
			if err := changes.Add(inline.ExtractDeclarationChange{Declaration: blank(x)}); err != nil {
				return err
			}
		}

		return nil

	case ArgRenamed:
		name, _ := table.Lookup(b.param)
		if name == b.param.Name() {
			return nil
		}

		return changes.Add(inline.IdentifierRenameVariableChange{Symbol: b.param, Identifier: ast.NewIdent(name)})

	case ArgLiteral, ArgSubstituted:
		x, err := p.substitute(s, b)
		if err != nil {
			return err
		}

		return changes.Add(inline.ReplaceVariableChange{Symbol: b.param, Replacement: x})

	case ArgExtracted, ArgParamArray:
		name, ok := table.Lookup(b.param)
		if !ok {
			return fmt.Errorf("no name for parameter %s", b.param.Name())
		}

		decl, err := p.declare(s, name, b)
		if err != nil {
			return err
		}

		if err := changes.Add(inline.ExtractDeclarationChange{Declaration: decl}); err != nil {
			return err
		}

		if name == b.param.Name() {
			return nil
		}

		return changes.Add(inline.IdentifierRenameVariableChange{Symbol: b.param, Identifier: ast.NewIdent(name)})

	default:
		return fmt.Errorf("unknown argument kind %s", b.kind)
	}
}

// discards returns the arguments of an unreferenced parameter that must still be evaluated.
func (p *Package) discards(b binding) []ast.Expr {
	if !b.array {
		return []ast.Expr{b.expr()}
	}

	var xs []ast.Expr

	for _, arg := range b.args {
		if !p.pure(arg) || !p.droppable(arg) {
			xs = append(xs, arg)
		}
	}

	return xs
}

// substitute returns the expression replacing references to the parameter.
func (p *Package) substitute(s *callSite, b binding) (ast.Expr, error) {
	x := b.expr()

	if !needsConversion(p.argType(b), b.param.Type()) {
		return x, nil
	}

	str, err := p.typeString(s, b.param.Type())
	if err != nil {
		return nil, err
	}

	return conversion(str, x), nil
}

// declare returns the declaration hoisted for an extracted parameter or parameter array.
func (p *Package) declare(s *callSite, name string, b binding) (ast.Stmt, error) {
	t := b.param.Type()

	if b.array {
		str, err := p.typeString(s, t)
		if err != nil {
			return nil, err
		}

		if len(b.args) == 0 {
			return varDecl(name, str, nil), nil
		}

		return define(name, &ast.CompositeLit{Type: ast.NewIdent(str), Elts: b.args}), nil
	}

	x := b.expr()

	if !needsConversion(p.argType(b), t) {
		return define(name, x), nil
	}

	str, err := p.typeString(s, t)
	if err != nil {
		return nil, err
	}

	return varDecl(name, str, x), nil
}

// argType returns the type of the single argument as the parameter receives it.
func (p *Package) argType(b binding) types.Type {
	t := p.sourceType(b.args[0])

	switch {
	case b.implicit:
		return b.param.Type()

	case t == nil:
		return nil

	case b.addr:
		return types.NewPointer(t)

	case b.deref:
		if ptr, ok := t.Underlying().(*types.Pointer); ok {
			return ptr.Elem()
		}
	}

	return t
}

// selected reports whether every reference is the operand of a selector.
func selected(refs []inspector.Cursor) bool {
	for _, c := range refs {
		if kind, _ := c.ParentEdge(); kind != edge.SelectorExpr_X {
			return false
		}
	}

	return true
}

// varIdent reports whether e names a variable.
func (p *Package) varIdent(e ast.Expr) bool {
	id, ok := ast.Unparen(e).(*ast.Ident)
	if !ok || id.Name == "_" {
		return false
	}

	_, ok = p.info.Uses[id].(*types.Var)

	return ok
}

func (p *Package) droppableAll(list []ast.Expr) bool {
	for _, e := range list {
		if !p.droppable(e) {
			return false
		}
	}

	return true
}

// container returns the scope of the block the call's statement belongs to.
func (p *Package) container(s *callSite) *types.Scope {
	block := s.anchor.Parent()
	if sc, ok := p.info.Scopes[block.Node()]; ok {
		return sc
	}

	// function bodies share the scope of the signature
	switch fn := block.Parent().Node().(type) {
	case *ast.FuncDecl:
		return p.info.Scopes[fn.Type]

	case *ast.FuncLit:
		return p.info.Scopes[fn.Type]

	default:
		return nil
	}
}

// typeWords returns the identifiers in the spelling of t.
func (p *Package) typeWords(t types.Type) []string {
	return typeWords(types.TypeString(t, (*types.Package).Name))
}

func identNames(list []ast.Expr) []string {
	var names []string

	for _, e := range list {
		ast.Inspect(e, func(n ast.Node) bool {
			if id, ok := n.(*ast.Ident); ok {
				names = append(names, id.Name)
			}

			return true
		})
	}

	return names
}

func blank(x ast.Expr) ast.Stmt {
	return &ast.AssignStmt{Lhs: []ast.Expr{ast.NewIdent("_")}, Tok: token.ASSIGN, Rhs: []ast.Expr{x}}
}

func define(name string, x ast.Expr) ast.Stmt {
	return &ast.AssignStmt{Lhs: []ast.Expr{ast.NewIdent(name)}, Tok: token.DEFINE, Rhs: []ast.Expr{x}}
}

func varDecl(name, typ string, x ast.Expr) ast.Stmt {
	spec := &ast.ValueSpec{Names: []*ast.Ident{ast.NewIdent(name)}, Type: ast.NewIdent(typ)}
	if x != nil {
		spec.Values = []ast.Expr{x}
	}

	return &ast.DeclStmt{Decl: &ast.GenDecl{Tok: token.VAR, Specs: []ast.Spec{spec}}}
}

// foldsLikeRuntime reports whether constant arithmetic of type t yields the run-time result.
// Integer constants other than int fail to compile where run-time values would wrap around.
func foldsLikeRuntime(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)

	return !ok || b.Info()&types.IsInteger == 0 || b.Kind() == types.Int
}
