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
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"regexp"

	"fillmore-labs.com/inlinecall/internal/inline"
)

// identRE matches identifiers and qualified identifiers.
var identRE = regexp.MustCompile(`^[\pL_][\pL\pN_]*(\.[\pL_][\pL\pN_]*)?$`)

// wordRE matches the identifiers within a type string.
var wordRE = regexp.MustCompile(`[\pL_][\pL\pN_]*`)

// typeString spells t at the call site.
func (p *Package) typeString(s *callSite, t types.Type) (string, error) {
	var failed error

	qualifier := func(other *types.Package) string {
		if other == p.pkg {
			return ""
		}

		name, err := p.importName(s, other)
		if err != nil && failed == nil {
			failed = err
		}

		return name
	}

	str := types.TypeString(t, qualifier)
	if failed != nil {
		return "", failed
	}

	if err := p.spellable(s, t, make(map[types.Type]struct{})); err != nil {
		return "", err
	}

	return str, nil
}

// importName returns the name the caller's file imports pkg under.
func (p *Package) importName(s *callSite, pkg *types.Package) (string, error) {
	for _, spec := range s.file.Imports {
		var obj types.Object
		if spec.Name != nil {
			obj = p.info.Defs[spec.Name]
		} else {
			obj = p.info.Implicits[spec]
		}

		pn, ok := obj.(*types.PkgName)
		if !ok || pn.Imported() != pkg {
			continue
		}

		switch name := pn.Name(); name {
		case "_":
			continue

		case ".":
			return "", nil

		default:
			if _, found := s.scope.LookupParent(name, s.call.Pos()); found != pn {
				return "", fmt.Errorf("%w: package name %s is shadowed", inline.ErrNotApplicable, name)
			}

			return name, nil
		}
	}

	return pkg.Name(), fmt.Errorf("%w: package %s not imported", inline.ErrNotApplicable, pkg.Path())
}

// spellable verifies that every named type in t denotes the same type at the call site.
func (p *Package) spellable(s *callSite, t types.Type, seen map[types.Type]struct{}) error {
	if _, ok := seen[t]; ok {
		return nil
	}

	seen[t] = struct{}{}

	switch t := t.(type) {
	case *types.Basic:
		if t.Kind() == types.UnsafePointer {
			return nil // qualified by the unsafe import
		}

		return p.visible(s, types.Universe.Lookup(t.Name()))

	case *types.Named:
		if err := p.visible(s, t.Obj()); err != nil {
			return err
		}

		for arg := range t.TypeArgs().Types() {
			if err := p.spellable(s, arg, seen); err != nil {
				return err
			}
		}

		return nil

	case *types.Alias:
		if err := p.visible(s, t.Obj()); err != nil {
			return err
		}

		for arg := range t.TypeArgs().Types() {
			if err := p.spellable(s, arg, seen); err != nil {
				return err
			}
		}

		return nil

	case *types.Pointer:
		return p.spellable(s, t.Elem(), seen)

	case *types.Slice:
		return p.spellable(s, t.Elem(), seen)

	case *types.Array:
		return p.spellable(s, t.Elem(), seen)

	case *types.Chan:
		return p.spellable(s, t.Elem(), seen)

	case *types.Map:
		if err := p.spellable(s, t.Key(), seen); err != nil {
			return err
		}

		return p.spellable(s, t.Elem(), seen)

	case *types.Signature:
		for _, tuple := range [...]*types.Tuple{t.Params(), t.Results()} {
			for v := range tuple.Variables() {
				if err := p.spellable(s, v.Type(), seen); err != nil {
					return err
				}
			}
		}

		return nil

	case *types.Struct:
		for f := range t.Fields() {
			if err := p.spellable(s, f.Type(), seen); err != nil {
				return err
			}
		}

		return nil

	case *types.Interface:
		for m := range t.ExplicitMethods() {
			if err := p.spellable(s, m.Type(), seen); err != nil {
				return err
			}
		}

		for e := range t.EmbeddedTypes() {
			if err := p.spellable(s, e, seen); err != nil {
				return err
			}
		}

		return nil

	case *types.Union:
		for i := range t.Len() {
			if err := p.spellable(s, t.Term(i).Type(), seen); err != nil {
				return err
			}
		}

		return nil

	default:
		return fmt.Errorf("%w: type %s can't be spelled", inline.ErrNotApplicable, t)
	}
}

// visible checks that the name of obj denotes obj at the call site.
func (p *Package) visible(s *callSite, obj types.Object) error {
	if obj == nil {
		return fmt.Errorf("%w: unnamed type", inline.ErrNotApplicable)
	}

	if obj.Pkg() != nil && obj.Pkg() != p.pkg {
		if !obj.Exported() {
			return fmt.Errorf("%w: type %s not exported", inline.ErrNotApplicable, obj.Name())
		}

		return nil // package name checked by the qualifier
	}

	if _, found := s.scope.LookupParent(obj.Name(), s.call.Pos()); found != obj {
		return fmt.Errorf("%w: type %s not visible at the call site", inline.ErrNotApplicable, obj.Name())
	}

	return nil
}

// typeWords returns the identifiers in a type string, which must not be shadowed by renamed locals.
func typeWords(str string) []string {
	return wordRE.FindAllString(str, -1)
}

// conversion returns the expression converting x to the type spelled str.
func conversion(str string, x ast.Expr) ast.Expr {
	if !identRE.MatchString(str) {
		str = "(" + str + ")"
	}

	return &ast.CallExpr{Fun: ast.NewIdent(str), Args: []ast.Expr{x}}
}

// needsConversion reports whether a value of type from must be converted to keep type to.
func needsConversion(from, to types.Type) bool {
	if from == nil || types.Identical(from, to) {
		return false
	}

	if b, ok := from.(*types.Basic); ok && b.Info()&types.IsUntyped != 0 {
		return !types.Identical(types.Default(from), to)
	}

	return true
}

// sourceType returns the type of e when its text is copied to another context.
//
// The type checker records untyped constants with the type and value of their context,
// a copied constant expression without typed operands has its default type again.
func (p *Package) sourceType(e ast.Expr) types.Type {
	tv, ok := p.info.Types[e]
	switch {
	case !ok:
		return nil

	case tv.IsNil():
		return types.Typ[types.UntypedNil]

	case tv.Value != nil:
		if kind := p.untypedKind(e); kind != types.Invalid {
			return types.Default(types.Typ[kind])
		}
	}

	return tv.Type
}

// untypedKind returns the untyped kind of a constant expression of untyped operands
// or [types.Invalid].
//
// Numeric operands combine to the later of int, rune, float and complex.
func (p *Package) untypedKind(e ast.Expr) types.BasicKind {
	switch e := e.(type) {
	case *ast.BasicLit:
		switch e.Kind {
		case token.INT:
			return types.UntypedInt

		case token.FLOAT:
			return types.UntypedFloat

		case token.IMAG:
			return types.UntypedComplex

		case token.CHAR:
			return types.UntypedRune

		case token.STRING:
			return types.UntypedString
		}

	case *ast.ParenExpr:
		return p.untypedKind(e.X)

	case *ast.UnaryExpr:
		kind := p.untypedKind(e.X)
		if e.Op == token.NOT && kind != types.Invalid {
			return types.UntypedBool
		}

		return kind

	case *ast.BinaryExpr:
		x := p.untypedKind(e.X)

		switch e.Op {
		case token.SHL, token.SHR:
			return x

		case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
			return types.UntypedBool // constant comparisons are untyped

		case token.LAND, token.LOR:
			if x == types.Invalid || p.untypedKind(e.Y) == types.Invalid {
				return types.Invalid
			}

			return types.UntypedBool
		}

		y := p.untypedKind(e.Y)
		if x == types.Invalid || y == types.Invalid {
			return types.Invalid
		}

		return max(x, y)

	case *ast.Ident:
		return untypedConstKind(p.info.Uses[e])

	case *ast.SelectorExpr:
		return untypedConstKind(p.info.Uses[e.Sel])
	}

	return types.Invalid
}

func untypedConstKind(obj types.Object) types.BasicKind {
	c, ok := obj.(*types.Const)
	if !ok {
		return types.Invalid
	}

	if b, ok := c.Type().(*types.Basic); ok && b.Info()&types.IsUntyped != 0 {
		return b.Kind()
	}

	return types.Invalid
}
