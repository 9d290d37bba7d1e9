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

// Package scope answers name visibility questions on type-checked Go code.
package scope

import (
	"go/ast"
	"go/token"
	"go/types"
	"maps"
	"slices"
)

// Index maps scopes to the AST nodes that open them.
type Index map[*types.Scope]ast.Node

// NewIndex creates a scope index from the type checker's scope map.
func NewIndex(info *types.Info) Index {
	s := make(Index, len(info.Scopes))
	for node, scope := range info.Scopes {
		s[scope] = node
	}

	return s
}

// Local reports whether scope is opened inside a function.
func (s Index) Local(scope *types.Scope) bool {
	switch s[scope].(type) {
	case nil, *ast.File:
		return false // universe, package or file scope

	default:
		return true
	}
}

// Innermost returns the innermost scope below pkg containing pos, or pkg itself.
func Innermost(pkg *types.Scope, pos token.Pos) *types.Scope {
	if scope := pkg.Innermost(pos); scope != nil {
		return scope
	}

	return pkg
}

// VisibleNames returns the names of all objects visible at pos.
//
// Function-local objects are visible after their declaration, objects of file,
// package and universe scope everywhere.
func VisibleNames(pkg *types.Scope, pos token.Pos) map[string]struct{} {
	inner := Innermost(pkg, pos)

	names := make(map[string]struct{})
	for scope := inner; scope != nil; scope = scope.Parent() {
		for _, name := range scope.Names() {
			if _, ok := names[name]; ok {
				continue
			}

			if _, obj := inner.LookupParent(name, pos); obj != nil {
				names[name] = struct{}{}
			}
		}
	}

	return names
}

// Declared returns the sorted names declared in scope and its local children.
func (s Index) Declared(scope *types.Scope) []string {
	names := make(map[string]struct{})
	s.declared(scope, names)

	return slices.Sorted(maps.Keys(names))
}

func (s Index) declared(scope *types.Scope, names map[string]struct{}) {
	for _, name := range scope.Names() {
		names[name] = struct{}{}
	}

	for child := range scope.Children() {
		if s.Local(child) {
			s.declared(child, names)
		}
	}
}
