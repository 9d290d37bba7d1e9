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
	"fmt"
	"go/ast"
	"go/types"
	"iter"
	"runtime/trace"
)

// maxAttempts bounds the search for an unclaimed name.
const maxAttempts = 1000

// RenameTable maps callee symbols to the names they carry after inlining.
type RenameTable struct {
	names map[types.Object]string
	order []types.Object
}

// Lookup returns the name assigned to obj.
func (t *RenameTable) Lookup(obj types.Object) (string, bool) {
	name, ok := t.names[obj]

	return name, ok
}

// Len returns the number of symbols in the table.
func (t *RenameTable) Len() int {
	return len(t.order)
}

// All yields symbols and their names in the order they were added.
func (t *RenameTable) All() iter.Seq2[types.Object, string] {
	return func(yield func(types.Object, string) bool) {
		for _, obj := range t.order {
			if !yield(obj, t.names[obj]) {
				return
			}
		}
	}
}

func (t *RenameTable) add(obj types.Object, name string) error {
	if _, ok := t.names[obj]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, obj.Name())
	}

	t.names[obj] = name
	t.order = append(t.order, obj)

	return nil
}

// ParamBinding binds a parameter directly to a caller identifier.
type ParamBinding struct {
	Param types.Object
	Name  string
}

// RenameRequest holds the inputs of [BuildRenameTable].
type RenameRequest struct {
	// Call is the call site, names visible at its end must not be reused.
	Call *ast.CallExpr

	// Body is the callee node whose local declarations are discovered.
	Body ast.Node

	// ParamArray is the variadic parameter collecting the trailing arguments, if any.
	ParamArray types.Object

	// Renames are parameters replaced by caller identifiers.
	Renames []ParamBinding

	// Expressions are parameters bound to hoisted argument expressions.
	Expressions []types.Object

	// Reserved are names never generated for locals or hoisted parameters.
	Reserved []string
}

// BuildRenameTable computes conflict-free names for the callee's parameters and locals.
//
// Three passes run in order, each seeing the names claimed by the previous ones:
//
//  1. Parameters bound to caller identifiers take the identifier's name.
//  2. Locals of the callee body keep their name or the next unclaimed one.
//  3. Expression parameters, then the parameter array, keep their declared name or the
//     next one that is neither claimed nor visible at the call site.
func BuildRenameTable(ctx context.Context, q SymbolQuery, locals LocalFinder, req RenameRequest) (*RenameTable, error) {
	defer trace.StartRegion(ctx, "RenameTable").End()

	if req.Call == nil {
		return nil, fmt.Errorf("%w: no call site", ErrNotApplicable)
	}

	t := &RenameTable{names: make(map[types.Object]string)}

	claimed := make(map[string]struct{}, len(req.Reserved)+len(req.Renames))
	for _, name := range req.Reserved {
		claimed[name] = struct{}{}
	}

	for _, b := range req.Renames {
		if err := t.add(b.Param, b.Name); err != nil {
			return nil, err
		}

		claimed[b.Name] = struct{}{}
	}

	if req.Body != nil {
		objs, err := locals.Locals(ctx, req.Body)
		if err != nil {
			return nil, err
		}

		for _, obj := range objs {
			if _, ok := t.names[obj]; ok || obj.Name() == "_" {
				continue
			}

			name, err := unclaimed(obj.Name(), claimed)
			if err != nil {
				return nil, err
			}

			if err := t.add(obj, name); err != nil {
				return nil, err
			}

			claimed[name] = struct{}{}
		}
	}

	params := req.Expressions
	if req.ParamArray != nil {
		params = append(params[:len(params):len(params)], req.ParamArray)
	}

	if len(params) == 0 {
		return t, nil
	}

	visible, err := q.VisibleNames(ctx, req.Call.End())
	if err != nil {
		return nil, err
	}

	for _, param := range params {
		name, err := unclaimed(param.Name(), claimed, visible)
		if err != nil {
			return nil, err
		}

		if err := t.add(param, name); err != nil {
			return nil, err
		}

		claimed[name] = struct{}{}
	}

	return t, nil
}

// unclaimed returns the first name derived from base with [NextName] that is in none of the sets.
func unclaimed(base string, sets ...map[string]struct{}) (string, error) {
	if base == "" || base == "_" {
		base = "arg"
	}

	name := base

next:
	for range maxAttempts {
		for _, set := range sets {
			if _, ok := set[name]; ok {
				name = NextName(name)

				continue next
			}
		}

		return name, nil
	}

	return "", fmt.Errorf("%w: %s after %d attempts", ErrNameExhausted, base, maxAttempts)
}
