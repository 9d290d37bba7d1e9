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
	"go/types"
	"runtime/trace"
)

// Eligible reports whether call invokes an ordinary, unexported function with a single
// declaration and a single-statement body.
func (e Engine) Eligible(ctx context.Context, call *ast.CallExpr) (Candidate, bool) {
	defer trace.StartRegion(ctx, "Eligible").End()

	if call == nil {
		return Candidate{}, false
	}

	res, err := e.Query.Resolve(ctx, call)
	if err != nil {
		return Candidate{}, false
	}

	fn, ok := res.Best().(*types.Func)
	if !ok || !ordinary(fn) || fn.Exported() {
		return Candidate{}, false
	}

	decls, err := e.Query.Declarations(ctx, fn)
	if err != nil || len(decls) != 1 {
		return Candidate{}, false
	}

	decl := decls[0]
	if !e.Lang.SingleStatement(decl) {
		return Candidate{}, false
	}

	return Candidate{Call: call, Callee: fn, Decl: decl}, true
}

// ordinary reports whether fn is a non-generic package function or concrete method.
func ordinary(fn *types.Func) bool {
	if fn.Pkg() == nil || fn.Origin() != fn {
		return false // universe method or instantiation
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.TypeParams().Len() > 0 || sig.RecvTypeParams().Len() > 0 {
		return false
	}

	if recv := sig.Recv(); recv != nil && types.IsInterface(recv.Type()) {
		return false
	}

	return true
}
