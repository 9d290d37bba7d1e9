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

// Package report emits the diagnostics of inlinable calls.
package report

import (
	"fmt"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/inlinecall/internal/inline"
	"fillmore-labs.com/inlinecall/internal/scope"
)

// Inlinable reports the call of candidate c with a fix applying edits.
//
// The related information points to the callee declaration and to every
// statement the fix inserts declarations before.
func Inlinable(p *analysis.Pass, c inline.Candidate, anchors []ast.Node, edits []analysis.TextEdit) {
	p.Report(Diagnostic(c, anchors, edits))
}

// Diagnostic constructs the diagnostic reported by [Inlinable].
func Diagnostic(c inline.Candidate, anchors []ast.Node, edits []analysis.TextEdit) analysis.Diagnostic {
	name := CalleeName(c.Callee)

	related := make([]analysis.RelatedInformation, 0, 1+len(anchors))
	if c.Decl != nil {
		related = append(related, analysis.RelatedInformation{
			Pos:     c.Decl.Name.Pos(),
			End:     c.Decl.Name.End(),
			Message: fmt.Sprintf("'%s' declared here", name),
		})
	}

	for _, a := range anchors {
		related = append(related, analysis.RelatedInformation{
			Pos:     a.Pos(),
			End:     a.End(),
			Message: "Declarations are inserted before this " + scope.Name(a),
		})
	}

	return analysis.Diagnostic{
		Pos:     c.Call.Pos(),
		End:     c.Call.End(),
		Message: fmt.Sprintf("Call of '%s' can be inlined", name),
		Related: related,
		SuggestedFixes: []analysis.SuggestedFix{{
			Message:   fmt.Sprintf("Inline '%s'", name),
			TextEdits: edits,
		}},
	}
}

// CalleeName returns the function name, qualified with the receiver's type name for methods.
func CalleeName(fn *types.Func) string {
	recv := fn.Signature().Recv()
	if recv == nil {
		return fn.Name()
	}

	t := recv.Type()
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	if named, ok := types.Unalias(t).(*types.Named); ok {
		return named.Obj().Name() + "." + fn.Name()
	}

	return fn.Name()
}
