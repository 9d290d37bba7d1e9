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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/inlinecall/internal/astutil"
	"fillmore-labs.com/inlinecall/internal/config"
	"fillmore-labs.com/inlinecall/internal/edit"
	"fillmore-labs.com/inlinecall/internal/golang"
	"fillmore-labs.com/inlinecall/internal/inline"
	"fillmore-labs.com/inlinecall/internal/report"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the inlinecall analyzer's pipeline.
func (o *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("inlinecall: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "InlineCall")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	pkg := golang.New(p.Fset, p.Pkg, p.TypesInfo, in, edit.NewSource(p.Fset, p.ReadFile), golang.Options{
		Conservative: o.Behavior.Enabled(config.Conservative),
		MaxUses:      o.MaxUses,
	})

	eng := pkg.Engine()

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.DocHasNoLint(file.Doc) {
			continue
		}

		o.inlineCalls(ctx, p, pkg, eng, currentFile, f)
	}

	return nil, nil
}

// inlineCalls reports every eligible call in a file with its inlining fix.
// Calls whose edits overlap an earlier fix in the same file are skipped.
func (o *Options) inlineCalls(ctx context.Context, p *analysis.Pass, pkg *golang.Package, eng inline.Engine, currentFile astutil.CurrentFile, f inspector.Cursor) {
	defer trace.StartRegion(ctx, "InlineCalls").End()

	var emitted []analysis.TextEdit

	for c := range f.Preorder((*ast.CallExpr)(nil)) {
		call := c.Node().(*ast.CallExpr)

		if suppressed(currentFile, c) {
			continue
		}

		cand, ok := eng.Eligible(ctx, call)
		if !ok {
			continue
		}

		if o.Behavior.Enabled(config.DirectiveOnly) && !astutil.HasInlineDirective(cand.Decl.Doc) {
			continue
		}

		ws := pkg.Workspace(cand)
		if err := eng.Inline(ctx, cand, ws); err != nil {
			if !silent(err) {
				astutil.InternalError(p, call, "Can't inline %s: %v", report.CalleeName(cand.Callee), err)
			}

			continue
		}

		edits := ws.Edits()
		if edit.Overlapping(emitted, edits) {
			continue
		}

		emitted = append(emitted, edits...)

		report.Inlinable(p, cand, ws.Anchors(), edits)
	}
}

// suppressed reports whether a nolint comment excludes the call.
func suppressed(currentFile astutil.CurrentFile, c inspector.Cursor) bool {
	if currentFile.NoLintComment(c.Node().Pos()) {
		return true
	}

	for fc := range c.Enclosing((*ast.FuncDecl)(nil)) {
		if astutil.DocHasNoLint(fc.Node().(*ast.FuncDecl).Doc) {
			return true
		}
	}

	return false
}

// silent reports whether err only means the call can't be inlined.
func silent(err error) bool {
	return errors.Is(err, inline.ErrNotApplicable) ||
		errors.Is(err, edit.ErrNoSource) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
