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

package golang_test

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/inlinecall/internal/edit"
	. "fillmore-labs.com/inlinecall/internal/golang"
	"fillmore-labs.com/inlinecall/internal/inline"
	"fillmore-labs.com/inlinecall/internal/testsource"
)

const prelude = `package test

import "fmt"

type calc struct{ base int }

func (c calc) add(a, b int) int { return a + b }

func (c *calc) offset(v int) int { return c.base + v }

func (c calc) scale(f float64) float64 { return f * 2 }

func (c calc) half(f float64) float64 { return f / 2 }

func (c calc) sum8(a int8) int8 { return a + a }

func (c calc) id8(a int8) int8 { return a }

func (c calc) square(x int) int { return x * x }

func (c calc) logf(format string, args ...int) { fmt.Printf(format, len(args)) }

func (c calc) twice(a int) int { return func() int { a++; return a }() }

func (c calc) double(a int) int { return func() int { temp := a; return temp * 2 }() }

func (c calc) ignore(a int) int { return 0 }

func (c calc) inc(p *int) { *p++ }

func (c calc) dbl(a int) int { return 2 * a }

func (c calc) count() int { return n }

func (c calc) named() (r int) { return r }

func (c calc) Exported(a int) int { return a }

var n int

func next() int { n++; return n }

func pair() (int, int) { return 1, 2 }
`

var errNotEligible = errors.New("not eligible")

// inlineMarked inlines the call preceding the "/* here */" comment and returns the edited caller.
func inlineMarked(t *testing.T, caller string, opts Options) (string, error) {
	t.Helper()

	src := prelude + caller

	fset, f := testsource.ParseFile(t, src)
	pkg, info := testsource.Check(t, fset, f)
	in := inspector.New([]*ast.File{f})

	p := New(fset, pkg, info, in, edit.NewSource(fset, testsource.ReadFile(src)), opts)
	call := callBefore(t, in, testsource.Comment(t, f, "/* here */"))

	eng := p.Engine()

	c, ok := eng.Eligible(t.Context(), call)
	if !ok {
		return "", errNotEligible
	}

	ws := p.Workspace(c)
	if err := eng.Inline(t.Context(), c, ws); err != nil {
		return "", err
	}

	out, err := edit.ApplyTextEdits(fset.File(f.Pos()), []byte(src), ws.Edits())
	if err != nil {
		t.Fatalf("Can't apply edits: %v", err)
	}

	result, ok := strings.CutPrefix(string(out), prelude)
	if !ok {
		t.Fatalf("Declarations changed:\n%s", out)
	}

	return result, nil
}

// callBefore returns the outermost call ending last before pos.
func callBefore(t *testing.T, in *inspector.Inspector, pos token.Pos) *ast.CallExpr {
	t.Helper()

	var found *ast.CallExpr

	for c := range in.Root().Preorder((*ast.CallExpr)(nil)) {
		call := c.Node().(*ast.CallExpr)
		if call.End() <= pos && (found == nil || call.End() > found.End()) {
			found = call
		}
	}

	if found == nil {
		t.Fatal("No call before marker")
	}

	return found
}

func TestInline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   Options
		caller string
		want   string
	}{
		{
			name: "rename",
			caller: `
func caller(c calc, x, y int) int {
	return c.add(x, y) /* here */
}
`,
			want: `
func caller(c calc, x, y int) int {
	return x + y /* here */
}
`,
		},
		{
			name: "parens",
			caller: `
func caller(c calc, x, y int) int {
	return 2 * c.add(x, y) /* here */
}
`,
			want: `
func caller(c calc, x, y int) int {
	return 2 * (x + y) /* here */
}
`,
		},
		{
			name: "implicit address",
			caller: `
func caller(c calc) int {
	return c.offset(3) /* here */
}
`,
			want: `
func caller(c calc) int {
	return c.base + 3 /* here */
}
`,
		},
		{
			name: "extract",
			caller: `
func caller(c calc) int {
	return c.square(next()) /* here */
}
`,
			want: `
func caller(c calc) int {
	x := next()
	return x * x /* here */
}
`,
		},
		{
			name: "param array",
			caller: `
func caller(c calc) {
	c.logf("%d\n", c.base, 2) /* here */
}
`,
			want: `
func caller(c calc) {
	args := []int{c.base, 2}
	fmt.Printf("%d\n", len(args)) /* here */
}
`,
		},
		{
			name: "local renamed",
			caller: `
func caller(c calc, temp int) int {
	return c.double(temp + 1) /* here */
}
`,
			want: `
func caller(c calc, temp int) int {
	return func() int { temp1 := temp + 1; return temp1 * 2 }() /* here */
}
`,
		},
		{
			name: "mutated parameter",
			caller: `
func caller(c calc, a int) int {
	return c.twice(a) /* here */
}
`,
			want: `
func caller(c calc, a int) int {
	a1 := a
	return func() int { a1++; return a1 }() /* here */
}
`,
		},
		{
			name: "discarded",
			caller: `
func caller(c calc) int {
	return c.ignore(next()) /* here */
}
`,
			want: `
func caller(c calc) int {
	_ = next()
	return 0 /* here */
}
`,
		},
		{
			name: "literal conversion",
			caller: `
func caller(c calc) float64 {
	return c.scale(3) /* here */
}
`,
			want: `
func caller(c calc) float64 {
	return float64(3) * 2 /* here */
}
`,
		},
		{
			name: "untyped division",
			caller: `
func caller(c calc) float64 {
	return c.half(3) /* here */
}
`,
			want: `
func caller(c calc) float64 {
	return float64(3) / 2 /* here */
}
`,
		},
		{
			name: "sized integer arithmetic",
			caller: `
func caller(c calc) int8 {
	return c.sum8(100) /* here */
}
`,
			want: `
func caller(c calc) int8 {
	var a int8 = 100
	return a + a /* here */
}
`,
		},
		{
			name: "sized integer conversion",
			caller: `
func caller(c calc) int8 {
	return c.id8(100) /* here */
}
`,
			want: `
func caller(c calc) int8 {
	return int8(100) /* here */
}
`,
		},
		{
			name: "dereference kept",
			caller: `
func caller(c calc, p *int) int {
	return c.ignore(*p) /* here */
}
`,
			want: `
func caller(c calc, p *int) int {
	_ = *p
	return 0 /* here */
}
`,
		},
		{
			name: "type assertion kept",
			caller: `
func caller(c calc, x any) int {
	return c.ignore(x.(int)) /* here */
}
`,
			want: `
func caller(c calc, x any) int {
	_ = x.(int)
	return 0 /* here */
}
`,
		},
		{
			name: "statement",
			caller: `
func caller(c calc, x int) {
	c.inc(&x) /* here */
}
`,
			want: `
func caller(c calc, x int) {
	*(&x)++ /* here */
}
`,
		},
		{
			name: "discarded result",
			caller: `
func caller(c calc, x int) {
	c.dbl(x) /* here */
}
`,
			want: `
func caller(c calc, x int) {
	_ = 2 * x /* here */
}
`,
		},
		{
			name: "substitute",
			opts: Options{MaxUses: -1},
			caller: `
func caller(c calc, x int) int {
	return c.square(x + 1) /* here */
}
`,
			want: `
func caller(c calc, x int) int {
	return (x + 1) * (x + 1) /* here */
}
`,
		},
		{
			name: "max uses",
			opts: Options{MaxUses: 1},
			caller: `
func caller(c calc, x int) int {
	return c.square(x + 1) /* here */
}
`,
			want: `
func caller(c calc, x int) int {
	x1 := x + 1
	return x1 * x1 /* here */
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := inlineMarked(t, tt.caller, tt.opts)
			if err != nil {
				t.Fatalf("Inline failed: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Inline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInlineRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   Options
		caller string
		err    error
	}{
		{
			name: "exported",
			caller: `
func caller(c calc) int {
	return c.Exported(1) /* here */
}
`,
			err: errNotEligible,
		},
		{
			name: "shadowed free identifier",
			caller: `
func caller(c calc, n string) int {
	return c.count() /* here */
}
`,
			err: inline.ErrNotApplicable,
		},
		{
			name: "go statement",
			caller: `
func caller(c calc, x int) {
	go c.inc(&x) /* here */
}
`,
			err: inline.ErrNotApplicable,
		},
		{
			name: "loop condition",
			caller: `
func caller(c calc) {
	for c.square(next()) < 10 /* here */ {
	}
}
`,
			err: inline.ErrNotApplicable,
		},
		{
			name: "conditional operand",
			caller: `
func caller(c calc, x int) bool {
	return x > 0 && c.square(next()) > 0 /* here */
}
`,
			err: inline.ErrNotApplicable,
		},
		{
			name: "labeled statement",
			caller: `
func caller(c calc) int {
	goto L
L:
	return c.square(next()) /* here */
}
`,
			err: inline.ErrNotApplicable,
		},
		{
			name: "conservative",
			opts: Options{Conservative: true},
			caller: `
func caller(c calc) int {
	return c.square(next()) /* here */
}
`,
			err: inline.ErrNotApplicable,
		},
		{
			name: "multi-value argument",
			caller: `
func caller(c calc) int {
	return c.add(pair()) /* here */
}
`,
			err: inline.ErrNotApplicable,
		},
		{
			name: "named result",
			caller: `
func caller(c calc) int {
	return c.named() /* here */
}
`,
			err: inline.ErrNotApplicable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := inlineMarked(t, tt.caller, tt.opts)
			if !errors.Is(err, tt.err) {
				t.Errorf("Got error %v, want %v (result %q)", err, tt.err, got)
			}
		})
	}
}
