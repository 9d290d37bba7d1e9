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

package edit

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"reflect"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Source renders nodes as source text.
type Source struct {
	fset     *token.FileSet
	readFile func(filename string) ([]byte, error)
	files    map[*token.File][]byte
	synth    map[ast.Node][]byte
}

// NewSource creates a [Source] reading file contents with readFile.
func NewSource(fset *token.FileSet, readFile func(filename string) ([]byte, error)) *Source {
	return &Source{
		fset:     fset,
		readFile: readFile,
		files:    make(map[*token.File][]byte),
		synth:    make(map[ast.Node][]byte),
	}
}

// Content returns the file containing pos and its content.
func (s *Source) Content(pos token.Pos) (*token.File, []byte, error) {
	tf := s.fset.File(pos)
	if tf == nil {
		return nil, nil, fmt.Errorf("%w: no file for position %d", ErrNoSource, pos)
	}

	if content, ok := s.files[tf]; ok {
		return tf, content, nil
	}

	content, err := s.readFile(tf.Name())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrNoSource, err)
	}

	if len(content) != tf.Size() {
		return nil, nil, fmt.Errorf("%w: %s has changed", ErrNoSource, tf.Name())
	}

	s.files[tf] = content

	return tf, content, nil
}

// Text returns the source text of n.
//
// Positioned nodes are taken verbatim from their file, including comments. Nodes
// registered with [Source.Register] return their registered text, other
// synthesized nodes are rendered from their parts.
func (s *Source) Text(n ast.Node) ([]byte, error) {
	if text, ok := s.synth[n]; ok {
		return text, nil
	}

	if pos, end := n.Pos(), n.End(); pos.IsValid() && end.IsValid() {
		tf, content, err := s.Content(pos)
		if err != nil {
			return nil, err
		}

		start, stop := tf.Offset(pos), tf.Offset(end)

		return content[start:stop:stop], nil
	}

	var buf bytes.Buffer
	if err := s.render(&buf, n); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Register records the text of a synthesized node.
func (s *Source) Register(n ast.Node, text []byte) {
	s.synth[n] = text
}

// render prints a synthesized node whose children may be positioned.
func (s *Source) render(buf *bytes.Buffer, n ast.Node) error {
	switch n := n.(type) {
	case *ast.Ident:
		buf.WriteString(n.Name) // ignore error

	case *ast.ParenExpr:
		buf.WriteByte('(') // ignore error

		if err := s.write(buf, n.X); err != nil {
			return err
		}

		buf.WriteByte(')') // ignore error

	case *ast.UnaryExpr:
		buf.WriteString(n.Op.String()) // ignore error

		return s.write(buf, n.X)

	case *ast.StarExpr:
		buf.WriteByte('*') // ignore error

		return s.write(buf, n.X)

	case *ast.CallExpr:
		if err := s.write(buf, n.Fun); err != nil {
			return err
		}

		buf.WriteByte('(') // ignore error

		if err := s.writeList(buf, n.Args); err != nil {
			return err
		}

		buf.WriteByte(')') // ignore error

	case *ast.CompositeLit:
		if n.Type != nil {
			if err := s.write(buf, n.Type); err != nil {
				return err
			}
		}

		buf.WriteByte('{') // ignore error

		if err := s.writeList(buf, n.Elts); err != nil {
			return err
		}

		buf.WriteByte('}') // ignore error

	case *ast.AssignStmt:
		if err := s.writeList(buf, n.Lhs); err != nil {
			return err
		}

		buf.WriteByte(' ')              // ignore error
		buf.WriteString(n.Tok.String()) // ignore error
		buf.WriteByte(' ')              // ignore error

		return s.writeList(buf, n.Rhs)

	case *ast.ExprStmt:
		return s.write(buf, n.X)

	case *ast.DeclStmt:
		return s.renderDecl(buf, n)

	default:
		return rawcfg.Fprint(buf, s.fset, n)
	}

	return nil
}

// renderDecl prints a synthesized single-spec var declaration.
func (s *Source) renderDecl(buf *bytes.Buffer, n *ast.DeclStmt) error {
	decl, ok := n.Decl.(*ast.GenDecl)
	if !ok || len(decl.Specs) != 1 {
		return rawcfg.Fprint(buf, s.fset, n)
	}

	spec, ok := decl.Specs[0].(*ast.ValueSpec)
	if !ok {
		return rawcfg.Fprint(buf, s.fset, n)
	}

	buf.WriteString(decl.Tok.String()) // ignore error
	buf.WriteByte(' ')                  // ignore error

	for i, id := range spec.Names {
		if i > 0 {
			buf.WriteString(", ") // ignore error
		}

		buf.WriteString(id.Name) // ignore error
	}

	if spec.Type != nil {
		buf.WriteByte(' ') // ignore error

		if err := s.write(buf, spec.Type); err != nil {
			return err
		}
	}

	if len(spec.Values) > 0 {
		buf.WriteString(" = ") // ignore error

		return s.writeList(buf, spec.Values)
	}

	return nil
}

func (s *Source) write(buf *bytes.Buffer, n ast.Node) error {
	text, err := s.Text(n)
	if err != nil {
		return err
	}

	buf.Write(text) // ignore error

	return nil
}

func (s *Source) writeList(buf *bytes.Buffer, list []ast.Expr) error {
	for i, x := range list {
		if i > 0 {
			buf.WriteString(", ") // ignore error
		}

		if err := s.write(buf, x); err != nil {
			return err
		}
	}

	return nil
}

// separator returns the text placed between an inserted statement and the
// statement at pos: a newline with the indentation of pos, or a semicolon when
// pos is not the first statement on its line.
func (s *Source) separator(pos token.Pos) ([]byte, error) {
	tf, content, err := s.Content(pos)
	if err != nil {
		return nil, err
	}

	start, off := tf.Offset(tf.LineStart(tf.Line(pos))), tf.Offset(pos)
	if indent := content[start:off]; len(bytes.TrimLeft(indent, " \t")) == 0 {
		sep := make([]byte, 0, 1+len(indent))
		sep = append(sep, '\n')

		return append(sep, indent...), nil
	}

	return []byte("; "), nil
}

// shallowCopy returns a new node of the same type as n with the same fields.
func shallowCopy(n ast.Node) ast.Node {
	v := reflect.ValueOf(n)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return n
	}

	c := reflect.New(v.Elem().Type())
	c.Elem().Set(v.Elem())

	return c.Interface().(ast.Node)
}
