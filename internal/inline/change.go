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
	"fmt"
	"go/ast"
	"go/types"
	"iter"
)

// Change is a single modification computed by a language hook.
//
// The set of variants is closed: [ReplaceVariableChange], [IdentifierRenameVariableChange]
// and [ExtractDeclarationChange].
type Change interface {
	isChange()
}

// ReplaceVariableChange replaces every reference to Symbol in the callee with Replacement.
type ReplaceVariableChange struct {
	Symbol      types.Object
	Replacement ast.Expr
}

// IdentifierRenameVariableChange renames every reference to Symbol in the callee to Identifier.
type IdentifierRenameVariableChange struct {
	Symbol     types.Object
	Identifier *ast.Ident
}

// ExtractDeclarationChange inserts Declaration before the statement containing the call.
type ExtractDeclarationChange struct {
	Declaration ast.Stmt
}

func (ReplaceVariableChange) isChange()          {}
func (IdentifierRenameVariableChange) isChange() {}
func (ExtractDeclarationChange) isChange()       {}

// ChangeSet collects the changes for one inlining.
//
// Substitutions are keyed by symbol, at most one per symbol. Extracted declarations keep
// their production order.
type ChangeSet struct {
	targets  map[types.Object]Change
	order    []types.Object
	extracts []ExtractDeclarationChange
}

// NewChangeSet creates an empty [ChangeSet].
func NewChangeSet() *ChangeSet {
	return &ChangeSet{targets: make(map[types.Object]Change)}
}

// Add records a change. A second substitution for the same symbol returns [ErrDuplicateTarget].
func (s *ChangeSet) Add(c Change) error {
	var sym types.Object

	switch c := c.(type) {
	case ReplaceVariableChange:
		sym = c.Symbol

	case IdentifierRenameVariableChange:
		sym = c.Symbol

	case ExtractDeclarationChange:
		s.extracts = append(s.extracts, c)

		return nil

	default:
		return fmt.Errorf("unknown change type %T", c)
	}

	if sym == nil {
		return fmt.Errorf("%T without symbol", c)
	}

	if _, ok := s.targets[sym]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, sym.Name())
	}

	if s.targets == nil {
		s.targets = make(map[types.Object]Change)
	}

	s.targets[sym] = c
	s.order = append(s.order, sym)

	return nil
}

// Len returns the total number of changes.
func (s *ChangeSet) Len() int {
	return len(s.order) + len(s.extracts)
}

// Target returns the substitution recorded for the symbol, if any.
func (s *ChangeSet) Target(sym types.Object) (Change, bool) {
	c, ok := s.targets[sym]

	return c, ok
}

// Replacements yields all [ReplaceVariableChange]s in insertion order.
func (s *ChangeSet) Replacements() iter.Seq[ReplaceVariableChange] {
	return func(yield func(ReplaceVariableChange) bool) {
		for _, sym := range s.order {
			if c, ok := s.targets[sym].(ReplaceVariableChange); ok && !yield(c) {
				return
			}
		}
	}
}

// Renames yields all [IdentifierRenameVariableChange]s in insertion order.
func (s *ChangeSet) Renames() iter.Seq[IdentifierRenameVariableChange] {
	return func(yield func(IdentifierRenameVariableChange) bool) {
		for _, sym := range s.order {
			if c, ok := s.targets[sym].(IdentifierRenameVariableChange); ok && !yield(c) {
				return
			}
		}
	}
}

// Extractions yields all [ExtractDeclarationChange]s in production order.
func (s *ChangeSet) Extractions() iter.Seq[ExtractDeclarationChange] {
	return func(yield func(ExtractDeclarationChange) bool) {
		for _, c := range s.extracts {
			if !yield(c) {
				return
			}
		}
	}
}
