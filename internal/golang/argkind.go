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

//go:generate go tool stringer -type ArgKind -linecomment

// ArgKind describes how an argument is bound to its parameter.
type ArgKind uint8

const (
	// ArgUnused is dropped, the parameter is never referenced.
	ArgUnused ArgKind = iota // unused

	// ArgDiscarded is evaluated for its effects into a blank assignment.
	ArgDiscarded // discard

	// ArgRenamed names a variable, the parameter takes the variable's name.
	ArgRenamed // rename

	// ArgLiteral is a constant replacing every reference.
	ArgLiteral // literal

	// ArgSubstituted is a side-effect-free expression replacing every reference.
	ArgSubstituted // subst

	// ArgExtracted is hoisted into a declaration before the call's statement.
	ArgExtracted // extract

	// ArgParamArray collects variadic arguments into a slice declaration.
	ArgParamArray // paramarray
)

// hoisted reports whether the binding introduces a statement before the call.
func (k ArgKind) hoisted() bool {
	switch k {
	case ArgDiscarded, ArgExtracted, ArgParamArray:
		return true

	default:
		return false
	}
}
