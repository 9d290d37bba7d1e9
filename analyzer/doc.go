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

// Package analyzer implements the inlinecall static analysis pass.
//
// # Overview
//
// InlineCall finds calls of unexported functions and methods whose body is a
// single statement and suggests replacing the call with the body.
//
// # Example
//
// Before:
//
//	func (c *calc) square(x int) int { return x * x }
//
//	func area(c *calc) int {
//	    return c.square(next())
//	}
//
// After applying inlinecall's suggested fix:
//
//	func area(c *calc) int {
//	    x := next()
//	    return x * x
//	}
//
// # Arguments
//
// Variables replace the parameter they are bound to, constants and
// side-effect-free expressions are substituted. Other arguments are evaluated
// once in a declaration inserted before the call's statement, unless the
// analyzer runs in conservative mode. Callee locals are renamed where their
// names would collide with names at the call site.
package analyzer
