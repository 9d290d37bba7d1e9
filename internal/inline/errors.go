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

import "errors"

var (
	// ErrNotApplicable is returned when a candidate can't be inlined. It is not an error in the user's code.
	ErrNotApplicable = errors.New("inlining not applicable")

	// ErrDuplicateTarget is returned when two changes target the same symbol.
	ErrDuplicateTarget = errors.New("duplicate change target")

	// ErrNameExhausted is returned when no conflict-free name could be generated.
	ErrNameExhausted = errors.New("no conflict-free name found")
)
