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

// Package inline implements the language-independent core of call inlining.
//
// The [Engine] decides whether a call site is eligible, asks the language hook
// for the changes that bind the callee's parameters to the call's arguments,
// and applies them: the callee's declaration is edited in isolation, its inline
// node is rendered and the call is replaced with it.
//
// Naming conflicts are resolved by a rename table built in three passes, see
// [BuildRenameTable].
package inline
