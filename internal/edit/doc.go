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

// Package edit provides editors that modify Go source text while keeping the
// text around replaced nodes untouched.
//
// A [Source] renders nodes: positioned nodes as their original text,
// synthesized nodes from their parts. A [Buffer] edits a detached copy of a
// declaration, a [Document] collects the [analysis.TextEdit]s of a suggested fix.
package edit
