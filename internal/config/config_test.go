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

package config_test

import (
	"testing"

	. "fillmore-labs.com/inlinecall/internal/config"
)

func TestBehavior(t *testing.T) {
	t.Parallel()

	b := DefaultBehavior()
	for _, f := range []Config{IncludeGenerated, DirectiveOnly, Conservative} {
		if b.Enabled(f) {
			t.Errorf("Flag %d enabled by default", f)
		}
	}

	b.Set(Conservative, true)
	b.Set(DirectiveOnly, true)
	b.Set(DirectiveOnly, false)

	if !b.Enabled(Conservative) {
		t.Error("Conservative not enabled")
	}

	if b.Enabled(DirectiveOnly) || b.Enabled(IncludeGenerated) {
		t.Error("Unexpected flag enabled")
	}
}

func TestNewBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(IncludeGenerated, Conservative)

	if !b.Enabled(IncludeGenerated) || !b.Enabled(Conservative) || b.Enabled(DirectiveOnly) {
		t.Errorf("NewBitMask(IncludeGenerated, Conservative) = %+v", b)
	}
}
