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

package inline_test

import (
	"testing"

	. "fillmore-labs.com/inlinecall/internal/inline"
)

func TestNextName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no digits", "x", "x1"},
		{"increment", "item12", "item13"},
		{"carry", "a9", "a10"},
		{"leading zeros", "v007", "v8"},
		{"only digits", "12", "13"},
		{"empty", "", "1"},
		{"max uint64", "n18446744073709551615", "n18446744073709551616"},
		{"huge", "n99999999999999999999999", "n100000000000000000000000"},
		{"inner digits", "a1b", "a1b1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NextName(tt.in); got != tt.want {
				t.Errorf("NextName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNextNameMonotonic(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})

	name := "temp"
	for range 200 {
		if _, ok := seen[name]; ok {
			t.Fatalf("NextName repeated %q", name)
		}

		seen[name] = struct{}{}
		name = NextName(name)
	}
}
