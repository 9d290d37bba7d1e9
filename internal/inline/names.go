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
	"math/big"
	"strconv"
)

// NextName derives the next candidate for a name.
//
// A trailing run of decimal digits is incremented, otherwise "1" is appended:
// "x" becomes "x1", "item12" becomes "item13", "a9" becomes "a10". Leading zeros
// of the run are not preserved, so "v007" becomes "v8".
func NextName(name string) string {
	i := len(name)
	for i > 0 && '0' <= name[i-1] && name[i-1] <= '9' {
		i--
	}

	prefix, digits := name[:i], name[i:]
	if digits == "" {
		return name + "1"
	}

	if n, err := strconv.ParseUint(digits, 10, 64); err == nil && n < ^uint64(0) {
		return prefix + strconv.FormatUint(n+1, 10)
	}

	// Too long for uint64
	var n big.Int
	n.SetString(digits, 10)
	n.Add(&n, big.NewInt(1))

	return prefix + n.String()
}
