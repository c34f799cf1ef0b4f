// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package version

import (
	"testing"
)

func FuzzParseKernelRelease(f *testing.F) {
	f.Add("6.8.0-45-generic")
	f.Add("5.15.167.4-microsoft-standard-WSL2")
	f.Add("4.19.0+")
	f.Add("")
	f.Add(".")
	f.Add("1..2")
	f.Add("-1")
	f.Add("a.b.c")

	f.Fuzz(func(t *testing.T, input string) {
		v, err := ParseKernelRelease(input)
		if err != nil {
			return
		}
		if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
			t.Errorf("ParseKernelRelease(%q) returned negative component: %+v", input, v)
		}
		if v.Precision < 1 || v.Precision > 3 {
			t.Errorf("ParseKernelRelease(%q) returned invalid precision: %d", input, v.Precision)
		}
		_ = v.String()
	})
}
