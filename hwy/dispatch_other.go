// Copyright 2025 go-highway Authors
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

//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures report scalar; bulk helpers still use 128-bit chunks.
	setLevel(DispatchScalar)
}

// HasAVX512 returns false on non-x86 platforms.
func HasAVX512() bool {
	return false
}

// HasAVX returns false on non-x86 platforms.
func HasAVX() bool {
	return false
}
