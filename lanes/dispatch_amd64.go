// Copyright 2025 go-lanes Authors
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

//go:build amd64 && !goexperiment.simd

package lanes

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// No kernels are compiled into this build, so the oracle still answers from
// x/sys/cpu for diagnostics but the dispatch level stays scalar.
// Build with GOEXPERIMENT=simd to get accelerated kernels.

func init() {
	detected[CapSSE2] = cpu.X86.HasSSE2
	detected[CapSSE41] = cpu.X86.HasSSE41
	detected[CapAVX] = cpu.X86.HasAVX
	detected[CapAVX2] = cpu.X86.HasAVX2
	detected[CapAVX512] = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW &&
		cpu.X86.HasAVX512DQ && cpu.X86.HasAVX512VL
	applyConfig()
	setScalarMode()
}
