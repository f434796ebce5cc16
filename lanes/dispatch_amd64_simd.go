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

//go:build amd64 && goexperiment.simd

package lanes

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

// The kernels in z_kernels_amd64.go are VEX/EVEX encoded by archsimd, so the
// AVX tiers are taken from archsimd's own detection rather than x/sys/cpu.
// SSE levels have no kernels and are reported from x/sys/cpu.

func init() {
	detected[CapSSE2] = cpu.X86.HasSSE2
	detected[CapSSE41] = cpu.X86.HasSSE41
	detected[CapAVX] = archsimd.X86.AVX()
	detected[CapAVX2] = archsimd.X86.AVX2()
	detected[CapAVX512] = archsimd.X86.AVX512()
	applyConfig()
}
