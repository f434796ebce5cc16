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

// All-ones lane patterns loaded by the generated eq kernels to materialize
// a compare mask as a vector. 64 entries cover the widest 8-bit shape.
var (
	onesInt8   = onesOf[int8]()
	onesInt16  = onesOf[int16]()
	onesInt32  = onesOf[int32]()
	onesInt64  = onesOf[int64]()
	onesUint8  = onesOf[uint8]()
	onesUint16 = onesOf[uint16]()
	onesUint32 = onesOf[uint32]()
	onesUint64 = onesOf[uint64]()
)

func onesOf[T Lanes]() []T {
	s := make([]T, 64)
	for i := range s {
		s[i] = allOnes[T]()
	}
	return s
}
