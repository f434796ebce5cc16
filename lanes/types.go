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

// Package lanes provides packed-vector min, max, equality and reciprocal
// square root with capability-gated dispatch.
//
// Every operation exists twice: an accelerated kernel that needs a specific
// CPU capability (AVX, AVX2, AVX-512) and a portable per-lane fallback. The
// dispatcher resolves which one serves each (operation, shape) pair once per
// process and falls back transparently when the capability is missing.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-lanes/lanes"
//
//	a := lanes.MustLoad[int8](1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0)
//	b := lanes.Splat[int8](16, -1)
//	m := lanes.Max(a, b)   // [1 0 1 0 ...]
//	e := lanes.Eq(a, a)    // all lanes 0xff
//
// Accelerated kernels are only compiled with GOEXPERIMENT=simd on amd64.
// Every other build uses the fallback path.
package lanes

import "unsafe"

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Integers
}

// Kind identifies the element type of a vector.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64

	numKinds
)

var kindNames = [numKinds]string{
	KindInvalid: "invalid",
	KindInt8:    "i8",
	KindInt16:   "i16",
	KindInt32:   "i32",
	KindInt64:   "i64",
	KindUint8:   "u8",
	KindUint16:  "u16",
	KindUint32:  "u32",
	KindUint64:  "u64",
	KindFloat32: "f32",
	KindFloat64: "f64",
}

// String returns the short name of the kind ("i8", "u32", "f64", ...).
func (k Kind) String() string {
	if k >= numKinds {
		return "invalid"
	}
	return kindNames[k]
}

// Size returns the element size in bytes, or 0 for an invalid kind.
func (k Kind) Size() int {
	switch k {
	case KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64:
		return 8
	default:
		return 0
	}
}

// Bits returns the element width in bits.
func (k Kind) Bits() int {
	return k.Size() * 8
}

// IsSigned reports whether the kind is a signed integer.
func (k Kind) IsSigned() bool {
	return k >= KindInt8 && k <= KindInt64
}

// IsUnsigned reports whether the kind is an unsigned integer.
func (k Kind) IsUnsigned() bool {
	return k >= KindUint8 && k <= KindUint64
}

// IsFloat reports whether the kind is a floating-point type.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds-1)
	for k := KindInt8; k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind parses a short kind name such as "i8" or "f32".
func ParseKind(s string) (Kind, bool) {
	for k := KindInt8; k < numKinds; k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return KindInvalid, false
}

// KindOf returns the Kind of the type parameter T.
//
// Named types are classified by their underlying type; a ~int8 type maps to
// KindInt8 just like int8 does.
func KindOf[T Lanes]() Kind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return KindInt8
	case int16:
		return KindInt16
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case uint8:
		return KindUint8
	case uint16:
		return KindUint16
	case uint32:
		return KindUint32
	case uint64:
		return KindUint64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	}
	return kindOfUnderlying[T]()
}

// kindOfUnderlying classifies named element types by size and by how the
// type behaves under conversion, since a type switch only sees the named type.
func kindOfUnderlying[T Lanes]() Kind {
	var zero T
	size := int(unsafe.Sizeof(zero))
	// 0.5 truncates to zero for every integer type.
	half := 0.5
	if T(half) != 0 {
		if size == 4 {
			return KindFloat32
		}
		return KindFloat64
	}
	one := T(1)
	minusOne := T(0) - one
	signed := minusOne < 0
	switch size {
	case 1:
		if signed {
			return KindInt8
		}
		return KindUint8
	case 2:
		if signed {
			return KindInt16
		}
		return KindUint16
	case 4:
		if signed {
			return KindInt32
		}
		return KindUint32
	default:
		if signed {
			return KindInt64
		}
		return KindUint64
	}
}
