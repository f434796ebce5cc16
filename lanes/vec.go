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

package lanes

import (
	"fmt"
	"strings"
	"unsafe"
)

// Vec is an immutable packed vector of T.
//
// The lane count together with T is the vector's Shape. Operations never
// modify their operands; they return new vectors of the same shape. The zero
// Vec has no lanes and is rejected by every operation.
type Vec[T Lanes] struct {
	data []T
}

// Load creates a vector holding a copy of src. len(src) must be a valid lane
// count for T.
func Load[T Lanes](src []T) (Vec[T], error) {
	if err := ShapeOf[T](len(src)).Validate(); err != nil {
		return Vec[T]{}, err
	}
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}, nil
}

// MustLoad is like Load but panics if the lane count is invalid.
func MustLoad[T Lanes](src ...T) Vec[T] {
	v, err := Load(src)
	if err != nil {
		panic(err)
	}
	return v
}

// Splat creates a vector with every lane set to value.
func Splat[T Lanes](lanes int, value T) Vec[T] {
	data := alloc[T](lanes)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with every lane set to zero.
func Zero[T Lanes](lanes int) Vec[T] {
	return Vec[T]{data: alloc[T](lanes)}
}

// Halves creates a vector whose first half of lanes holds lo and whose
// second half holds hi. A single-lane vector holds lo.
func Halves[T Lanes](lanes int, lo, hi T) Vec[T] {
	data := alloc[T](lanes)
	mid := (lanes + 1) / 2
	for i := range data {
		if i < mid {
			data[i] = lo
		} else {
			data[i] = hi
		}
	}
	return Vec[T]{data: data}
}

// Interleave creates a vector holding even in even lanes and odd in odd lanes.
func Interleave[T Lanes](lanes int, even, odd T) Vec[T] {
	data := alloc[T](lanes)
	for i := range data {
		if i%2 == 0 {
			data[i] = even
		} else {
			data[i] = odd
		}
	}
	return Vec[T]{data: data}
}

// alloc returns a zeroed lane slice, panicking on an invalid lane count.
func alloc[T Lanes](lanes int) []T {
	if err := ShapeOf[T](lanes).Validate(); err != nil {
		panic(err)
	}
	return make([]T, lanes)
}

// NumLanes returns the number of lanes in the vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Shape returns the element kind and lane count of the vector.
func (v Vec[T]) Shape() Shape {
	return ShapeOf[T](len(v.data))
}

// Lane returns the value of lane i. It panics if i is out of range.
func (v Vec[T]) Lane(i int) T {
	return v.data[i]
}

// Bits returns the raw bit pattern of lane i, zero-extended to 64 bits.
// This is how Eq masks on floating-point vectors are inspected.
func (v Vec[T]) Bits(i int) uint64 {
	return laneBits(v.data[i])
}

// Data returns a copy of the lanes in storage order.
func (v Vec[T]) Data() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)
	return out
}

// Store copies the lanes into dst and returns the number of lanes written.
func (v Vec[T]) Store(dst []T) int {
	return copy(dst, v.data)
}

// String renders the vector as its shape followed by its lanes.
func (v Vec[T]) String() string {
	var b strings.Builder
	b.WriteString(v.Shape().String())
	b.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte(']')
	return b.String()
}

func laneBits[T Lanes](x T) uint64 {
	switch unsafe.Sizeof(x) {
	case 1:
		return uint64(*(*uint8)(unsafe.Pointer(&x)))
	case 2:
		return uint64(*(*uint16)(unsafe.Pointer(&x)))
	case 4:
		return uint64(*(*uint32)(unsafe.Pointer(&x)))
	default:
		return *(*uint64)(unsafe.Pointer(&x))
	}
}

// allOnes returns a T whose bit pattern is all ones.
func allOnes[T Lanes]() T {
	var x T
	b := unsafe.Slice((*byte)(unsafe.Pointer(&x)), unsafe.Sizeof(x))
	for i := range b {
		b[i] = 0xff
	}
	return x
}
