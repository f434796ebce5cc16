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

// Apply runs op on the operands, using the kernel resolved for their shape
// when one exists and the per-lane fallback otherwise.
//
// All operands must share one valid shape and their number must match
// op.Arity(); violations are reported as *ArityError, *InvalidShapeError,
// *ShapeError or *UnsupportedError before anything runs. A missing CPU
// capability is never an error.
func Apply[T Lanes](op Op, operands ...Vec[T]) (Vec[T], error) {
	shape, err := checkOperands(op, operands)
	if err != nil {
		return Vec[T]{}, err
	}
	if k := lookup[T](op, shape); k != nil {
		return runKernel(k, operands), nil
	}
	return runFallback(op, operands), nil
}

// Fallback runs op through the per-lane evaluator even when a kernel is
// available.
func Fallback[T Lanes](op Op, operands ...Vec[T]) (Vec[T], error) {
	if _, err := checkOperands(op, operands); err != nil {
		return Vec[T]{}, err
	}
	return runFallback(op, operands), nil
}

// Accelerated runs op through the resolved kernel. ok is false, and the
// result empty, when no kernel serves the shape on this processor.
func Accelerated[T Lanes](op Op, operands ...Vec[T]) (v Vec[T], ok bool, err error) {
	shape, err := checkOperands(op, operands)
	if err != nil {
		return Vec[T]{}, false, err
	}
	k := lookup[T](op, shape)
	if k == nil {
		return Vec[T]{}, false, nil
	}
	return runKernel(k, operands), true, nil
}

// Min returns the lane-wise minimum of a and b, ordered by T: signed
// two's-complement for signed integers, unsigned for unsigned integers.
// For floats, b is returned in a lane when the lanes compare equal or either
// is NaN.
//
// Min panics if a and b differ in shape.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return must(Apply(OpMin, a, b))
}

// Max returns the lane-wise maximum of a and b, with the same ordering and
// NaN rules as Min.
//
// Max panics if a and b differ in shape.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return must(Apply(OpMax, a, b))
}

// Eq returns a mask: each lane is all one bits where a and b are equal and
// all zero bits otherwise. Float lanes compare by IEEE equality, so NaN is
// never equal and +0 equals -0; a true float lane reads back as NaN, use
// Vec.Bits to inspect it.
//
// Eq panics if a and b differ in shape.
func Eq[T Lanes](a, b Vec[T]) Vec[T] {
	return must(Apply(OpEq, a, b))
}

// RSqrt returns the lane-wise reciprocal square root of v.
//
// The accelerated and fallback paths are allowed to differ here. The
// accelerated kernels use the hardware estimate (VRSQRTPS, relative error
// up to 1.5*2^-12; VRSQRT14PS, 2^-14), so results can be off past 1e-3.
// The fallback is exact: a correctly rounded square root followed by a
// reciprocal. rsqrt(0) is +Inf and rsqrt of a negative lane is NaN on both.
// Subnormal lanes also diverge: the estimate instructions read them as zero
// and return +Inf, while the fallback returns the finite exact result.
func RSqrt[T Floats](v Vec[T]) Vec[T] {
	return must(Apply(OpRSqrt, v))
}

func must[T Lanes](v Vec[T], err error) Vec[T] {
	if err != nil {
		panic(err)
	}
	return v
}

func checkOperands[T Lanes](op Op, operands []Vec[T]) (Shape, error) {
	if len(operands) != op.Arity() {
		return Shape{}, &ArityError{Op: op, Expected: op.Arity(), Actual: len(operands)}
	}
	shape := operands[0].Shape()
	if !op.Supports(shape.Kind) {
		return Shape{}, &UnsupportedError{Op: op, Kind: shape.Kind}
	}
	if err := shape.Validate(); err != nil {
		return Shape{}, err
	}
	for i, v := range operands[1:] {
		if v.NumLanes() != shape.Lanes {
			return Shape{}, &ShapeError{Op: op.String(), Expected: shape, Actual: v.Shape(), Operand: i + 1}
		}
	}
	return shape, nil
}

func runKernel[T Lanes](k *Kernel[T], operands []Vec[T]) Vec[T] {
	dst := make([]T, k.Lanes)
	a := operands[0].data
	if k.Binary != nil {
		b := operands[1].data
		k.Binary(dst, a, b)
		if k.uncovered != nil {
			lanewise2At(dst, a, b, k.uncovered, Scalar2[T](k.Op))
		}
	} else {
		k.Unary(dst, a)
		if k.uncovered != nil {
			lanewise1At(dst, a, k.uncovered, unaryLane[T](k.Op))
		}
	}
	return Vec[T]{data: dst}
}

func runFallback[T Lanes](op Op, operands []Vec[T]) Vec[T] {
	a := operands[0].data
	dst := make([]T, len(a))
	if op.Arity() == 1 {
		lanewise1(dst, a, unaryLane[T](op))
	} else {
		lanewise2(dst, a, operands[1].data, Scalar2[T](op))
	}
	return Vec[T]{data: dst}
}

// unaryLane is Scalar1 without the Floats restriction; Op.Supports has
// already rejected integer kinds by the time it is called.
func unaryLane[T Lanes](op Op) func(T) T {
	if op == OpRSqrt {
		return rsqrtLane[T]
	}
	return nil
}
