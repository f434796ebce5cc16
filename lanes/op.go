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
	"math"
	"strings"
)

// Op identifies one of the dispatched operations.
type Op uint8

const (
	// OpMin is the lane-wise minimum of two vectors.
	OpMin Op = iota
	// OpMax is the lane-wise maximum of two vectors.
	OpMax
	// OpEq is the lane-wise equality mask of two vectors.
	OpEq
	// OpRSqrt is the lane-wise reciprocal square root of one vector.
	OpRSqrt

	numOps
)

// Ops returns every operation in declaration order.
func Ops() []Op {
	return []Op{OpMin, OpMax, OpEq, OpRSqrt}
}

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case OpMin:
		return "min"
	case OpMax:
		return "max"
	case OpEq:
		return "eq"
	case OpRSqrt:
		return "rsqrt"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// ParseOp parses an operation name as returned by Op.String.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min":
		return OpMin, nil
	case "max":
		return OpMax, nil
	case "eq":
		return OpEq, nil
	case "rsqrt":
		return OpRSqrt, nil
	}
	return 0, fmt.Errorf("lanes: unknown operation %q", s)
}

// Arity returns the number of vector operands the operation takes.
func (op Op) Arity() int {
	if op == OpRSqrt {
		return 1
	}
	return 2
}

// Supports reports whether the operation is defined for elements of kind k.
func (op Op) Supports(k Kind) bool {
	if op >= numOps || k.Size() == 0 {
		return false
	}
	if op == OpRSqrt {
		return k.IsFloat()
	}
	return true
}

// Scalar2 returns the per-lane reference function of a binary operation, or
// nil if op is unary.
//
// The fallback path evaluates exactly these functions, and every accelerated
// kernel for min, max and eq must agree with them bit for bit.
func Scalar2[T Lanes](op Op) func(a, b T) T {
	switch op {
	case OpMin:
		return minLane[T]
	case OpMax:
		return maxLane[T]
	case OpEq:
		return eqLane[T]
	}
	return nil
}

// Scalar1 returns the per-lane reference function of a unary operation on
// floating-point lanes, or nil if op is binary.
func Scalar1[T Floats](op Op) func(x T) T {
	if op == OpRSqrt {
		return rsqrtLane[T]
	}
	return nil
}

// minLane returns a if a < b and b otherwise, matching MINPS: the second
// operand wins on equality and when either is NaN.
func minLane[T Lanes](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// maxLane mirrors minLane with MAXPS semantics.
func maxLane[T Lanes](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// eqLane returns an all-ones lane when a == b and an all-zeros lane otherwise.
func eqLane[T Lanes](a, b T) T {
	if a == b {
		return allOnes[T]()
	}
	return 0
}

// rsqrtLane computes 1/sqrt(x) exactly: a correctly rounded square root in
// T followed by a reciprocal in T. Only float kinds reach it.
func rsqrtLane[T Lanes](x T) T {
	s := T(math.Sqrt(float64(x)))
	return 1 / s
}
