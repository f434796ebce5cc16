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
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrInvalidShape  = errors.New("lanes: invalid shape")
	ErrShapeMismatch = errors.New("lanes: shape mismatch")
	ErrArity         = errors.New("lanes: wrong number of operands")
	ErrUnsupported   = errors.New("lanes: operation not supported for element kind")
)

// InvalidShapeError reports a shape outside the supported set.
type InvalidShapeError struct {
	Shape  Shape
	Reason string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("lanes: invalid shape %s: %s", e.Shape, e.Reason)
}

func (e *InvalidShapeError) Is(target error) bool { return target == ErrInvalidShape }

// ShapeError reports operands whose shapes differ.
//
// Expected is the shape of the first operand, Actual the first shape that
// differs from it. Op names the operation or evaluator that rejected the call.
type ShapeError struct {
	Op       string
	Expected Shape
	Actual   Shape
	Operand  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("lanes: %s: operand %d has shape %s, expected %s",
		e.Op, e.Operand, e.Actual, e.Expected)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShapeMismatch }

// ArityError reports a call with the wrong number of operands.
type ArityError struct {
	Op       Op
	Expected int
	Actual   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("lanes: %s takes %d operand(s), got %d", e.Op, e.Expected, e.Actual)
}

func (e *ArityError) Is(target error) bool { return target == ErrArity }

// UnsupportedError reports an operation applied to an element kind it is not
// defined for, such as RSqrt on integers.
type UnsupportedError struct {
	Op   Op
	Kind Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("lanes: %s is not defined for %s elements", e.Op, e.Kind)
}

func (e *UnsupportedError) Is(target error) bool { return target == ErrUnsupported }

// RegistrationError reports a kernel rejected by Register.
type RegistrationError struct {
	Kernel string
	cause  error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("lanes: cannot register kernel %q: %v", e.Kernel, e.cause)
}

func (e *RegistrationError) Unwrap() error { return e.cause }
