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
	"strconv"
	"strings"
)

// Register widths in bytes that a non-scalar shape may fill.
var registerWidths = [...]int{16, 32, 64}

// Shape is an element kind paired with a lane count.
//
// The set of shapes is closed: either a single lane (scalar width) or
// exactly one 128-, 256- or 512-bit register worth of lanes.
type Shape struct {
	Kind  Kind
	Lanes int
}

// ShapeOf returns the shape of a vector of T with the given lane count.
// The result is not validated.
func ShapeOf[T Lanes](lanes int) Shape {
	return Shape{Kind: KindOf[T](), Lanes: lanes}
}

// String renders the shape as "i8x16", "f32x4", "u64x1", ...
func (s Shape) String() string {
	return s.Kind.String() + "x" + strconv.Itoa(s.Lanes)
}

// ParseShape parses the output of Shape.String.
func ParseShape(str string) (Shape, error) {
	kind, lanes, ok := strings.Cut(str, "x")
	if !ok {
		return Shape{}, fmt.Errorf("lanes: malformed shape %q, want <kind>x<lanes>", str)
	}
	k, ok := ParseKind(kind)
	if !ok {
		return Shape{}, fmt.Errorf("lanes: unknown element kind %q in shape %q", kind, str)
	}
	n, err := strconv.Atoi(lanes)
	if err != nil {
		return Shape{}, fmt.Errorf("lanes: bad lane count in shape %q: %w", str, err)
	}
	s := Shape{Kind: k, Lanes: n}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// Validate returns an *InvalidShapeError if s is not in the closed set of
// supported shapes.
func (s Shape) Validate() error {
	size := s.Kind.Size()
	if size == 0 {
		return &InvalidShapeError{Shape: s, Reason: "unknown element kind"}
	}
	if s.Lanes == 1 {
		return nil
	}
	for _, w := range registerWidths {
		if s.Lanes*size == w {
			return nil
		}
	}
	return &InvalidShapeError{
		Shape:  s,
		Reason: fmt.Sprintf("lane count must be 1, %d, %d or %d", 16/size, 32/size, 64/size),
	}
}

// Valid reports whether Validate succeeds.
func (s Shape) Valid() bool {
	return s.Validate() == nil
}

// Width returns the size of the shape in bytes.
func (s Shape) Width() int {
	return s.Lanes * s.Kind.Size()
}

// IsScalar reports whether the shape holds a single lane.
func (s Shape) IsScalar() bool {
	return s.Lanes == 1
}

// LaneIndices returns the ordered lane positions {0, ..., Lanes-1}.
func (s Shape) LaneIndices() []int {
	idx := make([]int, s.Lanes)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Shapes enumerates every valid shape ordered by kind, then lane count.
func Shapes() []Shape {
	shapes := make([]Shape, 0, len(Kinds())*(len(registerWidths)+1))
	for _, k := range Kinds() {
		shapes = append(shapes, Shape{Kind: k, Lanes: 1})
		for _, w := range registerWidths {
			shapes = append(shapes, Shape{Kind: k, Lanes: w / k.Size()})
		}
	}
	return shapes
}
