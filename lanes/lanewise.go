package lanes

// This file is the portable per-lane evaluator. It never touches vector
// instructions and serves every (operation, shape) pair that has no
// resolved kernel, as well as the uncovered lanes of partial kernels.

// LanewiseUnary applies fn independently to every lane of a.
func LanewiseUnary[T Lanes](fn func(x T) T, a Vec[T]) (Vec[T], error) {
	if err := a.Shape().Validate(); err != nil {
		return Vec[T]{}, err
	}
	dst := make([]T, len(a.data))
	lanewise1(dst, a.data, fn)
	return Vec[T]{data: dst}, nil
}

// LanewiseBinary applies fn independently to every pair of lanes of a and b.
// Result lane i depends only on a.Lane(i) and b.Lane(i).
func LanewiseBinary[T Lanes](fn func(a, b T) T, a, b Vec[T]) (Vec[T], error) {
	shape := a.Shape()
	if err := shape.Validate(); err != nil {
		return Vec[T]{}, err
	}
	if b.NumLanes() != shape.Lanes {
		return Vec[T]{}, &ShapeError{Op: "lanewise", Expected: shape, Actual: b.Shape(), Operand: 1}
	}
	dst := make([]T, len(a.data))
	lanewise2(dst, a.data, b.data, fn)
	return Vec[T]{data: dst}, nil
}

func lanewise1[T Lanes](dst, a []T, fn func(T) T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = fn(a[i])
	}
}

func lanewise2[T Lanes](dst, a, b []T, fn func(T, T) T) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = fn(a[i], b[i])
	}
}

// lanewise1At and lanewise2At evaluate only the listed lanes.

func lanewise1At[T Lanes](dst, a []T, idx []int, fn func(T) T) {
	for _, i := range idx {
		dst[i] = fn(a[i])
	}
}

func lanewise2At[T Lanes](dst, a, b []T, idx []int, fn func(T, T) T) {
	for _, i := range idx {
		dst[i] = fn(a[i], b[i])
	}
}
