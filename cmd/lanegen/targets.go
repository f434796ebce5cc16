package main

import "github.com/ajroetker/go-lanes/lanes"

// KernelSpec is one row of the requirement table.
type KernelSpec struct {
	Op       lanes.Op
	Shape    lanes.Shape
	Requires lanes.Capability
}

// requirement returns the capability the archsimd instruction for op on
// shape needs, or false when no single instruction exists.
//
// archsimd emits VEX encodings even for 128-bit vectors, so the 128-bit tier
// is AVX rather than SSE2/SSE4.1. 256-bit integer ops need AVX2 while 256-bit
// float ops only need AVX. There is no 64-bit integer min/max below AVX-512.
// Reciprocal square root is only offered on float32 lanes.
func requirement(op lanes.Op, s lanes.Shape) (lanes.Capability, bool) {
	if s.IsScalar() || !op.Supports(s.Kind) {
		return 0, false
	}
	if op == lanes.OpRSqrt && s.Kind != lanes.KindFloat32 {
		return 0, false
	}
	wideInt := s.Kind.Size() == 8 && !s.Kind.IsFloat()
	switch s.Width() {
	case 16:
		if wideInt && op != lanes.OpEq {
			return lanes.CapAVX512, true
		}
		return lanes.CapAVX, true
	case 32:
		if s.Kind.IsFloat() {
			return lanes.CapAVX, true
		}
		if wideInt && op != lanes.OpEq {
			return lanes.CapAVX512, true
		}
		return lanes.CapAVX2, true
	case 64:
		return lanes.CapAVX512, true
	}
	return 0, false
}

// priorities rank tiers so a wider tier wins if two ever serve one shape.
var priorities = map[lanes.Capability]int{
	lanes.CapAVX:    10,
	lanes.CapAVX2:   20,
	lanes.CapAVX512: 30,
}

// kernelSpecs lists every generated kernel ordered by shape, then operation.
func kernelSpecs() []KernelSpec {
	var specs []KernelSpec
	for _, s := range lanes.Shapes() {
		for _, op := range lanes.Ops() {
			if c, ok := requirement(op, s); ok {
				specs = append(specs, KernelSpec{Op: op, Shape: s, Requires: c})
			}
		}
	}
	return specs
}
