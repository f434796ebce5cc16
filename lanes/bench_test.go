package lanes

import "testing"

var sinkF32 Vec[float32]

func BenchmarkMinF32x8(b *testing.B) {
	x := Interleave[float32](8, 1, 4)
	y := Splat[float32](8, 2)
	b.Run("apply", func(b *testing.B) {
		for b.Loop() {
			sinkF32, _ = Apply(OpMin, x, y)
		}
	})
	b.Run("fallback", func(b *testing.B) {
		for b.Loop() {
			sinkF32, _ = Fallback(OpMin, x, y)
		}
	})
}

func BenchmarkRSqrtF32x16(b *testing.B) {
	x := Splat[float32](16, 9)
	b.Run("apply", func(b *testing.B) {
		for b.Loop() {
			sinkF32, _ = Apply(OpRSqrt, x)
		}
	})
	b.Run("fallback", func(b *testing.B) {
		for b.Loop() {
			sinkF32, _ = Fallback(OpRSqrt, x)
		}
	})
}

func BenchmarkEqI8x64(b *testing.B) {
	x := Interleave[int8](64, 1, 2)
	y := Splat[int8](64, 1)
	var sink Vec[int8]
	for b.Loop() {
		sink = Eq(x, y)
	}
	_ = sink
}
