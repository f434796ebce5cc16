package lanes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkEquivalence compares every accelerated route for T against the
// fallback on random inputs. min, max and eq must agree bit for bit; rsqrt
// only within the hardware estimate's error.
func checkEquivalence[T Lanes](t *testing.T) {
	r := newRand()
	checked := 0
	for _, route := range Routes() {
		if route.Shape.Kind != KindOf[T]() || !route.Accelerated {
			continue
		}
		checked++
		n := route.Shape.Lanes
		for iter := 0; iter < 50; iter++ {
			operands := []Vec[T]{
				mustVec(t, withSpecials(randomBits[T](r, n))),
				mustVec(t, randomBits[T](r, n)),
			}[:route.Op.Arity()]
			if iter%2 == 1 && route.Op.Arity() == 2 {
				// Equal lanes are rare in random data.
				operands[1] = Interleave(n, operands[0].Lane(0), operands[1].Lane(0))
				operands[0] = Splat(n, operands[0].Lane(0))
			}

			want, err := Fallback(route.Op, operands...)
			require.NoError(t, err)
			got, ok, err := Accelerated(route.Op, operands...)
			require.NoError(t, err)
			require.True(t, ok)

			if route.Op == OpRSqrt {
				checkRSqrtEstimate(t, operands[0], want, got)
				continue
			}
			requireSameBits(t, want, got, "%s %s via %s", route.Op, route.Shape, route.Kernel)
		}
	}
	t.Logf("%d accelerated routes checked at level %s", checked, CurrentName())
}

func checkRSqrtEstimate[T Lanes](t *testing.T, in, want, got Vec[T]) {
	t.Helper()
	for i := 0; i < want.NumLanes(); i++ {
		x := float64(in.Lane(i))
		w, g := float64(want.Lane(i)), float64(got.Lane(i))
		switch {
		case x != 0 && math.Abs(x) < 0x1p-126:
			// The estimate instructions treat subnormal inputs as zero.
		case math.IsNaN(w):
			require.True(t, math.IsNaN(g), "lane %d", i)
		case math.IsInf(w, 0) || w == 0:
			require.Equal(t, w, g, "lane %d", i)
		default:
			require.InEpsilon(t, w, g, 1e-3, "lane %d", i)
		}
	}
}

func TestAcceleratedMatchesFallback(t *testing.T) {
	perKind{
		checkEquivalence[int8], checkEquivalence[int16], checkEquivalence[int32], checkEquivalence[int64],
		checkEquivalence[uint8], checkEquivalence[uint16], checkEquivalence[uint32], checkEquivalence[uint64],
		checkEquivalence[float32], checkEquivalence[float64],
	}.run(t)
}

// A lane-at-a-time kernel registered at runtime goes through the same
// equivalence check on any machine.
func TestRegisteredKernelMatchesFallback(t *testing.T) {
	withCapabilities(t, CapSSE41)
	registerForTest(t, Kernel[float64]{
		Name: "test_max_f64x8_loop", Op: OpMax, Lanes: 8, Requires: CapSSE41,
		Binary: func(dst, a, b []float64) {
			for i := range dst {
				dst[i] = math.Max(a[i], b[i])
			}
		},
	})
	// math.Max propagates NaN and orders -0 below +0, so it must not pass.
	r := newRand()
	a := mustVec(t, withSpecials(randomBits[float64](r, 8)))
	b := Splat[float64](8, 1)
	want, err := Fallback(OpMax, a, b)
	require.NoError(t, err)
	got, ok, err := Accelerated(OpMax, a, b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEqual(t, want.Bits(0), got.Bits(0), "NaN lane")

	unregister("test_max_f64x8_loop")
	registerForTest(t, Kernel[float64]{
		Name: "test_max_f64x8_ref", Op: OpMax, Lanes: 8, Requires: CapSSE41,
		Binary: func(dst, a, b []float64) {
			for i := range dst {
				if a[i] > b[i] {
					dst[i] = a[i]
				} else {
					dst[i] = b[i]
				}
			}
		},
	})
	checkEquivalence[float64](t)
}
