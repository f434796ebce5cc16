package lanes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill returns a kernel body that writes marker into every lane.
func fill[T Lanes](marker T) func(dst, a, b []T) {
	return func(dst, a, b []T) {
		for i := range dst {
			dst[i] = marker
		}
	}
}

func TestRegisterSelectsAvailableKernel(t *testing.T) {
	withCapabilities(t, CapSSE2)
	registerForTest(t, Kernel[uint16]{
		Name: "test_min_u16x1_sse2", Op: OpMin, Lanes: 1,
		Requires: CapSSE2, Priority: 5, Binary: fill[uint16](1),
	})
	registerForTest(t, Kernel[uint16]{
		Name: "test_min_u16x1_avx512", Op: OpMin, Lanes: 1,
		Requires: CapAVX512, Priority: 30, Binary: fill[uint16](3),
	})
	a, b := MustLoad[uint16](10), MustLoad[uint16](20)

	got, ok, err := Accelerated(OpMin, a, b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint16(1), got.Lane(0))

	r := RouteOf(OpMin, Shape{KindUint16, 1})
	assert.True(t, r.Accelerated)
	assert.Equal(t, "test_min_u16x1_sse2", r.Kernel)
	assert.Equal(t, CapSSE2, r.Requires)
	assert.Equal(t, 2, r.Registered)

	// Once the capability shows up the higher priority kernel wins.
	withCapabilities(t, CapSSE2, CapAVX512)
	got, err = Apply(OpMin, a, b)
	require.NoError(t, err)
	assert.Equal(t, uint16(3), got.Lane(0))

	// The fallback is unaffected by registered kernels.
	got, err = Fallback(OpMin, a, b)
	require.NoError(t, err)
	assert.Equal(t, uint16(10), got.Lane(0))
}

func TestRegisterTieGoesToLatest(t *testing.T) {
	withCapabilities(t, CapSSE41)
	registerForTest(t, Kernel[int64]{
		Name: "test_max_first", Op: OpMax, Lanes: 1,
		Requires: CapSSE41, Priority: 7, Binary: fill[int64](1),
	})
	registerForTest(t, Kernel[int64]{
		Name: "test_max_second", Op: OpMax, Lanes: 1,
		Requires: CapSSE41, Priority: 7, Binary: fill[int64](2),
	})
	got := Max(MustLoad[int64](5), MustLoad[int64](6))
	assert.Equal(t, int64(2), got.Lane(0))
	assert.Equal(t, "test_max_second", RouteOf(OpMax, Shape{KindInt64, 1}).Kernel)
}

func TestUnavailableCapabilityFallsBack(t *testing.T) {
	withCapabilities(t)
	registerForTest(t, Kernel[uint32]{
		Name: "test_eq_u32x1_neon", Op: OpEq, Lanes: 1,
		Requires: CapNEON, Binary: fill[uint32](42),
	})
	got := Eq(MustLoad[uint32](3), MustLoad[uint32](3))
	assert.Equal(t, uint32(0xffffffff), got.Lane(0))

	_, ok, err := Accelerated(OpEq, MustLoad[uint32](3), MustLoad[uint32](3))
	require.NoError(t, err)
	assert.False(t, ok)

	r := RouteOf(OpEq, Shape{KindUint32, 1})
	assert.False(t, r.Accelerated)
	assert.Equal(t, 1, r.Registered)
}

func TestPartialCoverage(t *testing.T) {
	// No built-in kernel requires sse4.1, so only the test kernel is eligible.
	withCapabilities(t, CapSSE41)
	registerForTest(t, Kernel[int32]{
		Name: "test_min_i32x4_partial", Op: OpMin, Lanes: 4,
		Requires: CapSSE41, Covers: []int{0, 2}, Binary: fill[int32](99),
	})
	a := MustLoad[int32](1, 5, 1, 5)
	b := MustLoad[int32](4, 2, 4, 2)

	got := Min(a, b)
	assert.Equal(t, []int32{99, 2, 99, 2}, got.Data())

	r := RouteOf(OpMin, Shape{KindInt32, 4})
	assert.True(t, r.Accelerated)
	assert.True(t, r.Partial)
}

func TestPartialUnaryCoverage(t *testing.T) {
	withCapabilities(t, CapNEON)
	registerForTest(t, Kernel[float64]{
		Name: "test_rsqrt_f64x2_partial", Op: OpRSqrt, Lanes: 2,
		Requires: CapNEON, Covers: []int{1},
		Unary: func(dst, a []float64) { dst[1] = -1 },
	})
	got := RSqrt(MustLoad(4.0, 4.0))
	assert.Equal(t, []float64{0.5, -1}, got.Data())
}

func TestRegisterValidation(t *testing.T) {
	noop := func(dst, a, b []int8) {}
	tests := []struct {
		name   string
		kernel Kernel[int8]
	}{
		{"bad lanes", Kernel[int8]{Op: OpMin, Lanes: 8, Binary: noop}},
		{"unsupported op", Kernel[int8]{Op: OpRSqrt, Lanes: 16, Unary: func(dst, a []int8) {}}},
		{"missing body", Kernel[int8]{Op: OpMax, Lanes: 16}},
		{"wrong arity", Kernel[int8]{Op: OpMax, Lanes: 16, Unary: func(dst, a []int8) {}}},
		{"both bodies", Kernel[int8]{Op: OpMax, Lanes: 16, Binary: noop, Unary: func(dst, a []int8) {}}},
		{"unknown capability", Kernel[int8]{Op: OpEq, Lanes: 16, Requires: numCapabilities, Binary: noop}},
		{"empty covers", Kernel[int8]{Op: OpEq, Lanes: 16, Covers: []int{}, Binary: noop}},
		{"covers out of range", Kernel[int8]{Op: OpEq, Lanes: 16, Covers: []int{16}, Binary: noop}},
		{"duplicate covers", Kernel[int8]{Op: OpEq, Lanes: 16, Covers: []int{1, 1}, Binary: noop}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Register(tt.kernel)
			require.Error(t, err)
			var re *RegistrationError
			assert.ErrorAs(t, err, &re)
		})
	}

	err := Register(Kernel[int8]{Op: OpMin, Lanes: 8, Binary: noop})
	assert.ErrorIs(t, err, ErrInvalidShape)
	err = Register(Kernel[myInt8]{Op: OpMin, Lanes: 16, Binary: func(dst, a, b []myInt8) {}})
	assert.Error(t, err)
}

func TestRegisterDefaultName(t *testing.T) {
	withCapabilities(t, CapSSE41)
	require.NoError(t, Register(Kernel[uint8]{
		Op: OpMax, Lanes: 1, Requires: CapSSE41, Binary: fill[uint8](1),
	}))
	t.Cleanup(func() { unregister("max_u8x1_sse4.1") })
	assert.Equal(t, "max_u8x1_sse4.1", RouteOf(OpMax, Shape{KindUint8, 1}).Kernel)
}

func TestUnregister(t *testing.T) {
	withCapabilities(t, CapSSE41)
	require.NoError(t, Register(Kernel[uint8]{
		Name: "test_unregister", Op: OpMin, Lanes: 1, Requires: CapSSE41, Binary: fill[uint8](1),
	}))
	assert.True(t, RouteOf(OpMin, Shape{KindUint8, 1}).Accelerated)
	assert.True(t, unregister("test_unregister"))
	assert.False(t, unregister("test_unregister"))
	assert.False(t, RouteOf(OpMin, Shape{KindUint8, 1}).Accelerated)
}

func TestRoutes(t *testing.T) {
	routes := Routes()
	// min, max and eq on all 40 shapes, rsqrt on the 8 float shapes.
	assert.Len(t, routes, 3*40+8)
	for _, r := range routes {
		assert.True(t, r.Op.Supports(r.Shape.Kind))
		if r.Accelerated {
			assert.True(t, Has(r.Requires), "%s %s", r.Op, r.Shape)
			assert.NotEmpty(t, r.Kernel)
			assert.Positive(t, r.Registered)
		}
	}
}

func TestNoCapabilitiesMeansNoAcceleration(t *testing.T) {
	withCapabilities(t)
	for _, r := range Routes() {
		assert.False(t, r.Accelerated, "%s %s", r.Op, r.Shape)
	}
}

func TestComplement(t *testing.T) {
	assert.Equal(t, []int{1, 3}, complement([]int{0, 2}, 4))
	assert.Nil(t, complement([]int{1, 0}, 2))
}
