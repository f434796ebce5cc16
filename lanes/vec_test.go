package lanes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	src := []int32{1, -2, 3, -4}
	v, err := Load(src)
	require.NoError(t, err)
	assert.Equal(t, Shape{KindInt32, 4}, v.Shape())
	assert.Equal(t, 4, v.NumLanes())

	// The vector owns a copy.
	src[0] = 100
	assert.Equal(t, int32(1), v.Lane(0))
	out := v.Data()
	out[1] = 100
	assert.Equal(t, int32(-2), v.Lane(1))

	_, err = Load([]int32{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidShape)
	_, err = Load([]float64{})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestMustLoad(t *testing.T) {
	v := MustLoad[uint64](7)
	assert.Equal(t, "u64x1[7]", v.String())
	assert.Panics(t, func() { MustLoad[uint8](1, 2, 3) })
}

func TestConstructors(t *testing.T) {
	s := Splat[float32](8, 1.5)
	assert.Equal(t, []float32{1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5}, s.Data())

	z := Zero[int16](8)
	assert.Equal(t, make([]int16, 8), z.Data())

	h := Halves[int8](16, 1, 0)
	assert.Equal(t, []int8{1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0}, h.Data())
	assert.Equal(t, []uint32{9}, Halves[uint32](1, 9, 3).Data())

	i := Interleave[uint16](8, 1, 2)
	assert.Equal(t, []uint16{1, 2, 1, 2, 1, 2, 1, 2}, i.Data())

	assert.Panics(t, func() { Splat[int8](3, 1) })
	assert.Panics(t, func() { Zero[float64](0) })
	assert.Panics(t, func() { Halves[int32](5, 1, 2) })
	assert.Panics(t, func() { Interleave[uint64](16, 1, 2) })
}

func TestBits(t *testing.T) {
	v := MustLoad[int8](-1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14)
	assert.Equal(t, uint64(0xff), v.Bits(0))
	assert.Equal(t, uint64(1), v.Bits(2))

	f := MustLoad(float32(math.Copysign(0, -1)), 1, 2, float32(math.NaN()))
	assert.Equal(t, uint64(0x80000000), f.Bits(0))
	assert.Equal(t, uint64(math.Float32bits(1)), f.Bits(1))

	d := MustLoad(-1.0, 2.0)
	assert.Equal(t, math.Float64bits(-1), d.Bits(0))
}

func TestAllOnes(t *testing.T) {
	assert.Equal(t, int8(-1), allOnes[int8]())
	assert.Equal(t, uint16(math.MaxUint16), allOnes[uint16]())
	assert.Equal(t, uint64(math.MaxUint64), allOnes[uint64]())
	assert.Equal(t, uint32(math.MaxUint32), math.Float32bits(allOnes[float32]()))
	assert.Equal(t, uint64(math.MaxUint64), math.Float64bits(allOnes[float64]()))
	assert.Equal(t, myInt8(-1), allOnes[myInt8]())
}

func TestStore(t *testing.T) {
	v := Interleave[int64](2, 5, 6)
	dst := make([]int64, 4)
	assert.Equal(t, 2, v.Store(dst))
	assert.Equal(t, []int64{5, 6, 0, 0}, dst)
}
