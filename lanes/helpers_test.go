package lanes

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// perKind runs one instantiation of a generic test per element kind.
type perKind struct {
	I8, I16, I32, I64 func(*testing.T)
	U8, U16, U32, U64 func(*testing.T)
	F32, F64          func(*testing.T)
}

func (p perKind) run(t *testing.T) {
	t.Helper()
	t.Run("i8", p.I8)
	t.Run("i16", p.I16)
	t.Run("i32", p.I32)
	t.Run("i64", p.I64)
	t.Run("u8", p.U8)
	t.Run("u16", p.U16)
	t.Run("u32", p.U32)
	t.Run("u64", p.U64)
	t.Run("f32", p.F32)
	t.Run("f64", p.F64)
}

// laneCounts returns every valid lane count for T.
func laneCounts[T Lanes]() []int {
	var counts []int
	for _, s := range Shapes() {
		if s.Kind == KindOf[T]() {
			counts = append(counts, s.Lanes)
		}
	}
	return counts
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(0x5eed, 0x1a7e5))
}

func fromBits[T Lanes](bits uint64) T {
	var x T
	switch unsafe.Sizeof(x) {
	case 1:
		*(*uint8)(unsafe.Pointer(&x)) = uint8(bits)
	case 2:
		*(*uint16)(unsafe.Pointer(&x)) = uint16(bits)
	case 4:
		*(*uint32)(unsafe.Pointer(&x)) = uint32(bits)
	default:
		*(*uint64)(unsafe.Pointer(&x)) = bits
	}
	return x
}

// randomBits fills n lanes with arbitrary bit patterns, so floats include
// NaNs, infinities, subnormals and signed zeros.
func randomBits[T Lanes](r *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = fromBits[T](r.Uint64())
	}
	return out
}

// randomOrdered fills n lanes with values that have a total order under <,
// i.e. no NaNs.
func randomOrdered[T Lanes](r *rand.Rand, n int) []T {
	if !KindOf[T]().IsFloat() {
		return randomBits[T](r, n)
	}
	out := make([]T, n)
	for i := range out {
		out[i] = T(r.NormFloat64() * 1e3)
	}
	return out
}

// withSpecials overwrites the first lanes of a float slice with the values
// whose handling differs most between implementations.
func withSpecials[T Lanes](s []T) []T {
	if !KindOf[T]().IsFloat() {
		return s
	}
	specials := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0, math.Copysign(0, -1), 1, -1}
	for i := 0; i < len(s) && i < len(specials); i++ {
		s[i] = T(specials[i])
	}
	return s
}

func mustVec[T Lanes](t *testing.T, src []T) Vec[T] {
	t.Helper()
	v, err := Load(src)
	require.NoError(t, err)
	return v
}

// requireSameBits compares lanes by bit pattern so NaN lanes compare equal.
func requireSameBits[T Lanes](t *testing.T, want, got Vec[T], msgAndArgs ...any) {
	t.Helper()
	require.Equal(t, want.Shape(), got.Shape(), msgAndArgs...)
	for i := 0; i < want.NumLanes(); i++ {
		require.Equalf(t, want.Bits(i), got.Bits(i), "lane %d: want %v, got %v", i, want.Lane(i), got.Lane(i))
	}
}

// withCapabilities replaces the oracle's answers for the duration of a test.
func withCapabilities(t *testing.T, caps ...Capability) {
	t.Helper()
	saved := available
	available = [numCapabilities]bool{}
	for _, c := range caps {
		available[c] = true
	}
	resolved.Store(nil)
	t.Cleanup(func() {
		available = saved
		resolved.Store(nil)
	})
}

// registerForTest registers k and removes it when the test ends. k.Name must
// be unique.
func registerForTest[T Lanes](t *testing.T, k Kernel[T]) {
	t.Helper()
	require.NotEmpty(t, k.Name)
	require.NoError(t, Register(k))
	t.Cleanup(func() { unregister(k.Name) })
}

// unregister removes every kernel with the given name. It reports whether
// anything was removed.
func unregister(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	removed := false
	for key, cands := range registry.candidates {
		kept := slices.DeleteFunc(cands, func(c candidate) bool { return c.name == name })
		if len(kept) != len(cands) {
			removed = true
		}
		if len(kept) == 0 {
			delete(registry.candidates, key)
		} else {
			registry.candidates[key] = kept
		}
	}
	if removed {
		resolved.Store(nil)
	}
	return removed
}
