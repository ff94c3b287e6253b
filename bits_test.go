package r256

import (
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

// TestShl is literal scenario 4: shl({0,0,0,5}, 1) == {0,0,0,10}; shl(...,
// 193) moves the 5 into bit 193.
func TestShl(t *testing.T) {
	tt := assert.WrapTB(t)

	v := FromRaw(0, 0, 0, 5)
	got := v.Shl(1)
	tt.MustAssert(FromRaw(0, 0, 0, 10).Equal(got), "got %s", got)

	got = v.Shl(193)

	// Bit 0 moves to bit 193, which sits one bit into the top 64-bit
	// quarter (global bits 192-255): 5<<193 == (5<<1) in that quarter.
	hi, hm, lm, lo := got.Raw()
	tt.MustEqual(uint64(5)<<1, hi)
	tt.MustEqual(uint64(0), hm)
	tt.MustEqual(uint64(0), lm)
	tt.MustEqual(uint64(0), lo)
}

func TestShr(t *testing.T) {
	tt := assert.WrapTB(t)
	v := FromRaw(0, 0, 0, 10)
	got := v.Shr(1)
	tt.MustAssert(FromRaw(0, 0, 0, 5).Equal(got))
}

// TestSar is literal scenario 5: sar of a value with only the top nibble
// set to 0xA fills the upper 65 bits with ones and the rest logically.
func TestSar(t *testing.T) {
	tt := assert.WrapTB(t)

	v := FromRaw(0xA000000000000000, 0, 0, 0)
	got := v.Sar(65)
	logical := v.Shr(65)

	// The top 65 bits (all of hi.hi, plus hi.lo's top bit) are sign-filled
	// with ones; everything below that follows the logical shift.
	_, lgHm, lgLm, lgLo := logical.Raw()
	wantHi := ^uint64(0)
	wantHm := lgHm | 0x8000000000000000

	hi, hm, lm, lo := got.Raw()
	tt.MustEqual(wantHi, hi)
	tt.MustEqual(wantHm, hm)
	tt.MustEqual(lgLm, lm)
	tt.MustEqual(lgLo, lo)
}

func TestNotAndOrXor(t *testing.T) {
	tt := assert.WrapTB(t)
	a := FromRaw(0xFF00FF00FF00FF00, 0, 0, 0x0F0F0F0F0F0F0F0F)
	tt.MustAssert(a.Not().Not().Equal(a))

	b := FromRaw(0x00FF00FF00FF00FF, 0, 0, 0xF0F0F0F0F0F0F0F0)
	tt.MustAssert(a.Xor(b).Equal(FromRaw(^uint64(0), 0, 0, ^uint64(0))))
	tt.MustAssert(a.Or(b).Equal(FromRaw(^uint64(0), 0, 0, ^uint64(0))))
	tt.MustAssert(a.And(b).Equal(Zero))
}

func TestShiftModulo256(t *testing.T) {
	tt := assert.WrapTB(t)
	v := FromInt64(12345)
	tt.MustAssert(v.Shl(256).Equal(v))
	tt.MustAssert(v.Shr(256).Equal(v))
}

func TestClz128(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint(128), clz128(u128{}))
	tt.MustEqual(uint(0), clz128(u128{hi: 0x8000000000000000}))
	tt.MustEqual(uint(127), clz128(u128{lo: 1}))
}
