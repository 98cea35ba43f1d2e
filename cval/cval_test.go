package cval

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromInt64TruncatesToWidth(t *testing.T) {
	v := FromInt64(300, 8, false) // 300 mod 256 == 44
	assert.Equal(t, int64(44), v.Int64())
	assert.Equal(t, uint32(8), v.BitWidth())
	assert.False(t, v.Signed())
}

func TestSignedNormalizeWrapsNegative(t *testing.T) {
	// 0xFF as an 8-bit signed value is -1.
	v := FromBigInt(big.NewInt(0xFF), 8, true)
	assert.Equal(t, int64(-1), v.Int64())
}

func TestWidenSignExtendsNegativeValue(t *testing.T) {
	v := FromInt64(-1, 8, true)
	widened := v.Widen(32, true)
	assert.Equal(t, int64(-1), widened.Int64())
	assert.Equal(t, uint32(32), widened.BitWidth())
}

func TestWidenUnsignedReinterpretsMathematicalValue(t *testing.T) {
	// Widen renormalizes the stored mathematical value against the new
	// width/signedness; it does not re-zero-extend the old bit pattern.
	// -1's mathematical value mod 2^16, read back unsigned, is 65535.
	v := FromInt64(-1, 8, true)
	widened := v.Widen(16, false)
	assert.Equal(t, int64(65535), widened.Int64())
	assert.False(t, widened.Signed())
}

func TestTruncLosesHighBits(t *testing.T) {
	v := FromInt64(0x1FF, 16, false)
	truncated := v.Widen(8, false)
	assert.Equal(t, int64(0xFF), truncated.Int64())
}

func TestAddWrapsAtBitWidth(t *testing.T) {
	a := FromInt64(250, 8, false)
	b := FromInt64(10, 8, false)
	assert.Equal(t, int64(4), a.Add(b).Int64()) // 260 mod 256 == 4
}

func TestSignedOverflowWraps(t *testing.T) {
	// INT8_MAX (127) + 1 wraps to -128 in two's complement.
	max := FromInt64(127, 8, true)
	one := One(8, true)
	assert.Equal(t, int64(-128), max.Add(one).Int64())
}

func TestDivTruncatesTowardZero(t *testing.T) {
	a := FromInt64(-7, 32, true)
	b := FromInt64(2, 32, true)
	assert.Equal(t, int64(-3), a.Div(b).Int64())
}

func TestShlClampsAtBitWidthMinusOne(t *testing.T) {
	one := FromInt64(1, 8, false)
	huge := FromInt64(1000, 32, true)
	// clamp to 7 (bits-1), so 1<<7 == 128.
	assert.Equal(t, int64(128), one.Shl(huge).Int64())
}

func TestShrClampsNegativeAmountToLimit(t *testing.T) {
	v := FromInt64(0xFF, 8, false)
	negAmount := FromInt64(-1, 32, true)
	// negative shift amount clamps to bits-1 == 7, so 0xFF>>7 == 1.
	assert.Equal(t, int64(1), v.Shr(negAmount).Int64())
}

func TestLNotOfZeroAndNonZero(t *testing.T) {
	zero := Zero(32, true)
	nonzero := FromInt64(5, 32, true)
	assert.True(t, zero.LNot().Eq(One(32, true)))
	assert.True(t, nonzero.LNot().Eq(Zero(32, true)))
}

func TestNotIsInvolution(t *testing.T) {
	v := FromInt64(42, 32, true)
	assert.True(t, v.Not().Not().Eq(v))
}

func TestBoolWidensToZeroOrOne(t *testing.T) {
	assert.Equal(t, int64(1), Bool(true, 32, false).Int64())
	assert.Equal(t, int64(0), Bool(false, 32, false).Int64())
}

func TestFloatTruncateToIntTowardZero(t *testing.T) {
	f := NewFloat(big.NewFloat(-3.7))
	assert.Equal(t, int64(-3), f.TruncateToInt(32, true).Int64())
}
