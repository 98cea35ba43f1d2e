// Package cval implements the arbitrary-precision integer value that
// backs integer literals and integer-constant-expression results — the
// Go counterpart of the width-and-signedness-carrying APSInt the
// original Clang sources evaluate constant expressions into
// (see original_source/AST/Expr.cpp, isIntegerConstantExpr).
package cval

import "math/big"

// Int is a fixed-width, explicitly-signed arbitrary-precision integer.
// Cmp and the comparisons built on it compare mathematical values
// only: two Ints with the same value but a different BitWidth or
// Signed compare equal.
type Int struct {
	v      *big.Int
	bits   uint32
	signed bool
}

// FromInt64 builds an Int of the given width/signedness holding val,
// truncated to fit.
func FromInt64(val int64, bits uint32, signed bool) Int {
	return normalize(big.NewInt(val), bits, signed)
}

// FromBigInt builds an Int from an existing big.Int, truncating or
// extending it to bits/signed.
func FromBigInt(val *big.Int, bits uint32, signed bool) Int {
	return normalize(new(big.Int).Set(val), bits, signed)
}

func Zero(bits uint32, signed bool) Int {
	return FromInt64(0, bits, signed)
}

func One(bits uint32, signed bool) Int {
	return FromInt64(1, bits, signed)
}

func normalize(v *big.Int, bits uint32, signed bool) Int {
	if bits == 0 {
		bits = 1
	}
	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))
	v = new(big.Int).And(v, mask)
	if signed {
		signBit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		if v.Cmp(signBit) >= 0 {
			v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(bits)))
		}
	}
	return Int{v: v, bits: bits, signed: signed}
}

func (i Int) BitWidth() uint32 { return i.bits }
func (i Int) Signed() bool     { return i.signed }

// Big returns the mathematical value as a big.Int. The returned value
// must not be mutated by the caller.
func (i Int) Big() *big.Int { return i.v }

func (i Int) IsZero() bool { return i.v.Sign() == 0 }
func (i Int) Sign() int    { return i.v.Sign() }

func (i Int) Int64() int64 { return i.v.Int64() }

// Widen renormalizes i's mathematical value to the given bit width and
// signedness, truncating when the new width is narrower. Used by casts
// and by literal nodes re-widening their stored value to their result
// type's width.
func (i Int) Widen(bits uint32, signed bool) Int {
	return normalize(i.v, bits, signed)
}

func (i Int) Neg() Int  { return normalize(new(big.Int).Neg(i.v), i.bits, i.signed) }
func (i Int) Not() Int  { return normalize(new(big.Int).Not(i.v), i.bits, i.signed) }
func (i Int) LNot() Int {
	if i.IsZero() {
		return One(i.bits, i.signed)
	}
	return Zero(i.bits, i.signed)
}

func (i Int) Add(o Int) Int { return normalize(new(big.Int).Add(i.v, o.v), i.bits, i.signed) }
func (i Int) Sub(o Int) Int { return normalize(new(big.Int).Sub(i.v, o.v), i.bits, i.signed) }
func (i Int) Mul(o Int) Int { return normalize(new(big.Int).Mul(i.v, o.v), i.bits, i.signed) }

// Div and Rem truncate toward zero, matching C integer division.
// Callers must check o.IsZero() themselves — division semantics at the
// zero divisor differ between evaluated and unevaluated contexts, which
// is a decision the caller (the integer-constant-expression evaluator)
// makes, not this value type.
func (i Int) Div(o Int) Int {
	q := new(big.Int).Quo(i.v, o.v)
	return normalize(q, i.bits, i.signed)
}

func (i Int) Rem(o Int) Int {
	r := new(big.Int).Rem(i.v, o.v)
	return normalize(r, i.bits, i.signed)
}

func (i Int) And(o Int) Int { return normalize(new(big.Int).And(i.v, o.v), i.bits, i.signed) }
func (i Int) Or(o Int) Int  { return normalize(new(big.Int).Or(i.v, o.v), i.bits, i.signed) }
func (i Int) Xor(o Int) Int { return normalize(new(big.Int).Xor(i.v, o.v), i.bits, i.signed) }

// Shl and Shr clamp the shift amount to bitWidth-1, mirroring
// llvm::APSInt::getLimitedValue(BitWidth-1) in the original evaluator.
func (i Int) Shl(amount Int) Int {
	n := clampShift(amount, i.bits)
	return normalize(new(big.Int).Lsh(i.v, n), i.bits, i.signed)
}

func (i Int) Shr(amount Int) Int {
	n := clampShift(amount, i.bits)
	return normalize(new(big.Int).Rsh(i.v, n), i.bits, i.signed)
}

func clampShift(amount Int, bits uint32) uint {
	limit := uint(bits - 1)
	if !amount.v.IsInt64() || amount.v.Sign() < 0 {
		return limit
	}
	n := amount.v.Uint64()
	if n > uint64(limit) {
		return limit
	}
	return uint(n)
}

func (i Int) Cmp(o Int) int { return i.v.Cmp(o.v) }

func (i Int) Eq(o Int) bool { return i.Cmp(o) == 0 }
func (i Int) Lt(o Int) bool { return i.Cmp(o) < 0 }
func (i Int) Gt(o Int) bool { return i.Cmp(o) > 0 }
func (i Int) Le(o Int) bool { return i.Cmp(o) <= 0 }
func (i Int) Ge(o Int) bool { return i.Cmp(o) >= 0 }

// Bool widens the usual 0/1 comparison result to bits/signed, the shape
// every relational and logical operator in the evaluator returns.
func Bool(v bool, bits uint32, signed bool) Int {
	if v {
		return One(bits, signed)
	}
	return Zero(bits, signed)
}

func (i Int) String() string { return i.v.String() }

// Float is an arbitrary-precision floating point value, the payload of
// FloatingLiteral nodes. Semantics (float/double/long double) only
// affects the precision the value was parsed with; this type stores the
// already-parsed value.
type Float struct {
	v *big.Float
}

func NewFloat(v *big.Float) Float {
	return Float{v: new(big.Float).Copy(v)}
}

func (f Float) Big() *big.Float { return f.v }

// TruncateToInt converts f toward zero into a fixed-width integer, the
// semantics C99 §6.3.1.4 requires for floating-to-integer conversion and
// the one original_source's isIntegerConstantExpr performs via
// APFloat::convertToInteger(..., rmTowardZero).
func (f Float) TruncateToInt(bits uint32, signed bool) Int {
	i, _ := f.v.Int(nil)
	return FromBigInt(i, bits, signed)
}
