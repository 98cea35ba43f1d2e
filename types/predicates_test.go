package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The null placeholder QualifiedType{} (Base == nil) is what NewInitList
// carries before its target type is resolved. Every builtin predicate
// must report false on it rather than dereferencing the nil Base.
func TestNullQualifiedTypePredicatesDoNotPanic(t *testing.T) {
	var null QualifiedType

	assert.Equal(t, Builtin, null.Kind())
	assert.True(t, null.Null())

	assert.NotPanics(t, func() {
		assert.False(t, null.IsVoid())
		assert.False(t, null.IsBool())
		assert.False(t, null.IsChar())
		assert.False(t, null.IsIntegerSigned())
		assert.False(t, null.IsIntegerUnsigned())
		assert.False(t, null.IsInteger())
		assert.False(t, null.IsSignedInteger())
		assert.False(t, null.IsFloating())
		assert.False(t, null.IsArithmetic())
		assert.False(t, null.IsComplete())
	})
}

func TestIsVoidOnActualVoid(t *testing.T) {
	assert.True(t, VoidType().IsVoid())
}

func TestIsCharCoversAllThreeCharKinds(t *testing.T) {
	for _, k := range []BuiltinKind{Char, SignedChar, UnsignedChar} {
		q := QualifiedType{Base: &Type{Kind: Builtin, Builtin: k}}
		assert.True(t, q.IsChar(), "kind %v", k)
	}
}

func TestIsIntegerSignedVsUnsigned(t *testing.T) {
	signed := QualifiedType{Base: &Type{Kind: Builtin, Builtin: Int}}
	unsigned := QualifiedType{Base: &Type{Kind: Builtin, Builtin: UnsignedInt}}

	assert.True(t, signed.IsIntegerSigned())
	assert.False(t, signed.IsIntegerUnsigned())
	assert.True(t, unsigned.IsIntegerUnsigned())
	assert.False(t, unsigned.IsIntegerSigned())
	assert.True(t, signed.IsInteger())
	assert.True(t, unsigned.IsInteger())
}

func TestIsFloatingAndIsArithmetic(t *testing.T) {
	f := QualifiedType{Base: &Type{Kind: Builtin, Builtin: Double}}
	assert.True(t, f.IsFloating())
	assert.True(t, f.IsArithmetic())

	i := QualifiedType{Base: &Type{Kind: Builtin, Builtin: Int}}
	assert.False(t, i.IsFloating())
	assert.True(t, i.IsArithmetic())

	ptr := QualifiedType{Base: &Type{Kind: Pointer, Pointee: VoidType()}}
	assert.False(t, ptr.IsArithmetic())
}

func TestIsCompleteVoidIsIncomplete(t *testing.T) {
	assert.False(t, VoidType().IsComplete())
}

func TestIsCompleteIncompleteRecordAndArray(t *testing.T) {
	rec := QualifiedType{Base: &Type{Kind: Record, Incomplete: true}}
	assert.False(t, rec.IsComplete())

	arr := QualifiedType{Base: &Type{Kind: Array, ArraySize: IncompleteSize}}
	assert.False(t, arr.IsComplete())

	completeArr := QualifiedType{Base: &Type{
		Kind: Array, ArraySize: ConstantSize, ArrayLen: 4,
		ArrayElement: QualifiedType{Base: &Type{Kind: Builtin, Builtin: Int}},
	}}
	assert.True(t, completeArr.IsComplete())
}

func TestHasConstFieldsDirectAndTransitive(t *testing.T) {
	plain := QualifiedType{Base: &Type{Kind: Builtin, Builtin: Int}}
	assert.False(t, plain.HasConstFields())

	constInt := plain.WithQualifiers(Const)
	assert.True(t, constInt.HasConstFields())

	inner := QualifiedType{Base: &Type{Kind: Record, Fields: []Field{
		{Name: "c", Type: constInt},
	}}}
	outer := QualifiedType{Base: &Type{Kind: Record, Fields: []Field{
		{Name: "inner", Type: inner},
	}}}
	assert.True(t, outer.HasConstFields())
}

func TestCanonicalStripsTypedefPreservingQualifiers(t *testing.T) {
	aliased := QualifiedType{Base: &Type{Kind: Builtin, Builtin: Int}, Quals: Const}
	typedef := QualifiedType{Base: &Type{Kind: Typedef, TypedefName: "my_int", Aliased: aliased}}

	canon := typedef.Canonical()
	assert.Equal(t, Builtin, canon.Kind())
	assert.True(t, canon.Quals.IsConst())
}

func TestStructurallyEqualAcrossDistinctAllocations(t *testing.T) {
	a := QualifiedType{Base: &Type{Kind: Builtin, Builtin: Int}}
	b := QualifiedType{Base: &Type{Kind: Builtin, Builtin: Int}}
	assert.True(t, a.StructurallyEqual(b))

	c := QualifiedType{Base: &Type{Kind: Builtin, Builtin: Float}}
	assert.False(t, a.StructurallyEqual(c))
}

func TestStructurallyEqualNullVsNonNull(t *testing.T) {
	var null QualifiedType
	nonNull := QualifiedType{Base: &Type{Kind: Builtin, Builtin: Int}}
	assert.False(t, null.StructurallyEqual(nonNull))
	assert.True(t, null.StructurallyEqual(QualifiedType{}))
}
