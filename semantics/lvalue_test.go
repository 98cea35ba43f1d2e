package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cfrontend/ast"
	"cfrontend/cval"
	"cfrontend/types"
)

func TestLvalueKindVoidResult(t *testing.T) {
	e := ast.NewCall(voidType(), r1(), ast.NewDeclRef(functionType(), r1(), ast.Function{FuncName: "f"}), nil)
	assert.Equal(t, LvalueIncompleteVoid, LvalueKindOf(e))
}

func TestLvalueKindFunctionResult(t *testing.T) {
	e := ast.NewDeclRef(functionType(), r1(), ast.Function{FuncName: "f"})
	assert.Equal(t, LvalueNotObjectType, LvalueKindOf(e))
}

func TestLvalueKindVariableIsValid(t *testing.T) {
	e := ast.NewDeclRef(int32Type(), r1(), ast.Variable{VarName: "x"})
	assert.Equal(t, LvalueValid, LvalueKindOf(e))
}

func TestLvalueKindCallIsInvalid(t *testing.T) {
	e := ast.NewCall(int32Type(), r1(), ast.NewDeclRef(functionType(), r1(), ast.Function{FuncName: "f"}), nil)
	assert.Equal(t, LvalueInvalidExpression, LvalueKindOf(e))
}

// lvalueKind(ArraySubscript(Call(fn, []), 0)) where fn returns a vector
// is the same as lvalueKind(Call(fn, [])): InvalidExpression, since the
// call itself is not an lvalue.
func TestLvalueKindVectorSubscriptOfCallInheritsInvalid(t *testing.T) {
	vecType := types.QualifiedType{Base: &types.Type{Kind: types.Vector, ElementType: int32Type(), VectorLength: 4}}
	call := ast.NewCall(vecType, r1(), ast.NewDeclRef(functionType(), r1(), ast.Function{FuncName: "fn"}), nil)
	idx := ast.NewIntegerLiteral(int32Type(), r1(), cval.FromInt64(0, 32, true))
	sub := ast.NewArraySubscript(int32Type(), r1(), call, idx)
	assert.Equal(t, LvalueInvalidExpression, LvalueKindOf(sub))
}

func TestLvalueKindDuplicateVectorComponents(t *testing.T) {
	base := ast.NewDeclRef(int32Type(), r1(), ast.Variable{VarName: "v"})
	ve := ast.NewVectorElement(int32Type(), r1(), base, "xx")
	assert.Equal(t, LvalueDuplicateVectorComponents, LvalueKindOf(ve))
}

func TestLvalueKindParenTransparent(t *testing.T) {
	inner := ast.NewDeclRef(int32Type(), r1(), ast.Variable{VarName: "x"})
	p := ast.NewParen(int32Type(), r1(), inner)
	assert.Equal(t, LvalueKindOf(inner), LvalueKindOf(p))
}

// modifiableLvalueKind(DeclRef(v)) where v is declared const int ->
// ConstQualified.
func TestModifiableLvalueConstQualifiedVariable(t *testing.T) {
	e := ast.NewDeclRef(constInt32Type(), r1(), ast.Variable{VarName: "v"})
	assert.Equal(t, ModifiableLvalueConstQualified, ModifiableLvalueKindOf(e))
}

func TestModifiableLvalueArrayType(t *testing.T) {
	arrType := types.QualifiedType{Base: &types.Type{
		Kind: types.Array, ArraySize: types.ConstantSize, ArrayLen: 4, ArrayElement: int32Type(),
	}}
	e := ast.NewDeclRef(arrType, r1(), ast.Variable{VarName: "a"})
	assert.Equal(t, ModifiableLvalueArrayType, ModifiableLvalueKindOf(e))
}

// A record type that transitively contains any const-qualified field
// makes the whole record a non-modifiable lvalue.
func TestModifiableLvalueTransitiveConstField(t *testing.T) {
	inner := structType("Inner", types.Field{Name: "c", Type: constInt32Type()})
	outer := structType("Outer", types.Field{Name: "inner", Type: inner})
	e := ast.NewDeclRef(outer, r1(), ast.Variable{VarName: "o"})
	assert.Equal(t, ModifiableLvalueConstQualified, ModifiableLvalueKindOf(e))
}

func TestModifiableLvalueOrdinaryVariableIsValid(t *testing.T) {
	e := ast.NewDeclRef(int32Type(), r1(), ast.Variable{VarName: "x"})
	assert.Equal(t, ModifiableLvalueValid, ModifiableLvalueKindOf(e))
}
