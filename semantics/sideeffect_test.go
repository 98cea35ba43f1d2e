package semantics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cfrontend/ast"
	"cfrontend/types"
)

func TestHasLocalSideEffectPostIncrement(t *testing.T) {
	v := ast.NewDeclRef(int32Type(), r1(), ast.Variable{VarName: "x"})
	inc := ast.NewUnaryOperator(int32Type(), r1(), ast.PostInc, v, loc0())
	assert.True(t, HasLocalSideEffect(inc))
}

func TestHasLocalSideEffectPlainArithmeticHasNone(t *testing.T) {
	bin := ast.NewBinaryOperator(int32Type(), r1(), ast.Add, intLit(1), intLit(2), loc0())
	assert.False(t, HasLocalSideEffect(bin))
}

func TestHasLocalSideEffectAssignment(t *testing.T) {
	v := ast.NewDeclRef(int32Type(), r1(), ast.Variable{VarName: "x"})
	assign := ast.NewBinaryOperator(int32Type(), r1(), ast.Assign, v, intLit(1), loc0())
	assert.True(t, HasLocalSideEffect(assign))
}

func TestHasLocalSideEffectCallAlwaysTrue(t *testing.T) {
	call := ast.NewCall(int32Type(), r1(), ast.NewDeclRef(functionType(), r1(), ast.Function{FuncName: "f"}), nil)
	assert.True(t, HasLocalSideEffect(call))
}

func TestHasLocalSideEffectVolatileDereference(t *testing.T) {
	volatileInt := int32Type().WithQualifiers(types.Volatile)
	ptr := ast.NewDeclRef(voidPointerType(), r1(), ast.Variable{VarName: "p"})
	deref := ast.NewUnaryOperator(volatileInt, r1(), ast.Deref, ptr, loc0())
	assert.True(t, HasLocalSideEffect(deref))
}

func TestHasLocalSideEffectNonVolatileDereferenceIsPure(t *testing.T) {
	ptr := ast.NewDeclRef(voidPointerType(), r1(), ast.Variable{VarName: "p"})
	deref := ast.NewUnaryOperator(int32Type(), r1(), ast.Deref, ptr, loc0())
	assert.False(t, HasLocalSideEffect(deref))
}

func TestHasLocalSideEffectParenTransparent(t *testing.T) {
	v := ast.NewDeclRef(int32Type(), r1(), ast.Variable{VarName: "x"})
	inc := ast.NewUnaryOperator(int32Type(), r1(), ast.PostInc, v, loc0())
	p := ast.NewParen(int32Type(), r1(), inc)
	assert.Equal(t, HasLocalSideEffect(inc), HasLocalSideEffect(p))
}
