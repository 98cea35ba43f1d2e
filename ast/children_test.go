package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cfrontend/cval"
	"cfrontend/loc"
)

func litRange(line int) loc.Range {
	l := loc.Location{File: "t.c", Line: line}
	return loc.NewRange(l, l)
}

func TestChildrenAtomsHaveNone(t *testing.T) {
	lit := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(1, 32, true))
	assert.Nil(t, Children(lit))
}

func TestChildrenBinaryOperatorOrder(t *testing.T) {
	lhs := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(2, 32, true))
	rhs := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(3, 32, true))
	bin := NewBinaryOperator(int32Type(), litRange(1), Add, lhs, rhs, loc.Location{})
	children := Children(bin)
	require.Len(t, children, 2)
	assert.Same(t, lhs, children[0])
	assert.Same(t, rhs, children[1])
}

func TestChildrenConditionalOrder(t *testing.T) {
	cond := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(1, 32, true))
	then := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(2, 32, true))
	els := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(3, 32, true))
	c := NewConditional(int32Type(), litRange(1), cond, then, els)
	children := Children(c)
	require.Len(t, children, 3)
	assert.Same(t, cond, children[0])
	assert.Same(t, then, children[1])
	assert.Same(t, els, children[2])
}

func TestChildrenCallOrder(t *testing.T) {
	callee := NewDeclRef(int32Type(), litRange(1), Variable{VarName: "fn"})
	arg1 := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(1, 32, true))
	arg2 := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(2, 32, true))
	call := NewCall(int32Type(), litRange(1), callee, []Expr{arg1, arg2})
	children := Children(call)
	require.Len(t, children, 3)
	assert.Same(t, callee, children[0])
	assert.Same(t, arg1, children[1])
	assert.Same(t, arg2, children[2])
}

func TestWalkPreorderVisitsEveryNode(t *testing.T) {
	a := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(1, 32, true))
	b := NewIntegerLiteral(int32Type(), litRange(1), cval.FromInt64(2, 32, true))
	bin := NewBinaryOperator(int32Type(), litRange(1), Add, a, b, loc.Location{})
	paren := NewParen(int32Type(), litRange(1), bin)

	var visited []Expr
	WalkPreorder(paren, func(e Expr) { visited = append(visited, e) })

	require.Len(t, visited, 4)
	assert.Same(t, paren, visited[0])
	assert.Same(t, bin, visited[1])
	assert.Same(t, a, visited[2])
	assert.Same(t, b, visited[3])
}

func TestVectorElementDuplicateAccessors(t *testing.T) {
	base := NewDeclRef(int32Type(), litRange(1), Variable{VarName: "v"})
	unique := NewVectorElement(int32Type(), litRange(1), base, "xyz")
	dup := NewVectorElement(int32Type(), litRange(1), base, "xx")
	assert.False(t, unique.DuplicateAccessors())
	assert.True(t, dup.DuplicateAccessors())
}
