package semantics

import "cfrontend/ast"

// IsNullPointerConstant implements C99 §6.3.2.3's null-pointer-constant
// recognition, grounded on
// original_source/AST/Expr.cpp's Expr::isNullPointerConstant: strip
// Paren and ImplicitCast transparently; an explicit Cast only
// qualifies when its target is unqualified `void *` and its operand is
// of integer type; otherwise the expression must itself be of integer
// type and evaluate to zero.
func (c *Context) IsNullPointerConstant(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.CastExplicit:
		destType := e.Type()
		if destType.IsPointer() &&
			destType.Base.Pointee.Quals.Empty() &&
			destType.Base.Pointee.IsVoid() &&
			n.Sub.Type().IsInteger() {
			return c.IsNullPointerConstant(n.Sub)
		}
	case *ast.CastImplicit:
		return c.IsNullPointerConstant(n.Sub)
	case *ast.Paren:
		return c.IsNullPointerConstant(n.Sub)
	}

	if !e.Type().IsInteger() {
		return false
	}
	val, ok, _ := c.EvaluateIntegerConstant(e, true)
	return ok && val.IsZero()
}
