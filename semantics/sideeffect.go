package semantics

import "cfrontend/ast"

// HasLocalSideEffect reports whether e's outermost operation has a
// side effect, ignoring sub-expressions, grounded on
// original_source/AST/Expr.cpp's Expr::hasLocalSideEffect.
func HasLocalSideEffect(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.Paren:
		return HasLocalSideEffect(n.Sub)

	case *ast.UnaryOperator:
		switch n.Op {
		case ast.PostInc, ast.PostDec, ast.PreInc, ast.PreDec:
			return true
		case ast.Deref:
			return n.Type().Quals.IsVolatile()
		case ast.Real, ast.Imag:
			return n.Sub.Type().Quals.IsVolatile()
		case ast.Extension:
			return HasLocalSideEffect(n.Sub)
		default:
			return false
		}

	case *ast.Member:
		return n.Type().Quals.IsVolatile()

	case *ast.ArraySubscript:
		return n.Type().Quals.IsVolatile()

	case *ast.BinaryOperator:
		return ast.IsAssignment(n.Op)

	case *ast.Call:
		return true

	case *ast.CastExplicit:
		if n.Type().IsVoid() {
			return HasLocalSideEffect(n.Sub)
		}
		return false

	case *ast.CastImplicit:
		if n.Type().IsVoid() {
			return HasLocalSideEffect(n.Sub)
		}
		return false

	default:
		return false
	}
}
