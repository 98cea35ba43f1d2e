package semantics

import "cfrontend/ast"

// IsConstantExpression decides whether e qualifies as a constant
// expression under C99 §6.6, grounded on
// original_source/AST/Expr.cpp's Expr::isConstantExpr. On failure it
// reports the deepest sub-expression that disqualified the whole.
func (c *Context) IsConstantExpression(e ast.Expr) (bool, ast.Expr) {
	switch n := e.(type) {
	case *ast.Paren:
		return c.IsConstantExpression(n.Sub)

	case *ast.StringLiteral, *ast.FloatingLiteral, *ast.IntegerLiteral,
		*ast.CharacterLiteral, *ast.ImaginaryLiteral, *ast.TypesCompatible:
		return true, nil

	case *ast.Call:
		if _, ok := isClassifyTypeCall(n); ok {
			return true, nil
		}
		return false, e

	case *ast.DeclRef:
		if _, ok := n.Decl.(ast.Enumerator); ok {
			return true, nil
		}
		return false, e

	case *ast.UnaryOperator:
		if n.Op != ast.SizeOf && n.Op != ast.AlignOf {
			if ok, bad := c.IsConstantExpression(n.Sub); !ok {
				return false, bad
			}
		}
		switch n.Op {
		case ast.Extension:
			return true, nil
		case ast.SizeOf, ast.AlignOf:
			if n.Op == ast.SizeOf && !n.Sub.Type().IsConstantSize(c) {
				return false, e
			}
			return true, nil
		case ast.LogicalNot, ast.Plus, ast.Minus, ast.BitNot:
			return true, nil
		default:
			return false, e
		}

	case *ast.SizeOfAlignOfType:
		if n.IsSizeOf && !n.Operand.IsConstantSize(c) {
			return false, e
		}
		return true, nil

	case *ast.BinaryOperator:
		if ok, bad := c.IsConstantExpression(n.LHS); !ok {
			return false, bad
		}
		if ok, bad := c.IsConstantExpression(n.RHS); !ok {
			return false, bad
		}
		return true, nil

	case *ast.CastExplicit:
		if ok, bad := c.IsConstantExpression(n.Sub); !ok {
			return false, bad
		}
		return true, nil

	case *ast.CastImplicit:
		if ok, bad := c.IsConstantExpression(n.Sub); !ok {
			return false, bad
		}
		return true, nil

	case *ast.Conditional:
		if ok, bad := c.IsConstantExpression(n.Cond); !ok {
			return false, bad
		}
		if ok, bad := c.IsConstantExpression(n.Then); !ok {
			return false, bad
		}
		if ok, bad := c.IsConstantExpression(n.Else); !ok {
			return false, bad
		}
		return true, nil

	default:
		return false, e
	}
}
