package semantics

import (
	"math/big"

	"cfrontend/ast"
	"cfrontend/cval"
	"cfrontend/loc"
	"cfrontend/types"
)

// EvaluateIntegerConstant computes the arbitrary-precision integer
// value of e as an integer constant expression, grounded on
// original_source/AST/Expr.cpp's
// Expr::isIntegerConstantExpr. isEvaluated is false inside an
// unevaluated operand (the untaken branch of ?:, the short-circuited
// side of &&/||); division/modulo by zero and the comma operator are
// permitted there per C99 §6.6p3.
//
// On success the returned cval.Int's width equals typeSize(e's result
// type) and its signedness equals isSignedInteger(e's result type). On
// failure it returns the deepest sub-expression that disqualified the
// whole.
func (c *Context) EvaluateIntegerConstant(e ast.Expr, isEvaluated bool) (cval.Int, bool, ast.Expr) {
	bits, signed, ok := c.resultWidth(e)
	if !ok {
		return cval.Int{}, false, e
	}

	switch n := e.(type) {
	case *ast.Paren:
		return c.EvaluateIntegerConstant(n.Sub, isEvaluated)

	case *ast.IntegerLiteral:
		return n.Value.Widen(bits, signed), true, nil

	case *ast.CharacterLiteral:
		return n.Value.Widen(bits, signed), true, nil

	case *ast.TypesCompatible:
		return cval.Bool(n.Compatible, bits, signed), true, nil

	case *ast.Call:
		class, ok := ClassifyBuiltinType(n)
		if !ok {
			return cval.Int{}, false, e
		}
		return cval.FromInt64(int64(class), bits, signed), true, nil

	case *ast.DeclRef:
		enumr, ok := n.Decl.(ast.Enumerator)
		if !ok {
			return cval.Int{}, false, e
		}
		return enumr.Value.Widen(bits, signed), true, nil

	case *ast.UnaryOperator:
		return c.evalUnaryConst(n, bits, signed, isEvaluated)

	case *ast.SizeOfAlignOfType:
		return c.evalSizeOfAlignOfType(n, bits, signed)

	case *ast.BinaryOperator:
		return c.evalBinaryConst(n, bits, signed, isEvaluated)

	case *ast.CastExplicit:
		return c.evalCastConst(n.Sub, e.Type(), bits, signed, isEvaluated)

	case *ast.CastImplicit:
		return c.evalCastConst(n.Sub, e.Type(), bits, signed, isEvaluated)

	case *ast.Conditional:
		return c.evalConditionalConst(n, bits, signed, isEvaluated)

	default:
		return cval.Int{}, false, e
	}
}

// resultWidth resolves e's result-type bit width and signedness,
// failing the whole evaluation if the size can't be determined.
func (c *Context) resultWidth(e ast.Expr) (uint32, bool, bool) {
	t := e.Type()
	bits, err := c.TypeSize(t, e.Range())
	if err != nil {
		return 0, false, false
	}
	return bits, t.IsSignedInteger(), true
}

func (c *Context) evalUnaryConst(n *ast.UnaryOperator, bits uint32, signed bool, isEvaluated bool) (cval.Int, bool, ast.Expr) {
	if n.Op == ast.SizeOf || n.Op == ast.AlignOf {
		return c.evalSizeOfAlignOfOperand(n, bits, signed)
	}

	operand, ok, bad := c.EvaluateIntegerConstant(n.Sub, isEvaluated)
	if !ok {
		return cval.Int{}, false, bad
	}

	switch n.Op {
	case ast.Extension:
		// Requires the operand to already be an integer constant
		// expression (checked above) and then acts as identity,
		// preserved exactly as original_source computes it.
		return operand.Widen(bits, signed), true, nil
	case ast.Plus:
		return operand.Widen(bits, signed), true, nil
	case ast.Minus:
		return operand.Neg().Widen(bits, signed), true, nil
	case ast.BitNot:
		return operand.Not().Widen(bits, signed), true, nil
	case ast.LogicalNot:
		return operand.LNot().Widen(bits, signed), true, nil
	default:
		// Address, indirect, pre/post inc/dec: never constant (C99 §6.6p3).
		return cval.Int{}, false, n
	}
}

func (c *Context) evalSizeOfAlignOfOperand(n *ast.UnaryOperator, bits uint32, signed bool) (cval.Int, bool, ast.Expr) {
	operandType := n.Sub.Type()
	if n.Op == ast.SizeOf && !operandType.IsConstantSize(c) {
		return cval.Int{}, false, n
	}
	var result uint32
	var err error
	if n.Op == ast.SizeOf {
		result, err = c.TypeSize(operandType, n.Range())
	} else {
		result, err = c.TypeAlign(operandType, n.Range())
	}
	if err != nil {
		return cval.Int{}, false, n
	}
	return cval.FromInt64(int64(result), bits, signed), true, nil
}

func (c *Context) evalSizeOfAlignOfType(n *ast.SizeOfAlignOfType, bits uint32, signed bool) (cval.Int, bool, ast.Expr) {
	if n.IsSizeOf && !n.Operand.IsConstantSize(c) {
		return cval.Int{}, false, n
	}
	var result uint32
	var err error
	if n.IsSizeOf {
		result, err = c.TypeSize(n.Operand, n.Range())
	} else {
		result, err = c.TypeAlign(n.Operand, n.Range())
	}
	if err != nil {
		return cval.Int{}, false, n
	}
	return cval.FromInt64(int64(result), bits, signed), true, nil
}

func (c *Context) evalBinaryConst(n *ast.BinaryOperator, bits uint32, signed bool, isEvaluated bool) (cval.Int, bool, ast.Expr) {
	lhs, ok, bad := c.EvaluateIntegerConstant(n.LHS, isEvaluated)
	if !ok {
		return cval.Int{}, false, bad
	}

	rhsEvaluated := isEvaluated
	if ast.IsShortCircuit(n.Op) {
		switch n.Op {
		case ast.LAnd:
			rhsEvaluated = isEvaluated && !lhs.IsZero()
		case ast.LOr:
			rhsEvaluated = isEvaluated && lhs.IsZero()
		}
	}

	rhs, ok, bad := c.EvaluateIntegerConstant(n.RHS, rhsEvaluated)
	if !ok {
		return cval.Int{}, false, bad
	}

	switch n.Op {
	case ast.Mul:
		result := lhs.Mul(rhs)
		c.checkOverflow("*", n.Range(), lhs, rhs, result, bits, signed, func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) })
		return result.Widen(bits, signed), true, nil
	case ast.Div:
		if rhs.IsZero() {
			if isEvaluated {
				return cval.Int{}, false, n
			}
			return cval.Zero(bits, signed), true, nil
		}
		return lhs.Div(rhs).Widen(bits, signed), true, nil
	case ast.Rem:
		if rhs.IsZero() {
			if isEvaluated {
				return cval.Int{}, false, n
			}
			return cval.Zero(bits, signed), true, nil
		}
		return lhs.Rem(rhs).Widen(bits, signed), true, nil
	case ast.Add:
		result := lhs.Add(rhs)
		c.checkOverflow("+", n.Range(), lhs, rhs, result, bits, signed, func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) })
		return result.Widen(bits, signed), true, nil
	case ast.Sub:
		result := lhs.Sub(rhs)
		c.checkOverflow("-", n.Range(), lhs, rhs, result, bits, signed, func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) })
		return result.Widen(bits, signed), true, nil
	case ast.Shl:
		return lhs.Shl(rhs).Widen(bits, signed), true, nil
	case ast.Shr:
		return lhs.Shr(rhs).Widen(bits, signed), true, nil
	case ast.LT:
		return cval.Bool(lhs.Lt(rhs), bits, signed), true, nil
	case ast.GT:
		return cval.Bool(lhs.Gt(rhs), bits, signed), true, nil
	case ast.LE:
		return cval.Bool(lhs.Le(rhs), bits, signed), true, nil
	case ast.GE:
		return cval.Bool(lhs.Ge(rhs), bits, signed), true, nil
	case ast.EQ:
		return cval.Bool(lhs.Eq(rhs), bits, signed), true, nil
	case ast.NE:
		return cval.Bool(!lhs.Eq(rhs), bits, signed), true, nil
	case ast.And:
		return lhs.And(rhs).Widen(bits, signed), true, nil
	case ast.Xor:
		return lhs.Xor(rhs).Widen(bits, signed), true, nil
	case ast.Or:
		return lhs.Or(rhs).Widen(bits, signed), true, nil
	case ast.LAnd:
		return cval.Bool(!lhs.IsZero() && !rhs.IsZero(), bits, signed), true, nil
	case ast.LOr:
		return cval.Bool(!lhs.IsZero() || !rhs.IsZero(), bits, signed), true, nil
	case ast.Comma:
		// C99 6.6p3 forbids comma except within an unevaluated
		// subexpression; in that case the observed behavior is to
		// yield the RHS's value.
		if isEvaluated {
			return cval.Int{}, false, n
		}
		return rhs, true, nil
	default:
		return cval.Int{}, false, n
	}
}

// checkOverflow reports to Context's OverflowObserver when the exact
// mathematical result of an arithmetic op did not fit in bits/signed
// before cval.Int truncated it.
func (c *Context) checkOverflow(op string, r loc.Range, lhs, rhs, truncated cval.Int, bits uint32, signed bool, exact func(a, b *big.Int) *big.Int) {
	raw := exact(lhs.Big(), rhs.Big())
	if !fitsWidth(raw, bits, signed) {
		c.overflow.ObserveOverflow(op, r, truncated)
	}
}

func fitsWidth(v *big.Int, bits uint32, signed bool) bool {
	if signed {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		neg := new(big.Int).Neg(limit)
		return v.Cmp(neg) >= 0 && v.Cmp(limit) < 0
	}
	if v.Sign() < 0 {
		return false
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	return v.Cmp(limit) < 0
}

func (c *Context) evalCastConst(sub ast.Expr, destType types.QualifiedType, bits uint32, signed bool, isEvaluated bool) (cval.Int, bool, ast.Expr) {
	srcType := sub.Type()
	if !srcType.IsArithmetic() || !destType.IsInteger() {
		return cval.Int{}, false, sub
	}
	if srcType.IsInteger() {
		v, ok, bad := c.EvaluateIntegerConstant(sub, isEvaluated)
		if !ok {
			return cval.Int{}, false, bad
		}
		return v.Widen(bits, signed), true, nil
	}

	operand := sub
	for {
		p, ok := operand.(*ast.Paren)
		if !ok {
			break
		}
		operand = p.Sub
	}
	fl, ok := operand.(*ast.FloatingLiteral)
	if !ok {
		return cval.Int{}, false, operand
	}
	return fl.Value.TruncateToInt(bits, signed), true, nil
}

func (c *Context) evalConditionalConst(n *ast.Conditional, bits uint32, signed bool, isEvaluated bool) (cval.Int, bool, ast.Expr) {
	cond, ok, bad := c.EvaluateIntegerConstant(n.Cond, isEvaluated)
	if !ok {
		return cval.Int{}, false, bad
	}

	taken, discarded := n.Then, n.Else
	if cond.IsZero() {
		taken, discarded = n.Else, n.Then
	}

	// The discarded branch is evaluated with isEvaluated forced false
	// and its result thrown away; a failure there does not disqualify
	// the whole conditional.
	c.EvaluateIntegerConstant(discarded, false)

	result, ok, bad := c.EvaluateIntegerConstant(taken, isEvaluated)
	if !ok {
		return cval.Int{}, false, bad
	}
	return result.Widen(bits, signed), true, nil
}
