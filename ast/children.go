package ast

// Children returns node's owned sub-expressions in exactly the order
// they are stored: Call yields callee then arguments left-to-right,
// BinaryOperator yields LHS then RHS, Conditional yields
// condition/then/else, InitList yields its initializers left-to-right.
// Kinds with no children (every atom, plus SizeOfAlignOfType,
// TypesCompatible, AddrLabel) return nil.
//
// Dispatch is an explicit type switch over the closed node-kind set
// rather than a reflection-driven walk — an explicit switch is the
// only way to guarantee storage-order traversal for slice- and
// pointer-typed fields alike without relying on struct field
// declaration order surviving reflection.
func Children(node Expr) []Expr {
	switch n := node.(type) {
	case *IntegerLiteral, *CharacterLiteral, *FloatingLiteral, *ImaginaryLiteral,
		*StringLiteral, *DeclRef, *PredefinedIdent, *AddrLabel,
		*TypesCompatible, *SizeOfAlignOfType:
		return nil

	case *Paren:
		return []Expr{n.Sub}
	case *UnaryOperator:
		return []Expr{n.Sub}
	case *CastExplicit:
		return []Expr{n.Sub}
	case *CastImplicit:
		return []Expr{n.Sub}
	case *Member:
		return []Expr{n.Base}
	case *VectorElement:
		return []Expr{n.Base}
	case *CompoundLiteral:
		return []Expr{n.Init}
	case *StmtExpr:
		return n.Body.Exprs()

	case *ArraySubscript:
		return []Expr{n.Base, n.Index}
	case *BinaryOperator:
		return []Expr{n.LHS, n.RHS}
	case *Choose:
		return []Expr{n.Cond, n.Selected}

	case *Conditional:
		return []Expr{n.Cond, n.Then, n.Else}

	case *Call:
		result := make([]Expr, 0, 1+len(n.Args))
		result = append(result, n.Callee)
		result = append(result, n.Args...)
		return result
	case *InitList:
		return append([]Expr(nil), n.Inits...)
	case *ObjCMessage:
		result := make([]Expr, 0, 1+len(n.Args))
		result = append(result, n.Receiver)
		result = append(result, n.Args...)
		return result

	default:
		panic("ast: Children: unknown node kind")
	}
}
