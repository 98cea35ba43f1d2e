package semantics

import "cfrontend/ast"

// LvalueKind is the tagged result of lvalueKind, grounded on
// original_source/AST/Expr.cpp's Expr::isLvalueResult enum
// (LV_Valid, LV_NotObjectType, LV_IncompleteVoidType,
// LV_DuplicateVectorComponents, LV_InvalidExpression).
type LvalueKind int

const (
	LvalueValid LvalueKind = iota
	LvalueNotObjectType
	LvalueIncompleteVoid
	LvalueDuplicateVectorComponents
	LvalueInvalidExpression
)

// ModifiableLvalueKind is the tagged result of modifiableLvalueKind,
// grounded on Expr::isModifiableLvalueResult.
type ModifiableLvalueKind int

const (
	ModifiableLvalueValid ModifiableLvalueKind = iota
	ModifiableLvalueNotObjectType
	ModifiableLvalueIncompleteVoid
	ModifiableLvalueDuplicateVectorComponents
	ModifiableLvalueInvalidExpression
	ModifiableLvalueConstQualified
	ModifiableLvalueArrayType
	ModifiableLvalueIncompleteType
)

// LvalueKindOf implements C99 §6.3.2.1's lvalue concept, grounded on
// Expr::isLvalue: check the result type first, then dispatch on node
// kind.
func LvalueKindOf(e ast.Expr) LvalueKind {
	t := e.Type()
	if t.IsFunction() {
		return LvalueNotObjectType
	}
	if t.IsVoid() {
		return LvalueIncompleteVoid
	}
	if t.IsReference() {
		return LvalueValid
	}

	switch n := e.(type) {
	case *ast.StringLiteral:
		return LvalueValid
	case *ast.ArraySubscript:
		if n.Base.Type().IsVector() {
			return LvalueKindOf(n.Base)
		}
		return LvalueValid
	case *ast.DeclRef:
		if _, ok := n.Decl.(ast.Variable); ok {
			return LvalueValid
		}
		return LvalueInvalidExpression
	case *ast.Member:
		if n.Arrow {
			return LvalueValid
		}
		return LvalueKindOf(n.Base)
	case *ast.UnaryOperator:
		if n.Op == ast.Deref {
			return LvalueValid
		}
		return LvalueInvalidExpression
	case *ast.Paren:
		return LvalueKindOf(n.Sub)
	case *ast.VectorElement:
		if n.DuplicateAccessors() {
			return LvalueDuplicateVectorComponents
		}
		return LvalueValid
	default:
		return LvalueInvalidExpression
	}
}

var lvalueToModifiable = map[LvalueKind]ModifiableLvalueKind{
	LvalueNotObjectType:             ModifiableLvalueNotObjectType,
	LvalueIncompleteVoid:            ModifiableLvalueIncompleteVoid,
	LvalueDuplicateVectorComponents: ModifiableLvalueDuplicateVectorComponents,
	LvalueInvalidExpression:         ModifiableLvalueInvalidExpression,
}

// ModifiableLvalueKindOf implements C99 §6.3.2.1's modifiable-lvalue
// concept, grounded on Expr::isModifiableLvalue: layer
// constness/array/incompleteness/const-field tests on top of a valid
// lvalue, translating any non-Valid lvalue kind one-to-one.
func ModifiableLvalueKindOf(e ast.Expr) ModifiableLvalueKind {
	lv := LvalueKindOf(e)
	if lv != LvalueValid {
		return lvalueToModifiable[lv]
	}

	t := e.Type()
	if t.Quals.IsConst() {
		return ModifiableLvalueConstQualified
	}
	if t.IsArray() {
		return ModifiableLvalueArrayType
	}
	if !t.IsComplete() {
		return ModifiableLvalueIncompleteType
	}
	if t.Canonical().HasConstFields() {
		return ModifiableLvalueConstQualified
	}
	return ModifiableLvalueValid
}
