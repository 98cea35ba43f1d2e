package semantics

import "cfrontend/ast"

// GccTypeClass mirrors gcc's internal typeclass.h enumeration that
// __builtin_classify_type reports through, exactly as
// original_source/AST/Expr.cpp's CallExpr::isBuiltinClassifyType
// builds it (including the deliberate NoType == -1 first entry).
type GccTypeClass int

const (
	NoTypeClass GccTypeClass = iota - 1
	VoidTypeClass
	IntegerTypeClass
	CharTypeClass
	EnumeralTypeClass
	BooleanTypeClass
	PointerTypeClass
	ReferenceTypeClass
	OffsetTypeClass
	RealTypeClass
	ComplexTypeClass
	FunctionTypeClass
	MethodTypeClass
	RecordTypeClass
	UnionTypeClass
	ArrayTypeClass
	StringTypeClass
	LangTypeClass
)

// isClassifyTypeCall reports whether call's callee resolves — through
// exactly one implicit cast wrapping a DeclRef — to the
// __builtin_classify_type function, and returns that Function decl.
// original_source rejects the call outright otherwise, rather than
// falling back to a zero value.
func isClassifyTypeCall(call *ast.Call) (ast.Function, bool) {
	ic, ok := call.Callee.(*ast.CastImplicit)
	if !ok {
		return ast.Function{}, false
	}
	ref, ok := ic.Sub.(*ast.DeclRef)
	if !ok {
		return ast.Function{}, false
	}
	fn, ok := ref.Decl.(ast.Function)
	if !ok || !fn.BuiltinClassifyType {
		return ast.Function{}, false
	}
	return fn, true
}

// ClassifyBuiltinType implements __builtin_classify_type: with zero
// arguments, the tag is NoTypeClass; with at least one argument the
// tag is chosen from the first argument's type by the priority order
// original_source's isBuiltinClassifyType checks in. char is
// deliberately mapped to StringTypeClass, not CharTypeClass, to match
// gcc's own quirk — this is intentional and preserved, not a bug. The
// original's dead duplicate union branch is not reproduced.
func ClassifyBuiltinType(call *ast.Call) (GccTypeClass, bool) {
	if _, ok := isClassifyTypeCall(call); !ok {
		return 0, false
	}
	if len(call.Args) == 0 {
		return NoTypeClass, true
	}
	t := call.Args[0].Type()
	switch {
	case t.IsVoid():
		return VoidTypeClass, true
	case t.IsEnum():
		return EnumeralTypeClass, true
	case t.IsBool():
		return BooleanTypeClass, true
	case t.IsChar():
		return StringTypeClass, true
	case t.IsInteger():
		return IntegerTypeClass, true
	case t.IsPointer():
		return PointerTypeClass, true
	case t.IsReference():
		return ReferenceTypeClass, true
	case t.IsFloating():
		return RealTypeClass, true
	case t.IsComplex():
		return ComplexTypeClass, true
	case t.IsFunction():
		return FunctionTypeClass, true
	case t.IsStructure():
		return RecordTypeClass, true
	case t.IsUnion():
		return UnionTypeClass, true
	case t.IsArray():
		return ArrayTypeClass, true
	default:
		return 0, false
	}
}
