package ast

import "cfrontend/cval"

// DeclKind discriminates the handful of declaration shapes a DeclRef
// can point to. This module has no declaration-parsing or name
// resolution subsystem — Decl is deliberately the smallest shape the
// semantic queries actually inspect: "is this a variable" (lvalue),
// "is this an enumerator, and if so what is its value" (constant
// folding), "is this the classify_type builtin" (builtin recognition).
type DeclKind int

const (
	VarDecl DeclKind = iota
	EnumConstantDecl
	FuncDecl
)

// Decl is an external-collaborator handle: the compiler's declaration
// table owns the real thing and hands out values satisfying this
// interface. Nothing in this module constructs a Decl other than
// tests.
type Decl interface {
	Kind() DeclKind
	Name() string
}

// Variable is the Decl a DeclRef to a local/global/parameter resolves
// to.
type Variable struct {
	VarName string
}

func (v Variable) Kind() DeclKind { return VarDecl }
func (v Variable) Name() string   { return v.VarName }

// Enumerator is the Decl an enum member's DeclRef resolves to, carrying
// the value the constant folder in §4.6 needs.
type Enumerator struct {
	EnumName string
	Value    cval.Int
}

func (e Enumerator) Kind() DeclKind { return EnumConstantDecl }
func (e Enumerator) Name() string   { return e.EnumName }

// Function is the Decl a DeclRef to a function name resolves to
// (usually reached through an implicit function-to-pointer cast).
// BuiltinClassifyType is true exactly for the single builtin
// __builtin_classify_type; the classify_type call check shared by
// ClassifyBuiltinType and IsConstantExpression is the only code that
// inspects it.
type Function struct {
	FuncName            string
	BuiltinClassifyType bool
}

func (f Function) Kind() DeclKind { return FuncDecl }
func (f Function) Name() string   { return f.FuncName }
