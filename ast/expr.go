// Package ast implements the typed expression AST: a closed set of
// node kinds discriminated by a tag, each carrying a QualifiedType
// result type and a source range, plus the operator metadata and child
// traversal needed to query it.
//
// The polymorphism here is a tagged variant: one exprBase struct
// embedded by every concrete node carries the kind/type/range triple,
// and dispatch is a Go type switch on the concrete node type rather
// than a virtual method — the natural idiom for a closed, fixed set of
// shapes in a language without inheritance.
package ast

import (
	"cfrontend/cval"
	"cfrontend/loc"
	"cfrontend/types"
	"cfrontend/utils"
)

// ExprKind is the node-kind tag every Expr carries. It is the
// discriminator structural recursion switches on; the set is closed and
// enumerated here in full.
type ExprKind int

const (
	KindIntegerLiteral ExprKind = iota
	KindCharacterLiteral
	KindFloatingLiteral
	KindImaginaryLiteral
	KindStringLiteral
	KindDeclRef
	KindPredefinedIdent
	KindAddrLabel
	KindTypesCompatible
	KindSizeOfAlignOfType
	KindParen
	KindUnaryOperator
	KindCastExplicit
	KindCastImplicit
	KindMember
	KindVectorElement
	KindCompoundLiteral
	KindStmtExpr
	KindArraySubscript
	KindBinaryOperator
	KindChoose
	KindConditional
	KindCall
	KindInitList
	KindObjCMessage
)

// Expr is implemented by every node in the tree. Every sub-expression is
// reachable through exactly one child edge (Children walks those
// edges); nothing in this module gives a node a way to free its
// children. The New* constructors allocate nodes as ordinary Go heap
// values; nodes are not placed in a Context arena, and their lifetime
// is governed by the garbage collector, not by a Context.
type Expr interface {
	Kind() ExprKind
	Type() types.QualifiedType
	Range() loc.Range
}

type exprBase struct {
	kind  ExprKind
	typ   types.QualifiedType
	rng   loc.Range
}

func (e exprBase) Kind() ExprKind         { return e.kind }
func (e exprBase) Type() types.QualifiedType { return e.typ }
func (e exprBase) Range() loc.Range       { return e.rng }

func newBase(kind ExprKind, t types.QualifiedType, r loc.Range) exprBase {
	return exprBase{kind: kind, typ: t, rng: r}
}

// ---- Atoms (no children) ----

type IntegerLiteral struct {
	exprBase
	Value cval.Int
}

func NewIntegerLiteral(t types.QualifiedType, r loc.Range, v cval.Int) *IntegerLiteral {
	return &IntegerLiteral{exprBase: newBase(KindIntegerLiteral, t, r), Value: v}
}

// CharacterLiteral carries the character's numeric code point and the
// width it was encoded with (1 for a plain/narrow char, wider for a
// wide-character literal); its signedness for constant evaluation is
// taken from Type(), not from EncodingWidth.
type CharacterLiteral struct {
	exprBase
	Value         cval.Int
	EncodingWidth int
}

func NewCharacterLiteral(t types.QualifiedType, r loc.Range, v cval.Int, encodingWidth int) *CharacterLiteral {
	return &CharacterLiteral{exprBase: newBase(KindCharacterLiteral, t, r), Value: v, EncodingWidth: encodingWidth}
}

type FloatingLiteral struct {
	exprBase
	Value cval.Float
}

func NewFloatingLiteral(t types.QualifiedType, r loc.Range, v cval.Float) *FloatingLiteral {
	return &FloatingLiteral{exprBase: newBase(KindFloatingLiteral, t, r), Value: v}
}

// NumericValue is the payload ImaginaryLiteral wraps. An
// ImaginaryLiteral has no children — it wraps its underlying numeric
// literal's *value*, not a traversable Expr node.
type NumericValue struct {
	IsFloat bool
	Int     cval.Int
	Float   cval.Float
}

type ImaginaryLiteral struct {
	exprBase
	Value NumericValue
}

func NewImaginaryLiteral(t types.QualifiedType, r loc.Range, v NumericValue) *ImaginaryLiteral {
	return &ImaginaryLiteral{exprBase: newBase(KindImaginaryLiteral, t, r), Value: v}
}

// StringLiteral owns its byte buffer, as original_source's
// StringLiteral does (allocates and copies strData in its constructor,
// frees it in its destructor); here the constructor copies the bytes
// and the garbage collector frees them with the node.
type StringLiteral struct {
	exprBase
	Bytes     []byte
	Wide      bool
	FirstTok  loc.Location
	LastTok   loc.Location
}

func NewStringLiteral(t types.QualifiedType, r loc.Range, bytes []byte, wide bool, first, last loc.Location) *StringLiteral {
	owned := make([]byte, len(bytes))
	copy(owned, bytes)
	return &StringLiteral{
		exprBase: newBase(KindStringLiteral, t, r),
		Bytes:    owned,
		Wide:     wide,
		FirstTok: first,
		LastTok:  last,
	}
}

type DeclRef struct {
	exprBase
	Decl Decl
}

func NewDeclRef(t types.QualifiedType, r loc.Range, decl Decl) *DeclRef {
	return &DeclRef{exprBase: newBase(KindDeclRef, t, r), Decl: decl}
}

// PredefinedKind enumerates the `__func__`-style predefined identifiers.
type PredefinedKind int

const (
	Func PredefinedKind = iota
	PrettyFunc
	FuncDName
)

type PredefinedIdent struct {
	exprBase
	Predefined PredefinedKind
}

func NewPredefinedIdent(t types.QualifiedType, r loc.Range, kind PredefinedKind) *PredefinedIdent {
	return &PredefinedIdent{exprBase: newBase(KindPredefinedIdent, t, r), Predefined: kind}
}

type AddrLabel struct {
	exprBase
	Label string
}

func NewAddrLabel(t types.QualifiedType, r loc.Range, label string) *AddrLabel {
	return &AddrLabel{exprBase: newBase(KindAddrLabel, t, r), Label: label}
}

// TypesCompatible carries a precomputed answer — an already-built AST
// hands this query engine the result of __builtin_types_compatible_p
// as computed at construction time, not something SemanticQueries
// recomputes.
type TypesCompatible struct {
	exprBase
	LHS, RHS   types.QualifiedType
	Compatible bool
}

func NewTypesCompatible(t types.QualifiedType, r loc.Range, lhs, rhs types.QualifiedType, compatible bool) *TypesCompatible {
	return &TypesCompatible{exprBase: newBase(KindTypesCompatible, t, r), LHS: lhs, RHS: rhs, Compatible: compatible}
}

type SizeOfAlignOfType struct {
	exprBase
	Operand     types.QualifiedType
	IsSizeOf    bool // false means alignof
	OperatorLoc loc.Location
}

func NewSizeOfAlignOfType(t types.QualifiedType, r loc.Range, operand types.QualifiedType, isSizeOf bool, opLoc loc.Location) *SizeOfAlignOfType {
	return &SizeOfAlignOfType{exprBase: newBase(KindSizeOfAlignOfType, t, r), Operand: operand, IsSizeOf: isSizeOf, OperatorLoc: opLoc}
}

// ---- Unary-shape (one child) ----

type Paren struct {
	exprBase
	Sub Expr
}

func NewParen(t types.QualifiedType, r loc.Range, sub Expr) *Paren {
	return &Paren{exprBase: newBase(KindParen, t, r), Sub: sub}
}

type UnaryOperator struct {
	exprBase
	Op          UnaryOpcode
	Sub         Expr
	OperatorLoc loc.Location
}

func NewUnaryOperator(t types.QualifiedType, r loc.Range, op UnaryOpcode, sub Expr, opLoc loc.Location) *UnaryOperator {
	return &UnaryOperator{exprBase: newBase(KindUnaryOperator, t, r), Op: op, Sub: sub, OperatorLoc: opLoc}
}

// CastExplicit records the opening-paren location of a source-level
// `(T)expr` cast, distinguishing it from CastImplicit.
type CastExplicit struct {
	exprBase
	Sub       Expr
	LParenLoc loc.Location
}

func NewCastExplicit(t types.QualifiedType, r loc.Range, sub Expr, lparen loc.Location) *CastExplicit {
	return &CastExplicit{exprBase: newBase(KindCastExplicit, t, r), Sub: sub, LParenLoc: lparen}
}

// CastImplicit represents a conversion the compiler inserted, most
// commonly lvalue-to-rvalue adjustment.
type CastImplicit struct {
	exprBase
	Sub Expr
}

func NewCastImplicit(t types.QualifiedType, r loc.Range, sub Expr) *CastImplicit {
	return &CastImplicit{exprBase: newBase(KindCastImplicit, t, r), Sub: sub}
}

type Member struct {
	exprBase
	Base  Expr
	Field string
	Arrow bool
}

func NewMember(t types.QualifiedType, r loc.Range, base Expr, field string, arrow bool) *Member {
	return &Member{exprBase: newBase(KindMember, t, r), Base: base, Field: field, Arrow: arrow}
}

// VectorElement is `v.xyzw`-style vector-swizzle access. Accessor holds
// the raw letters as written; DuplicateAccessors reports whether any
// letter repeats (lvalueKind uses this to reject `v.xx = ...`).
type VectorElement struct {
	exprBase
	Base     Expr
	Accessor string
}

func NewVectorElement(t types.QualifiedType, r loc.Range, base Expr, accessor string) *VectorElement {
	return &VectorElement{exprBase: newBase(KindVectorElement, t, r), Base: base, Accessor: accessor}
}

// DuplicateAccessors reports whether any accessor letter repeats, per
// original_source's OCUVectorElementExpr::containsDuplicateElements.
func (v *VectorElement) DuplicateAccessors() bool {
	seen := utils.NewSet[byte]()
	for i := 0; i < len(v.Accessor); i++ {
		c := v.Accessor[i]
		if seen.Has(c) {
			return true
		}
		seen.Add(c)
	}
	return false
}

type CompoundLiteral struct {
	exprBase
	Init Expr
}

func NewCompoundLiteral(t types.QualifiedType, r loc.Range, init Expr) *CompoundLiteral {
	return &CompoundLiteral{exprBase: newBase(KindCompoundLiteral, t, r), Init: init}
}

type StmtExpr struct {
	exprBase
	Body CompoundStmt
}

func NewStmtExpr(t types.QualifiedType, r loc.Range, body CompoundStmt) *StmtExpr {
	return &StmtExpr{exprBase: newBase(KindStmtExpr, t, r), Body: body}
}

// ---- Binary-shape (two children) ----

type ArraySubscript struct {
	exprBase
	Base  Expr
	Index Expr
}

func NewArraySubscript(t types.QualifiedType, r loc.Range, base, index Expr) *ArraySubscript {
	return &ArraySubscript{exprBase: newBase(KindArraySubscript, t, r), Base: base, Index: index}
}

type BinaryOperator struct {
	exprBase
	Op          BinaryOpcode
	LHS, RHS    Expr
	OperatorLoc loc.Location
}

func NewBinaryOperator(t types.QualifiedType, r loc.Range, op BinaryOpcode, lhs, rhs Expr, opLoc loc.Location) *BinaryOperator {
	return &BinaryOperator{exprBase: newBase(KindBinaryOperator, t, r), Op: op, LHS: lhs, RHS: rhs, OperatorLoc: opLoc}
}

// Choose is GNU __builtin_choose_expr(cond, then, else): since cond
// must itself be a constant expression, AST construction already knows
// which branch survives, so the node stores the condition (for
// diagnostics/re-verification) and only the selected branch, making it
// binary-shaped rather than ternary-shaped.
type Choose struct {
	exprBase
	Cond     Expr
	Selected Expr
}

func NewChoose(t types.QualifiedType, r loc.Range, cond, selected Expr) *Choose {
	return &Choose{exprBase: newBase(KindChoose, t, r), Cond: cond, Selected: selected}
}

// ---- Ternary-shape (three children) ----

type Conditional struct {
	exprBase
	Cond, Then, Else Expr
}

func NewConditional(t types.QualifiedType, r loc.Range, cond, then, els Expr) *Conditional {
	return &Conditional{exprBase: newBase(KindConditional, t, r), Cond: cond, Then: then, Else: els}
}

// ---- N-ary (variable-width) ----

type Call struct {
	exprBase
	Callee Expr
	Args   []Expr
}

func NewCall(t types.QualifiedType, r loc.Range, callee Expr, args []Expr) *Call {
	return &Call{exprBase: newBase(KindCall, t, r), Callee: callee, Args: args}
}

// InitList is the brace-enclosed initializer list; its Type is
// types.QualifiedType{} (the null type) until AST construction later
// resolves the target it initializes.
type InitList struct {
	exprBase
	LBraceLoc, RBraceLoc loc.Location
	Inits                []Expr
}

func NewInitList(r loc.Range, lbrace, rbrace loc.Location, inits []Expr) *InitList {
	return &InitList{exprBase: newBase(KindInitList, types.QualifiedType{}, r), LBraceLoc: lbrace, RBraceLoc: rbrace, Inits: inits}
}

// ObjCMessage is the N-ary Objective-C message-send node. Its runtime
// lowering is out of this module's scope; only its shape as an AST
// node — a receiver plus N argument children — is modeled so Children
// stays total over the closed node-kind set.
type ObjCMessage struct {
	exprBase
	Receiver Expr
	Args     []Expr
}

func NewObjCMessage(t types.QualifiedType, r loc.Range, receiver Expr, args []Expr) *ObjCMessage {
	return &ObjCMessage{exprBase: newBase(KindObjCMessage, t, r), Receiver: receiver, Args: args}
}
