package ast

// UnaryOpcode enumerates the compact set of unary operators, mirroring
// original_source/AST/Expr.cpp's UnaryOperator::Opcode and its
// getOpcodeStr/isPostfix helpers.
type UnaryOpcode int

const (
	PostInc UnaryOpcode = iota
	PostDec
	PreInc
	PreDec
	AddrOf
	Deref
	Plus
	Minus
	BitNot
	LogicalNot
	Real
	Imag
	SizeOf
	AlignOf
	Extension
	OffsetOfBuiltin
)

type unaryMeta struct {
	symbol   string
	postfix  bool
	sizeOf   bool
}

var unaryTable = map[UnaryOpcode]unaryMeta{
	PostInc:         {"++", true, false},
	PostDec:         {"--", true, false},
	PreInc:          {"++", false, false},
	PreDec:          {"--", false, false},
	AddrOf:          {"&", false, false},
	Deref:           {"*", false, false},
	Plus:            {"+", false, false},
	Minus:           {"-", false, false},
	BitNot:          {"~", false, false},
	LogicalNot:      {"!", false, false},
	Real:            {"__real", false, false},
	Imag:            {"__imag", false, false},
	SizeOf:          {"sizeof", false, true},
	AlignOf:         {"alignof", false, true},
	Extension:       {"__extension__", false, false},
	OffsetOfBuiltin: {"__builtin_offsetof", false, false},
}

// UnaryOpcodeSymbol returns op's punctuation or keyword spelling. Panics
// on an opcode outside the closed set, matching the original's
// assert(0 && "Unknown unary operator").
func UnaryOpcodeSymbol(op UnaryOpcode) string {
	m, ok := unaryTable[op]
	if !ok {
		panic("ast: unknown unary opcode")
	}
	return m.symbol
}

// IsPostfix is true exactly for PostInc and PostDec.
func IsPostfix(op UnaryOpcode) bool {
	return unaryTable[op].postfix
}

// IsSizeOfAlignOfOp is true for SizeOf and AlignOf.
func IsSizeOfAlignOfOp(op UnaryOpcode) bool {
	return unaryTable[op].sizeOf
}

// BinaryOpcode enumerates the binary/assignment/comma operators,
// mirroring BinaryOperator::Opcode and getOpcodeStr.
type BinaryOpcode int

const (
	Mul BinaryOpcode = iota
	Div
	Rem
	Add
	Sub
	Shl
	Shr
	LT
	GT
	LE
	GE
	EQ
	NE
	And
	Xor
	Or
	LAnd
	LOr
	Assign
	MulAssign
	DivAssign
	RemAssign
	AddAssign
	SubAssign
	ShlAssign
	ShrAssign
	AndAssign
	XorAssign
	OrAssign
	Comma
)

type binaryMeta struct {
	symbol        string
	assignment    bool
	logical       bool
	shortCircuits bool
}

var binaryTable = map[BinaryOpcode]binaryMeta{
	Mul:       {"*", false, false, false},
	Div:       {"/", false, false, false},
	Rem:       {"%", false, false, false},
	Add:       {"+", false, false, false},
	Sub:       {"-", false, false, false},
	Shl:       {"<<", false, false, false},
	Shr:       {">>", false, false, false},
	LT:        {"<", false, false, false},
	GT:        {">", false, false, false},
	LE:        {"<=", false, false, false},
	GE:        {">=", false, false, false},
	EQ:        {"==", false, false, false},
	NE:        {"!=", false, false, false},
	And:       {"&", false, false, false},
	Xor:       {"^", false, false, false},
	Or:        {"|", false, false, false},
	LAnd:      {"&&", false, true, true},
	LOr:       {"||", false, true, true},
	Assign:    {"=", true, false, false},
	MulAssign: {"*=", true, false, false},
	DivAssign: {"/=", true, false, false},
	RemAssign: {"%=", true, false, false},
	AddAssign: {"+=", true, false, false},
	SubAssign: {"-=", true, false, false},
	ShlAssign: {"<<=", true, false, false},
	ShrAssign: {">>=", true, false, false},
	AndAssign: {"&=", true, false, false},
	XorAssign: {"^=", true, false, false},
	OrAssign:  {"|=", true, false, false},
	Comma:     {",", false, false, false},
}

// BinaryOpcodeSymbol returns op's punctuation spelling. Injective over
// the closed set of binary opcodes.
func BinaryOpcodeSymbol(op BinaryOpcode) string {
	m, ok := binaryTable[op]
	if !ok {
		panic("ast: unknown binary opcode")
	}
	return m.symbol
}

// IsAssignment reports whether op performs a store into its LHS, either
// directly (Assign) or as a compound assignment.
func IsAssignment(op BinaryOpcode) bool {
	return binaryTable[op].assignment
}

// IsLogical reports whether op is && or ||.
func IsLogical(op BinaryOpcode) bool {
	return binaryTable[op].logical
}

// IsShortCircuit reports whether op only conditionally evaluates its
// RHS. Currently identical to IsLogical (&&/||), kept distinct because
// the evaluator's short-circuit adjustment of isEvaluated is keyed off
// this property, not off "logical"-ness in general.
func IsShortCircuit(op BinaryOpcode) bool {
	return binaryTable[op].shortCircuits
}
