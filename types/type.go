package types

// Type is the structural, alias-resolvable type a QualifiedType refers
// to. It is a single tagged struct with a Kind discriminator rather
// than one struct per shape, the same tagged-variant idiom the
// expression AST uses — C's type grammar is likewise a closed set.
//
// A *Type is meant to be produced and owned by a Context's intern
// table (see semantics.Context.Intern); code outside this package
// should treat it as an opaque, comparable-by-identity handle once
// interned. Nothing in this package requires interning — the predicates
// below work on any *Type, interned or not — but equality of two
// QualifiedTypes is only cheap (pointer equality) after interning.
type Type struct {
	Kind Kind

	// Builtin is meaningful when Kind == Builtin.
	Builtin BuiltinKind

	// Pointee is meaningful when Kind is Pointer or Reference.
	Pointee QualifiedType

	// Array fields, meaningful when Kind == Array.
	ArraySize     ArraySizeKind
	ArrayLen      int64 // valid only when ArraySize == ConstantSize
	ArrayElement  QualifiedType

	// Function fields, meaningful when Kind == Function.
	Return      QualifiedType
	Params      []QualifiedType
	Prototyped  bool
	Variadic    bool

	// Record fields, meaningful when Kind == Record.
	RecordKind RecordKind
	RecordName string
	Fields     []Field
	Incomplete bool // forward-declared, no fields yet

	// Enum fields, meaningful when Kind == Enum.
	EnumName      string
	EnumUnderlying QualifiedType
	EnumIncomplete bool

	// Vector/Complex fields.
	ElementType  QualifiedType
	VectorLength int

	// Typedef fields, meaningful when Kind == Typedef.
	TypedefName string
	Aliased     QualifiedType
}

// Field is a named, qualified member of a record type.
type Field struct {
	Name string
	Type QualifiedType
}

// QualifiedType pairs a structural Type with an independent qualifier
// set.
type QualifiedType struct {
	Base  *Type
	Quals Qualifiers
}

// Unqualified returns q with all qualifiers stripped, keeping the same
// underlying Type.
func (q QualifiedType) Unqualified() QualifiedType {
	return QualifiedType{Base: q.Base, Quals: 0}
}

// WithQualifiers returns q with quals merged in.
func (q QualifiedType) WithQualifiers(quals Qualifiers) QualifiedType {
	return QualifiedType{Base: q.Base, Quals: q.Quals.With(quals)}
}

func (q QualifiedType) Kind() Kind {
	if q.Base == nil {
		return Builtin
	}
	return q.Base.Kind
}

// Null reports whether q is the placeholder null type an InitList
// carries before its target type is known.
func (q QualifiedType) Null() bool {
	return q.Base == nil
}

// VoidType returns an uninterned, unqualified void type. Callers that
// need canonical/interned void should go through Context.Intern
// instead; this helper exists for constructing literal QualifiedTypes
// in tests and for spots (like InitList's placeholder) that need a
// throwaway value.
func VoidType() QualifiedType {
	return QualifiedType{Base: &Type{Kind: Builtin, Builtin: Void}}
}
