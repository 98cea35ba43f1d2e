package types

// Sizer resolves size/alignment/completeness questions that need target
// ABI knowledge a bare Type cannot answer on its own — the seam
// IsConstantSize crosses into Context.
// semantics.Context implements this; keeping the interface here (rather
// than importing semantics from types) avoids a package cycle since
// semantics necessarily imports types.
type Sizer interface {
	// IsIncomplete reports whether t is missing information a constant
	// expression site needs (an incomplete record/array, or an
	// unresolved typedef target).
	IsIncomplete(t QualifiedType) bool
}

// IsVoid, and the other builtin predicates below, report false for the
// null placeholder QualifiedType{} (Base == nil) that NewInitList
// carries before its target type is resolved — Kind() maps that state
// to Builtin so callers don't need a separate nil check, but none of
// these predicates may actually dereference Base without checking it
// themselves first.
func (q QualifiedType) IsVoid() bool {
	return q.Base != nil && q.Kind() == Builtin && q.Base.Builtin == Void
}

func (q QualifiedType) IsBool() bool {
	return q.Base != nil && q.Kind() == Builtin && q.Base.Builtin == Bool
}

func (q QualifiedType) IsChar() bool {
	return q.Base != nil && q.Kind() == Builtin && q.Base.Builtin.IsChar()
}

func (q QualifiedType) IsIntegerSigned() bool {
	return q.Base != nil && q.Kind() == Builtin && q.Base.Builtin.IsSignedInteger()
}

func (q QualifiedType) IsIntegerUnsigned() bool {
	return q.Base != nil && q.Kind() == Builtin && q.Base.Builtin.IsUnsignedInteger()
}

func (q QualifiedType) IsInteger() bool {
	return q.IsIntegerSigned() || q.IsIntegerUnsigned()
}

func (q QualifiedType) IsSignedInteger() bool { return q.IsIntegerSigned() }

func (q QualifiedType) IsFloating() bool {
	return q.Base != nil && q.Kind() == Builtin && q.Base.Builtin.IsFloating()
}

func (q QualifiedType) IsArithmetic() bool {
	return q.IsInteger() || q.IsFloating() || q.Kind() == Complex
}

func (q QualifiedType) IsPointer() bool { return q.Kind() == Pointer }

func (q QualifiedType) IsReference() bool { return q.Kind() == Reference }

func (q QualifiedType) IsFunction() bool { return q.Kind() == Function }

func (q QualifiedType) IsStructure() bool {
	return q.Kind() == Record && q.Base.RecordKind == Struct
}

func (q QualifiedType) IsUnion() bool {
	return q.Kind() == Record && q.Base.RecordKind == Union
}

func (q QualifiedType) IsRecord() bool { return q.Kind() == Record }

func (q QualifiedType) IsArray() bool { return q.Kind() == Array }

func (q QualifiedType) IsVector() bool { return q.Kind() == Vector }

func (q QualifiedType) IsComplex() bool { return q.Kind() == Complex }

func (q QualifiedType) IsEnum() bool { return q.Kind() == Enum }

func (q QualifiedType) IsTypedef() bool { return q.Kind() == Typedef }

// IsComplete reports whether q is not void, the null placeholder, an
// incomplete record, an incomplete array, or an incomplete enum (a
// typedef answers for its target). It does not consult a Sizer because
// completeness is a purely structural property here; variable-size
// arrays are complete but not constant-size (see IsConstantSize).
func (q QualifiedType) IsComplete() bool {
	if q.Base == nil {
		return false
	}
	switch q.Kind() {
	case Builtin:
		return q.Base.Builtin != Void
	case Record:
		return !q.Base.Incomplete
	case Enum:
		return !q.Base.EnumIncomplete
	case Array:
		return q.Base.ArraySize != IncompleteSize
	case Typedef:
		return q.Base.Aliased.IsComplete()
	default:
		return true
	}
}

// IsConstantSize reports whether q's size is known without evaluating a
// variable-length expression at runtime — C99 §6.5.3.4p2's condition
// for sizeof to be a constant expression. A variably-modified array, or
// an array whose element type is itself variably-modified, fails this.
func (q QualifiedType) IsConstantSize(s Sizer) bool {
	if !q.IsComplete() {
		return false
	}
	switch q.Kind() {
	case Array:
		if q.Base.ArraySize == VariableSize {
			return false
		}
		return q.Base.ArrayElement.IsConstantSize(s)
	case Typedef:
		return q.Base.Aliased.IsConstantSize(s)
	default:
		return !s.IsIncomplete(q)
	}
}

// HasConstFields reports whether q, or (recursively) any field of a
// record q resolves to, is const-qualified — the test
// Expr::isModifiableLvalue in original_source runs via
// RecordType::hasConstFields.
func (q QualifiedType) HasConstFields() bool {
	c := q.Canonical()
	if c.Quals.IsConst() {
		return true
	}
	if c.Kind() != Record {
		return false
	}
	for _, f := range c.Base.Fields {
		if f.Type.HasConstFields() {
			return true
		}
	}
	return false
}

// Canonical strips typedef aliases while preserving qualifiers, folding
// any qualifiers carried by the alias chain into the result. Exposed
// here as a pure structural walk since alias resolution needs no target
// ABI knowledge, even though Context.CanonicalType is the entry point
// most callers use.
func (q QualifiedType) Canonical() QualifiedType {
	quals := q.Quals
	cur := q
	for cur.Kind() == Typedef {
		quals = quals.With(cur.Base.Aliased.Quals)
		cur = cur.Base.Aliased
	}
	return QualifiedType{Base: cur.Base, Quals: quals}
}

// StructurallyEqual reports whether a and b denote the same type once
// aliases are stripped and qualifiers are ignored: equality is
// structural on the canonical (alias-free, qualifier-stripped) form.
func (a QualifiedType) StructurallyEqual(b QualifiedType) bool {
	ca, cb := a.Canonical(), b.Canonical()
	if ca.Base == cb.Base {
		return true
	}
	if ca.Base == nil || cb.Base == nil {
		return ca.Base == cb.Base
	}
	return ca.Base.structurallyEqual(cb.Base)
}

func (t *Type) structurallyEqual(o *Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Builtin:
		return t.Builtin == o.Builtin
	case Pointer, Reference:
		return t.Pointee.StructurallyEqual(o.Pointee)
	case Array:
		if t.ArraySize != o.ArraySize {
			return false
		}
		if t.ArraySize == ConstantSize && t.ArrayLen != o.ArrayLen {
			return false
		}
		return t.ArrayElement.StructurallyEqual(o.ArrayElement)
	case Function:
		if !t.Return.StructurallyEqual(o.Return) {
			return false
		}
		if t.Prototyped != o.Prototyped || t.Variadic != o.Variadic {
			return false
		}
		if len(t.Params) != len(o.Params) {
			return false
		}
		for i := range t.Params {
			if !t.Params[i].StructurallyEqual(o.Params[i]) {
				return false
			}
		}
		return true
	case Record:
		return t.RecordKind == o.RecordKind && t.RecordName == o.RecordName
	case Enum:
		return t.EnumName == o.EnumName
	case Vector, Complex:
		return t.VectorLength == o.VectorLength && t.ElementType.StructurallyEqual(o.ElementType)
	default:
		return false
	}
}
