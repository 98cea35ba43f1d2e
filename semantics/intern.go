package semantics

import (
	"fmt"
	"strings"

	"cfrontend/types"
)

// internTable deduplicates structurally-identical types to a single
// *types.Type so that, after interning, QualifiedType equality can be
// pointer equality. A flat generic map wrapper over a structural key,
// with no scope stack since type interning has no lexical nesting.
type internTable struct {
	byKey map[string]*types.Type
}

func newInternTable() *internTable {
	return &internTable{byKey: make(map[string]*types.Type)}
}

// Intern returns the canonical *types.Type for t, allocating a fresh
// arena-backed copy on first sight and returning the existing one on
// every subsequent structurally-equal request. Routing the first-sight
// copy through arena keeps every canonical *types.Type this table ever
// hands out owned by one allocator per Context, rather than by
// whatever scratch allocation the caller happened to build t with.
func (tbl *internTable) Intern(arena *Arena[types.Type], t *types.Type) *types.Type {
	if t == nil {
		return nil
	}
	key := typeKey(t)
	if existing, ok := tbl.byKey[key]; ok {
		return existing
	}
	stored := arena.Alloc(*t)
	tbl.byKey[key] = stored
	return stored
}

func typeKey(t *types.Type) string {
	if t == nil {
		return "<nil>"
	}
	var b strings.Builder
	writeTypeKey(&b, t)
	return b.String()
}

func writeTypeKey(b *strings.Builder, t *types.Type) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	fmt.Fprintf(b, "k%d(", t.Kind)
	switch t.Kind {
	case types.Builtin:
		fmt.Fprintf(b, "%d", t.Builtin)
	case types.Pointer, types.Reference:
		writeQualKey(b, t.Pointee)
	case types.Array:
		fmt.Fprintf(b, "%d,%d,", t.ArraySize, t.ArrayLen)
		writeQualKey(b, t.ArrayElement)
	case types.Function:
		writeQualKey(b, t.Return)
		fmt.Fprintf(b, ",%t,%t,[", t.Prototyped, t.Variadic)
		for _, p := range t.Params {
			writeQualKey(b, p)
			b.WriteString(";")
		}
		b.WriteString("]")
	case types.Record:
		fmt.Fprintf(b, "%d,%s,%t,[", t.RecordKind, t.RecordName, t.Incomplete)
		for _, f := range t.Fields {
			b.WriteString(f.Name)
			b.WriteString(":")
			writeQualKey(b, f.Type)
			b.WriteString(";")
		}
		b.WriteString("]")
	case types.Enum:
		fmt.Fprintf(b, "%s,%t,", t.EnumName, t.EnumIncomplete)
		writeQualKey(b, t.EnumUnderlying)
	case types.Vector, types.Complex:
		fmt.Fprintf(b, "%d,", t.VectorLength)
		writeQualKey(b, t.ElementType)
	case types.Typedef:
		b.WriteString(t.TypedefName)
		b.WriteString(",")
		writeQualKey(b, t.Aliased)
	}
	b.WriteString(")")
}

func writeQualKey(b *strings.Builder, q types.QualifiedType) {
	fmt.Fprintf(b, "q%d:", q.Quals)
	writeTypeKey(b, q.Base)
}
