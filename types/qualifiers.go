package types

// Qualifiers is a bitset of the C-style type qualifiers. It is kept
// independent of the structural Type so QualifiedType can compose the
// two orthogonally.
type Qualifiers uint8

const (
	Const Qualifiers = 1 << iota
	Volatile
	Restrict
)

func (q Qualifiers) Has(f Qualifiers) bool { return q&f != 0 }
func (q Qualifiers) With(f Qualifiers) Qualifiers { return q | f }
func (q Qualifiers) Without(f Qualifiers) Qualifiers { return q &^ f }

func (q Qualifiers) IsConst() bool    { return q.Has(Const) }
func (q Qualifiers) IsVolatile() bool { return q.Has(Volatile) }
func (q Qualifiers) IsRestrict() bool { return q.Has(Restrict) }

// Empty reports whether no qualifier is set — the shape a null-pointer
// constant's void* pointee must have (C99 6.3.2.3p1: "pointer to void,
// with no qualifiers").
func (q Qualifiers) Empty() bool { return q == 0 }
