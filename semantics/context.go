// Package semantics implements the ambient environment (Context) and
// the semantic query engine (SemanticQueries) that operate over the
// typed expression AST in package ast: lvalue classification,
// constant-expression predicates, integer-constant-expression
// evaluation, null-pointer-constant recognition, and builtin type
// classification — C99 §6.3/§6.5/§6.6.
package semantics

import (
	"go.uber.org/zap"

	"cfrontend/loc"
	"cfrontend/types"

	"github.com/pkg/errors"
)

// Sentinel errors wrapped (with a loc.Range attached via errors.Wrapf)
// whenever a size/alignment/compatibility query cannot be answered.
// Grounded on github.com/pkg/errors' annotate-and-propagate idiom
// rather than bare strings.
var (
	ErrIncompleteType    = errors.New("incomplete type has no size")
	ErrVariablyModified  = errors.New("variably-modified type has no constant size")
	ErrUnknownBuiltin    = errors.New("unrecognized builtin type kind")
)

// TargetConfig carries the target-ABI numbers Context needs to answer
// size/alignment questions, keyed by builtin kind rather than
// hard-coded into the query logic, so one Context implementation serves
// more than one target.
type TargetConfig struct {
	// BuiltinSizeBits/BuiltinAlignBits are indexed by types.BuiltinKind.
	BuiltinSizeBits  map[types.BuiltinKind]uint32
	BuiltinAlignBits map[types.BuiltinKind]uint32

	PointerSizeBits  uint32
	PointerAlignBits uint32

	// CharIsSigned records the target's default signedness of plain
	// `char`, which C99 leaves implementation-defined. No query in this
	// package reads it: the types predicates always treat plain char as
	// signed.
	CharIsSigned bool
}

// DefaultTargetConfig returns an LP64 sizeof/alignment table (8-byte
// pointers, 4-byte int, etc).
func DefaultTargetConfig() TargetConfig {
	bits := func(bytes uint32) uint32 { return bytes * 8 }
	return TargetConfig{
		BuiltinSizeBits: map[types.BuiltinKind]uint32{
			types.Void:             0,
			types.Bool:             bits(1),
			types.Char:             bits(1),
			types.SignedChar:       bits(1),
			types.UnsignedChar:     bits(1),
			types.Short:            bits(2),
			types.UnsignedShort:    bits(2),
			types.Int:              bits(4),
			types.UnsignedInt:      bits(4),
			types.Long:             bits(8),
			types.UnsignedLong:     bits(8),
			types.LongLong:         bits(8),
			types.UnsignedLongLong: bits(8),
			types.Float:            bits(4),
			types.Double:           bits(8),
			types.LongDouble:       bits(16),
		},
		BuiltinAlignBits: map[types.BuiltinKind]uint32{
			types.Void:             0,
			types.Bool:             bits(1),
			types.Char:             bits(1),
			types.SignedChar:       bits(1),
			types.UnsignedChar:     bits(1),
			types.Short:            bits(2),
			types.UnsignedShort:    bits(2),
			types.Int:              bits(4),
			types.UnsignedInt:      bits(4),
			types.Long:             bits(8),
			types.UnsignedLong:     bits(8),
			types.LongLong:         bits(8),
			types.UnsignedLongLong: bits(8),
			types.Float:            bits(4),
			types.Double:           bits(8),
			types.LongDouble:       bits(16),
		},
		PointerSizeBits:  bits(8),
		PointerAlignBits: bits(8),
		CharIsSigned:     true,
	}
}

// Context owns the arena, the type intern table, and the target
// configuration needed to answer size/alignment/compatibility
// questions. It is the single ambient environment threaded through
// every semantic query in this package.
type Context struct {
	target TargetConfig
	intern *internTable
	log    *zap.Logger

	// lastErr records the most recent size/align/compat failure,
	// giving callers that only need a boolean result a side-channel
	// to the wrapped error via LastSizeError when they want one.
	lastErr error

	overflow OverflowObserver

	typeArena  *Arena[types.Type]
	fieldArena *Arena[types.Field]
}

// NewContext builds a Context over the given TargetConfig. A nil
// *zap.Logger defaults to zap.NewNop().
func NewContext(target TargetConfig, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	return &Context{
		target:     target,
		intern:     newInternTable(),
		log:        log,
		overflow:   NoopOverflowObserver{},
		typeArena:  NewArena[types.Type](),
		fieldArena: NewArena[types.Field](),
	}
}

// AllocType arena-allocates a copy of t and returns a stable handle to
// it, valid for the lifetime of c. Construction sites that build a
// *types.Type to hand to Intern go through here instead of a bare `&t`
// so every unintered Type still traces back to one allocator per
// Context; Go methods can't themselves be generic, so this and
// AllocField stand in for a single allocate<T> on Context, one per
// element type the core actually needs arena-backed.
func (c *Context) AllocType(t types.Type) *types.Type {
	return c.typeArena.Alloc(t)
}

// AllocField arena-allocates a copy of f, the same way AllocType does
// for record/union field lists built one Field at a time.
func (c *Context) AllocField(f types.Field) *types.Field {
	return c.fieldArena.Alloc(f)
}

// SetOverflowObserver installs the hook EvaluateIntegerConstant calls
// when an arithmetic operation wraps arbitrary-precision bounds. The
// hook is purely observational: installing one never changes the
// evaluator's own return value.
func (c *Context) SetOverflowObserver(o OverflowObserver) {
	if o == nil {
		o = NoopOverflowObserver{}
	}
	c.overflow = o
}

// Intern returns the canonical, deduplicated *types.Type for t's
// structure, so two QualifiedTypes built independently but
// structurally identical compare equal by pointer after interning. The
// canonical copy this allocates on first sight lives in c's type
// arena for c's lifetime.
func (c *Context) Intern(t *types.Type) *types.Type {
	return c.intern.Intern(c.typeArena, t)
}

// LastSizeError returns the most recently wrapped size/alignment/
// compatibility failure, or nil if the last such query succeeded.
func (c *Context) LastSizeError() error {
	return c.lastErr
}

func (c *Context) fail(err error, r loc.Range) error {
	wrapped := errors.Wrapf(err, "at %s", r.Start.String())
	c.lastErr = wrapped
	c.log.Debug("semantics: size query failed", zap.Error(wrapped))
	return wrapped
}

// TypeSize returns t's size in bits, failing with ErrIncompleteType or
// ErrVariablyModified when t is incomplete or variably-modified at a
// constant-expression site.
func (c *Context) TypeSize(t types.QualifiedType, r loc.Range) (uint32, error) {
	if !t.IsConstantSize(c) {
		if !t.IsComplete() {
			return 0, c.fail(ErrIncompleteType, r)
		}
		return 0, c.fail(ErrVariablyModified, r)
	}
	c.lastErr = nil
	return c.sizeOf(t), nil
}

// TypeAlign returns t's required alignment in bits, under the same
// failure conditions as TypeSize.
func (c *Context) TypeAlign(t types.QualifiedType, r loc.Range) (uint32, error) {
	if !t.IsConstantSize(c) {
		if !t.IsComplete() {
			return 0, c.fail(ErrIncompleteType, r)
		}
		return 0, c.fail(ErrVariablyModified, r)
	}
	c.lastErr = nil
	return c.alignOf(t), nil
}

func (c *Context) sizeOf(t types.QualifiedType) uint32 {
	switch t.Kind() {
	case types.Builtin:
		return c.target.BuiltinSizeBits[t.Base.Builtin]
	case types.Pointer, types.Reference:
		return c.target.PointerSizeBits
	case types.Array:
		return uint32(t.Base.ArrayLen) * c.sizeOf(t.Base.ArrayElement)
	case types.Enum:
		return c.sizeOf(t.Base.EnumUnderlying)
	case types.Vector, types.Complex:
		return uint32(t.Base.VectorLength) * c.sizeOf(t.Base.ElementType)
	case types.Typedef:
		return c.sizeOf(t.Base.Aliased)
	case types.Record:
		var total uint32
		for _, f := range t.Base.Fields {
			total += c.sizeOf(f.Type)
		}
		return total
	default:
		return 0
	}
}

func (c *Context) alignOf(t types.QualifiedType) uint32 {
	switch t.Kind() {
	case types.Builtin:
		return c.target.BuiltinAlignBits[t.Base.Builtin]
	case types.Pointer, types.Reference:
		return c.target.PointerAlignBits
	case types.Array:
		return c.alignOf(t.Base.ArrayElement)
	case types.Enum:
		return c.alignOf(t.Base.EnumUnderlying)
	case types.Vector, types.Complex:
		return c.alignOf(t.Base.ElementType)
	case types.Typedef:
		return c.alignOf(t.Base.Aliased)
	case types.Record:
		var max uint32
		for _, f := range t.Base.Fields {
			if a := c.alignOf(f.Type); a > max {
				max = a
			}
		}
		return max
	default:
		return 0
	}
}

// IsIncomplete implements types.Sizer: a type fails IsConstantSize
// when it is not structurally complete per types.QualifiedType.IsComplete,
// or (for a builtin) its size table has no entry — the only additional
// target-dependent piece of "incomplete" a bare Type can't answer
// itself.
func (c *Context) IsIncomplete(t types.QualifiedType) bool {
	if !t.IsComplete() {
		return true
	}
	if t.Kind() == types.Builtin {
		_, ok := c.target.BuiltinSizeBits[t.Base.Builtin]
		return !ok
	}
	return false
}

// CanonicalType strips aliases but preserves qualifiers. Delegates to
// the purely structural types.QualifiedType.Canonical since alias
// resolution needs no target ABI knowledge.
func (c *Context) CanonicalType(t types.QualifiedType) types.QualifiedType {
	return t.Canonical()
}

// TypesAreCompatible implements the language-level compatibility
// TypesCompatible nodes precompute an answer for: structural equality
// on the canonical, qualifier-stripped form.
func (c *Context) TypesAreCompatible(a, b types.QualifiedType) bool {
	return a.StructurallyEqual(b)
}
