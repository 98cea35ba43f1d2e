package semantics

import (
	"cfrontend/cval"
	"cfrontend/loc"
	"cfrontend/types"
)

func newTestContext() *Context {
	return NewContext(DefaultTargetConfig(), nil)
}

func int32Type() types.QualifiedType {
	return types.QualifiedType{Base: &types.Type{Kind: types.Builtin, Builtin: types.Int}}
}

func uint32Type() types.QualifiedType {
	return types.QualifiedType{Base: &types.Type{Kind: types.Builtin, Builtin: types.UnsignedInt}}
}

func constInt32Type() types.QualifiedType {
	return int32Type().WithQualifiers(types.Const)
}

func voidType() types.QualifiedType {
	return types.VoidType()
}

func voidPointerType() types.QualifiedType {
	return types.QualifiedType{Base: &types.Type{Kind: types.Pointer, Pointee: voidType()}}
}

func volatileVoidPointerType() types.QualifiedType {
	return types.QualifiedType{Base: &types.Type{Kind: types.Pointer, Pointee: voidType().WithQualifiers(types.Volatile)}}
}

func functionType() types.QualifiedType {
	return types.QualifiedType{Base: &types.Type{Kind: types.Function, Return: int32Type()}}
}

func unionType(name string, fields ...types.Field) types.QualifiedType {
	return types.QualifiedType{Base: &types.Type{Kind: types.Record, RecordKind: types.Union, RecordName: name, Fields: fields}}
}

func structType(name string, fields ...types.Field) types.QualifiedType {
	return types.QualifiedType{Base: &types.Type{Kind: types.Record, RecordKind: types.Struct, RecordName: name, Fields: fields}}
}

func r1() loc.Range {
	l := loc.Location{File: "t.c", Line: 1}
	return loc.NewRange(l, l)
}

func loc0() loc.Location {
	return loc.Location{File: "t.c", Line: 1}
}

func variablyModifiedArrayType() types.QualifiedType {
	return types.QualifiedType{Base: &types.Type{
		Kind: types.Array, ArraySize: types.VariableSize, ArrayElement: int32Type(),
	}}
}

type observerFunc func(op string, result cval.Int)

func (f observerFunc) ObserveOverflow(op string, r loc.Range, result cval.Int) {
	f(op, result)
}
