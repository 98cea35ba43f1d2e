package ast

import "cfrontend/types"

func int32Type() types.QualifiedType {
	return types.QualifiedType{Base: &types.Type{Kind: types.Builtin, Builtin: types.Int}}
}
