package ast

import "cfrontend/utils"

// WalkPreorder visits root and every descendant reachable through
// Children in preorder, calling visit once per node. It is iterative,
// backed by utils.Stack[Expr], so a pathologically deep expression tree
// (a long chain of parenthesizations, say) doesn't grow the Go call
// stack the way a recursive walk would.
func WalkPreorder(root Expr, visit func(Expr)) {
	stack := utils.NewStack[Expr]()
	stack.Push(root)
	for stack.Size() > 0 {
		n := stack.Pop()
		visit(n)
		children := Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(children[i])
		}
	}
}
