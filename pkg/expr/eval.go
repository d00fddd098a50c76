package expr

import (
	"fmt"
	"math"
)

// Evaluate returns the value of n at (x, y). For x, y in [-1, 1] the result
// stays in [-1, 1].
func Evaluate(n Node, x, y float64) float64 {
	return n.Eval(x, y)
}

// Eval for VarNode returns the coordinate selected by Axis.
func (v *VarNode) Eval(x, y float64) float64 {
	switch v.Axis {
	case AxisX:
		return x
	case AxisY:
		return y
	default:
		panic(fmt.Sprintf("expr: unknown axis %d", int(v.Axis)))
	}
}

// Eval for UnaryNode dispatches on op.
func (u *UnaryNode) Eval(x, y float64) float64 {
	a := u.Child.Eval(x, y)

	switch u.Op {
	case OpCosPi:
		return math.Cos(math.Pi * a)
	case OpSinPi:
		return math.Sin(math.Pi * a)
	case OpSquare:
		return a * a
	case OpCube:
		return a * a * a
	default:
		panic(fmt.Sprintf("expr: unknown unary op %d", int(u.Op)))
	}
}

// Eval for BinaryNode dispatches on op.
func (b *BinaryNode) Eval(x, y float64) float64 {
	left := b.Left.Eval(x, y)
	right := b.Right.Eval(x, y)

	switch b.Op {
	case OpProduct:
		return left * right
	case OpAverage:
		return 0.5 * (left + right)
	default:
		panic(fmt.Sprintf("expr: unknown binary op %d", int(b.Op)))
	}
}
