package expr

import "fmt"

var axisNames = map[Axis]string{
	AxisX: "x",
	AxisY: "y",
}

func axisName(a Axis) string {
	name, ok := axisNames[a]
	if !ok {
		panic(fmt.Sprintf("expr: unknown axis %d", int(a)))
	}
	return name
}

// String methods

func (v *VarNode) String() string {
	return axisName(v.Axis)
}

func (u *UnaryNode) String() string {
	child := u.Child.String()
	switch u.Op {
	case OpCosPi:
		return fmt.Sprintf("cos(pi*%s)", child)
	case OpSinPi:
		return fmt.Sprintf("sin(pi*%s)", child)
	case OpSquare:
		return fmt.Sprintf("(%s)^2", child)
	case OpCube:
		return fmt.Sprintf("(%s)^3", child)
	default:
		panic(fmt.Sprintf("expr: unknown unary op %d", int(u.Op)))
	}
}

func (b *BinaryNode) String() string {
	left := b.Left.String()
	right := b.Right.String()
	switch b.Op {
	case OpProduct:
		return fmt.Sprintf("(%s * %s)", left, right)
	case OpAverage:
		return fmt.Sprintf("avg(%s, %s)", left, right)
	default:
		panic(fmt.Sprintf("expr: unknown binary op %d", int(b.Op)))
	}
}

// LaTeX methods

func (v *VarNode) LaTeX() string {
	return axisName(v.Axis)
}

func (u *UnaryNode) LaTeX() string {
	child := u.Child.LaTeX()
	switch u.Op {
	case OpCosPi:
		return fmt.Sprintf("\\cos{(\\pi %s)}", child)
	case OpSinPi:
		return fmt.Sprintf("\\sin{(\\pi %s)}", child)
	case OpSquare:
		return fmt.Sprintf("\\left(%s\\right)^{2}", child)
	case OpCube:
		return fmt.Sprintf("\\left(%s\\right)^{3}", child)
	default:
		panic(fmt.Sprintf("expr: unknown unary op %d", int(u.Op)))
	}
}

func (b *BinaryNode) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpProduct:
		return fmt.Sprintf("{%s} \\cdot {%s}", left, right)
	case OpAverage:
		return fmt.Sprintf("\\frac{%s + %s}{2}", left, right)
	default:
		panic(fmt.Sprintf("expr: unknown binary op %d", int(b.Op)))
	}
}
