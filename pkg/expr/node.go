package expr

// Node is the interface for all expression tree nodes.
type Node interface {
	Eval(x, y float64) float64
	String() string
	LaTeX() string
	NodeCount() int
	Depth() int
}

// Axis identifies the coordinate a VarNode reads.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// UnaryOp identifies a unary operation.
type UnaryOp int

const (
	OpCosPi UnaryOp = iota // cos(pi*a)
	OpSinPi                // sin(pi*a)
	OpSquare
	OpCube
)

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpProduct BinaryOp = iota
	OpAverage
)

// VarNode represents the variable x or y.
type VarNode struct {
	Axis Axis
}

// UnaryNode applies a unary operation to a child expression.
type UnaryNode struct {
	Op    UnaryOp
	Child Node
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right Node
}
