package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func assertEval(t *testing.T, node Node, x, y float64, expected float64, tol float64) {
	t.Helper()
	got := node.Eval(x, y)
	if math.Abs(got-expected) > tol {
		t.Errorf("Eval(%v, %v) = %v, want %v (tol=%v)", x, y, got, expected, tol)
	}
}

func TestVarNode(t *testing.T) {
	x := &VarNode{Axis: AxisX}
	y := &VarNode{Axis: AxisY}
	assertEval(t, x, -0.5, 0.75, -0.5, 0)
	assertEval(t, y, 0.1, 0.02, 0.02, 0)

	if x.String() != "x" {
		t.Errorf("VarNode.String() = %q, want \"x\"", x.String())
	}
	if x.NodeCount() != 1 {
		t.Errorf("VarNode.NodeCount() = %d, want 1", x.NodeCount())
	}
	if x.Depth() != 0 {
		t.Errorf("VarNode.Depth() = %d, want 0", x.Depth())
	}
}

func TestUnaryOps(t *testing.T) {
	x := &VarNode{Axis: AxisX}

	assertEval(t, &UnaryNode{Op: OpCosPi, Child: x}, 0, 0, 1, 1e-15)
	assertEval(t, &UnaryNode{Op: OpCosPi, Child: x}, 1, 0, -1, 1e-15)
	assertEval(t, &UnaryNode{Op: OpSinPi, Child: x}, 0.5, 0, 1, 1e-15)
	assertEval(t, &UnaryNode{Op: OpSinPi, Child: x}, -0.5, 0, -1, 1e-15)
	assertEval(t, &UnaryNode{Op: OpSquare, Child: x}, -0.5, 0, 0.25, 0)
	assertEval(t, &UnaryNode{Op: OpCube, Child: x}, -0.5, 0, -0.125, 0)
}

func TestBinaryOps(t *testing.T) {
	x := &VarNode{Axis: AxisX}
	y := &VarNode{Axis: AxisY}

	prod := &BinaryNode{Op: OpProduct, Left: x, Right: y}
	assertEval(t, prod, 0.5, -0.5, -0.25, 0)

	avg := &BinaryNode{Op: OpAverage, Left: x, Right: y}
	assertEval(t, avg, 0.5, -0.25, 0.125, 0)
	assertEval(t, avg, 1, 1, 1, 0)
}

func TestNested(t *testing.T) {
	// cos(pi * avg(x, y^2))
	node := &UnaryNode{Op: OpCosPi, Child: &BinaryNode{
		Op:    OpAverage,
		Left:  &VarNode{Axis: AxisX},
		Right: &UnaryNode{Op: OpSquare, Child: &VarNode{Axis: AxisY}},
	}}
	want := math.Cos(math.Pi * (0.5 * (0.3 + 0.16)))
	assertEval(t, node, 0.3, -0.4, want, 1e-12)

	require.Equal(t, 3, node.Depth())
	require.Equal(t, 5, node.NodeCount())
	require.Equal(t, 2, MinLeafDepth(node))
	require.Equal(t, "cos(pi*avg(x, (y)^2))", node.String())
}

func TestEvalIdempotent(t *testing.T) {
	node := &BinaryNode{
		Op:    OpProduct,
		Left:  &UnaryNode{Op: OpSinPi, Child: &VarNode{Axis: AxisX}},
		Right: &UnaryNode{Op: OpCube, Child: &VarNode{Axis: AxisY}},
	}
	a := Evaluate(node, 0.123, -0.987)
	b := Evaluate(node, 0.123, -0.987)
	require.Equal(t, math.Float64bits(a), math.Float64bits(b))
}

func TestEvalOutOfRangeDoesNotPanic(t *testing.T) {
	node := &UnaryNode{Op: OpCube, Child: &BinaryNode{
		Op: OpProduct, Left: &VarNode{Axis: AxisX}, Right: &VarNode{Axis: AxisY},
	}}
	require.NotPanics(t, func() {
		Evaluate(node, 1e6, math.Inf(1))
		Evaluate(node, math.NaN(), 3)
	})
}

func TestEvalUnknownOpPanics(t *testing.T) {
	require.Panics(t, func() {
		(&UnaryNode{Op: UnaryOp(42), Child: &VarNode{}}).Eval(0, 0)
	})
	require.Panics(t, func() {
		(&BinaryNode{Op: BinaryOp(42), Left: &VarNode{}, Right: &VarNode{}}).Eval(0, 0)
	})
	require.Panics(t, func() {
		(&VarNode{Axis: Axis(7)}).Eval(0, 0)
	})
}

func TestPrintUnknownOpPanics(t *testing.T) {
	bad := []Node{
		&UnaryNode{Op: UnaryOp(42), Child: &VarNode{}},
		&BinaryNode{Op: BinaryOp(42), Left: &VarNode{}, Right: &VarNode{}},
		&VarNode{Axis: Axis(7)},
	}
	for _, n := range bad {
		require.Panics(t, func() { _ = n.String() })
		require.Panics(t, func() { _ = n.LaTeX() })
		require.Panics(t, func() { KindOf(n) })
	}
}

func TestKindRoundTrip(t *testing.T) {
	leaf := &VarNode{Axis: AxisX}
	for k := KindProduct; k <= KindVarY; k++ {
		children := make([]Node, k.Arity())
		for i := range children {
			children[i] = leaf
		}
		n := New(k, children...)
		require.Equal(t, k, KindOf(n), "kind %s", k)
	}
}

func TestNewWrongArityPanics(t *testing.T) {
	require.Panics(t, func() { New(KindProduct, &VarNode{}) })
	require.Panics(t, func() { New(KindVarX, &VarNode{}) })
	require.Panics(t, func() { Kind(99).Arity() })
}

func TestLaTeX(t *testing.T) {
	node := &BinaryNode{
		Op:    OpProduct,
		Left:  &UnaryNode{Op: OpSinPi, Child: &VarNode{Axis: AxisX}},
		Right: &VarNode{Axis: AxisY},
	}
	require.Equal(t, `{\sin{(\pi x)}} \cdot {y}`, node.LaTeX())
}
