package pool

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/recursive_art/pkg/expr"
)

// scriptedSource always picks index pick and records how many candidates
// each choice was offered.
type scriptedSource struct {
	pick    int
	offered []int
}

func (s *scriptedSource) Intn(n int) int {
	s.offered = append(s.offered, n)
	if s.pick >= n {
		return n - 1
	}
	return s.pick
}

func TestClassicPool_DepthBounds(t *testing.T) {
	p, err := Get("classic")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))

	for minDepth := 0; minDepth <= 5; minDepth++ {
		for maxDepth := minDepth; maxDepth <= 7; maxDepth++ {
			for i := 0; i < 200; i++ {
				tree := Build(p, rng, minDepth, maxDepth)
				if tree.Depth() > maxDepth {
					t.Fatalf("Build(%d, %d) depth %d: %s", minDepth, maxDepth, tree.Depth(), tree)
				}
				if expr.MinLeafDepth(tree) < minDepth {
					t.Fatalf("Build(%d, %d) leaf at depth %d: %s", minDepth, maxDepth, expr.MinLeafDepth(tree), tree)
				}
			}
		}
	}
}

func TestClassicPool_EvalInRange(t *testing.T) {
	p, err := Get("classic")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		tree := Build(p, rng, 3, 9)
		for j := 0; j < 20; j++ {
			x := rng.Float64()*2 - 1
			y := rng.Float64()*2 - 1
			v := expr.Evaluate(tree, x, y)
			if v < -1 || v > 1 {
				t.Fatalf("Eval(%v, %v) = %v out of [-1, 1]: %s", x, y, v, tree)
			}
		}
		// Corners hit the extremes of every kind.
		for _, c := range [][2]float64{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
			v := expr.Evaluate(tree, c[0], c[1])
			require.True(t, v >= -1 && v <= 1, "corner %v = %v: %s", c, v, tree)
		}
	}
}

func TestTrigPool_OnlyTrigKinds(t *testing.T) {
	p, err := Get("trig")
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	tree := Build(p, rng, 6, 8)

	var walk func(n expr.Node)
	walk = func(n expr.Node) {
		switch k := expr.KindOf(n); k {
		case expr.KindSquare, expr.KindCube:
			t.Fatalf("trig pool produced %s", k)
		}
		switch n := n.(type) {
		case *expr.UnaryNode:
			walk(n.Child)
		case *expr.BinaryNode:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(tree)
}

func TestBuild_SelectionPriority(t *testing.T) {
	p := &ClassicPool{}

	// Index 0 of every candidate set is Product, so with min > 0 the tree is
	// a full binary tree of products down to max, where leaves are forced.
	src := &scriptedSource{pick: 0}
	tree := Build(p, src, 2, 2)
	require.Equal(t, "((x * x) * (x * x))", tree.String())
	require.Equal(t, []int{6, 6, 2, 2, 6, 2, 2}, src.offered)

	// With min exhausted and max left, the middle set offers all eight kinds.
	src = &scriptedSource{pick: 7}
	tree = Build(p, src, 0, 3)
	require.Equal(t, "y", tree.String())
	require.Equal(t, []int{8}, src.offered)
}

func TestBuild_ZeroDepthIsLeaf(t *testing.T) {
	p := &ClassicPool{}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		tree := Build(p, rng, 0, 0)
		require.Equal(t, 0, tree.Depth())
		_, ok := tree.(*expr.VarNode)
		require.True(t, ok)
	}
}

func TestBuild_MinAboveMax(t *testing.T) {
	p := &ClassicPool{}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 50; i++ {
		tree := Build(p, rng, 4, 2)
		require.GreaterOrEqual(t, expr.MinLeafDepth(tree), 4)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	p := &ClassicPool{}
	a := Build(p, rand.New(rand.NewSource(99)), 7, 9)
	b := Build(p, rand.New(rand.NewSource(99)), 7, 9)
	require.Equal(t, a.String(), b.String())
}

func TestPoolRegistry(t *testing.T) {
	require.Equal(t, []string{"classic", "trig"}, Names())

	_, err := Get("nonexistent")
	require.Error(t, err)
}
