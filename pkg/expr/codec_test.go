package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	node := &BinaryNode{
		Op:    OpProduct,
		Left:  &VarNode{Axis: AxisX},
		Right: &UnaryNode{Op: OpCosPi, Child: &VarNode{Axis: AxisY}},
	}
	data, err := Encode(node)
	require.NoError(t, err)
	require.JSONEq(t, `["prod", ["x"], ["cos_pi", ["y"]]]`, string(data))
}

func TestEncodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		node Node
	}{
		{"unknown unary", &UnaryNode{Op: UnaryOp(42), Child: &VarNode{}}},
		{"unknown binary", &BinaryNode{Op: BinaryOp(42), Left: &VarNode{}, Right: &VarNode{}}},
		{"unknown axis", &VarNode{Axis: Axis(7)}},
		{"nested", &BinaryNode{Op: OpAverage, Left: &VarNode{}, Right: &UnaryNode{Op: UnaryOp(9), Child: &VarNode{}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var data []byte
			var err error
			require.NotPanics(t, func() { data, err = Encode(tc.node) })
			require.ErrorIs(t, err, ErrMalformed)
			require.Nil(t, data)
		})
	}
}

func TestDecode(t *testing.T) {
	node, err := Decode([]byte(`["avg", ["square", ["x"]], ["cube", ["sin_pi", ["y"]]]]`))
	require.NoError(t, err)
	require.Equal(t, "avg((x)^2, (sin(pi*y))^3)", node.String())

	data, err := Encode(node)
	require.NoError(t, err)
	again, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, node.String(), again.String())
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"invalid json", `["prod", `},
		{"not array", `{"kind": "x"}`},
		{"empty", `[]`},
		{"kind not string", `[1, ["x"]]`},
		{"unknown kind", `["tan_pi", ["x"]]`},
		{"too few", `["prod", ["x"]]`},
		{"too many", `["x", ["y"]]`},
		{"nested bad", `["cos_pi", ["avg", ["x"], "y"]]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.input))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrDecode), "got %v", err)
		})
	}
}
