package expr

import "fmt"

// Kind is one selectable node kind. Builders pick kinds and expand them
// into nodes with New.
type Kind int

const (
	KindProduct Kind = iota
	KindAverage
	KindCosPi
	KindSinPi
	KindSquare
	KindCube
	KindVarX
	KindVarY
)

var kindNames = map[Kind]string{
	KindProduct: "prod",
	KindAverage: "avg",
	KindCosPi:   "cos_pi",
	KindSinPi:   "sin_pi",
	KindSquare:  "square",
	KindCube:    "cube",
	KindVarX:    "x",
	KindVarY:    "y",
}

// Arity returns the number of children a node of this kind takes.
func (k Kind) Arity() int {
	switch k {
	case KindProduct, KindAverage:
		return 2
	case KindCosPi, KindSinPi, KindSquare, KindCube:
		return 1
	case KindVarX, KindVarY:
		return 0
	default:
		panic(fmt.Sprintf("expr: unknown kind %d", int(k)))
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// KindOf returns the kind of a node. It panics on a malformed node.
func KindOf(n Node) Kind {
	k, err := kindOf(n)
	if err != nil {
		panic("expr: " + err.Error())
	}
	return k
}

func kindOf(n Node) (Kind, error) {
	switch n := n.(type) {
	case *VarNode:
		switch n.Axis {
		case AxisX:
			return KindVarX, nil
		case AxisY:
			return KindVarY, nil
		}
		return 0, fmt.Errorf("%w: unknown axis %d", ErrMalformed, int(n.Axis))
	case *UnaryNode:
		switch n.Op {
		case OpCosPi:
			return KindCosPi, nil
		case OpSinPi:
			return KindSinPi, nil
		case OpSquare:
			return KindSquare, nil
		case OpCube:
			return KindCube, nil
		}
		return 0, fmt.Errorf("%w: unknown unary op %d", ErrMalformed, int(n.Op))
	case *BinaryNode:
		switch n.Op {
		case OpProduct:
			return KindProduct, nil
		case OpAverage:
			return KindAverage, nil
		}
		return 0, fmt.Errorf("%w: unknown binary op %d", ErrMalformed, int(n.Op))
	}
	return 0, fmt.Errorf("%w: %T", ErrMalformed, n)
}

// New builds a node of kind k over children. It panics if len(children)
// does not match k.Arity().
func New(k Kind, children ...Node) Node {
	if len(children) != k.Arity() {
		panic(fmt.Sprintf("expr: %s takes %d children, got %d", k, k.Arity(), len(children)))
	}
	switch k {
	case KindVarX:
		return &VarNode{Axis: AxisX}
	case KindVarY:
		return &VarNode{Axis: AxisY}
	case KindCosPi:
		return &UnaryNode{Op: OpCosPi, Child: children[0]}
	case KindSinPi:
		return &UnaryNode{Op: OpSinPi, Child: children[0]}
	case KindSquare:
		return &UnaryNode{Op: OpSquare, Child: children[0]}
	case KindCube:
		return &UnaryNode{Op: OpCube, Child: children[0]}
	case KindProduct:
		return &BinaryNode{Op: OpProduct, Left: children[0], Right: children[1]}
	default: // KindAverage; Arity already rejected unknown kinds
		return &BinaryNode{Op: OpAverage, Left: children[0], Right: children[1]}
	}
}
