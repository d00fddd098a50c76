package expr

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrDecode is returned for input that is not a well-formed expression.
	ErrDecode = errors.New("malformed expression")
	// ErrMalformed is returned when encoding a node with an unknown op or axis.
	ErrMalformed = errors.New("malformed node")
)

var kindsByName = map[string]Kind{}

func init() {
	for k, name := range kindNames {
		kindsByName[name] = k
	}
}

// Encode renders n in nested-list form: each node is a JSON array whose
// first element names the kind and whose remaining elements are the
// children, e.g. ["prod", ["x"], ["cos_pi", ["y"]]].
func Encode(n Node) ([]byte, error) {
	list, err := MarshalList(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(list)
}

// MarshalList returns the nested-list form of n for embedding into larger
// JSON documents.
func MarshalList(n Node) ([]any, error) {
	kind, err := kindOf(n)
	if err != nil {
		return nil, err
	}
	list := []any{kind.String()}
	var children []Node
	switch n := n.(type) {
	case *UnaryNode:
		children = []Node{n.Child}
	case *BinaryNode:
		children = []Node{n.Left, n.Right}
	}
	for _, child := range children {
		sub, err := MarshalList(child)
		if err != nil {
			return nil, err
		}
		list = append(list, sub)
	}
	return list, nil
}

// Decode parses the nested-list form produced by Encode.
func Decode(data []byte) (Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrDecode)
	}
	return DecodeResult(gjson.ParseBytes(data))
}

// DecodeResult decodes an already parsed nested list.
func DecodeResult(r gjson.Result) (Node, error) {
	return decodeNode(r, "$")
}

func decodeNode(r gjson.Result, path string) (Node, error) {
	if !r.IsArray() {
		return nil, fmt.Errorf("%w: %s: expected array, got %s", ErrDecode, path, r.Type)
	}
	items := r.Array()
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: %s: empty node", ErrDecode, path)
	}
	if items[0].Type != gjson.String {
		return nil, fmt.Errorf("%w: %s: kind must be a string", ErrDecode, path)
	}
	kind, ok := kindsByName[items[0].Str]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unknown kind %q", ErrDecode, path, items[0].Str)
	}
	args := items[1:]
	if len(args) != kind.Arity() {
		return nil, fmt.Errorf("%w: %s: %s takes %d arguments, got %d", ErrDecode, path, kind, kind.Arity(), len(args))
	}
	children := make([]Node, len(args))
	for i, arg := range args {
		child, err := decodeNode(arg, fmt.Sprintf("%s[%d]", path, i+1))
		if err != nil {
			return nil, err
		}
		children[i] = child
	}
	return New(kind, children...), nil
}
