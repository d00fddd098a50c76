package art

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/wildfunctions/recursive_art/pkg/expr"
	"github.com/wildfunctions/recursive_art/pkg/pool"
)

// Channels holds the red, green and blue expression trees of one image.
type Channels struct {
	Red   expr.Node
	Green expr.Node
	Blue  expr.Node
}

// NewChannels builds three independent trees from p with the same depth
// bounds. Trees are built red, green, blue from the same source.
func NewChannels(p pool.Pool, src pool.Source, minDepth, maxDepth int) Channels {
	return Channels{
		Red:   pool.Build(p, src, minDepth, maxDepth),
		Green: pool.Build(p, src, minDepth, maxDepth),
		Blue:  pool.Build(p, src, minDepth, maxDepth),
	}
}

// String returns a human-readable representation.
func (c Channels) String() string {
	return fmt.Sprintf("r = %s\ng = %s\nb = %s", c.Red, c.Green, c.Blue)
}

// NodeCount returns the total node count of all three trees.
func (c Channels) NodeCount() int {
	return c.Red.NodeCount() + c.Green.NodeCount() + c.Blue.NodeCount()
}

// MarshalJSON writes each channel in nested-list form.
func (c Channels) MarshalJSON() ([]byte, error) {
	doc := make(map[string][]any, 3)
	for _, ch := range []struct {
		key  string
		node expr.Node
	}{
		{"red", c.Red},
		{"green", c.Green},
		{"blue", c.Blue},
	} {
		list, err := expr.MarshalList(ch.node)
		if err != nil {
			return nil, fmt.Errorf("%s channel: %w", ch.key, err)
		}
		doc[ch.key] = list
	}
	return json.Marshal(doc)
}

// UnmarshalJSON reads channels written by MarshalJSON.
func (c *Channels) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: invalid JSON", expr.ErrDecode)
	}
	doc := gjson.ParseBytes(data)
	var out Channels
	for _, ch := range []struct {
		key  string
		dest *expr.Node
	}{
		{"red", &out.Red},
		{"green", &out.Green},
		{"blue", &out.Blue},
	} {
		r := doc.Get(ch.key)
		if !r.Exists() {
			return fmt.Errorf("%w: missing %s channel", expr.ErrDecode, ch.key)
		}
		n, err := expr.DecodeResult(r)
		if err != nil {
			return fmt.Errorf("%s channel: %w", ch.key, err)
		}
		*ch.dest = n
	}
	*c = out
	return nil
}
