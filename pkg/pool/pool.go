package pool

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/wildfunctions/recursive_art/pkg/expr"
)

// Source is the randomness a builder consumes. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Pool provides the node kinds random trees are built from.
type Pool interface {
	Name() string
	// First returns the non-leaf kinds, used while the minimum depth has not
	// been reached.
	First() []expr.Kind
	// Last returns the leaf kinds, used once the maximum depth is reached.
	Last() []expr.Kind
}

var registry = map[string]func() Pool{}

// Register adds a pool constructor to the registry.
func Register(name string, constructor func() Pool) {
	registry[name] = constructor
}

// Get returns a pool by name.
func Get(name string) (Pool, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pool: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered pool names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	slices.Sort(names)
	return names
}

// Choose picks one of candidates uniformly.
func Choose(src Source, candidates []expr.Kind) expr.Kind {
	return candidates[src.Intn(len(candidates))]
}

// Build returns a random tree whose depth is at most maxDepth and whose
// nodes closer than minDepth to the root are all non-leaves.
//
// While minDepth > 0 only First kinds are chosen; after that any kind may be
// chosen until maxDepth runs out, at which point only Last kinds are left.
// Both budgets shrink by one per level, and children of a binary node are
// built independently from the same budgets.
func Build(p Pool, src Source, minDepth, maxDepth int) expr.Node {
	var kind expr.Kind
	switch {
	case minDepth > 0:
		kind = Choose(src, p.First())
	case maxDepth > 0:
		kind = Choose(src, middle(p))
	default:
		kind = Choose(src, p.Last())
	}

	children := make([]expr.Node, kind.Arity())
	for i := range children {
		children[i] = Build(p, src, minDepth-1, maxDepth-1)
	}
	return expr.New(kind, children...)
}

func middle(p Pool) []expr.Kind {
	first, last := p.First(), p.Last()
	all := make([]expr.Kind, 0, len(first)+len(last))
	all = append(all, first...)
	return append(all, last...)
}
