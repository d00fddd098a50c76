package pool

import "github.com/wildfunctions/recursive_art/pkg/expr"

func init() {
	Register("classic", func() Pool { return &ClassicPool{} })
}

// ClassicPool provides products, averages, cos(pi*a), sin(pi*a), squares and
// cubes over x and y. Every kind maps [-1, 1] into itself.
type ClassicPool struct{}

func (p *ClassicPool) Name() string { return "classic" }

var classicFirst = []expr.Kind{
	expr.KindProduct,
	expr.KindAverage,
	expr.KindCosPi,
	expr.KindSinPi,
	expr.KindSquare,
	expr.KindCube,
}

var varKinds = []expr.Kind{
	expr.KindVarX,
	expr.KindVarY,
}

func (p *ClassicPool) First() []expr.Kind { return classicFirst }
func (p *ClassicPool) Last() []expr.Kind  { return varKinds }
