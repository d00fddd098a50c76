package pool

import "github.com/wildfunctions/recursive_art/pkg/expr"

func init() {
	Register("trig", func() Pool { return &TrigPool{} })
}

// TrigPool drops the polynomial kinds, which tend to flatten values toward
// zero, and keeps only products, averages and the two trig functions.
type TrigPool struct{}

func (p *TrigPool) Name() string { return "trig" }

var trigFirst = []expr.Kind{
	expr.KindProduct,
	expr.KindAverage,
	expr.KindCosPi,
	expr.KindSinPi,
}

func (p *TrigPool) First() []expr.Kind { return trigFirst }
func (p *TrigPool) Last() []expr.Kind  { return varKinds }
