package scoring

import (
	"fmt"
	"math/rand"

	"github.com/voxelgraph/waterz/region"
)

// constantNode is the Constant(k) leaf: an integer literal value.
type constantNode struct{ K float64 }

func (n constantNode) Eval(*Context) float64             { return n.K }
func (n constantNode) Mask() region.AggregationMask       { return region.AggregationMask{} }

// minSizeNode is the MinSize leaf: min(size(u), size(v)).
type minSizeNode struct{}

func (minSizeNode) Eval(ctx *Context) float64 {
	if ctx.SizeU < ctx.SizeV {
		return float64(ctx.SizeU)
	}

	return float64(ctx.SizeV)
}
func (minSizeNode) Mask() region.AggregationMask { return region.AggregationMask{} }

// maxSizeNode is the MaxSize leaf: max(size(u), size(v)).
type maxSizeNode struct{}

func (maxSizeNode) Eval(ctx *Context) float64 {
	if ctx.SizeU > ctx.SizeV {
		return float64(ctx.SizeU)
	}

	return float64(ctx.SizeV)
}
func (maxSizeNode) Mask() region.AggregationMask { return region.AggregationMask{} }

// contactAreaNode is the ContactArea leaf.
type contactAreaNode struct{}

func (contactAreaNode) Eval(ctx *Context) float64     { return float64(ctx.Edge.ContactArea) }
func (contactAreaNode) Mask() region.AggregationMask { return region.AggregationMask{} }

// minAffinityNode is the MinAffinity leaf.
type minAffinityNode struct{}

func (minAffinityNode) Eval(ctx *Context) float64 { return float64(ctx.Edge.Agg.Min) }
func (minAffinityNode) Mask() region.AggregationMask {
	return region.AggregationMask{Kinds: region.AggMin}
}

// maxAffinityNode is the MaxAffinity leaf.
type maxAffinityNode struct{}

func (maxAffinityNode) Eval(ctx *Context) float64 { return float64(ctx.Edge.Agg.Max) }
func (maxAffinityNode) Mask() region.AggregationMask {
	return region.AggregationMask{Kinds: region.AggMax}
}

// meanAffinityNode is the MeanAffinity leaf.
type meanAffinityNode struct{}

func (meanAffinityNode) Eval(ctx *Context) float64 { return ctx.Edge.Agg.Mean() }
func (meanAffinityNode) Mask() region.AggregationMask {
	return region.AggregationMask{Kinds: region.AggMean}
}

// meanMaxKAffinityNode is the MeanMaxKAffinity(k) leaf: the mean of the top
// k affinity samples on the edge.
type meanMaxKAffinityNode struct{ K int }

func (n meanMaxKAffinityNode) Eval(ctx *Context) float64 { return ctx.Edge.Agg.MeanTopK(n.K) }
func (n meanMaxKAffinityNode) Mask() region.AggregationMask {
	return region.AggregationMask{Kinds: region.AggTopK, TopK: n.K}
}

// quantileAffinityNode is the QuantileAffinity(q, init_with_max) leaf,
// answered from the edge's exact ascending-sorted sample vector.
type quantileAffinityNode struct {
	Q           float64
	InitWithMax bool
}

func (n quantileAffinityNode) Eval(ctx *Context) float64 {
	return ctx.Edge.Agg.ExactQuantile(n.Q, n.InitWithMax)
}
func (n quantileAffinityNode) Mask() region.AggregationMask {
	kinds := region.AggExact
	if n.InitWithMax {
		kinds |= region.AggMax
	}

	return region.AggregationMask{Kinds: kinds}
}

// histogramQuantileAffinityNode is the HistogramQuantileAffinity(q, bins,
// init_with_max) leaf, answered from the edge's fixed-width histogram.
type histogramQuantileAffinityNode struct {
	Q           float64
	Bins        int
	InitWithMax bool
}

func (n histogramQuantileAffinityNode) Eval(ctx *Context) float64 {
	return ctx.Edge.Agg.HistogramQuantile(n.Q, n.InitWithMax)
}
func (n histogramQuantileAffinityNode) Mask() region.AggregationMask {
	kinds := region.AggHistogram
	if n.InitWithMax {
		kinds |= region.AggMax
	}

	return region.AggregationMask{Kinds: kinds, HistogramBins: n.Bins}
}

// randomNode is the Random leaf: a uniform draw in [0,1).
type randomNode struct{}

func (randomNode) Eval(ctx *Context) float64 {
	if ctx.Rand != nil {
		return ctx.Rand.Float64()
	}

	return rand.Float64()
}
func (randomNode) Mask() region.AggregationMask { return region.AggregationMask{} }

func newConstant(args []any) (Node, error) {
	v, ok := floatArg(args, 0)
	if !ok {
		return nil, fmt.Errorf("%w: Constant requires a numeric value argument", ErrParse)
	}

	return constantNode{K: v}, nil
}

func newMinSize(args []any) (Node, error)     { return minSizeNode{}, nil }
func newMaxSize(args []any) (Node, error)     { return maxSizeNode{}, nil }
func newContactArea(args []any) (Node, error) { return contactAreaNode{}, nil }
func newMinAffinity(args []any) (Node, error) { return minAffinityNode{}, nil }
func newMaxAffinity(args []any) (Node, error) { return maxAffinityNode{}, nil }
func newMeanAffinity(args []any) (Node, error) { return meanAffinityNode{}, nil }
func newRandom(args []any) (Node, error)       { return randomNode{}, nil }

func newMeanMaxKAffinity(args []any) (Node, error) {
	k, ok := floatArg(args, 0)
	if !ok || k < 1 {
		return nil, fmt.Errorf("%w: MeanMaxKAffinity requires a positive integer k", ErrParse)
	}

	return meanMaxKAffinityNode{K: int(k)}, nil
}

func newQuantileAffinity(args []any) (Node, error) {
	q, ok := floatArg(args, 0)
	if !ok || q < 0 || q > 100 {
		return nil, fmt.Errorf("%w: QuantileAffinity requires q in [0,100]", ErrParse)
	}
	initWithMax := true
	if b, ok := boolArg(args, 0); ok {
		initWithMax = b
	}

	return quantileAffinityNode{Q: q, InitWithMax: initWithMax}, nil
}

func newHistogramQuantileAffinity(args []any) (Node, error) {
	q, ok := floatArg(args, 0)
	if !ok || q < 0 || q > 100 {
		return nil, fmt.Errorf("%w: HistogramQuantileAffinity requires q in [0,100]", ErrParse)
	}
	bins, ok := floatArg(args, 1)
	if !ok || bins < 1 {
		return nil, fmt.Errorf("%w: HistogramQuantileAffinity requires a positive bin count", ErrParse)
	}
	initWithMax := true
	if b, ok := boolArg(args, 0); ok {
		initWithMax = b
	}

	return histogramQuantileAffinityNode{Q: q, Bins: int(bins), InitWithMax: initWithMax}, nil
}
