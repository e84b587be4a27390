// Package scoring implements the ScoringFunction expression tree: a small
// value-typed grammar of leaves (MinSize, MaxAffinity, QuantileAffinity, …)
// and combinators (OneMinus, Add, Multiply, …), parsed from the nested
// angle-bracket textual form exemplified by
// `Multiply<OneMinus<MaxAffinity<AffinitiesType>>, MinSize<SizesType>>`.
//
// A tree is built once via Build, which also infers the region.AggregationMask
// the tree requires so that only the aggregation accumulators a scoring
// function actually reads are maintained per edge. The built Tree is then
// evaluated each time an edge is pushed onto the priority queue: once for
// every edge at setup, and again whenever a merge combines or rewires it.
//
// Grammar arguments that name a type parameter (RegionGraphType, ScoreValue,
// SizesType, AffinitiesType, …) carry no runtime meaning here and are
// accepted but ignored, matching the reference grammar's template-parameter
// positions.
package scoring
