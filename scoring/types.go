package scoring

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand"

	"github.com/voxelgraph/waterz/region"
)

// Node is one value-typed expression-tree node: a leaf reading some edge or
// region-pair statistic, or a combinator folding its children's values.
type Node interface {
	// Eval computes the node's value against the given region pair and its
	// edge.
	Eval(ctx *Context) float64
	// Mask reports the aggregation accumulators this node (and its
	// children) require on every edge it is evaluated against.
	Mask() region.AggregationMask
}

// Context is the per-edge, per-evaluation environment a Node reads from.
type Context struct {
	// SizeU and SizeV are the current sizes of the two regions an edge
	// connects, read by MinSize/MaxSize.
	SizeU, SizeV uint64
	// Edge is the region edge being scored.
	Edge *region.Edge
	// Rand supplies the Random leaf's uniform draw. When nil, the leaf
	// falls back to the package-level math/rand source. Callers that need
	// one seed per run should construct their own *rand.Rand and share it
	// across every Context for that run.
	Rand *rand.Rand
}

// Tree is a parsed and validated scoring expression, ready to be evaluated
// against edges whose aggregations match Mask().
type Tree struct {
	root Node
	mask region.AggregationMask
}

// Build parses expr and infers its required aggregation mask. It fails with
// ErrConflictingAggregations if the tree asks for both a top-k and a
// histogram aggregation on the same edge, since only one partial-vector
// representation is maintained per edge (see design note on the
// MeanMaxKAffinity/histogram interaction).
func Build(expr string) (*Tree, error) {
	root, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	mask := root.Mask()
	if mask.Kinds.Has(region.AggTopK) && mask.Kinds.Has(region.AggHistogram) {
		return nil, fmt.Errorf("%w: %q requests both a top-k and a histogram aggregation on one edge", ErrConflictingAggregations, expr)
	}

	return &Tree{root: root, mask: mask}, nil
}

// Mask returns the aggregation mask every edge evaluated by this tree must
// carry.
func (t *Tree) Mask() region.AggregationMask { return t.mask }

// Eval computes the tree's value for ctx.
func (t *Tree) Eval(ctx *Context) float64 { return t.root.Eval(ctx) }

// treeWire is Tree's gob wire format: an exported mirror of its two
// unexported fields, used only by GobEncode/GobDecode so the scoring-
// function cache (package cache) can persist an already-built Tree without
// this package exposing its internals any other way.
type treeWire struct {
	Root Node
	Mask region.AggregationMask
}

// GobEncode implements gob.GobEncoder, letting the scoring-function cache
// serialize an already-parsed, already-validated Tree directly.
func (t *Tree) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(treeWire{Root: t.root, Mask: t.mask}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder, the inverse of GobEncode.
func (t *Tree) GobDecode(data []byte) error {
	var wire treeWire
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&wire); err != nil {
		return err
	}
	t.root = wire.Root
	t.mask = wire.Mask

	return nil
}

func init() {
	// Concrete node types are registered so a *Tree's root Node can be
	// gob-encoded by the scoring-function cache, which stores the already
	// parsed and validated tree rather than re-parsing on every run.
	gob.Register(constantNode{})
	gob.Register(minSizeNode{})
	gob.Register(maxSizeNode{})
	gob.Register(contactAreaNode{})
	gob.Register(minAffinityNode{})
	gob.Register(maxAffinityNode{})
	gob.Register(meanAffinityNode{})
	gob.Register(meanMaxKAffinityNode{})
	gob.Register(quantileAffinityNode{})
	gob.Register(histogramQuantileAffinityNode{})
	gob.Register(randomNode{})
	gob.Register(unaryNode{})
	gob.Register(binaryNode{})
}
