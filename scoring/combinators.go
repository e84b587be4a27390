package scoring

import (
	"fmt"

	"github.com/voxelgraph/waterz/region"
)

type unaryOp string

const (
	opOneMinus unaryOp = "OneMinus"
	opInvert   unaryOp = "Invert"
	opSquare   unaryOp = "Square"
)

// unaryNode wraps a single child with one of the unary operators. The
// operator is stored as a tag rather than a closure so the node stays
// gob-encodable for the scoring-function cache.
type unaryNode struct {
	Child Node
	Op    unaryOp
}

func (n unaryNode) Eval(ctx *Context) float64 {
	x := n.Child.Eval(ctx)
	switch n.Op {
	case opOneMinus:
		return 1 - x
	case opInvert:
		return 1 / x
	case opSquare:
		return x * x
	default:
		return x
	}
}

func (n unaryNode) Mask() region.AggregationMask { return n.Child.Mask() }

type binaryOp string

const (
	opAdd      binaryOp = "Add"
	opSubtract binaryOp = "Subtract"
	opMultiply binaryOp = "Multiply"
	opDivide   binaryOp = "Divide"
	opStep     binaryOp = "Step"
)

// binaryNode wraps two children with one of the binary operators.
type binaryNode struct {
	A, B Node
	Op   binaryOp
}

func (n binaryNode) Eval(ctx *Context) float64 {
	x, y := n.A.Eval(ctx), n.B.Eval(ctx)
	switch n.Op {
	case opAdd:
		return x + y
	case opSubtract:
		return x - y
	case opMultiply:
		return x * y
	case opDivide:
		return x / y
	case opStep:
		if x > y {
			return 1
		}

		return 0
	default:
		return 0
	}
}

func (n binaryNode) Mask() region.AggregationMask { return n.A.Mask().Merge(n.B.Mask()) }

func newOneMinus(args []any) (Node, error) {
	a, ok := nodeArg(args, 0)
	if !ok {
		return nil, fmt.Errorf("%w: OneMinus requires one sub-expression", ErrParse)
	}

	return unaryNode{Child: a, Op: opOneMinus}, nil
}

func newInvert(args []any) (Node, error) {
	a, ok := nodeArg(args, 0)
	if !ok {
		return nil, fmt.Errorf("%w: Invert requires one sub-expression", ErrParse)
	}

	return unaryNode{Child: a, Op: opInvert}, nil
}

func newSquare(args []any) (Node, error) {
	a, ok := nodeArg(args, 0)
	if !ok {
		return nil, fmt.Errorf("%w: Square requires one sub-expression", ErrParse)
	}

	return unaryNode{Child: a, Op: opSquare}, nil
}

func newBinary(name string, op binaryOp, args []any) (Node, error) {
	a, okA := nodeArg(args, 0)
	b, okB := nodeArg(args, 1)
	if !okA || !okB {
		return nil, fmt.Errorf("%w: %s requires two sub-expressions", ErrParse, name)
	}

	return binaryNode{A: a, B: b, Op: op}, nil
}

func newAdd(args []any) (Node, error)      { return newBinary("Add", opAdd, args) }
func newSubtract(args []any) (Node, error) { return newBinary("Subtract", opSubtract, args) }
func newMultiply(args []any) (Node, error) { return newBinary("Multiply", opMultiply, args) }
func newDivide(args []any) (Node, error)   { return newBinary("Divide", opDivide, args) }
func newStep(args []any) (Node, error)     { return newBinary("Step", opStep, args) }
