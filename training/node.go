package training

import (
	"fmt"

	"github.com/pkg/errors"
)

// NodeKind determines how a Node computes its output.
type NodeKind int

const (
	Input NodeKind = iota
	InputBias
	Hidden
	HiddenBias
	Output
)

func (k NodeKind) String() string {
	switch k {
	case Input:
		return "input"
	case InputBias:
		return "input-bias"
	case Hidden:
		return "hidden"
	case HiddenBias:
		return "hidden-bias"
	case Output:
		return "output"
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

func (k NodeKind) isBias() bool {
	return k == InputBias || k == HiddenBias
}

// NodeWeightPair is an incoming edge: the source node in the layer below and the trainable
// weight of the connection.
type NodeWeightPair struct {
	Node   *Node
	Weight float64
}

// Node is a single unit of the network. Only Hidden and Output nodes have parents.
type Node struct {
	kind       NodeKind
	inputValue float64
	sum        float64
	output     float64

	// whether output holds a value for the current pass
	evaluated bool

	parents []*NodeWeightPair
}

func newNode(kind NodeKind) *Node {
	n := &Node{kind: kind}
	if kind.isBias() {
		n.output = 1.0
		n.evaluated = true
	}
	return n
}

func (n *Node) Kind() NodeKind {
	return n.kind
}

// Parents returns the incoming edges in the order of the layer below. The edges are shared
// with the node, so weight changes made through them are visible to the network.
func (n *Node) Parents() []*NodeWeightPair {
	return n.parents
}

// SetInput sets the value of an Input node, which becomes its output unchanged.
func (n *Node) SetInput(v float64) error {
	if n.kind != Input {
		return ErrNotInputNode
	}
	n.inputValue = v
	n.output = v
	n.evaluated = true
	return nil
}

// CalculateOutput recomputes sum and output of a Hidden or Output node from its parents.
// Every parent has to be evaluated first. Input and bias nodes are left untouched.
func (n *Node) CalculateOutput() error {
	if n.kind != Hidden && n.kind != Output {
		return nil
	}

	var sum float64
	for i, p := range n.parents {
		if !p.Node.evaluated {
			return errors.Wrapf(ErrStaleParent, "%s parent %d", p.Node.kind, i)
		}
		sum += p.Node.output * p.Weight
	}
	n.sum = sum
	n.output = Relu(sum)
	n.evaluated = true
	return nil
}

func (n *Node) Output() float64 {
	return n.output
}

// Sum is the pre-activation sum of the last CalculateOutput. It is 0 for input and bias
// nodes.
func (n *Node) Sum() float64 {
	return n.sum
}

func (n *Node) invalidate() {
	if n.kind == Hidden || n.kind == Output {
		n.evaluated = false
	}
}
