package training

import (
	"backprop/dataset"

	"github.com/pkg/errors"
)

// Forward loads inst into the input layer and evaluates the hidden and then the output
// layer. The results are read off the nodes.
func (n *Network) Forward(inst dataset.Instance) error {
	n.forwarded = false

	inputs := n.inputNodes[:len(n.inputNodes)-1]
	if len(inst.Attributes) != len(inputs) {
		return errors.Wrapf(ErrInstanceShape, "got %d attributes, want %d", len(inst.Attributes), len(inputs))
	}

	for i, node := range inputs {
		if err := node.SetInput(inst.Attributes[i]); err != nil {
			return err
		}
	}

	hidden := n.hiddenNodes[:len(n.hiddenNodes)-1]
	for _, node := range hidden {
		node.invalidate()
	}
	for _, node := range n.outputNodes {
		node.invalidate()
	}

	for i, node := range hidden {
		if err := node.CalculateOutput(); err != nil {
			return errors.Wrapf(err, "hidden node %d", i)
		}
	}
	for i, node := range n.outputNodes {
		if err := node.CalculateOutput(); err != nil {
			return errors.Wrapf(err, "output node %d", i)
		}
	}

	n.forwarded = true
	return nil
}
