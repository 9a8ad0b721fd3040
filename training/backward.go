package training

import (
	"backprop/dataset"

	"github.com/pkg/errors"
)

// DeltaJ returns the error signal of every output node for the instance of the last
// forward pass: relu(sum) * (target - output).
func (n *Network) DeltaJ(inst dataset.Instance) ([]float64, error) {
	if !n.forwarded {
		return nil, ErrNoForwardPass
	}
	if len(inst.ClassValues) != len(n.outputNodes) {
		return nil, errors.Wrapf(ErrInstanceShape, "got %d class values, want %d", len(inst.ClassValues), len(n.outputNodes))
	}

	deltas := make([]float64, len(n.outputNodes))
	for i, node := range n.outputNodes {
		deltas[i] = Relu(node.Sum()) * (inst.ClassValues[i] - node.Output())
	}
	return deltas, nil
}

// DeltaI propagates deltaJ back through the current output weights. It returns one value
// per hidden node, the bias included; the bias value is always 0 since its sum is.
func (n *Network) DeltaI(deltaJ []float64) ([]float64, error) {
	if !n.forwarded {
		return nil, ErrNoForwardPass
	}
	if len(deltaJ) != len(n.outputNodes) {
		return nil, errors.Wrapf(ErrInstanceShape, "got %d output deltas, want %d", len(deltaJ), len(n.outputNodes))
	}

	deltas := make([]float64, len(n.hiddenNodes))
	for i, node := range n.hiddenNodes {
		var val float64
		for j, out := range n.outputNodes {
			val += out.parents[i].Weight * deltaJ[j]
		}
		deltas[i] = Relu(node.Sum()) * val
	}
	return deltas, nil
}
