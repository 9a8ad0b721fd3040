package training

import (
	"backprop/dataset"

	"github.com/pkg/errors"
)

// Train runs Config.Epochs passes of online backpropagation over the training set in its
// original order, updating the weights after every instance.
func (n *Network) Train() error {
	for e := 0; e < n.config.Epochs; e++ {
		for i, inst := range n.trainingSet {
			if err := n.step(inst); err != nil {
				return errors.Wrapf(err, "epoch %d instance %d", e, i)
			}
		}
	}
	return nil
}

func (n *Network) step(inst dataset.Instance) error {
	if err := n.Forward(inst); err != nil {
		return err
	}

	deltaJ, err := n.DeltaJ(inst)
	if err != nil {
		return err
	}
	deltaI, err := n.DeltaI(deltaJ)
	if err != nil {
		return err
	}

	n.updateHiddenWeights(deltaI)
	n.updateOutputWeights(deltaJ)
	return nil
}
