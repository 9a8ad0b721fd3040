package training

import "backprop/dataset"

// Predict returns the index of the output node with the highest output for inst. Only a
// strictly greater output replaces the current best, so ties keep the lower index and an
// all-zero output layer gives 0.
func (n *Network) Predict(inst dataset.Instance) (int, error) {
	if err := n.Forward(inst); err != nil {
		return 0, err
	}

	maxIdx := 0
	maxVal := 0.0
	for i, node := range n.outputNodes {
		if node.Output() > maxVal {
			maxVal = node.Output()
			maxIdx = i
		}
	}
	return maxIdx, nil
}
