package training

import (
	"backprop/dataset"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

type Evaluation struct {
	Correct int
	Total   int
}

// Accuracy is the fraction of correctly classified instances, 0 for an empty evaluation.
func (e Evaluation) Accuracy() float64 {
	if e.Total == 0 {
		return 0
	}
	return float64(e.Correct) / float64(e.Total)
}

// Evaluate predicts every instance and compares the result with the index of the first
// largest class value.
func (n *Network) Evaluate(instances []dataset.Instance) (Evaluation, error) {
	var ev Evaluation
	for i, inst := range instances {
		if len(inst.ClassValues) != len(n.outputNodes) {
			return Evaluation{}, errors.Wrapf(ErrInstanceShape, "instance %d has %d class values, want %d",
				i, len(inst.ClassValues), len(n.outputNodes))
		}
		predicted, err := n.Predict(inst)
		if err != nil {
			return Evaluation{}, errors.Wrapf(err, "instance %d", i)
		}
		if predicted == floats.MaxIdx(inst.ClassValues) {
			ev.Correct++
		}
		ev.Total++
	}
	return ev, nil
}
