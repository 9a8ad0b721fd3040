package training

import (
	"testing"

	"backprop/dataset"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	n := constantOutputs(t, 0.1, 0.5, 0.2)

	ev, err := n.Evaluate([]dataset.Instance{
		instance([]float64{1}, []float64{0, 1, 0}),
		instance([]float64{2}, []float64{0, 1, 0}),
		instance([]float64{3}, []float64{1, 0, 0}),
		instance([]float64{4}, []float64{0, 0, 1}),
	})
	require.NoError(t, err)
	assert.Equal(t, Evaluation{Correct: 2, Total: 4}, ev)
	assert.Equal(t, 0.5, ev.Accuracy())
}

func TestEvaluateEmpty(t *testing.T) {
	n := constantOutputs(t, 0.1, 0.5)

	ev, err := n.Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, Evaluation{}, ev)
	assert.Equal(t, 0.0, ev.Accuracy())
}

func TestEvaluateRejectsWrongShape(t *testing.T) {
	n := constantOutputs(t, 0.1, 0.5)

	_, err := n.Evaluate([]dataset.Instance{instance([]float64{1}, []float64{1})})
	assert.True(t, errors.Is(err, ErrInstanceShape), "got %v", err)
}

func TestTrainImprovesSeparableSet(t *testing.T) {
	set := []dataset.Instance{
		instance([]float64{1, 0}, []float64{1, 0}),
		instance([]float64{0.9, 0.1}, []float64{1, 0}),
		instance([]float64{0, 1}, []float64{0, 1}),
		instance([]float64{0.1, 0.9}, []float64{0, 1}),
	}
	n := mustNew(t, set, 2, Config{Epochs: 50, Eta: 0.1},
		[][]float64{{0.5, 0.1, 0.1}, {0.1, 0.5, 0.1}},
		[][]float64{{0.1, 0.1, 0.1}, {0.1, 0.5, 0.1}},
	)

	before, err := n.Evaluate(set)
	require.NoError(t, err)
	require.NoError(t, n.Train())
	after, err := n.Evaluate(set)
	require.NoError(t, err)

	assert.Equal(t, Evaluation{Correct: 2, Total: 4}, before)
	assert.Equal(t, Evaluation{Correct: 4, Total: 4}, after)
}
