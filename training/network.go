package training

import (
	"math"

	"backprop/dataset"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Config holds the training hyperparameters. A Network keeps its own copy.
type Config struct {
	Epochs int
	Eta    float64
}

// Network is a fully connected input-hidden-output network. The last node of the input and
// of the hidden layer is a bias node with a constant output of 1.
type Network struct {
	inputNodes  []*Node
	hiddenNodes []*Node
	outputNodes []*Node

	trainingSet []dataset.Instance
	config      Config

	// set by Forward, cleared when the network is built
	forwarded bool
}

// New builds the network for trainingSet. Layer sizes come from the first instance;
// hiddenWeights must be hiddenCount x (inputs+1) and outputWeights outputs x (hiddenCount+1),
// the last column of each holding the bias weights.
func New(trainingSet []dataset.Instance, hiddenCount int, config Config, hiddenWeights, outputWeights mat.Matrix) (*Network, error) {
	if len(trainingSet) == 0 {
		return nil, ErrEmptyTrainingSet
	}
	if hiddenCount <= 0 {
		return nil, errors.Wrapf(ErrConfig, "hidden node count %d", hiddenCount)
	}
	if config.Epochs < 0 {
		return nil, errors.Wrapf(ErrConfig, "epoch count %d", config.Epochs)
	}
	if math.IsNaN(config.Eta) || math.IsInf(config.Eta, 0) {
		return nil, errors.Wrapf(ErrConfig, "learning rate %v", config.Eta)
	}

	inputCount := len(trainingSet[0].Attributes)
	outputCount := len(trainingSet[0].ClassValues)
	if inputCount == 0 || outputCount == 0 {
		return nil, errors.Wrapf(ErrConfig, "instance has %d attributes and %d class values", inputCount, outputCount)
	}
	for i, inst := range trainingSet {
		if len(inst.Attributes) != inputCount || len(inst.ClassValues) != outputCount {
			return nil, errors.Wrapf(ErrConfig, "instance %d has %d attributes and %d class values, want %d and %d",
				i, len(inst.Attributes), len(inst.ClassValues), inputCount, outputCount)
		}
	}

	if err := checkDims("hidden", hiddenWeights, hiddenCount, inputCount+1); err != nil {
		return nil, err
	}
	if err := checkDims("output", outputWeights, outputCount, hiddenCount+1); err != nil {
		return nil, err
	}

	n := &Network{
		trainingSet: trainingSet,
		config:      config,
	}

	n.inputNodes = make([]*Node, 0, inputCount+1)
	for i := 0; i < inputCount; i++ {
		n.inputNodes = append(n.inputNodes, newNode(Input))
	}
	n.inputNodes = append(n.inputNodes, newNode(InputBias))

	n.hiddenNodes = make([]*Node, 0, hiddenCount+1)
	for i := 0; i < hiddenCount; i++ {
		n.hiddenNodes = append(n.hiddenNodes, connect(newNode(Hidden), n.inputNodes, hiddenWeights, i))
	}
	n.hiddenNodes = append(n.hiddenNodes, newNode(HiddenBias))

	n.outputNodes = make([]*Node, 0, outputCount)
	for i := 0; i < outputCount; i++ {
		n.outputNodes = append(n.outputNodes, connect(newNode(Output), n.hiddenNodes, outputWeights, i))
	}

	return n, nil
}

func checkDims(layer string, weights mat.Matrix, rows, cols int) error {
	if weights == nil {
		return errors.Wrapf(ErrDimensionMismatch, "%s weights are missing", layer)
	}
	r, c := weights.Dims()
	if r != rows || c != cols {
		return errors.Wrapf(ErrDimensionMismatch, "%s weights are %dx%d, want %dx%d", layer, r, c, rows, cols)
	}
	return nil
}

// connect gives node one edge per node of below, weighted by the given row of weights.
func connect(node *Node, below []*Node, weights mat.Matrix, row int) *Node {
	node.parents = make([]*NodeWeightPair, len(below))
	for j, src := range below {
		node.parents[j] = &NodeWeightPair{Node: src, Weight: weights.At(row, j)}
	}
	return node
}

func (n *Network) Config() Config {
	return n.config
}

func (n *Network) InputNodes() []*Node {
	return n.inputNodes
}

func (n *Network) HiddenNodes() []*Node {
	return n.hiddenNodes
}

func (n *Network) OutputNodes() []*Node {
	return n.outputNodes
}

// Outputs returns the current values of the output layer.
func (n *Network) Outputs() []float64 {
	out := make([]float64, len(n.outputNodes))
	for i, node := range n.outputNodes {
		out[i] = node.Output()
	}
	return out
}

// Weights returns copies of the current edge weights in the layout New accepts.
func (n *Network) Weights() (*mat.Dense, *mat.Dense) {
	return layerWeights(n.hiddenNodes[:len(n.hiddenNodes)-1]), layerWeights(n.outputNodes)
}

func layerWeights(nodes []*Node) *mat.Dense {
	cols := len(nodes[0].parents)
	w := mat.NewDense(len(nodes), cols, nil)
	for i, node := range nodes {
		for j, p := range node.parents {
			w.Set(i, j, p.Weight)
		}
	}
	return w
}
