// Package messages holds the messages exchanged between the driver actors.
package messages

import (
	"time"

	"backprop/dataset"
	"backprop/training"

	"gonum.org/v1/gonum/mat"
)

// RunPipeline asks the coordination actor to load the data, build and train a network and
// evaluate it. An empty TestPath splits the training file by SplitRatio; an empty
// WeightsPath draws initial weights from Seed.
type RunPipeline struct {
	TrainPath   string
	TestPath    string
	WeightsPath string
	SplitRatio  float64
	Seed        int64

	HiddenCount int
	Config      training.Config

	// bound for each request the coordinator makes to its children
	Timeout time.Duration
}

type PipelineResult struct {
	Evaluation training.Evaluation
	Hidden     *mat.Dense
	Output     *mat.Dense
}

type LoadDataSets struct {
	TrainPath  string
	TestPath   string
	SplitRatio float64
	Seed       int64
}

type DataSets struct {
	Training []dataset.Instance
	Test     []dataset.Instance
}

type StartTraining struct{}

type TrainingFinished struct {
	Hidden *mat.Dense
	Output *mat.Dense
}

type Evaluate struct {
	Instances []dataset.Instance
}

type EvaluationFinished struct {
	Evaluation training.Evaluation
}

type Predict struct {
	Instance dataset.Instance
}

type Prediction struct {
	Class int
}

type GetWeights struct{}

type Weights struct {
	Hidden *mat.Dense
	Output *mat.Dense
}

// Failed is the reply to any request that could not be served.
type Failed struct {
	Err error
}
