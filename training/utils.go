package training

import (
	"encoding/json"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// RandomWeights returns a rows x cols matrix of uniform values in [0, 0.01).
func RandomWeights(rng *rand.Rand, rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64() * 0.01
	}
	return mat.NewDense(rows, cols, data)
}

// ReadWeightsFromFile reads initial hidden and output weight matrices from a JSON file of
// the form {"hidden": [[...], ...], "output": [[...], ...]}.
func ReadWeightsFromFile(filename string) (*mat.Dense, *mat.Dense, error) {
	jsonData, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read weights %s", filename)
	}

	weightsData := struct {
		Hidden [][]float64 `json:"hidden"`
		Output [][]float64 `json:"output"`
	}{}
	if err := json.Unmarshal(jsonData, &weightsData); err != nil {
		return nil, nil, errors.Wrapf(ErrConfig, "decode weights %s: %v", filename, err)
	}

	hidden, err := toDense("hidden", weightsData.Hidden)
	if err != nil {
		return nil, nil, errors.Wrap(err, filename)
	}
	output, err := toDense("output", weightsData.Output)
	if err != nil {
		return nil, nil, errors.Wrap(err, filename)
	}
	return hidden, output, nil
}

func toDense(name string, rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrapf(ErrConfig, "%s weights are empty", name)
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrDimensionMismatch, "%s weights row %d has %d columns, want %d", name, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return mat.NewDense(len(rows), cols, data), nil
}
