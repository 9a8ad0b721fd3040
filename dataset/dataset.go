package dataset

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Instance is one labeled example: the attribute values fed to the input layer and the
// class-membership values expected at the output layer.
type Instance struct {
	Attributes  []float64
	ClassValues []float64
}

var (
	ErrEmpty     = errors.New("dataset is empty")
	ErrMalformed = errors.New("malformed dataset")
)

// Load reads a dataset file, see Read for the format.
func Load(path string) ([]Instance, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}
	defer file.Close()

	instances, err := Read(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", path)
	}
	return instances, nil
}

// Read parses comma separated instances. Lines starting with '#' are comments. The first
// record is the header "attributeCount,classCount"; each following record holds the
// attribute values followed by the class values.
func Read(r io.Reader) ([]Instance, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	attributeCount, classCount, err := parseHeader(header)
	if err != nil {
		line, _ := reader.FieldPos(0)
		return nil, errors.Wrapf(err, "line %d", line)
	}

	var instances []Instance
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(ErrMalformed, err.Error())
		}
		line, _ := reader.FieldPos(0)

		if len(record) != attributeCount+classCount {
			return nil, errors.Wrapf(ErrMalformed, "line %d: got %d fields, want %d",
				line, len(record), attributeCount+classCount)
		}

		values := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformed, "line %d field %d: %v", line, i+1, err)
			}
			values[i] = v
		}

		instances = append(instances, Instance{
			Attributes:  values[:attributeCount:attributeCount],
			ClassValues: values[attributeCount:],
		})
	}

	if len(instances) == 0 {
		return nil, ErrEmpty
	}
	return instances, nil
}

func parseHeader(header []string) (int, int, error) {
	if len(header) != 2 {
		return 0, 0, errors.Wrapf(ErrMalformed, "header has %d fields, want 2", len(header))
	}
	counts := make([]int, 2)
	for i, field := range header {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil || n <= 0 {
			return 0, 0, errors.Wrapf(ErrMalformed, "header field %q is not a positive count", field)
		}
		counts[i] = n
	}
	return counts[0], counts[1], nil
}

// Split shuffles a copy of instances with the given seed and cuts it so that the first part
// holds ratio of the instances.
func Split(instances []Instance, ratio float64, seed int64) ([]Instance, []Instance) {
	rng := rand.New(rand.NewSource(seed))

	shuffled := make([]Instance, len(instances))
	for i, j := range rng.Perm(len(instances)) {
		shuffled[i] = instances[j]
	}

	numTrain := int(float64(len(shuffled)) * ratio)
	if numTrain < 0 {
		numTrain = 0
	}
	if numTrain > len(shuffled) {
		numTrain = len(shuffled)
	}
	return shuffled[:numTrain], shuffled[numTrain:]
}

// ToDense packs the attributes and class values into one row per instance.
func ToDense(instances []Instance) (*mat.Dense, *mat.Dense, error) {
	if len(instances) == 0 {
		return nil, nil, ErrEmpty
	}

	rows := len(instances)
	xCols, yCols := len(instances[0].Attributes), len(instances[0].ClassValues)
	if xCols == 0 || yCols == 0 {
		return nil, nil, errors.Wrap(ErrMalformed, "instances have no attributes or no class values")
	}
	x :=make([]float64, rows*xCols)
	y := make([]float64, rows*yCols)
	for i, inst := range instances {
		if len(inst.Attributes) != xCols || len(inst.ClassValues) != yCols {
			return nil, nil, errors.Wrapf(ErrMalformed, "instance %d has shape %d/%d, want %d/%d",
				i, len(inst.Attributes), len(inst.ClassValues), xCols, yCols)
		}
		copy(x[i*xCols:(i+1)*xCols], inst.Attributes)
		copy(y[i*yCols:(i+1)*yCols], inst.ClassValues)
	}
	return mat.NewDense(rows, xCols, x), mat.NewDense(rows, yCols, y), nil
}
