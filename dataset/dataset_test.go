package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const irisSample = `# two attributes, three classes
2,3
5.1, 3.5, 1, 0, 0
7.0, 3.2, 0, 1, 0

6.3,3.3,0,0,1
`

func TestRead(t *testing.T) {
	instances, err := Read(strings.NewReader(irisSample))
	require.NoError(t, err)
	require.Len(t, instances, 3)

	assert.Equal(t, []float64{5.1, 3.5}, instances[0].Attributes)
	assert.Equal(t, []float64{1, 0, 0}, instances[0].ClassValues)
	assert.Equal(t, []float64{6.3, 3.3}, instances[2].Attributes)
	assert.Equal(t, []float64{0, 0, 1}, instances[2].ClassValues)
}

func TestReadAttributesDoNotAliasClassValues(t *testing.T) {
	instances, err := Read(strings.NewReader(irisSample))
	require.NoError(t, err)

	attrs := append(instances[0].Attributes, 42)
	assert.Equal(t, []float64{5.1, 3.5, 42}, attrs)
	assert.Equal(t, []float64{1, 0, 0}, instances[0].ClassValues)
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		description string
		input       string
		want        error
	}{
		{"empty input", "", ErrEmpty},
		{"only comments", "# nothing\n", ErrEmpty},
		{"header without rows", "2,1\n", ErrEmpty},
		{"header with one field", "2\n1,2,3\n", ErrMalformed},
		{"header with zero count", "0,1\n1\n", ErrMalformed},
		{"short row", "2,1\n1,2\n", ErrMalformed},
		{"long row", "2,1\n1,2,3,4\n", ErrMalformed},
		{"non numeric field", "2,1\n1,x,0\n", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestReadReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("# comment\n1,1\n0.5,1\n0.5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	require.NoError(t, os.WriteFile(path, []byte(irisSample), 0644))

	instances, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, instances, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestSplit(t *testing.T) {
	instances := make([]Instance, 10)
	for i := range instances {
		instances[i] = Instance{Attributes: []float64{float64(i)}, ClassValues: []float64{1}}
	}

	train, test := Split(instances, 0.7, 42)
	assert.Len(t, train, 7)
	assert.Len(t, test, 3)

	seen := map[float64]bool{}
	for _, inst := range append(append([]Instance{}, train...), test...) {
		seen[inst.Attributes[0]] = true
	}
	assert.Len(t, seen, 10)

	again, _ := Split(instances, 0.7, 42)
	assert.Equal(t, train, again)

	all, none := Split(instances, 1.5, 1)
	assert.Len(t, all, 10)
	assert.Empty(t, none)
}

func TestToDense(t *testing.T) {
	instances, err := Read(strings.NewReader(irisSample))
	require.NoError(t, err)

	x, y, err := ToDense(instances)
	require.NoError(t, err)

	r, c := x.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	r, c = y.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 7.0, x.At(1, 0))
	assert.Equal(t, 1.0, y.At(2, 2))

	_, _, err = ToDense(nil)
	assert.True(t, errors.Is(err, ErrEmpty))

	ragged := []Instance{
		{Attributes: []float64{1, 2}, ClassValues: []float64{1}},
		{Attributes: []float64{1}, ClassValues: []float64{1}},
	}
	_, _, err = ToDense(ragged)
	assert.True(t, errors.Is(err, ErrMalformed))
}
