package dataset

import (
	"fmt"
	"slices"

	"github.com/gomlx/gomlx/pkg/core/tensors"
)

// SetValuesTensor registers the contents of t as the values of dimension
// dim. Rank-1 tensors are taken as is, rank-2 tensors are flattened row by
// row. Only float32 and float64 tensors are accepted; anything else fails
// with ErrInvalidArgument.
func (b *Builder) SetValuesTensor(dim int, t *tensors.Tensor) error {
	if t == nil {
		return fmt.Errorf("nil tensor: %w", ErrInvalidArgument)
	}
	switch v := t.Value().(type) {
	case []float64:
		b.SetValuesNoCopy(dim, v)
	case []float32:
		b.SetValuesFloat32NoCopy(dim, v)
	case [][]float64:
		flat, err := flattenRows(v)
		if err != nil {
			return err
		}
		b.SetValuesNoCopy(dim, flat)
	case [][]float32:
		flat, err := flattenRows(v)
		if err != nil {
			return err
		}
		b.SetValuesFloat32NoCopy(dim, flat)
	default:
		return fmt.Errorf("tensor of shape %v holding %T: %w", t.Shape().Dimensions, v, ErrInvalidArgument)
	}
	return nil
}

// Tensor returns dimension dim of ds as a rank-1 tensor. Float datasets
// yield float32 tensors, every other kind float64.
func Tensor(ds DataSet, dim int) (*tensors.Tensor, error) {
	n := ds.DataCount(dim)
	if dim < 0 || dim >= ds.Dimension() || n == 0 {
		return nil, fmt.Errorf("dimension %d of %q holds no values: %w", dim, ds.Name(), ErrInvalidArgument)
	}
	if f, ok := ds.(*FloatDataSet); ok {
		return tensors.FromFlatDataAndDimensions(slices.Clone(f.Float32Values(dim)), n), nil
	}
	return tensors.FromFlatDataAndDimensions(slices.Clone(ds.Values(dim)), n), nil
}

// GridTensor returns the last dimension reshaped to the sizes of the other
// dimensions, for datasets whose last dimension holds one value per grid
// point (z[i*ny+j] for a 3-dimensional x, y, z dataset).
func (ds *MultiDimDoubleDataSet) GridTensor() (*tensors.Tensor, error) {
	last := len(ds.values) - 1
	shape := make([]int, last)
	points := 1
	for d := range shape {
		shape[d] = len(ds.values[d])
		points *= shape[d]
	}
	if points == 0 || points != len(ds.values[last]) {
		return nil, fmt.Errorf("grid of %v points does not match %d values: %w",
			shape, len(ds.values[last]), ErrShapeUnsupported)
	}
	return tensors.FromFlatDataAndDimensions(slices.Clone(ds.values[last]), shape...), nil
}
