package dataset

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/sirupsen/logrus"
)

// namePrefix starts the name of datasets built without one. Names derive from
// the wall clock in milliseconds and may repeat for builds in the same
// millisecond.
const namePrefix = "DataSet@"

// Build assembles the dataset.
//
// The number of dimensions is the explicit count when set, otherwise one more
// than the highest dimension referenced by values, errors or axis settings.
// Each dimension is sized by its initial capacity or, without one, by its
// longest buffer. Up to two dimensions yield an X/Y series (float32 when
// requested, with Y errors when any error is present), three or more yield a
// MultiDimDoubleDataSet.
//
// Build fails with ErrInvalidArgument, ErrCapacityConflict or
// ErrShapeUnsupported before any dataset is allocated; the builder then stays usable. After a successful
// Build every further call fails with ErrBuilderConsumed.
func (b *Builder) Build() (DataSet, error) {
	if b.built {
		return nil, ErrBuilderConsumed
	}
	if d, ok := b.negativeDim(); ok {
		return nil, fmt.Errorf("data for dimension %d: %w", d, ErrInvalidArgument)
	}

	dim, err := b.resultDimension()
	if err != nil {
		return nil, err
	}
	size := b.resultSize(dim)
	for d, n := range size {
		if n < 0 {
			return nil, fmt.Errorf("capacity %d for dimension %d: %w", n, d, ErrInvalidArgument)
		}
	}
	kind, err := selectKind(dim, b.useFloat, b.hasErrors())
	if err != nil {
		return nil, err
	}
	if kind == KindDoubleError && b.hasErrorsAt(DimX) {
		return nil, fmt.Errorf("x errors on an x/y series: %w", ErrShapeUnsupported)
	}

	name := b.name
	if name == "" {
		name = namePrefix + strconv.FormatInt(b.now().UnixMilli(), 10)
	}

	var (
		ds DataSet
		c  *common
	)
	switch kind {
	case KindDouble:
		n := pointCount(size)
		d := newDoubleDataSet(name, b.float64Values(DimX, n), b.float64Values(DimY, n))
		ds, c = d, &d.common
	case KindFloat:
		n := pointCount(size)
		d := newFloatDataSet(name, b.float32Values(DimX, n), b.float32Values(DimY, n))
		ds, c = d, &d.common
	case KindDoubleError:
		n := pointCount(size)
		d := newDoubleErrorDataSet(name,
			b.float64Values(DimX, n), b.float64Values(DimY, n),
			b.float64Errors(DimY, n, negative), b.float64Errors(DimY, n, positive))
		ds, c = d, &d.common
	case KindMultiDimDouble:
		values := make([][]float64, dim)
		for d := range values {
			values[d] = b.float64Values(d, size[d])
		}
		d := newMultiDimDoubleDataSet(name, values)
		ds, c = d, &d.common
	}

	b.copyMetaData(c)
	b.copyAxisDescriptions(c)
	b.copyLabelsAndStyles(c)
	b.built = true

	b.logger.WithFields(logrus.Fields{
		"name":      name,
		"kind":      kind.String(),
		"dimension": dim,
		"size":      size,
	}).Debug("dataset built")

	return ds, nil
}

// maxDim returns the highest dimension referenced by values, errors or axis
// descriptions, or -1.
func (b *Builder) maxDim() int {
	highest := -1
	for d := range b.values {
		highest = max(highest, d)
	}
	for k := range b.errs {
		highest = max(highest, k.dim)
	}
	for d := range b.axes {
		highest = max(highest, d)
	}
	return highest
}

// negativeDim returns the lowest negative dimension holding values or errors.
func (b *Builder) negativeDim() (int, bool) {
	lowest := 0
	for d := range b.values {
		lowest = min(lowest, d)
	}
	for k := range b.errs {
		lowest = min(lowest, k.dim)
	}
	return lowest, lowest < 0
}

func (b *Builder) resultDimension() (int, error) {
	highest := b.maxDim()
	if b.dimension < 0 {
		return highest + 1, nil
	}
	if highest >= b.dimension {
		return 0, fmt.Errorf("dimension %d requested, data references dimension %d: %w",
			b.dimension, highest, ErrCapacityConflict)
	}
	return b.dimension, nil
}

func (b *Builder) resultSize(nDims int) []int {
	size := make([]int, nDims)
	for d := range size {
		size[d] = b.dimensionSize(nDims, d)
	}
	return size
}

func (b *Builder) dimensionSize(nDims, dim int) int {
	if len(b.capacity) > 0 {
		return b.capacity[min(dim, len(b.capacity)-1)]
	}

	n := 0
	if v, ok := b.values[dim]; ok {
		n = max(n, v.len())
	}
	for _, sign := range []errorSign{negative, positive} {
		if e, ok := b.errs[errorKey{dim: dim, sign: sign}]; ok {
			n = max(n, e.len())
		}
	}
	if dim == nDims-1 {
		// Labels and styles are indexed by data point of the last dimension.
		// The largest index itself is folded in, not index+1.
		if len(b.labels) > 0 {
			n = max(n, slices.Max(slices.Collect(maps.Keys(b.labels))))
		}
		if len(b.styles) > 0 {
			n = max(n, slices.Max(slices.Collect(maps.Keys(b.styles))))
		}
	}
	return n
}

// pointCount is the shared length of the X and Y buffers of a series.
func pointCount(size []int) int {
	n := 0
	for _, s := range size {
		n = max(n, s)
	}
	return n
}

func (b *Builder) hasErrors() bool {
	return b.useErrors || len(b.errs) > 0
}

func (b *Builder) hasErrorsAt(dim int) bool {
	_, neg := b.errs[errorKey{dim: dim, sign: negative}]
	_, pos := b.errs[errorKey{dim: dim, sign: positive}]
	return neg || pos
}

func (b *Builder) float64Values(dim, n int) []float64 {
	if v, ok := b.values[dim]; ok {
		return v.float64s(n)
	}
	if dim == DimX {
		return indexSequence64(n)
	}
	return make([]float64, n)
}

func (b *Builder) float32Values(dim, n int) []float32 {
	if v, ok := b.values[dim]; ok {
		return v.float32s(n)
	}
	if dim == DimX {
		return indexSequence32(n)
	}
	return make([]float32, n)
}

// float64Errors resolves the errors of one sign, falling back to the
// opposite sign and then to zeros.
func (b *Builder) float64Errors(dim, n int, sign errorSign) []float64 {
	if e, ok := b.errs[errorKey{dim: dim, sign: sign}]; ok {
		return e.float64s(n)
	}
	if e, ok := b.errs[errorKey{dim: dim, sign: sign.opposite()}]; ok {
		return e.clone(n)
	}
	return make([]float64, n)
}

func (b *Builder) copyMetaData(c *common) {
	c.infos = append(c.infos, b.infos...)
	c.warnings = append(c.warnings, b.warnings...)
	c.errors = append(c.errors, b.errors...)
	maps.Copy(c.metaInfo, b.metaInfo)
}

func (b *Builder) copyAxisDescriptions(c *common) {
	for dim, a := range b.axes {
		if dim < len(c.axes) {
			c.axes[dim].override(*a)
		}
	}
}

func (b *Builder) copyLabelsAndStyles(c *common) {
	maps.Copy(c.labels, b.labels)
	maps.Copy(c.styles, b.styles)
}
