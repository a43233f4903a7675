package dataset

import (
	"maps"
	"slices"
)

// Conventional dimension indices of X/Y series.
const (
	DimX = 0
	DimY = 1
	DimZ = 2
)

// DataSet is the read side of a built dataset.
//
// Slices returned by the accessors may share storage with the dataset and
// must not be modified.
type DataSet interface {
	// Name returns the dataset name.
	Name() string
	// Kind returns the concrete shape of the dataset.
	Kind() Kind
	// Dimension returns the number of dimensions.
	Dimension() int
	// DataCount returns the number of values stored for dimension dim, or 0
	// when dim is out of range.
	DataCount(dim int) int
	// Get returns value index of dimension dim. It panics when either index is
	// out of range.
	Get(dim, index int) float64
	// Values returns the values of dimension dim as float64, or nil when dim is
	// out of range.
	Values(dim int) []float64
	// AxisDescription returns a copy of the description of dimension dim, or
	// nil when dim is out of range.
	AxisDescription(dim int) *AxisDescription
	// AxisDescriptions returns a copy of all axis descriptions.
	AxisDescriptions() []AxisDescription

	InfoList() []string
	WarningList() []string
	ErrorList() []string
	MetaInfo() map[string]string

	// DataLabel returns the label of data point index, or "".
	DataLabel(index int) string
	// DataStyle returns the style of data point index, or "".
	DataStyle(index int) string
	DataLabels() map[int]string
	DataStyles() map[int]string
}

// ErrorDataSet is a DataSet carrying asymmetric errors.
type ErrorDataSet interface {
	DataSet
	ErrorNegative(dim, index int) float64
	ErrorPositive(dim, index int) float64
	ErrorsNegative(dim int) []float64
	ErrorsPositive(dim int) []float64
}

var (
	_ DataSet      = (*DoubleDataSet)(nil)
	_ DataSet      = (*FloatDataSet)(nil)
	_ ErrorDataSet = (*DoubleErrorDataSet)(nil)
	_ DataSet      = (*MultiDimDoubleDataSet)(nil)
)

// common holds everything a dataset carries besides its numeric buffers.
type common struct {
	name     string
	axes     []AxisDescription
	infos    []string
	warnings []string
	errors   []string
	metaInfo map[string]string
	labels   map[int]string
	styles   map[int]string
}

func newCommon(name string, nDims int) common {
	axes := make([]AxisDescription, nDims)
	for i := range axes {
		axes[i] = NewAxisDescription()
	}
	return common{
		name:     name,
		axes:     axes,
		metaInfo: make(map[string]string),
		labels:   make(map[int]string),
		styles:   make(map[int]string),
	}
}

func (c *common) Name() string { return c.name }

func (c *common) Dimension() int { return len(c.axes) }

func (c *common) AxisDescription(dim int) *AxisDescription {
	if dim < 0 || dim >= len(c.axes) {
		return nil
	}
	a := c.axes[dim]
	return &a
}

func (c *common) AxisDescriptions() []AxisDescription { return slices.Clone(c.axes) }

func (c *common) InfoList() []string { return slices.Clone(c.infos) }

func (c *common) WarningList() []string { return slices.Clone(c.warnings) }

func (c *common) ErrorList() []string { return slices.Clone(c.errors) }

func (c *common) MetaInfo() map[string]string { return maps.Clone(c.metaInfo) }

func (c *common) DataLabel(index int) string { return c.labels[index] }

func (c *common) DataStyle(index int) string { return c.styles[index] }

func (c *common) DataLabels() map[int]string { return maps.Clone(c.labels) }

func (c *common) DataStyles() map[int]string { return maps.Clone(c.styles) }

// fitRange sets the range of axis dim to cover values.
func (c *common) fitRange(dim int, values []float64) {
	a := &c.axes[dim]
	for _, v := range values {
		a.add(v)
	}
}

// DoubleDataSet is a float64 X/Y series.
type DoubleDataSet struct {
	common
	x, y []float64
}

func newDoubleDataSet(name string, x, y []float64) *DoubleDataSet {
	ds := &DoubleDataSet{common: newCommon(name, 2), x: x, y: y}
	ds.fitRange(DimX, x)
	ds.fitRange(DimY, y)
	return ds
}

func (ds *DoubleDataSet) Kind() Kind { return KindDouble }

func (ds *DoubleDataSet) DataCount(dim int) int {
	if dim != DimX && dim != DimY {
		return 0
	}
	return len(ds.x)
}

func (ds *DoubleDataSet) Get(dim, index int) float64 {
	return ds.Values(dim)[index]
}

func (ds *DoubleDataSet) Values(dim int) []float64 {
	switch dim {
	case DimX:
		return ds.x
	case DimY:
		return ds.y
	default:
		return nil
	}
}

// FloatDataSet is a float32 X/Y series.
type FloatDataSet struct {
	common
	x, y []float32
}

func newFloatDataSet(name string, x, y []float32) *FloatDataSet {
	ds := &FloatDataSet{common: newCommon(name, 2), x: x, y: y}
	for i := range x {
		ds.axes[DimX].add(float64(x[i]))
		ds.axes[DimY].add(float64(y[i]))
	}
	return ds
}

func (ds *FloatDataSet) Kind() Kind { return KindFloat }

func (ds *FloatDataSet) DataCount(dim int) int {
	if dim != DimX && dim != DimY {
		return 0
	}
	return len(ds.x)
}

func (ds *FloatDataSet) Get(dim, index int) float64 {
	return float64(ds.Float32Values(dim)[index])
}

// Values returns a widened copy of dimension dim.
func (ds *FloatDataSet) Values(dim int) []float64 {
	v := ds.Float32Values(dim)
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	for i, f := range v {
		out[i] = float64(f)
	}
	return out
}

// Float32Values returns the stored values of dimension dim.
func (ds *FloatDataSet) Float32Values(dim int) []float32 {
	switch dim {
	case DimX:
		return ds.x
	case DimY:
		return ds.y
	default:
		return nil
	}
}

// DoubleErrorDataSet is a float64 X/Y series with asymmetric Y errors.
// X errors are always zero.
type DoubleErrorDataSet struct {
	DoubleDataSet
	yen, yep []float64
}

func newDoubleErrorDataSet(name string, x, y, yen, yep []float64) *DoubleErrorDataSet {
	ds := &DoubleErrorDataSet{
		DoubleDataSet: DoubleDataSet{common: newCommon(name, 2), x: x, y: y},
		yen:           yen,
		yep:           yep,
	}
	ds.fitRange(DimX, x)
	a := &ds.axes[DimY]
	for i := range y {
		a.add(y[i] - yen[i])
		a.add(y[i] + yep[i])
	}
	return ds
}

func (ds *DoubleErrorDataSet) Kind() Kind { return KindDoubleError }

func (ds *DoubleErrorDataSet) ErrorNegative(dim, index int) float64 {
	if dim == DimY {
		return ds.yen[index]
	}
	return 0
}

func (ds *DoubleErrorDataSet) ErrorPositive(dim, index int) float64 {
	if dim == DimY {
		return ds.yep[index]
	}
	return 0
}

// ErrorsNegative returns the negative errors of dimension dim; X errors are
// returned as zeros.
func (ds *DoubleErrorDataSet) ErrorsNegative(dim int) []float64 {
	switch dim {
	case DimX:
		return make([]float64, len(ds.x))
	case DimY:
		return ds.yen
	default:
		return nil
	}
}

// ErrorsPositive returns the positive errors of dimension dim; X errors are
// returned as zeros.
func (ds *DoubleErrorDataSet) ErrorsPositive(dim int) []float64 {
	switch dim {
	case DimX:
		return make([]float64, len(ds.x))
	case DimY:
		return ds.yep
	default:
		return nil
	}
}

// MultiDimDoubleDataSet is a float64 dataset with independent value buffers
// per dimension. For grid data the last dimension holds one value per
// combination of the other dimensions, see GridTensor.
type MultiDimDoubleDataSet struct {
	common
	values [][]float64
}

func newMultiDimDoubleDataSet(name string, values [][]float64) *MultiDimDoubleDataSet {
	ds := &MultiDimDoubleDataSet{common: newCommon(name, len(values)), values: values}
	for dim, v := range values {
		ds.fitRange(dim, v)
	}
	return ds
}

func (ds *MultiDimDoubleDataSet) Kind() Kind { return KindMultiDimDouble }

func (ds *MultiDimDoubleDataSet) DataCount(dim int) int {
	if dim < 0 || dim >= len(ds.values) {
		return 0
	}
	return len(ds.values[dim])
}

func (ds *MultiDimDoubleDataSet) Get(dim, index int) float64 {
	return ds.values[dim][index]
}

func (ds *MultiDimDoubleDataSet) Values(dim int) []float64 {
	if dim < 0 || dim >= len(ds.values) {
		return nil
	}
	return ds.values[dim]
}
