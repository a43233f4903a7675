package dataset

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
)

// errorSign selects the positive or negative error of a dimension.
type errorSign uint8

const (
	negative errorSign = iota
	positive
)

func (s errorSign) opposite() errorSign {
	if s == positive {
		return negative
	}
	return positive
}

type errorKey struct {
	dim  int
	sign errorSign
}

// Builder accumulates per-dimension values, errors and metadata and turns
// them into one DataSet.
//
// Values are converted between float32 and float64 as the requested dataset
// needs. Missing dimensions are filled in: dimension 0 becomes the index
// sequence 0..n-1, every other dimension and every error becomes zeros.
//
// A Builder is not safe for concurrent use and produces a single dataset:
// once Build succeeds, further calls to Build fail with ErrBuilderConsumed.
type Builder struct {
	name string

	values map[int]buffer
	errs   map[errorKey]buffer

	capacity  []int // per dimension, the last entry covers all higher dimensions
	dimension int   // negative: inferred from the data
	useErrors bool
	useFloat  bool

	infos    []string
	warnings []string
	errors   []string
	metaInfo map[string]string

	labels map[int]string
	styles map[int]string
	axes   map[int]*AxisDescription

	logger logrus.FieldLogger
	now    func() time.Time
	built  bool
}

// NewBuilder creates an empty Builder configured by opts.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		values:    make(map[int]buffer),
		errs:      make(map[errorKey]buffer),
		dimension: -1,
		metaInfo:  make(map[string]string),
		labels:    make(map[int]string),
		styles:    make(map[int]string),
		axes:      make(map[int]*AxisDescription),
		logger:    discardLogger(),
		now:       time.Now,
	}
	if err := applyOptions(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetName sets the dataset name. Without a name Build derives one from the
// current time.
func (b *Builder) SetName(name string) *Builder {
	b.name = name
	return b
}

// SetValues stores a copy of values for dimension dim.
func (b *Builder) SetValues(dim int, values []float64) *Builder {
	return b.SetValuesNoCopy(dim, slices.Clone(values))
}

// SetValuesFloat32 stores a copy of values for dimension dim.
func (b *Builder) SetValuesFloat32(dim int, values []float32) *Builder {
	return b.SetValuesFloat32NoCopy(dim, slices.Clone(values))
}

// SetValuesNoCopy stores values for dimension dim without copying. The built
// dataset may share the slice, so the caller must not modify it afterwards.
// A negative dim makes Build fail with ErrInvalidArgument.
func (b *Builder) SetValuesNoCopy(dim int, values []float64) *Builder {
	b.values[dim] = float64Buffer(values)
	return b
}

// SetValuesFloat32NoCopy is the float32 variant of SetValuesNoCopy.
func (b *Builder) SetValuesFloat32NoCopy(dim int, values []float32) *Builder {
	b.values[dim] = float32Buffer(values)
	return b
}

// SetValuesMatrix flattens a rectangular nested array row by row into the
// values of dimension dim. Empty or ragged input fails with
// ErrInvalidArgument.
func (b *Builder) SetValuesMatrix(dim int, values [][]float64) error {
	flat, err := flattenRows(values)
	if err != nil {
		return err
	}
	b.SetValuesNoCopy(dim, flat)
	return nil
}

func flattenRows[T float32 | float64](rows [][]T) ([]T, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty nested array: %w", ErrInvalidArgument)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("empty first row: %w", ErrInvalidArgument)
	}
	flat := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrInvalidArgument)
		}
		flat = append(flat, row...)
	}
	return flat, nil
}

// SetPosError stores a copy of the positive errors of dimension dim and
// enables errors.
func (b *Builder) SetPosError(dim int, errs []float64) *Builder {
	return b.SetPosErrorNoCopy(dim, slices.Clone(errs))
}

// SetPosErrorFloat32 is the float32 variant of SetPosError.
func (b *Builder) SetPosErrorFloat32(dim int, errs []float32) *Builder {
	return b.SetPosErrorFloat32NoCopy(dim, slices.Clone(errs))
}

// SetPosErrorNoCopy stores the positive errors of dimension dim without
// copying and enables errors.
func (b *Builder) SetPosErrorNoCopy(dim int, errs []float64) *Builder {
	return b.setError(dim, positive, float64Buffer(errs))
}

// SetPosErrorFloat32NoCopy is the float32 variant of SetPosErrorNoCopy.
func (b *Builder) SetPosErrorFloat32NoCopy(dim int, errs []float32) *Builder {
	return b.setError(dim, positive, float32Buffer(errs))
}

// SetNegError stores a copy of the negative errors of dimension dim and
// enables errors.
func (b *Builder) SetNegError(dim int, errs []float64) *Builder {
	return b.SetNegErrorNoCopy(dim, slices.Clone(errs))
}

// SetNegErrorFloat32 is the float32 variant of SetNegError.
func (b *Builder) SetNegErrorFloat32(dim int, errs []float32) *Builder {
	return b.SetNegErrorFloat32NoCopy(dim, slices.Clone(errs))
}

// SetNegErrorNoCopy stores the negative errors of dimension dim without
// copying and enables errors.
func (b *Builder) SetNegErrorNoCopy(dim int, errs []float64) *Builder {
	return b.setError(dim, negative, float64Buffer(errs))
}

// SetNegErrorFloat32NoCopy is the float32 variant of SetNegErrorNoCopy.
func (b *Builder) SetNegErrorFloat32NoCopy(dim int, errs []float32) *Builder {
	return b.setError(dim, negative, float32Buffer(errs))
}

func (b *Builder) setError(dim int, sign errorSign, buf buffer) *Builder {
	b.errs[errorKey{dim: dim, sign: sign}] = buf
	return b.SetEnableErrors(true)
}

// SetDimension requests a dataset with nDims dimensions. A negative value
// restores inference from the supplied data.
func (b *Builder) SetDimension(nDims int) *Builder {
	b.dimension = nDims
	return b
}

// SetInitialCapacity sets the number of elements per dimension. Dimensions
// beyond len(capacity) use the last value, so a single value applies to all
// dimensions. Without arguments sizes are inferred from the data.
func (b *Builder) SetInitialCapacity(capacity ...int) *Builder {
	b.capacity = slices.Clone(capacity)
	return b
}

// SetEnableErrors selects whether the dataset carries errors. Every error
// setter enables errors implicitly.
func (b *Builder) SetEnableErrors(enable bool) *Builder {
	b.useErrors = enable
	return b
}

// SetUseFloat selects float32 storage for the dataset.
func (b *Builder) SetUseFloat(useFloat bool) *Builder {
	b.useFloat = useFloat
	return b
}

func (b *Builder) axis(dim int) (*AxisDescription, error) {
	if dim < 0 {
		return nil, fmt.Errorf("axis dimension %d: %w", dim, ErrInvalidArgument)
	}
	a, ok := b.axes[dim]
	if !ok {
		desc := NewAxisDescription()
		a = &desc
		b.axes[dim] = a
	}
	return a, nil
}

// SetAxisName names the axis of dimension dim.
func (b *Builder) SetAxisName(dim int, name string) error {
	a, err := b.axis(dim)
	if err != nil {
		return err
	}
	a.Name = name
	return nil
}

// SetAxisUnit sets the unit of the axis of dimension dim.
func (b *Builder) SetAxisUnit(dim int, unit string) error {
	a, err := b.axis(dim)
	if err != nil {
		return err
	}
	a.Unit = unit
	return nil
}

// SetAxisMin overrides the lower bound of the axis of dimension dim.
func (b *Builder) SetAxisMin(dim int, v float64) error {
	a, err := b.axis(dim)
	if err != nil {
		return err
	}
	a.Min = v
	return nil
}

// SetAxisMax overrides the upper bound of the axis of dimension dim.
func (b *Builder) SetAxisMax(dim int, v float64) error {
	a, err := b.axis(dim)
	if err != nil {
		return err
	}
	a.Max = v
	return nil
}

// SetMetaInfoList appends info messages.
func (b *Builder) SetMetaInfoList(infos ...string) *Builder {
	b.infos = append(b.infos, infos...)
	return b
}

// SetMetaWarningList appends warning messages.
func (b *Builder) SetMetaWarningList(warnings ...string) *Builder {
	b.warnings = append(b.warnings, warnings...)
	return b
}

// SetMetaErrorList appends error messages.
func (b *Builder) SetMetaErrorList(errs ...string) *Builder {
	b.errors = append(b.errors, errs...)
	return b
}

// SetMetaInfoMap merges m into the key/value metadata.
func (b *Builder) SetMetaInfoMap(m map[string]string) *Builder {
	maps.Copy(b.metaInfo, m)
	return b
}

// SetDataLabelMap merges m into the labels, keyed by data point index.
func (b *Builder) SetDataLabelMap(m map[int]string) *Builder {
	maps.Copy(b.labels, m)
	return b
}

// SetDataStyleMap merges m into the styles, keyed by data point index.
func (b *Builder) SetDataStyleMap(m map[int]string) *Builder {
	maps.Copy(b.styles, m)
	return b
}
