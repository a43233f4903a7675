// Package dataset assembles typed numeric datasets from sparse,
// per-dimension contributions.
//
// A Builder collects values and positive/negative errors per dimension index,
// in float32 or float64, together with metadata, axis descriptions and
// per-point labels and styles. Build infers the number of dimensions and the
// size of each one, converts buffers to the requested precision and returns
// one of four shapes:
//
//	dimensions  float32  errors  result
//	0..2        no       no      *DoubleDataSet
//	0..2        yes      no      *FloatDataSet
//	0..2        no       yes     *DoubleErrorDataSet
//	3+          no       no      *MultiDimDoubleDataSet
//
// Every other combination fails with ErrShapeUnsupported.
//
//	b, _ := dataset.NewBuilder(dataset.WithName("scan"))
//	b.SetValues(dataset.DimY, []float64{5, 6, 7}).
//	    SetPosError(dataset.DimY, []float64{0.1, 0.1, 0.1})
//	ds, err := b.Build() // x = 0, 1, 2; negative errors mirror the positive ones
//
// Arrays stored in Zarr V2 stores can be fed into a Builder with the zarr
// sub-package, and built datasets convert to gomlx tensors with Tensor.
package dataset
