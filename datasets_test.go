package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TuSKan/go-dataset"
)

func TestAxisDescription(t *testing.T) {
	a := dataset.NewAxisDescription()
	require.False(t, a.IsDefined())
	require.True(t, math.IsNaN(a.Span()))
	require.False(t, a.Contains(0))

	a.Min, a.Max = -1, 3
	require.True(t, a.IsDefined())
	require.Equal(t, 4.0, a.Span())
	require.True(t, a.Contains(-1))
	require.True(t, a.Contains(3))
	require.False(t, a.Contains(3.5))
}

func TestDataSet_AutoRange(t *testing.T) {
	t.Run("ignores NaN", func(t *testing.T) {
		ds := build(t, newBuilder(t).SetValues(dataset.DimY, []float64{2, math.NaN(), -4}))
		y := ds.AxisDescription(dataset.DimY)
		require.Equal(t, -4.0, y.Min)
		require.Equal(t, 2.0, y.Max)
	})

	t.Run("empty series stays undefined", func(t *testing.T) {
		ds := build(t, newBuilder(t).SetDimension(2))
		require.False(t, ds.AxisDescription(dataset.DimX).IsDefined())
		require.False(t, ds.AxisDescription(dataset.DimY).IsDefined())
	})

	t.Run("float series", func(t *testing.T) {
		ds := build(t, newBuilder(t).SetUseFloat(true).SetValuesFloat32(dataset.DimY, []float32{1.5, -0.5}))
		y := ds.AxisDescription(dataset.DimY)
		require.Equal(t, -0.5, y.Min)
		require.Equal(t, 1.5, y.Max)
		require.Equal(t, 1.0, ds.AxisDescription(dataset.DimX).Max)
	})

	t.Run("errors widen y", func(t *testing.T) {
		ds := build(t, newBuilder(t).
			SetValues(dataset.DimY, []float64{5, 6, 7}).
			SetPosError(dataset.DimY, []float64{0.1, 0.1, 0.1}).
			SetNegError(dataset.DimY, []float64{0.5, 0, 0}))
		y := ds.AxisDescription(dataset.DimY)
		require.InDelta(t, 4.5, y.Min, 1e-12)
		require.InDelta(t, 7.1, y.Max, 1e-12)
	})

	t.Run("multi dim", func(t *testing.T) {
		ds := build(t, newBuilder(t).
			SetValues(0, []float64{3, 1}).
			SetValues(1, []float64{10}).
			SetValues(2, []float64{-2, 8}))
		require.Equal(t, 1.0, ds.AxisDescription(0).Min)
		require.Equal(t, 10.0, ds.AxisDescription(1).Max)
		require.Equal(t, -2.0, ds.AxisDescription(2).Min)
	})
}

func TestDataSet_Accessors(t *testing.T) {
	ds := build(t, newBuilder(t).SetValues(dataset.DimY, []float64{1, 2}))

	require.Zero(t, ds.DataCount(-1))
	require.Zero(t, ds.DataCount(2))
	require.Nil(t, ds.Values(2))
	require.Nil(t, ds.AxisDescription(-1))
	require.Panics(t, func() { ds.Get(dataset.DimY, 2) })

	y := ds.AxisDescription(dataset.DimY)
	y.Name = "renamed"
	y.Max = 1000
	require.Empty(t, ds.AxisDescription(dataset.DimY).Name)
	require.Equal(t, 2.0, ds.AxisDescriptions()[dataset.DimY].Max)

	axes := ds.AxisDescriptions()
	axes[0].Name = "copy"
	require.Empty(t, ds.AxisDescription(dataset.DimX).Name)

	labels := ds.DataLabels()
	labels[0] = "x"
	require.Empty(t, ds.DataLabel(0))
}

func TestErrorDataSet_Accessors(t *testing.T) {
	ds := build(t, newBuilder(t).
		SetValues(dataset.DimY, []float64{1, 2}).
		SetNegError(dataset.DimY, []float64{0.25, 0.5}))
	eds := ds.(*dataset.DoubleErrorDataSet)

	require.Equal(t, dataset.KindDoubleError, eds.Kind())
	require.Equal(t, 0.5, eds.ErrorPositive(dataset.DimY, 1))
	require.Zero(t, eds.ErrorPositive(dataset.DimX, 1))
	require.Nil(t, eds.ErrorsPositive(2))
	require.Nil(t, eds.ErrorsNegative(-1))
	require.Equal(t, []float64{0, 1}, eds.Values(dataset.DimX))
}

func TestFloatDataSet_Values(t *testing.T) {
	ds := build(t, newBuilder(t).SetUseFloat(true).SetValuesFloat32(dataset.DimY, []float32{1, 2}))
	fds := ds.(*dataset.FloatDataSet)

	widened := fds.Values(dataset.DimY)
	widened[0] = 99
	require.Equal(t, float32(1), fds.Float32Values(dataset.DimY)[0])
	require.Equal(t, 2.0, fds.Get(dataset.DimY, 1))
	require.Nil(t, fds.Values(2))
	require.Zero(t, fds.DataCount(5))
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Double", dataset.KindDouble.String())
	require.Equal(t, "Float", dataset.KindFloat.String())
	require.Equal(t, "DoubleError", dataset.KindDoubleError.String())
	require.Equal(t, "MultiDimDouble", dataset.KindMultiDimDouble.String())
	require.Equal(t, "Unknown", dataset.Kind(0).String())
}
