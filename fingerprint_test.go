package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TuSKan/go-dataset"
)

func TestFingerprint(t *testing.T) {
	xy := func(name string, y []float64) dataset.DataSet {
		return build(t, newBuilder(t, dataset.WithName(name)).
			SetValues(dataset.DimX, []float64{0, 1, 2}).
			SetValues(dataset.DimY, y).
			SetMetaInfoList(name))
	}

	a := xy("a", []float64{5, 6, 7})
	b := xy("b", []float64{5, 6, 7})
	c := xy("c", []float64{5, 6, 7.5})

	require.Equal(t, dataset.Fingerprint(a), dataset.Fingerprint(b))
	require.NotEqual(t, dataset.Fingerprint(a), dataset.Fingerprint(c))

	t.Run("errors are hashed", func(t *testing.T) {
		e1 := build(t, newBuilder(t).SetValues(dataset.DimY, []float64{1}).SetPosError(dataset.DimY, []float64{0.1}))
		e2 := build(t, newBuilder(t).SetValues(dataset.DimY, []float64{1}).SetPosError(dataset.DimY, []float64{0.2}))
		require.NotEqual(t, dataset.Fingerprint(e1), dataset.Fingerprint(e2))
	})

	t.Run("kind is hashed", func(t *testing.T) {
		d := build(t, newBuilder(t).SetValues(dataset.DimY, []float64{1, 2}))
		f := build(t, newBuilder(t).SetUseFloat(true).SetValues(dataset.DimY, []float64{1, 2}))
		require.NotEqual(t, dataset.Fingerprint(d), dataset.Fingerprint(f))
	})
}
