package dataset_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TuSKan/go-dataset"
)

func TestSummarize(t *testing.T) {
	b := newBuilder(t, dataset.WithName("scan")).
		SetValues(dataset.DimY, []float64{5, 6, 7}).
		SetMetaWarningList("saturated").
		SetMetaInfoMap(map[string]string{"device": "bpm1"}).
		SetDataLabelMap(map[int]string{1: "peak"})
	require.NoError(t, b.SetAxisUnit(dataset.DimY, "V"))
	ds := build(t, b)

	s := dataset.Summarize(ds)
	require.Equal(t, "scan", s.Name)
	require.Equal(t, "Double", s.Kind)
	require.Equal(t, 2, s.Dimension)
	require.Equal(t, []int{3, 3}, s.DataCount)
	require.Equal(t, []string{"saturated"}, s.Warnings)
	require.Equal(t, 1, s.Labels)
	require.Zero(t, s.Styles)
	require.Equal(t, strconv.FormatUint(dataset.Fingerprint(ds), 16), s.Fingerprint)

	require.Len(t, s.Axes, 2)
	require.Equal(t, "V", s.Axes[1].Unit)
	require.NotNil(t, s.Axes[1].Min)
	require.Equal(t, 5.0, *s.Axes[1].Min)
	require.Equal(t, 7.0, *s.Axes[1].Max)

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "scan", decoded["name"])
	require.Equal(t, map[string]any{"device": "bpm1"}, decoded["meta_info"])
	require.NotContains(t, decoded, "errors")
}

func TestSummarize_UndefinedAxis(t *testing.T) {
	s := dataset.Summarize(build(t, newBuilder(t).SetDimension(2)))
	require.Nil(t, s.Axes[0].Min)
	require.Nil(t, s.Axes[0].Max)

	raw, err := json.Marshal(s.Axes[0])
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(raw))
}
