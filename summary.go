package dataset

import (
	"math"
	"strconv"
)

// Summary is a JSON friendly snapshot of a dataset without its values.
type Summary struct {
	Name        string            `json:"name"`
	Kind        string            `json:"kind"`
	Dimension   int               `json:"dimension"`
	DataCount   []int             `json:"data_count"`
	Axes        []AxisSummary     `json:"axes"`
	Info        []string          `json:"info,omitempty"`
	Warnings    []string          `json:"warnings,omitempty"`
	Errors      []string          `json:"errors,omitempty"`
	MetaInfo    map[string]string `json:"meta_info,omitempty"`
	Labels      int               `json:"labels"`
	Styles      int               `json:"styles"`
	Fingerprint string            `json:"fingerprint"`
}

// AxisSummary describes one axis. Undefined bounds are omitted.
type AxisSummary struct {
	Name string   `json:"name,omitempty"`
	Unit string   `json:"unit,omitempty"`
	Min  *float64 `json:"min,omitempty"`
	Max  *float64 `json:"max,omitempty"`
}

// Summarize builds the Summary of ds.
func Summarize(ds DataSet) Summary {
	s := Summary{
		Name:        ds.Name(),
		Kind:        ds.Kind().String(),
		Dimension:   ds.Dimension(),
		DataCount:   make([]int, ds.Dimension()),
		Info:        ds.InfoList(),
		Warnings:    ds.WarningList(),
		Errors:      ds.ErrorList(),
		MetaInfo:    ds.MetaInfo(),
		Labels:      len(ds.DataLabels()),
		Styles:      len(ds.DataStyles()),
		Fingerprint: strconv.FormatUint(Fingerprint(ds), 16),
	}
	for dim := range s.DataCount {
		s.DataCount[dim] = ds.DataCount(dim)
	}
	for _, a := range ds.AxisDescriptions() {
		s.Axes = append(s.Axes, AxisSummary{
			Name: a.Name,
			Unit: a.Unit,
			Min:  finite(a.Min),
			Max:  finite(a.Max),
		})
	}
	return s
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
