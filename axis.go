package dataset

import "math"

// AxisDescription names one dimension of a dataset and carries its range.
// A NaN Min or Max means the bound is undefined.
type AxisDescription struct {
	Name string
	Unit string
	Min  float64
	Max  float64
}

// NewAxisDescription returns an unnamed description with an undefined range.
func NewAxisDescription() AxisDescription {
	return AxisDescription{Min: math.NaN(), Max: math.NaN()}
}

// IsDefined reports whether both bounds are set.
func (a AxisDescription) IsDefined() bool {
	return !math.IsNaN(a.Min) && !math.IsNaN(a.Max)
}

// Span returns Max-Min, or NaN when the range is undefined.
func (a AxisDescription) Span() float64 {
	if !a.IsDefined() {
		return math.NaN()
	}
	return a.Max - a.Min
}

// Contains reports whether v lies within [Min, Max].
func (a AxisDescription) Contains(v float64) bool {
	return a.IsDefined() && v >= a.Min && v <= a.Max
}

// add widens the range to include v. NaN values are ignored.
func (a *AxisDescription) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if math.IsNaN(a.Min) || v < a.Min {
		a.Min = v
	}
	if math.IsNaN(a.Max) || v > a.Max {
		a.Max = v
	}
}

// override copies the fields of o that are set: non-empty name and unit,
// non-NaN bounds.
func (a *AxisDescription) override(o AxisDescription) {
	if o.Name != "" {
		a.Name = o.Name
	}
	if o.Unit != "" {
		a.Unit = o.Unit
	}
	if !math.IsNaN(o.Min) {
		a.Min = o.Min
	}
	if !math.IsNaN(o.Max) {
		a.Max = o.Max
	}
}
