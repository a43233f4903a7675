package dataset

// X/Y aliases kept for callers of the two-dimensional API. Each forwards to
// the indexed setter with DimX or DimY.

// Deprecated: use SetValues(DimX, values).
func (b *Builder) SetXValues(values []float64) *Builder { return b.SetValues(DimX, values) }

// Deprecated: use SetValues(DimY, values).
func (b *Builder) SetYValues(values []float64) *Builder { return b.SetValues(DimY, values) }

// Deprecated: use SetValuesNoCopy(DimX, values).
func (b *Builder) SetXValuesNoCopy(values []float64) *Builder {
	return b.SetValuesNoCopy(DimX, values)
}

// Deprecated: use SetValuesNoCopy(DimY, values).
func (b *Builder) SetYValuesNoCopy(values []float64) *Builder {
	return b.SetValuesNoCopy(DimY, values)
}

// Deprecated: use SetPosError(DimX, errs).
func (b *Builder) SetXPosError(errs []float64) *Builder { return b.SetPosError(DimX, errs) }

// Deprecated: use SetPosError(DimY, errs).
func (b *Builder) SetYPosError(errs []float64) *Builder { return b.SetPosError(DimY, errs) }

// Deprecated: use SetPosErrorNoCopy(DimX, errs).
func (b *Builder) SetXPosErrorNoCopy(errs []float64) *Builder {
	return b.SetPosErrorNoCopy(DimX, errs)
}

// Deprecated: use SetPosErrorNoCopy(DimY, errs).
func (b *Builder) SetYPosErrorNoCopy(errs []float64) *Builder {
	return b.SetPosErrorNoCopy(DimY, errs)
}

// Deprecated: use SetNegError(DimX, errs).
func (b *Builder) SetXNegError(errs []float64) *Builder { return b.SetNegError(DimX, errs) }

// Deprecated: use SetNegError(DimY, errs).
func (b *Builder) SetYNegError(errs []float64) *Builder { return b.SetNegError(DimY, errs) }

// Deprecated: use SetNegErrorNoCopy(DimX, errs).
func (b *Builder) SetXNegErrorNoCopy(errs []float64) *Builder {
	return b.SetNegErrorNoCopy(DimX, errs)
}

// Deprecated: use SetNegErrorNoCopy(DimY, errs).
func (b *Builder) SetYNegErrorNoCopy(errs []float64) *Builder {
	return b.SetNegErrorNoCopy(DimY, errs)
}
