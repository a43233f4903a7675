package dataset

// Precision is the numeric representation of a buffer.
type Precision uint8

const (
	Float64 Precision = iota + 1
	Float32
)

func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return "unknown"
	}
}

// buffer holds exactly one of f64 or f32, selected by prec.
type buffer struct {
	prec Precision
	f64  []float64
	f32  []float32
}

func float64Buffer(v []float64) buffer { return buffer{prec: Float64, f64: v} }

func float32Buffer(v []float32) buffer { return buffer{prec: Float32, f32: v} }

func (b buffer) len() int {
	if b.prec == Float32 {
		return len(b.f32)
	}
	return len(b.f64)
}

// float64s returns the buffer as exactly n float64 values. A float64 buffer
// of length n is returned as is; anything else is copied, truncated or padded
// with zeros.
func (b buffer) float64s(n int) []float64 {
	if b.prec == Float64 {
		if len(b.f64) == n {
			return b.f64
		}
		out := make([]float64, n)
		copy(out, b.f64)
		return out
	}
	out := make([]float64, n)
	for i := 0; i < n && i < len(b.f32); i++ {
		out[i] = float64(b.f32[i])
	}
	return out
}

// float32s is the float32 counterpart of float64s.
func (b buffer) float32s(n int) []float32 {
	if b.prec == Float32 {
		if len(b.f32) == n {
			return b.f32
		}
		out := make([]float32, n)
		copy(out, b.f32)
		return out
	}
	out := make([]float32, n)
	for i := 0; i < n && i < len(b.f64); i++ {
		out[i] = float32(b.f64[i])
	}
	return out
}

// clone returns n float64 values that never alias b.
func (b buffer) clone(n int) []float64 {
	out := make([]float64, n)
	if b.prec == Float64 {
		copy(out, b.f64)
		return out
	}
	for i := 0; i < n && i < len(b.f32); i++ {
		out[i] = float64(b.f32[i])
	}
	return out
}

func indexSequence64(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

func indexSequence32(n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(i)
	}
	return out
}
