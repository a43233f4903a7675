package zarr

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/TuSKan/go-dataset"
)

// Array is a decoded Zarr array. Float32 arrays keep float32 storage, every
// other dtype is widened to float64. Integers beyond 2^53 lose precision.
type Array struct {
	Shape []int
	f64   []float64
	f32   []float32
}

// NewArrayFloat64 wraps values without copying.
func NewArrayFloat64(shape []int, values []float64) *Array {
	return &Array{Shape: slices.Clone(shape), f64: values}
}

// NewArrayFloat32 wraps values without copying.
func NewArrayFloat32(shape []int, values []float32) *Array {
	return &Array{Shape: slices.Clone(shape), f32: values}
}

func decodeArray(dtype string, shape []int, raw []byte) (*Array, error) {
	n := product(shape)
	switch dtype {
	case "<f4":
		v := make([]float32, n)
		for i := range v {
			v[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
		}
		return NewArrayFloat32(shape, v), nil
	case "<f8":
		v := make([]float64, n)
		for i := range v {
			v[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
		}
		return NewArrayFloat64(shape, v), nil
	case "<i4":
		v := make([]float64, n)
		for i := range v {
			v[i] = float64(int32(binary.LittleEndian.Uint32(raw[i*4:])))
		}
		return NewArrayFloat64(shape, v), nil
	case "<i8":
		v := make([]float64, n)
		for i := range v {
			v[i] = float64(int64(binary.LittleEndian.Uint64(raw[i*8:])))
		}
		return NewArrayFloat64(shape, v), nil
	default:
		return nil, fmt.Errorf("unsupported dtype: %s", dtype)
	}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	if a.f32 != nil {
		return len(a.f32)
	}
	return len(a.f64)
}

// Precision reports the storage precision.
func (a *Array) Precision() dataset.Precision {
	if a.f32 != nil {
		return dataset.Float32
	}
	return dataset.Float64
}

// Float64 returns the elements in C order. Float64 arrays return their
// storage, float32 arrays a widened copy.
func (a *Array) Float64() []float64 {
	if a.f32 == nil {
		return a.f64
	}
	out := make([]float64, len(a.f32))
	for i, v := range a.f32 {
		out[i] = float64(v)
	}
	return out
}

// Float32 returns the elements in C order. Float32 arrays return their
// storage, float64 arrays a narrowed copy.
func (a *Array) Float32() []float32 {
	if a.f32 != nil {
		return a.f32
	}
	out := make([]float32, len(a.f64))
	for i, v := range a.f64 {
		out[i] = float32(v)
	}
	return out
}
