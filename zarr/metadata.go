package zarr

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// MetadataKey is the object holding the array metadata of a Zarr V2 store.
const MetadataKey = ".zarray"

// CompressorConfig represents the Zarr compressor metadata.
type CompressorConfig struct {
	ID    string `json:"id"`
	Level int    `json:"level,omitempty"`
}

// Metadata represents the Zarr V2 .zarray metadata.
type Metadata struct {
	ZarrFormat         int               `json:"zarr_format"`
	Shape              []int             `json:"shape"`
	Chunks             []int             `json:"chunks"`
	DType              string            `json:"dtype"`
	Compressor         *CompressorConfig `json:"compressor"`
	FillValue          any               `json:"fill_value"`
	Order              string            `json:"order"`
	DimensionSeparator string            `json:"dimension_separator,omitempty"`
}

// LoadMetadata reads and validates .zarray metadata.
func LoadMetadata(reader io.Reader) (*Metadata, error) {
	var meta Metadata
	if err := json.NewDecoder(reader).Decode(&meta); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	if err := meta.validate(); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (m *Metadata) validate() error {
	if m.ZarrFormat != 2 {
		return fmt.Errorf("unsupported zarr_format: %d, expected 2", m.ZarrFormat)
	}
	if len(m.Shape) != len(m.Chunks) {
		return fmt.Errorf("shape %v and chunks %v differ in rank", m.Shape, m.Chunks)
	}
	for i := range m.Shape {
		if m.Shape[i] < 0 || m.Chunks[i] <= 0 {
			return fmt.Errorf("invalid extent at dimension %d: shape %d, chunk %d", i, m.Shape[i], m.Chunks[i])
		}
	}
	if m.Order != "" && m.Order != "C" {
		return fmt.Errorf("unsupported order: %s", m.Order)
	}
	_, itemSize, err := ParseDType(m.DType)
	if err != nil {
		return err
	}
	limit := math.MaxInt / itemSize
	if _, ok := checkedProduct(m.Shape, limit); !ok {
		return fmt.Errorf("shape %v of %s exceeds the addressable size", m.Shape, m.DType)
	}
	if _, ok := checkedProduct(m.Chunks, limit); !ok {
		return fmt.Errorf("chunks %v of %s exceed the addressable size", m.Chunks, m.DType)
	}
	if _, err := m.fillValue(); err != nil {
		return err
	}

	return nil
}

// Separator returns the chunk key separator, "." unless the metadata sets one.
func (m *Metadata) Separator() string {
	if m.DimensionSeparator == "" {
		return "."
	}
	return m.DimensionSeparator
}

// ElementCount returns the number of elements of the array.
func (m *Metadata) ElementCount() int {
	return product(m.Shape)
}

// fillValue returns the fill value as float64. A null fill value is zero.
// Strings follow the Zarr encoding of non-finite floats.
func (m *Metadata) fillValue() (float64, error) {
	switch v := m.FillValue.(type) {
	case nil:
		return 0, nil
	case float64:
		return v, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		switch v {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
	}
	return 0, fmt.Errorf("unsupported fill_value: %v", m.FillValue)
}

// fillChunk returns n elements of the fill value encoded as the array dtype.
func (m *Metadata) fillChunk(n int) ([]byte, error) {
	name, itemSize, err := ParseDType(m.DType)
	if err != nil {
		return nil, fmt.Errorf("invalid dtype: %w", err)
	}
	fill, err := m.fillValue()
	if err != nil {
		return nil, err
	}

	out := make([]byte, n*itemSize)
	if fill == 0 {
		return out, nil
	}

	item := make([]byte, itemSize)
	switch name {
	case "float32":
		binary.LittleEndian.PutUint32(item, math.Float32bits(float32(fill)))
	case "float64":
		binary.LittleEndian.PutUint64(item, math.Float64bits(fill))
	case "int32":
		binary.LittleEndian.PutUint32(item, uint32(int32(fill)))
	case "int64":
		binary.LittleEndian.PutUint64(item, uint64(int64(fill)))
	default:
		return nil, fmt.Errorf("unsupported fill_value %v for dtype %s", fill, m.DType)
	}
	for i := 0; i < len(out); i += itemSize {
		copy(out[i:], item)
	}
	return out, nil
}

// ParseDType takes a numpy-style string like "<f4", "|b1" or "<i8" and
// returns a simplified name ("float32", "bool", "int64") and the item size
// in bytes. Big-endian types are rejected.
func ParseDType(s string) (string, int, error) {
	if len(s) < 3 {
		return "", 0, fmt.Errorf("invalid dtype: %s", s)
	}

	endian := s[0]
	if endian == '>' {
		return "", 0, fmt.Errorf("big-endian types are unsupported: %s", s)
	}
	if endian != '<' && endian != '|' {
		return "", 0, fmt.Errorf("invalid byte order in dtype: %s", s)
	}

	size, err := strconv.Atoi(s[2:])
	if err != nil || size <= 0 {
		return "", 0, fmt.Errorf("invalid size in dtype: %s", s)
	}

	switch kind := s[1]; kind {
	case 'b':
		return "bool", size, nil
	case 'i':
		return fmt.Sprintf("int%d", size*8), size, nil
	case 'u':
		return fmt.Sprintf("uint%d", size*8), size, nil
	case 'f':
		return fmt.Sprintf("float%d", size*8), size, nil
	default:
		return "", 0, fmt.Errorf("unsupported dtype kind: %c in %s", kind, s)
	}
}
