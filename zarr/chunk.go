package zarr

import (
	"strconv"
	"strings"
)

// GridShape returns the number of chunks per dimension,
// ceil(shape[i] / chunks[i]). Scalars have an empty grid.
func GridShape(shape, chunks []int) []int {
	if len(shape) == 0 || len(chunks) == 0 {
		return []int{}
	}
	grid := make([]int, len(shape))
	for i := range shape {
		grid[i] = (shape[i] + chunks[i] - 1) / chunks[i]
	}
	return grid
}

// ChunkKey joins chunk indices with separator, "1.4" for [1, 4] and ".".
// Scalars use the key "0".
func ChunkKey(indices []int, separator string) string {
	switch len(indices) {
	case 0:
		return "0"
	case 1:
		return strconv.Itoa(indices[0])
	}

	var sb strings.Builder
	for i, idx := range indices {
		if i > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(strconv.Itoa(idx))
	}
	return sb.String()
}

// strides computes the C-order strides of shape, in elements.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = stride
		stride *= shape[i]
	}
	return s
}

func product(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// checkedProduct is product with every partial result kept at or below
// limit. It reports false when the product would exceed it.
func checkedProduct(shape []int, limit int) (int, bool) {
	n := 1
	for _, d := range shape {
		if d != 0 && n > limit/d {
			return 0, false
		}
		n *= d
	}
	return n, true
}

// forEachIndex calls fn for every index vector in [0, shape) in C order. The
// slice passed to fn is reused between calls.
func forEachIndex(shape []int, fn func(idx []int) error) error {
	if product(shape) == 0 {
		return nil
	}
	idx := make([]int, len(shape))
	for {
		if err := fn(idx); err != nil {
			return err
		}
		i := len(shape) - 1
		for ; i >= 0; i-- {
			idx[i]++
			if idx[i] < shape[i] {
				break
			}
			idx[i] = 0
		}
		if i < 0 {
			return nil
		}
	}
}
