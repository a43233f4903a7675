package dataset

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the numeric content of ds with xxHash64: kind,
// dimension, the values of every dimension and, for error datasets, both
// error buffers. Name, metadata, axes and labels are not included.
func Fingerprint(ds DataSet) uint64 {
	h := xxhash.New()
	buf := make([]byte, 0, 8)

	write := func(v uint64) {
		buf = binary.LittleEndian.AppendUint64(buf[:0], v)
		_, _ = h.Write(buf)
	}
	writeAll := func(values []float64) {
		write(uint64(len(values)))
		for _, v := range values {
			write(math.Float64bits(v))
		}
	}

	write(uint64(ds.Kind()))
	write(uint64(ds.Dimension()))
	for dim := 0; dim < ds.Dimension(); dim++ {
		writeAll(ds.Values(dim))
	}
	if eds, ok := ds.(ErrorDataSet); ok {
		for dim := 0; dim < ds.Dimension(); dim++ {
			writeAll(eds.ErrorsNegative(dim))
			writeAll(eds.ErrorsPositive(dim))
		}
	}

	return h.Sum64()
}
