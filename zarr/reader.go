package zarr

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	"github.com/TuSKan/go-dataset/internal/options"
)

// Reader reads one Zarr V2 array from a blob bucket.
type Reader struct {
	bucket *blob.Bucket
	meta   *Metadata
	zstd   *zstd.Decoder
	logger logrus.FieldLogger
}

// Option configures a Reader.
type Option = options.Option[*Reader]

// WithLogger sets the logger receiving chunk level debug entries.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.New(func(r *Reader) error {
		if logger == nil {
			return fmt.Errorf("zarr: logger must not be nil")
		}
		r.logger = logger
		return nil
	})
}

// Open opens the bucket at url, for example "file:///data/scan.zarr", and
// reads its array metadata. The Reader owns the bucket.
func Open(ctx context.Context, url string, opts ...Option) (*Reader, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket: %w", err)
	}
	r, err := NewReader(ctx, bucket, opts...)
	if err != nil {
		_ = bucket.Close()
		return nil, err
	}
	return r, nil
}

// NewReader reads the array metadata from bucket. Closing the Reader closes
// the bucket.
func NewReader(ctx context.Context, bucket *blob.Bucket, opts ...Option) (*Reader, error) {
	r := &Reader{bucket: bucket, logger: logrus.StandardLogger()}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	reader, err := bucket.NewReader(ctx, MetadataKey, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", MetadataKey, err)
	}
	defer reader.Close()

	meta, err := LoadMetadata(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to load metadata: %w", err)
	}
	r.meta = meta

	if meta.Compressor != nil && meta.Compressor.ID == "zstd" {
		r.zstd, err = zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
	}
	return r, nil
}

// Metadata returns the array metadata.
func (r *Reader) Metadata() *Metadata {
	return r.meta
}

// ReadChunk reads and decompresses the chunk at coords. A missing chunk is
// returned filled with the array's fill value.
func (r *Reader) ReadChunk(ctx context.Context, coords []int) ([]byte, error) {
	key := ChunkKey(coords, r.meta.Separator())

	data, err := r.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			r.logger.WithField("chunk", key).Debug("chunk missing, using fill value")
			return r.meta.fillChunk(product(r.meta.Chunks))
		}
		return nil, fmt.Errorf("failed to read chunk %s: %w", key, err)
	}

	data, err = r.decompress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress chunk %s: %w", key, err)
	}
	return data, nil
}

func (r *Reader) decompress(data []byte) ([]byte, error) {
	if r.meta.Compressor == nil {
		return data, nil
	}

	switch id := r.meta.Compressor.ID; id {
	case "zstd":
		return r.zstd.DecodeAll(data, nil)
	case "zlib":
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	default:
		return nil, fmt.Errorf("unsupported compressor: %s", id)
	}
}

// ReadFull reads the entire array into a flat little-endian byte slice in C
// order.
func (r *Reader) ReadFull(ctx context.Context) ([]byte, error) {
	_, itemSize, err := ParseDType(r.meta.DType)
	if err != nil {
		return nil, fmt.Errorf("invalid dtype: %w", err)
	}

	out := make([]byte, r.meta.ElementCount()*itemSize)
	dstStrides := strides(r.meta.Shape)
	srcStrides := strides(r.meta.Chunks)

	err = forEachIndex(GridShape(r.meta.Shape, r.meta.Chunks), func(coords []int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk, err := r.ReadChunk(ctx, coords)
		if err != nil {
			return err
		}
		return r.copyChunk(out, dstStrides, chunk, srcStrides, coords, itemSize)
	})
	if err != nil {
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"shape": r.meta.Shape,
		"dtype": r.meta.DType,
		"bytes": len(out),
	}).Debug("zarr array read")
	return out, nil
}

// copyChunk copies the part of chunk at coords that lies inside the array
// into dst, one contiguous row at a time. Edge chunks are stored at full
// chunk size.
func (r *Reader) copyChunk(dst []byte, dstStrides []int, chunk []byte, srcStrides []int, coords []int, itemSize int) error {
	want := product(r.meta.Chunks) * itemSize
	if len(chunk) < want {
		return fmt.Errorf("chunk %v holds %d bytes, want %d", coords, len(chunk), want)
	}

	rank := len(coords)
	if rank == 0 {
		copy(dst, chunk[:itemSize])
		return nil
	}

	start := make([]int, rank)
	extent := make([]int, rank)
	for i, c := range coords {
		start[i] = c * r.meta.Chunks[i]
		extent[i] = min(r.meta.Chunks[i], r.meta.Shape[i]-start[i])
	}

	rowBytes := extent[rank-1] * itemSize
	return forEachIndex(extent[:rank-1], func(idx []int) error {
		src, off := 0, start[rank-1]
		for i, v := range idx {
			src += v * srcStrides[i]
			off += (start[i] + v) * dstStrides[i]
		}
		copy(dst[off*itemSize:off*itemSize+rowBytes], chunk[src*itemSize:src*itemSize+rowBytes])
		return nil
	})
}

// ReadArray reads the entire array and decodes it. Supported dtypes are
// <f4, <f8, <i4 and <i8.
func (r *Reader) ReadArray(ctx context.Context) (*Array, error) {
	raw, err := r.ReadFull(ctx)
	if err != nil {
		return nil, err
	}
	return decodeArray(r.meta.DType, r.meta.Shape, raw)
}

// Close releases the decoder and closes the bucket.
func (r *Reader) Close() error {
	if r.zstd != nil {
		r.zstd.Close()
	}
	return r.bucket.Close()
}
