package dataset

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TuSKan/go-dataset/internal/options"
)

// Option configures a Builder at construction time.
type Option = options.Option[*Builder]

func applyOptions(b *Builder, opts ...Option) error {
	return options.Apply(b, opts...)
}

// WithName sets the dataset name, see Builder.SetName.
func WithName(name string) Option {
	return options.NoError(func(b *Builder) { b.SetName(name) })
}

// WithLogger routes the builder's log output to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.New(func(b *Builder) error {
		if logger == nil {
			return errors.New("dataset: logger must not be nil")
		}
		b.logger = logger
		return nil
	})
}

// WithClock replaces the clock used to derive names of unnamed datasets.
func WithClock(now func() time.Time) Option {
	return options.New(func(b *Builder) error {
		if now == nil {
			return errors.New("dataset: clock must not be nil")
		}
		b.now = now
		return nil
	})
}

// WithDimension is the option form of Builder.SetDimension.
func WithDimension(nDims int) Option {
	return options.NoError(func(b *Builder) { b.SetDimension(nDims) })
}

// WithInitialCapacity is the option form of Builder.SetInitialCapacity.
func WithInitialCapacity(capacity ...int) Option {
	return options.NoError(func(b *Builder) { b.SetInitialCapacity(capacity...) })
}

// WithUseFloat is the option form of Builder.SetUseFloat.
func WithUseFloat(useFloat bool) Option {
	return options.NoError(func(b *Builder) { b.SetUseFloat(useFloat) })
}

// WithEnableErrors is the option form of Builder.SetEnableErrors.
func WithEnableErrors(enable bool) Option {
	return options.NoError(func(b *Builder) { b.SetEnableErrors(enable) })
}
