package dataset

import "fmt"

// Kind identifies the concrete shape of a built dataset.
type Kind uint8

const (
	// KindDouble is a float64 X/Y series (DoubleDataSet).
	KindDouble Kind = iota + 1
	// KindFloat is a float32 X/Y series (FloatDataSet).
	KindFloat
	// KindDoubleError is a float64 X/Y series with asymmetric Y errors
	// (DoubleErrorDataSet).
	KindDoubleError
	// KindMultiDimDouble is a float64 dataset with three or more dimensions
	// (MultiDimDoubleDataSet).
	KindMultiDimDouble
)

func (k Kind) String() string {
	switch k {
	case KindDouble:
		return "Double"
	case KindFloat:
		return "Float"
	case KindDoubleError:
		return "DoubleError"
	case KindMultiDimDouble:
		return "MultiDimDouble"
	default:
		return "Unknown"
	}
}

// selectKind maps the inferred dimension and the precision and error
// requirements onto a dataset kind. Combinations without an implementation
// fail here instead of being downgraded.
func selectKind(dim int, useFloat, hasErrors bool) (Kind, error) {
	if dim <= 2 {
		switch {
		case !useFloat && !hasErrors:
			return KindDouble, nil
		case useFloat && !hasErrors:
			return KindFloat, nil
		case !useFloat && hasErrors:
			return KindDoubleError, nil
		default:
			return 0, fmt.Errorf("float32 series with errors: %w", ErrShapeUnsupported)
		}
	}

	if useFloat {
		return 0, fmt.Errorf("float32 dataset with %d dimensions: %w", dim, ErrShapeUnsupported)
	}
	if hasErrors {
		return 0, fmt.Errorf("errors on dataset with %d dimensions: %w", dim, ErrShapeUnsupported)
	}

	return KindMultiDimDouble, nil
}
