package zarr

import (
	"context"
	"fmt"

	"github.com/TuSKan/go-dataset"
)

// Role selects what an array contributes to a dimension.
type Role uint8

const (
	RoleValues Role = iota
	RolePosError
	RoleNegError
)

func (r Role) String() string {
	switch r {
	case RoleValues:
		return "values"
	case RolePosError:
		return "pos-error"
	case RoleNegError:
		return "neg-error"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Contribute registers the flattened array as the values or errors of
// dimension dim. The builder takes over the array storage, float32 arrays
// staying float32.
func (a *Array) Contribute(b *dataset.Builder, dim int, role Role) error {
	if dim < 0 {
		return fmt.Errorf("dimension %d: %w", dim, dataset.ErrInvalidArgument)
	}

	f32 := a.Precision() == dataset.Float32
	switch role {
	case RoleValues:
		if f32 {
			b.SetValuesFloat32NoCopy(dim, a.f32)
		} else {
			b.SetValuesNoCopy(dim, a.f64)
		}
	case RolePosError:
		if f32 {
			b.SetPosErrorFloat32NoCopy(dim, a.f32)
		} else {
			b.SetPosErrorNoCopy(dim, a.f64)
		}
	case RoleNegError:
		if f32 {
			b.SetNegErrorFloat32NoCopy(dim, a.f32)
		} else {
			b.SetNegErrorNoCopy(dim, a.f64)
		}
	default:
		return fmt.Errorf("unknown role %s: %w", role, dataset.ErrInvalidArgument)
	}
	return nil
}

// Load opens the array at url, reads it and contributes it to b.
func Load(ctx context.Context, b *dataset.Builder, url string, dim int, role Role, opts ...Option) error {
	r, err := Open(ctx, url, opts...)
	if err != nil {
		return err
	}
	defer r.Close()

	a, err := r.ReadArray(ctx)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", url, err)
	}
	return a.Contribute(b, dim, role)
}
