package kernel

import (
	"reflect"

	"github.com/mitchellh/copystructure"
	"github.com/pkg/errors"
)

// ValueObject holds an immutable payload. The payload is deep-copied on the
// way in and on the way out, so no holder can reach the stored value.
type ValueObject[T any] struct {
	value T
}

// NewValueObject snapshots value.
func NewValueObject[T any](value T) (ValueObject[T], error) {
	snapshot, err := deepCopy(value)
	if err != nil {
		return ValueObject[T]{}, err
	}

	return ValueObject[T]{value: snapshot}, nil
}

// Value returns a copy of the payload.
func (v ValueObject[T]) Value() T {
	snapshot, _ := copystructure.Must(copystructure.Copy(v.value)).(T)

	return snapshot
}

// Equals reports whether other is a ValueObject of the same payload type with a
// deeply, strictly equal payload.
func (v ValueObject[T]) Equals(other any) bool {
	switch o := other.(type) {
	case ValueObject[T]:
		return reflect.DeepEqual(v.value, o.value)
	case *ValueObject[T]:
		if o == nil {
			return false
		}

		return reflect.DeepEqual(v.value, o.value)
	default:
		return false
	}
}

func deepCopy[T any](value T) (T, error) {
	copied, err := copystructure.Copy(value)
	if err != nil {
		var zero T

		return zero, errors.Wrap(err, "failed to snapshot value object payload")
	}

	if copied == nil {
		var zero T

		return zero, nil
	}

	typed, ok := copied.(T)
	if !ok {
		var zero T

		return zero, errors.Errorf("snapshot of %T produced %T", value, copied)
	}

	return typed, nil
}
