package service

import "context"

// Validator checks the shape and business rules of an input before a use case
// acts on it. A nil error means the input is acceptable.
type Validator[T any] interface {
	Validate(ctx context.Context, input T) error
}
