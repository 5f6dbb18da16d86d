package kernel

import "reflect"

// Identifiable is anything that carries an entity identity.
type Identifiable interface {
	ID() ID
}

// EntityOption customizes entity construction.
type EntityOption func(*entityOptions)

type entityOptions struct {
	id string
}

// WithID supplies an existing identifier instead of generating one.
func WithID(id string) EntityOption {
	return func(o *entityOptions) {
		o.id = id
	}
}

// Entity pairs an immutable identifier with the props of a domain object.
// Domain types embed it to gain ID and Equals.
type Entity[P any] struct {
	id    ID
	props P
}

// NewEntity resolves the identifier from opts and stores props.
func NewEntity[P any](props P, opts ...EntityOption) (Entity[P], error) {
	options := &entityOptions{}
	for _, opt := range opts {
		opt(options)
	}

	id, err := ResolveID(options.id)
	if err != nil {
		return Entity[P]{}, err
	}

	return Entity[P]{id: id, props: props}, nil
}

// ID returns the entity identifier.
func (e Entity[P]) ID() ID {
	return e.id
}

// Props returns the entity props.
func (e Entity[P]) Props() P {
	return e.props
}

// Equals reports whether other has the same identity. Props are ignored.
func (e Entity[P]) Equals(other Identifiable) bool {
	return SameIdentity(e, other)
}

// SameIdentity reports whether a and b are the same entity.
func SameIdentity(a, b Identifiable) bool {
	if isNil(a) || isNil(b) {
		return false
	}

	return a.ID().Equals(b.ID())
}

func isNil(v Identifiable) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
