package entity

import (
	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/domain/kernel"
)

type addressProps struct {
	location string
	geo      Geo
}

// Address is a located place owned by a single Client.
type Address struct {
	kernel.Entity[addressProps]
}

// NewAddress creates an Address. The identifier is resolved before the
// location is checked.
func NewAddress(location string, geo Geo, opts ...kernel.EntityOption) (*Address, error) {
	base, err := kernel.NewEntity(addressProps{location: location, geo: geo}, opts...)
	if err != nil {
		return nil, err
	}

	if len(location) == 0 {
		return nil, domainerrors.NewInvalidLocationAddressError(location)
	}

	return &Address{Entity: base}, nil
}

// Location returns the human-readable location.
func (a *Address) Location() string {
	return a.Props().location
}

// Geo returns the coordinates of the address.
func (a *Address) Geo() Geo {
	return a.Props().geo
}
