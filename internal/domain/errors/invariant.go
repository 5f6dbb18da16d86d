package errors

import (
	"fmt"
	"strconv"
)

// Typed errors carry the value that was rejected. Each embeds a detailed copy of
// its sentinel, so both errors.As (typed) and errors.Is (sentinel) work.

// MalformedIdentifierError reports a supplied identifier that is not a UUID.
type MalformedIdentifierError struct {
	*BaseError
	Value string
}

// NewMalformedIdentifierError creates a MalformedIdentifierError for value.
func NewMalformedIdentifierError(value string) *MalformedIdentifierError {
	return &MalformedIdentifierError{
		BaseError: ErrMalformedIdentifier.WithDetails(fmt.Sprintf("invalid ID %q", value)),
		Value:     value,
	}
}

// InvalidLatitudeError reports a latitude outside [-90, 90].
type InvalidLatitudeError struct {
	*BaseError
	Latitude float64
}

func NewInvalidLatitudeError(latitude float64) *InvalidLatitudeError {
	return &InvalidLatitudeError{
		BaseError: ErrInvalidLatitude.WithDetails("latitude " + formatFloat(latitude)),
		Latitude:  latitude,
	}
}

// InvalidLongitudeError reports a longitude outside [-180, 180].
type InvalidLongitudeError struct {
	*BaseError
	Longitude float64
}

func NewInvalidLongitudeError(longitude float64) *InvalidLongitudeError {
	return &InvalidLongitudeError{
		BaseError: ErrInvalidLongitude.WithDetails("longitude " + formatFloat(longitude)),
		Longitude: longitude,
	}
}

// InvalidLocationAddressError reports an empty address location.
type InvalidLocationAddressError struct {
	*BaseError
	Location string
}

func NewInvalidLocationAddressError(location string) *InvalidLocationAddressError {
	return &InvalidLocationAddressError{
		BaseError: ErrInvalidLocationAddress.WithDetails(fmt.Sprintf("location %q", location)),
		Location:  location,
	}
}

// InvalidClientNameError reports a client name with fewer than two words.
type InvalidClientNameError struct {
	*BaseError
	Name string
}

func NewInvalidClientNameError(name string) *InvalidClientNameError {
	return &InvalidClientNameError{
		BaseError: ErrInvalidClientName.WithDetails(fmt.Sprintf("name %q", name)),
		Name:      name,
	}
}

// InvalidClientContactError reports a client contact shorter than 9 characters.
type InvalidClientContactError struct {
	*BaseError
	Contact string
}

func NewInvalidClientContactError(contact string) *InvalidClientContactError {
	return &InvalidClientContactError{
		BaseError: ErrInvalidClientContact.WithDetails(fmt.Sprintf("contact %q", contact)),
		Contact:   contact,
	}
}

// InvalidClientCpfError reports a CPF that fails the check-digit algorithm.
type InvalidClientCpfError struct {
	*BaseError
	Cpf string
}

func NewInvalidClientCpfError(cpf string) *InvalidClientCpfError {
	return &InvalidClientCpfError{
		BaseError: ErrInvalidClientCpf.WithDetails(fmt.Sprintf("cpf %q", cpf)),
		Cpf:       cpf,
	}
}

// ClientAccountEmailExistsError reports an email already owned by another account.
type ClientAccountEmailExistsError struct {
	*BaseError
	Email string
}

func NewClientAccountEmailExistsError(email string) *ClientAccountEmailExistsError {
	return &ClientAccountEmailExistsError{
		BaseError: ErrClientAccountEmailExists.WithDetails(fmt.Sprintf("Client Account with email %s already exists.", email)),
		Email:     email,
	}
}

// ClientAccountUsernameExistsError reports a username already owned by another account.
type ClientAccountUsernameExistsError struct {
	*BaseError
	Username string
}

func NewClientAccountUsernameExistsError(username string) *ClientAccountUsernameExistsError {
	return &ClientAccountUsernameExistsError{
		BaseError: ErrClientAccountUsernameExists.WithDetails(fmt.Sprintf("Client Account with username %s already exists.", username)),
		Username:  username,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
