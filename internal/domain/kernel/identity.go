// Package kernel holds the building blocks shared by every domain type:
// identifiers, identity-based entities and immutable value objects.
package kernel

import (
	domainerrors "clientaccount/internal/domain/errors"

	"github.com/google/uuid"
)

// canonicalIDLength is the length of the hyphenated textual UUID form.
const canonicalIDLength = 36

// ID is the canonical textual form of an entity identifier.
type ID string

// NewID generates a fresh random (version 4) identifier.
func NewID() ID {
	return ID(uuid.New().String())
}

// ParseID validates raw and returns it unchanged as an ID.
func ParseID(raw string) (ID, error) {
	if !isWellFormed(raw) {
		return "", domainerrors.NewMalformedIdentifierError(raw)
	}

	return ID(raw), nil
}

// ResolveID returns raw as an ID when supplied, or a fresh ID when raw is empty.
func ResolveID(raw string) (ID, error) {
	if raw == "" {
		return NewID(), nil
	}

	return ParseID(raw)
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// Equals reports whether both identifiers hold the same text.
func (id ID) Equals(other ID) bool {
	return id == other
}

// UUID returns the parsed form of the identifier, for storage layers that
// persist native UUID columns.
func (id ID) UUID() (uuid.UUID, error) {
	if !isWellFormed(string(id)) {
		return uuid.Nil, domainerrors.NewMalformedIdentifierError(string(id))
	}

	return uuid.Parse(string(id))
}

func isWellFormed(raw string) bool {
	// uuid.Parse also accepts urn:uuid: and braced forms; only the bare
	// hyphenated form is an identifier here.
	if len(raw) != canonicalIDLength {
		return false
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return false
	}

	if parsed.Variant() != uuid.RFC4122 {
		return false
	}

	version := parsed.Version()

	return version >= 1 && version <= 8
}
