// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"clientaccount/internal/domain/entity"
)

// --- Input DTOs ---

// CreateClientAccountInput defines the data required to open a client account.
type CreateClientAccountInput struct {
	Username             string      `json:"username" validate:"required,min=3,max=50,username"`
	Email                string      `json:"email" validate:"required,email,max=255"`
	Password             string      `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string      `json:"passwordConfirmation" validate:"required,eqfield=Password"`
	Client               ClientInput `json:"client"`
}

// ClientInput holds the personal data of the account holder.
type ClientInput struct {
	Name      string         `json:"name" validate:"required,max=100"`
	Birthdate Date           `json:"birthdate" validate:"required,past"`
	Contact   string         `json:"contact" validate:"required,max=20"`
	Cpf       string         `json:"cpf" validate:"required,max=14"`
	Addresses []AddressInput `json:"addresses" validate:"dive"`
}

// AddressInput holds one address of the account holder.
type AddressInput struct {
	Location string   `json:"location" validate:"max=255"`
	Geo      GeoInput `json:"geo"`
}

// GeoInput holds the coordinates of an address.
type GeoInput struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ClientAccountUsecase defines the interface for client account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ClientAccountUsecase interface {
	// CreateClientAccount validates input, hashes the password, checks that the
	// email is free, builds the account graph and persists it.
	CreateClientAccount(ctx context.Context, input *CreateClientAccountInput) (*entity.Account, error)

	// GetClientAccount reads a persisted account back by its identifier.
	GetClientAccount(ctx context.Context, id string) (*entity.Account, error)
}
