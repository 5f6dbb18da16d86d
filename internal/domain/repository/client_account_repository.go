// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"clientaccount/internal/domain/entity"
	"clientaccount/internal/domain/kernel"
)

// ErrClientAccountNotFound is returned by the finders when no account matches.
var ErrClientAccountNotFound = errors.New("client account not found")

// ClientAccountRepository defines the persistence operations for client accounts.
// Implementations must persist an Account together with its Client and addresses
// atomically, and should back email and username with unique constraints: the
// lookups done by the use case are not a uniqueness guarantee on their own.
type ClientAccountRepository interface {
	// FindByID retrieves an account by its identifier.
	FindByID(ctx context.Context, id kernel.ID) (*entity.Account, error)

	// FindByEmail retrieves the account registered with email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByUsername retrieves the account registered with username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Save persists a new account, its client and the client's addresses.
	Save(ctx context.Context, account *entity.Account) error
}
