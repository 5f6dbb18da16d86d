// Package memory keeps client accounts in process memory. It backs local runs
// and tests where no PostgreSQL instance is available.
package memory

import (
	"context"
	"sync"

	"clientaccount/internal/domain/entity"
	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/domain/kernel"
	"clientaccount/internal/domain/repository"
)

type clientAccountRepository struct {
	mu         sync.RWMutex
	accounts   map[kernel.ID]*entity.Account
	byEmail    map[string]kernel.ID
	byUsername map[string]kernel.ID
}

// NewClientAccountRepository returns an empty in-memory repository. Email and
// username uniqueness is enforced on Save under the write lock.
func NewClientAccountRepository() repository.ClientAccountRepository {
	return &clientAccountRepository{
		accounts:   map[kernel.ID]*entity.Account{},
		byEmail:    map[string]kernel.ID{},
		byUsername: map[string]kernel.ID{},
	}
}

func (repo *clientAccountRepository) FindByID(ctx context.Context, id kernel.ID) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if account, ok := repo.accounts[id]; ok {
		return account, nil
	}

	return nil, repository.ErrClientAccountNotFound
}

func (repo *clientAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findByIndex(ctx, repo.byEmail, email)
}

func (repo *clientAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findByIndex(ctx, repo.byUsername, username)
}

func (repo *clientAccountRepository) findByIndex(ctx context.Context, index map[string]kernel.ID, key string) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if id, ok := index[key]; ok {
		return repo.accounts[id], nil
	}

	return nil, repository.ErrClientAccountNotFound
}

func (repo *clientAccountRepository) Save(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.byEmail[account.Email()]; taken {
		return domainerrors.NewClientAccountEmailExistsError(account.Email())
	}
	if _, taken := repo.byUsername[account.Username()]; taken {
		return domainerrors.NewClientAccountUsernameExistsError(account.Username())
	}
	if _, taken := repo.accounts[account.ID()]; taken {
		return domainerrors.ErrClientAccountCreationFailed.WrapMessage("account id already stored")
	}

	repo.accounts[account.ID()] = account
	repo.byEmail[account.Email()] = account.ID()
	repo.byUsername[account.Username()] = account.ID()

	return nil
}
