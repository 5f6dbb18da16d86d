// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"clientaccount/internal/domain/entity"
	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/domain/kernel"
	"clientaccount/internal/domain/repository"
	"clientaccount/internal/errors"
	"clientaccount/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clientAccountRepository implements repository.ClientAccountRepository using GORM.
type clientAccountRepository struct {
	db *gorm.DB
}

// NewClientAccountRepository is the constructor for clientAccountRepository.
func NewClientAccountRepository(db *gorm.DB) repository.ClientAccountRepository {
	return &clientAccountRepository{db: db}
}

// FindByID retrieves an account with its client and addresses.
func (repo *clientAccountRepository) FindByID(ctx context.Context, id kernel.ID) (*entity.Account, error) {
	parsed, err := id.UUID()
	if err != nil {
		return nil, err
	}

	return repo.findOne(ctx, "id = ?", parsed)
}

// FindByEmail retrieves the account registered with email.
func (repo *clientAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

// FindByUsername retrieves the account registered with username.
func (repo *clientAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *clientAccountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var accountM model.ClientAccountModel
	err := repo.db.WithContext(ctx).
		Preload("Client").
		Preload("Client.Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where(query, arg).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find client account")
	}

	account, err := toAccountDomain(&accountM)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to map client account %s", accountM.ID)
	}

	return account, nil
}

// Save inserts the client, its addresses and the account in one transaction.
func (repo *clientAccountRepository) Save(ctx context.Context, account *entity.Account) error {
	accountM, err := fromAccountDomain(account)
	if err != nil {
		return err
	}
	clientM := accountM.Client

	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(clientM).Error; err != nil {
			return err
		}

		if len(clientM.Addresses) > 0 {
			if err := tx.Create(clientM.Addresses).Error; err != nil {
				return err
			}
		}

		return tx.Omit(clause.Associations).Create(accountM).Error
	})
	if err != nil {
		return translateSaveError(err, account)
	}

	return nil
}

func translateSaveError(err error, account *entity.Account) error {
	switch {
	case isUniqueConstraintViolation(err) && violatesConstraint(err, model.ConstraintAccountEmail):
		return domainerrors.NewClientAccountEmailExistsError(account.Email())
	case isUniqueConstraintViolation(err) && violatesConstraint(err, model.ConstraintAccountUsername):
		return domainerrors.NewClientAccountUsernameExistsError(account.Username())
	case isNotNullConstraintViolation(err):
		return domainerrors.ErrClientAccountCreationFailed.WrapMessage("missing required client account information")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrClientAccountCreationFailed.WrapMessage("invalid foreign key reference")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to save client account")
	}
}
