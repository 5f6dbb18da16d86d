// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"clientaccount/config"
	deliverycontext "clientaccount/internal/delivery/context"
	"clientaccount/internal/domain/entity"
	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/domain/kernel"
	"clientaccount/internal/domain/repository"
	"clientaccount/internal/domain/service"
	"clientaccount/internal/errors"
	"clientaccount/internal/usecase"
)

// clientAccountService implements the ClientAccountUsecase interface.
type clientAccountService struct {
	validator               service.Validator[*usecase.CreateClientAccountInput]
	hasher                  service.PasswordHasher
	accountRepo             repository.ClientAccountRepository
	rejectDuplicateUsername bool
	logger                  *slog.Logger
}

// NewClientAccountService is the constructor for clientAccountService.
// A nil config keeps the default username policy (looked up, not enforced).
func NewClientAccountService(
	validator service.Validator[*usecase.CreateClientAccountInput],
	hasher service.PasswordHasher,
	accountRepo repository.ClientAccountRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ClientAccountUsecase {
	rejectDuplicateUsername := false
	if cfg != nil && cfg.Account != nil {
		rejectDuplicateUsername = cfg.Account.RejectDuplicateUsername
	}

	return &clientAccountService{
		validator:               validator,
		hasher:                  hasher,
		accountRepo:             accountRepo,
		rejectDuplicateUsername: rejectDuplicateUsername,
		logger:                  logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *clientAccountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateClientAccount runs the account opening pipeline. Every step may abort
// the operation; collaborator errors are returned exactly as received.
func (srv *clientAccountService) CreateClientAccount(ctx context.Context, input *usecase.CreateClientAccountInput) (*entity.Account, error) {
	if err := srv.validator.Validate(ctx, input); err != nil {
		srv.log(ctx).Debug("Client account input rejected", slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, err
	}

	if err := srv.ensureEmailAvailable(ctx, input.Email); err != nil {
		return nil, err
	}

	if err := srv.checkUsername(ctx, input.Username); err != nil {
		return nil, err
	}

	account, err := buildAccount(input, hashedPassword)
	if err != nil {
		srv.log(ctx).Debug("Client account invariants violated", slog.Any("error", err))

		return nil, err
	}

	if err := srv.accountRepo.Save(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to save client account",
			slog.String("accountID", account.ID().String()),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("Client account created",
		slog.String("accountID", account.ID().String()),
		slog.String("clientID", account.Client().ID().String()),
	)

	return account, nil
}

// GetClientAccount reads a persisted account back by its identifier.
func (srv *clientAccountService) GetClientAccount(ctx context.Context, id string) (*entity.Account, error) {
	accountID, err := kernel.ParseID(id)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if errors.Is(err, repository.ErrClientAccountNotFound) {
		return nil, domainerrors.ErrClientAccountNotFound.WithDetails(id)
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (srv *clientAccountService) ensureEmailAvailable(ctx context.Context, email string) error {
	existing, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrClientAccountNotFound) {
		return err
	}
	if existing != nil {
		srv.log(ctx).Info("Client account email already registered", slog.String("email", email))

		return domainerrors.NewClientAccountEmailExistsError(email)
	}

	return nil
}

// checkUsername always queries the repository; a hit only blocks creation when
// rejectDuplicateUsername is enabled.
func (srv *clientAccountService) checkUsername(ctx context.Context, username string) error {
	existing, err := srv.accountRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, repository.ErrClientAccountNotFound) {
		return err
	}
	if existing == nil {
		return nil
	}

	if srv.rejectDuplicateUsername {
		return domainerrors.NewClientAccountUsernameExistsError(username)
	}
	srv.log(ctx).Warn("Client account username already taken", slog.String("username", username))

	return nil
}

// buildAccount constructs the addresses in input order, then the client, then the account.
func buildAccount(input *usecase.CreateClientAccountInput, hashedPassword string) (*entity.Account, error) {
	addresses := make([]*entity.Address, 0, len(input.Client.Addresses))
	for _, in := range input.Client.Addresses {
		geo, err := entity.NewGeo(in.Geo.Latitude, in.Geo.Longitude)
		if err != nil {
			return nil, err
		}

		address, err := entity.NewAddress(in.Location, geo)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	client, err := entity.NewClient(entity.ClientParams{
		Name:      input.Client.Name,
		Contact:   input.Client.Contact,
		Birthdate: input.Client.Birthdate.Time,
		Cpf:       input.Client.Cpf,
		Addresses: addresses,
	})
	if err != nil {
		return nil, err
	}

	return entity.NewAccount(entity.AccountParams{
		Client:   client,
		Email:    input.Email,
		Password: hashedPassword,
		Username: input.Username,
	})
}
