package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"clientaccount/config"
	"clientaccount/internal/domain/entity"
	"clientaccount/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(rejectDuplicateUsername bool) *config.Config {
	return &config.Config{
		Account: &config.AccountConfig{
			RejectDuplicateUsername: rejectDuplicateUsername,
		},
	}
}

func newCreateInput() *usecase.CreateClientAccountInput {
	return &usecase.CreateClientAccountInput{
		Username:             "maria.silva",
		Email:                "maria@example.com",
		Password:             "Password123!",
		PasswordConfirmation: "Password123!",
		Client: usecase.ClientInput{
			Name:      "Maria Silva",
			Birthdate: usecase.Date{Time: time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)},
			Contact:   "11987654321",
			Cpf:       "111.444.777-35",
			Addresses: []usecase.AddressInput{
				{
					Location: "Av. Paulista, 1578 - Bela Vista, São Paulo",
					Geo:      usecase.GeoInput{Latitude: -23.5614, Longitude: -46.6559},
				},
				{
					Location: "Rua XV de Novembro, 100 - Centro, Curitiba",
					Geo:      usecase.GeoInput{Latitude: -25.4296, Longitude: -49.2713},
				},
			},
		},
	}
}

func newStoredAccount(t *testing.T, email, username string) *entity.Account {
	t.Helper()

	client, err := entity.NewClient(entity.ClientParams{
		Name:      "João Pereira",
		Contact:   "21998765432",
		Birthdate: time.Date(1985, time.July, 2, 0, 0, 0, 0, time.UTC),
		Cpf:       "529.982.247-25",
	})
	require.NoError(t, err)

	account, err := entity.NewAccount(entity.AccountParams{
		Client:   client,
		Email:    email,
		Password: "$2a$10$storedhash",
		Username: username,
	})
	require.NoError(t, err)

	return account
}
