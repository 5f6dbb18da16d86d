package validation

import (
	"context"
	"strings"
	"testing"
	"time"

	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *usecase.CreateClientAccountInput {
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
				{Location: "Av. Paulista, 1578", Geo: usecase.GeoInput{Latitude: -23.56, Longitude: -46.65}},
			},
		},
	}
}

func newClientAccountValidator(t *testing.T) *clientAccountValidator {
	t.Helper()

	structs, err := New()
	require.NoError(t, err)

	v, ok := NewClientAccountValidator(structs).(*clientAccountValidator)
	require.True(t, ok)

	return v
}

func TestClientAccountValidator_Valid(t *testing.T) {
	v := newClientAccountValidator(t)

	assert.NoError(t, v.Validate(context.Background(), validInput()))
}

func TestClientAccountValidator_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CreateClientAccountInput)
		detail string
	}{
		{
			name:   "missing username",
			mutate: func(in *usecase.CreateClientAccountInput) { in.Username = "" },
			detail: "username: is required",
		},
		{
			name:   "username with spaces",
			mutate: func(in *usecase.CreateClientAccountInput) { in.Username = "maria silva" },
			detail: "username: may only contain",
		},
		{
			name:   "malformed email",
			mutate: func(in *usecase.CreateClientAccountInput) { in.Email = "maria.example.com" },
			detail: "email: must be a valid email address",
		},
		{
			name:   "short password",
			mutate: func(in *usecase.CreateClientAccountInput) { in.Password, in.PasswordConfirmation = "short", "short" },
			detail: "password: min=8",
		},
		{
			name:   "confirmation mismatch",
			mutate: func(in *usecase.CreateClientAccountInput) { in.PasswordConfirmation = "Password123?" },
			detail: "passwordConfirmation: must match password",
		},
		{
			name:   "future birthdate",
			mutate: func(in *usecase.CreateClientAccountInput) { in.Client.Birthdate = usecase.Date{Time: time.Now().Add(48 * time.Hour)} },
			detail: "client.birthdate: must be in the past",
		},
		{
			name:   "missing birthdate",
			mutate: func(in *usecase.CreateClientAccountInput) { in.Client.Birthdate = usecase.Date{} },
			detail: "client.birthdate: is required",
		},
		{
			name:   "overlong location",
			mutate: func(in *usecase.CreateClientAccountInput) { in.Client.Addresses[0].Location = strings.Repeat("x", 256) },
			detail: "client.addresses[0].location: max=255",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newClientAccountValidator(t)
			input := validInput()
			tt.mutate(input)

			err := v.Validate(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

func TestClientAccountValidator_LeavesDomainRulesToEntities(t *testing.T) {
	v := newClientAccountValidator(t)
	input := validInput()
	input.Client.Name = "Maria"
	input.Client.Cpf = "111.444.777-34"
	input.Client.Addresses[0].Location = ""
	input.Client.Addresses[0].Geo.Latitude = 120

	assert.NoError(t, v.Validate(context.Background(), input))
}

func TestClientAccountValidator_ReportsEveryField(t *testing.T) {
	v := newClientAccountValidator(t)
	input := validInput()
	input.Username = ""
	input.Email = ""

	err := v.Validate(context.Background(), input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "username: is required")
	assert.Contains(t, err.Error(), "email: is required")
}

func TestClientAccountValidator_NilInput(t *testing.T) {
	v := newClientAccountValidator(t)

	err := v.Validate(context.Background(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
