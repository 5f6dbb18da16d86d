package entity

import (
	"testing"

	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/domain/kernel"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	params := makeClientParams(t)

	client, err := NewClient(params)
	require.NoError(t, err)

	assert.Equal(t, params.Name, client.Name())
	assert.Equal(t, params.Contact, client.Contact())
	assert.Equal(t, params.Birthdate, client.Birthdate())
	assert.Equal(t, params.Cpf, client.Cpf())
	require.Len(t, client.Addresses(), 1)
	assert.True(t, params.Addresses[0].Equals(client.Addresses()[0]))
}

func TestNewClient_RejectsNameWithLessThanTwoWords(t *testing.T) {
	for _, name := range []string{"Maria", "invalid_name", "", "   ", "Maria   "} {
		t.Run(name, func(t *testing.T) {
			params := makeClientParams(t)
			params.Name = name

			_, err := NewClient(params)
			require.Error(t, err)

			var nameErr *domainerrors.InvalidClientNameError
			require.True(t, errors.As(err, &nameErr))
			assert.Equal(t, name, nameErr.Name)
		})
	}
}

func TestNewClient_AcceptsNameWithTwoOrMoreWords(t *testing.T) {
	for _, name := range []string{"Maria Silva", "Maria  da Silva", "\tJoão\nSouza"} {
		params := makeClientParams(t)
		params.Name = name

		_, err := NewClient(params)
		assert.NoError(t, err, name)
	}
}

func TestNewClient_RejectsShortContact(t *testing.T) {
	for _, contact := range []string{"", "12345678", "ééééééé"} {
		params := makeClientParams(t)
		params.Contact = contact

		_, err := NewClient(params)
		require.Error(t, err)

		var contactErr *domainerrors.InvalidClientContactError
		require.True(t, errors.As(err, &contactErr))
		assert.Equal(t, contact, contactErr.Contact)
	}

	params := makeClientParams(t)
	params.Contact = "123456789"
	_, err := NewClient(params)
	assert.NoError(t, err)
}

func TestNewClient_RejectsInvalidCpf(t *testing.T) {
	for _, cpf := range []string{"invalid_cpf", "111.444.777-34"} {
		params := makeClientParams(t)
		params.Cpf = cpf

		_, err := NewClient(params)
		require.Error(t, err)

		var cpfErr *domainerrors.InvalidClientCpfError
		require.True(t, errors.As(err, &cpfErr))
		assert.Equal(t, cpf, cpfErr.Cpf)
	}

	params := makeClientParams(t)
	params.Cpf = validCPF
	_, err := NewClient(params)
	assert.NoError(t, err)
}

func TestNewClient_ValidationOrder(t *testing.T) {
	params := makeClientParams(t)
	params.Name = "Maria"
	params.Contact = ""
	params.Cpf = "invalid_cpf"

	_, err := NewClient(params)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidClientName)

	params.Name = "Maria Silva"
	_, err = NewClient(params)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidClientContact)

	params.Contact = "11987654321"
	_, err = NewClient(params)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidClientCpf)
}

func TestNewClient_WithID(t *testing.T) {
	raw := uuid.NewString()

	client, err := NewClient(makeClientParams(t), kernel.WithID(raw))
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(raw), client.ID())

	_, err = NewClient(makeClientParams(t), kernel.WithID("invalid_id"))
	assert.ErrorIs(t, err, domainerrors.ErrMalformedIdentifier)
}

func TestClient_AddressesReturnsACopy(t *testing.T) {
	client, err := NewClient(makeClientParams(t))
	require.NoError(t, err)

	addresses := client.Addresses()
	addresses[0] = makeAddress(t)
	addresses = append(addresses, makeAddress(t))

	assert.Len(t, client.Addresses(), 1)
	assert.False(t, addresses[0].Equals(client.Addresses()[0]))
}
