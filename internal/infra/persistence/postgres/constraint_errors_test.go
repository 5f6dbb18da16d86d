package postgres

import (
	"testing"

	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateSaveError(t *testing.T) {
	account := newAccountEntity(t)

	t.Run("email unique violation", func(t *testing.T) {
		err := translateSaveError(errors.New(`ERROR: duplicate key value violates unique constraint "uk_client_accounts_email" (SQLSTATE 23505)`), account)

		var emailErr *domainerrors.ClientAccountEmailExistsError
		require.ErrorAs(t, err, &emailErr)
		assert.Equal(t, account.Email(), emailErr.Email)
	})

	t.Run("username unique violation", func(t *testing.T) {
		err := translateSaveError(errors.New(`ERROR: duplicate key value violates unique constraint "uk_client_accounts_username" (SQLSTATE 23505)`), account)

		var usernameErr *domainerrors.ClientAccountUsernameExistsError
		require.ErrorAs(t, err, &usernameErr)
		assert.Equal(t, account.Username(), usernameErr.Username)
	})

	t.Run("not null violation", func(t *testing.T) {
		err := translateSaveError(errors.New(`ERROR: null value in column "email" violates not-null constraint (SQLSTATE 23502)`), account)

		assert.ErrorIs(t, err, domainerrors.ErrClientAccountCreationFailed)
	})

	t.Run("other failures", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := translateSaveError(cause, account)

		var dbErr *domainerrors.DatabaseExecuteError
		require.ErrorAs(t, err, &dbErr)
		assert.ErrorIs(t, err, cause)
	})
}
