package entity

import (
	"clientaccount/internal/domain/kernel"
)

type accountProps struct {
	username string
	email    string
	password string
	client   *Client
}

// Account is the login identity of a Client. Field formats (email, username,
// password strength) are checked by the request validator, not here.
type Account struct {
	kernel.Entity[accountProps]
}

// AccountParams carries the fields required to build an Account.
type AccountParams struct {
	Client   *Client
	Email    string
	Password string // already hashed
	Username string
}

// NewAccount creates an Account owning params.Client.
func NewAccount(params AccountParams, opts ...kernel.EntityOption) (*Account, error) {
	base, err := kernel.NewEntity(accountProps{
		username: params.Username,
		email:    params.Email,
		password: params.Password,
		client:   params.Client,
	}, opts...)
	if err != nil {
		return nil, err
	}

	return &Account{Entity: base}, nil
}

func (a *Account) Username() string {
	return a.Props().username
}

func (a *Account) Email() string {
	return a.Props().email
}

// Password returns the hashed credential.
func (a *Account) Password() string {
	return a.Props().password
}

func (a *Account) Client() *Client {
	return a.Props().client
}
