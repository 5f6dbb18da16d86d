package entity

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "clientaccount/internal/domain/errors"
	"clientaccount/internal/domain/kernel"
)

const (
	minClientNameWords     = 2
	minClientContactLength = 9
)

type clientProps struct {
	name      string
	contact   string
	birthdate time.Time
	cpf       string
	addresses []*Address
}

// Client holds the personal data of an account holder and owns its addresses.
type Client struct {
	kernel.Entity[clientProps]
}

// ClientParams carries the fields required to build a Client.
type ClientParams struct {
	Name      string
	Contact   string
	Birthdate time.Time
	Cpf       string
	// Addresses are owned by the Client once passed in.
	Addresses []*Address
}

// NewClient validates name, contact and cpf, in that order, stopping at the
// first violation.
func NewClient(params ClientParams, opts ...kernel.EntityOption) (*Client, error) {
	base, err := kernel.NewEntity(clientProps{
		name:      params.Name,
		contact:   params.Contact,
		birthdate: params.Birthdate,
		cpf:       params.Cpf,
		addresses: params.Addresses,
	}, opts...)
	if err != nil {
		return nil, err
	}

	if len(strings.Fields(params.Name)) < minClientNameWords {
		return nil, domainerrors.NewInvalidClientNameError(params.Name)
	}

	if utf8.RuneCountInString(params.Contact) < minClientContactLength {
		return nil, domainerrors.NewInvalidClientContactError(params.Contact)
	}

	if !IsValidCPF(params.Cpf) {
		return nil, domainerrors.NewInvalidClientCpfError(params.Cpf)
	}

	return &Client{Entity: base}, nil
}

func (c *Client) Name() string {
	return c.Props().name
}

func (c *Client) Contact() string {
	return c.Props().contact
}

func (c *Client) Birthdate() time.Time {
	return c.Props().birthdate
}

func (c *Client) Cpf() string {
	return c.Props().cpf
}

// Addresses returns the client's addresses in their original order. The slice
// is a copy; the addresses themselves are read-only.
func (c *Client) Addresses() []*Address {
	return slices.Clone(c.Props().addresses)
}
