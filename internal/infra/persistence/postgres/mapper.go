package postgres

import (
	"clientaccount/internal/domain/entity"
	"clientaccount/internal/domain/kernel"
	"clientaccount/internal/errors"
	"clientaccount/internal/infra/persistence/model"
)

func fromAccountDomain(account *entity.Account) (*model.ClientAccountModel, error) {
	client := account.Client()

	clientID, err := client.ID().UUID()
	if err != nil {
		return nil, err
	}

	clientM := &model.ClientModel{
		ID:        clientID,
		Name:      client.Name(),
		Contact:   client.Contact(),
		Birthdate: client.Birthdate(),
		Cpf:       client.Cpf(),
	}

	for i, address := range client.Addresses() {
		addressID, err := address.ID().UUID()
		if err != nil {
			return nil, err
		}

		clientM.Addresses = append(clientM.Addresses, &model.ClientAddressModel{
			ID:        addressID,
			ClientID:  clientM.ID,
			Position:  i,
			Location:  address.Location(),
			Latitude:  address.Geo().Latitude(),
			Longitude: address.Geo().Longitude(),
		})
	}

	accountID, err := account.ID().UUID()
	if err != nil {
		return nil, err
	}

	return &model.ClientAccountModel{
		ID:       accountID,
		ClientID: clientM.ID,
		Email:    account.Email(),
		Username: account.Username(),
		Password: account.Password(),
		Client:   clientM,
	}, nil
}

// toAccountDomain rebuilds the aggregate through the entity constructors, so
// stored rows are held to the same invariants as new ones.
func toAccountDomain(accountM *model.ClientAccountModel) (*entity.Account, error) {
	if accountM.Client == nil {
		return nil, errors.New("client account row has no client")
	}

	addresses := make([]*entity.Address, 0, len(accountM.Client.Addresses))
	for _, addressM := range accountM.Client.Addresses {
		geo, err := entity.NewGeo(addressM.Latitude, addressM.Longitude)
		if err != nil {
			return nil, err
		}

		address, err := entity.NewAddress(addressM.Location, geo, kernel.WithID(addressM.ID.String()))
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	client, err := entity.NewClient(entity.ClientParams{
		Name:      accountM.Client.Name,
		Contact:   accountM.Client.Contact,
		Birthdate: accountM.Client.Birthdate,
		Cpf:       accountM.Client.Cpf,
		Addresses: addresses,
	}, kernel.WithID(accountM.Client.ID.String()))
	if err != nil {
		return nil, err
	}

	return entity.NewAccount(entity.AccountParams{
		Client:   client,
		Email:    accountM.Email,
		Password: accountM.Password,
		Username: accountM.Username,
	}, kernel.WithID(accountM.ID.String()))
}
