// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"clientaccount/internal/delivery/http/response"
	"clientaccount/internal/domain/entity"
	"clientaccount/internal/errors"
	"clientaccount/internal/usecase"

	"github.com/labstack/echo/v4"
)

const birthdateLayout = time.DateOnly

// ClientAccountHandler serves the client account endpoints.
type ClientAccountHandler struct {
	uc     usecase.ClientAccountUsecase
	logger *slog.Logger
}

// NewClientAccountHandler is the constructor for ClientAccountHandler, injected by Fx.
func NewClientAccountHandler(uc usecase.ClientAccountUsecase, logger *slog.Logger) *ClientAccountHandler {
	return &ClientAccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// ClientAccountResponse is the public view of an account. The password hash is never exposed.
type ClientAccountResponse struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Client   ClientResponse `json:"client"`
}

// ClientResponse is the public view of the account holder.
type ClientResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Birthdate string            `json:"birthdate"`
	Contact   string            `json:"contact"`
	Cpf       string            `json:"cpf"`
	Addresses []AddressResponse `json:"addresses"`
}

// AddressResponse is the public view of one address.
type AddressResponse struct {
	ID       string      `json:"id"`
	Location string      `json:"location"`
	Geo      GeoResponse `json:"geo"`
}

// GeoResponse holds the coordinates of an address.
type GeoResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateClientAccount handles POST /client-accounts.
func (h *ClientAccountHandler) CreateClientAccount(c echo.Context) error {
	var input usecase.CreateClientAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client account input")
	}

	account, err := h.uc.CreateClientAccount(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toClientAccountResponse(account), "Client account created successfully")
}

// GetClientAccount handles GET /client-accounts/:id.
func (h *ClientAccountHandler) GetClientAccount(c echo.Context) error {
	account, err := h.uc.GetClientAccount(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toClientAccountResponse(account), "")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func toClientAccountResponse(account *entity.Account) ClientAccountResponse {
	client := account.Client()

	addresses := make([]AddressResponse, 0, len(client.Addresses()))
	for _, address := range client.Addresses() {
		addresses = append(addresses, AddressResponse{
			ID:       address.ID().String(),
			Location: address.Location(),
			Geo: GeoResponse{
				Latitude:  address.Geo().Latitude(),
				Longitude: address.Geo().Longitude(),
			},
		})
	}

	return ClientAccountResponse{
		ID:       account.ID().String(),
		Username: account.Username(),
		Email:    account.Email(),
		Client: ClientResponse{
			ID:        client.ID().String(),
			Name:      client.Name(),
			Birthdate: client.Birthdate().Format(birthdateLayout),
			Contact:   client.Contact(),
			Cpf:       client.Cpf(),
			Addresses: addresses,
		},
	}
}
